package actions

import (
	"fmt"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/jmajeed/juno/internal/ports"
)

// Info answers system information queries as speakable strings.
type Info struct {
	now func() time.Time
}

// NewInfo builds the system info adapter.
func NewInfo() *Info {
	return &Info{now: time.Now}
}

// Time returns the current time, e.g. "3:04 PM".
func (i *Info) Time() (string, error) {
	return i.now().Format("3:04 PM"), nil
}

// Date returns the current date, e.g. "Monday, January 2, 2006".
func (i *Info) Date() (string, error) {
	return i.now().Format("Monday, January 2, 2006"), nil
}

// Battery returns the charge percentage and whether the machine is plugged
// in. Machines without a battery report that instead of failing.
func (i *Info) Battery() (string, error) {
	batteries, err := battery.GetAll()
	if err != nil {
		return "", fmt.Errorf("read battery: %w", err)
	}
	if len(batteries) == 0 {
		return "battery information not available", nil
	}

	b := batteries[0]
	percent := 0.0
	if b.Full > 0 {
		percent = b.Current / b.Full * 100
	}
	state := "on battery"
	if b.State.Raw == battery.Charging || b.State.Raw == battery.Full {
		state = "charging"
	}
	return fmt.Sprintf("%.0f%% %s", percent, state), nil
}

// CPU returns the current overall CPU utilization.
func (i *Info) CPU() (string, error) {
	percents, err := cpu.Percent(time.Second, false)
	if err != nil {
		return "", fmt.Errorf("read cpu: %w", err)
	}
	if len(percents) == 0 {
		return "", fmt.Errorf("no cpu readings")
	}
	return fmt.Sprintf("%.0f%%", percents[0]), nil
}

// Memory returns used versus total memory.
func (i *Info) Memory() (string, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return "", fmt.Errorf("read memory: %w", err)
	}
	const gb = 1 << 30
	return fmt.Sprintf("%.1f GB out of %.1f GB (%.0f%%)",
		float64(vm.Used)/gb, float64(vm.Total)/gb, vm.UsedPercent), nil
}

var _ ports.SystemInfo = (*Info)(nil)
