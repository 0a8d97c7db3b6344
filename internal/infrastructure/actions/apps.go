// Package actions holds the actuator adapters: the OS- and network-level
// side effects executed on the dispatcher's behalf.
package actions

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// Launcher starts desktop applications resolved through the command table.
// Launches are fire-and-forget: the call returns once the process started,
// it never waits for the application to exit.
type Launcher struct {
	table  domain.CommandTable
	logger ports.Logger
	goos   string
}

// NewLauncher builds a launcher for the current platform.
func NewLauncher(table domain.CommandTable, logger ports.Logger) *Launcher {
	return &Launcher{table: table, logger: logger, goos: runtime.GOOS}
}

// Launch implements ports.AppLauncher.
func (l *Launcher) Launch(ctx context.Context, name string) error {
	entry, ok := l.table.Application(name)
	if !ok {
		return fmt.Errorf("unknown application: %s", name)
	}

	cmd, err := l.buildCommand(ctx, entry.Target)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	// Detach so the launched application outlives the session loop.
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}

	l.logger.Info("application launched", map[string]interface{}{"app": name})
	return nil
}

func (l *Launcher) buildCommand(ctx context.Context, target string) (*exec.Cmd, error) {
	switch l.goos {
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "", target), nil
	case "darwin":
		return exec.CommandContext(ctx, "open", "-a", strings.TrimSuffix(target, ".exe")), nil
	default:
		fields := strings.Fields(strings.TrimSuffix(target, ".exe"))
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty launch target")
		}
		return exec.CommandContext(ctx, fields[0], fields[1:]...), nil
	}
}

var _ ports.AppLauncher = (*Launcher)(nil)
