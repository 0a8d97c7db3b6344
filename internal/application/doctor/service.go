// Package doctor runs environment diagnostics for the doctor command.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	appconfig "github.com/jmajeed/juno/internal/application/config"
	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// Service checks that the assistant's surroundings are usable.
type Service struct {
	ConfigProvider ports.ConfigProvider
	CommandTables  ports.CommandTableProvider
	SystemInfo     ports.SystemInfo

	// SpeechAvailable reports whether a speech synthesis command exists.
	SpeechAvailable func() bool
}

// Run executes the checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format %s", cfg.ConfigFormatVersion)))
	}

	table, err := s.CommandTables.Commands(ctx)
	if err != nil {
		checks = append(checks, fail("Command table", fmt.Sprintf("load failed: %v", err)))
	} else if err := appconfig.ValidateCommands(table); err != nil {
		checks = append(checks, fail("Command table", err.Error()))
	} else {
		total := len(table.Applications) + len(table.Websites) + len(table.Workflows) + len(table.SystemCommands)
		checks = append(checks, ok("Command table", fmt.Sprintf("%d entries", total)))
	}

	checks = append(checks, dataDirCheck(cfg.Memory.DataDir))
	checks = append(checks, apiKeyCheck(cfg.Classifier.Backends))

	if s.SpeechAvailable != nil {
		if s.SpeechAvailable() {
			checks = append(checks, ok("Speech output", "synthesis command found"))
		} else {
			checks = append(checks, warn("Speech output", "no speech command installed, falling back to text"))
		}
	}

	if s.SystemInfo != nil {
		if status, err := s.SystemInfo.Battery(); err != nil {
			checks = append(checks, warn("Battery", err.Error()))
		} else {
			checks = append(checks, ok("Battery", status))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func dataDirCheck(dir string) domain.HealthCheck {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail("Data directory", err.Error())
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return fail("Data directory", fmt.Sprintf("not writable: %v", err))
	}
	_ = os.Remove(probe)
	return ok("Data directory", dir)
}

func apiKeyCheck(backends []domain.BackendDefinition) domain.HealthCheck {
	if len(backends) == 0 {
		return warn("API keys", "no remote backends configured; rule-based classification only")
	}
	for _, backend := range backends {
		if os.Getenv(backend.AuthEnvVar) != "" {
			return ok("API keys", fmt.Sprintf("%s available for %s", backend.AuthEnvVar, backend.Name))
		}
	}
	return warn("API keys", "no backend keys set; rule-based classification only")
}

func ok(name, msg string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Message: msg}
}

func warn(name, msg string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Message: msg}
}

func fail(name, msg string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthFail, Message: msg}
}
