// Package dispatch turns classification results into actuator calls behind
// a confidence gate. Every branch is fail-soft: actuator errors become a
// spoken failure and a false return, never an abort of the session loop.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// Service routes classifications to actuators.
type Service struct {
	Apps      ports.AppLauncher
	Web       ports.WebOpener
	System    ports.SystemInfo
	Files     ports.FileManager
	Workflows ports.WorkflowRunner
	Recorder  ports.Recorder
	Patterns  ports.PatternStore
	Speaker   ports.Speaker
	Logger    ports.Logger

	// Threshold below which a classification is rejected with a
	// clarification request instead of being acted on.
	Threshold float64

	now func() time.Time
}

// Dispatch acts on one classification. Success is the only path that
// records to memory and ingests into the pattern store.
func (s *Service) Dispatch(ctx context.Context, c domain.Classification, originalText string) bool {
	if c.Confidence < s.Threshold {
		s.say("I'm not sure what you want me to do. Could you please rephrase?")
		return false
	}

	ok := s.execute(ctx, c, originalText)
	if !ok {
		return false
	}

	s.Recorder.Record(originalText, c.Intent, c.Action, true)
	if err := s.Patterns.Ingest(ctx, originalText, c.Intent, c.Action); err != nil {
		s.Logger.Warn("pattern ingest failed", map[string]interface{}{"error": err.Error()})
	}
	return true
}

func (s *Service) execute(ctx context.Context, c domain.Classification, originalText string) bool {
	switch c.Intent {
	case domain.IntentOpenApp:
		return s.openApp(ctx, c.Action)
	case domain.IntentOpenWebsite:
		return s.openWebsite(ctx, c.Action)
	case domain.IntentSystemInfo:
		return s.systemInfo(c.Action)
	case domain.IntentFileOperation:
		return s.fileOperation(c.Action)
	case domain.IntentWorkflow:
		return s.workflow(ctx, c.Action)
	default:
		s.say("I don't know how to do that yet.")
		return false
	}
}

func (s *Service) openApp(ctx context.Context, name string) bool {
	s.say(fmt.Sprintf("Opening %s", name))
	if err := s.Apps.Launch(ctx, name); err != nil {
		s.Logger.Error("app launch failed", err, map[string]interface{}{"app": name})
		s.say(fmt.Sprintf("Sorry, I couldn't open %s", name))
		return false
	}
	s.say(fmt.Sprintf("%s opened successfully", name))
	return true
}

func (s *Service) openWebsite(ctx context.Context, name string) bool {
	s.say(fmt.Sprintf("Opening %s", name))
	if err := s.Web.OpenSite(ctx, name); err != nil {
		s.Logger.Error("website open failed", err, map[string]interface{}{"site": name})
		s.say(fmt.Sprintf("Sorry, I couldn't open %s", name))
		return false
	}
	s.say(fmt.Sprintf("%s opened in browser", name))
	return true
}

func (s *Service) systemInfo(action string) bool {
	var (
		value string
		err   error
		reply string
	)
	switch action {
	case "time":
		value, err = s.System.Time()
		reply = "The current time is %s"
	case "date":
		value, err = s.System.Date()
		reply = "Today is %s"
	case "battery":
		value, err = s.System.Battery()
		reply = "Battery is at %s"
	case "cpu":
		value, err = s.System.CPU()
		reply = "CPU usage is at %s"
	case "memory":
		value, err = s.System.Memory()
		reply = "Memory usage is %s"
	default:
		s.Logger.Warn("unsupported system info action", map[string]interface{}{"action": action})
		s.say("Sorry, I couldn't get that information")
		return false
	}
	if err != nil {
		s.Logger.Error("system info failed", err, map[string]interface{}{"action": action})
		s.say("Sorry, I couldn't get that information")
		return false
	}
	s.say(fmt.Sprintf(reply, value))
	return true
}

func (s *Service) fileOperation(action string) bool {
	switch action {
	case "create_folder":
		name := fmt.Sprintf("Folder_%s", s.clock().Format("20060102_150405"))
		s.say("Creating folder")
		if err := s.Files.CreateFolder(name); err != nil {
			s.Logger.Error("folder creation failed", err, map[string]interface{}{"name": name})
			s.say("Sorry, I couldn't create the folder")
			return false
		}
		s.say("Folder created successfully")
		return true
	case "clean_downloads":
		s.say("Cleaning your downloads folder")
		stats, err := s.Files.CleanDownloads()
		if err != nil {
			s.Logger.Error("downloads cleanup failed", err, nil)
			s.say("Sorry, I couldn't clean the downloads folder")
			return false
		}
		s.say(fmt.Sprintf("Organized %d files in your downloads folder", stats.Total()))
		return true
	default:
		s.Logger.Warn("unsupported file operation", map[string]interface{}{"action": action})
		s.say("I don't know that file operation")
		return false
	}
}

func (s *Service) workflow(ctx context.Context, name string) bool {
	report, err := s.Workflows.Run(ctx, name)
	if err != nil {
		s.Logger.Error("workflow failed", err, map[string]interface{}{"workflow": name})
		s.say(fmt.Sprintf("Sorry, I couldn't run the %s workflow", name))
		return false
	}
	s.Logger.Info("workflow completed", map[string]interface{}{
		"workflow": report.Workflow, "attempted": report.Attempted, "opened": report.Opened,
	})
	return true
}

func (s *Service) say(text string) {
	if err := s.Speaker.Say(text); err != nil {
		s.Logger.Warn("speech output failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

var _ ports.Dispatcher = (*Service)(nil)
