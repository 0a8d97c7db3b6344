// Package ports defines the interfaces between the application core and the
// external adapters (infrastructure). The application depends on these
// abstractions only; concrete implementations live in the infrastructure
// layer and are wired together by the app container.
package ports

import (
	"context"
	"time"

	"github.com/jmajeed/juno/internal/domain"
)

// ConfigProvider loads the latest settings from persistent storage.
// Implementations typically read ~/.juno/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandTableProvider loads the configuration table driving the rule-based
// classifier and the actuators. Read-only at runtime.
type CommandTableProvider interface {
	Commands(context.Context) (domain.CommandTable, error)
}

// Strategy is one classification backend. A strategy may fail; the chain
// tries the next one. The rule-based strategy never fails.
type Strategy interface {
	Name() string
	Classify(ctx context.Context, text string) (domain.Classification, error)
}

// Classifier maps free text to a classification result. It never fails
// outward: when every remote backend is unavailable it answers from the
// rule-based path, and when nothing matches it returns the unknown sentinel.
type Classifier interface {
	Classify(ctx context.Context, text string) domain.Classification
}

// Dispatcher decides whether and how to act on a classification.
type Dispatcher interface {
	Dispatch(ctx context.Context, c domain.Classification, originalText string) bool
}

// AppLauncher starts an application by its symbolic name. The launch is
// fire-and-forget: the call returns once the process has been started.
type AppLauncher interface {
	Launch(ctx context.Context, name string) error
}

// WebOpener opens configured sites and raw URLs in the default browser.
type WebOpener interface {
	OpenSite(ctx context.Context, name string) error
	OpenURL(ctx context.Context, rawURL string) error
}

// SystemInfo answers system information queries as speakable strings.
type SystemInfo interface {
	Time() (string, error)
	Date() (string, error)
	Battery() (string, error)
	CPU() (string, error)
	Memory() (string, error)
}

// FileManager performs the supported file operations.
type FileManager interface {
	CreateFolder(name string) error
	CleanDownloads() (domain.CleanStats, error)
}

// WorkflowRunner sequences multiple actuator calls as one named workflow.
type WorkflowRunner interface {
	Run(ctx context.Context, name string) (domain.WorkflowReport, error)
}

// Recorder appends executed commands to the usage memory.
type Recorder interface {
	Record(command string, intent domain.Intent, action string, success bool)
}

// RoutineSource exposes the derived views of the usage memory.
type RoutineSource interface {
	MorningRoutine() []domain.RoutineItem
	MostFrequentItems(n int) []domain.RoutineItem
	RecentTabs() []domain.RoutineItem
}

// PatternStore is the optional best-effort semantic pattern subsystem.
// Implementations must tolerate being absent: the no-op store satisfies this
// interface and the core never branches on which one is wired.
type PatternStore interface {
	Ingest(ctx context.Context, command string, intent domain.Intent, action string) error
	Similar(ctx context.Context, text string, limit int) ([]domain.Pattern, error)
}

// Listener captures one utterance as text. An empty string means nothing was
// captured within the timeout; that is not an error.
type Listener interface {
	Listen(ctx context.Context, timeout, phraseLimit time.Duration) (string, error)
}

// Speaker voices a message to the user.
type Speaker interface {
	Say(text string) error
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
