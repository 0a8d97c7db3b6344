package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/pkg/logger"
)

type stubLauncher struct {
	calls []string
	err   error
}

func (s *stubLauncher) Launch(_ context.Context, name string) error {
	s.calls = append(s.calls, name)
	return s.err
}

type stubOpener struct {
	sites []string
	urls  []string
	err   error
}

func (s *stubOpener) OpenSite(_ context.Context, name string) error {
	s.sites = append(s.sites, name)
	return s.err
}

func (s *stubOpener) OpenURL(_ context.Context, rawURL string) error {
	s.urls = append(s.urls, rawURL)
	return s.err
}

type stubSystem struct {
	value string
	err   error
	calls int
}

func (s *stubSystem) query() (string, error) {
	s.calls++
	return s.value, s.err
}

func (s *stubSystem) Time() (string, error)    { return s.query() }
func (s *stubSystem) Date() (string, error)    { return s.query() }
func (s *stubSystem) Battery() (string, error) { return s.query() }
func (s *stubSystem) CPU() (string, error)     { return s.query() }
func (s *stubSystem) Memory() (string, error)  { return s.query() }

type stubFiles struct {
	folders []string
	stats   domain.CleanStats
	err     error
	cleaned int
}

func (s *stubFiles) CreateFolder(name string) error {
	s.folders = append(s.folders, name)
	return s.err
}

func (s *stubFiles) CleanDownloads() (domain.CleanStats, error) {
	s.cleaned++
	return s.stats, s.err
}

type stubWorkflows struct {
	report domain.WorkflowReport
	err    error
	names  []string
}

func (s *stubWorkflows) Run(_ context.Context, name string) (domain.WorkflowReport, error) {
	s.names = append(s.names, name)
	return s.report, s.err
}

type recordCall struct {
	command string
	intent  domain.Intent
	action  string
	success bool
}

type stubRecorder struct {
	calls []recordCall
}

func (s *stubRecorder) Record(command string, intent domain.Intent, action string, success bool) {
	s.calls = append(s.calls, recordCall{command, intent, action, success})
}

type stubPatterns struct {
	ingested []string
	err      error
}

func (s *stubPatterns) Ingest(_ context.Context, command string, _ domain.Intent, _ string) error {
	s.ingested = append(s.ingested, command)
	return s.err
}

func (s *stubPatterns) Similar(context.Context, string, int) ([]domain.Pattern, error) {
	return nil, nil
}

type stubSpeaker struct {
	said []string
}

func (s *stubSpeaker) Say(text string) error {
	s.said = append(s.said, text)
	return nil
}

type fixture struct {
	service  *Service
	apps     *stubLauncher
	web      *stubOpener
	system   *stubSystem
	files    *stubFiles
	flows    *stubWorkflows
	recorder *stubRecorder
	patterns *stubPatterns
	speaker  *stubSpeaker
}

func newFixture() *fixture {
	f := &fixture{
		apps:     &stubLauncher{},
		web:      &stubOpener{},
		system:   &stubSystem{value: "42%"},
		files:    &stubFiles{},
		flows:    &stubWorkflows{},
		recorder: &stubRecorder{},
		patterns: &stubPatterns{},
		speaker:  &stubSpeaker{},
	}
	f.service = &Service{
		Apps:      f.apps,
		Web:       f.web,
		System:    f.system,
		Files:     f.files,
		Workflows: f.flows,
		Recorder:  f.recorder,
		Patterns:  f.patterns,
		Speaker:   f.speaker,
		Logger:    logger.New(false),
		Threshold: 0.5,
	}
	return f
}

func classification(intent domain.Intent, action string, confidence float64) domain.Classification {
	return domain.Classification{
		Intent:     intent,
		Action:     action,
		Confidence: confidence,
		Parameters: map[string]any{},
	}
}

func TestDispatchRejectsLowConfidence(t *testing.T) {
	f := newFixture()

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentOpenApp, "chrome", 0.3), "open chrome")

	if ok {
		t.Fatal("expected rejection below threshold")
	}
	if len(f.apps.calls) != 0 {
		t.Fatalf("launcher called %d times, want 0", len(f.apps.calls))
	}
	if len(f.recorder.calls) != 0 {
		t.Fatalf("recorder called %d times, want 0", len(f.recorder.calls))
	}
	if len(f.speaker.said) != 1 {
		t.Fatalf("speaker called %d times, want 1 clarification", len(f.speaker.said))
	}
}

func TestDispatchAtThresholdProceeds(t *testing.T) {
	f := newFixture()

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentOpenApp, "chrome", 0.5), "open chrome")

	if !ok {
		t.Fatal("expected success at exact threshold")
	}
	if len(f.apps.calls) != 1 || f.apps.calls[0] != "chrome" {
		t.Fatalf("launcher calls = %v", f.apps.calls)
	}
}

func TestDispatchRecordsOnSuccess(t *testing.T) {
	f := newFixture()

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentOpenWebsite, "gmail", 0.9), "open gmail")

	if !ok {
		t.Fatal("expected success")
	}
	if len(f.recorder.calls) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(f.recorder.calls))
	}
	got := f.recorder.calls[0]
	if got.command != "open gmail" || got.intent != domain.IntentOpenWebsite || got.action != "gmail" || !got.success {
		t.Fatalf("recorded %+v", got)
	}
	if len(f.patterns.ingested) != 1 {
		t.Fatalf("pattern ingests = %d, want 1", len(f.patterns.ingested))
	}
}

func TestDispatchDoesNotRecordOnActuatorFailure(t *testing.T) {
	f := newFixture()
	f.apps.err = errors.New("no such app")

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentOpenApp, "ghost", 0.9), "open ghost")

	if ok {
		t.Fatal("expected failure when launch fails")
	}
	if len(f.recorder.calls) != 0 {
		t.Fatalf("recorder calls = %d, want 0", len(f.recorder.calls))
	}
	if len(f.patterns.ingested) != 0 {
		t.Fatalf("pattern ingests = %d, want 0", len(f.patterns.ingested))
	}
}

func TestDispatchPatternIngestFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.patterns.err = errors.New("db locked")

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentOpenApp, "chrome", 0.9), "open chrome")

	if !ok {
		t.Fatal("pattern store failure must not fail the dispatch")
	}
	if len(f.recorder.calls) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(f.recorder.calls))
	}
}

func TestDispatchUnknownIntent(t *testing.T) {
	f := newFixture()

	// unknown arrives with zero confidence so the gate rejects it first
	ok := f.service.Dispatch(context.Background(), domain.UnknownClassification(), "gibberish")

	if ok {
		t.Fatal("expected unknown to be rejected")
	}
	if len(f.recorder.calls) != 0 {
		t.Fatal("unknown must not be recorded")
	}
}

func TestDispatchSystemInfoActions(t *testing.T) {
	for _, action := range []string{"time", "date", "battery", "cpu", "memory"} {
		f := newFixture()
		ok := f.service.Dispatch(context.Background(), classification(domain.IntentSystemInfo, action, 0.95), action)
		if !ok {
			t.Fatalf("%s: expected success", action)
		}
		if f.system.calls != 1 {
			t.Fatalf("%s: system queries = %d, want 1", action, f.system.calls)
		}
	}
}

func TestDispatchUnsupportedSystemInfoAction(t *testing.T) {
	f := newFixture()

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentSystemInfo, "disk", 0.95), "disk space")

	if ok {
		t.Fatal("expected unsupported action to fail")
	}
	if f.system.calls != 0 {
		t.Fatalf("system queries = %d, want 0", f.system.calls)
	}
	if len(f.recorder.calls) != 0 {
		t.Fatal("failed dispatch must not be recorded")
	}
}

func TestDispatchSystemInfoError(t *testing.T) {
	f := newFixture()
	f.system.err = errors.New("sensor unavailable")

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentSystemInfo, "battery", 0.95), "battery level")

	if ok {
		t.Fatal("expected failure")
	}
	if len(f.recorder.calls) != 0 {
		t.Fatal("failed dispatch must not be recorded")
	}
}

func TestDispatchCreateFolderUsesTimestampedName(t *testing.T) {
	f := newFixture()
	f.service.now = func() time.Time {
		return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	}

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentFileOperation, "create_folder", 0.9), "make a folder")

	if !ok {
		t.Fatal("expected success")
	}
	if len(f.files.folders) != 1 || f.files.folders[0] != "Folder_20240315_093000" {
		t.Fatalf("folders = %v", f.files.folders)
	}
}

func TestDispatchCleanDownloads(t *testing.T) {
	f := newFixture()
	f.files.stats = domain.CleanStats{Images: 2, Documents: 3}

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentFileOperation, "clean_downloads", 0.9), "clean downloads")

	if !ok {
		t.Fatal("expected success")
	}
	if f.files.cleaned != 1 {
		t.Fatalf("clean calls = %d, want 1", f.files.cleaned)
	}
}

func TestDispatchUnsupportedFileOperation(t *testing.T) {
	f := newFixture()

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentFileOperation, "shred_everything", 0.9), "shred")

	if ok {
		t.Fatal("expected unsupported file operation to fail")
	}
	if len(f.files.folders) != 0 || f.files.cleaned != 0 {
		t.Fatal("file manager must not be touched")
	}
}

func TestDispatchWorkflowFailure(t *testing.T) {
	f := newFixture()
	f.flows.err = errors.New("no such workflow")

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentWorkflow, "nonexistent_flow", 0.9), "run it")

	if ok {
		t.Fatal("expected workflow failure to return false")
	}
	if len(f.recorder.calls) != 0 {
		t.Fatal("failed workflow must not be recorded")
	}
}

func TestDispatchWorkflowSuccess(t *testing.T) {
	f := newFixture()
	f.flows.report = domain.WorkflowReport{Workflow: domain.WorkflowStartMyDay, Attempted: 3, Opened: 3}

	ok := f.service.Dispatch(context.Background(), classification(domain.IntentWorkflow, "start_my_day", 0.85), "start my day")

	if !ok {
		t.Fatal("expected success")
	}
	if len(f.flows.names) != 1 || f.flows.names[0] != "start_my_day" {
		t.Fatalf("workflow names = %v", f.flows.names)
	}
	if len(f.recorder.calls) != 1 {
		t.Fatalf("recorder calls = %d, want 1", len(f.recorder.calls))
	}
}
