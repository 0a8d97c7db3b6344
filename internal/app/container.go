package app

import (
	"context"
	"fmt"
	"os"

	appconfig "github.com/jmajeed/juno/internal/application/config"
	"github.com/jmajeed/juno/internal/application/dispatch"
	"github.com/jmajeed/juno/internal/application/doctor"
	"github.com/jmajeed/juno/internal/application/session"
	"github.com/jmajeed/juno/internal/application/workflow"
	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/infrastructure/actions"
	"github.com/jmajeed/juno/internal/infrastructure/classify"
	"github.com/jmajeed/juno/internal/infrastructure/config"
	"github.com/jmajeed/juno/internal/infrastructure/memory"
	"github.com/jmajeed/juno/internal/infrastructure/patterns"
	"github.com/jmajeed/juno/internal/infrastructure/voice"
	"github.com/jmajeed/juno/internal/pkg/filesystem"
	"github.com/jmajeed/juno/internal/pkg/logger"
	"github.com/jmajeed/juno/internal/ports"
)

// Container wires application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	Commands      domain.CommandTable
	ConfigLoader  *config.FileLoader
	Logger        ports.Logger
	Speaker       ports.Speaker
	Classifier    ports.Classifier
	Dispatcher    *dispatch.Service
	Workflows     *workflow.Service
	Session       *session.Service
	DoctorService *doctor.Service
	Memory        *memory.Store
	Patterns      ports.PatternStore
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	config.LoadEnv()

	log := logger.New(verbose)
	loader := config.NewFileLoader("", "")

	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	table, err := loader.Commands(ctx)
	if err != nil {
		return nil, fmt.Errorf("load command table: %w", err)
	}
	if err := appconfig.ValidateCommands(table); err != nil {
		return nil, fmt.Errorf("invalid command table: %w", err)
	}

	speaker := buildSpeaker(cfg, log)

	var (
		store    *memory.Store
		recorder ports.Recorder = memory.NoopRecorder{}
		routine  ports.RoutineSource
	)
	if cfg.Memory.Enabled {
		store = memory.NewStore(cfg.Memory.DataDir, cfg.Memory.RetentionDays, log)
		recorder = store
		routine = store
	}

	var patternStore ports.PatternStore = patterns.NoopStore{}
	if cfg.Memory.Enabled && cfg.Memory.PatternStore {
		if sqliteStore, err := patterns.NewSQLiteStore(cfg.Memory.DataDir); err != nil {
			log.Warn("pattern store unavailable", map[string]interface{}{"error": err.Error()})
		} else {
			patternStore = sqliteStore
		}
	}

	launcher := actions.NewLauncher(table, log)
	opener := actions.NewOpener(table, log)
	sysInfo := actions.NewInfo()
	files := actions.NewFiles(filesystem.UserHome(), log)

	workflows := &workflow.Service{
		Apps:    launcher,
		Web:     opener,
		Routine: routine,
		Speaker: speaker,
		Logger:  log,
	}

	dispatcher := &dispatch.Service{
		Apps:      launcher,
		Web:       opener,
		System:    sysInfo,
		Files:     files,
		Workflows: workflows,
		Recorder:  recorder,
		Patterns:  patternStore,
		Speaker:   speaker,
		Logger:    log,
		Threshold: cfg.Classifier.ConfidenceThreshold,
	}

	chain := classify.BuildChain(cfg, table, log)

	sessionService := &session.Service{
		Config:     cfg,
		Listener:   voice.NewConsoleListener(os.Stdin),
		Speaker:    speaker,
		Classifier: chain,
		Dispatcher: dispatcher,
		Logger:     log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: loader,
		CommandTables:  loader,
		SystemInfo:     sysInfo,
		SpeechAvailable: func() bool {
			_, ok := voice.NewCommandSpeaker()
			return ok
		},
	}

	return &Container{
		Config:        cfg,
		Commands:      table,
		ConfigLoader:  loader,
		Logger:        log,
		Speaker:       speaker,
		Classifier:    chain,
		Dispatcher:    dispatcher,
		Workflows:     workflows,
		Session:       sessionService,
		DoctorService: doctorService,
		Memory:        store,
		Patterns:      patternStore,
	}, nil
}

func buildSpeaker(cfg domain.Config, log ports.Logger) ports.Speaker {
	if cfg.Assistant.Voice {
		if speaker, ok := voice.NewCommandSpeaker(); ok {
			return speaker
		}
		log.Warn("no speech command found, printing instead", nil)
	}
	return voice.EchoSpeaker{W: os.Stdout}
}
