package domain

// Config mirrors ~/.juno/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Assistant           AssistantSettings  `yaml:"assistant"`
	Classifier          ClassifierSettings `yaml:"classifier"`
	Listening           ListeningSettings  `yaml:"listening"`
	Memory              MemorySettings     `yaml:"memory"`
}

// AssistantSettings captures identity and speech toggles.
type AssistantSettings struct {
	Name     string `yaml:"name"`
	WakeWord string `yaml:"wake_word"`
	Voice    bool   `yaml:"voice"`
}

// ClassifierSettings orders the classification backends and sets the gate.
type ClassifierSettings struct {
	Backends            []BackendDefinition `yaml:"backends"`
	ConfidenceThreshold float64             `yaml:"confidence_threshold"`
}

// BackendDefinition describes one remote classification backend.
type BackendDefinition struct {
	Name       string `yaml:"name"`
	Endpoint   string `yaml:"endpoint"`
	ModelID    string `yaml:"model_id"`
	AuthEnvVar string `yaml:"auth_env_var"`
	MaxTokens  int    `yaml:"max_tokens"`
}

// ListeningSettings controls the two blocking waits of the session loop.
type ListeningSettings struct {
	WakeTimeoutSeconds    int `yaml:"wake_timeout"`
	WakePhraseSeconds     int `yaml:"wake_phrase_limit"`
	CommandTimeoutSeconds int `yaml:"command_timeout"`
	CommandPhraseSeconds  int `yaml:"command_phrase_limit"`
}

// MemorySettings toggles the behavioral log and the pattern store.
type MemorySettings struct {
	Enabled       bool   `yaml:"enabled"`
	PatternStore  bool   `yaml:"pattern_store"`
	RetentionDays int    `yaml:"retention_days"`
	DataDir       string `yaml:"data_dir"`
}
