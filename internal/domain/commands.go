package domain

// CommandEntry is one named target with its trigger keywords.
// Target is a launch command for applications, a URL for websites, and is
// unused for workflows and system commands.
type CommandEntry struct {
	Name     string   `yaml:"name"`
	Target   string   `yaml:"target"`
	Keywords []string `yaml:"keywords"`
}

// CommandTable mirrors ~/.juno/commands.yaml. Entry order within a category
// is significant: the rule-based classifier scans it top to bottom and the
// first keyword hit wins.
type CommandTable struct {
	Applications   []CommandEntry `yaml:"applications"`
	Websites       []CommandEntry `yaml:"websites"`
	Workflows      []CommandEntry `yaml:"workflows"`
	SystemCommands []CommandEntry `yaml:"system_commands"`
}

// Application looks up an application entry by name.
func (t CommandTable) Application(name string) (CommandEntry, bool) {
	return findEntry(t.Applications, name)
}

// Website looks up a website entry by name.
func (t CommandTable) Website(name string) (CommandEntry, bool) {
	return findEntry(t.Websites, name)
}

func findEntry(entries []CommandEntry, name string) (CommandEntry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return CommandEntry{}, false
}
