package domain

// TimestampLayout is the wall-clock format persisted in the memory documents.
const TimestampLayout = "2006-01-02 15:04:05"

// HistoryEntry is one executed command. Entries are appended, never mutated.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
	Intent    Intent `json:"intent"`
	Action    string `json:"action"`
	Success   bool   `json:"success"`
	Hour      int    `json:"hour"`
	DayOfWeek string `json:"day_of_week"`
}

// RoutineItem identifies one app or website to open during a routine.
type RoutineItem struct {
	Type Intent `json:"type"`
	Name string `json:"name"`
}

// DayPattern accumulates the distinct apps and sites touched on one day.
type DayPattern struct {
	Apps     []string `json:"apps"`
	Websites []string `json:"websites"`
	Commands int      `json:"commands_count"`
}

// MemoryDocument is the on-disk shape of memory.json.
type MemoryDocument struct {
	DailyPatterns    map[string]DayPattern `json:"daily_patterns"`
	FrequentApps     map[string]int        `json:"frequent_apps"`
	FrequentWebsites map[string]int        `json:"frequent_websites"`
	CommandHistory   []HistoryEntry        `json:"command_history"`
	Preferences      map[string]string     `json:"preferences"`
}

// TabsDocument is the on-disk shape of daily_tabs.json.
type TabsDocument struct {
	Tabs        []RoutineItem `json:"tabs"`
	LastUpdated string        `json:"last_updated"`
}

// RankedItem pairs a counter key with its count for reporting.
type RankedItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UsageStats summarizes the behavioral log for the stats command.
type UsageStats struct {
	TotalCommands int          `json:"total_commands"`
	TopApps       []RankedItem `json:"top_apps"`
	TopWebsites   []RankedItem `json:"top_websites"`
	DaysTracked   int          `json:"days_tracked"`
}
