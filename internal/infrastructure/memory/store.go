// Package memory owns the behavioral log and its derived views. The three
// persisted documents (memory.json, daily_tabs.json, command_history.json)
// are rewritten in full after every mutating operation; nothing else in the
// program writes them.
package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

const (
	historyCap = 1000
	tabsCap    = 20

	recentTabsLimit = 10
	routineLimit    = 5

	routineLookback  = 7 * 24 * time.Hour
	morningHourFrom  = 6
	morningHourUntil = 11
)

// Store keeps the command history, the frequency counters and the daily tabs
// buffer, persisting them under the data directory. It is safe for use from
// the single session goroutine; the mutex guards the CLI read commands that
// may run concurrently with nothing in practice but cost little.
type Store struct {
	dir           string
	memoryPath    string
	tabsPath      string
	historyPath   string
	retentionDays int

	mu   sync.Mutex
	mem  domain.MemoryDocument
	tabs domain.TabsDocument

	logger ports.Logger
	now    func() time.Time
}

// NewStore loads the persisted documents, substituting safe defaults when a
// file is absent or corrupt. Daily patterns older than retentionDays are
// pruned on write; zero disables pruning.
func NewStore(dataDir string, retentionDays int, logger ports.Logger) *Store {
	s := &Store{
		dir:           dataDir,
		memoryPath:    filepath.Join(dataDir, "memory.json"),
		tabsPath:      filepath.Join(dataDir, "daily_tabs.json"),
		historyPath:   filepath.Join(dataDir, "command_history.json"),
		retentionDays: retentionDays,
		logger:        logger,
		now:           time.Now,
	}
	s.mem = s.loadMemory()
	s.tabs = s.loadTabs()
	return s
}

// Record implements ports.Recorder. The append, the counter increment, the
// tabs update and the daily pattern all happen in memory first; persistence
// failures are logged and do not crash the caller, leaving the next read to
// reflect in-memory state only.
func (s *Store) Record(command string, intent domain.Intent, action string, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := domain.HistoryEntry{
		Timestamp: now.Format(domain.TimestampLayout),
		Command:   command,
		Intent:    intent,
		Action:    action,
		Success:   success,
		Hour:      now.Hour(),
		DayOfWeek: now.Weekday().String(),
	}

	s.mem.CommandHistory = append(s.mem.CommandHistory, entry)
	if len(s.mem.CommandHistory) > historyCap {
		s.mem.CommandHistory = s.mem.CommandHistory[len(s.mem.CommandHistory)-historyCap:]
	}

	switch intent {
	case domain.IntentOpenApp:
		s.mem.FrequentApps[action]++
	case domain.IntentOpenWebsite:
		s.mem.FrequentWebsites[action]++
	}

	s.updateDailyPattern(now, intent, action)
	s.updateTabs(now, intent, action)
	s.pruneDailyPatterns(now)

	s.persist()
}

func (s *Store) updateDailyPattern(now time.Time, intent domain.Intent, action string) {
	day := now.Format("2006-01-02")
	pattern := s.mem.DailyPatterns[day]

	switch intent {
	case domain.IntentOpenApp:
		if !containsString(pattern.Apps, action) {
			pattern.Apps = append(pattern.Apps, action)
		}
	case domain.IntentOpenWebsite:
		if !containsString(pattern.Websites, action) {
			pattern.Websites = append(pattern.Websites, action)
		}
	}
	pattern.Commands++
	s.mem.DailyPatterns[day] = pattern
}

// pruneDailyPatterns drops per-day records older than the retention window.
func (s *Store) pruneDailyPatterns(now time.Time) {
	if s.retentionDays <= 0 {
		return
	}
	oldest := now.AddDate(0, 0, -s.retentionDays).Format("2006-01-02")
	for day := range s.mem.DailyPatterns {
		if day < oldest {
			delete(s.mem.DailyPatterns, day)
		}
	}
}

// updateTabs appends to the recency buffer. Exact {type,name} duplicates are
// skipped without refreshing their position; overflow evicts oldest first.
func (s *Store) updateTabs(now time.Time, intent domain.Intent, action string) {
	if intent != domain.IntentOpenApp && intent != domain.IntentOpenWebsite {
		return
	}
	item := domain.RoutineItem{Type: intent, Name: action}
	for _, tab := range s.tabs.Tabs {
		if tab == item {
			return
		}
	}
	s.tabs.Tabs = append(s.tabs.Tabs, item)
	if len(s.tabs.Tabs) > tabsCap {
		s.tabs.Tabs = s.tabs.Tabs[len(s.tabs.Tabs)-tabsCap:]
	}
	s.tabs.LastUpdated = now.Format(domain.TimestampLayout)
}

// MorningRoutine recommends up to 5 items for the start-my-day workflow:
// the most frequent {type,name} pairs seen between 06:00 and 11:59 over the
// last 7 days, ties kept in first-seen order. With no morning history it
// falls back to MostFrequentItems.
func (s *Store) MorningRoutine() []domain.RoutineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-routineLookback)

	counts := make(map[domain.RoutineItem]int)
	var order []domain.RoutineItem
	for _, entry := range s.mem.CommandHistory {
		when, err := time.ParseInLocation(domain.TimestampLayout, entry.Timestamp, time.Local)
		if err != nil {
			continue
		}
		if when.Before(cutoff) {
			continue
		}
		if entry.Hour < morningHourFrom || entry.Hour > morningHourUntil {
			continue
		}
		if entry.Intent != domain.IntentOpenApp && entry.Intent != domain.IntentOpenWebsite {
			continue
		}
		item := domain.RoutineItem{Type: entry.Intent, Name: entry.Action}
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	if len(order) == 0 {
		return s.mostFrequentItemsLocked(routineLimit)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > routineLimit {
		order = order[:routineLimit]
	}
	return order
}

// MostFrequentItems returns the top-n apps followed by the top-n websites,
// each ranked by overall frequency, truncated to n total.
func (s *Store) MostFrequentItems(n int) []domain.RoutineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mostFrequentItemsLocked(n)
}

func (s *Store) mostFrequentItemsLocked(n int) []domain.RoutineItem {
	items := make([]domain.RoutineItem, 0, 2*n)
	for _, ranked := range topCounters(s.mem.FrequentApps, n) {
		items = append(items, domain.RoutineItem{Type: domain.IntentOpenApp, Name: ranked.Name})
	}
	for _, ranked := range topCounters(s.mem.FrequentWebsites, n) {
		items = append(items, domain.RoutineItem{Type: domain.IntentOpenWebsite, Name: ranked.Name})
	}
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// RecentTabs returns up to 10 buffer entries, most recently appended first.
// The buffer persists in append order; this read path reverses it.
func (s *Store) RecentTabs() []domain.RoutineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.tabs.Tabs)
	limit := recentTabsLimit
	if total < limit {
		limit = total
	}
	items := make([]domain.RoutineItem, 0, limit)
	for i := total - 1; i >= total-limit; i-- {
		items = append(items, s.tabs.Tabs[i])
	}
	return items
}

// History returns the most recent entries, newest first, optionally filtered
// by a substring over command and action.
func (s *Store) History(limit int, search string) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	search = strings.ToLower(search)
	var entries []domain.HistoryEntry
	for i := len(s.mem.CommandHistory) - 1; i >= 0; i-- {
		entry := s.mem.CommandHistory[i]
		if search != "" &&
			!strings.Contains(strings.ToLower(entry.Command), search) &&
			!strings.Contains(strings.ToLower(entry.Action), search) {
			continue
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) >= limit {
			break
		}
	}
	return entries
}

// Stats summarizes the log for the stats command.
func (s *Store) Stats() domain.UsageStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.UsageStats{
		TotalCommands: len(s.mem.CommandHistory),
		TopApps:       topCounters(s.mem.FrequentApps, routineLimit),
		TopWebsites:   topCounters(s.mem.FrequentWebsites, routineLimit),
		DaysTracked:   len(s.mem.DailyPatterns),
	}
}

func topCounters(counters map[string]int, n int) []domain.RankedItem {
	ranked := make([]domain.RankedItem, 0, len(counters))
	for name, count := range counters {
		ranked = append(ranked, domain.RankedItem{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (s *Store) persist() {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error("memory dir unavailable", err, map[string]interface{}{"dir": s.dir})
		return
	}
	if err := writeJSON(s.memoryPath, s.mem); err != nil {
		s.logger.Error("persist memory document", err, map[string]interface{}{"path": s.memoryPath})
	}
	if err := writeJSON(s.tabsPath, s.tabs); err != nil {
		s.logger.Error("persist tabs document", err, map[string]interface{}{"path": s.tabsPath})
	}
	if err := writeJSON(s.historyPath, s.mem.CommandHistory); err != nil {
		s.logger.Error("persist history mirror", err, map[string]interface{}{"path": s.historyPath})
	}
}

func writeJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) loadMemory() domain.MemoryDocument {
	doc := domain.MemoryDocument{
		DailyPatterns:    map[string]domain.DayPattern{},
		FrequentApps:     map[string]int{},
		FrequentWebsites: map[string]int{},
		Preferences:      map[string]string{},
	}
	data, err := os.ReadFile(s.memoryPath)
	if err != nil {
		return doc
	}
	var loaded domain.MemoryDocument
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("memory document corrupt, starting fresh", map[string]interface{}{"path": s.memoryPath})
		return doc
	}
	if loaded.DailyPatterns == nil {
		loaded.DailyPatterns = map[string]domain.DayPattern{}
	}
	if loaded.FrequentApps == nil {
		loaded.FrequentApps = map[string]int{}
	}
	if loaded.FrequentWebsites == nil {
		loaded.FrequentWebsites = map[string]int{}
	}
	if loaded.Preferences == nil {
		loaded.Preferences = map[string]string{}
	}
	return loaded
}

func (s *Store) loadTabs() domain.TabsDocument {
	var doc domain.TabsDocument
	data, err := os.ReadFile(s.tabsPath)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("tabs document corrupt, starting fresh", map[string]interface{}{"path": s.tabsPath})
		return domain.TabsDocument{}
	}
	return doc
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

var _ ports.Recorder = (*Store)(nil)
var _ ports.RoutineSource = (*Store)(nil)
