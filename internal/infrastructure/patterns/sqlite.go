// Package patterns is the optional semantic pattern store. It is strictly
// best-effort: the dispatcher ingests into it after successful commands and
// nothing in the core depends on its answers.
package patterns

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// SQLiteStore persists command patterns in ~/.juno/data/patterns.db.
// Similar ranks candidates by shared lowercase token count, a deliberately
// cheap stand-in for embedding similarity.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewSQLiteStore creates (or opens) the pattern database. On any open or
// schema failure the caller should fall back to the no-op store.
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	path := filepath.Join(dataDir, "patterns.db")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db, path: path, now: time.Now}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS patterns (
		id TEXT PRIMARY KEY,
		command TEXT,
		intent TEXT,
		action TEXT,
		hour INTEGER,
		day_of_week TEXT,
		created_at TEXT
	);`)
	return err
}

// Ingest implements ports.PatternStore.
func (s *SQLiteStore) Ingest(ctx context.Context, command string, intent domain.Intent, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	_, err := s.db.ExecContext(ctx, `INSERT INTO patterns
		(id, command, intent, action, hour, day_of_week, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		command,
		string(intent),
		action,
		now.Hour(),
		now.Weekday().String(),
		now.Format(time.RFC3339),
	)
	return err
}

// Similar implements ports.PatternStore.
func (s *SQLiteStore) Similar(ctx context.Context, text string, limit int) ([]domain.Pattern, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, command, intent, action, hour, day_of_week, created_at FROM patterns`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queryTokens := tokenize(text)
	var candidates []domain.Pattern
	for rows.Next() {
		var p domain.Pattern
		var intent, created string
		if err := rows.Scan(&p.ID, &p.Command, &intent, &p.Action, &p.Hour, &p.DayOfWeek, &created); err != nil {
			return nil, err
		}
		p.Intent = domain.Intent(intent)
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			p.CreatedAt = t
		}
		p.Score = overlap(queryTokens, tokenize(p.Command))
		if p.Score > 0 {
			candidates = append(candidates, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the backing database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		tokens[field] = struct{}{}
	}
	return tokens
}

func overlap(a, b map[string]struct{}) float64 {
	shared := 0
	for token := range a {
		if _, ok := b[token]; ok {
			shared++
		}
	}
	return float64(shared)
}

var _ ports.PatternStore = (*SQLiteStore)(nil)
