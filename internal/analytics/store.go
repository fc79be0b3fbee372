// Package analytics records privacy-conscious page views: client addresses
// are hashed with a per-deployment salt, Do Not Track is honoured, and
// records older than the retention window are purged.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Zachkp/cosmic-portfolio/internal/clock"
)

// MemoryDSN keeps page views for the lifetime of the process only.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT NOT NULL,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_ts ON visitors (ts);
`

// PageView is one recorded request.
type PageView struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PathCount is the number of views of a path.
type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats aggregates the recorded page views.
type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TopPaths         []PathCount `json:"top_paths"`
	RecentVisitors   []PageView  `json:"recent_visitors"`
}

// Store is a SQLite-backed page view log.
type Store struct {
	db    *sql.DB
	salt  string
	clock clock.Clock
	log   *zap.Logger
}

// Open opens the store at dsn. An empty salt is replaced by a random one,
// which makes hashes stable only for the life of the process.
func Open(ctx context.Context, dsn, salt string, c clock.Clock, logger *zap.Logger) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("analytics dsn is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if salt == "" {
		var err error
		if salt, err = randomSalt(); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create visitors table: %w", err)
	}

	logger.Info("visitor tracking enabled with hashed addresses", zap.Bool("memory", dsn == MemoryDSN))
	return &Store{db: db, salt: salt, clock: clock.OrReal(c), log: logger}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// HashIP returns the salted, truncated hash stored in place of an address.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores a page view.
func (s *Store) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.clock.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("record visitor: %w", err)
	}
	return nil
}

// Stats summarizes the log. Days are UTC days.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week := now.AddDate(0, 0, -7)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{today.UnixMilli()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{week.UnixMilli()}},
	}
	for _, q := range counts {
		if err := s.db.QueryRowContext(ctx, q.query, q.args...).Scan(q.dst); err != nil {
			return nil, fmt.Errorf("count visitors: %w", err)
		}
	}

	top, err := s.topPaths(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopPaths = top

	recent, err := s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top paths: %w", err)
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("scan top path: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// Recent returns the latest page views, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]PageView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), path, ts
		FROM visitors
		ORDER BY ts DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent visitors: %w", err)
	}
	defer rows.Close()

	var out []PageView
	for rows.Next() {
		var (
			v  PageView
			ts int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.Timestamp = time.UnixMilli(ts).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// Cleanup deletes page views older than retention and returns how many
// were removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.clock.Now().Add(-retention).UnixMilli()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE ts < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("clean up visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.log.Info("privacy cleanup removed old visitor records",
			zap.Int64("removed", n), zap.Duration("retention", retention))
	}
	return n, nil
}

// RunRetention cleans up once, then every interval until ctx is cancelled.
func (s *Store) RunRetention(ctx context.Context, interval, retention time.Duration) error {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := s.Cleanup(ctx, retention); err != nil && ctx.Err() == nil {
			s.log.Warn("visitor cleanup failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
