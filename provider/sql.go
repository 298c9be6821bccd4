package provider

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mseongj/news-grid/models"
)

// database/sql 드라이버 이름
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// SQL은 news_items 테이블에서 목록을 읽는 Provider입니다.
type SQL struct {
	db     *sql.DB
	driver string
	bp     models.BreakpointSet
}

// OpenSQL은 DB에 연결하고 테이블을 준비합니다.
func OpenSQL(ctx context.Context, driver, dsn string, bp models.BreakpointSet) (*SQL, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	s := &SQL{db: db, driver: driver, bp: bp}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQL) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS news_items (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			date TEXT NOT NULL,
			image_url TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_news_items_position ON news_items(position)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Items는 position 순서로 모든 기사를 읽습니다.
func (s *SQL) Items(ctx context.Context) ([]models.NewsItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, category, date, image_url FROM news_items ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query news_items: %w", err)
	}
	defer rows.Close()

	var items []models.NewsItem
	for rows.Next() {
		var it models.NewsItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Category, &it.Date, &it.ImageURL); err != nil {
			return nil, fmt.Errorf("scan news_items: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Breakpoints() models.BreakpointSet {
	return s.bp
}

// Seed는 테이블이 비어 있을 때만 items를 순서대로 넣습니다. 넣은 개수를 돌려줍니다.
func (s *SQL) Seed(ctx context.Context, items []models.NewsItem) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM news_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count news_items: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	stmt := fmt.Sprintf(
		`INSERT INTO news_items(id, position, title, category, date, image_url) VALUES(%s)`,
		s.placeholders(6),
	)
	for i, it := range items {
		if _, err := tx.ExecContext(ctx, stmt, it.ID, i, it.Title, it.Category, it.Date, it.ImageURL); err != nil {
			return 0, fmt.Errorf("insert news item %q: %w", it.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Printf("news_items 테이블에 %d건 저장", len(items))
	return len(items), nil
}

// Close는 DB 연결을 닫습니다.
func (s *SQL) Close() error {
	return s.db.Close()
}

func (s *SQL) placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		if s.driver == DriverPostgres {
			marks[i] = fmt.Sprintf("$%d", i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}
