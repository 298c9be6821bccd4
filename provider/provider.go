// Package provider는 그리드에 넣을 뉴스 목록과 브레이크포인트를 공급합니다.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mseongj/news-grid/models"
)

// ErrUnknownSource는 DATA_SOURCE 값을 해석할 수 없을 때 반환됩니다.
var ErrUnknownSource = errors.New("unknown data source")

// Provider는 순서가 있는 뉴스 목록과 브레이크포인트를 돌려줍니다.
// 반환된 목록은 호출자가 읽기 전용으로 다룹니다.
type Provider interface {
	Items(ctx context.Context) ([]models.NewsItem, error)
	Breakpoints() models.BreakpointSet
}

// Open은 source 문자열로 Provider를 고릅니다.
//
//	"", "static"        내장 데모 데이터
//	"sqlite:<path>"     SQLite 파일
//	"postgres://..."    PostgreSQL
//	"feed:<path>"       로컬 RSS/Atom/JSON 피드 파일
func Open(ctx context.Context, source string, bp models.BreakpointSet) (Provider, error) {
	switch {
	case source == "" || source == "static":
		return NewStatic(DemoItems(), bp), nil
	case strings.HasPrefix(source, "sqlite:"):
		return OpenSQL(ctx, DriverSQLite, strings.TrimPrefix(source, "sqlite:"), bp)
	case strings.HasPrefix(source, "postgres://"), strings.HasPrefix(source, "postgresql://"):
		return OpenSQL(ctx, DriverPostgres, source, bp)
	case strings.HasPrefix(source, "feed:"):
		return NewFeed(strings.TrimPrefix(source, "feed:"), bp), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
}

// Static은 메모리에 있는 고정 목록입니다.
type Static struct {
	items []models.NewsItem
	bp    models.BreakpointSet
}

// NewStatic은 items를 복사해 보관합니다.
func NewStatic(items []models.NewsItem, bp models.BreakpointSet) *Static {
	return &Static{items: append([]models.NewsItem(nil), items...), bp: bp}
}

func (s *Static) Items(ctx context.Context) ([]models.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.NewsItem(nil), s.items...), nil
}

func (s *Static) Breakpoints() models.BreakpointSet {
	return s.bp
}
