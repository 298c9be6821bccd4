// Package render는 뉴스 카드, 그리드, 페이지 셸을 HTML로 그립니다.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/mseongj/news-grid/datefmt"
	"github.com/mseongj/news-grid/layout"
	"github.com/mseongj/news-grid/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultHeading은 페이지 헤더 문구입니다.
const DefaultHeading = "News Feed"

// Card는 카드 한 장을 그리기 위한 값입니다.
type Card struct {
	ID       string
	Title    string
	Category string
	Date     string // datefmt로 변환된 표시용 문자열
	ImageURL string
	Cell     layout.Cell
}

// GridView는 그리드 템플릿에 넘기는 값입니다.
type GridView struct {
	Viewport string
	Cards    []Card
}

// NewCard는 뉴스 항목 하나를 카드 값으로 바꿉니다. 입력 값은 검증하지 않습니다.
func NewCard(item models.NewsItem, f datefmt.Formatter, cell layout.Cell) Card {
	return Card{
		ID:       item.ID,
		Title:    item.Title,
		Category: item.Category,
		Date:     f.Format(item.Date),
		ImageURL: item.ImageURL,
		Cell:     cell,
	}
}

// Grid는 순서대로 카드 배치를 계산합니다. 항목이 없으면 빈 그리드입니다.
func Grid(items []models.NewsItem, f datefmt.Formatter, l layout.Layout, viewport string) GridView {
	cards := make([]Card, 0, len(items))
	for i, item := range items {
		cards = append(cards, NewCard(item, f, layout.Placement(i, l)))
	}
	return GridView{Viewport: viewport, Cards: cards}
}

// ShellOptions는 NewShell 설정입니다.
type ShellOptions struct {
	Breakpoints models.BreakpointSet
	Formatter   datefmt.Formatter
	Heading     string
}

// Shell은 문서 골격(기본 스타일, 헤더, 그리드)을 조립합니다.
// 스타일 문자열은 NewShell에서 한 번만 만들고 이후 렌더링은 읽기만 합니다.
type Shell struct {
	tmpl        *template.Template
	bp          models.BreakpointSet
	formatter   datefmt.Formatter
	heading     string
	baseStyle   template.CSS
	headerStyle template.CSS
	gridStyle   template.CSS
	itemStyle   template.CSS
}

// PageOptions는 페이지 단위 렌더링 옵션입니다.
type PageOptions struct {
	// Width가 0보다 크면 미디어 쿼리 대신 해당 너비의 규칙만 적용한 미리보기를 그립니다.
	Width int
}

type pageView struct {
	Heading     string
	BaseStyle   template.CSS
	HeaderStyle template.CSS
	GridStyle   template.CSS
	ItemStyle   template.CSS
	Grid        GridView
}

// NewShell은 템플릿을 읽고 기본 스타일을 준비합니다.
func NewShell(opts ShellOptions) (*Shell, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("템플릿 파싱 실패: %w", err)
	}
	if opts.Formatter.Location == nil {
		opts.Formatter = datefmt.Default()
	}
	if opts.Heading == "" {
		opts.Heading = DefaultHeading
	}

	return &Shell{
		tmpl:        tmpl,
		bp:          opts.Breakpoints,
		formatter:   opts.Formatter,
		heading:     opts.Heading,
		baseStyle:   template.CSS(baseStyle),
		headerStyle: template.CSS(headerStyle),
		gridStyle:   template.CSS(layout.Stylesheet(opts.Breakpoints)),
		itemStyle:   template.CSS(itemStyle(layout.For(layout.Wide).ImageHeight)),
	}, nil
}

// Page는 전체 HTML 문서를 w에 씁니다.
func (s *Shell) Page(w io.Writer, items []models.NewsItem, opts PageOptions) error {
	view := pageView{
		Heading:     s.heading,
		BaseStyle:   s.baseStyle,
		HeaderStyle: s.headerStyle,
		GridStyle:   s.gridStyle,
		ItemStyle:   s.itemStyle,
	}

	if opts.Width > 0 {
		l := layout.For(layout.Classify(s.bp, opts.Width))
		view.GridStyle = template.CSS(layout.FixedStylesheet(l))
		view.Grid = Grid(items, s.formatter, l, l.Viewport.String())
	} else {
		// 반응형 모드에서는 브라우저가 미디어 쿼리로 배치하므로 기본 구간 기준으로 계산만 해 둡니다.
		view.Grid = Grid(items, s.formatter, layout.For(layout.Wide), "responsive")
	}

	if err := s.tmpl.ExecuteTemplate(w, "page", view); err != nil {
		return fmt.Errorf("페이지 렌더링 실패: %w", err)
	}
	return nil
}

// Fragment는 헤더와 스타일 없이 그리드만 씁니다.
func (s *Shell) Fragment(w io.Writer, items []models.NewsItem) error {
	view := Grid(items, s.formatter, layout.For(layout.Wide), "responsive")
	if err := s.tmpl.ExecuteTemplate(w, "grid", view); err != nil {
		return fmt.Errorf("그리드 렌더링 실패: %w", err)
	}
	return nil
}

// Card는 카드 한 장만 씁니다.
func (s *Shell) Card(w io.Writer, item models.NewsItem) error {
	card := NewCard(item, s.formatter, layout.Placement(1, layout.For(layout.Wide)))
	if err := s.tmpl.ExecuteTemplate(w, "card", card); err != nil {
		return fmt.Errorf("카드 렌더링 실패: %w", err)
	}
	return nil
}
