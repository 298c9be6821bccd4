// Package layout는 뷰포트 너비에 따른 그리드 배치 규칙을 정의합니다.
//
// 모든 규칙은 viewport → Layout 정적 테이블 하나에 모여 있고,
// CSS 생성과 서버 측 배치 계산이 같은 테이블을 읽습니다.
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mseongj/news-grid/models"
)

// Viewport는 너비 구간입니다.
type Viewport int

const (
	Wide Viewport = iota
	Laptop
	Tablet
	Mobile
)

func (v Viewport) String() string {
	switch v {
	case Wide:
		return "wide"
	case Laptop:
		return "laptop"
	case Tablet:
		return "tablet"
	case Mobile:
		return "mobile"
	default:
		return "viewport(" + strconv.Itoa(int(v)) + ")"
	}
}

// Span은 CSS grid line 구간입니다. End는 포함하지 않습니다.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d / %d", s.Start, s.End)
}

// Layout은 한 뷰포트 구간의 그리드 규칙입니다.
type Layout struct {
	Viewport        Viewport
	Columns         int
	RowGap          int
	ColumnGap       int
	Separator       bool // 행 간격 대신 셀마다 아래 테두리 + 여백
	FlushSides      bool // 셀 좌우 패딩 제거
	HeroColumns     Span
	HeroRows        Span
	HeroImageHeight int
	ImageHeight     int
}

const (
	gap              = 20
	standardImage    = 180
	heroImage        = 500
	compactHeroImage = 300
	separatorSpacing = 20
	separatorBorder  = "1px solid #e0e0e0"
	gridMaxWidth     = 1400
	gridOuterPadding = 20
)

// 좁은 구간일수록 뒤에 옵니다. Stylesheet도 이 순서로 미디어 쿼리를 씁니다.
var table = [...]Layout{
	Wide: {
		Viewport:        Wide,
		Columns:         4,
		RowGap:          gap,
		ColumnGap:       gap,
		HeroColumns:     Span{1, 4},
		HeroRows:        Span{1, 3},
		HeroImageHeight: heroImage,
		ImageHeight:     standardImage,
	},
	Laptop: {
		Viewport:        Laptop,
		Columns:         3,
		ColumnGap:       gap,
		Separator:       true,
		HeroColumns:     Span{1, 3},
		HeroRows:        Span{1, 3},
		HeroImageHeight: heroImage,
		ImageHeight:     standardImage,
	},
	Tablet: {
		Viewport:        Tablet,
		Columns:         2,
		ColumnGap:       gap,
		Separator:       true,
		HeroColumns:     Span{1, 3},
		HeroRows:        Span{1, 3},
		HeroImageHeight: heroImage,
		ImageHeight:     standardImage,
	},
	Mobile: {
		Viewport:        Mobile,
		Columns:         1,
		Separator:       true,
		FlushSides:      true,
		HeroColumns:     Span{1, 2},
		HeroRows:        Span{1, 2},
		HeroImageHeight: compactHeroImage,
		ImageHeight:     standardImage,
	},
}

// For는 뷰포트 구간의 Layout을 반환합니다. 알 수 없는 값은 Wide로 취급합니다.
func For(v Viewport) Layout {
	if v < Wide || v > Mobile {
		return table[Wide]
	}
	return table[v]
}

// Cell은 그리드 안에서 카드 하나가 차지하는 위치입니다.
type Cell struct {
	Hero        bool
	Auto        bool // 자동 배치되는 1칸 셀
	Columns     Span
	Rows        Span
	ImageHeight int
}

// Placement는 index 위치 카드의 셀을 계산합니다.
// 0번은 항상 히어로 자리이며, 모바일에서는 한 칸으로 줄어듭니다.
func Placement(index int, l Layout) Cell {
	if index == 0 {
		return Cell{
			Hero:        true,
			Columns:     l.HeroColumns,
			Rows:        l.HeroRows,
			ImageHeight: l.HeroImageHeight,
		}
	}
	return Cell{Auto: true, ImageHeight: l.ImageHeight}
}

// Enlarged는 셀이 1칸보다 넓거나 높은지 알려줍니다.
func (c Cell) Enlarged() bool {
	if c.Auto {
		return false
	}
	return c.Columns.End-c.Columns.Start > 1 || c.Rows.End-c.Rows.Start > 1
}

// ParsePixels는 "768px" 형식의 값을 정수로 바꿉니다. 단위 없는 숫자도 px로 봅니다.
func ParsePixels(s string) (int, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	v = strings.TrimSuffix(v, "px")
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid pixel width %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid pixel width %q: negative", s)
	}
	return n, nil
}

type threshold struct {
	viewport Viewport
	value    string
}

// 좁은 구간부터 검사합니다.
func thresholds(bp models.BreakpointSet) []threshold {
	return []threshold{
		{Mobile, bp.Mobile},
		{Tablet, bp.Tablet},
		{Laptop, bp.Laptop},
	}
}

// Classify는 width가 속하는 뷰포트 구간을 고릅니다.
// max-width 미디어 쿼리와 같이 경계값을 포함하며, 해석할 수 없는 기준값은 무시합니다.
func Classify(bp models.BreakpointSet, width int) Viewport {
	for _, t := range thresholds(bp) {
		max, err := ParsePixels(t.value)
		if err != nil {
			continue
		}
		if width <= max {
			return t.viewport
		}
	}
	return Wide
}

// Validate는 해석할 수 없는 기준값을 모두 모아 보고합니다.
func Validate(bp models.BreakpointSet) error {
	var bad []string
	for _, t := range thresholds(bp) {
		if _, err := ParsePixels(t.value); err != nil {
			bad = append(bad, fmt.Sprintf("%s=%q", t.viewport, t.value))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid breakpoints: %s", strings.Join(bad, ", "))
	}
	return nil
}
