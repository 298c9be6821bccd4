package layout

import (
	"fmt"
	"strings"

	"github.com/mseongj/news-grid/models"
)

// Stylesheet는 반응형 그리드 CSS를 만듭니다.
// Wide 규칙을 기본으로 쓰고, 그 뒤에 laptop → tablet → mobile 순서로
// max-width 미디어 쿼리를 붙입니다. 해석할 수 없는 기준값의 구간은 건너뜁니다.
func Stylesheet(bp models.BreakpointSet) string {
	var b strings.Builder
	writeGridBase(&b)
	writeRules(&b, For(Wide), "")

	for _, v := range []Viewport{Laptop, Tablet, Mobile} {
		value := breakpointFor(bp, v)
		px, err := ParsePixels(value)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "@media (max-width: %dpx) {\n", px)
		writeRules(&b, For(v), "  ")
		b.WriteString("}\n")
	}
	return b.String()
}

// FixedStylesheet는 미디어 쿼리 없이 한 구간의 규칙만 담은 CSS를 만듭니다.
func FixedStylesheet(l Layout) string {
	var b strings.Builder
	writeGridBase(&b)
	writeRules(&b, l, "")
	return b.String()
}

func breakpointFor(bp models.BreakpointSet, v Viewport) string {
	switch v {
	case Mobile:
		return bp.Mobile
	case Tablet:
		return bp.Tablet
	case Laptop:
		return bp.Laptop
	}
	return ""
}

func writeGridBase(b *strings.Builder) {
	fmt.Fprintf(b, `.news-grid {
  display: grid;
  padding: %dpx;
  max-width: %dpx;
  margin: 0 auto;
}
`, gridOuterPadding, gridMaxWidth)
}

func writeRules(b *strings.Builder, l Layout, indent string) {
	rule := func(selector string, decls ...string) {
		fmt.Fprintf(b, "%s%s {\n", indent, selector)
		for _, d := range decls {
			fmt.Fprintf(b, "%s  %s;\n", indent, d)
		}
		fmt.Fprintf(b, "%s}\n", indent)
	}

	rule(".news-grid",
		fmt.Sprintf("grid-template-columns: %s", columns(l.Columns)),
		fmt.Sprintf("gap: %s", gapValue(l.RowGap, l.ColumnGap)),
	)

	if l.Separator {
		decls := []string{
			"border-bottom: " + separatorBorder,
			fmt.Sprintf("padding-bottom: %dpx", separatorSpacing),
			fmt.Sprintf("margin-bottom: %dpx", separatorSpacing),
		}
		if l.FlushSides {
			decls = append(decls, "padding-left: 0", "padding-right: 0")
		}
		rule(".news-grid > .news-item", decls...)
	}

	hero := Placement(0, l)
	rule(".news-grid > .news-item:first-child",
		"grid-column: "+hero.Columns.String(),
		"grid-row: "+hero.Rows.String(),
	)
	rule(".news-grid > .news-item:first-child img.news-image",
		fmt.Sprintf("height: %dpx", hero.ImageHeight),
		"object-fit: cover",
	)
}

func columns(n int) string {
	if n <= 1 {
		return "1fr"
	}
	return fmt.Sprintf("repeat(%d, 1fr)", n)
}

func gapValue(row, col int) string {
	if row == col {
		return px(row)
	}
	return px(row) + " " + px(col)
}

func px(n int) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%dpx", n)
}
