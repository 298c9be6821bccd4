package layout

import (
	"strings"
	"testing"

	"github.com/mseongj/news-grid/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	bp := models.DefaultBreakpoints

	Convey("너비에 따라 구간을 고른다", t, func() {
		So(Classify(bp, 1920), ShouldEqual, Wide)
		So(Classify(bp, 1025), ShouldEqual, Wide)
		So(Classify(bp, 1024), ShouldEqual, Laptop)
		So(Classify(bp, 900), ShouldEqual, Laptop)
		So(Classify(bp, 768), ShouldEqual, Tablet)
		So(Classify(bp, 481), ShouldEqual, Tablet)
		So(Classify(bp, 480), ShouldEqual, Mobile)
		So(Classify(bp, 320), ShouldEqual, Mobile)
		So(Classify(bp, 0), ShouldEqual, Mobile)
	})

	Convey("해석할 수 없는 기준값은 매칭되지 않는다", t, func() {
		broken := models.BreakpointSet{Mobile: "small", Tablet: "768px", Laptop: "1024px"}
		So(Classify(broken, 320), ShouldEqual, Tablet)
		So(Validate(broken), ShouldNotBeNil)
		So(Validate(bp), ShouldBeNil)
	})
}

func TestTable(t *testing.T) {
	Convey("구간별 규칙", t, func() {
		wide := For(Wide)
		So(wide.Columns, ShouldEqual, 4)
		So(wide.RowGap, ShouldEqual, 20)
		So(wide.Separator, ShouldBeFalse)
		So(wide.HeroColumns, ShouldResemble, Span{1, 4})
		So(wide.HeroRows, ShouldResemble, Span{1, 3})
		So(wide.HeroImageHeight, ShouldEqual, 500)

		laptop := For(Laptop)
		So(laptop.Columns, ShouldEqual, 3)
		So(laptop.RowGap, ShouldEqual, 0)
		So(laptop.Separator, ShouldBeTrue)
		So(laptop.HeroColumns, ShouldResemble, Span{1, 3})

		tablet := For(Tablet)
		So(tablet.Columns, ShouldEqual, 2)
		So(tablet.HeroColumns.End-tablet.HeroColumns.Start, ShouldEqual, tablet.Columns)

		mobile := For(Mobile)
		So(mobile.Columns, ShouldEqual, 1)
		So(mobile.RowGap+mobile.ColumnGap, ShouldEqual, 0)
		So(mobile.HeroImageHeight, ShouldEqual, 300)
	})

	Convey("알 수 없는 구간은 Wide", t, func() {
		So(For(Viewport(42)).Viewport, ShouldEqual, Wide)
		So(Viewport(42).String(), ShouldEqual, "viewport(42)")
	})
}

func TestPlacement(t *testing.T) {
	Convey("5개 항목 중 0번은 데스크톱에서 히어로, 모바일에서 1칸", t, func() {
		wide := For(Classify(models.DefaultBreakpoints, 1440))
		mobile := For(Classify(models.DefaultBreakpoints, 375))

		for i := 0; i < 5; i++ {
			desk := Placement(i, wide)
			small := Placement(i, mobile)
			if i == 0 {
				So(desk.Enlarged(), ShouldBeTrue)
				So(desk.Columns, ShouldResemble, Span{1, 4})
				So(desk.Rows, ShouldResemble, Span{1, 3})
				So(desk.ImageHeight, ShouldEqual, 500)

				So(small.Enlarged(), ShouldBeFalse)
				So(small.Columns, ShouldResemble, Span{1, 2})
				So(small.ImageHeight, ShouldEqual, 300)
				continue
			}
			So(desk.Auto, ShouldBeTrue)
			So(desk.ImageHeight, ShouldEqual, 180)
			So(small.Enlarged(), ShouldBeFalse)
		}
	})
}

func TestParsePixels(t *testing.T) {
	Convey("px 문자열 해석", t, func() {
		n, err := ParsePixels("768px")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 768)

		n, err = ParsePixels(" 1024PX ")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 1024)

		n, err = ParsePixels("480")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 480)

		_, err = ParsePixels("40em")
		So(err, ShouldNotBeNil)
		_, err = ParsePixels("-1px")
		So(err, ShouldNotBeNil)
	})
}

func TestStylesheet(t *testing.T) {
	Convey("반응형 CSS는 기본 규칙 뒤에 좁아지는 순서로 미디어 쿼리를 둔다", t, func() {
		css := Stylesheet(models.DefaultBreakpoints)

		So(css, ShouldContainSubstring, "grid-template-columns: repeat(4, 1fr);")
		So(css, ShouldContainSubstring, "grid-column: 1 / 4;")
		So(css, ShouldContainSubstring, "height: 500px;")

		laptop := strings.Index(css, "@media (max-width: 1024px)")
		tablet := strings.Index(css, "@media (max-width: 768px)")
		mobile := strings.Index(css, "@media (max-width: 480px)")
		So(laptop, ShouldBeGreaterThan, 0)
		So(tablet, ShouldBeGreaterThan, laptop)
		So(mobile, ShouldBeGreaterThan, tablet)

		So(css[laptop:tablet], ShouldContainSubstring, "repeat(3, 1fr)")
		So(css[laptop:tablet], ShouldContainSubstring, "gap: 0 20px;")
		So(css[laptop:tablet], ShouldContainSubstring, "border-bottom: 1px solid #e0e0e0;")
		So(css[tablet:mobile], ShouldContainSubstring, "repeat(2, 1fr)")
		So(css[mobile:], ShouldContainSubstring, "grid-template-columns: 1fr;")
		So(css[mobile:], ShouldContainSubstring, "gap: 0;")
		So(css[mobile:], ShouldContainSubstring, "grid-column: 1 / 2;")
		So(css[mobile:], ShouldContainSubstring, "height: 300px;")
		So(css[mobile:], ShouldContainSubstring, "padding-left: 0;")
	})

	Convey("해석할 수 없는 기준값의 미디어 쿼리는 생략", t, func() {
		css := Stylesheet(models.BreakpointSet{Mobile: "480px", Tablet: "wide", Laptop: "1024px"})
		So(strings.Count(css, "@media"), ShouldEqual, 2)
	})

	Convey("고정 CSS는 미디어 쿼리가 없다", t, func() {
		css := FixedStylesheet(For(Mobile))
		So(css, ShouldNotContainSubstring, "@media")
		So(css, ShouldContainSubstring, "height: 300px;")
	})
}
