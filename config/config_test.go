package config

import (
	"testing"
	"time"

	"github.com/mseongj/news-grid/models"
	. "github.com/smartystreets/goconvey/convey"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	Convey("값이 없으면 기본값", t, func() {
		cfg, err := FromLookup(lookupFrom(nil))
		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":8080")
		So(cfg.DataSource, ShouldEqual, "static")
		So(cfg.Breakpoints, ShouldResemble, models.DefaultBreakpoints)
		So(cfg.PageCacheTTL, ShouldEqual, 30*time.Minute)
		So(cfg.Location, ShouldEqual, time.Local)
		So(cfg.SeedDemo, ShouldBeFalse)
	})

	Convey("환경 변수로 덮어쓴다", t, func() {
		cfg, err := FromLookup(lookupFrom(map[string]string{
			"ADDR":              "127.0.0.1:9000",
			"DATA_SOURCE":       "feed:news.xml",
			"DISPLAY_TZ":        "UTC",
			"BREAKPOINT_TABLET": "800px",
			"PAGE_CACHE_TTL":    "5m",
			"SEED_DEMO":         "true",
		}))
		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, "127.0.0.1:9000")
		So(cfg.DataSource, ShouldEqual, "feed:news.xml")
		So(cfg.Location, ShouldEqual, time.UTC)
		So(cfg.Breakpoints.Tablet, ShouldEqual, "800px")
		So(cfg.Breakpoints.Mobile, ShouldEqual, "480px")
		So(cfg.PageCacheTTL, ShouldEqual, 5*time.Minute)
		So(cfg.SeedDemo, ShouldBeTrue)
	})

	Convey("잘못된 값은 에러", t, func() {
		_, err := FromLookup(lookupFrom(map[string]string{"PAGE_CACHE_TTL": "soon"}))
		So(err, ShouldNotBeNil)

		_, err = FromLookup(lookupFrom(map[string]string{"DISPLAY_TZ": "Mars/Olympus"}))
		So(err, ShouldNotBeNil)

		_, err = FromLookup(lookupFrom(map[string]string{"SEED_DEMO": "maybe"}))
		So(err, ShouldNotBeNil)
	})

	Convey("잘못된 브레이크포인트는 경고만", t, func() {
		cfg, err := FromLookup(lookupFrom(map[string]string{"BREAKPOINT_MOBILE": "tiny"}))
		So(err, ShouldBeNil)
		So(cfg.Breakpoints.Mobile, ShouldEqual, "tiny")
	})
}
