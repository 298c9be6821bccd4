package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mseongj/news-grid/datefmt"
	"github.com/mseongj/news-grid/handlers"
	"github.com/mseongj/news-grid/models"
	"github.com/mseongj/news-grid/provider"
	"github.com/mseongj/news-grid/render"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSetupRoutes(t *testing.T) {
	shell, err := render.NewShell(render.ShellOptions{
		Breakpoints: models.DefaultBreakpoints,
		Formatter:   datefmt.New(time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	news := handlers.NewNewsHandler(provider.NewStatic(provider.DemoItems(), models.DefaultBreakpoints), shell, 0)
	router := SetupRoutes(news, "testdata")

	do := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	Convey("등록된 경로", t, func() {
		So(do(http.MethodGet, "/").Code, ShouldEqual, http.StatusOK)
		So(do(http.MethodGet, "/?width=800").Code, ShouldEqual, http.StatusOK)
		So(do(http.MethodGet, "/news").Code, ShouldEqual, http.StatusOK)
		So(do(http.MethodGet, "/api/news").Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(do(http.MethodGet, "/healthz").Code, ShouldEqual, http.StatusOK)
	})

	Convey("정적 파일", t, func() {
		rec := do(http.MethodGet, "/static/hello.txt")
		So(rec.Code, ShouldEqual, http.StatusOK)
		So(rec.Body.String(), ShouldEqual, "ok\n")
	})

	Convey("GET 외 메서드는 거절", t, func() {
		So(do(http.MethodPost, "/api/news").Code, ShouldEqual, http.StatusMethodNotAllowed)
	})
}
