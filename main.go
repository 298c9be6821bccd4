package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/mseongj/news-grid/config"
	"github.com/mseongj/news-grid/datefmt"
	"github.com/mseongj/news-grid/handlers"
	"github.com/mseongj/news-grid/provider"
	"github.com/mseongj/news-grid/render"
	"github.com/mseongj/news-grid/routes"
)

// CORS 미들웨어 (읽기 전용 API라 GET/OPTIONS만 허용)
func enableCORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, hx-request, hx-trigger, hx-current-url, hx-target")
		if origin != "*" {
			w.Header().Set("Vary", "Origin")
		}

		// Preflight 요청은 바로 응답
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 요청 로그
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := provider.Open(ctx, cfg.DataSource, cfg.Breakpoints)
	if err != nil {
		log.Fatalf("데이터 소스 열기 실패: %v", err)
	}
	if db, ok := p.(*provider.SQL); ok {
		defer db.Close()
		if cfg.SeedDemo {
			if _, err := db.Seed(ctx, provider.DemoItems()); err != nil {
				log.Fatalf("데모 데이터 저장 실패: %v", err)
			}
		}
	}

	shell, err := render.NewShell(render.ShellOptions{
		Breakpoints: p.Breakpoints(),
		Formatter:   datefmt.New(cfg.Location),
	})
	if err != nil {
		log.Fatalf("페이지 셸 초기화 실패: %v", err)
	}

	news := handlers.NewNewsHandler(p, shell, cfg.PageCacheTTL)
	if err := news.Warm(ctx); err != nil {
		log.Fatalf("뉴스 목록 로드 실패: %v", err)
	}

	router := routes.SetupRoutes(news, cfg.PublicDir)
	log.Printf("Server is running on %s (source: %s)", cfg.Addr, cfg.DataSource)
	if err := http.ListenAndServe(cfg.Addr, logRequests(enableCORS(cfg.CORSOrigin, router))); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
