package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mseongj/news-grid/handlers"
)

func SetupRoutes(news *handlers.NewsHandler, publicDir string) *mux.Router {
	router := mux.NewRouter()

	// 페이지 + 조각
	router.HandleFunc("/", news.GetPage).Methods("GET")
	router.HandleFunc("/news", news.GetGrid).Methods("GET")

	// API 라우트
	router.HandleFunc("/api/news", news.GetItems).Methods("GET")
	router.HandleFunc("/healthz", handlers.Healthz).Methods("GET")

	// 이미지 등 정적 파일은 public 디렉토리에서 제공합니다.
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(publicDir))),
	)

	return router
}
