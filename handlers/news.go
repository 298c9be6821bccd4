package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mseongj/news-grid/models"
	"github.com/mseongj/news-grid/provider"
	"github.com/mseongj/news-grid/render"
)

// PageCache는 렌더링된 반응형 페이지와 그 때 읽은 기사 목록을 보관합니다.
type PageCache struct {
	Items     []models.NewsItem
	Page      []byte
	ExpiresAt time.Time
	mutex     sync.RWMutex
}

// NewsHandler는 뉴스 그리드 페이지를 제공합니다.
type NewsHandler struct {
	provider provider.Provider
	shell    *render.Shell
	ttl      time.Duration
	cache    *PageCache
	now      func() time.Time
	loadMu   sync.Mutex // 만료 시 한 요청만 다시 읽도록
}

// NewNewsHandler는 핸들러를 만듭니다. ttl이 0 이하이면 캐시가 만료되지 않습니다.
func NewNewsHandler(p provider.Provider, shell *render.Shell, ttl time.Duration) *NewsHandler {
	return &NewsHandler{
		provider: p,
		shell:    shell,
		ttl:      ttl,
		cache:    &PageCache{},
		now:      time.Now,
	}
}

func (h *NewsHandler) getFromCache() ([]models.NewsItem, []byte, bool) {
	h.cache.mutex.RLock()
	defer h.cache.mutex.RUnlock()
	if h.cache.Page == nil {
		return nil, nil, false
	}
	if h.ttl > 0 && !h.now().Before(h.cache.ExpiresAt) {
		return nil, nil, false
	}
	return h.cache.Items, h.cache.Page, true
}

func (h *NewsHandler) setCache(items []models.NewsItem, page []byte) {
	h.cache.mutex.Lock()
	defer h.cache.mutex.Unlock()
	h.cache.Items = items
	h.cache.Page = page
	h.cache.ExpiresAt = h.now().Add(h.ttl)
	if h.ttl > 0 {
		log.Printf("페이지 캐시 저장 (%d건, 만료 시간: %v)", len(items), h.cache.ExpiresAt)
	}
}

// loadAndCache는 캐시가 유효하면 그대로 쓰고, 아니면 목록을 다시 읽어 페이지를 렌더링합니다.
func (h *NewsHandler) loadAndCache(ctx context.Context) ([]models.NewsItem, []byte, error) {
	if items, page, ok := h.getFromCache(); ok {
		return items, page, nil
	}

	h.loadMu.Lock()
	defer h.loadMu.Unlock()
	// 기다리는 동안 다른 요청이 이미 채웠을 수 있음
	if items, page, ok := h.getFromCache(); ok {
		return items, page, nil
	}

	items, err := h.provider.Items(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("뉴스 목록 로드 실패: %w", err)
	}

	var buf bytes.Buffer
	if err := h.shell.Page(&buf, items, render.PageOptions{}); err != nil {
		return nil, nil, err
	}
	page := buf.Bytes()
	h.setCache(items, page)
	return items, page, nil
}

// Warm은 서버 시작 시 목록을 한 번 읽어 둡니다.
func (h *NewsHandler) Warm(ctx context.Context) error {
	_, _, err := h.loadAndCache(ctx)
	return err
}

// GetPage는 전체 페이지를 응답합니다. ?width=N이면 해당 너비 미리보기를 그립니다.
func (h *NewsHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	items, page, err := h.loadAndCache(r.Context())
	if err != nil {
		log.Printf("페이지 렌더링 실패: %v", err)
		http.Error(w, "뉴스 페이지를 만들 수 없습니다.", http.StatusInternalServerError)
		return
	}

	widthParam := r.URL.Query().Get("width")
	if widthParam == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
		return
	}

	width, err := strconv.Atoi(widthParam)
	if err != nil || width <= 0 {
		http.Error(w, "width는 양의 정수여야 합니다.", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := h.shell.Page(&buf, items, render.PageOptions{Width: width}); err != nil {
		log.Printf("미리보기 렌더링 실패: %v", err)
		http.Error(w, "뉴스 페이지를 만들 수 없습니다.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// GetGrid는 그리드 HTML 조각만 응답합니다.
func (h *NewsHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	items, _, err := h.loadAndCache(r.Context())
	if err != nil {
		log.Printf("그리드 렌더링 실패: %v", err)
		http.Error(w, "뉴스 정보를 가져올 수 없습니다.", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.shell.Fragment(&buf, items); err != nil {
		log.Printf("그리드 렌더링 실패: %v", err)
		http.Error(w, "뉴스 정보를 가져올 수 없습니다.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// GetItems는 저장된 값 그대로 JSON으로 응답합니다.
func (h *NewsHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, _, err := h.loadAndCache(r.Context())
	if err != nil {
		log.Printf("뉴스 목록 로드 실패: %v", err)
		http.Error(w, "뉴스 정보를 가져올 수 없습니다.", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.NewsItem{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// Healthz는 상태 확인용입니다.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`))
}
