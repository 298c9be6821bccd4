// Package config는 .env 파일과 환경 변수에서 서버 설정을 읽습니다.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/mseongj/news-grid/layout"
	"github.com/mseongj/news-grid/models"
)

var loadEnvOnce sync.Once

// Config는 서버 실행 설정입니다.
type Config struct {
	Addr         string
	DataSource   string
	Location     *time.Location
	Breakpoints  models.BreakpointSet
	PublicDir    string
	PageCacheTTL time.Duration
	CORSOrigin   string
	SeedDemo     bool
}

// LoadEnv는 .env 파일을 한 번만 읽습니다. 파일이 없으면 환경 변수만 사용합니다.
func LoadEnv(filenames ...string) {
	loadEnvOnce.Do(func() {
		if len(filenames) == 0 {
			filenames = []string{".env"}
		}
		if err := godotenv.Load(filenames...); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Println(".env 파일 없음, 환경 변수만 사용")
				return
			}
			log.Printf(".env 파일 로드 실패: %v", err)
		}
	})
}

// Load는 .env를 읽은 뒤 환경 변수로 Config를 만듭니다.
func Load() (Config, error) {
	LoadEnv()
	return FromLookup(os.LookupEnv)
}

// FromLookup은 lookup 함수로 Config를 만듭니다. 테스트에서 환경 변수를 대신합니다.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Addr:       get("ADDR", ":8080"),
		DataSource: get("DATA_SOURCE", "static"),
		PublicDir:  get("PUBLIC_DIR", "./public/"),
		CORSOrigin: get("CORS_ORIGIN", "*"),
		Breakpoints: models.BreakpointSet{
			Mobile: get("BREAKPOINT_MOBILE", models.DefaultBreakpoints.Mobile),
			Tablet: get("BREAKPOINT_TABLET", models.DefaultBreakpoints.Tablet),
			Laptop: get("BREAKPOINT_LAPTOP", models.DefaultBreakpoints.Laptop),
		},
	}

	loc, err := time.LoadLocation(get("DISPLAY_TZ", "Local"))
	if err != nil {
		return Config{}, fmt.Errorf("DISPLAY_TZ: %w", err)
	}
	cfg.Location = loc

	ttl, err := time.ParseDuration(get("PAGE_CACHE_TTL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("PAGE_CACHE_TTL: %w", err)
	}
	cfg.PageCacheTTL = ttl

	seed, err := strconv.ParseBool(get("SEED_DEMO", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("SEED_DEMO: %w", err)
	}
	cfg.SeedDemo = seed

	// 잘못된 기준값은 해당 미디어 쿼리만 빠지므로 경고만 남깁니다.
	if err := layout.Validate(cfg.Breakpoints); err != nil {
		log.Printf("브레이크포인트 경고: %v", err)
	}
	return cfg, nil
}
