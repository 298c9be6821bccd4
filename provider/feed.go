package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/mseongj/news-grid/models"
)

// Feed는 로컬 RSS/Atom/JSON 피드 파일을 읽는 Provider입니다.
// 네트워크에서 가져오지는 않습니다.
type Feed struct {
	path string
	bp   models.BreakpointSet
}

func NewFeed(path string, bp models.BreakpointSet) *Feed {
	return &Feed{path: path, bp: bp}
}

func (f *Feed) Items(ctx context.Context) ([]models.NewsItem, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("피드 파일 열기 실패: %w", err)
	}
	defer file.Close()

	feed, err := gofeed.NewParser().Parse(file)
	if err != nil {
		return nil, fmt.Errorf("피드 파싱 실패 (%s): %w", f.path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return feedItems(f.path, feed), nil
}

func (f *Feed) Breakpoints() models.BreakpointSet {
	return f.bp
}

func feedItems(source string, feed *gofeed.Feed) []models.NewsItem {
	items := make([]models.NewsItem, 0, len(feed.Items))
	for i, it := range feed.Items {
		if it == nil {
			continue
		}
		items = append(items, models.NewsItem{
			ID:       itemID(source, i, it),
			Title:    stripTags(it.Title),
			Category: itemCategory(feed, it),
			Date:     itemDate(it),
			ImageURL: itemImage(it),
		})
	}
	return items
}

// itemID는 GUID, 링크, (파일 경로, 순서, 제목) 순으로 ID를 정합니다.
// 같은 파일을 다시 읽어도 ID가 바뀌지 않습니다.
func itemID(source string, index int, it *gofeed.Item) string {
	if it.GUID != "" {
		return it.GUID
	}
	if it.Link != "" {
		// 같은 링크는 항상 같은 ID
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(it.Link)).String()
	}
	key := fmt.Sprintf("%s#%d:%s", source, index, it.Title)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func itemCategory(feed *gofeed.Feed, it *gofeed.Item) string {
	for _, c := range it.Categories {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return feed.Title
}

// 날짜 문자열은 해석하지 않고 원문 그대로 넘깁니다.
func itemDate(it *gofeed.Item) string {
	if it.Published != "" {
		return strings.TrimSpace(it.Published)
	}
	return strings.TrimSpace(it.Updated)
}

func itemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	if media, ok := it.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, e := range media[name] {
				if u := e.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}
	return ""
}

// stripTags는 피드 제목에 섞인 <b> 같은 인라인 태그를 걷어내고 엔티티를 풉니다.
func stripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}
