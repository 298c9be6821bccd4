package provider

import "github.com/mseongj/news-grid/models"

// DemoItems는 데이터 소스를 지정하지 않았을 때 보여줄 샘플 기사입니다.
func DemoItems() []models.NewsItem {
	return []models.NewsItem{
		{
			ID:       "1",
			Title:    "Global markets rally as central banks signal pause in rate hikes",
			Category: "Business",
			Date:     "2024-05-14T09:15:00Z",
			ImageURL: "https://picsum.photos/seed/markets/1200/800",
		},
		{
			ID:       "2",
			Title:    "Heatwave grips southern Europe as temperatures top 44C",
			Category: "World",
			Date:     "2024-05-14T08:40:00Z",
			ImageURL: "https://picsum.photos/seed/heatwave/800/600",
		},
		{
			ID:       "3",
			Title:    "New battery chemistry promises faster charging for electric cars",
			Category: "Technology",
			Date:     "2024-05-14T07:55:00Z",
			ImageURL: "https://picsum.photos/seed/battery/800/600",
		},
		{
			ID:       "4",
			Title:    "Underdogs clinch title in final minute of season",
			Category: "Sports",
			Date:     "2024-05-13T21:05:00Z",
			ImageURL: "https://picsum.photos/seed/football/800/600",
		},
		{
			ID:       "5",
			Title:    "Researchers map deep-sea vents teeming with unknown species",
			Category: "Science",
			Date:     "2024-05-13T18:30:00Z",
			ImageURL: "https://picsum.photos/seed/ocean/800/600",
		},
		{
			ID:       "6",
			Title:    "City council approves expansion of cycling network",
			Category: "Local",
			Date:     "2024-05-13T16:20:00Z",
			ImageURL: "https://picsum.photos/seed/cycling/800/600",
		},
		{
			ID:       "7",
			Title:    "Film festival opens with record number of debut directors",
			Category: "Culture",
			Date:     "2024-05-13T12:00:00Z",
			ImageURL: "https://picsum.photos/seed/festival/800/600",
		},
	}
}
