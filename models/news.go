package models

// NewsItem은 그리드에 표시되는 개별 뉴스 기사 항목입니다.
// 데이터 제공자가 한 번에 넘겨주며, 로드 이후에는 변경하지 않습니다.
type NewsItem struct {
	ID       string `json:"id"`       // 고유 식별자
	Title    string `json:"title"`    // 기사 제목
	Category string `json:"category"` // 카테고리 (저장값 그대로, 대문자 변환은 CSS에서만)
	Date     string `json:"date"`     // ISO 형식 또는 임의 문자열
	ImageURL string `json:"imageUrl"` // 대표 이미지 URL
}

// BreakpointSet은 레이아웃 전환 기준이 되는 최대 너비 값입니다. ("480px" 형식)
type BreakpointSet struct {
	Mobile string `json:"mobile"`
	Tablet string `json:"tablet"`
	Laptop string `json:"laptop"`
}

// DefaultBreakpoints는 별도 설정이 없을 때 사용하는 기준값입니다.
var DefaultBreakpoints = BreakpointSet{
	Mobile: "480px",
	Tablet: "768px",
	Laptop: "1024px",
}
