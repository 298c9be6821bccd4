package render

import "fmt"

// 문서 전체에 한 번만 들어가는 기본 스타일
const baseStyle = `body {
  font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
  background-color: white;
  color: #333;
  margin: 0;
}
* {
  box-sizing: border-box;
}
a {
  color: #333;
  text-decoration: none;
}
a:hover {
  text-decoration: underline;
}`

const headerStyle = `.app-header {
  padding: 10px 20px;
  border-bottom: 1px solid #e0e0e0;
  margin-bottom: 20px;
}
.app-header h1 {
  font-size: 1.8rem;
  color: #d64000;
  margin: 0;
}`

// itemStyle은 카드 한 장의 스타일입니다. 카테고리 대문자 변환은 여기서만 합니다.
func itemStyle(imageHeight int) string {
	return fmt.Sprintf(`.news-item {
  background-color: transparent;
  border-radius: 0;
  overflow: hidden;
  border: none;
  box-shadow: none;
  transition: transform 0.2s;
  text-align: start;
  display: flex;
  flex-direction: column;
}
.news-item:hover {
  transform: translateY(-3px);
}
.news-item .news-image {
  width: 100%%;
  height: %dpx;
  object-fit: cover;
  display: block;
}
.news-item .news-content {
  padding: 15px 0 0 0;
  flex-grow: 1;
  display: flex;
  flex-direction: column;
  justify-content: space-between;
}
.news-item .news-category {
  display: inline-block;
  font-size: 0.75rem;
  color: #555;
  margin-bottom: 8px;
  text-transform: uppercase;
}
.news-item .news-title {
  font-size: 1.1rem;
  margin: 0 0 10px 0;
  color: #111;
  font-weight: 600;
  line-height: 1.3;
}
.news-item .news-date {
  display: block;
  color: #666;
  font-size: 0.8rem;
  margin-top: 10px;
}`, imageHeight)
}
