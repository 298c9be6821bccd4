// Package datefmt는 기사 날짜 문자열을 화면 표시용 짧은 시각으로 바꿉니다.
package datefmt

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrUnparsable은 어떤 형식으로도 해석할 수 없는 날짜 문자열일 때 반환됩니다.
var ErrUnparsable = errors.New("unparsable date")

type dateLayout struct {
	layout string
	utc    bool // 시간대 정보가 없는 날짜 전용 형식은 UTC 자정으로 해석
	abbrev bool // "EST" 같은 약어 시간대를 포함
}

// time.Parse는 모르는 약어를 오프셋 0으로 처리하므로 RFC 822 약어는 직접 풉니다.
var zoneAbbrevs = map[string]int{
	"UT":  0,
	"UTC": 0,
	"GMT": 0,
	"Z":   0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// 앞에서부터 순서대로 시도합니다.
var layouts = []dateLayout{
	{layout: time.RFC3339Nano},
	{layout: "2006-01-02T15:04Z07:00"},
	{layout: "2006-01-02T15:04:05.999999999"},
	{layout: "2006-01-02T15:04"},
	{layout: "2006-01-02 15:04:05"},
	{layout: "2006-01-02 15:04"},
	{layout: "2006-01-02", utc: true},
	{layout: time.RFC1123Z},
	{layout: time.RFC1123, abbrev: true},
	{layout: time.RFC822Z},
	{layout: time.RFC822, abbrev: true},
	{layout: time.RFC850, abbrev: true},
	{layout: time.ANSIC},
	{layout: "Mon, 2 Jan 2006 15:04:05 -0700"},
	{layout: "Mon, 2 Jan 2006 15:04:05 MST", abbrev: true},
	{layout: "Jan 2, 2006"},
	{layout: "January 2, 2006"},
	{layout: "2006/01/02"},
}

// Formatter는 지정된 시간대로 시각을 표시합니다.
type Formatter struct {
	Location *time.Location
}

// Default는 서버 로컬 시간대를 쓰는 Formatter를 반환합니다.
func Default() Formatter {
	return Formatter{Location: time.Local}
}

// New는 loc 시간대의 Formatter를 만듭니다. nil이면 time.Local을 씁니다.
func New(loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{Location: loc}
}

// Parse는 s를 알려진 형식 중 하나로 해석합니다.
// 시간대가 없는 날짜-시각은 Formatter의 시간대로 해석합니다.
func (f Formatter) Parse(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrUnparsable)
	}

	loc := f.location()
	for _, l := range layouts {
		in := loc
		if l.utc {
			in = time.UTC
		}
		t, err := time.ParseInLocation(l.layout, trimmed, in)
		if err != nil {
			continue
		}
		if l.abbrev {
			return resolveAbbrev(t, loc, s)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
}

// resolveAbbrev는 오프셋 0으로 해석된 약어 시간대를 실제 오프셋으로 고칩니다.
// 표시 시간대의 약어와 같거나 표에 있으면 쓰고, 아니면 해석 실패로 봅니다.
func resolveAbbrev(t time.Time, loc *time.Location, raw string) (time.Time, error) {
	name, offset := t.Zone()
	if offset != 0 {
		return t, nil
	}
	wall := func(z *time.Location) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), z)
	}
	local := wall(loc)
	if n, o := local.Zone(); n == name && o == 0 {
		return local, nil
	}
	if off, ok := zoneAbbrevs[strings.ToUpper(name)]; ok {
		return wall(time.FixedZone(name, off)), nil
	}
	return time.Time{}, fmt.Errorf("%w: unknown zone %q in %q", ErrUnparsable, name, raw)
}

// Format은 날짜 문자열을 "10:30 AM GMT+9" 형태로 바꿉니다.
// 해석에 실패하면 진단 로그를 남기고 입력을 그대로 돌려줍니다.
func (f Formatter) Format(s string) string {
	t, err := f.Parse(s)
	if err != nil {
		log.Printf("날짜 형식 변환 실패: %v", err)
		return s
	}
	local := t.In(f.location())
	return local.Format("3:04 PM") + " " + shortOffset(local)
}

func (f Formatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// shortOffset은 "GMT", "GMT+9", "GMT-5", "GMT+5:30" 형식의 오프셋 표기를 만듭니다.
func shortOffset(t time.Time) string {
	_, offset := t.Zone()
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}

// Parse는 기본 Formatter로 s를 해석합니다.
func Parse(s string) (time.Time, error) {
	return Default().Parse(s)
}

// Format은 기본 Formatter로 s를 변환합니다.
func Format(s string) string {
	return Default().Format(s)
}
