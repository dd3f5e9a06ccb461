package assignment

import (
	"errors"
	"strings"
	"time"
)

// DefaultDateLayouts は日付の解釈を試みるレイアウトの一覧です。先頭から順に評価されます。
var DefaultDateLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02",
	"2006-02-01", "2006/02/01", "2006.02.01",
	"01-02-2006", "01/02/2006", "01.02.2006",
	"Jan-02-2006", "Jan/02/2006", "Jan.02.2006",
	"January-02-2006", "January/02/2006", "January.02.2006",
}

var errNoLayoutMatched = errors.New("no date layout matched")

// layoutsFor は強制指定されたフォーマットがあればそれのみを、無ければ既定の一覧を返します。
func layoutsFor(format string) []string {
	format = strings.TrimSpace(format)
	if format == "" {
		return DefaultDateLayouts
	}
	return []string{TranslateLayout(format)}
}

// parseDate は layouts を先頭から試し、最初に一致した日付を返します。
func parseDate(raw string, layouts []string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return normalizeDate(t), nil
		}
	}
	return time.Time{}, errNoLayoutMatched
}

// TranslateLayout は yyyy / MM / dd 形式のパターンを Go のレイアウトへ変換します。
// これらのトークンを含まない場合は Go のレイアウトとしてそのまま扱います。
func TranslateLayout(format string) string {
	if !strings.Contains(format, "yy") && !strings.Contains(format, "MM") && !strings.Contains(format, "dd") {
		return format
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		c := format[i]
		j := i
		for j < len(format) && format[j] == c {
			j++
		}
		run := j - i

		switch c {
		case 'y':
			if run >= 3 {
				b.WriteString("2006")
			} else {
				b.WriteString("06")
			}
		case 'M':
			switch {
			case run >= 4:
				b.WriteString("January")
			case run == 3:
				b.WriteString("Jan")
			case run == 2:
				b.WriteString("01")
			default:
				b.WriteString("1")
			}
		case 'd':
			if run >= 2 {
				b.WriteString("02")
			} else {
				b.WriteString("2")
			}
		default:
			b.WriteString(format[i:j])
		}
		i = j
	}
	return b.String()
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
