package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultDateFormat renders as "Mar 05, 2024".
const DefaultDateFormat = "MMM dd, yyyy"

const invalidDate = "Invalid Date"

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05-07",
	time.RFC1123Z,
	time.RFC1123,
}

// toTime accepts time.Time, *time.Time, unix milliseconds or a date string.
// Date-only strings are UTC midnight; strings without an offset are local time.
func toTime(date any) (time.Time, bool) {
	switch v := date.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case int64:
		return time.UnixMilli(v), true
	case int:
		return time.UnixMilli(int64(v)), true
	case string:
		s := strings.TrimSpace(v)
		for _, l := range zonedLayouts {
			if t, err := time.Parse(l, s); err == nil {
				return t, true
			}
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t, true
		}
		for _, l := range naiveLayouts {
			if t, err := time.ParseInLocation(l, s, time.Local); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// FormatDate renders date with a Unicode/date-fns style pattern such as
// "MMM dd, yyyy" or "EEEE 'at' h:mm a". Unparseable input yields "Invalid Date".
func FormatDate(date any, formatStr ...string) string {
	t, ok := toTime(date)
	if !ok {
		return invalidDate
	}
	pattern := DefaultDateFormat
	if len(formatStr) > 0 && formatStr[0] != "" {
		pattern = formatStr[0]
	}
	return formatPattern(t, pattern)
}

// FormatDateRelative describes date relative to now in calendar terms, e.g.
// "last Tuesday at 3:04 PM" or "tomorrow at 9:00 AM".
func FormatDateRelative(date any) string {
	t, ok := toTime(date)
	if !ok {
		return invalidDate
	}
	return formatRelativeAt(t, time.Now())
}

// FormatDateDistance describes the distance between date and now, e.g. "3 days ago" or "in 3 days".
func FormatDateDistance(date any) string {
	t, ok := toTime(date)
	if !ok {
		return invalidDate
	}
	return formatDistanceAt(t, time.Now())
}

func formatRelativeAt(t, base time.Time) string {
	var pattern string
	switch diff := calendarDaysBetween(t, base); {
	case diff < -6:
		pattern = "P"
	case diff < -1:
		pattern = "'last' eeee 'at' p"
	case diff < 0:
		pattern = "'yesterday at' p"
	case diff < 1:
		pattern = "'today at' p"
	case diff < 2:
		pattern = "'tomorrow at' p"
	case diff < 7:
		pattern = "eeee 'at' p"
	default:
		pattern = "P"
	}
	return formatPattern(t, pattern)
}

// calendarDaysBetween counts midnights between base and t in t's location.
func calendarDaysBetween(t, base time.Time) int {
	base = base.In(t.Location())
	ty, tm, td := t.Date()
	by, bm, bd := base.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}

const (
	minutesInDay           = 1440
	minutesInAlmostTwoDays = 2520
	minutesInMonth         = 43200
)

func formatDistanceAt(t, now time.Time) string {
	if t.After(now) {
		return "in " + distanceWords(now, t)
	}
	return distanceWords(t, now) + " ago"
}

// distanceWords phrases later-earlier, rounding to the nearest unit of each bucket.
func distanceWords(earlier, later time.Time) string {
	seconds := int64(later.Sub(earlier) / time.Second)
	minutes := int(math.Round(float64(seconds) / 60))
	switch {
	case minutes < 1:
		return "less than a minute"
	case minutes < 2:
		return "1 minute"
	case minutes < 45:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes < 90:
		return "about 1 hour"
	case minutes < minutesInDay:
		return fmt.Sprintf("about %d hours", roundDiv(minutes, 60))
	case minutes < minutesInAlmostTwoDays:
		return "1 day"
	case minutes < minutesInMonth:
		return fmt.Sprintf("%d days", roundDiv(minutes, minutesInDay))
	case minutes < 2*minutesInMonth:
		return "about " + plural(roundDiv(minutes, minutesInMonth), "month")
	}

	months := calendarMonthsBetween(earlier, later)
	if months < 12 {
		return fmt.Sprintf("%d months", roundDiv(minutes, minutesInMonth))
	}
	years, rest := months/12, months%12
	switch {
	case rest < 3:
		return "about " + plural(years, "year")
	case rest < 9:
		return "over " + plural(years, "year")
	default:
		return "almost " + plural(years+1, "year")
	}
}

func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// calendarMonthsBetween counts whole calendar months from earlier to later.
// Adding months clamps to the end of shorter months.
func calendarMonthsBetween(earlier, later time.Time) int {
	earlier = earlier.In(later.Location())
	ey, em, _ := earlier.Date()
	ly, lm, _ := later.Date()
	months := (ly-ey)*12 + int(lm-em)
	if months > 0 && addMonthsClamped(earlier, months).After(later) {
		months--
	}
	return months
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// long localized formats (en-US) expanded before tokenising
var localizedFormats = map[string]string{
	"P":    "MM/dd/yyyy",
	"PP":   "MMM d, yyyy",
	"PPP":  "MMMM do, yyyy",
	"PPPP": "EEEE, MMMM do, yyyy",
	"p":    "h:mm a",
	"pp":   "h:mm:ss a",
	"ppp":  "h:mm:ss a z",
	"pppp": "h:mm:ss a z",
}

func formatPattern(t time.Time, pattern string) string {
	var b strings.Builder
	rs := []rune(pattern)
	for i := 0; i < len(rs); {
		c := rs[i]
		if c == '\'' {
			j := i + 1
			for j < len(rs) {
				if rs[j] == '\'' {
					if j+1 < len(rs) && rs[j+1] == '\'' {
						b.WriteRune('\'')
						j += 2
						continue
					}
					break
				}
				b.WriteRune(rs[j])
				j++
			}
			if j == i+1 && j < len(rs) {
				// '' outside a literal is a single quote
				b.WriteRune('\'')
			}
			i = j + 1
			continue
		}
		if !isASCIILetter(c) {
			b.WriteRune(c)
			i++
			continue
		}
		j := i
		for j < len(rs) && rs[j] == c {
			j++
		}
		n := j - i
		if c == 'P' || c == 'p' {
			if f, ok := localizedFormats[string(rs[i:j])]; ok {
				b.WriteString(formatPattern(t, f))
			}
			i = j
			continue
		}
		if c == 'd' && n == 1 && j < len(rs) && rs[j] == 'o' {
			b.WriteString(humanize.Ordinal(t.Day()))
			i = j + 1
			continue
		}
		b.WriteString(formatToken(t, c, n))
		i = j
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func formatToken(t time.Time, c rune, n int) string {
	switch c {
	case 'y', 'u':
		if n == 2 {
			return pad(t.Year()%100, 2)
		}
		return pad(t.Year(), n)
	case 'M', 'L':
		m := int(t.Month())
		switch n {
		case 1:
			return strconv.Itoa(m)
		case 2:
			return pad(m, 2)
		case 3:
			return t.Month().String()[:3]
		case 4:
			return t.Month().String()
		default:
			return t.Month().String()[:1]
		}
	case 'd':
		return pad(t.Day(), n)
	case 'D':
		return pad(t.YearDay(), n)
	case 'E', 'e', 'c':
		wd := int(t.Weekday())
		if c != 'E' && n <= 2 {
			return pad(wd+1, n)
		}
		switch {
		case n <= 3:
			return t.Weekday().String()[:3]
		case n == 4:
			return t.Weekday().String()
		case n == 5:
			return t.Weekday().String()[:1]
		default:
			return t.Weekday().String()[:2]
		}
	case 'a', 'b':
		am, pm := "AM", "PM"
		switch {
		case n == 3:
			am, pm = "am", "pm"
		case n == 4:
			am, pm = "a.m.", "p.m."
		case n >= 5:
			am, pm = "a", "p"
		}
		if t.Hour() >= 12 {
			return pm
		}
		return am
	case 'H':
		return pad(t.Hour(), n)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, n)
	case 'K':
		return pad(t.Hour()%12, n)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, n)
	case 'm':
		return pad(t.Minute(), n)
	case 's':
		return pad(t.Second(), n)
	case 'S':
		frac := pad(t.Nanosecond(), 9)
		if n > 9 {
			n = 9
		}
		return frac[:n]
	case 'X', 'x':
		_, off := t.Zone()
		if c == 'X' && off == 0 {
			return "Z"
		}
		switch n {
		case 1:
			return t.Format("-07")
		case 2, 4:
			return t.Format("-0700")
		default:
			return t.Format("-07:00")
		}
	case 'z', 'O':
		name, _ := t.Zone()
		return name
	case 't':
		return strconv.FormatInt(t.Unix(), 10)
	case 'T':
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return strings.Repeat(string(c), n)
}
