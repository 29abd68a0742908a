// Package timeparse canonicalizes heterogeneous spreadsheet cell values into
// HH:MM:SS clock strings and nullable numbers. Survey sheets arrive from many
// field teams with inconsistent time formats, so parsing is deliberately
// tolerant.
package timeparse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	unitWordRe  = regexp.MustCompile(`(?i)min|sec|hour`)
	hoursRe     = regexp.MustCompile(`(?i)(\d+)\s*(?:h|hour)`)
	minutesRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:m|min)`)
	secondsRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:s|sec)`)
	threePartRe = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	twoPartRe   = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	digitsRe    = regexp.MustCompile(`^\d+$`)
)

// Clock normalizes a raw cell value into a canonical "HH:MM:SS" string.
// Accepted shapes:
//
//   - float64: spreadsheet date-serial time, the fractional part is a
//     fraction of a day
//   - "3 min 47 sec" style text, each unit extracted independently
//   - "H:MM:SS" / "HH:MM:SS", zero-padded component-wise
//   - "A:B" two-part: if A > 23 it is read as MM:SS, else HH:MM. This
//     heuristic silently misreads legitimate HH:MM values near midnight;
//     kept as-is until the survey template pins a single format.
//   - plain integer text: a raw seconds count
//
// Returns false for empty input or any unrecognized shape.
func Clock(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", false
		}
		fraction := v - math.Trunc(v) // ignore whole days
		return fromSeconds(int(math.Round(fraction * 24 * 3600))), true
	case int:
		return fromSeconds(v), true
	}

	s := strings.TrimSpace(fmt.Sprint(value))
	if s == "" {
		return "", false
	}

	if unitWordRe.MatchString(s) {
		h := matchQuantity(hoursRe, s)
		m := matchQuantity(minutesRe, s)
		sec := matchQuantity(secondsRe, s)
		return pad3(h, m, sec), true
	}

	if threePartRe.MatchString(s) {
		parts := strings.Split(s, ":")
		h, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		sec, _ := strconv.Atoi(parts[2])
		return pad3(h, m, sec), true
	}

	if twoPartRe.MatchString(s) {
		parts := strings.Split(s, ":")
		a, _ := strconv.Atoi(parts[0])
		b, _ := strconv.Atoi(parts[1])
		if a > 23 {
			return pad3(0, a, b), true
		}
		return pad3(a, b, 0), true
	}

	if digitsRe.MatchString(s) {
		sec, err := strconv.Atoi(s)
		if err != nil {
			return "", false
		}
		return fromSeconds(sec), true
	}

	return "", false
}

// Num converts a raw cell value to a nullable number. Empty input yields nil;
// non-finite results are rejected as nil.
func Num(value any) *float64 {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case int:
		f := float64(v)
		return &f
	}
	s := strings.TrimSpace(fmt.Sprint(value))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func matchQuantity(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func fromSeconds(total int) string {
	return pad3(total/3600, (total%3600)/60, total%60)
}

func pad3(h, m, s int) string {
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
