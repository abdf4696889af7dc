package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reType  = regexp.MustCompile(`^(SINGLE|PAIR)$`)
	reCond  = regexp.MustCompile(`^(NEW|LIKE_NEW|GOOD|FAIR|WORN)$`)
	reSize  = regexp.MustCompile(`^[A-Za-z0-9. /-]{1,12}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (shoe/transaction/notification ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, true
}

// Password enforces the registration minimum of six characters.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}

func ShoeType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reType.MatchString(s)
}

func Condition(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reCond.MatchString(s)
}

func Size(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reSize.MatchString(s)
}

// Year accepts listing years from 2000 through next year.
func Year(y int) bool {
	return y >= 2000 && y <= time.Now().Year()+1
}

func Price(p float64) bool {
	return p >= 0.01
}

func Description(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 500 {
		return "", false
	}
	return s, true
}

func RatingValue(n int) bool {
	return n >= 1 && n <= 5
}
