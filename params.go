package usertable

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// BindParam is implemented by something that can be read and written as a URL param.
type BindParam interface {
	BindParamRead() []string
	BindParamWrite(v []string)
}

// StringParam implements BindParam on a string.
// An empty string reads as no value so it is left out of the URL.
type StringParam string

// BindParamRead implements BindParam.
func (s *StringParam) BindParamRead() []string {
	if *s == "" {
		return nil
	}
	return []string{string(*s)}
}

// BindParamWrite implements BindParam.
func (s *StringParam) BindParamWrite(v []string) {
	if len(v) == 0 {
		*s = ""
		return
	}
	*s = StringParam(v[0])
}

// DefaultPage is the page used when the page param is missing or not a number.
const DefaultPage = 1

// NumberParam implements BindParam on a float64.  The value DefaultPage
// reads as no value.  Writes fall back to DefaultPage the same way
// UserTablePropsFromQuery does.
type NumberParam float64

// BindParamRead implements BindParam.
func (n *NumberParam) BindParamRead() []string {
	if float64(*n) == DefaultPage {
		return nil
	}
	return []string{formatNumber(float64(*n))}
}

// BindParamWrite implements BindParam.
func (n *NumberParam) BindParamWrite(v []string) {
	*n = NumberParam(numberOr(firstValue(v), DefaultPage))
}

// firstValue returns the first of a repeated query value, or "" if there is none.
func firstValue(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// queryFirst returns the first value for key; repeated keys after it are ignored.
func queryFirst(q url.Values, key string) string {
	return firstValue(q[key])
}

// ParseQuery splits a raw query string the way browsers hand it to client
// side routers: pairs are separated by "&" only, "+" is a space, and a
// key or value that does not decode is kept as written.  A pair without
// "=" has an empty value.  Unlike url.ParseQuery nothing is dropped.
func ParseQuery(raw string) url.Values {
	raw = strings.TrimPrefix(raw, "?")
	q := make(url.Values)
	if raw == "" {
		return q
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		pair = strings.ReplaceAll(pair, "+", " ")
		k, v, _ := strings.Cut(pair, "=")
		k = lenientUnescape(k)
		q[k] = append(q[k], lenientUnescape(v))
	}
	return q
}

func lenientUnescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// numberOr converts s with toNumber, returning def if that fails.
func numberOr(s string, def float64) float64 {
	if f, ok := toNumber(s); ok {
		return f
	}
	return def
}

// toNumber converts a query value to a number using the loose rules
// browsers apply to form and URL input: surrounding whitespace is ignored,
// decimal and exponent forms are accepted, as are 0x/0o/0b integers and
// a signed "Infinity".  Empty input, NaN and anything else fail.
func toNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if strings.ContainsRune(digits, '_') {
				return 0, false
			}
			u, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}

	// strconv accepts forms browsers don't: inf, nan, hex floats, underscores
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			continue
		}
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range still yields ±Inf, which is what browsers give too
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
