package usertable

import (
	"errors"
	"net/url"
	"path"
	"strings"
)

var (
	errMissingParam = errors.New("missing param")
	errEmptyParam   = errors.New("empty param name")
)

// mpath is a matchable path: a route path split into static parts and
// parameter parts.  Parameter parts start with ":".
// E.g. "/users/:id/edit" is mpath{"/users/", ":id", "/edit"}.
type mpath []string

// parseMpath splits p into the parts of an mpath.
func parseMpath(p string) (mpath, error) {
	ret := make(mpath, 0, 2)
	p = path.Clean("/" + p)

	start := 0
	inParam := false

	for i := 0; i < len(p); i++ {
		switch {
		case p[i] == '/' && inParam:
			if i-start < 2 {
				return nil, errEmptyParam
			}
			ret = append(ret, p[start:i])
			inParam = false
			start = i
		case p[i] == ':' && i > 0 && p[i-1] == '/':
			ret = append(ret, p[start:i])
			inParam = true
			start = i
		}
	}

	if inParam && len(p)-start < 2 {
		return nil, errEmptyParam
	}
	if start < len(p) {
		ret = append(ret, p[start:])
	}

	return ret, nil
}

// String returns the re-assembled path pattern.
func (mp mpath) String() string {
	return strings.Join(mp, "")
}

// paramNames returns the parameter names without the colon,
// i.e. "/a/:p1/:p2" gives []string{"p1","p2"}.
func (mp mpath) paramNames() []string {
	var ret []string
	for _, p := range mp {
		if strings.HasPrefix(p, ":") {
			ret = append(ret, p[1:])
		}
	}
	return ret
}

// missingParams returns the names of the path params with no value in v.
func (mp mpath) missingParams(v url.Values) []string {
	var ret []string
	for _, name := range mp.paramNames() {
		if len(v[name]) == 0 {
			ret = append(ret, name)
		}
	}
	return ret
}

// merge fills the path params from v and returns the resulting path.
// Values not used in the path are returned in otherValues.  A missing
// param gives errMissingParam and "_" in its place.
func (mp mpath) merge(v url.Values) (outPath string, otherValues url.Values, reterr error) {

	if len(v) > 0 {
		otherValues = make(url.Values, len(v))
		for k, val := range v {
			otherValues[k] = val
		}
	}

	var sb strings.Builder
	sb.Grow(64)

	for _, p := range mp {
		if !strings.HasPrefix(p, ":") {
			sb.WriteString(p)
			continue
		}
		pname := p[1:]
		vlist := v[pname]
		if len(vlist) == 0 { // "?param=" is a value, only a missing key is an error
			reterr = errMissingParam
			sb.WriteString("_")
			continue
		}
		sb.WriteString(url.PathEscape(vlist[0]))
		otherValues.Del(pname)
	}

	if len(otherValues) == 0 {
		otherValues = nil
	}

	return sb.String(), otherValues, reterr
}

// match compares the path p against mp.  On success ok is true and the
// param values are returned.  exact is false when p continues past the
// end of mp.
func (mp mpath) match(p string) (paramValues url.Values, exact, ok bool) {

	rest := path.Clean("/" + p)

	for _, part := range mp {

		if strings.HasPrefix(part, ":") {
			if rest == "" {
				return nil, false, false
			}
			var val string
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				val, rest = rest[:i], rest[i:]
			} else {
				val, rest = rest, ""
			}
			if val == "" {
				return nil, false, false
			}
			if uv, err := url.PathUnescape(val); err == nil {
				val = uv
			}
			if paramValues == nil {
				paramValues = make(url.Values, 2)
			}
			paramValues.Set(part[1:], val)
			continue
		}

		if !strings.HasPrefix(rest, part) {
			return nil, false, false
		}
		rest = rest[len(part):]

		// "/test" must not match "/testing"
		if rest != "" && rest[0] != '/' && !strings.HasSuffix(part, "/") {
			return nil, false, false
		}
	}

	return paramValues, rest == "", true
}
