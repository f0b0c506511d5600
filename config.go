package usertable

import (
	"fmt"
	"path"
	"strings"
)

// Config is the router configuration.  It is built once at startup
// and passed to NewAppRouter.
type Config struct {
	// BaseURL is the path prefix the application is served under, e.g. "/app/".
	// It comes from the build environment.  Empty means the site root.
	BaseURL string

	// UseFragment stores the logical path and query in the URL fragment
	// instead of the URL path.  See Router.UseFragment.
	UseFragment bool
}

// DefaultConfig returns a Config serving from the site root in history mode.
func DefaultConfig() Config {
	return Config{BaseURL: "/"}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if strings.ContainsAny(c.BaseURL, "?#") {
		return fmt.Errorf("base url %q must not contain a query or fragment", c.BaseURL)
	}
	return nil
}

// NormalizeBase cleans a base path so that it starts with a slash and has no
// trailing slash.  The root ("", "/", ".") becomes "".
// E.g. "app/" gives "/app".
func NormalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	base = path.Clean("/" + base)
	if base == "/" {
		return ""
	}
	return base
}
