package usertable

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"github.com/vugu/vugu"
)

// View is a component a route can render.
type View interface {
	vugu.Builder
}

// PropsReceiver is implemented by views that take inputs derived from the route.
type PropsReceiver interface {
	ReceiveProps(props interface{})
}

// ParamBinder is implemented by views that want query params bound to their
// fields so Router.Push can write them back to the URL.
type ParamBinder interface {
	BindParams(rm *RouteMatch)
}

// PropsFunc derives the inputs of a view from the matched route.
// It must be pure.
type PropsFunc func(rm *RouteMatch) interface{}

// Route is an entry of the route table.
type Route struct {
	Path      string    // static path matcher
	Name      string    // unique symbolic name
	Component View      // what to render
	Props     PropsFunc // optional
}

// RouteTable is the full list of routes of the application.
// It is built once at startup and not changed afterwards.
type RouteTable []Route

// Route names.
const (
	UserTableRouteName = "UserTable"
)

// NewRouteTable returns the application routes with userTable rendered at "/".
func NewRouteTable(userTable View) RouteTable {
	return RouteTable{
		{
			Path:      "/",
			Name:      UserTableRouteName,
			Component: userTable,
			Props:     UserTableRouteProps,
		},
	}
}

// ByName returns the route with the given name.
func (t RouteTable) ByName(name string) (Route, bool) {
	for _, rt := range t {
		if rt.Name == name {
			return rt, true
		}
	}
	return Route{}, false
}

// Validate checks that every route has a path and that names are unique.
func (t RouteTable) Validate() error {
	seen := make(map[string]bool, len(t))
	for i, rt := range t {
		if rt.Path == "" {
			return fmt.Errorf("route %d (%q): empty path", i, rt.Name)
		}
		if rt.Name == "" {
			continue
		}
		if seen[rt.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, rt.Name)
		}
		seen[rt.Name] = true
	}
	return nil
}

// UserTableProps are the inputs of the user table view.
// CurrentPage is not validated: zero, negative and fractional pages are passed on as-is.
type UserTableProps struct {
	SearchQuery string  `json:"searchQuery"`
	CurrentPage float64 `json:"currentPage"`
}

// MarshalJSON implements json.Marshaler.  JSON has no infinite numbers,
// so a non-finite CurrentPage is written as a string ("Infinity").
func (p UserTableProps) MarshalJSON() ([]byte, error) {
	var page interface{} = p.CurrentPage
	if math.IsInf(p.CurrentPage, 0) || math.IsNaN(p.CurrentPage) {
		page = formatNumber(p.CurrentPage)
	}
	return json.Marshal(struct {
		SearchQuery string      `json:"searchQuery"`
		CurrentPage interface{} `json:"currentPage"`
	}{p.SearchQuery, page})
}

// UserTablePropsFromQuery derives UserTableProps from query values.
// Only the first of a repeated key is used.  A missing search is "" and a
// missing, empty or non-numeric page is DefaultPage.  It never fails.
func UserTablePropsFromQuery(q url.Values) UserTableProps {
	return UserTableProps{
		SearchQuery: queryFirst(q, "search"),
		CurrentPage: numberOr(queryFirst(q, "page"), DefaultPage),
	}
}

// UserTableRouteProps is the PropsFunc of the user table route.
func UserTableRouteProps(rm *RouteMatch) interface{} {
	return UserTablePropsFromQuery(rm.Params)
}
