package usertable

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vugu/vugu/js"
)

// EventEnv is our view of a Vugu EventEnv
type EventEnv interface {
	Lock()         // acquire write lock
	UnlockOnly()   // release write lock
	UnlockRender() // release write lock and request re-render
}

var (
	// ErrDuplicateName is returned when a route name is registered twice.
	ErrDuplicateName = errors.New("duplicate route name")

	// ErrUnknownName is returned when no route has the requested name.
	ErrUnknownName = errors.New("unknown route name")
)

// New returns a new Router.
// The eventEnv may be nil, in which case ListenPopState runs handlers without locking.
func New(eventEnv EventEnv) *Router {
	return &Router{
		eventEnv:     eventEnv,
		names:        make(map[string]int),
		bindParamMap: make(map[string]BindParam),
	}
}

// Router handles URL routing.
// It is not safe for concurrent use; callers hold the event env lock.
type Router struct {
	useFragment bool
	base        string // normalized, see NormalizeBase

	eventEnv EventEnv

	rlist           []routeEntry
	names           map[string]int // route name -> index in rlist
	notFoundHandler RouteHandler

	current *RouteMatch
	lastURL string // last value written to history

	bindRouteMPath mpath // the exact route matched, used to rebuild the path on Push
	bindParamMap   map[string]BindParam

	popStateFunc js.Func
}

type routeEntry struct {
	name  string
	mpath mpath
	rh    RouteHandler
}

// UseFragment sets the fragment flag which if set means the fragment part of the URL (after the "#")
// is used as the path and query string.  This can be useful for compatibility in applications which are
// served statically and do not have the ability to handle URL routing on the server side.
// This option is disabled by default.  If used it should be set immediately after creation.
func (r *Router) UseFragment(v bool) {
	r.useFragment = v
}

// SetBase sets the path prefix the application is served under.
// The base is removed from the browser path before matching and added back when
// writing to history.  It has no effect in fragment mode.
func (r *Router) SetBase(base string) {
	r.base = NormalizeBase(base)
}

// Base returns the normalized base path.
func (r *Router) Base() string { return r.base }

func (r *Router) stripBase(p string) string {
	if r.base == "" {
		return p
	}
	if p == r.base {
		return "/"
	}
	if strings.HasPrefix(p, r.base+"/") {
		return p[len(r.base):]
	}
	return p
}

// MustNavigate is like Navigate but panics upon error.
func (r *Router) MustNavigate(path string, query url.Values, opts ...NavigatorOpt) {
	err := r.Navigate(path, query, opts...)
	if err != nil {
		panic(err)
	}
}

// Navigate will go the specified path and query.  The URL is written to the
// browser history and the matching route handlers are run.
func (r *Router) Navigate(path string, query url.Values, opts ...NavigatorOpt) error {

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("navigate: path %q must be absolute", path)
	}

	pq := path
	if q := query.Encode(); len(q) > 0 {
		pq = pq + "?" + q
	}

	if navOpts(opts).has(NavReplace) {
		r.replacePathAndQuery(pq)
	} else {
		r.pushPathAndQuery(pq)
	}

	if !navOpts(opts).has(NavSkipRender) {
		r.process(path, query)
	}

	return nil
}

// NavigateName is like Navigate but takes the name of a route.
// Values in params fill the path params of the route, the rest go in the query.
func (r *Router) NavigateName(name string, params url.Values, opts ...NavigatorOpt) error {
	i, ok := r.names[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	p, q, err := r.rlist[i].mpath.merge(params)
	if err != nil {
		return mergeError(name, r.rlist[i].mpath, params, err)
	}
	return r.Navigate(p, q, opts...)
}

// PathFor returns the browser path, including base and query, of the named route.
func (r *Router) PathFor(name string, params url.Values) (string, error) {
	i, ok := r.names[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	p, q, err := r.rlist[i].mpath.merge(params)
	if err != nil {
		return "", mergeError(name, r.rlist[i].mpath, params, err)
	}
	if enc := q.Encode(); enc != "" {
		p = p + "?" + enc
	}
	return r.browserPath(p), nil
}

// Pull will read the current browser URL and navigate to it.  This is generally called
// once at application startup.
// Only works in wasm environment otherwise has no effect and will return error.
func (r *Router) Pull() error {

	u, err := r.readBrowserURL()
	if err != nil {
		return err
	}

	r.process(u.Path, ParseQuery(u.RawQuery))

	return nil
}

// Push will take any bound parameters and put them into the URL in the appropriate place.
// In a non-wasm environment only LastURL is updated.
func (r *Router) Push(opts ...NavigatorOpt) error {

	if r.bindRouteMPath == nil {
		return errors.New("push: no exact route matched")
	}

	params := make(url.Values, len(r.bindParamMap))
	for k, v := range r.bindParamMap {
		if vals := v.BindParamRead(); len(vals) > 0 {
			params[k] = vals
		}
	}

	outPath, outParams, err := r.bindRouteMPath.merge(params)
	if err != nil {
		return err
	}

	pq := outPath
	if q := outParams.Encode(); len(q) > 0 {
		pq = pq + "?" + q
	}

	if navOpts(opts).has(NavReplace) {
		r.replacePathAndQuery(pq)
	} else {
		r.pushPathAndQuery(pq)
	}

	return nil
}

// LastURL returns the last URL written to browser history by Navigate or Push.
func (r *Router) LastURL() string { return r.lastURL }

// Current returns the last exact route match, or nil.
func (r *Router) Current() *RouteMatch { return r.current }

// UnbindParams will remove any previous parameter bindings.
// Note that this is called implicitly when navigiation occurs since that involves re-binding newly based on the
// path being navigated to.
func (r *Router) UnbindParams() {
	for k := range r.bindParamMap {
		delete(r.bindParamMap, k)
	}
}

// MustAddRoute is like AddRoute but panics upon error.
func (r *Router) MustAddRoute(path string, rh RouteHandler) {
	err := r.AddRoute(path, rh)
	if err != nil {
		panic(err)
	}
}

// AddRoute adds a route to the list.
func (r *Router) AddRoute(path string, rh RouteHandler) error {
	return r.AddNamedRoute("", path, rh)
}

// AddNamedRoute adds a route that can later be referred to by name.
// An empty name is allowed and is not registered.
func (r *Router) AddNamedRoute(name, path string, rh RouteHandler) error {

	if name != "" {
		if _, ok := r.names[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	mp, err := parseMpath(path)
	if err != nil {
		return fmt.Errorf("route %q: %w", path, err)
	}

	r.rlist = append(r.rlist, routeEntry{
		name:  name,
		mpath: mp,
		rh:    rh,
	})
	if name != "" {
		r.names[name] = len(r.rlist) - 1
	}

	return nil
}

// SetNotFound assigns the handler for the case of no exact match route.
func (r *Router) SetNotFound(rh RouteHandler) {
	r.notFoundHandler = rh
}

// process runs through the routes and calls the handler of each match.
// Bindings are reset first so handlers can bind again.
func (r *Router) process(path string, query url.Values) {

	r.UnbindParams()
	r.bindRouteMPath = nil
	r.current = nil

	for _, re := range r.rlist {

		pvals, exact, ok := re.mpath.match(path)
		if !ok {
			continue
		}

		if pvals == nil {
			pvals = make(url.Values, len(query))
		}
		// path params win over query params of the same name
		for k, v := range query {
			if pvals[k] == nil {
				pvals[k] = v
			}
		}

		rm := &RouteMatch{
			router:    r,
			Name:      re.name,
			Path:      path,
			RoutePath: re.mpath.String(),
			Params:    pvals,
			Exact:     exact,
		}

		if exact && r.current == nil {
			r.current = rm
			r.bindRouteMPath = re.mpath
		}

		re.rh.RouteHandle(rm)
	}

	// fill params bound by the handlers from the URL
	if r.current != nil {
		for k, bp := range r.bindParamMap {
			bp.BindParamWrite(r.current.Params[k])
		}
	}

	if r.current == nil && r.notFoundHandler != nil {
		r.notFoundHandler.RouteHandle(&RouteMatch{
			router: r,
			Path:   path,
			Params: query,
		})
	}
}

func mergeError(name string, mp mpath, params url.Values, err error) error {
	if errors.Is(err, errMissingParam) {
		return fmt.Errorf("route %q: %w: %s", name, err, strings.Join(mp.missingParams(params), ", "))
	}
	return fmt.Errorf("route %q: %w", name, err)
}

// RouteHandler implementations are called in response to a route matching (being navigated to).
type RouteHandler interface {
	RouteHandle(rm *RouteMatch)
}

// RouteHandlerFunc implements RouteHandler as a function.
type RouteHandlerFunc func(rm *RouteMatch)

// RouteHandle implements the RouteHandler interface.
func (f RouteHandlerFunc) RouteHandle(rm *RouteMatch) { f(rm) }

// RouteMatch describes a request to navigate to a route.
type RouteMatch struct {
	Name      string     // route name, empty if the route was added without one
	Path      string     // path input (with any params interpolated)
	RoutePath string     // route path pattern with params as :param
	Params    url.Values // parameters (combined query and route params)
	Exact     bool       // true if the path is an exact match or false if just the prefix

	router *Router
}

// Bind adds a BindParam to the list of bound parameters.
// Later calls to Bind with the same name will replace the bind
// from earlier calls.  Once all handlers have run, each bound param is
// written with the URL values of its name.
func (r *RouteMatch) Bind(name string, param BindParam) {
	if r.router == nil {
		return
	}
	if r.router.bindParamMap == nil {
		r.router.bindParamMap = make(map[string]BindParam)
	}
	r.router.bindParamMap[name] = param
}
