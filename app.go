package usertable

import (
	"fmt"

	"github.com/vugu/vugu"
)

// Outlet is the root component of the application.  It renders the view
// of the route that matched last.
type Outlet struct {
	current View
	name    string
}

// Current returns the view being rendered and the name of its route.
func (o *Outlet) Current() (View, string) { return o.current, o.name }

// Build implements vugu.Builder.
func (o *Outlet) Build(vgin *vugu.BuildIn) *vugu.BuildOut {
	if o.current == nil {
		return &vugu.BuildOut{Out: []*vugu.VGNode{{Type: vugu.ElementNode, Data: "div"}}}
	}
	return o.current.Build(vgin)
}

// NewAppRouter registers the routes of table with a new Router configured by cfg.
// The returned Outlet is meant to be the root component of the application.
// Call Pull on the router afterwards to handle the URL the page was loaded with.
func NewAppRouter(cfg Config, eventEnv EventEnv, table RouteTable) (*Router, *Outlet, error) {

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, nil, err
	}

	r := New(eventEnv)
	r.UseFragment(cfg.UseFragment)
	r.SetBase(cfg.BaseURL)

	outlet := &Outlet{}

	// nothing matched exactly: render nothing rather than the previous view
	r.SetNotFound(RouteHandlerFunc(func(rm *RouteMatch) {
		outlet.current = nil
		outlet.name = ""
	}))

	for _, rt := range table {
		if err := r.AddNamedRoute(rt.Name, rt.Path, routeHandler(outlet, rt)); err != nil {
			return nil, nil, fmt.Errorf("adding route %q: %w", rt.Name, err)
		}
		if ns, ok := rt.Component.(NavigatorSetter); ok {
			ns.NavigatorSet(r)
		}
	}

	return r, outlet, nil
}

// routeHandler renders rt in outlet on an exact match.
func routeHandler(outlet *Outlet, rt Route) RouteHandler {
	return RouteHandlerFunc(func(rm *RouteMatch) {
		if !rm.Exact {
			return
		}
		if rt.Props != nil {
			if pr, ok := rt.Component.(PropsReceiver); ok {
				pr.ReceiveProps(rt.Props(rm))
			}
		}
		if pb, ok := rt.Component.(ParamBinder); ok {
			pb.BindParams(rm)
		}
		outlet.current = rt.Component
		outlet.name = rt.Name
	})
}
