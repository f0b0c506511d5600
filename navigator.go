package usertable

import "net/url"

// NavigatorOpt is a marker interface to ensure that options to Navigator are passed intentionally.
type NavigatorOpt interface {
	IsNavigatorOpt()
}

type intNavigatorOpt int

// IsNavigatorOpt implements NavigatorOpt.
func (i intNavigatorOpt) IsNavigatorOpt() {}

var (
	// NavReplace will cause this navigation to replace the
	// current history entry rather than pushing to the stack.
	// Implemented using window.history.replaceState()
	NavReplace NavigatorOpt = intNavigatorOpt(1)

	// NavSkipRender will cause this navigation to only update the browser
	// URL.  Route handlers are not run.  It can be used when a component
	// has already applied the new state itself and just wants the URL to
	// reflect it.
	NavSkipRender NavigatorOpt = intNavigatorOpt(2)
)

type navOpts []NavigatorOpt

func (no navOpts) has(o NavigatorOpt) bool {
	for _, o2 := range no {
		if o == o2 {
			return true
		}
	}
	return false
}

// Navigator is what components use to change the URL.
// Router implements it.
type Navigator interface {
	Navigate(path string, query url.Values, opts ...NavigatorOpt) error
	Push(opts ...NavigatorOpt) error
}

// NavigatorRef can be embedded in a component so the Navigator can be injected
// without the component knowing about Router.
type NavigatorRef struct {
	Navigator // embed Navigator
}

// NavigatorSet implements NavigatorSetter.
func (h *NavigatorRef) NavigatorSet(o Navigator) {
	h.Navigator = o
}

// NavigatorSetter is implemented by components that accept a Navigator.
type NavigatorSetter interface {
	NavigatorSet(Navigator)
}
