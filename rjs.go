package usertable

import (
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/vugu/vugu/js"
)

var errNotBrowser = errors.New("not in browser (js) environment")

// browserPath turns a logical path and query into what goes in the address bar.
func (r *Router) browserPath(pathAndQuery string) string {
	if r.useFragment {
		return "#" + pathAndQuery
	}
	return r.base + pathAndQuery
}

func (r *Router) pushPathAndQuery(pathAndQuery string) {
	r.lastURL = r.browserPath(pathAndQuery)

	g := js.Global()
	if g.Truthy() {
		g.Get("window").Get("history").Call("pushState", nil, "", r.lastURL)
	}
}

func (r *Router) replacePathAndQuery(pathAndQuery string) {
	r.lastURL = r.browserPath(pathAndQuery)

	g := js.Global()
	if g.Truthy() {
		g.Get("window").Get("history").Call("replaceState", nil, "", r.lastURL)
	}
}

// readBrowserURL returns the logical URL from the address bar, with any base removed.
func (r *Router) readBrowserURL() (*url.URL, error) {

	g := js.Global()
	if !g.Truthy() {
		return nil, errNotBrowser
	}

	loc := g.Get("window").Get("location")

	var locstr string
	if r.useFragment {
		locstr = strings.TrimPrefix(loc.Get("hash").String(), "#")
	} else {
		locstr = loc.Call("toString").String()
	}

	u, err := url.Parse(locstr)
	if err != nil {
		return nil, err
	}

	if !r.useFragment {
		u.Path = r.stripBase(u.Path)
	}

	return u, nil
}

// ListenPopState makes the back and forward buttons re-run route handling.
// Handlers are run with the event env lock held and a render is requested afterwards.
func (r *Router) ListenPopState() error {
	return r.addPopStateListener(func(this js.Value, args []js.Value) interface{} {
		if r.eventEnv != nil {
			r.eventEnv.Lock()
			defer r.eventEnv.UnlockRender()
		}
		if err := r.Pull(); err != nil {
			log.Printf("Error handling history change: %v", err)
		}
		return nil
	})
}

// StopPopState removes the listener installed by ListenPopState.
func (r *Router) StopPopState() error {
	return r.removePopStateListener()
}

func (r *Router) removePopStateListener() error {

	g := js.Global()
	if !g.Truthy() {
		return errNotBrowser
	}

	if r.popStateFunc.IsUndefined() {
		return errors.New("popstate listener not set")
	}

	event := "popstate"
	if r.useFragment {
		event = "hashchange"
	}
	g.Get("window").Call("removeEventListener", event, r.popStateFunc)

	r.popStateFunc.Release()
	r.popStateFunc = js.Func{}

	return nil
}

func (r *Router) addPopStateListener(f func(this js.Value, args []js.Value) interface{}) error {

	g := js.Global()
	if !g.Truthy() {
		return errNotBrowser
	}

	if !r.popStateFunc.IsUndefined() {
		return errors.New("popstate listener already set")
	}

	jf := js.FuncOf(f)

	event := "popstate"
	if r.useFragment {
		event = "hashchange"
	}
	g.Get("window").Call("addEventListener", event, jf)

	r.popStateFunc = jf

	return nil
}
