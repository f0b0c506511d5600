// Package ui contains the view components of the application.
package ui

import (
	"strconv"

	"github.com/vugu/vugu"

	"github.com/vgapps/usertable"
)

// UserTable lists users, filtered by SearchQuery and paginated by CurrentPage.
// Both fields are bound to the "search" and "page" query params.
type UserTable struct {
	SearchQuery string
	CurrentPage float64

	usertable.NavigatorRef
}

// NewUserTable returns a UserTable on the first page.
func NewUserTable() *UserTable {
	return &UserTable{CurrentPage: usertable.DefaultPage}
}

// ReceiveProps implements usertable.PropsReceiver.
func (c *UserTable) ReceiveProps(props interface{}) {
	p, ok := props.(usertable.UserTableProps)
	if !ok {
		return
	}
	c.SearchQuery = p.SearchQuery
	c.CurrentPage = p.CurrentPage
}

// BindParams implements usertable.ParamBinder.
func (c *UserTable) BindParams(rm *usertable.RouteMatch) {
	rm.Bind("search", (*usertable.StringParam)(&c.SearchQuery))
	rm.Bind("page", (*usertable.NumberParam)(&c.CurrentPage))
}

// SetSearch changes the search query and goes back to the first page.
// The current history entry is replaced so typing does not fill the history.
func (c *UserTable) SetSearch(q string) error {
	c.SearchQuery = q
	c.CurrentPage = usertable.DefaultPage
	return c.push(usertable.NavReplace)
}

// NextPage moves one page forward.
func (c *UserTable) NextPage() error {
	c.CurrentPage++
	return c.push()
}

// PrevPage moves one page back.  It does nothing on page 1 or before.
func (c *UserTable) PrevPage() error {
	if c.CurrentPage <= usertable.DefaultPage {
		return nil
	}
	c.CurrentPage--
	return c.push()
}

func (c *UserTable) push(opts ...usertable.NavigatorOpt) error {
	if c.Navigator == nil {
		return nil
	}
	return c.Navigator.Push(opts...)
}

// Build implements vugu.Builder.
func (c *UserTable) Build(vgin *vugu.BuildIn) *vugu.BuildOut {

	root := &vugu.VGNode{
		Type: vugu.ElementNode,
		Data: "div",
		Attr: []vugu.VGAttribute{{Key: "class", Val: "user-table"}},
	}

	search := &vugu.VGNode{
		Type: vugu.ElementNode,
		Data: "p",
		Attr: []vugu.VGAttribute{{Key: "class", Val: "user-table-search"}},
	}
	search.AppendChild(&vugu.VGNode{Type: vugu.TextNode, Data: "Search: " + c.SearchQuery})
	root.AppendChild(search)

	page := &vugu.VGNode{
		Type: vugu.ElementNode,
		Data: "p",
		Attr: []vugu.VGAttribute{{Key: "class", Val: "user-table-page"}},
	}
	page.AppendChild(&vugu.VGNode{Type: vugu.TextNode, Data: "Page " + strconv.FormatFloat(c.CurrentPage, 'f', -1, 64)})
	root.AppendChild(page)

	return &vugu.BuildOut{Out: []*vugu.VGNode{root}}
}
