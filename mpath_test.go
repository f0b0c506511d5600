package usertable

import (
	"net/url"
	"reflect"
	"testing"
)

func TestMPathParse(t *testing.T) {

	var tlist = []struct {
		in  string
		out mpath
	}{
		{"/", mpath{"/"}},
		{"", mpath{"/"}},
		{"/:p1", mpath{"/", ":p1"}},
		{"/:p1/", mpath{"/", ":p1"}},
		{"/:p1/test", mpath{"/", ":p1", "/test"}},
		{"/:p1/test/:p2", mpath{"/", ":p1", "/test/", ":p2"}},
		{"/:p1/:p2", mpath{"/", ":p1", "/", ":p2"}},
		{"/a/b", mpath{"/a/b"}},
		{"users", mpath{"/users"}},
	}

	for _, ti := range tlist {
		t.Run(ti.in, func(t *testing.T) {
			mp, err := parseMpath(ti.in)
			if err != nil {
				t.Error(err)
			}
			if !reflect.DeepEqual(ti.out, mp) {
				t.Errorf("expected %#v, got %#v", ti.out, mp)
			}
		})
	}

}

func TestMPathParseEmptyParam(t *testing.T) {
	for _, in := range []string{"/:", "/:/a"} {
		if _, err := parseMpath(in); err != errEmptyParam {
			t.Errorf("%q: expected errEmptyParam, got %v", in, err)
		}
	}
}

func TestMPathMergeMatch(t *testing.T) {

	var tlist = []struct {
		inpath string
		mpath  mpath
		pvals  url.Values
	}{
		{"/", mpath{"/"}, nil},
		{"/somewhere", mpath{"/", ":id"}, url.Values{"id": []string{"somewhere"}}},
		{"/blah/somewhere", mpath{"/blah/", ":id"}, url.Values{"id": []string{"somewhere"}}},
		{"/blah/somewhere/something", mpath{"/blah/", ":id", "/", ":id2"}, url.Values{"id": []string{"somewhere"}, "id2": []string{"something"}}},
	}

	for _, ti := range tlist {
		t.Run(ti.inpath, func(t *testing.T) {
			pv, _, ok := ti.mpath.match(ti.inpath)
			if !ok {
				t.Errorf("got ok false")
			}
			if !reflect.DeepEqual(ti.pvals, pv) {
				t.Errorf("expected params %#v, got %#v", ti.pvals, pv)
			}
			p2, _, err := ti.mpath.merge(pv)
			if err != nil {
				t.Errorf("merge error: %v", err)
			}
			if p2 != ti.inpath {
				t.Errorf("expected p2 %#v, got %#v", ti.inpath, p2)
			}
		})
	}

}

func TestMPathMergeMissing(t *testing.T) {
	p, other, err := mpath{"/users/", ":id"}.merge(url.Values{"page": {"2"}})
	if err != errMissingParam {
		t.Errorf("expected errMissingParam, got %v", err)
	}
	if p != "/users/_" {
		t.Errorf("unexpected path %q", p)
	}
	if other.Get("page") != "2" {
		t.Errorf("expected page in other values, got %#v", other)
	}
}

func TestMPathMatchExact(t *testing.T) {

	var tlist = []struct {
		inpath string
		mpath  mpath
		exact  bool
		ok     bool
	}{
		{"/", mpath{"/"}, true, true},
		{"", mpath{"/"}, true, true},
		{"/somewhere", mpath{"/"}, false, true},
		{"/somewhere/here", mpath{"/somewhere"}, false, true},
		{"/somewhere", mpath{"/somewhere"}, true, true},
		{"/somewhere/", mpath{"/somewhere"}, true, true},
		{"/somewhereelse", mpath{"/somewhere"}, false, false},
		{"/elsewhere", mpath{"/somewhere"}, false, false},
		{"/somewhere/1", mpath{"/somewhere/", ":id"}, true, true},
		{"/somewhere/1/2", mpath{"/somewhere/", ":id"}, false, true},
		{"/somewhere", mpath{"/somewhere/", ":id"}, false, false},
	}

	for _, ti := range tlist {
		t.Run(ti.inpath, func(t *testing.T) {
			_, exact, ok := ti.mpath.match(ti.inpath)
			if !(ok == ti.ok) {
				t.Errorf("expected ok %#v, got %#v", ti.ok, ok)
			}
			if !(exact == ti.exact) {
				t.Errorf("expected exact %#v, got %#v", ti.exact, exact)
			}
		})
	}

}

func TestMPathParamNames(t *testing.T) {
	mp, err := parseMpath("/a/:p1/b/:p2")
	if err != nil {
		t.Fatal(err)
	}
	if got := mp.paramNames(); !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Errorf("unexpected names %#v", got)
	}
	if mp.String() != "/a/:p1/b/:p2" {
		t.Errorf("unexpected String %q", mp.String())
	}
}
