package usertable

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {

	var tlist = []struct {
		in  string
		out float64
		ok  bool
	}{
		{"3", 3, true},
		{" 3 ", 3, true},
		{"0", 0, true},
		{"-2", -2, true},
		{"2.5", 2.5, true},
		{".5", 0.5, true},
		{"1e3", 1000, true},
		{"+7", 7, true},
		{"0x10", 16, true},
		{"0o10", 8, true},
		{"0b101", 5, true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"1e400", math.Inf(1), true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"3abc", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"1_000", 0, false},
		{"0x", 0, false},
		{"0xZZ", 0, false},
		{"0x1p4", 0, false},
	}

	for _, ti := range tlist {
		t.Run(ti.in, func(t *testing.T) {
			out, ok := toNumber(ti.in)
			assert.Equal(t, ti.ok, ok)
			if ti.ok {
				assert.Equal(t, ti.out, out)
			}
		})
	}
}

func TestStringParam(t *testing.T) {
	assert := assert.New(t)

	var s StringParam
	assert.Nil(s.BindParamRead())

	s.BindParamWrite([]string{"alice", "bob"})
	assert.Equal(StringParam("alice"), s)
	assert.Equal([]string{"alice"}, s.BindParamRead())

	s.BindParamWrite(nil)
	assert.Equal(StringParam(""), s)
}

func TestNumberParam(t *testing.T) {
	assert := assert.New(t)

	n := NumberParam(DefaultPage)
	assert.Nil(n.BindParamRead())

	n.BindParamWrite([]string{"3", "4"})
	assert.Equal(NumberParam(3), n)
	assert.Equal([]string{"3"}, n.BindParamRead())

	n.BindParamWrite([]string{"abc"})
	assert.Equal(NumberParam(DefaultPage), n)

	n.BindParamWrite([]string{"0"})
	assert.Equal([]string{"0"}, n.BindParamRead())

	n.BindParamWrite([]string{"2.5"})
	assert.Equal([]string{"2.5"}, n.BindParamRead())

	n.BindParamWrite(nil)
	assert.Equal(NumberParam(DefaultPage), n)
}

func TestParseQuery(t *testing.T) {

	var tlist = []struct {
		in  string
		out url.Values
	}{
		{"", url.Values{}},
		{"?", url.Values{}},
		{"?search=alice&page=3", url.Values{"search": {"alice"}, "page": {"3"}}},
		{"search=rock;roll&page=2", url.Values{"search": {"rock;roll"}, "page": {"2"}}},
		{"search=100%&page=2", url.Values{"search": {"100%"}, "page": {"2"}}},
		{"search=a+b%20c", url.Values{"search": {"a b c"}}},
		{"search=1%2B1", url.Values{"search": {"1+1"}}},
		{"search=bob&search=carol", url.Values{"search": {"bob", "carol"}}},
		{"search&page=", url.Values{"search": {""}, "page": {""}}},
		{"a=1&&b=2", url.Values{"a": {"1"}, "b": {"2"}}},
		{"q=x=y", url.Values{"q": {"x=y"}}},
	}

	for _, ti := range tlist {
		t.Run(ti.in, func(t *testing.T) {
			assert.Equal(t, ti.out, ParseQuery(ti.in))
		})
	}
}

func TestParseQueryProps(t *testing.T) {
	got := UserTablePropsFromQuery(ParseQuery("search=rock;roll&page=2"))
	assert.Equal(t, UserTableProps{SearchQuery: "rock;roll", CurrentPage: 2}, got)

	got = UserTablePropsFromQuery(ParseQuery("search=100%&page=2"))
	assert.Equal(t, UserTableProps{SearchQuery: "100%", CurrentPage: 2}, got)
}
