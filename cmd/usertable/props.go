package main

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/vgapps/usertable"
)

func propsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "props [query]",
		Short: "Show the props a URL query gives the matched view",
		Example: `  usertable props '?search=alice&page=3'
  usertable props 'page=abc'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) > 0 {
				raw = args[0]
			}

			props, err := matchProps(path, usertable.ParseQuery(raw))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(props)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "/", "Path to match")

	return cmd
}

// matchProps runs the route table against path and returns the props of the exact match.
func matchProps(path string, q url.Values) (interface{}, error) {
	var props interface{}
	matched := false

	r := usertable.New(nil)
	for _, rt := range usertable.NewRouteTable(nil) {
		rt := rt
		err := r.AddNamedRoute(rt.Name, rt.Path, usertable.RouteHandlerFunc(func(rm *usertable.RouteMatch) {
			if !rm.Exact || matched {
				return
			}
			matched = true
			if rt.Props != nil {
				props = rt.Props(rm)
			}
		}))
		if err != nil {
			return nil, err
		}
	}

	if err := r.Navigate(path, q, usertable.NavReplace); err != nil {
		return nil, err
	}
	if !matched {
		return nil, fmt.Errorf("no route matches %q", path)
	}
	return props, nil
}
