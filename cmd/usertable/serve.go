package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vgapps/usertable/internal/host"
)

func serveCmd() *cobra.Command {
	cfg := host.Config{
		Addr:    ":8844",
		BaseURL: os.Getenv("BASE_URL"),
		Dir:     ".",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built application",
		Long: `Serve main.wasm, wasm_exec.js and the page that loads them.

Every path below the base URL that is not a file gets the page, so links
into the application and reloads work with history based routing.
The base URL defaults to the BASE_URL environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := host.New(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&cfg.Addr, "addr", "a", cfg.Addr, "Address to listen on")
	cmd.Flags().StringVarP(&cfg.Dir, "dir", "d", cfg.Dir, "Directory with the built application")
	cmd.Flags().StringVarP(&cfg.BaseURL, "base", "b", cfg.BaseURL, "Path prefix the application is served under")
	cmd.Flags().BoolVar(&cfg.Minify, "minify", false, "Minify the page")

	return cmd
}
