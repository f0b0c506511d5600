//go:build wasm
// +build wasm

// Command usertable-wasm is the browser side of the application.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -ldflags "-X main.baseURL=$BASE_URL" -o main.wasm ./cmd/usertable-wasm
package main

import (
	"flag"
	"log"

	"github.com/vugu/vugu"
	"github.com/vugu/vugu/domrender"

	"github.com/vgapps/usertable"
	"github.com/vgapps/usertable/ui"
)

// baseURL is set from the build environment.
var baseURL = "/"

func main() {

	mountPoint := flag.String("mount-point", "#vugu_mount_point", "The query selector for the mount point for the root component, if it is not a full HTML component")
	flag.Parse()

	renderer, err := domrender.New(*mountPoint)
	if err != nil {
		log.Fatal(err)
	}
	defer renderer.Release()

	buildEnv, err := vugu.NewBuildEnv(renderer.EventEnv())
	if err != nil {
		log.Fatal(err)
	}

	cfg := usertable.DefaultConfig()
	cfg.BaseURL = baseURL

	router, outlet, err := usertable.NewAppRouter(cfg, renderer.EventEnv(), usertable.NewRouteTable(ui.NewUserTable()))
	if err != nil {
		log.Fatal(err)
	}

	if err := router.Pull(); err != nil {
		log.Printf("Error reading browser URL: %v", err)
	}
	if err := router.ListenPopState(); err != nil {
		log.Printf("Error listening for history changes: %v", err)
	}
	defer router.StopPopState()

	for ok := true; ok; ok = renderer.EventWait() {
		buildResults := buildEnv.RunBuild(outlet)
		if err := renderer.Render(buildResults); err != nil {
			log.Fatal(err)
		}
	}
}
