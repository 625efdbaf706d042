// Package main 是滚动导览的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose        Enable verbose logging
//	--mobile         Force the mobile viewport on desktop
//	--start <name>   Override the first waypoint of the experience (e.g. "C")
//
// Controls:
//
//	Click / Wheel  - Move between waypoints
//	Drag           - Rotate the camera where allowed
//	H              - Toggle debug HUD
//	F11            - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/scrolltour/pkg/app"
	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	mobileFlag  = flag.Bool("mobile", false, "Force the mobile viewport on desktop")
	startFlag   = flag.String("start", "", "Override the first waypoint (e.g., B, C)")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	tourApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ForceMobile: *mobileFlag,
		Start:       *startFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Scroll Tour")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(tourApp); err != nil {
		log.Fatal(err)
	}
}
