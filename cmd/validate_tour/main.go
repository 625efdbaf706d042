// Package main provides a data validation tool for the tour configuration.
//
// Usage:
//
//	go run cmd/validate_tour/main.go [flags]
//
// Flags:
//
//	--tour <path>       Tour config (default: "data/tour.yaml")
//	--overlays <path>   Overlay content (default: "data/overlays.yaml")
//	--model <path>      Wireframe model (default: "data/model.yaml")
//
// Purpose:
//   - Check every route table and button references a known waypoint
//   - Report overlay kinds that have no content (they are skipped at runtime)
//   - Check model edges reference existing vertices
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

var (
	tourFlag     = flag.String("tour", "data/tour.yaml", "Tour config path")
	overlaysFlag = flag.String("overlays", "data/overlays.yaml", "Overlay content path")
	modelFlag    = flag.String("model", "data/model.yaml", "Wireframe model path")
)

func main() {
	flag.Parse()

	tour, err := config.LoadTourConfig(*tourFlag)
	if err != nil {
		fmt.Printf("❌ 导览配置无效: %v\n", err)
		os.Exit(1)
	}
	reg, err := tour.BuildRegistry()
	if err != nil {
		fmt.Printf("❌ 航点注册表构建失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 导览配置正确: %d 个航点, 入口 %s, 起点 %s\n", reg.Len(), reg.Entry(), tour.Start)

	for _, name := range reg.Names() {
		for _, vc := range []waypoint.ViewportClass{waypoint.Desktop, waypoint.Mobile} {
			w, err := reg.Resolve(name, vc)
			if err != nil {
				fmt.Printf("❌ %s (%s): %v\n", name, vc, err)
				os.Exit(1)
			}
			fmt.Printf("   %s %-7s pos=%v target=%v\n", name, vc, w.Position, w.Target)
		}
	}

	missing := 0
	content, err := config.LoadOverlayContentConfig(*overlaysFlag)
	if err != nil {
		fmt.Printf("⚠️  叠加层文案加载失败，所有叠加层都会被跳过: %v\n", err)
	} else {
		missing = checkOverlayContent(reg, content)
	}

	model, err := config.LoadModelConfig(*modelFlag)
	if err != nil {
		fmt.Printf("❌ 模型无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 模型正确: %d 个网格\n", len(model.Meshes))

	if missing > 0 {
		fmt.Printf("⚠️  有 %d 个叠加层缺少文案（运行时会跳过）\n", missing)
	}
}

// checkOverlayContent 报告航点声明了但没有文案的叠加层
func checkOverlayContent(reg *waypoint.Registry, content *config.OverlayContentConfig) int {
	missing := 0
	report := func(name waypoint.Name, kind waypoint.OverlayKind) {
		fmt.Printf("⚠️  %s: 缺少 %s 文案\n", name, kind)
		missing++
	}

	for _, name := range reg.Names() {
		w, _ := reg.Resolve(name, waypoint.Desktop)
		loc := content.Locations[string(name)]
		for _, kind := range w.Overlays {
			switch kind {
			case waypoint.OverlayPanel:
				if loc.Panel == nil {
					report(name, kind)
				}
			case waypoint.OverlaySlides:
				if loc.Left == nil || loc.Right == nil {
					report(name, kind)
				}
			case waypoint.OverlayFullscreenImage:
				if loc.Image == nil {
					report(name, kind)
				}
			case waypoint.OverlayMask:
				if loc.Mask == nil {
					report(name, kind)
				}
			}
		}
	}
	if missing == 0 {
		fmt.Printf("✅ 所有叠加层都有文案\n")
	}
	return missing
}
