package systems

import (
	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// ButtonRect 一个导航按钮在屏幕上的矩形
type ButtonRect struct {
	Button     config.ButtonConfig
	X, Y, W, H float64
}

// Contains 检查点是否在按钮内
func (r ButtonRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// LayoutButtons 计算 location 下可见按钮的位置
//
// 顶部按钮从右向左排列在导航栏内，场景内按钮在底部居中排成一行。
func LayoutButtons(buttons []config.ButtonConfig, location waypoint.Name, width, height int) []ButtonRect {
	var header, space []config.ButtonConfig
	for _, b := range buttons {
		if !b.VisibleAt(location) {
			continue
		}
		if b.Group == config.GroupSpace {
			space = append(space, b)
		} else {
			header = append(header, b)
		}
	}

	rects := make([]ButtonRect, 0, len(header)+len(space))

	// 顶部：保持配置顺序，整体右对齐
	y := (config.HeaderHeight - config.ButtonHeight) / 2
	x := float64(width) - config.ButtonSpacing - float64(len(header))*(config.ButtonWidth+config.ButtonSpacing)
	for _, b := range header {
		x += config.ButtonSpacing
		rects = append(rects, ButtonRect{Button: b, X: x, Y: y, W: config.ButtonWidth, H: config.ButtonHeight})
		x += config.ButtonWidth
	}

	if len(space) > 0 {
		total := float64(len(space))*config.ButtonWidth + float64(len(space)-1)*config.ButtonSpacing
		x = (float64(width) - total) / 2
		y = float64(height) - config.SpaceButtonBottomMargin - config.ButtonHeight
		for _, b := range space {
			rects = append(rects, ButtonRect{Button: b, X: x, Y: y, W: config.ButtonWidth, H: config.ButtonHeight})
			x += config.ButtonWidth + config.ButtonSpacing
		}
	}
	return rects
}

// HitButton 返回包含 (x, y) 的按钮
func HitButton(rects []ButtonRect, x, y float64) (config.ButtonConfig, bool) {
	for _, r := range rects {
		if r.Contains(x, y) {
			return r.Button, true
		}
	}
	return config.ButtonConfig{}, false
}
