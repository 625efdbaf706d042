// Package waypoint 定义场景中的命名镜头位置（航点）及其注册表
//
// 每个航点是一条结构化记录：镜头位置、注视目标、背景色、到达后的交互策略，
// 以及它拥有的叠加层种类。新增航点只需要增加一条数据，不需要改代码。
package waypoint

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Name 是航点名称（来自封闭集合，例如 "A"..."F"）
type Name string

// None 表示"没有位置"，叠加层解析器用它清空所有叠加层
const None Name = ""

// OverlayKind 航点拥有的叠加层种类
type OverlayKind int

const (
	// OverlayPanel 文本面板
	OverlayPanel OverlayKind = iota + 1
	// OverlaySlides 左右两张滑入图片
	OverlaySlides
	// OverlayFullscreenImage 全屏图片（带独立的退出动画）
	OverlayFullscreenImage
	// OverlayMask 遮罩层
	OverlayMask
)

// String 返回叠加层种类名称（与配置文件中的写法一致）
func (k OverlayKind) String() string {
	switch k {
	case OverlayPanel:
		return "panel"
	case OverlaySlides:
		return "slides"
	case OverlayFullscreenImage:
		return "fullscreenImage"
	case OverlayMask:
		return "mask"
	default:
		return "unknown"
	}
}

// ParseOverlayKind 解析配置文件中的叠加层种类
func ParseOverlayKind(s string) (OverlayKind, bool) {
	for _, k := range []OverlayKind{OverlayPanel, OverlaySlides, OverlayFullscreenImage, OverlayMask} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Policy 到达航点后的交互策略
type Policy struct {
	RotateEnabled bool
	RotateSpeed   float64
	// Caption 非空时到达后启动打字机字幕
	Caption string
}

// Waypoint 一个命名的镜头/叠加层配置
type Waypoint struct {
	Name  Name
	Label string

	// Position 桌面端的镜头位置
	Position mgl64.Vec3
	// MobileOffset 移动端视口在 Position 上叠加的固定偏移
	MobileOffset mgl64.Vec3
	// Target 注视点（不随视口变化）
	Target mgl64.Vec3

	Background colorful.Color
	Policy     Policy
	Overlays   []OverlayKind
}

// HasOverlay 检查航点是否拥有某种叠加层
func (w Waypoint) HasOverlay(kind OverlayKind) bool {
	for _, k := range w.Overlays {
		if k == kind {
			return true
		}
	}
	return false
}

// PositionFor 返回航点在指定视口类别下的镜头位置
//
// 纯函数：每次过渡开始和视口类别变化时重新计算，不修改航点数据。
func PositionFor(w Waypoint, vc ViewportClass) mgl64.Vec3 {
	if vc == Mobile {
		return w.Position.Add(w.MobileOffset)
	}
	return w.Position
}
