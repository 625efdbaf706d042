package components

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/waypoint"
)

// VisibilityState 叠加层可见状态
type VisibilityState int

const (
	// StateHidden 完全隐藏
	StateHidden VisibilityState = iota
	// StateVisible 显示
	StateVisible
	// StateHiding 正在播放退出动画（仅全屏图片）
	StateHiding
)

func (s VisibilityState) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateHiding:
		return "hiding"
	default:
		return "hidden"
	}
}

// OverlaySide 左右滑入图片的方位
type OverlaySide int

const (
	SideNone OverlaySide = iota
	SideLeft
	SideRight
)

// OverlayRole 叠加层元素的角色：所属航点 + 种类 + 方位
type OverlayRole struct {
	Location waypoint.Name
	Kind     waypoint.OverlayKind
	Side     OverlaySide
}

// OverlayComponent 一个叠加层元素
type OverlayComponent struct {
	Role  OverlayRole
	State VisibilityState

	// ExitElapsed 进入 StateHiding 后经过的时间（秒）
	ExitElapsed float64

	// Presence 绘制用的显现进度 [0, 1]，由 OverlayAnimationSystem 推进
	Presence float64

	// 内容
	Title string
	Body  string
	Color colorful.Color
	// Opacity 最大不透明度（遮罩使用，其他元素为 1）
	Opacity float64
}
