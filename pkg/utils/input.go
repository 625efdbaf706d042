// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputEventKind 输入事件类型
type InputEventKind int

const (
	// EventClick 点击/轻触（按下到抬起之间没有拖拽）
	EventClick InputEventKind = iota + 1
	// EventWheel 滚轮
	EventWheel
	// EventTouchStart 触摸开始
	EventTouchStart
	// EventDrag 按住拖拽（用于轨道旋转）
	EventDrag
)

// InputEvent 一帧内产生的输入事件
type InputEvent struct {
	Kind InputEventKind
	// X, Y 事件位置（逻辑像素）
	X, Y int
	// Width, Height 事件发生时的视口尺寸
	Width, Height int
	// DeltaY 滚轮增量，正值表示向下滚动（与浏览器 wheel 事件一致）
	DeltaY float64
	// DX, DY 拖拽增量（像素）
	DX, DY float64
}

// PointerSample 一帧的原始指针状态
type PointerSample struct {
	JustPressed  bool
	Pressed      bool
	JustReleased bool
	Touch        bool
	X, Y         int
	WheelY       float64 // ebiten 约定：正值表示向上
}

// wheelScale 把 ebiten 的滚轮刻度换算成浏览器 deltaY 的量级
const wheelScale = 100.0

// PointerTracker 把原始鼠标/触摸状态转换为输入事件，并区分拖拽和点击
type PointerTracker struct {
	// DragThreshold 按下后移动超过此距离视为拖拽
	DragThreshold float64

	down           bool
	dragged        bool
	startX, startY int
	lastX, lastY   int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker(dragThreshold float64) *PointerTracker {
	return &PointerTracker{DragThreshold: dragThreshold}
}

// IsDragging 当前按下是否已经变成拖拽
func (p *PointerTracker) IsDragging() bool {
	return p.down && p.dragged
}

// Feed 处理一帧的指针状态，返回产生的事件
func (p *PointerTracker) Feed(s PointerSample, width, height int) []InputEvent {
	var events []InputEvent
	base := InputEvent{X: s.X, Y: s.Y, Width: width, Height: height}

	if s.WheelY != 0 {
		ev := base
		ev.Kind = EventWheel
		ev.DeltaY = -s.WheelY * wheelScale
		events = append(events, ev)
	}

	if s.JustPressed {
		p.down = true
		p.dragged = false
		p.startX, p.startY = s.X, s.Y
		p.lastX, p.lastY = s.X, s.Y
		if s.Touch {
			ev := base
			ev.Kind = EventTouchStart
			events = append(events, ev)
		}
		return events
	}

	if p.down && (s.Pressed || s.JustReleased) {
		dx, dy := float64(s.X-p.lastX), float64(s.Y-p.lastY)
		if !p.dragged && math.Hypot(float64(s.X-p.startX), float64(s.Y-p.startY)) > p.DragThreshold {
			p.dragged = true
		}
		if p.dragged && (dx != 0 || dy != 0) {
			ev := base
			ev.Kind = EventDrag
			ev.DX, ev.DY = dx, dy
			events = append(events, ev)
		}
		p.lastX, p.lastY = s.X, s.Y
	}

	if s.JustReleased && p.down {
		if !p.dragged {
			ev := base
			ev.Kind = EventClick
			events = append(events, ev)
		}
		p.down = false
		p.dragged = false
	}
	return events
}

// Poll 读取 ebiten 当前帧的输入并转换为事件
// 应该在每帧 Update 中调用一次
func (p *PointerTracker) Poll(width, height int) []InputEvent {
	return p.Feed(SamplePointer(), width, height)
}

// 保存最后一次触摸位置（触摸释放后无法再读取位置）
var lastTouchX, lastTouchY int

// SamplePointer 读取鼠标和触摸状态，优先触摸
func SamplePointer() PointerSample {
	s := PointerSample{}
	_, s.WheelY = ebiten.Wheel()

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		s.JustPressed, s.Pressed, s.Touch = true, true, true
		s.X, s.Y = ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = s.X, s.Y
		return s
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		s.Pressed, s.Touch = true, true
		s.X, s.Y = ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = s.X, s.Y
		return s
	}
	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		s.JustReleased, s.Touch = true, true
		s.X, s.Y = lastTouchX, lastTouchY
		return s
	}

	s.X, s.Y = ebiten.CursorPosition()
	s.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return s
}
