package systems

import (
	"errors"
	"log"
	"math"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/utils"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// Navigator 输入路由需要的导航操作
type Navigator interface {
	RequestMove(name waypoint.Name) error
	CurrentLocation() waypoint.Name
	IsTransitioning() bool
	StartExperience()
	Started() bool
}

// Rotator 接收拖拽旋转的轨道控制器
type Rotator interface {
	Rotate(dx, dy float64, height int)
	ControlsEnabled() bool
}

// InputRouter 把输入事件翻译为导航请求
//
// 路由是静态查表：(当前航点, 点击区域) → 目标，(当前航点, 滚动方向) → 目标。
// 表中没有的组合不产生任何动作。
type InputRouter struct {
	nav     Navigator
	rotator Rotator

	clicks    map[string][]config.ClickRule
	scrolls   map[string][]config.ScrollRule
	buttons   []config.ButtonConfig
	threshold float64

	// 滚轮累计量，正值向下；换航点或换方向时清零
	scrollAccum    float64
	scrollLocation waypoint.Name
}

// NewInputRouter 创建输入路由
// rotator 可以为 nil（不处理拖拽）
func NewInputRouter(nav Navigator, rotator Rotator, tour *config.TourConfig) *InputRouter {
	return &InputRouter{
		nav:       nav,
		rotator:   rotator,
		clicks:    tour.Clicks,
		scrolls:   tour.Scrolls,
		buttons:   tour.Buttons,
		threshold: tour.Timing.ScrollThreshold,
	}
}

// ClassifyClick 按横向比例把点击归入左/中/右三分之一
func ClassifyClick(x, width int) config.ClickRegion {
	if width <= 0 {
		return config.RegionCenter
	}
	ratio := float64(x) / float64(width)
	switch {
	case ratio < config.ClickLeftRatio:
		return config.RegionLeft
	case ratio > config.ClickRightRatio:
		return config.RegionRight
	default:
		return config.RegionCenter
	}
}

// Buttons 返回当前可见按钮的布局；开始之前没有按钮
func (r *InputRouter) Buttons(width, height int) []ButtonRect {
	if !r.nav.Started() {
		return nil
	}
	return LayoutButtons(r.buttons, r.nav.CurrentLocation(), width, height)
}

// Handle 处理一个输入事件
func (r *InputRouter) Handle(ev utils.InputEvent) {
	if !r.nav.Started() {
		switch ev.Kind {
		case utils.EventClick, utils.EventWheel, utils.EventTouchStart:
			r.nav.StartExperience()
		}
		return
	}

	r.syncLocation()

	switch ev.Kind {
	case utils.EventDrag:
		if r.rotator != nil {
			r.rotator.Rotate(ev.DX, ev.DY, ev.Height)
		}

	case utils.EventClick:
		r.handleClick(ev)

	case utils.EventWheel:
		r.handleWheel(ev)
	}
}

func (r *InputRouter) handleClick(ev utils.InputEvent) {
	// 按钮优先，点击按钮不会再按区域路由
	if b, ok := HitButton(r.Buttons(ev.Width, ev.Height), float64(ev.X), float64(ev.Y)); ok {
		r.move(waypoint.Name(b.Target))
		return
	}

	if r.nav.IsTransitioning() || (r.rotator != nil && !r.rotator.ControlsEnabled()) {
		return
	}

	region := ClassifyClick(ev.X, ev.Width)
	current := string(r.nav.CurrentLocation())
	for _, rule := range r.clicks[current] {
		if rule.Region == region || rule.Region == config.RegionAny {
			r.move(waypoint.Name(rule.Target))
			return
		}
	}
}

func (r *InputRouter) handleWheel(ev utils.InputEvent) {
	if r.nav.IsTransitioning() {
		r.scrollAccum = 0
		return
	}
	if ev.DeltaY == 0 {
		return
	}
	// 换方向时重新累计
	if r.scrollAccum != 0 && (r.scrollAccum > 0) != (ev.DeltaY > 0) {
		r.scrollAccum = 0
	}
	r.scrollAccum += ev.DeltaY
	if math.Abs(r.scrollAccum) < r.threshold {
		return
	}

	dir := config.ScrollDown
	if r.scrollAccum < 0 {
		dir = config.ScrollUp
	}
	r.scrollAccum = 0

	current := string(r.nav.CurrentLocation())
	for _, rule := range r.scrolls[current] {
		if rule.Direction == dir {
			r.move(waypoint.Name(rule.Target))
			return
		}
	}
}

// ScrollFade 当前航点文本面板随滚动累计量变化的不透明度 [0, 1]
// 没有滚动时为 1，累计量接近阈值时趋近 0。
func (r *InputRouter) ScrollFade() float64 {
	r.syncLocation()
	if r.threshold <= 0 {
		return 1
	}
	return 1 - utils.Clamp01(math.Abs(r.scrollAccum)/r.threshold)
}

func (r *InputRouter) syncLocation() {
	if loc := r.nav.CurrentLocation(); loc != r.scrollLocation {
		r.scrollLocation = loc
		r.scrollAccum = 0
	}
}

func (r *InputRouter) move(target waypoint.Name) {
	if err := r.nav.RequestMove(target); err != nil && !errors.Is(err, ErrTransitionInFlight) {
		log.Printf("[Input] move to %q rejected: %v", target, err)
	}
}
