// Package navigation 实现航点之间的导航状态机
//
// 一次移动的完整流程：
//
//	RequestMove(X)
//	  → 正在移动？丢弃（不排队，不打断）
//	  → X 未注册？返回 ErrUnknownWaypoint，状态不变
//	  → 禁用控制器，清空字幕，清空叠加层
//	  → 等待预卷延迟（不短于叠加层退出动画）
//	  → 按当前视口解析 X，从镜头当前状态开始过渡
//	  → 过渡完成：current = X，应用到达策略，显示 X 的叠加层
//
// 所有方法都在游戏主循环线程上调用，时间由 Update 推进。
package navigation

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/entities"
	"github.com/decker502/scrolltour/pkg/systems"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// OverlayApplier 叠加层可见性
type OverlayApplier interface {
	Apply(location waypoint.Name)
}

// CaptionWriter 打字机字幕
type CaptionWriter interface {
	Start(text string)
	Clear()
}

// TransitionDriver 镜头过渡
type TransitionDriver interface {
	Run(spec systems.TransitionSpec, onComplete func()) error
	IsRunning() bool
}

// CameraRig 镜头与轨道控制器
type CameraRig interface {
	CameraState() systems.CameraState
	Snap(position, target mgl64.Vec3, background colorful.Color)
	SetControlsEnabled(enabled bool)
	ApplyPolicy(p waypoint.Policy)
}

// TaskScheduler 延迟任务
type TaskScheduler interface {
	After(delay float64, fn func()) *systems.Task
}

// Options 导航引擎的依赖
type Options struct {
	Registry *waypoint.Registry
	Timing   config.TimingConfig
	// Start StartExperience 的目标航点
	Start    waypoint.Name
	Viewport waypoint.ViewportClass

	// Overlays 和 Captions 可以为 nil，对应的操作成为空操作
	Overlays OverlayApplier
	Captions CaptionWriter

	Driver    TransitionDriver
	Rig       CameraRig
	Scheduler TaskScheduler
}

// Engine 导航状态机
type Engine struct {
	registry  *waypoint.Registry
	timing    config.TimingConfig
	start     waypoint.Name
	overlays  OverlayApplier
	captions  CaptionWriter
	driver    TransitionDriver
	rig       CameraRig
	scheduler TaskScheduler

	current     waypoint.Name
	destination waypoint.Name
	inFlight    bool
	started     bool
	viewport    waypoint.ViewportClass

	preRoll *systems.Task
	// resolvedFor 本次过渡解析目标时使用的视口类别
	resolvedFor waypoint.ViewportClass
	listeners   []func(waypoint.Name)
}

type noopOverlays struct{}

func (noopOverlays) Apply(waypoint.Name) {}

type noopCaptions struct{}

func (noopCaptions) Start(string) {}
func (noopCaptions) Clear()       {}

// NewEngine 创建导航引擎，镜头立即放到注册表的初始航点
func NewEngine(opts Options) (*Engine, error) {
	switch {
	case opts.Registry == nil:
		return nil, fmt.Errorf("navigation: registry: %w", entities.ErrMissingCollaborator)
	case opts.Driver == nil:
		return nil, fmt.Errorf("navigation: transition driver: %w", entities.ErrMissingCollaborator)
	case opts.Rig == nil:
		return nil, fmt.Errorf("navigation: camera rig: %w", entities.ErrMissingCollaborator)
	case opts.Scheduler == nil:
		return nil, fmt.Errorf("navigation: scheduler: %w", entities.ErrMissingCollaborator)
	}
	if err := opts.Timing.Validate(); err != nil {
		return nil, fmt.Errorf("navigation: %w", err)
	}

	start := opts.Start
	if start == waypoint.None {
		start = opts.Registry.Entry()
	}
	if !opts.Registry.Has(start) {
		return nil, fmt.Errorf("navigation: start %q: %w", start, waypoint.ErrUnknownWaypoint)
	}

	e := &Engine{
		registry:  opts.Registry,
		timing:    opts.Timing,
		start:     start,
		overlays:  opts.Overlays,
		captions:  opts.Captions,
		driver:    opts.Driver,
		rig:       opts.Rig,
		scheduler: opts.Scheduler,
		current:   opts.Registry.Entry(),
		viewport:  opts.Viewport,
	}
	if e.overlays == nil {
		e.overlays = noopOverlays{}
	}
	if e.captions == nil {
		e.captions = noopCaptions{}
	}

	entry, err := e.registry.Resolve(e.current, e.viewport)
	if err != nil {
		return nil, err
	}
	e.rig.Snap(entry.Position, entry.Target, entry.Background)
	e.rig.SetControlsEnabled(true)
	e.rig.ApplyPolicy(entry.Policy)
	e.overlays.Apply(e.current)
	return e, nil
}

// RequestMove 请求移动到 name
//
// 正在移动时请求被丢弃并返回 nil。name 未注册时返回 ErrUnknownWaypoint，
// 不改变任何状态。
func (e *Engine) RequestMove(name waypoint.Name) error {
	if e.inFlight {
		return nil
	}
	if !e.registry.Has(name) {
		err := fmt.Errorf("request move to %q: %w", name, waypoint.ErrUnknownWaypoint)
		log.Printf("[Navigation] %v", err)
		return err
	}

	e.inFlight = true
	e.destination = name
	e.rig.SetControlsEnabled(false)
	e.captions.Clear()
	e.overlays.Apply(waypoint.None)

	e.preRoll = e.scheduler.After(e.timing.PreRollDelay, func() {
		e.beginTransition(name)
	})
	return nil
}

func (e *Engine) beginTransition(name waypoint.Name) {
	e.preRoll = nil

	w, err := e.registry.Resolve(name, e.viewport)
	if err != nil {
		e.abort(err)
		return
	}
	e.resolvedFor = e.viewport

	to := systems.CameraState{Position: w.Position, Target: w.Target, Background: w.Background}
	spec := systems.NewTransitionSpec(e.rig.CameraState(), to, e.timing.TransitionDuration, e.timing.ArcDepth)
	if err := e.driver.Run(spec, func() { e.arrive(w) }); err != nil {
		e.abort(err)
	}
}

// abort 放弃本次移动，恢复到出发前的交互状态
func (e *Engine) abort(err error) {
	log.Printf("[Navigation] move to %s aborted: %v", e.destination, err)
	e.inFlight = false
	e.destination = waypoint.None
	e.rig.SetControlsEnabled(true)
	e.overlays.Apply(e.current)
}

func (e *Engine) arrive(w waypoint.Waypoint) {
	e.current = w.Name
	e.destination = waypoint.None
	e.inFlight = false

	// 过渡途中视口类别变了：直接放到新视口下的位置
	if e.resolvedFor != e.viewport {
		if snapped, err := e.registry.Resolve(w.Name, e.viewport); err == nil {
			e.rig.Snap(snapped.Position, snapped.Target, snapped.Background)
		}
	}

	e.rig.SetControlsEnabled(true)
	e.rig.ApplyPolicy(w.Policy)
	if w.Policy.Caption != "" {
		e.captions.Start(w.Policy.Caption)
	}
	e.overlays.Apply(w.Name)

	log.Printf("[Navigation] Moved to: %s", w.Name)
	for _, fn := range e.listeners {
		fn(w.Name)
	}
}

// CurrentLocation 返回最近一次到达的航点（移动过程中不变）
func (e *Engine) CurrentLocation() waypoint.Name {
	return e.current
}

// Destination 返回正在前往的航点，空闲时为 waypoint.None
func (e *Engine) Destination() waypoint.Name {
	return e.destination
}

// IsTransitioning 是否正在移动（包括预卷延迟）
func (e *Engine) IsTransitioning() bool {
	return e.inFlight
}

// StartExperience 开始导览：移动到起始航点
// 只有第一次调用有效。
func (e *Engine) StartExperience() {
	if e.started {
		return
	}
	e.started = true
	log.Printf("[Navigation] experience started")
	if err := e.RequestMove(e.start); err != nil && !errors.Is(err, waypoint.ErrUnknownWaypoint) {
		log.Printf("[Navigation] start failed: %v", err)
	}
}

// Started 是否已经开始
func (e *Engine) Started() bool {
	return e.started
}

// Viewport 返回当前视口类别
func (e *Engine) Viewport() waypoint.ViewportClass {
	return e.viewport
}

// SetViewport 更新视口类别
//
// 空闲时立即把镜头放到当前航点在新视口下的位置（无动画）；
// 移动过程中只记录，到达时再修正。
func (e *Engine) SetViewport(vc waypoint.ViewportClass) {
	if vc == e.viewport {
		return
	}
	e.viewport = vc
	if e.inFlight {
		return
	}
	w, err := e.registry.Resolve(e.current, vc)
	if err != nil {
		log.Printf("[Navigation] %v", err)
		return
	}
	e.rig.Snap(w.Position, w.Target, w.Background)
}

// OnArrive 注册到达回调，在到达流程的最后调用
func (e *Engine) OnArrive(fn func(waypoint.Name)) {
	e.listeners = append(e.listeners, fn)
}
