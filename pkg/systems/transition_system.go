package systems

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/utils"
)

// ErrTransitionInFlight 上一次过渡尚未完成
var ErrTransitionInFlight = errors.New("transition already in flight")

// TransitionSpec 一次镜头过渡的完整描述
type TransitionSpec struct {
	StartPosition mgl64.Vec3
	EndPosition   mgl64.Vec3
	// ControlPoint 二次贝塞尔曲线的控制点
	ControlPoint mgl64.Vec3

	StartTarget mgl64.Vec3
	EndTarget   mgl64.Vec3

	StartColor colorful.Color
	EndColor   colorful.Color

	// Duration 总时长（秒）
	Duration float64
	Easing   utils.EasingFunc
}

// CameraState 镜头的瞬时状态：位置、注视点、背景色
type CameraState struct {
	Position   mgl64.Vec3
	Target     mgl64.Vec3
	Background colorful.Color
}

// NewTransitionSpec 从起止状态构建过渡
//
// 控制点取起止位置的中点并沿 Z 轴（深度方向）偏移 arcDepth，
// 使镜头沿弧线"向后拉"再推进，而不是直线穿过模型。
func NewTransitionSpec(from, to CameraState, duration, arcDepth float64) TransitionSpec {
	mid := from.Position.Add(to.Position).Mul(0.5)
	return TransitionSpec{
		StartPosition: from.Position,
		EndPosition:   to.Position,
		ControlPoint:  mid.Add(mgl64.Vec3{0, 0, arcDepth}),
		StartTarget:   from.Target,
		EndTarget:     to.Target,
		StartColor:    from.Background,
		EndColor:      to.Background,
		Duration:      duration,
		Easing:        utils.EaseInOutQuad,
	}
}

// Sample 返回进度 p ∈ [0, 1]（已缓动）处的镜头状态
func (s TransitionSpec) Sample(p float64) CameraState {
	p = utils.Clamp01(p)
	return CameraState{
		Position:   mgl64.QuadraticBezierCurve3D(p, s.StartPosition, s.ControlPoint, s.EndPosition),
		Target:     s.StartTarget.Add(s.EndTarget.Sub(s.StartTarget).Mul(p)),
		Background: s.StartColor.BlendRgb(s.EndColor, p),
	}
}

// End 返回过渡的终点状态
func (s TransitionSpec) End() CameraState {
	return CameraState{Position: s.EndPosition, Target: s.EndTarget, Background: s.EndColor}
}

// TransitionSystem 驱动镜头实体沿贝塞尔曲线过渡
//
// 位置、注视点、背景色共用一个时钟和一条缓动曲线，
// 三者同时开始、同时结束。完成回调恰好调用一次。
type TransitionSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID

	running    bool
	spec       TransitionSpec
	elapsed    float64
	onComplete func()
}

// NewTransitionSystem 创建过渡系统
// cameraEntity 需要拥有 CameraComponent 和 OrbitControlsComponent
func NewTransitionSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *TransitionSystem {
	return &TransitionSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
	}
}

// Run 开始一次过渡
// 已有过渡在进行时返回 ErrTransitionInFlight，不影响正在进行的过渡。
func (ts *TransitionSystem) Run(spec TransitionSpec, onComplete func()) error {
	if ts.running {
		return ErrTransitionInFlight
	}
	if spec.Easing == nil {
		spec.Easing = utils.EaseInOutQuad
	}

	ts.running = true
	ts.spec = spec
	ts.elapsed = 0
	ts.onComplete = onComplete

	// 时长为 0 时下一次 Update 立即完成
	return nil
}

// Update 推进过渡
func (ts *TransitionSystem) Update(dt float64) {
	if !ts.running {
		return
	}

	ts.elapsed += dt
	finished := ts.spec.Duration <= 0 || ts.elapsed >= ts.spec.Duration

	var state CameraState
	if finished {
		state = ts.spec.End()
	} else {
		state = ts.spec.Sample(ts.spec.Easing(ts.elapsed / ts.spec.Duration))
	}
	ts.apply(state)

	if !finished {
		return
	}

	// 先清除运行标记再回调，回调中可以立即开始下一次过渡
	ts.running = false
	done := ts.onComplete
	ts.onComplete = nil
	if done != nil {
		done()
	}
}

// IsRunning 是否有过渡在进行
func (ts *TransitionSystem) IsRunning() bool {
	return ts.running
}

// Progress 返回未缓动的时间进度 [0, 1]；空闲时为 0
func (ts *TransitionSystem) Progress() float64 {
	if !ts.running {
		return 0
	}
	if ts.spec.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(ts.elapsed / ts.spec.Duration)
}

func (ts *TransitionSystem) apply(state CameraState) {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](ts.entityManager, ts.cameraEntity); ok {
		cam.Position = state.Position
		cam.Background = state.Background
	}
	if ctrl, ok := ecs.GetComponent[*components.OrbitControlsComponent](ts.entityManager, ts.cameraEntity); ok {
		ctrl.Target = state.Target
		ctrl.NeedsUpdate = true
	}
}
