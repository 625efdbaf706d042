package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// polarEpsilon 防止镜头越过正上方/正下方
const polarEpsilon = 1e-3

// OrbitControlsSystem 轨道控制器：镜头围绕注视点旋转
//
// 只支持旋转，不支持平移和缩放。
// 同时负责导航引擎对镜头的直接操作（读取状态、瞬移、启停控制器、应用到达策略）。
type OrbitControlsSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewOrbitControlsSystem 创建轨道控制系统
func NewOrbitControlsSystem(em *ecs.EntityManager, cameraEntity ecs.EntityID) *OrbitControlsSystem {
	return &OrbitControlsSystem{
		entityManager: em,
		cameraEntity:  cameraEntity,
	}
}

func (s *OrbitControlsSystem) rig() (*components.CameraComponent, *components.OrbitControlsComponent, bool) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraEntity)
	if !ok {
		return nil, nil, false
	}
	ctrl, ok := ecs.GetComponent[*components.OrbitControlsComponent](s.entityManager, s.cameraEntity)
	if !ok {
		return nil, nil, false
	}
	return cam, ctrl, true
}

// Rotate 处理一次拖拽，dx/dy 为像素增量，height 为视口高度
// 一次拖过整个视口高度对应旋转 2π × RotateSpeed。
func (s *OrbitControlsSystem) Rotate(dx, dy float64, height int) {
	_, ctrl, ok := s.rig()
	if !ok || !ctrl.Enabled || !ctrl.EnableRotate || height <= 0 {
		return
	}
	h := float64(height)
	ctrl.AzimuthVelocity -= 2 * math.Pi * dx / h * ctrl.RotateSpeed
	ctrl.PolarVelocity -= 2 * math.Pi * dy / h * ctrl.RotateSpeed
}

// Update 同步外部修改并应用旋转
func (s *OrbitControlsSystem) Update(dt float64) {
	cam, ctrl, ok := s.rig()
	if !ok {
		return
	}

	if ctrl.NeedsUpdate {
		syncSpherical(cam, ctrl)
		ctrl.NeedsUpdate = false
	}

	if !ctrl.Enabled || !ctrl.EnableRotate {
		ctrl.AzimuthVelocity = 0
		ctrl.PolarVelocity = 0
		return
	}
	if ctrl.AzimuthVelocity == 0 && ctrl.PolarVelocity == 0 {
		return
	}

	dAz, dPolar := ctrl.AzimuthVelocity, ctrl.PolarVelocity
	if ctrl.EnableDamping {
		keep := ctrl.Damping
		dAz *= 1 - keep
		dPolar *= 1 - keep
		ctrl.AzimuthVelocity *= keep
		ctrl.PolarVelocity *= keep
		if math.Abs(ctrl.AzimuthVelocity) < 1e-6 && math.Abs(ctrl.PolarVelocity) < 1e-6 {
			ctrl.AzimuthVelocity, ctrl.PolarVelocity = 0, 0
		}
	} else {
		ctrl.AzimuthVelocity, ctrl.PolarVelocity = 0, 0
	}

	ctrl.Azimuth += dAz
	ctrl.Polar = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, ctrl.Polar+dPolar))
	cam.Position = ctrl.Target.Add(sphericalOffset(ctrl.Radius, ctrl.Azimuth, ctrl.Polar))
}

// CameraState 返回镜头当前状态
func (s *OrbitControlsSystem) CameraState() CameraState {
	cam, ctrl, ok := s.rig()
	if !ok {
		return CameraState{}
	}
	return CameraState{Position: cam.Position, Target: ctrl.Target, Background: cam.Background}
}

// Snap 立即把镜头放到指定位置（无动画）
func (s *OrbitControlsSystem) Snap(position, target mgl64.Vec3, background colorful.Color) {
	cam, ctrl, ok := s.rig()
	if !ok {
		return
	}
	cam.Position = position
	cam.Background = background
	ctrl.Target = target
	ctrl.AzimuthVelocity, ctrl.PolarVelocity = 0, 0
	ctrl.NeedsUpdate = true
}

// SetControlsEnabled 启用或禁用控制器
func (s *OrbitControlsSystem) SetControlsEnabled(enabled bool) {
	if _, ctrl, ok := s.rig(); ok {
		ctrl.Enabled = enabled
		if !enabled {
			ctrl.AzimuthVelocity, ctrl.PolarVelocity = 0, 0
		}
	}
}

// ControlsEnabled 控制器是否启用
func (s *OrbitControlsSystem) ControlsEnabled() bool {
	_, ctrl, ok := s.rig()
	return ok && ctrl.Enabled
}

// ApplyPolicy 应用航点的到达策略
func (s *OrbitControlsSystem) ApplyPolicy(p waypoint.Policy) {
	if _, ctrl, ok := s.rig(); ok {
		ctrl.EnableRotate = p.RotateEnabled
		ctrl.RotateSpeed = p.RotateSpeed
	}
}

func syncSpherical(cam *components.CameraComponent, ctrl *components.OrbitControlsComponent) {
	offset := cam.Position.Sub(ctrl.Target)
	ctrl.Radius = offset.Len()
	if ctrl.Radius == 0 {
		ctrl.Azimuth, ctrl.Polar = 0, math.Pi/2
		return
	}
	ctrl.Azimuth = math.Atan2(offset.X(), offset.Z())
	ctrl.Polar = math.Acos(math.Max(-1, math.Min(1, offset.Y()/ctrl.Radius)))
}

func sphericalOffset(radius, azimuth, polar float64) mgl64.Vec3 {
	sinPolar := math.Sin(polar)
	return mgl64.Vec3{
		radius * sinPolar * math.Sin(azimuth),
		radius * math.Cos(polar),
		radius * sinPolar * math.Cos(azimuth),
	}
}
