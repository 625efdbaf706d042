package components

import "github.com/go-gl/mathgl/mgl64"

// OrbitControlsComponent 轨道控制器状态
//
// 镜头围绕 Target 旋转。外部修改 Target 或镜头位置后必须把 NeedsUpdate
// 置为 true，OrbitControlsSystem 会在下一次 Update 时重新计算球坐标。
type OrbitControlsComponent struct {
	// Enabled 总开关，过渡期间为 false
	Enabled bool
	// EnableRotate 是否允许拖拽旋转
	EnableRotate bool
	// RotateSpeed 拖拽旋转速度系数
	RotateSpeed float64
	// Target 注视点
	Target mgl64.Vec3

	// EnableDamping 旋转惯性
	EnableDamping bool
	// Damping 每帧保留的角速度比例 (0, 1)
	Damping float64

	// NeedsUpdate Target 或镜头位置被外部修改
	NeedsUpdate bool

	// 球坐标（相对 Target）
	Radius  float64
	Azimuth float64 // 绕 Y 轴的水平角
	Polar   float64 // 与 +Y 轴的夹角

	// 角速度（弧度/帧），阻尼衰减
	AzimuthVelocity float64
	PolarVelocity   float64
}
