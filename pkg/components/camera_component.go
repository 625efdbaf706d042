package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// CameraComponent 场景镜头的位置和场景背景色
// 由过渡系统驱动，渲染系统每帧读取。
type CameraComponent struct {
	// Position 镜头位置（世界坐标）
	Position mgl64.Vec3

	// Background 场景背景色
	Background colorful.Color
}
