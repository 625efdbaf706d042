package entities

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/ecs"
)

// NewCameraEntity 创建镜头实体（镜头 + 轨道控制器）
//
// 参数：
//   - em: 实体管理器
//   - position: 初始镜头位置
//   - target: 初始注视点
//   - background: 初始背景色
//
// 控制器初始为禁用状态，平移和缩放不提供。
func NewCameraEntity(em *ecs.EntityManager, position, target mgl64.Vec3, background colorful.Color) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.CameraComponent{
		Position:   position,
		Background: background,
	})
	ecs.AddComponent(em, entity, &components.OrbitControlsComponent{
		Enabled:       false,
		EnableRotate:  false,
		RotateSpeed:   0,
		Target:        target,
		EnableDamping: true,
		Damping:       config.DefaultControlsDamping,
		NeedsUpdate:   true,
	})

	return entity
}

// NewCaptionEntity 创建打字机字幕实体（初始隐藏）
func NewCaptionEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.CaptionComponent{})
	return entity
}
