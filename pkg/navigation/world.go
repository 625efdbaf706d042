package navigation

import (
	"fmt"
	"log"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/entities"
	"github.com/decker502/scrolltour/pkg/systems"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// World 导览的全部运行时对象：实体、系统和导航引擎
type World struct {
	EntityManager *ecs.EntityManager
	Registry      *waypoint.Registry

	Scheduler   *systems.Scheduler
	Transitions *systems.TransitionSystem
	Overlays    *systems.OverlaySystem
	Typewriter  *systems.TypewriterSystem
	Orbit       *systems.OrbitControlsSystem
	Router      *systems.InputRouter
	Engine      *Engine

	CameraEntity  ecs.EntityID
	CaptionEntity ecs.EntityID
}

// NewWorld 根据配置创建导览世界
//
// 参数：
//   - tour: 已验证的导览配置
//   - content: 叠加层文案，可以为 nil；缺失的文案只记录日志
//   - vc: 初始视口类别
func NewWorld(tour *config.TourConfig, content *config.OverlayContentConfig, vc waypoint.ViewportClass) (*World, error) {
	reg, err := tour.BuildRegistry()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	entry, err := reg.Resolve(reg.Entry(), vc)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	cameraEntity := entities.NewCameraEntity(em, entry.Position, entry.Target, entry.Background)
	captionEntity := entities.NewCaptionEntity(em)
	if _, err := entities.NewOverlayEntities(em, reg, content); err != nil {
		log.Printf("[Overlay] %v", err)
	}

	scheduler := systems.NewScheduler()
	transitions := systems.NewTransitionSystem(em, cameraEntity)
	overlays := systems.NewOverlaySystem(em, reg, tour.Timing.OverlayExitDuration)
	typewriter := systems.NewTypewriterSystem(em, captionEntity, scheduler, tour.Timing.TypewriterInterval)
	orbit := systems.NewOrbitControlsSystem(em, cameraEntity)

	engine, err := NewEngine(Options{
		Registry:  reg,
		Timing:    tour.Timing,
		Start:     waypoint.Name(tour.Start),
		Viewport:  vc,
		Overlays:  overlays,
		Captions:  typewriter,
		Driver:    transitions,
		Rig:       orbit,
		Scheduler: scheduler,
	})
	if err != nil {
		return nil, err
	}

	return &World{
		EntityManager: em,
		Registry:      reg,
		Scheduler:     scheduler,
		Transitions:   transitions,
		Overlays:      overlays,
		Typewriter:    typewriter,
		Orbit:         orbit,
		Router:        systems.NewInputRouter(engine, orbit, tour),
		Engine:        engine,
		CameraEntity:  cameraEntity,
		CaptionEntity: captionEntity,
	}, nil
}

// Update 推进一帧
//
// 顺序：延迟任务 → 镜头过渡 → 叠加层动画 → 轨道控制器
func (w *World) Update(dt float64) {
	w.Scheduler.Update(dt)
	w.Transitions.Update(dt)
	w.Overlays.Update(dt)
	w.Orbit.Update(dt)
	w.EntityManager.RemoveMarkedEntities()
}
