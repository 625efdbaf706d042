package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/game"
	"github.com/decker502/scrolltour/pkg/navigation"
	"github.com/decker502/scrolltour/pkg/systems"
	"github.com/decker502/scrolltour/pkg/utils"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// TourOptions 导览场景的启动选项
type TourOptions struct {
	// ForceMobile 在桌面端强制使用移动端视口
	ForceMobile bool
	// Settings 用户设置，可以为 nil
	Settings *game.SettingsManager
}

// TourScene 导览场景：每帧采集输入、推进导航世界并绘制
type TourScene struct {
	sceneManager *game.SceneManager
	options      TourOptions

	world    *navigation.World
	tracker  *utils.PointerTracker
	scene    *systems.SceneRenderSystem
	overlays *systems.OverlayRenderSystem

	width, height int
}

// NewTourScene 创建导览场景
func NewTourScene(sm *game.SceneManager, tour *config.TourConfig, assets Assets, opts TourOptions) (*TourScene, error) {
	width, height := sm.ScreenSize()
	if width == 0 || height == 0 {
		width, height = config.GameWindowWidth, config.GameWindowHeight
	}
	vc := waypoint.ClassifyViewport(width, height, opts.ForceMobile || utils.IsMobile())

	world, err := navigation.NewWorld(tour, assets.Overlays, vc)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	sceneRender := systems.NewSceneRenderSystem(world.EntityManager, world.Orbit)
	sceneRender.SetModel(assets.Model)

	var welcome config.WelcomeContent
	if assets.Overlays != nil {
		welcome = assets.Overlays.Welcome
	}
	overlayRender, err := systems.NewOverlayRenderSystem(
		world.EntityManager, world.Overlays, world.Typewriter, world.Router, world.Engine, welcome)
	if err != nil {
		return nil, fmt.Errorf("create overlay renderer: %w", err)
	}

	return &TourScene{
		sceneManager: sm,
		options:      opts,
		world:        world,
		tracker:      utils.NewPointerTracker(config.DragThreshold),
		scene:        sceneRender,
		overlays:     overlayRender,
		width:        width,
		height:       height,
	}, nil
}

// SetScreenSize 实现 game.Resizable
func (s *TourScene) SetScreenSize(width, height int) {
	s.width, s.height = width, height
}

// World 返回导航世界
func (s *TourScene) World() *navigation.World {
	return s.world
}

// viewport 当前帧的视口类别（每帧根据实时尺寸重新计算）
func (s *TourScene) viewport() waypoint.ViewportClass {
	return waypoint.ClassifyViewport(s.width, s.height, s.options.ForceMobile || utils.IsMobile())
}

// Update 更新导览
func (s *TourScene) Update(deltaTime float64) {
	s.world.Engine.SetViewport(s.viewport())

	if inpututil.IsKeyJustPressed(ebiten.KeyH) && s.options.Settings != nil {
		s.options.Settings.ToggleHUD()
		_ = s.options.Settings.Save()
	}

	for _, ev := range s.tracker.Poll(s.width, s.height) {
		s.world.Router.Handle(ev)
	}
	s.world.Update(deltaTime)
}

// Draw 绘制场景和界面
func (s *TourScene) Draw(screen *ebiten.Image) {
	s.scene.Draw(screen)
	s.overlays.Draw(screen, s.world.Engine.Viewport())

	if s.options.Settings != nil && s.options.Settings.GetSettings().ShowHUD {
		e := s.world.Engine
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"at: %s  to: %s  moving: %v\nviewport: %s  fps: %.0f",
			e.CurrentLocation(), e.Destination(), e.IsTransitioning(),
			e.Viewport(), ebiten.ActualFPS(),
		), 8, int(config.HeaderHeight)+8)
	}
}
