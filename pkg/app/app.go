// Package app 提供导览应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/game"
	"github.com/decker502/scrolltour/pkg/scenes"
)

// TourConfigPath 导览配置路径
const TourConfigPath = "data/tour.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ForceMobile 在桌面端强制使用移动端视口
	ForceMobile bool
	// Start 覆盖配置中的初始航点（如 "B"），为空则使用配置
	Start string
}

// App 是导览应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化导览应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tour, err := config.LoadTourConfig(TourConfigPath)
	if err != nil {
		return nil, fmt.Errorf("导览配置加载失败: %w", err)
	}
	if cfg.Start != "" {
		tour.Start = cfg.Start
		if err := tour.Validate(); err != nil {
			return nil, fmt.Errorf("初始航点无效: %w", err)
		}
		log.Printf("[App] Start waypoint overridden: %s", cfg.Start)
	}

	// 设置存储不可用时降级为内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "scrolltour"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewLoadingScene(sceneManager, tour, scenes.TourOptions{
		ForceMobile: cfg.ForceMobile,
		Settings:    settings,
	}))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新导览逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	enable := !ebiten.IsFullscreen()
	if !enable {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(enable)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 使用窗口的实际尺寸作为逻辑屏幕尺寸
// 视口类别（桌面/移动）随窗口尺寸变化，每帧由导览场景重新计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = config.GameWindowWidth, config.GameWindowHeight
	}
	a.sceneManager.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
