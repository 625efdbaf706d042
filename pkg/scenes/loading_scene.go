package scenes

import (
	"context"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/sync/errgroup"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/game"
	"github.com/decker502/scrolltour/pkg/utils"
)

// 资源路径
const (
	ModelPath    = "data/model.yaml"
	OverlaysPath = "data/overlays.yaml"
)

// minLoadingTime 加载画面最短显示时间（秒）
const minLoadingTime = 0.4

// Assets 加载场景读取的资源
// 任一项加载失败时为 nil，导览照常进行（空场景或没有叠加层文案）
type Assets struct {
	Model    *config.ModelConfig
	Overlays *config.OverlayContentConfig
}

// LoadAssets 并行加载模型和叠加层文案
//
// 单个资源失败只记录日志，不影响其他资源；返回的错误仅在 ctx 取消时非空。
func LoadAssets(ctx context.Context, modelPath, overlaysPath string) (Assets, error) {
	var assets Assets
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		model, err := config.LoadModelConfig(modelPath)
		if err != nil {
			log.Printf("[LoadingScene] 模型加载失败，使用空场景: %v", err)
			return nil
		}
		assets.Model = model
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overlays, err := config.LoadOverlayContentConfig(overlaysPath)
		if err != nil {
			log.Printf("[LoadingScene] 叠加层文案加载失败: %v", err)
			return nil
		}
		assets.Overlays = overlays
		return nil
	})

	if err := g.Wait(); err != nil {
		return Assets{}, err
	}
	return assets, nil
}

// LoadingScene 启动时的加载画面
// 后台加载资源，完成后切换到导览场景。
type LoadingScene struct {
	sceneManager *game.SceneManager
	tour         *config.TourConfig
	options      TourOptions

	elapsed  float64
	progress float64
	done     chan struct{}
	assets   Assets
	failed   bool

	font *text.GoTextFace
}

// NewLoadingScene 创建加载场景并开始后台加载
func NewLoadingScene(sm *game.SceneManager, tour *config.TourConfig, opts TourOptions) *LoadingScene {
	scene := &LoadingScene{
		sceneManager: sm,
		tour:         tour,
		options:      opts,
		done:         make(chan struct{}),
	}

	font, err := utils.NewUIFace(config.PanelFontSize)
	if err != nil {
		log.Printf("[LoadingScene] Failed to load font: %v", err)
	}
	scene.font = font

	go func() {
		defer close(scene.done)
		assets, err := LoadAssets(context.Background(), ModelPath, OverlaysPath)
		if err != nil {
			log.Printf("[LoadingScene] 资源加载中止: %v", err)
		}
		scene.assets = assets
	}()

	return scene
}

// Update 推进进度条，资源就绪后切换到导览场景
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.progress = utils.Clamp01(s.elapsed / minLoadingTime)
	if s.failed || s.elapsed < minLoadingTime {
		return
	}

	select {
	case <-s.done:
	default:
		return
	}

	tourScene, err := NewTourScene(s.sceneManager, s.tour, s.assets, s.options)
	if err != nil {
		log.Printf("[LoadingScene] 无法创建导览场景: %v", err)
		s.failed = true
		return
	}
	log.Printf("[LoadingScene] 加载完成，进入导览")
	s.sceneManager.SwitchTo(tourScene)
}

// Draw 绘制进度条
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	bg := config.DefaultBackground()
	screen.Fill(bg)

	bounds := screen.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	barW, barH := w*0.4, float32(4)
	x, y := (w-barW)/2, h/2

	vector.DrawFilledRect(screen, x, y, barW, barH, color.NRGBA{0, 0, 0, 40}, false)
	vector.DrawFilledRect(screen, x, y, barW*float32(s.progress), barH, color.NRGBA{30, 30, 30, 255}, false)

	if s.font == nil {
		return
	}
	msg := "Loading..."
	if s.failed {
		msg = "Failed to start, see log"
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(w)/2, float64(y)+16)
	op.ColorScale.ScaleWithColor(color.NRGBA{30, 30, 30, 255})
	text.Draw(screen, msg, s.font, op)
}
