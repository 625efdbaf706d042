package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/utils"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

var (
	inkColor   = colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	paperColor = colorful.Color{R: 1, G: 1, B: 1}
)

// fadeColor 返回带不透明度的颜色
func fadeColor(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(utils.Clamp01(alpha) * 255)}
}

// OverlayRenderSystem 绘制叠加层、欢迎面板、导航按钮和字幕
//
// 绘制顺序（从底到顶）：遮罩 → 全屏图片 → 左右图片 → 文本面板 → 字幕 → 按钮 → 欢迎面板
type OverlayRenderSystem struct {
	entityManager *ecs.EntityManager
	overlays      *OverlaySystem
	captions      *TypewriterSystem
	router        *InputRouter
	nav           Navigator
	welcome       config.WelcomeContent

	titleFont   *text.GoTextFace
	bodyFont    *text.GoTextFace
	captionFont *text.GoTextFace
}

// NewOverlayRenderSystem 创建叠加层渲染系统
func NewOverlayRenderSystem(
	em *ecs.EntityManager,
	overlays *OverlaySystem,
	captions *TypewriterSystem,
	router *InputRouter,
	nav Navigator,
	welcome config.WelcomeContent,
) (*OverlayRenderSystem, error) {
	titleFont, err := utils.NewUIFace(config.TitleFontSize)
	if err != nil {
		return nil, err
	}
	bodyFont, err := utils.NewUIFace(config.PanelFontSize)
	if err != nil {
		return nil, err
	}
	captionFont, err := utils.NewUIFace(config.CaptionFontSize)
	if err != nil {
		return nil, err
	}

	return &OverlayRenderSystem{
		entityManager: em,
		overlays:      overlays,
		captions:      captions,
		router:        router,
		nav:           nav,
		welcome:       welcome,
		titleFont:     titleFont,
		bodyFont:      bodyFont,
		captionFont:   captionFont,
	}, nil
}

// Draw 绘制所有界面层
func (s *OverlayRenderSystem) Draw(screen *ebiten.Image, vc waypoint.ViewportClass) {
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	var masks, images, slides, panels []*components.OverlayComponent
	for _, id := range ecs.GetEntitiesWith1[*components.OverlayComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id)
		if comp.State == components.StateHidden {
			continue
		}
		switch comp.Role.Kind {
		case waypoint.OverlayMask:
			masks = append(masks, comp)
		case waypoint.OverlayFullscreenImage:
			images = append(images, comp)
		case waypoint.OverlaySlides:
			slides = append(slides, comp)
		case waypoint.OverlayPanel:
			panels = append(panels, comp)
		}
	}

	for _, c := range masks {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fadeColor(c.Color, c.Opacity*c.Presence), false)
	}
	for _, c := range images {
		s.drawFullscreenImage(screen, c, w, h)
	}
	for _, c := range slides {
		s.drawSlide(screen, c, w, h, vc)
	}
	for _, c := range panels {
		s.drawPanel(screen, c, w, h, vc)
	}

	s.drawCaption(screen, w, h)
	s.drawButtons(screen, bounds.Dx(), bounds.Dy())

	if !s.nav.Started() {
		s.drawWelcome(screen, w, h)
	}
}

// drawFullscreenImage 全屏图片：显示时淡入，退出时放大并淡出
func (s *OverlayRenderSystem) drawFullscreenImage(screen *ebiten.Image, c *components.OverlayComponent, w, h float64) {
	alpha := c.Presence
	scale := 1.0
	if c.State == components.StateHiding {
		p := utils.EaseInCubic(s.overlays.ExitProgress(c))
		alpha = 1 - p
		scale = 1 + 0.15*p
	}

	rw, rh := w*scale, h*scale
	x, y := (w-rw)/2, (h-rh)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(rw), float32(rh), fadeColor(c.Color, alpha), false)
	s.drawCentered(screen, c.Title, s.titleFont, w/2, h/2, paperColor, alpha)
}

// drawSlide 左右图片：从各自一侧滑入
func (s *OverlayRenderSystem) drawSlide(screen *ebiten.Image, c *components.OverlayComponent, w, h float64, vc waypoint.ViewportClass) {
	cardW := w * config.SlideWidthRatio
	if vc == waypoint.Mobile {
		cardW = w * 0.4
	}
	cardH := cardW * 1.25
	y := (h - cardH) / 2
	travel := config.SlideTravel * (1 - utils.EaseOutCubic(c.Presence))

	margin := 24.0
	x := margin - travel
	if c.Role.Side == components.SideRight {
		x = w - margin - cardW + travel
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(cardW), float32(cardH), fadeColor(c.Color, c.Presence), true)
	s.drawCentered(screen, c.Title, s.bodyFont, x+cardW/2, y+cardH-24, paperColor, c.Presence)
}

// drawPanel 文本面板：当前航点的面板随滚动累计量淡出
func (s *OverlayRenderSystem) drawPanel(screen *ebiten.Image, c *components.OverlayComponent, w, h float64, vc waypoint.ViewportClass) {
	alpha := c.Presence
	if c.Role.Location == s.nav.CurrentLocation() {
		alpha *= s.router.ScrollFade()
	}

	panelW := w * config.PanelWidthRatio
	x := (w - panelW) / 2
	y := h * 0.62
	if vc == waypoint.Mobile {
		panelW = w - 32
		x = 16
		y = h * 0.55
	}
	padding := 20.0

	body := utils.WrapText(c.Body, s.bodyFont, panelW-2*padding)
	lineH := config.PanelFontSize * 1.5
	panelH := padding*2 + config.TitleFontSize*1.4 + float64(len(body))*lineH

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), fadeColor(paperColor, 0.9*alpha), true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+padding, y+padding)
	op.ColorScale.ScaleWithColor(fadeColor(inkColor, 1))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, c.Title, s.titleFont, op)

	ty := y + padding + config.TitleFontSize*1.4
	for _, line := range body {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, ty)
		op.ColorScale.ScaleWithColor(fadeColor(inkColor, 1))
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, line, s.bodyFont, op)
		ty += lineH
	}
}

func (s *OverlayRenderSystem) drawCaption(screen *ebiten.Image, w, h float64) {
	if !s.captions.Visible() || s.captions.Text() == "" {
		return
	}
	s.drawCentered(screen, s.captions.Text(), s.captionFont, w/2, h*0.85, inkColor, 1)
}

func (s *OverlayRenderSystem) drawButtons(screen *ebiten.Image, width, height int) {
	rects := s.router.Buttons(width, height)
	if len(rects) == 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(config.HeaderHeight), fadeColor(paperColor, 0.6), false)
	for _, r := range rects {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fadeColor(inkColor, 0.85), true)
		s.drawCentered(screen, r.Button.Label, s.bodyFont, r.X+r.W/2, r.Y+r.H/2, paperColor, 1)
	}
}

// drawWelcome 开始前的欢迎面板
func (s *OverlayRenderSystem) drawWelcome(screen *ebiten.Image, w, h float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fadeColor(paperColor, 0.85), false)
	s.drawCentered(screen, s.welcome.Title, s.titleFont, w/2, h*0.4, inkColor, 1)

	y := h*0.4 + config.TitleFontSize*1.6
	for _, line := range utils.WrapText(s.welcome.Body, s.bodyFont, w*0.6) {
		s.drawCentered(screen, line, s.bodyFont, w/2, y, inkColor, 0.8)
		y += config.PanelFontSize * 1.5
	}
	s.drawCentered(screen, s.welcome.Hint, s.bodyFont, w/2, h*0.75, inkColor, 0.6)
}

func (s *OverlayRenderSystem) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, c colorful.Color, alpha float64) {
	if str == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(fadeColor(c, 1))
	op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))
	text.Draw(screen, str, face, op)
}
