package entities

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// ErrMissingCollaborator 航点声明了叠加层但没有对应的内容
// 不是致命错误：缺失的元素不会被创建，对它的显示/隐藏操作为空操作。
var ErrMissingCollaborator = errors.New("missing overlay element")

// fallbackCardColor 卡片颜色缺失或无法解析时使用
var fallbackCardColor = colorful.Color{R: 0.55, G: 0.55, B: 0.55}

// NewOverlayEntities 按航点声明的叠加层种类创建叠加层实体
//
// 参数：
//   - em: 实体管理器
//   - reg: 航点注册表
//   - content: 叠加层文案，可以为 nil
//
// 返回：
//   - 创建的实体ID（按航点注册顺序）
//   - 所有缺失内容的汇总错误（每一项都包装 ErrMissingCollaborator），调用方记录后继续
func NewOverlayEntities(em *ecs.EntityManager, reg *waypoint.Registry, content *config.OverlayContentConfig) ([]ecs.EntityID, error) {
	var (
		ids  []ecs.EntityID
		errs []error
	)

	add := func(comp *components.OverlayComponent) {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, comp)
		ids = append(ids, id)
	}
	missing := func(name waypoint.Name, what string) {
		errs = append(errs, fmt.Errorf("waypoint %s %s: %w", name, what, ErrMissingCollaborator))
	}

	for _, name := range reg.Names() {
		w, err := reg.Resolve(name, waypoint.Desktop)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		var loc config.LocationContent
		if content != nil {
			loc = content.Locations[string(name)]
		}

		for _, kind := range w.Overlays {
			role := components.OverlayRole{Location: name, Kind: kind}

			switch kind {
			case waypoint.OverlayPanel:
				if loc.Panel == nil {
					missing(name, "panel")
					continue
				}
				add(&components.OverlayComponent{
					Role:    role,
					Title:   loc.Panel.Title,
					Body:    loc.Panel.Body,
					Color:   w.Background,
					Opacity: 1,
				})

			case waypoint.OverlaySlides:
				for _, slide := range []struct {
					side components.OverlaySide
					card *config.SlideContent
					what string
				}{
					{components.SideLeft, loc.Left, "left slide"},
					{components.SideRight, loc.Right, "right slide"},
				} {
					if slide.card == nil {
						missing(name, slide.what)
						continue
					}
					r := role
					r.Side = slide.side
					add(&components.OverlayComponent{
						Role:    r,
						Title:   slide.card.Caption,
						Color:   parseCardColor(slide.card.Color),
						Opacity: 1,
					})
				}

			case waypoint.OverlayFullscreenImage:
				if loc.Image == nil {
					missing(name, "fullscreen image")
					continue
				}
				add(&components.OverlayComponent{
					Role:    role,
					Title:   loc.Image.Caption,
					Color:   parseCardColor(loc.Image.Color),
					Opacity: 1,
				})

			case waypoint.OverlayMask:
				if loc.Mask == nil {
					missing(name, "mask")
					continue
				}
				c, err := colorful.Hex(loc.Mask.Color)
				if err != nil {
					c = colorful.Color{}
				}
				add(&components.OverlayComponent{
					Role:    role,
					Color:   c,
					Opacity: loc.Mask.Alpha,
				})
			}
		}
	}

	return ids, errors.Join(errs...)
}

func parseCardColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackCardColor
	}
	return c
}
