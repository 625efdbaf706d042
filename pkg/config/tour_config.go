package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/scrolltour/pkg/embedded"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// TourConfig 导览配置：航点、点击/滚动路由表、导航按钮和时间参数
//
// 配置文件位置: data/tour.yaml
type TourConfig struct {
	// Entry 启动时镜头所在的航点
	Entry string `yaml:"entry"`
	// Start StartExperience 触发的第一次移动目标
	Start string `yaml:"start"`

	Timing    TimingConfig            `yaml:"timing"`
	Waypoints []WaypointConfig        `yaml:"waypoints"`
	Clicks    map[string][]ClickRule  `yaml:"clicks"`
	Scrolls   map[string][]ScrollRule `yaml:"scrolls"`
	Buttons   []ButtonConfig          `yaml:"buttons"`
}

// WaypointConfig 单个航点的配置
type WaypointConfig struct {
	Name         string       `yaml:"name"`
	Label        string       `yaml:"label"`
	Position     mgl64.Vec3   `yaml:"position"`
	MobileOffset mgl64.Vec3   `yaml:"mobileOffset"`
	Target       mgl64.Vec3   `yaml:"target"`
	Background   string       `yaml:"background"` // 十六进制颜色，如 "#E8DB7D"
	Rotate       RotateConfig `yaml:"rotate"`
	Caption      string       `yaml:"caption"`
	Overlays     []string     `yaml:"overlays"`
}

// RotateConfig 到达后的旋转策略
type RotateConfig struct {
	Enabled bool    `yaml:"enabled"`
	Speed   float64 `yaml:"speed"`
}

// ClickRegion 点击位置分类
type ClickRegion string

const (
	RegionAny    ClickRegion = "any"
	RegionLeft   ClickRegion = "left"
	RegionCenter ClickRegion = "center"
	RegionRight  ClickRegion = "right"
)

// ScrollDirection 滚动方向
type ScrollDirection string

const (
	ScrollUp   ScrollDirection = "up"
	ScrollDown ScrollDirection = "down"
)

// ClickRule 当前航点下某个点击区域对应的目标
type ClickRule struct {
	Region ClickRegion `yaml:"region"`
	Target string      `yaml:"target"`
}

// ScrollRule 当前航点下某个滚动方向对应的目标
type ScrollRule struct {
	Direction ScrollDirection `yaml:"direction"`
	Target    string          `yaml:"target"`
}

// ButtonGroup 按钮分组
type ButtonGroup string

const (
	// GroupHeader 顶部导航栏按钮
	GroupHeader ButtonGroup = "header"
	// GroupSpace 场景内按钮（底部居中）
	GroupSpace ButtonGroup = "space"
)

// ButtonConfig 导航按钮
type ButtonConfig struct {
	ID     string      `yaml:"id"`
	Label  string      `yaml:"label"`
	Target string      `yaml:"target"`
	Group  ButtonGroup `yaml:"group"`
	// ShowAt 仅在这些航点显示，为空表示始终显示
	ShowAt []string `yaml:"showAt"`
}

// VisibleAt 检查按钮在指定航点是否显示
func (b ButtonConfig) VisibleAt(location waypoint.Name) bool {
	if len(b.ShowAt) == 0 {
		return true
	}
	for _, name := range b.ShowAt {
		if waypoint.Name(name) == location {
			return true
		}
	}
	return false
}

// LoadTourConfig 加载导览配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tour.yaml"）
//
// 返回:
//   - *TourConfig: 已填充默认值并通过验证的配置
//   - error: 读取、解析或验证失败
func LoadTourConfig(path string) (*TourConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tour config: %w", err)
	}
	cfg, err := ParseTourConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载导览配置: %s (%d 个航点)", path, len(cfg.Waypoints))
	return cfg, nil
}

// ParseTourConfig 从 YAML 数据解析导览配置
func ParseTourConfig(data []byte) (*TourConfig, error) {
	var cfg TourConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tour config: %w", err)
	}
	cfg.Timing = cfg.Timing.withDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tour config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
//
// 所有路由表、按钮和 start 引用的航点都必须存在于 waypoints 中。
func (c *TourConfig) Validate() error {
	if err := c.Timing.Validate(); err != nil {
		return err
	}
	if len(c.Waypoints) == 0 {
		return fmt.Errorf("no waypoints defined")
	}

	known := make(map[string]bool, len(c.Waypoints))
	for _, w := range c.Waypoints {
		known[w.Name] = true
		if w.Background != "" {
			if _, err := colorful.Hex(w.Background); err != nil {
				return fmt.Errorf("waypoint %q: invalid background %q: %w", w.Name, w.Background, err)
			}
		}
		for _, o := range w.Overlays {
			if _, ok := waypoint.ParseOverlayKind(o); !ok {
				return fmt.Errorf("waypoint %q: unknown overlay kind %q", w.Name, o)
			}
		}
	}

	check := func(what, name string) error {
		if !known[name] {
			return fmt.Errorf("%s references %q: %w", what, name, waypoint.ErrUnknownWaypoint)
		}
		return nil
	}

	if err := check("entry", c.Entry); err != nil {
		return err
	}
	if err := check("start", c.Start); err != nil {
		return err
	}
	for from, rules := range c.Clicks {
		if err := check("clicks", from); err != nil {
			return err
		}
		for _, r := range rules {
			switch r.Region {
			case RegionAny, RegionLeft, RegionCenter, RegionRight:
			default:
				return fmt.Errorf("clicks[%s]: unknown region %q", from, r.Region)
			}
			if err := check("clicks["+from+"]", r.Target); err != nil {
				return err
			}
		}
	}
	for from, rules := range c.Scrolls {
		if err := check("scrolls", from); err != nil {
			return err
		}
		for _, r := range rules {
			if r.Direction != ScrollUp && r.Direction != ScrollDown {
				return fmt.Errorf("scrolls[%s]: unknown direction %q", from, r.Direction)
			}
			if err := check("scrolls["+from+"]", r.Target); err != nil {
				return err
			}
		}
	}
	for _, b := range c.Buttons {
		if b.Group != GroupHeader && b.Group != GroupSpace {
			return fmt.Errorf("button %q: unknown group %q", b.ID, b.Group)
		}
		if err := check("button "+b.ID, b.Target); err != nil {
			return err
		}
		for _, at := range b.ShowAt {
			if err := check("button "+b.ID+" showAt", at); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildRegistry 根据配置构建航点注册表
func (c *TourConfig) BuildRegistry() (*waypoint.Registry, error) {
	waypoints := make([]waypoint.Waypoint, 0, len(c.Waypoints))
	for _, wc := range c.Waypoints {
		bg := DefaultBackground()
		if wc.Background != "" {
			parsed, err := colorful.Hex(wc.Background)
			if err != nil {
				return nil, fmt.Errorf("waypoint %q: %w", wc.Name, err)
			}
			bg = parsed
		}

		overlays := make([]waypoint.OverlayKind, 0, len(wc.Overlays))
		for _, o := range wc.Overlays {
			kind, ok := waypoint.ParseOverlayKind(o)
			if !ok {
				return nil, fmt.Errorf("waypoint %q: unknown overlay kind %q", wc.Name, o)
			}
			overlays = append(overlays, kind)
		}

		waypoints = append(waypoints, waypoint.Waypoint{
			Name:         waypoint.Name(wc.Name),
			Label:        wc.Label,
			Position:     wc.Position,
			MobileOffset: wc.MobileOffset,
			Target:       wc.Target,
			Background:   bg,
			Policy: waypoint.Policy{
				RotateEnabled: wc.Rotate.Enabled,
				RotateSpeed:   wc.Rotate.Speed,
				Caption:       wc.Caption,
			},
			Overlays: overlays,
		})
	}
	return waypoint.NewRegistry(waypoint.Name(c.Entry), waypoints...)
}

// DefaultBackground 未配置背景色时使用的浅灰色 (#f4f4f4)
func DefaultBackground() colorful.Color {
	c, _ := colorful.Hex("#f4f4f4")
	return c
}

// readConfigFile 优先从嵌入资源读取，未初始化时回退到文件系统（测试和工具使用）
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		if data, err := embedded.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return os.ReadFile(path)
}
