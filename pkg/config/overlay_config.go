package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OverlayContentConfig 叠加层文案
//
// 配置文件位置: data/overlays.yaml
// 缺少某个航点的文案不是错误：对应的叠加层元素不会被创建，解析器对其操作为空操作。
type OverlayContentConfig struct {
	// Welcome 开始前显示的欢迎面板
	Welcome WelcomeContent `yaml:"welcome"`
	// Locations 按航点名称索引的叠加层内容
	Locations map[string]LocationContent `yaml:"locations"`
}

// WelcomeContent 欢迎面板内容
type WelcomeContent struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Hint  string `yaml:"hint"`
}

// LocationContent 单个航点的叠加层内容
type LocationContent struct {
	// Panel 文本面板
	Panel *PanelContent `yaml:"panel"`
	// Left/Right 左右滑入图片（用纯色卡片加标题表示）
	Left  *SlideContent `yaml:"left"`
	Right *SlideContent `yaml:"right"`
	// Image 全屏图片
	Image *SlideContent `yaml:"image"`
	// Mask 遮罩层，为空表示无遮罩
	Mask *MaskContent `yaml:"mask"`
}

// MaskContent 遮罩颜色和不透明度
type MaskContent struct {
	Color string  `yaml:"color"`
	Alpha float64 `yaml:"alpha"`
}

// PanelContent 文本面板
type PanelContent struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// SlideContent 图片卡片
type SlideContent struct {
	Caption string `yaml:"caption"`
	Color   string `yaml:"color"`
}

// LoadOverlayContentConfig 加载叠加层文案
func LoadOverlayContentConfig(path string) (*OverlayContentConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay config: %w", err)
	}
	return ParseOverlayContentConfig(data)
}

// ParseOverlayContentConfig 从 YAML 数据解析叠加层文案
func ParseOverlayContentConfig(data []byte) (*OverlayContentConfig, error) {
	var cfg OverlayContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse overlay config: %w", err)
	}
	if cfg.Locations == nil {
		cfg.Locations = make(map[string]LocationContent)
	}
	return &cfg, nil
}
