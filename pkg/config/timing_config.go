package config

import "fmt"

// 默认时间参数（秒）
const (
	// DefaultTransitionDuration 镜头过渡时长
	DefaultTransitionDuration = 2.5
	// DefaultOverlayExitDuration 叠加层退出动画时长
	DefaultOverlayExitDuration = 0.5
	// DefaultPreRollDelay 清空叠加层到镜头开始移动之间的等待，不得短于退出动画
	DefaultPreRollDelay = 0.5
	// DefaultArcDepth 贝塞尔控制点沿深度轴（Z）的额外偏移
	DefaultArcDepth = 15.0
	// DefaultTypewriterInterval 打字机每个字符的间隔
	DefaultTypewriterInterval = 0.1
	// DefaultScrollThreshold 滚轮累计量达到此值触发滚动导航
	DefaultScrollThreshold = 240.0
	// DefaultControlsDamping 轨道控制器阻尼系数（每帧保留的角速度比例）
	DefaultControlsDamping = 0.9
)

// TimingConfig 导航引擎的时间参数
type TimingConfig struct {
	TransitionDuration  float64 `yaml:"transitionDuration"`
	PreRollDelay        float64 `yaml:"preRollDelay"`
	OverlayExitDuration float64 `yaml:"overlayExitDuration"`
	ArcDepth            float64 `yaml:"arcDepth"`
	TypewriterInterval  float64 `yaml:"typewriterInterval"`
	ScrollThreshold     float64 `yaml:"scrollThreshold"`
}

// DefaultTiming 返回默认时间参数
func DefaultTiming() TimingConfig {
	return TimingConfig{
		TransitionDuration:  DefaultTransitionDuration,
		PreRollDelay:        DefaultPreRollDelay,
		OverlayExitDuration: DefaultOverlayExitDuration,
		ArcDepth:            DefaultArcDepth,
		TypewriterInterval:  DefaultTypewriterInterval,
		ScrollThreshold:     DefaultScrollThreshold,
	}
}

// withDefaults 用默认值填充未配置（零值）的字段
func (t TimingConfig) withDefaults() TimingConfig {
	d := DefaultTiming()
	if t.ArcDepth == 0 {
		t.ArcDepth = d.ArcDepth
	}
	if t.TransitionDuration == 0 {
		t.TransitionDuration = d.TransitionDuration
	}
	if t.PreRollDelay == 0 {
		t.PreRollDelay = d.PreRollDelay
	}
	if t.OverlayExitDuration == 0 {
		t.OverlayExitDuration = d.OverlayExitDuration
	}
	if t.TypewriterInterval == 0 {
		t.TypewriterInterval = d.TypewriterInterval
	}
	if t.ScrollThreshold == 0 {
		t.ScrollThreshold = d.ScrollThreshold
	}
	return t
}

// Validate 验证时间参数
//
// 预卷延迟必须不短于叠加层退出动画，否则镜头会在退出动画播放完之前开始移动。
func (t TimingConfig) Validate() error {
	if t.TransitionDuration <= 0 {
		return fmt.Errorf("transitionDuration must be positive, got %.3f", t.TransitionDuration)
	}
	if t.OverlayExitDuration < 0 {
		return fmt.Errorf("overlayExitDuration must not be negative, got %.3f", t.OverlayExitDuration)
	}
	if t.PreRollDelay < t.OverlayExitDuration {
		return fmt.Errorf("preRollDelay (%.3f) shorter than overlayExitDuration (%.3f)",
			t.PreRollDelay, t.OverlayExitDuration)
	}
	if t.TypewriterInterval <= 0 {
		return fmt.Errorf("typewriterInterval must be positive, got %.3f", t.TypewriterInterval)
	}
	if t.ScrollThreshold <= 0 {
		return fmt.Errorf("scrollThreshold must be positive, got %.3f", t.ScrollThreshold)
	}
	return nil
}
