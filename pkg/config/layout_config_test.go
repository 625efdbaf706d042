package config

import (
	"testing"
)

// TestClickRatios 测试左/中/右三分之一的分界
func TestClickRatios(t *testing.T) {
	if ClickLeftRatio <= 0 || ClickLeftRatio >= ClickRightRatio || ClickRightRatio >= 1 {
		t.Errorf("Invalid click ratios: left=%.2f right=%.2f", ClickLeftRatio, ClickRightRatio)
	}
}

// TestLayoutFitsDefaultWindow 测试默认窗口能容纳导航栏、按钮和面板
func TestLayoutFitsDefaultWindow(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		limit float64
	}{
		{"按钮高度不超过导航栏", ButtonHeight, HeaderHeight},
		{"底部按钮在窗口内", SpaceButtonBottomMargin + ButtonHeight, GameWindowHeight - HeaderHeight},
		{"面板和两侧图片不重叠", PanelWidthRatio + 2*SlideWidthRatio, 1},
		{"四个导航按钮放得下", 4*ButtonWidth + 3*ButtonSpacing, GameWindowWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value > tt.limit {
				t.Errorf("%s: %.2f exceeds %.2f", tt.name, tt.value, tt.limit)
			}
		})
	}
}

// TestCameraClipPlanes 测试投影参数
func TestCameraClipPlanes(t *testing.T) {
	if CameraNear <= 0 || CameraFar <= CameraNear {
		t.Errorf("Invalid clip planes: near=%f far=%f", CameraNear, CameraFar)
	}
	if CameraFOVDegrees <= 0 || CameraFOVDegrees >= 180 {
		t.Errorf("Invalid FOV: %f", CameraFOVDegrees)
	}
}

// TestDefaultTimingValid 测试默认时间参数本身满足约束
func TestDefaultTimingValid(t *testing.T) {
	if err := DefaultTiming().Validate(); err != nil {
		t.Errorf("Default timing should be valid: %v", err)
	}
	if DefaultPreRollDelay < DefaultOverlayExitDuration {
		t.Error("Pre-roll must cover the overlay exit animation")
	}
}
