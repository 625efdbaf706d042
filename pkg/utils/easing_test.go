package utils

import (
	"math"
	"testing"
)

// TestEaseInOutQuad 测试二次方缓入缓出
func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"四分之一", 0.25, 0.125},
		{"中点", 0.5, 0.5},
		{"四分之三", 0.75, 0.875},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutQuad(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 验证单调递增且关于中点对称
	t.Run("单调且对称", func(t *testing.T) {
		prev := -1.0
		for p := 0.0; p <= 1.0; p += 0.05 {
			v := EaseInOutQuad(p)
			if v < prev {
				t.Errorf("EaseInOutQuad not monotonic at %v", p)
			}
			prev = v
			if math.Abs(v+EaseInOutQuad(1-p)-1) > 1e-9 {
				t.Errorf("EaseInOutQuad not symmetric at %v", p)
			}
		}
	})
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInCubic 测试三次方缓入函数
func TestEaseInCubic(t *testing.T) {
	if v := EaseInCubic(0.5); math.Abs(v-0.125) > 0.001 {
		t.Errorf("EaseInCubic(0.5) = %v, 期望 0.125", v)
	}
	if EaseInCubic(0) != 0 || EaseInCubic(1) != 1 {
		t.Error("EaseInCubic endpoints wrong")
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp01AndApproach 测试范围限制和逼近
func TestClamp01AndApproach(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 wrong")
	}
	if v := Approach(0, 1, 0.25); v != 0.25 {
		t.Errorf("Approach up: got %v", v)
	}
	if v := Approach(0.9, 1, 0.25); v != 1 {
		t.Errorf("Approach must not overshoot: got %v", v)
	}
	if v := Approach(1, 0, 0.4); math.Abs(v-0.6) > 1e-9 {
		t.Errorf("Approach down: got %v", v)
	}
}
