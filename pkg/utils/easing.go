package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseInOutQuad 二次方缓入缓出（镜头过渡使用）
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 2t²
//	t >= 0.5: f(t) = 1 - (-2t + 2)² / 2
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（叠加层滑入）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快（全屏图片退出）
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Approach 以最大步长 step 把 current 推向 target，不会越过 target
func Approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}
