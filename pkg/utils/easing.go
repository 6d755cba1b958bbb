package utils

import "math"

// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 超出范围的输入先钳制到 [0, 1]。

// Clamp01 把 t 钳制到 [0, 1]，NaN 视为 0
func Clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出，用于庆祝文字的淡入
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// FlipScale 返回翻页提示在进度 t 时的纵向缩放
//
// 前半段数字收拢到 0（缓入），后半段重新展开到 1（缓出），
// t ≤ 0 和 t ≥ 1 时都是 1。
func FlipScale(t float64) float64 {
	t = Clamp01(t)
	if t == 0 || t == 1 {
		return 1
	}
	if t < 0.5 {
		return 1 - EaseInQuad(t*2)
	}
	return EaseOutQuad(t*2 - 1)
}
