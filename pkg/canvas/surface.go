// Package canvas 定义粒子层使用的 2D 绘制目标
//
// 粒子和烟花都只依赖 Surface 接口绘制，因此同一套更新逻辑既能画到
// ebiten 离屏图像（游戏窗口），也能画到 gg 上下文（离线导出 PNG）。
package canvas

import (
	"image/color"
	"math"
)

// MinRadius 绘制圆时允许的最小半径
// 半径为 0 或负数的圆在绘制目标上是未定义行为，一律提升到该值
const MinRadius = 0.1

// Circle 描述一次填充圆绘制
type Circle struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
	// Alpha 整体不透明度 (0-1)
	Alpha float64
	// Glow 阴影模糊半径，0 表示无光晕
	Glow float64
}

// Surface 是一个可清空、可画圆的 2D 绘制目标
type Surface interface {
	// Clear 清空整个绘制区域
	Clear()
	// FillCircle 绘制一个填充圆
	FillCircle(c Circle)
	// Size 返回当前像素尺寸
	Size() (width, height int)
	// Resize 调整像素尺寸（视口变化时调用）
	Resize(width, height int)
}

// ClampRadius 把半径限制到 MinRadius 以上
func ClampRadius(r float64) float64 {
	if math.IsNaN(r) || r < MinRadius {
		return MinRadius
	}
	return r
}

// ClampAlpha 把不透明度限制在 [0, 1]
func ClampAlpha(a float64) float64 {
	if math.IsNaN(a) || a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// GlowRings 光晕近似：在实心圆下方叠加若干逐渐变大、逐渐变淡的圆环
// 返回每一圈的 (半径增量, 不透明度系数)
func GlowRings(blur float64) [][2]float64 {
	if blur <= 0 {
		return nil
	}
	const steps = 4
	rings := make([][2]float64, 0, steps)
	for i := steps; i >= 1; i-- {
		t := float64(i) / steps
		rings = append(rings, [2]float64{blur * t, 0.15 * (1.25 - t)})
	}
	return rings
}
