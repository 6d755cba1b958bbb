// Package ebitenlayer 提供基于 ebiten 离屏图像的 canvas.Surface 实现
//
// 单独成包，粒子模拟和配置相关的包不依赖 ebiten，可以在无显示环境下构建和测试。
package ebitenlayer

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/countdown/pkg/canvas"
)

// Layer 是基于 ebiten 离屏图像的绘制层
//
// 场景每帧在 Update 中清空并重绘各层，在 Draw 中把各层合成到屏幕。
type Layer struct {
	name   string
	image  *ebiten.Image
	width  int
	height int
}

var _ canvas.Surface = (*Layer)(nil)

// New 创建指定尺寸的绘制层，name 只用于日志
func New(name string, width, height int) *Layer {
	l := &Layer{name: name}
	l.Resize(width, height)
	return l
}

// Clear 清空整个层
func (l *Layer) Clear() {
	if l.image != nil {
		l.image.Clear()
	}
}

// FillCircle 在层上绘制填充圆，带可选光晕
func (l *Layer) FillCircle(c canvas.Circle) {
	if l.image == nil {
		return
	}
	alpha := canvas.ClampAlpha(c.Alpha)
	if alpha == 0 {
		return
	}
	r := canvas.ClampRadius(c.Radius)
	x, y := float32(c.X), float32(c.Y)

	for _, ring := range canvas.GlowRings(c.Glow) {
		vector.FillCircle(l.image, x, y, float32(r+ring[0]), withAlpha(c.Color, alpha*ring[1]), true)
	}
	vector.FillCircle(l.image, x, y, float32(r), withAlpha(c.Color, alpha), true)
}

// Size 返回层的像素尺寸
func (l *Layer) Size() (int, int) {
	return l.width, l.height
}

// Resize 调整层尺寸，尺寸不变时不重建图像
func (l *Layer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if l.image != nil && width == l.width && height == l.height {
		return
	}
	if l.image != nil {
		l.image.Deallocate()
	}
	l.image = ebiten.NewImage(width, height)
	l.width, l.height = width, height
	log.Printf("[Canvas] Layer %q resized to %dx%d", l.name, width, height)
}

// Draw 把层合成到目标图像的左上角
func (l *Layer) Draw(dst *ebiten.Image) {
	if l.image == nil {
		return
	}
	dst.DrawImage(l.image, &ebiten.DrawImageOptions{})
}

// Dispose 释放层占用的 GPU 图像，之后的绘制调用全部为空操作
func (l *Layer) Dispose() {
	if l.image != nil {
		l.image.Deallocate()
		l.image = nil
	}
}

// withAlpha 把不透明颜色与 alpha 组合为非预乘颜色
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(canvas.ClampAlpha(alpha)*255 + 0.5)}
}
