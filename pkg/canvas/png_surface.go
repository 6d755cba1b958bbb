package canvas

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// PNGSurface 是基于 gg 的内存绘制目标，用于离线渲染单帧并导出 PNG
type PNGSurface struct {
	dc *gg.Context
}

// NewPNGSurface 创建指定尺寸的内存绘制目标
func NewPNGSurface(width, height int) *PNGSurface {
	s := &PNGSurface{}
	s.Resize(width, height)
	return s
}

// Clear 把画布清为全透明
func (s *PNGSurface) Clear() {
	s.dc.SetRGBA(0, 0, 0, 0)
	s.dc.Clear()
}

// FillCircle 绘制填充圆，带可选光晕
func (s *PNGSurface) FillCircle(c Circle) {
	alpha := ClampAlpha(c.Alpha)
	if alpha == 0 {
		return
	}
	r := ClampRadius(c.Radius)
	red := float64(c.Color.R) / 255
	green := float64(c.Color.G) / 255
	blue := float64(c.Color.B) / 255

	for _, ring := range GlowRings(c.Glow) {
		s.dc.SetRGBA(red, green, blue, alpha*ring[1])
		s.dc.DrawCircle(c.X, c.Y, r+ring[0])
		s.dc.Fill()
	}
	s.dc.SetRGBA(red, green, blue, alpha)
	s.dc.DrawCircle(c.X, c.Y, r)
	s.dc.Fill()
}

// Size 返回画布尺寸
func (s *PNGSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize 重建画布，原有内容丢弃
func (s *PNGSurface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.dc != nil && s.dc.Width() == width && s.dc.Height() == height {
		return
	}
	s.dc = gg.NewContext(width, height)
}

// Image 返回当前画布内容
func (s *PNGSurface) Image() image.Image {
	return s.dc.Image()
}

// Composite 把其他 PNGSurface 按顺序叠加到本画布上
func (s *PNGSurface) Composite(layers ...*PNGSurface) {
	for _, l := range layers {
		s.dc.DrawImage(l.Image(), 0, 0)
	}
}

// Background 用不透明背景色填满画布
func (s *PNGSurface) Background(r, g, b float64) {
	s.dc.SetRGB(r, g, b)
	s.dc.Clear()
}

// SavePNG 把画布写入 PNG 文件
func (s *PNGSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png %s: %w", path, err)
	}
	return nil
}
