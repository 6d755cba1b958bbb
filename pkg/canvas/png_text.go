package canvas

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// LoadFace 解析 TrueType 字体数据并创建指定字号的字体
func LoadFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// DrawText 以 (x, y) 为中心绘制一行文字
func (s *PNGSurface) DrawText(text string, x, y float64, face font.Face, clr color.Color) {
	if text == "" || face == nil {
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(clr)
	s.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}
