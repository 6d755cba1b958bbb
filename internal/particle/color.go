package particle

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// 环境粒子的暖色色相范围（度）
const (
	warmHueMin     = 40.0
	warmHueMax     = 100.0
	warmSaturation = 0.7
	warmLightness  = 0.6
)

// FireworkPalette 烟花火花可选颜色
var FireworkPalette = []string{"#ff6b6b", "#ffd700", "#4ecdc4", "#45b7d1", "#ff9ff3"}

var fireworkColors = mustParsePalette(FireworkPalette)

// WarmColor 返回暖色带内的随机颜色（黄到黄绿）
func WarmColor() color.RGBA {
	return hslColor(RandomInRange(warmHueMin, warmHueMax), warmSaturation, warmLightness)
}

// PaletteColor 从烟花调色板中随机取一个颜色
func PaletteColor() color.RGBA {
	return fireworkColors[rand.Intn(len(fireworkColors))]
}

func hslColor(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func mustParsePalette(hexes []string) []color.RGBA {
	colors := make([]color.RGBA, 0, len(hexes))
	for _, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		r, g, b := c.RGB255()
		colors = append(colors, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return colors
}
