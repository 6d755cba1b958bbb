package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/utils"
)

// UI 颜色
var (
	headingColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	digitColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor   = color.RGBA{R: 180, G: 180, B: 220, A: 255}
	shadowColor  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// 庆祝文字淡入时长（秒）
const celebrationFadeIn = 1.5

// countdownUI 绘制倒计时和庆祝两个视图的文字
type countdownUI struct {
	source      *text.GoTextFaceSource
	heading     string
	celebration string
}

func newCountdownUI(cfg *config.CountdownConfig) (*countdownUI, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load UI font: %w", err)
	}
	return &countdownUI{
		source:      source,
		heading:     cfg.Display.Heading,
		celebration: cfg.Display.Celebration,
	}, nil
}

func (u *countdownUI) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: u.source, Size: size}
}

func (u *countdownUI) draw(screen *ebiten.Image, r *CountdownRuntime) {
	switch {
	case r.Views().Visible(components.ViewCountdown):
		u.drawCountdown(screen, r)
	case r.Views().Visible(components.ViewCelebration):
		u.drawCelebration(screen, r)
	}
}

func (u *countdownUI) drawCountdown(screen *ebiten.Image, r *CountdownRuntime) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	unit := math.Min(float64(w)/12, float64(h)/6)
	cx, cy := float64(w)/2, float64(h)/2

	drawCentered(screen, u.heading, u.face(unit*0.6), cx, cy-unit*1.6, 1, 1, headingColor)

	digitFace := u.face(unit * 1.4)
	labelFace := u.face(unit * 0.3)
	spacing := unit * 2.6
	left := cx - spacing*1.5

	for i := 0; i < 4; i++ {
		slot, progress := r.Slot(i)
		if slot == nil {
			continue
		}
		x := left + spacing*float64(i)

		// 翻页提示：前半段显示旧数字收拢，后半段显示新数字展开
		label := slot.Text
		scaleY := 1.0
		if progress >= 0 {
			scaleY = utils.FlipScale(progress)
			if progress >= 0.5 && slot.PendingText != "" {
				label = slot.PendingText
			}
		}
		drawCentered(screen, label, digitFace, x, cy, scaleY, 1, digitColor)
		drawCentered(screen, slot.Label, labelFace, x, cy+unit*1.1, 1, 1, labelColor)
	}
}

func (u *countdownUI) drawCelebration(screen *ebiten.Image, r *CountdownRuntime) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	unit := math.Min(float64(w)/12, float64(h)/6)

	alpha := 1.0
	if arrived := r.ArrivedAt(); !arrived.IsZero() {
		alpha = utils.EaseOutCubic(r.Now().Sub(arrived).Seconds() / celebrationFadeIn)
	}
	drawCentered(screen, u.celebration, u.face(unit), float64(w)/2, float64(h)/2, 1, alpha, headingColor)
}

// drawCentered 以 (x, y) 为中心绘制带阴影的文字，scaleY 为纵向缩放
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, x, y, scaleY, alpha float64, clr color.RGBA) {
	if s == "" || scaleY <= 0 || alpha <= 0 {
		return
	}

	shadow := &text.DrawOptions{}
	shadow.PrimaryAlign = text.AlignCenter
	shadow.SecondaryAlign = text.AlignCenter
	shadow.GeoM.Scale(1, scaleY)
	shadow.GeoM.Translate(x+2, y+2)
	shadow.ColorScale.ScaleWithColor(shadowColor)
	shadow.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, shadow)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(1, scaleY)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, op)
}
