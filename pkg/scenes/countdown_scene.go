package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/countdown/pkg/canvas/ebitenlayer"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/utils"
)

// 背景色（深夜蓝）
var backgroundColor = color.RGBA{R: 10, G: 12, B: 30, A: 255}

// CountdownScene 倒计时页面
//
// 持有环境粒子层和烟花层两个离屏画布，以及倒计时 UI。
// 每帧 Update：采样指针 → 运行时推进（计时器、翻页、粒子）；
// Draw：背景 → 粒子层 → 烟花层 → 当前视图的文字。
type CountdownScene struct {
	runtime *CountdownRuntime
	pointer *utils.PointerTracker
	ui      *countdownUI

	particlesLayer *ebitenlayer.Layer
	fireworksLayer *ebitenlayer.Layer

	closed bool
}

// NewCountdownScene 创建倒计时场景并立即启动计时器
func NewCountdownScene(cfg *config.CountdownConfig, opts RuntimeOptions) (*CountdownScene, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = cfg.Window.Width, cfg.Window.Height
	}

	ui, err := newCountdownUI(cfg)
	if err != nil {
		return nil, err
	}

	s := &CountdownScene{
		runtime:        NewCountdownRuntime(cfg, opts),
		pointer:        utils.NewPointerTracker(),
		ui:             ui,
		particlesLayer: ebitenlayer.New("particles", opts.Width, opts.Height),
		fireworksLayer: ebitenlayer.New("fireworks", opts.Width, opts.Height),
	}
	s.runtime.Start()

	log.Printf("[CountdownScene] Created (%dx%d)", opts.Width, opts.Height)
	return s, nil
}

// Update 更新场景逻辑
func (s *CountdownScene) Update(deltaTime float64) {
	if s.closed {
		return
	}

	// 输入先于计时器推进，同一帧到期的节流调用使用最新位置
	if sample, moved := s.pointer.Observe(currentPointer()); moved {
		s.runtime.PointerMoved(float64(sample.X), float64(sample.Y))
	}

	s.runtime.Step(deltaTime, s.particlesLayer, s.fireworksLayer)
}

// Draw 绘制场景
func (s *CountdownScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if s.closed {
		return
	}

	s.particlesLayer.Draw(screen)
	s.fireworksLayer.Draw(screen)
	s.ui.draw(screen, s.runtime)
}

// Resize 窗口尺寸变化时调整两个画布
func (s *CountdownScene) Resize(width, height int) {
	if s.closed {
		return
	}
	s.particlesLayer.Resize(width, height)
	s.fireworksLayer.Resize(width, height)
	s.runtime.Resize(width, height)
	// 两个层铺满窗口并合成在左上角，画布原点始终是 (0,0)
	s.runtime.SetCanvasOrigin(0, 0)
}

// Close 停止计时器并释放两个画布
func (s *CountdownScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.runtime.Close()
	s.particlesLayer.Dispose()
	s.fireworksLayer.Dispose()
	log.Printf("[CountdownScene] Closed")
}

// Runtime 返回场景运行时
func (s *CountdownScene) Runtime() *CountdownRuntime {
	return s.runtime
}

// currentPointer 读取当前指针（第一个触摸点，否则鼠标）
func currentPointer() utils.PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return utils.PointerSample{X: x, Y: y, IsTouching: true}
	}

	x, y := ebiten.CursorPosition()
	return utils.PointerSample{X: x, Y: y}
}
