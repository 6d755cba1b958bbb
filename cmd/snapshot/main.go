// Command snapshot 离线模拟倒计时页面并把某一帧渲染为 PNG
//
// 不打开窗口，使用手动时钟按 60 TPS 推进，适合在 CI 中检查画面。
//
// Usage:
//
//	go run ./cmd/snapshot [flags]
//
// Flags:
//
//	--out <path>        输出文件（默认 snapshot.png）
//	--now <time>        模拟开始时间（默认当前时间）
//	--target <time>     覆盖目标时间
//	--config <path>     外部配置文件
//	--frames <n>        模拟帧数（默认 120）
//	--width/--height    画布尺寸（默认取配置中的窗口尺寸）
//	--celebrate         直接进入庆祝视图
//	--verbose           输出日志
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/countdown/pkg/app"
	"github.com/decker502/countdown/pkg/canvas"
	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/game"
	"github.com/decker502/countdown/pkg/scenes"
)

const tps = 60

var (
	outFlag       = flag.String("out", "snapshot.png", "Output PNG path")
	nowFlag       = flag.String("now", "", "Simulated start time (default: current time)")
	targetFlag    = flag.String("target", "", "Override target time")
	configFlag    = flag.String("config", "", "Path to a countdown YAML config")
	framesFlag    = flag.Int("frames", 120, "Number of frames to simulate")
	widthFlag     = flag.Int("width", 0, "Canvas width (default: window width from config)")
	heightFlag    = flag.Int("height", 0, "Canvas height (default: window height from config)")
	celebrateFlag = flag.Bool("celebrate", false, "Start in the celebration view")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appCfg := app.Config{
		ConfigPath: *configFlag,
		Target:     *targetFlag,
		Celebrate:  *celebrateFlag,
	}
	settings, err := app.LoadSettings(appCfg)
	if err != nil {
		return err
	}

	start := time.Now()
	if *nowFlag != "" {
		if start, err = config.ParseTime(*nowFlag, time.Local); err != nil {
			return fmt.Errorf("--now: %w", err)
		}
	}
	target, err := app.ResolveTarget(settings, appCfg, start)
	if err != nil {
		return err
	}

	width, height := settings.Window.Width, settings.Window.Height
	if *widthFlag > 0 {
		width = *widthFlag
	}
	if *heightFlag > 0 {
		height = *heightFlag
	}

	clock := game.NewManualClock(start)
	rt := scenes.NewCountdownRuntime(settings, scenes.RuntimeOptions{
		Target: target,
		Clock:  clock.Now,
		Width:  width,
		Height: height,
	})
	defer rt.Close()
	rt.Start()

	particles := canvas.NewPNGSurface(width, height)
	fireworks := canvas.NewPNGSurface(width, height)
	dt := time.Second / tps
	for i := 0; i < *framesFlag; i++ {
		clock.Add(dt)
		rt.Step(dt.Seconds(), particles, fireworks)
	}

	frame := canvas.NewPNGSurface(width, height)
	frame.Background(10.0/255, 12.0/255, 30.0/255)
	frame.Composite(particles, fireworks)
	if err := drawOverlay(frame, rt); err != nil {
		return err
	}

	if err := frame.SavePNG(*outFlag); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d, %d frames, view=%s, particles=%d, fireworks=%d\n",
		*outFlag, width, height, *framesFlag, rt.Views().Current(),
		rt.Particles().Len(), rt.Fireworks().Len())
	return nil
}

// drawOverlay 绘制当前视图的文字，布局与窗口版一致
func drawOverlay(frame *canvas.PNGSurface, rt *scenes.CountdownRuntime) error {
	w, h := frame.Size()
	unit := math.Min(float64(w)/12, float64(h)/6)
	cx, cy := float64(w)/2, float64(h)/2
	display := rt.Config().Display
	gold := color.RGBA{R: 255, G: 215, A: 255}

	if rt.Views().Visible(components.ViewCelebration) {
		face, err := canvas.LoadFace(goregular.TTF, unit)
		if err != nil {
			return err
		}
		frame.DrawText(display.Celebration, cx, cy, face, gold)
		return nil
	}

	headingFace, err := canvas.LoadFace(goregular.TTF, unit*0.6)
	if err != nil {
		return err
	}
	digitFace, err := canvas.LoadFace(goregular.TTF, unit*1.4)
	if err != nil {
		return err
	}
	labelFace, err := canvas.LoadFace(goregular.TTF, unit*0.3)
	if err != nil {
		return err
	}

	frame.DrawText(display.Heading, cx, cy-unit*1.6, headingFace, gold)
	spacing := unit * 2.6
	left := cx - spacing*1.5
	for i := 0; i < 4; i++ {
		slot, _ := rt.Slot(i)
		if slot == nil {
			continue
		}
		x := left + spacing*float64(i)
		frame.DrawText(slot.Text, x, cy, digitFace, color.White)
		frame.DrawText(slot.Label, x, cy+unit*1.1, labelFace, color.RGBA{R: 180, G: 180, B: 220, A: 255})
	}
	return nil
}
