// Command countdown 显示新年倒计时，到点后放烟花
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>     外部 YAML 配置（默认使用嵌入的 data/countdown.yaml）
//	--target <time>     覆盖目标时间，如 2026-01-01T00:00:00
//	--celebrate         直接进入庆祝视图
//	--verbose           输出日志
//
// Controls:
//
//	Mouse / Touch move  - 在指针位置注入粒子
//	F11                 - 切换全屏
//	Escape              - 退出
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/countdown/pkg/app"
	"github.com/decker502/countdown/pkg/embedded"
)

var (
	configFlag    = flag.String("config", "", "Path to a countdown YAML config (default: embedded)")
	targetFlag    = flag.String("target", "", "Override target time, e.g. 2026-01-01T00:00:00")
	celebrateFlag = flag.Bool("celebrate", false, "Skip the countdown and show the celebration")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Target:     *targetFlag,
		Celebrate:  *celebrateFlag,
	})
	if err != nil {
		// 非 verbose 模式下 NewApp 会关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	settings := gameApp.Settings()
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Escape 返回 ebiten.Termination，RunGame 此时返回 nil
	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("运行失败: %v", err)
	}
}
