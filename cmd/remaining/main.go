// Command remaining 在终端打印距目标时间的剩余时间
//
// Usage:
//
//	go run ./cmd/remaining [flags]
//
// Flags:
//
//	--now <time>        参考时间（默认当前时间）
//	--target <time>     覆盖目标时间
//	--config <path>     外部配置文件
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/countdown/pkg/app"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/systems"
)

var (
	nowFlag    = flag.String("now", "", "Reference time (default: current time)")
	targetFlag = flag.String("target", "", "Override target time")
	configFlag = flag.String("config", "", "Path to a countdown YAML config")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	digitStyle   = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45B7D1")).
			Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B4B4DC"))
	celebrationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF9FF3"))
)

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	settings, err := app.LoadSettings(app.Config{ConfigPath: *configFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "remaining: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	if *nowFlag != "" {
		if now, err = config.ParseTime(*nowFlag, time.Local); err != nil {
			fmt.Fprintf(os.Stderr, "remaining: --now: %v\n", err)
			os.Exit(1)
		}
	}
	target, err := app.ResolveTarget(settings, app.Config{Target: *targetFlag}, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "remaining: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(render(settings.Display, target.Sub(now)))
}

// render 把剩余时间排成四个带标签的数字块；已到达时显示庆祝文字
func render(display config.DisplayConfig, left time.Duration) string {
	if left <= 0 {
		return celebrationStyle.Render(display.Celebration)
	}

	r := systems.Decompose(left)
	blocks := make([]string, 0, 4)
	for i, v := range r.Fields() {
		label := ""
		if i < len(display.Labels) {
			label = display.Labels[i]
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Center,
			digitStyle.Render(systems.FormatField(v)),
			labelStyle.Render(label),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render(display.Heading),
		lipgloss.JoinHorizontal(lipgloss.Top, blocks...),
	)
}
