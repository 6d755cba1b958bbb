// Package app 提供倒计时应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/embedded"
	"github.com/decker502/countdown/pkg/game"
	"github.com/decker502/countdown/pkg/scenes"
	"github.com/decker502/countdown/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空时使用嵌入的默认配置
	ConfigPath string
	// Target 覆盖配置中的目标时间（格式同配置文件）
	Target string
	// Celebrate 忽略目标时间，直接进入庆祝视图（用于预览烟花）
	Celebrate bool
	// Clock 时间来源，为 nil 时使用系统时间
	Clock game.Clock
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	settings     *config.CountdownConfig
}

// NewApp 创建并初始化应用
//
// 桌面端在调用前应先调用 embedded.Init()；未初始化时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := LoadSettings(cfg)
	if err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == nil {
		clock = game.SystemClock
	}

	target, err := ResolveTarget(settings, cfg, clock())
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Target: %s", target.Format(time.RFC3339))

	scene, err := scenes.NewCountdownScene(settings, scenes.RuntimeOptions{
		Target: target,
		Clock:  clock,
		Width:  settings.Window.Width,
		Height: settings.Window.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// LoadSettings 按优先级加载配置：--config 文件 → 嵌入配置 → 内置默认值
func LoadSettings(cfg Config) (*config.CountdownConfig, error) {
	switch {
	case cfg.ConfigPath != "":
		settings, err := config.LoadCountdownConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败 (%s): %w", cfg.ConfigPath, err)
		}
		log.Printf("[Config] Loaded %s", cfg.ConfigPath)
		return settings, nil

	case embedded.IsInitialized():
		settings, err := config.LoadEmbeddedCountdownConfig(config.DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("嵌入配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded embedded %s", config.DefaultConfigPath)
		return settings, nil

	default:
		log.Printf("[Config] Embedded resources not initialized, using defaults")
		return config.DefaultConfig(), nil
	}
}

// ResolveTarget 计算实际使用的目标时间
// Celebrate 优先，其次是 --target 覆盖，最后是配置文件
func ResolveTarget(settings *config.CountdownConfig, cfg Config, now time.Time) (time.Time, error) {
	if cfg.Celebrate {
		return now, nil
	}
	if cfg.Target != "" {
		override := *settings
		override.Target = cfg.Target
		target, err := override.TargetTime(time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("--target 无效: %w", err)
		}
		return target, nil
	}
	return settings.TargetTime(time.Local)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if !utils.IsMobile() {
		// F11 切换全屏
		if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
			fullscreen := !ebiten.IsFullscreen()
			ebiten.SetFullscreen(fullscreen)
			log.Printf("[App] Fullscreen: %v", fullscreen)
		}

		// Escape 退出
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸跟随窗口尺寸，两个绘制层随之调整
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 释放当前场景（停止计时器、释放绘制层）
func (a *App) Close() {
	a.sceneManager.Close()
}

// Settings 返回生效的配置
func (a *App) Settings() *config.CountdownConfig {
	return a.settings
}
