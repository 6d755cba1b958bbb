package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/countdown/internal/particle"
	"github.com/decker502/countdown/pkg/embedded"
)

// DefaultConfigPath 嵌入的默认配置文件路径
const DefaultConfigPath = "data/countdown.yaml"

// 目标时间可接受的格式：不带时区时按本地时间解析
var targetLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CountdownConfig 倒计时页面配置
//
// 配置文件位置: data/countdown.yaml（嵌入二进制），可用 --config 指定外部文件覆盖。
// 文件中缺省的字段保留 DefaultConfig() 中的默认值。
type CountdownConfig struct {
	// Target 目标时间
	Target string `yaml:"target"`

	Window    WindowConfig   `yaml:"window"`
	Particles AmbientConfig  `yaml:"particles"`
	Fireworks FireworkConfig `yaml:"fireworks"`
	Display   DisplayConfig  `yaml:"display"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AmbientConfig 环境粒子配置
type AmbientConfig struct {
	Target      int `yaml:"target"`      // 稳定数量
	InjectCount int `yaml:"injectCount"` // 每次指针移动注入数量
	ThrottleMs  int `yaml:"throttleMs"`  // 注入最小间隔（毫秒）
}

// FireworkConfig 烟花配置
type FireworkConfig struct {
	Cap             int     `yaml:"cap"`
	Sparks          int     `yaml:"sparks"`
	Life            int     `yaml:"life"` // 帧
	Gravity         float64 `yaml:"gravity"`
	Drag            float64 `yaml:"drag"`
	SpeedMin        float64 `yaml:"speedMin"`
	SpeedMax        float64 `yaml:"speedMax"`
	SizeMin         float64 `yaml:"sizeMin"`
	SizeMax         float64 `yaml:"sizeMax"`
	Glow            float64 `yaml:"glow"`
	SpawnIntervalMs int     `yaml:"spawnIntervalMs"`
}

// DisplayConfig 倒计时显示配置
type DisplayConfig struct {
	TickIntervalMs int      `yaml:"tickIntervalMs"`
	FlipMs         int      `yaml:"flipMs"` // 数字翻页提示持续时间
	Heading        string   `yaml:"heading"`
	Celebration    string   `yaml:"celebration"`
	Labels         []string `yaml:"labels"` // 天/时/分/秒 标签
}

// DefaultConfig 返回默认配置
func DefaultConfig() *CountdownConfig {
	return &CountdownConfig{
		Target: "2026-01-01T00:00:00",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "New Year Countdown",
		},
		Particles: AmbientConfig{
			Target:      50,
			InjectCount: 5,
			ThrottleMs:  50,
		},
		Fireworks: FireworkConfig{
			Cap:             5,
			Sparks:          30,
			Life:            60,
			Gravity:         0.1,
			Drag:            0.98,
			SpeedMin:        2,
			SpeedMax:        7,
			SizeMin:         2,
			SizeMax:         5,
			Glow:            10,
			SpawnIntervalMs: 1000,
		},
		Display: DisplayConfig{
			TickIntervalMs: 1000,
			FlipMs:         300,
			Heading:        "Countdown to 2026",
			Celebration:    "Happy New Year 2026!",
			Labels:         []string{"DAYS", "HOURS", "MINUTES", "SECONDS"},
		},
	}
}

// LoadCountdownConfig 从文件系统加载配置
func LoadCountdownConfig(path string) (*CountdownConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read countdown config: %w", err)
	}
	return ParseCountdownConfig(data)
}

// LoadEmbeddedCountdownConfig 从嵌入资源加载配置
func LoadEmbeddedCountdownConfig(path string) (*CountdownConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded countdown config: %w", err)
	}
	return ParseCountdownConfig(data)
}

// ParseCountdownConfig 解析 YAML 配置，缺省字段使用默认值
func ParseCountdownConfig(data []byte) (*CountdownConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse countdown config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid countdown config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *CountdownConfig) Validate() error {
	if _, err := c.TargetTime(time.Local); err != nil {
		return err
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Particles.Target < 0 {
		return fmt.Errorf("particles.target must not be negative, got %d", c.Particles.Target)
	}
	if c.Particles.InjectCount < 0 {
		return fmt.Errorf("particles.injectCount must not be negative, got %d", c.Particles.InjectCount)
	}
	if c.Particles.ThrottleMs <= 0 {
		return fmt.Errorf("particles.throttleMs must be positive, got %d", c.Particles.ThrottleMs)
	}

	fw := c.Fireworks
	if fw.Cap <= 0 {
		return fmt.Errorf("fireworks.cap must be positive, got %d", fw.Cap)
	}
	if fw.Sparks <= 0 {
		return fmt.Errorf("fireworks.sparks must be positive, got %d", fw.Sparks)
	}
	if fw.Life <= 0 {
		return fmt.Errorf("fireworks.life must be positive, got %d", fw.Life)
	}
	if fw.Drag <= 0 || fw.Drag > 1 {
		return fmt.Errorf("fireworks.drag must be in (0, 1], got %.3f", fw.Drag)
	}
	if fw.SpeedMin > fw.SpeedMax {
		return fmt.Errorf("fireworks speed range invalid: min(%.1f) > max(%.1f)", fw.SpeedMin, fw.SpeedMax)
	}
	if fw.SizeMin > fw.SizeMax {
		return fmt.Errorf("fireworks size range invalid: min(%.1f) > max(%.1f)", fw.SizeMin, fw.SizeMax)
	}
	if fw.SpawnIntervalMs <= 0 {
		return fmt.Errorf("fireworks.spawnIntervalMs must be positive, got %d", fw.SpawnIntervalMs)
	}

	if c.Display.TickIntervalMs <= 0 {
		return fmt.Errorf("display.tickIntervalMs must be positive, got %d", c.Display.TickIntervalMs)
	}
	if c.Display.FlipMs < 0 {
		return fmt.Errorf("display.flipMs must not be negative, got %d", c.Display.FlipMs)
	}
	if len(c.Display.Labels) != 4 {
		return fmt.Errorf("display.labels must have 4 entries (days, hours, minutes, seconds), got %d", len(c.Display.Labels))
	}

	return nil
}

// TargetTime 解析目标时间
// 带时区的 RFC3339 按其时区解析，其余格式按 loc 解析
func (c *CountdownConfig) TargetTime(loc *time.Location) (time.Time, error) {
	t, err := ParseTime(c.Target, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid target: %w", err)
	}
	return t, nil
}

// ParseTime 按目标时间的格式解析时间字符串（命令行工具的 --now 也用它）
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

// ThrottleInterval 指针注入最小间隔
func (c *CountdownConfig) ThrottleInterval() time.Duration {
	return time.Duration(c.Particles.ThrottleMs) * time.Millisecond
}

// SpawnInterval 烟花生成间隔
func (c *CountdownConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Fireworks.SpawnIntervalMs) * time.Millisecond
}

// TickInterval 倒计时刷新间隔
func (c *CountdownConfig) TickInterval() time.Duration {
	return time.Duration(c.Display.TickIntervalMs) * time.Millisecond
}

// FlipDuration 数字翻页提示持续时间
func (c *CountdownConfig) FlipDuration() time.Duration {
	return time.Duration(c.Display.FlipMs) * time.Millisecond
}

// FireworkOptions 转换为烟花爆炸参数
func (c *CountdownConfig) FireworkOptions() particle.FireworkOptions {
	fw := c.Fireworks
	return particle.FireworkOptions{
		Sparks:   fw.Sparks,
		Life:     fw.Life,
		Gravity:  fw.Gravity,
		Drag:     fw.Drag,
		SpeedMin: fw.SpeedMin,
		SpeedMax: fw.SpeedMax,
		SizeMin:  fw.SizeMin,
		SizeMax:  fw.SizeMax,
		Glow:     fw.Glow,
	}
}
