package scenes

import (
	"log"
	"time"

	"github.com/decker502/countdown/pkg/canvas"
	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/ecs"
	"github.com/decker502/countdown/pkg/game"
	"github.com/decker502/countdown/pkg/systems"
)

// RuntimeOptions 运行时参数
type RuntimeOptions struct {
	// Target 目标时间（已解析）
	Target time.Time
	// Clock 时间来源，为 nil 时使用系统时间
	Clock game.Clock
	// Width, Height 初始画布尺寸
	Width, Height int
}

// CountdownRuntime 倒计时页面的全部状态和计时器，不依赖窗口
//
// CountdownScene 用它驱动 ebiten 绘制层，cmd/snapshot 用它驱动 PNG 画布。
// 每帧顺序：输入（PointerMoved）→ Step（推进计时器、翻页提示、两个粒子场）。
type CountdownRuntime struct {
	cfg   *config.CountdownConfig
	clock game.Clock

	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler

	particles *systems.ParticleField
	fireworks *systems.FireworkField

	countdown *systems.CountdownSystem
	flips     *systems.FlipCueSystem
	views     *systems.ViewSystem
	bridge    *systems.InputBridge

	width, height int
	started       bool
	closed        bool
	arrivedAt     time.Time
	tickTimer     game.TimerID
	spawnTimer    game.TimerID
}

// NewCountdownRuntime 创建运行时
func NewCountdownRuntime(cfg *config.CountdownConfig, opts RuntimeOptions) *CountdownRuntime {
	clock := opts.Clock
	if clock == nil {
		clock = game.SystemClock
	}

	em := ecs.NewEntityManager()
	sched := game.NewScheduler(clock())
	particles := systems.NewParticleField(cfg.Particles.Target)

	r := &CountdownRuntime{
		cfg:           cfg,
		clock:         clock,
		entityManager: em,
		scheduler:     sched,
		particles:     particles,
		fireworks:     systems.NewFireworkField(cfg.Fireworks.Cap, cfg.FireworkOptions()),
		countdown:     systems.NewCountdownSystem(em, opts.Target, cfg.FlipDuration(), cfg.Display.Labels),
		flips:         systems.NewFlipCueSystem(em),
		views:         systems.NewViewSystem(em, components.ViewCountdown),
		bridge:        systems.NewInputBridge(particles, cfg.Particles.InjectCount, sched, clock, cfg.ThrottleInterval()),
		width:         opts.Width,
		height:        opts.Height,
	}
	r.countdown.OnArrive(r.celebrate)
	return r
}

// Start 播种环境粒子，立即刷新一次倒计时并启动周期刷新
func (r *CountdownRuntime) Start() {
	if r.started || r.closed {
		return
	}
	r.started = true

	r.particles.Seed(r.width, r.height)
	r.countdown.Tick(r.clock())
	if !r.countdown.Arrived() {
		r.tickTimer = r.scheduler.Every("countdown", r.cfg.TickInterval(), r.countdown.Tick)
	}
	log.Printf("[CountdownRuntime] Started: target=%s, canvas=%dx%d", r.countdown.Target().Format(time.RFC3339), r.width, r.height)
}

// celebrate 到达目标时间时执行一次：切换视图并启动烟花生成计时器
func (r *CountdownRuntime) celebrate(now time.Time) {
	r.arrivedAt = now
	r.views.Show(components.ViewCelebration)
	r.scheduler.Cancel(r.tickTimer)
	r.spawnTimer = r.scheduler.Every("firework-spawn", r.cfg.SpawnInterval(), func(time.Time) {
		x, y := systems.SpawnRegion(r.width, r.height)
		r.fireworks.TrySpawn(x, y)
	})
}

// PointerMoved 转发一次指针移动（屏幕坐标）
func (r *CountdownRuntime) PointerMoved(x, y float64) {
	if r.closed {
		return
	}
	r.bridge.PointerMoved(x, y)
}

// SetCanvasOrigin 设置画布左上角在屏幕上的位置，指针坐标减去该偏移后注入
func (r *CountdownRuntime) SetCanvasOrigin(x, y float64) {
	r.bridge.SetOrigin(x, y)
}

// Step 推进一帧并重绘两个画布
// 参数：
//   - dt: 帧间隔（秒），用于翻页提示
//   - particles, fireworks: 环境粒子层和烟花层
func (r *CountdownRuntime) Step(dt float64, particles, fireworks canvas.Surface) {
	if r.closed {
		return
	}
	r.scheduler.Advance(r.clock())
	r.flips.Update(dt)

	particles.Clear()
	r.particles.Step(particles)

	fireworks.Clear()
	r.fireworks.Step(fireworks)
}

// Resize 更新画布尺寸，之后的补充粒子和烟花使用新尺寸
func (r *CountdownRuntime) Resize(width, height int) {
	r.width, r.height = width, height
}

// Close 停止所有计时器并丢弃等待中的注入，可以重复调用
func (r *CountdownRuntime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.bridge.Close()
	r.scheduler.Stop()
	r.particles.Clear()
	r.fireworks.Clear()
	r.entityManager.Clear()
	log.Printf("[CountdownRuntime] Closed")
}

// Slot 返回第 i 个数字槽（0=天 … 3=秒）及其翻页进度，没有进行中的提示时进度为 -1
func (r *CountdownRuntime) Slot(i int) (*components.DigitSlotComponent, float64) {
	id := r.countdown.Slots()[i]
	slot, ok := ecs.GetComponent[*components.DigitSlotComponent](r.entityManager, id)
	if !ok {
		return nil, -1
	}
	if cue, ok := ecs.GetComponent[*components.FlipCueComponent](r.entityManager, id); ok && cue.IsActive {
		return slot, cue.Progress()
	}
	return slot, -1
}

// Config 返回配置
func (r *CountdownRuntime) Config() *config.CountdownConfig { return r.cfg }

// Countdown 返回倒计时系统
func (r *CountdownRuntime) Countdown() *systems.CountdownSystem { return r.countdown }

// Views 返回视图系统
func (r *CountdownRuntime) Views() *systems.ViewSystem { return r.views }

// Particles 返回环境粒子场
func (r *CountdownRuntime) Particles() *systems.ParticleField { return r.particles }

// Fireworks 返回烟花场
func (r *CountdownRuntime) Fireworks() *systems.FireworkField { return r.fireworks }

// Bridge 返回输入桥
func (r *CountdownRuntime) Bridge() *systems.InputBridge { return r.bridge }

// Scheduler 返回计时器调度器
func (r *CountdownRuntime) Scheduler() *game.Scheduler { return r.scheduler }

// SpawnTimerActive 烟花生成计时器是否在运行
func (r *CountdownRuntime) SpawnTimerActive() bool {
	return r.spawnTimer != 0 && r.scheduler.Active(r.spawnTimer)
}

// ArrivedAt 返回到达目标的时间，未到达时为零值
func (r *CountdownRuntime) ArrivedAt() time.Time { return r.arrivedAt }

// Now 返回运行时时钟的当前时间
func (r *CountdownRuntime) Now() time.Time { return r.clock() }

// Size 返回画布尺寸
func (r *CountdownRuntime) Size() (int, int) { return r.width, r.height }
