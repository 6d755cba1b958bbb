package particle

import (
	"image/color"
	"math"

	"github.com/decker502/countdown/pkg/canvas"
)

// FireworkOptions 烟花爆炸参数
type FireworkOptions struct {
	Sparks   int     // 每次爆炸的火花数量
	Life     int     // 火花寿命（帧）
	Gravity  float64 // 每帧竖直速度增量
	Drag     float64 // 每帧水平速度乘数 (<1)
	SpeedMin float64
	SpeedMax float64
	SizeMin  float64
	SizeMax  float64
	Glow     float64 // 光晕模糊半径
}

// DefaultFireworkOptions 返回默认烟花参数
func DefaultFireworkOptions() FireworkOptions {
	return FireworkOptions{
		Sparks:   30,
		Life:     60,
		Gravity:  0.1,
		Drag:     0.98,
		SpeedMin: 2,
		SpeedMax: 7,
		SizeMin:  2,
		SizeMax:  5,
		Glow:     10,
	}
}

// Spark 是烟花中的单个火花
type Spark struct {
	X, Y        float64
	VX, VY      float64
	Life        int
	InitialLife int
	Color       color.RGBA
	Size        float64
	// Angle 发射角（弧度），创建后不变
	Angle float64
}

// Firework 是一次烟花爆炸，持有固定数量的火花
type Firework struct {
	X, Y    float64
	Sparks  []Spark
	gravity float64
	drag    float64
	glow    float64
}

// NewFirework 在 (x, y) 创建一次烟花爆炸
// 火花 i 的发射角为 2π·i/N，保证径向均匀分布，只有速度大小是随机的
func NewFirework(x, y float64, opts FireworkOptions) *Firework {
	fw := &Firework{
		X:       x,
		Y:       y,
		Sparks:  make([]Spark, 0, opts.Sparks),
		gravity: opts.Gravity,
		drag:    opts.Drag,
		glow:    opts.Glow,
	}
	for i := 0; i < opts.Sparks; i++ {
		angle := 2 * math.Pi * float64(i) / float64(opts.Sparks)
		speed := RandomInRange(opts.SpeedMin, opts.SpeedMax)
		fw.Sparks = append(fw.Sparks, Spark{
			X:           x,
			Y:           y,
			VX:          math.Cos(angle) * speed,
			VY:          math.Sin(angle) * speed,
			Life:        opts.Life,
			InitialLife: opts.Life,
			Color:       PaletteColor(),
			Size:        RandomInRange(opts.SizeMin, opts.SizeMax),
			Angle:       angle,
		})
	}
	return fw
}

// Advance 推进一帧：移动、重力、水平阻力、寿命减一，然后原地移除已熄灭的火花
func (fw *Firework) Advance() {
	alive := fw.Sparks[:0]
	for i := range fw.Sparks {
		s := fw.Sparks[i]
		s.X += s.VX
		s.Y += s.VY
		s.VY += fw.gravity
		s.VX *= fw.drag
		s.Life--
		if s.Life > 0 {
			alive = append(alive, s)
		}
	}
	fw.Sparks = alive
}

// IsExpired 所有火花都熄灭时返回 true
func (fw *Firework) IsExpired() bool {
	return len(fw.Sparks) == 0
}

// Draw 把所有火花画到绘制目标上，带光晕
func (fw *Firework) Draw(s canvas.Surface) {
	for i := range fw.Sparks {
		sp := &fw.Sparks[i]
		s.FillCircle(canvas.Circle{
			X:      sp.X,
			Y:      sp.Y,
			Radius: canvas.ClampRadius(sp.Size),
			Color:  sp.Color,
			Alpha:  lifeRatio(sp.Life, sp.InitialLife),
			Glow:   fw.glow,
		})
	}
}
