package particle

import (
	"image/color"

	"github.com/decker502/countdown/pkg/canvas"
)

// 环境粒子的默认参数（单位：帧）
const (
	ambientSpeed   = 0.25 // 速度分量范围 [-ambientSpeed, ambientSpeed]
	ambientLifeMin = 100
	ambientLifeMax = 200
	ambientSizeMin = 1.0
	ambientSizeMax = 3.0
	// ambientMaxRadius 生命比例为 1 时的半径
	ambientMaxRadius = 2.0
)

// Particle 是一个缓慢漂移并逐渐淡出的环境粒子
//
// 每帧调用一次 Advance；Life 归零后由所属的粒子场移除。
type Particle struct {
	X, Y   float64
	VX, VY float64

	Life        int // 剩余寿命（帧）
	InitialLife int // 创建时的寿命（帧）

	// Radius 由 Life/InitialLife 推导，创建时为随机初始尺寸
	Radius float64
	Color  color.RGBA
}

// New 在 (x, y) 创建一个随机速度、随机寿命的环境粒子
func New(x, y float64) *Particle {
	life := RandomIntInRange(ambientLifeMin, ambientLifeMax)
	return &Particle{
		X:           x,
		Y:           y,
		VX:          RandomInRange(-ambientSpeed, ambientSpeed),
		VY:          RandomInRange(-ambientSpeed, ambientSpeed),
		Life:        life,
		InitialLife: life,
		Radius:      RandomInRange(ambientSizeMin, ambientSizeMax),
		Color:       WarmColor(),
	}
}

// Advance 推进一帧：移动、寿命减一、按剩余寿命比例重新计算半径
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	if p.InitialLife > 0 {
		p.Radius = ambientMaxRadius * float64(p.Life) / float64(p.InitialLife)
	} else {
		p.Radius = 0
	}
}

// IsExpired 寿命耗尽时返回 true
func (p *Particle) IsExpired() bool {
	return p.Life <= 0
}

// Opacity 返回 Life/InitialLife，InitialLife 非法时为 0
func (p *Particle) Opacity() float64 {
	return lifeRatio(p.Life, p.InitialLife)
}

// Draw 把粒子画到绘制目标上
func (p *Particle) Draw(s canvas.Surface) {
	s.FillCircle(canvas.Circle{
		X:      p.X,
		Y:      p.Y,
		Radius: canvas.ClampRadius(p.Radius),
		Color:  p.Color,
		Alpha:  p.Opacity(),
	})
}

// lifeRatio 计算剩余寿命比例，分母为 0 时短路为 0
func lifeRatio(life, initial int) float64 {
	if initial <= 0 {
		return 0
	}
	return canvas.ClampAlpha(float64(life) / float64(initial))
}
