package systems

import (
	"math/rand"

	"github.com/decker502/countdown/internal/particle"
	"github.com/decker502/countdown/pkg/canvas"
)

// ParticleField 持有环境粒子并维持目标数量
//
// 粒子按创建顺序保存在连续切片中，每帧原地压缩移除死亡粒子。
// 低于目标数量时每帧只补充一个，密度在若干帧内平滑恢复。
type ParticleField struct {
	target    int
	particles []*particle.Particle
}

// NewParticleField 创建目标数量为 target 的粒子场
func NewParticleField(target int) *ParticleField {
	return &ParticleField{
		target:    target,
		particles: make([]*particle.Particle, 0, target),
	}
}

// Seed 在 width×height 范围内随机补满到目标数量（启动时调用一次）
func (f *ParticleField) Seed(width, height int) {
	for len(f.particles) < f.target {
		f.spawnRandom(width, height)
	}
}

// Step 推进并绘制所有粒子，移除死亡粒子，不足目标数量时补充一个
func (f *ParticleField) Step(s canvas.Surface) {
	alive := f.particles[:0]
	for _, p := range f.particles {
		p.Advance()
		p.Draw(s)
		if !p.IsExpired() {
			alive = append(alive, p)
		}
	}
	// 释放被压缩掉的尾部引用
	clear(f.particles[len(alive):])
	f.particles = alive

	if len(f.particles) < f.target {
		w, h := s.Size()
		f.spawnRandom(w, h)
	}
}

// Inject 在 (x, y) 追加 count 个粒子，不受目标数量限制
func (f *ParticleField) Inject(x, y float64, count int) {
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, particle.New(x, y))
	}
}

func (f *ParticleField) spawnRandom(width, height int) {
	f.particles = append(f.particles, particle.New(
		rand.Float64()*float64(width),
		rand.Float64()*float64(height),
	))
}

// Len 返回当前粒子数量
func (f *ParticleField) Len() int {
	return len(f.particles)
}

// Target 返回目标数量
func (f *ParticleField) Target() int {
	return f.target
}

// Particles 返回当前粒子（只读，下一次 Step 后失效）
func (f *ParticleField) Particles() []*particle.Particle {
	return f.particles
}

// Clear 移除所有粒子
func (f *ParticleField) Clear() {
	clear(f.particles)
	f.particles = f.particles[:0]
}
