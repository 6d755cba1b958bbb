// Package particle 实现倒计时页面的两类粒子实体：
// 缓慢漂移淡出的环境粒子 (Particle) 和受重力、阻力影响的烟花 (Firework)。
//
// 两者没有共同的基类或接口，各自由独立的粒子场持有，
// 只在 Advance / IsExpired / Draw 这三个操作上形状相同。
package particle
