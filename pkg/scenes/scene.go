package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-window scene (e.g. the countdown).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在窗口逻辑尺寸变化时收到通知
type Resizable interface {
	Resize(width, height int)
}

// Closable 是一个可选接口，场景实现后会在切换或程序退出时被释放
//
// 实现者必须停止所有计时器并释放绘制层，Close 可能被调用多次。
type Closable interface {
	Close()
}

var (
	_ Scene     = (*CountdownScene)(nil)
	_ Resizable = (*CountdownScene)(nil)
	_ Closable  = (*CountdownScene)(nil)
)
