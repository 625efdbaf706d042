package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (loading, tour).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景需要知道逻辑屏幕尺寸时实现
//
// SceneManager 在 Layout 变化和切换场景时调用 SetScreenSize。
type Resizable interface {
	SetScreenSize(width, height int)
}
