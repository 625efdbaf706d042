package components

// CaptionComponent 打字机字幕容器
type CaptionComponent struct {
	// Text 已显示的字符
	Text string
	// Visible 容器是否显示
	Visible bool
}
