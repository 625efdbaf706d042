package waypoint

// ViewportClass 视口类别
type ViewportClass int

const (
	Desktop ViewportClass = iota
	Mobile
)

// MobileBreakpoint 视口宽度小于此值时视为移动端（逻辑像素）
const MobileBreakpoint = 768

func (vc ViewportClass) String() string {
	if vc == Mobile {
		return "mobile"
	}
	return "desktop"
}

// ClassifyViewport 根据当前窗口尺寸判断视口类别
// forceMobile 用于在桌面端模拟移动端布局
func ClassifyViewport(width, height int, forceMobile bool) ViewportClass {
	if forceMobile {
		return Mobile
	}
	// 竖屏窄窗口同样按移动端处理
	if width < MobileBreakpoint || (height > 0 && width < height && width < MobileBreakpoint*3/2) {
		return Mobile
	}
	return Desktop
}
