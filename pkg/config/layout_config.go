package config

// 布局配置常量
// 本文件定义了窗口、叠加层和按钮的布局参数

const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1280
	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 720

	// ClickLeftRatio 点击位置横向比例小于此值时归为左侧三分之一
	ClickLeftRatio = 0.33
	// ClickRightRatio 点击位置横向比例大于此值时归为右侧三分之一
	ClickRightRatio = 0.66

	// DragThreshold 按下到抬起之间指针移动超过此距离（像素）视为拖拽而不是点击
	DragThreshold = 4.0

	// HeaderHeight 顶部导航栏高度
	HeaderHeight = 48.0
	// ButtonWidth 导航按钮宽度
	ButtonWidth = 96.0
	// ButtonHeight 导航按钮高度
	ButtonHeight = 32.0
	// ButtonSpacing 导航按钮间距
	ButtonSpacing = 8.0

	// PanelWidthRatio 文本面板占窗口宽度的比例（桌面端）
	PanelWidthRatio = 0.32
	// SlideWidthRatio 左右滑入图片占窗口宽度的比例
	SlideWidthRatio = 0.22
	// SlideTravel 滑入图片在隐藏状态下相对最终位置的位移（像素）
	SlideTravel = 80.0

	// CaptionFontSize 打字机字幕字号
	CaptionFontSize = 22.0
	// PanelFontSize 面板正文字号
	PanelFontSize = 16.0
	// TitleFontSize 面板标题字号
	TitleFontSize = 26.0

	// CameraFOVDegrees 透视投影的垂直视野（度）
	CameraFOVDegrees = 75.0
	// CameraNear 近裁剪面
	CameraNear = 0.1
	// CameraFar 远裁剪面
	CameraFar = 1000.0
)

// SpaceButtonBottomMargin 场景内按钮距窗口底部的距离
const SpaceButtonBottomMargin = 40.0
