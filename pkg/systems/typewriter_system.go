package systems

import (
	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/ecs"
)

// TypewriterSystem 逐字显示字幕
//
// 同一时刻只有一次打字在进行：Start 会取消并清空上一次，
// Clear 同步取消，之后不会再有字符出现。
type TypewriterSystem struct {
	entityManager *ecs.EntityManager
	captionEntity ecs.EntityID
	scheduler     *Scheduler
	interval      float64

	task *Task
	// generation 每次 Start/Clear 递增，过期回调据此放弃写入
	generation int
}

// NewTypewriterSystem 创建打字机系统
// interval 为相邻两个字符之间的间隔（秒）
func NewTypewriterSystem(em *ecs.EntityManager, captionEntity ecs.EntityID, scheduler *Scheduler, interval float64) *TypewriterSystem {
	return &TypewriterSystem{
		entityManager: em,
		captionEntity: captionEntity,
		scheduler:     scheduler,
		interval:      interval,
	}
}

func (ts *TypewriterSystem) caption() (*components.CaptionComponent, bool) {
	return ecs.GetComponent[*components.CaptionComponent](ts.entityManager, ts.captionEntity)
}

// Start 开始显示 text：第一个字符立即出现，之后每个间隔追加一个字符
// 字幕实体不存在时为空操作。
func (ts *TypewriterSystem) Start(text string) {
	ts.cancel()
	caption, ok := ts.caption()
	if !ok {
		return
	}

	caption.Text = ""
	caption.Visible = true

	runes := []rune(text)
	if len(runes) == 0 {
		return
	}

	gen := ts.generation
	i := 0
	var step func()
	step = func() {
		if gen != ts.generation {
			return
		}
		c, ok := ts.caption()
		if !ok {
			return
		}
		c.Text += string(runes[i])
		i++
		if i < len(runes) {
			ts.task = ts.scheduler.After(ts.interval, step)
		} else {
			ts.task = nil
		}
	}
	step()
}

// Clear 取消进行中的打字，清空并隐藏字幕
func (ts *TypewriterSystem) Clear() {
	ts.cancel()
	if caption, ok := ts.caption(); ok {
		caption.Text = ""
		caption.Visible = false
	}
}

// Text 返回当前已显示的文字
func (ts *TypewriterSystem) Text() string {
	if caption, ok := ts.caption(); ok {
		return caption.Text
	}
	return ""
}

// Visible 字幕是否显示
func (ts *TypewriterSystem) Visible() bool {
	caption, ok := ts.caption()
	return ok && caption.Visible
}

// Running 是否还有字符等待显示
func (ts *TypewriterSystem) Running() bool {
	return ts.task.Active()
}

func (ts *TypewriterSystem) cancel() {
	ts.generation++
	ts.task.Cancel()
	ts.task = nil
}
