package systems

// Task 一个延迟执行的回调，通过 Cancel 取消
type Task struct {
	remaining float64
	fn        func()
	cancelled bool
	done      bool
}

// Cancel 取消任务；对已执行、已取消或 nil 的任务调用是安全的
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Active 任务是否仍在等待执行
func (t *Task) Active() bool {
	return t != nil && !t.cancelled && !t.done
}

// Scheduler 按帧推进的延迟任务调度器
//
// 所有回调都在 Update 所在的线程（游戏主循环）上执行。
// 回调内部新安排的任务最早在下一次 Update 才会执行。
type Scheduler struct {
	tasks []*Task
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After 安排 fn 在 delay 秒后执行
func (s *Scheduler) After(delay float64, fn func()) *Task {
	t := &Task{remaining: delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Update 推进 dt 秒并按安排顺序执行到期任务
func (s *Scheduler) Update(dt float64) {
	pending := s.tasks
	s.tasks = nil

	keep := make([]*Task, 0, len(pending))
	for _, t := range pending {
		// 前面的回调可能刚取消了这个任务
		if t.cancelled {
			continue
		}
		t.remaining -= dt
		if t.remaining <= 1e-9 {
			t.done = true
			t.fn()
			continue
		}
		keep = append(keep, t)
	}
	s.tasks = append(keep, s.tasks...)
}

// Pending 返回等待中的任务数量
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Active() {
			n++
		}
	}
	return n
}
