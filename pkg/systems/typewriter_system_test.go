package systems

import (
	"testing"

	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/entities"
)

func newTypewriterFixture() (*Scheduler, *TypewriterSystem) {
	em := ecs.NewEntityManager()
	caption := entities.NewCaptionEntity(em)
	s := NewScheduler()
	return s, NewTypewriterSystem(em, caption, s, 0.1)
}

// TestTypewriter_RevealsOneRunePerInterval 测试每个间隔显示一个字符
func TestTypewriter_RevealsOneRunePerInterval(t *testing.T) {
	s, tw := newTypewriterFixture()
	tw.Start("Click")

	if tw.Text() != "C" || !tw.Visible() {
		t.Fatalf("First rune should appear immediately, got %q visible=%v", tw.Text(), tw.Visible())
	}

	tests := []struct {
		name    string
		advance float64
		want    string
	}{
		{"0.1秒后", 0.1, "Cl"},
		{"0.2秒后", 0.1, "Cli"},
		{"全部显示", 0.3, "Click"},
		{"之后不再变化", 1.0, "Click"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advance(s, tt.advance)
			if tw.Text() != tt.want {
				t.Errorf("got %q, want %q", tw.Text(), tt.want)
			}
		})
	}
	if tw.Running() {
		t.Error("Typewriter should be idle after the last rune")
	}
}

// TestTypewriter_ClearCancels 测试清空后不会再出现字符
func TestTypewriter_ClearCancels(t *testing.T) {
	s, tw := newTypewriterFixture()
	tw.Start("Click anywhere to begin")
	advance(s, 0.3)

	tw.Clear()
	if tw.Text() != "" || tw.Visible() {
		t.Fatalf("Clear should blank and hide, got %q visible=%v", tw.Text(), tw.Visible())
	}

	advance(s, 3)
	if tw.Text() != "" {
		t.Errorf("Stray characters after Clear: %q", tw.Text())
	}
	if s.Pending() != 0 {
		t.Errorf("Scheduler still holds %d tasks", s.Pending())
	}
}

// TestTypewriter_RestartReplacesRun 测试重新开始会取消上一次
func TestTypewriter_RestartReplacesRun(t *testing.T) {
	s, tw := newTypewriterFixture()
	tw.Start("first text")
	advance(s, 0.2)

	tw.Start("xy")
	if tw.Text() != "x" {
		t.Fatalf("Restart should clear old text, got %q", tw.Text())
	}
	advance(s, 2)
	if tw.Text() != "xy" {
		t.Errorf("got %q, want %q", tw.Text(), "xy")
	}
}

// TestTypewriter_MultibyteRunes 测试按字符而不是按字节显示
func TestTypewriter_MultibyteRunes(t *testing.T) {
	s, tw := newTypewriterFixture()
	tw.Start("点击开始")
	if tw.Text() != "点" {
		t.Fatalf("got %q, want %q", tw.Text(), "点")
	}
	advance(s, 0.1)
	if tw.Text() != "点击" {
		t.Errorf("got %q, want %q", tw.Text(), "点击")
	}
}

// TestTypewriter_MissingCaptionIsNoop 测试字幕实体不存在时为空操作
func TestTypewriter_MissingCaptionIsNoop(t *testing.T) {
	s := NewScheduler()
	tw := NewTypewriterSystem(ecs.NewEntityManager(), 42, s, 0.1)
	tw.Start("hello")
	tw.Clear()
	if tw.Text() != "" || tw.Visible() || s.Pending() != 0 {
		t.Error("Missing caption entity should make every call a no-op")
	}
}
