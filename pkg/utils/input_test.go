package utils

import "testing"

func kinds(events []InputEvent) []InputEventKind {
	out := make([]InputEventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

// TestPointerTrackerClick 测试按下后原地抬起产生点击
func TestPointerTrackerClick(t *testing.T) {
	p := NewPointerTracker(4)

	if ev := p.Feed(PointerSample{JustPressed: true, Pressed: true, X: 100, Y: 50}, 800, 600); len(ev) != 0 {
		t.Fatalf("Mouse press should not emit events, got %v", kinds(ev))
	}
	p.Feed(PointerSample{Pressed: true, X: 101, Y: 51}, 800, 600)
	ev := p.Feed(PointerSample{JustReleased: true, X: 101, Y: 51}, 800, 600)

	if len(ev) != 1 || ev[0].Kind != EventClick {
		t.Fatalf("Expected one click, got %v", kinds(ev))
	}
	if ev[0].X != 101 || ev[0].Width != 800 || ev[0].Height != 600 {
		t.Errorf("Click event fields wrong: %+v", ev[0])
	}
}

// TestPointerTrackerDragSuppressesClick 测试拖拽后抬起不产生点击
func TestPointerTrackerDragSuppressesClick(t *testing.T) {
	p := NewPointerTracker(4)

	p.Feed(PointerSample{JustPressed: true, Pressed: true, X: 100, Y: 100}, 800, 600)
	ev := p.Feed(PointerSample{Pressed: true, X: 120, Y: 100}, 800, 600)
	if len(ev) != 1 || ev[0].Kind != EventDrag || ev[0].DX != 20 {
		t.Fatalf("Expected drag event with DX=20, got %+v", ev)
	}
	if !p.IsDragging() {
		t.Error("Tracker should report dragging")
	}

	ev = p.Feed(PointerSample{JustReleased: true, X: 120, Y: 100}, 800, 600)
	for _, e := range ev {
		if e.Kind == EventClick {
			t.Fatal("Drag must not produce a click")
		}
	}
	if p.IsDragging() {
		t.Error("Dragging should end on release")
	}
}

// TestPointerTrackerTouchAndWheel 测试触摸开始和滚轮事件
func TestPointerTrackerTouchAndWheel(t *testing.T) {
	p := NewPointerTracker(4)

	ev := p.Feed(PointerSample{JustPressed: true, Pressed: true, Touch: true, X: 10, Y: 10}, 400, 800)
	if len(ev) != 1 || ev[0].Kind != EventTouchStart {
		t.Fatalf("Expected touch start, got %v", kinds(ev))
	}

	ev = p.Feed(PointerSample{WheelY: -1.5}, 400, 800)
	if len(ev) != 1 || ev[0].Kind != EventWheel {
		t.Fatalf("Expected wheel, got %v", kinds(ev))
	}
	// ebiten 负值为向下，换算后 DeltaY 为正
	if ev[0].DeltaY != 150 {
		t.Errorf("DeltaY: got %v, want 150", ev[0].DeltaY)
	}
}
