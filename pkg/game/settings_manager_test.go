package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试默认设置
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowHUD {
		t.Error("ShowHUD: got true, want false")
	}
}

// TestSettingsLoadSave 测试 Save() 之后新的管理器能读到相同设置
func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "scrolltour_test_settings")

	sm1 := NewSettingsManager(m)
	sm1.SetFullscreen(true)
	if !sm1.ToggleHUD() {
		t.Fatal("ToggleHUD should return the new state")
	}
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	settings := NewSettingsManager(m).GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if !settings.ShowHUD {
		t.Error("Loaded ShowHUD: got false, want true")
	}
}

// TestSettingsCorruptData 测试存储内容损坏时回退到默认设置
func TestSettingsCorruptData(t *testing.T) {
	m := openTestGdata(t, "scrolltour_test_corrupt")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [not, a, bool")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(m)
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("Expected defaults after corrupt data, got %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}

// TestSettingsNilGdata 测试降级模式
func TestSettingsNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetFullscreen(true)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"保存不报错", sm.Save},
		{"加载不报错", sm.Load},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	if sm.GetSettings().Fullscreen {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}
