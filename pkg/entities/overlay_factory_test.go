package entities

import (
	"errors"
	"testing"

	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

func newTestRegistry(t *testing.T) *waypoint.Registry {
	t.Helper()
	reg, err := waypoint.NewRegistry("A",
		waypoint.Waypoint{Name: "A"},
		waypoint.Waypoint{Name: "B", Overlays: []waypoint.OverlayKind{waypoint.OverlayFullscreenImage, waypoint.OverlayMask}},
		waypoint.Waypoint{Name: "C", Overlays: []waypoint.OverlayKind{waypoint.OverlayPanel, waypoint.OverlaySlides}},
	)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return reg
}

func rolesOf(em *ecs.EntityManager, ids []ecs.EntityID) map[components.OverlayRole]*components.OverlayComponent {
	roles := make(map[components.OverlayRole]*components.OverlayComponent)
	for _, id := range ids {
		if comp, ok := ecs.GetComponent[*components.OverlayComponent](em, id); ok {
			roles[comp.Role] = comp
		}
	}
	return roles
}

// TestNewOverlayEntities_AllContent 测试内容齐全时为每个角色创建一个实体
func TestNewOverlayEntities_AllContent(t *testing.T) {
	em := ecs.NewEntityManager()
	content := &config.OverlayContentConfig{
		Locations: map[string]config.LocationContent{
			"B": {
				Image: &config.SlideContent{Caption: "Overview", Color: "#2b2b2b"},
				Mask:  &config.MaskContent{Color: "#000000", Alpha: 0.4},
			},
			"C": {
				Panel: &config.PanelContent{Title: "Studio", Body: "body"},
				Left:  &config.SlideContent{Caption: "L", Color: "#C9B84F"},
				Right: &config.SlideContent{Caption: "R", Color: "not-a-color"},
			},
		},
	}

	ids, err := NewOverlayEntities(em, newTestRegistry(t), content)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 5 {
		t.Fatalf("Expected 5 overlay entities, got %d", len(ids))
	}

	roles := rolesOf(em, ids)
	tests := []struct {
		name string
		role components.OverlayRole
	}{
		{"B全屏图片", components.OverlayRole{Location: "B", Kind: waypoint.OverlayFullscreenImage}},
		{"B遮罩", components.OverlayRole{Location: "B", Kind: waypoint.OverlayMask}},
		{"C面板", components.OverlayRole{Location: "C", Kind: waypoint.OverlayPanel}},
		{"C左图", components.OverlayRole{Location: "C", Kind: waypoint.OverlaySlides, Side: components.SideLeft}},
		{"C右图", components.OverlayRole{Location: "C", Kind: waypoint.OverlaySlides, Side: components.SideRight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, ok := roles[tt.role]
			if !ok {
				t.Fatalf("Missing overlay entity for role %+v", tt.role)
			}
			if comp.State != components.StateHidden {
				t.Errorf("Expected initial state hidden, got %v", comp.State)
			}
		})
	}

	mask := roles[components.OverlayRole{Location: "B", Kind: waypoint.OverlayMask}]
	if mask.Opacity != 0.4 {
		t.Errorf("Mask opacity: got %.2f, want 0.4", mask.Opacity)
	}
	right := roles[components.OverlayRole{Location: "C", Kind: waypoint.OverlaySlides, Side: components.SideRight}]
	if right.Color != fallbackCardColor {
		t.Errorf("Invalid card color should fall back, got %v", right.Color)
	}
}

// TestNewOverlayEntities_MissingContent 测试缺失内容时跳过元素并报告 ErrMissingCollaborator
func TestNewOverlayEntities_MissingContent(t *testing.T) {
	em := ecs.NewEntityManager()
	content := &config.OverlayContentConfig{
		Locations: map[string]config.LocationContent{
			"C": {Panel: &config.PanelContent{Title: "Studio"}},
		},
	}

	ids, err := NewOverlayEntities(em, newTestRegistry(t), content)
	if !errors.Is(err, ErrMissingCollaborator) {
		t.Fatalf("Expected ErrMissingCollaborator, got %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("Expected only the panel entity, got %d entities", len(ids))
	}

	// 没有任何文案也不会失败
	ids, err = NewOverlayEntities(ecs.NewEntityManager(), newTestRegistry(t), nil)
	if len(ids) != 0 || !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("Nil content: got %d entities, err %v", len(ids), err)
	}
}

// TestNewCameraEntity 测试镜头实体带有镜头和控制器组件
func TestNewCameraEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewCameraEntity(em, [3]float64{-22, 2, 14}, [3]float64{-2, 0, 0}, config.DefaultBackground())

	cam, ok := ecs.GetComponent[*components.CameraComponent](em, id)
	if !ok {
		t.Fatal("Expected CameraComponent")
	}
	if cam.Position.X() != -22 {
		t.Errorf("Position X: got %.2f, want -22", cam.Position.X())
	}

	ctrl, ok := ecs.GetComponent[*components.OrbitControlsComponent](em, id)
	if !ok {
		t.Fatal("Expected OrbitControlsComponent")
	}
	if ctrl.Enabled {
		t.Error("Controls should start disabled")
	}
	if !ctrl.NeedsUpdate || !ctrl.EnableDamping {
		t.Error("Controls should need an update and use damping")
	}

	caption := NewCaptionEntity(em)
	if _, ok := ecs.GetComponent[*components.CaptionComponent](em, caption); !ok {
		t.Error("Expected CaptionComponent")
	}
}
