package config

import "testing"

func TestParseModelConfig(t *testing.T) {
	data := []byte(`
meshes:
  - name: box
    color: "#444444"
    offset: [1, 0, 0]
    vertices: [[0,0,0],[1,0,0],[1,1,0]]
    edges: [[0,1],[1,2]]
`)
	m, err := ParseModelConfig(data)
	if err != nil {
		t.Fatalf("ParseModelConfig failed: %v", err)
	}
	if len(m.Meshes) != 1 || len(m.Meshes[0].Edges) != 2 {
		t.Fatalf("Unexpected model: %+v", m)
	}
	if m.Meshes[0].Offset[0] != 1 {
		t.Errorf("Offset not parsed: %v", m.Meshes[0].Offset)
	}
}

func TestParseModelConfigRejectsBadEdge(t *testing.T) {
	data := []byte(`
meshes:
  - name: broken
    vertices: [[0,0,0]]
    edges: [[0,3]]
`)
	if _, err := ParseModelConfig(data); err == nil {
		t.Error("Expected error for out-of-range edge")
	}
}

func TestLoadShippedModelAndOverlays(t *testing.T) {
	if _, err := LoadModelConfig("../../data/model.yaml"); err != nil {
		t.Errorf("LoadModelConfig failed: %v", err)
	}
	overlays, err := LoadOverlayContentConfig("../../data/overlays.yaml")
	if err != nil {
		t.Fatalf("LoadOverlayContentConfig failed: %v", err)
	}
	if overlays.Locations["B"].Mask == nil {
		t.Error("Expected mask for B")
	}
	if overlays.Locations["C"].Panel == nil || overlays.Locations["C"].Left == nil {
		t.Error("Expected panel and slides for C")
	}
}
