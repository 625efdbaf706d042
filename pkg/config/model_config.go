package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ModelConfig 线框场景模型
//
// 配置文件位置: data/model.yaml
// 模型由若干网格组成，每个网格是顶点列表加边列表（顶点下标对）。
type ModelConfig struct {
	Meshes []MeshConfig `yaml:"meshes"`
}

// MeshConfig 单个线框网格
type MeshConfig struct {
	Name     string       `yaml:"name"`
	Color    string       `yaml:"color"`
	Offset   mgl64.Vec3   `yaml:"offset"`
	Vertices []mgl64.Vec3 `yaml:"vertices"`
	Edges    [][2]int     `yaml:"edges"`
}

// LoadModelConfig 加载线框模型
func LoadModelConfig(path string) (*ModelConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	return ParseModelConfig(data)
}

// ParseModelConfig 从 YAML 数据解析线框模型
func ParseModelConfig(data []byte) (*ModelConfig, error) {
	var cfg ModelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	return &cfg, nil
}

// Validate 检查边的顶点下标是否越界
func (m *ModelConfig) Validate() error {
	for _, mesh := range m.Meshes {
		for i, e := range mesh.Edges {
			if e[0] < 0 || e[1] < 0 || e[0] >= len(mesh.Vertices) || e[1] >= len(mesh.Vertices) {
				return fmt.Errorf("mesh %q: edge %d (%d-%d) out of range, %d vertices",
					mesh.Name, i, e[0], e[1], len(mesh.Vertices))
			}
		}
	}
	return nil
}
