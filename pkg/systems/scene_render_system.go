package systems

import (
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/scrolltour/pkg/config"
	"github.com/decker502/scrolltour/pkg/ecs"
)

// Projector 把世界坐标投影到屏幕坐标
type Projector struct {
	View          mgl64.Mat4
	Proj          mgl64.Mat4
	Width, Height float64
	near          float64
}

// NewProjector 根据镜头状态和视口尺寸创建投影
func NewProjector(state CameraState, width, height int) Projector {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return Projector{
		View:   mgl64.LookAtV(state.Position, state.Target, mgl64.Vec3{0, 1, 0}),
		Proj:   mgl64.Perspective(mgl64.DegToRad(config.CameraFOVDegrees), aspect, config.CameraNear, config.CameraFar),
		Width:  float64(width),
		Height: float64(height),
		near:   config.CameraNear,
	}
}

// ProjectSegment 投影一条线段
//
// 线段先在观察空间中按近裁剪面截断；完全在镜头后方时返回 ok=false。
func (p Projector) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	va := p.View.Mul4x1(a.Vec4(1)).Vec3()
	vb := p.View.Mul4x1(b.Vec4(1)).Vec3()

	// 观察空间中镜头朝向 -Z
	limit := -p.near
	aIn, bIn := va.Z() <= limit, vb.Z() <= limit
	switch {
	case !aIn && !bIn:
		return 0, 0, 0, 0, false
	case !aIn:
		va = clipToPlane(vb, va, limit)
	case !bIn:
		vb = clipToPlane(va, vb, limit)
	}

	x0, y0 = p.toScreen(va)
	x1, y1 = p.toScreen(vb)
	return x0, y0, x1, y1, true
}

func clipToPlane(inside, outside mgl64.Vec3, z float64) mgl64.Vec3 {
	t := (z - inside.Z()) / (outside.Z() - inside.Z())
	return inside.Add(outside.Sub(inside).Mul(t))
}

func (p Projector) toScreen(v mgl64.Vec3) (float64, float64) {
	clip := p.Proj.Mul4x1(v.Vec4(1))
	w := clip.W()
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	return (ndcX + 1) / 2 * p.Width, (1 - ndcY) / 2 * p.Height
}

type wireMesh struct {
	color color.Color
	lines [][2]mgl64.Vec3
}

// SceneRenderSystem 绘制背景色和线框模型
type SceneRenderSystem struct {
	entityManager *ecs.EntityManager
	orbit         *OrbitControlsSystem
	meshes        []wireMesh
}

// NewSceneRenderSystem 创建场景渲染系统
func NewSceneRenderSystem(em *ecs.EntityManager, orbit *OrbitControlsSystem) *SceneRenderSystem {
	return &SceneRenderSystem{
		entityManager: em,
		orbit:         orbit,
	}
}

// SetModel 设置线框模型；nil 表示空场景
func (s *SceneRenderSystem) SetModel(model *config.ModelConfig) {
	s.meshes = nil
	if model == nil {
		return
	}
	for _, m := range model.Meshes {
		c, err := colorful.Hex(m.Color)
		if err != nil {
			log.Printf("[SceneRender] mesh %q: invalid color %q, using gray", m.Name, m.Color)
			c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
		}
		mesh := wireMesh{color: c}
		for _, e := range m.Edges {
			mesh.lines = append(mesh.lines, [2]mgl64.Vec3{
				m.Vertices[e[0]].Add(m.Offset),
				m.Vertices[e[1]].Add(m.Offset),
			})
		}
		s.meshes = append(s.meshes, mesh)
	}
}

// LineCount 返回模型中的线段总数
func (s *SceneRenderSystem) LineCount() int {
	n := 0
	for _, m := range s.meshes {
		n += len(m.lines)
	}
	return n
}

// Draw 绘制场景
func (s *SceneRenderSystem) Draw(screen *ebiten.Image) {
	state := s.orbit.CameraState()
	screen.Fill(state.Background.Clamped())

	bounds := screen.Bounds()
	proj := NewProjector(state, bounds.Dx(), bounds.Dy())
	for _, mesh := range s.meshes {
		for _, line := range mesh.lines {
			x0, y0, x1, y1, ok := proj.ProjectSegment(line[0], line[1])
			if !ok {
				continue
			}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, mesh.color, true)
		}
	}
}
