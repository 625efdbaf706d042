package waypoint

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownWaypoint 请求的航点不在注册表中（调用方的程序错误）
var ErrUnknownWaypoint = errors.New("unknown waypoint")

// Registry 航点注册表，构造后不可变
type Registry struct {
	entry  Name
	order  []Name
	byName map[Name]Waypoint
}

// NewRegistry 创建注册表
//
// 参数：
//   - entry: 初始航点（镜头启动时所在位置）
//   - waypoints: 全部航点，名称必须唯一且非空
func NewRegistry(entry Name, waypoints ...Waypoint) (*Registry, error) {
	r := &Registry{
		entry:  entry,
		order:  make([]Name, 0, len(waypoints)),
		byName: make(map[Name]Waypoint, len(waypoints)),
	}

	for _, w := range waypoints {
		if w.Name == None {
			return nil, fmt.Errorf("waypoint with empty name")
		}
		if _, dup := r.byName[w.Name]; dup {
			return nil, fmt.Errorf("duplicate waypoint %q", w.Name)
		}
		if w.Policy.RotateSpeed < 0 {
			return nil, fmt.Errorf("waypoint %q: negative rotate speed %.2f", w.Name, w.Policy.RotateSpeed)
		}
		w.Overlays = append([]OverlayKind(nil), w.Overlays...)
		r.byName[w.Name] = w
		r.order = append(r.order, w.Name)
	}

	if _, ok := r.byName[entry]; !ok {
		return nil, fmt.Errorf("entry waypoint %q: %w", entry, ErrUnknownWaypoint)
	}
	return r, nil
}

// Resolve 返回指定视口类别下的航点记录，Position 已按视口修正
func (r *Registry) Resolve(name Name, vc ViewportClass) (Waypoint, error) {
	w, ok := r.byName[name]
	if !ok {
		return Waypoint{}, fmt.Errorf("resolve %q: %w", name, ErrUnknownWaypoint)
	}
	w.Position = PositionFor(w, vc)
	w.MobileOffset = mgl64.Vec3{}
	w.Overlays = append([]OverlayKind(nil), w.Overlays...)
	return w, nil
}

// Has 检查航点是否已注册
func (r *Registry) Has(name Name) bool {
	_, ok := r.byName[name]
	return ok
}

// Entry 返回初始航点名称
func (r *Registry) Entry() Name {
	return r.entry
}

// Names 按注册顺序返回全部航点名称
func (r *Registry) Names() []Name {
	return append([]Name(nil), r.order...)
}

// Len 返回航点数量
func (r *Registry) Len() int {
	return len(r.order)
}
