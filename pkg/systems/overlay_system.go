package systems

import (
	"log"

	"github.com/decker502/scrolltour/pkg/components"
	"github.com/decker502/scrolltour/pkg/ecs"
	"github.com/decker502/scrolltour/pkg/utils"
	"github.com/decker502/scrolltour/pkg/waypoint"
)

// VisibilitySet 某个位置下应当显示的叠加层角色集合
type VisibilitySet map[components.OverlayRole]bool

// Visible 检查角色是否在集合中
func (v VisibilitySet) Visible(role components.OverlayRole) bool {
	return v[role]
}

// ResolveOverlays 计算 location 下应当显示的叠加层角色
//
// 纯函数：只有 location 自己声明的叠加层可见，其他航点的叠加层一律不可见。
// location 为 waypoint.None 或未注册时返回空集合。
func ResolveOverlays(reg *waypoint.Registry, location waypoint.Name) VisibilitySet {
	set := make(VisibilitySet)
	if location == waypoint.None || reg == nil {
		return set
	}
	w, err := reg.Resolve(location, waypoint.Desktop)
	if err != nil {
		return set
	}
	for _, kind := range w.Overlays {
		role := components.OverlayRole{Location: location, Kind: kind}
		if kind == waypoint.OverlaySlides {
			left, right := role, role
			left.Side = components.SideLeft
			right.Side = components.SideRight
			set[left] = true
			set[right] = true
			continue
		}
		set[role] = true
	}
	return set
}

// OverlaySystem 叠加层可见性与退出动画
//
// Apply 每次都完整覆盖所有叠加层的状态（先清空再应用），不依赖上一次的结果。
type OverlaySystem struct {
	entityManager *ecs.EntityManager
	registry      *waypoint.Registry
	exitDuration  float64
	// fadeSpeed 显现进度每秒变化量
	fadeSpeed float64
}

// NewOverlaySystem 创建叠加层系统
// exitDuration 是全屏图片退出动画的时长，其他元素的淡入淡出使用相同的速度。
func NewOverlaySystem(em *ecs.EntityManager, reg *waypoint.Registry, exitDuration float64) *OverlaySystem {
	speed := 1.0 / 0.5
	if exitDuration > 0 {
		speed = 1.0 / exitDuration
	}
	return &OverlaySystem{
		entityManager: em,
		registry:      reg,
		exitDuration:  exitDuration,
		fadeSpeed:     speed,
	}
}

// Apply 把叠加层状态切换为 location 对应的可见集合
//
// 规则：
//   - 集合内的元素 → Visible
//   - 集合外、当前 Visible 的全屏图片 → Hiding（播放退出动画）
//   - 集合外、已经 Hiding 的全屏图片 → 保持 Hiding
//   - 其他元素 → 立即 Hidden
func (s *OverlaySystem) Apply(location waypoint.Name) {
	wanted := ResolveOverlays(s.registry, location)

	found := make(map[components.OverlayRole]bool, len(wanted))
	for _, id := range ecs.GetEntitiesWith1[*components.OverlayComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id)
		role := comp.Role

		if wanted.Visible(role) {
			found[role] = true
			comp.State = components.StateVisible
			comp.ExitElapsed = 0
			continue
		}

		if role.Kind == waypoint.OverlayFullscreenImage {
			switch comp.State {
			case components.StateVisible:
				comp.State = components.StateHiding
				comp.ExitElapsed = 0
				continue
			case components.StateHiding:
				continue
			}
		}

		comp.State = components.StateHidden
		comp.ExitElapsed = 0
		comp.Presence = 0
	}

	for role := range wanted {
		if !found[role] {
			log.Printf("[Overlay] %s: no %s element, skipped", role.Location, role.Kind)
		}
	}
}

// Update 推进退出动画和显现进度
func (s *OverlaySystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.OverlayComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id)

		switch comp.State {
		case components.StateVisible:
			comp.Presence = utils.Approach(comp.Presence, 1, s.fadeSpeed*dt)
		case components.StateHiding:
			comp.ExitElapsed += dt
			if comp.ExitElapsed >= s.exitDuration-1e-9 {
				comp.State = components.StateHidden
				comp.ExitElapsed = 0
				comp.Presence = 0
			}
		default:
			comp.Presence = 0
		}
	}
}

// ExitProgress 返回退出动画进度 [0, 1]，不在 Hiding 状态时为 0
func (s *OverlaySystem) ExitProgress(comp *components.OverlayComponent) float64 {
	if comp.State != components.StateHiding || s.exitDuration <= 0 {
		return 0
	}
	return utils.Clamp01(comp.ExitElapsed / s.exitDuration)
}

// StateOf 返回指定角色的状态；没有对应元素时返回 StateHidden 和 false
func (s *OverlaySystem) StateOf(role components.OverlayRole) (components.VisibilityState, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.OverlayComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id)
		if comp.Role == role {
			return comp.State, true
		}
	}
	return components.StateHidden, false
}

// VisibleRoles 返回当前处于 Visible 状态的角色
func (s *OverlaySystem) VisibleRoles() VisibilitySet {
	set := make(VisibilitySet)
	for _, id := range ecs.GetEntitiesWith1[*components.OverlayComponent](s.entityManager) {
		comp, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, id)
		if comp.State == components.StateVisible {
			set[comp.Role] = true
		}
	}
	return set
}
