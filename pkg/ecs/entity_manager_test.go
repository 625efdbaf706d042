package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransformComponent struct {
	X, Y, Z float64
}

type testVisibilityComponent struct {
	Visible bool
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if !em.Exists(id2) {
		t.Error("Created entity should exist")
	}
	if em.Exists(0) {
		t.Error("Entity 0 must never exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransformComponent{X: 1, Y: 2, Z: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testTransformComponent)
	if retrieved.X != 1 || retrieved.Y != 2 || retrieved.Z != 3 {
		t.Errorf("Component data mismatch, got (%f, %f, %f)", retrieved.X, retrieved.Y, retrieved.Z)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testVisibilityComponent{Visible: true})

	vis, ok := GetComponent[*testVisibilityComponent](em, id)
	if !ok {
		t.Fatal("GetComponent[*testVisibilityComponent] should succeed")
	}
	if !vis.Visible {
		t.Error("Expected Visible=true")
	}

	// 修改指针组件后再次读取应看到同一实例
	vis.Visible = false
	again, _ := GetComponent[*testVisibilityComponent](em, id)
	if again.Visible {
		t.Error("Pointer components should be shared, not copied")
	}

	if _, ok := GetComponent[*testTransformComponent](em, id); ok {
		t.Error("Missing component should report ok=false")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Should not have component before adding")
	}
	em.AddComponent(id, &testTransformComponent{})
	if !em.HasComponent(id, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Should have component after adding")
	}

	em.RemoveComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if em.HasComponent(id, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransformComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testVisibilityComponent{})
		ids = append(ids, id)
	}
	other := em.CreateEntity()
	em.AddComponent(other, &testTransformComponent{})

	got := GetEntitiesWith1[*testVisibilityComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("Query order mismatch at %d: got %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestGetEntitiesWithMultipleTypes(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testTransformComponent{})
	em.AddComponent(id1, &testVisibilityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testTransformComponent{})

	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testTransformComponent{}),
		reflect.TypeOf(&testVisibilityComponent{}),
	)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected only id1, got %v", entities)
	}
}
