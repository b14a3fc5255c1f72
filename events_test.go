package boxcollide

import (
	"testing"

	"github.com/akmonengine/boxcollide/actor"
	"github.com/go-gl/mathgl/mgl64"
)

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) listen(world *World, types ...EventType) {
	for _, t := range types {
		world.Events.Subscribe(t, func(event Event) {
			r.events = append(r.events, event)
		})
	}
}

func (r *eventRecorder) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type() == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) reset() {
	r.events = r.events[:0]
}

func TestMakePairKeyIsOrderIndependent(t *testing.T) {
	a := createTestBox(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, actor.BodyTypeKinematic)
	b := createTestSphere(mgl64.Vec3{}, 1, actor.BodyTypeStatic)

	if makePairKey(a, b) != makePairKey(b, a) {
		t.Error("pair key should not depend on body order")
	}
}

func TestCollisionEnterStayExit(t *testing.T) {
	world := NewWorld(1, 64)
	player := createTestBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5}, actor.BodyTypeKinematic)
	wall := createTestBox(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 1, 1}, actor.BodyTypeStatic)
	world.AddBody(player)
	world.AddBody(wall)

	rec := &eventRecorder{}
	rec.listen(world, COLLISION_ENTER, COLLISION_STAY, COLLISION_EXIT, TRIGGER_ENTER)

	world.Step()
	if len(rec.events) != 0 {
		t.Fatalf("expected no event while apart, got %d", len(rec.events))
	}

	player.Move(mgl64.Vec3{1.8, 0, 0})
	world.Step()
	if rec.count(COLLISION_ENTER) != 1 || len(rec.events) != 1 {
		t.Fatalf("expected a single enter event, got %v", rec.events)
	}
	enter := rec.events[0].(CollisionEnterEvent)
	if enter.Other(player) != wall || enter.Other(wall) != player {
		t.Error("Other should return the opposite body")
	}
	if enter.Other(createTestSphere(mgl64.Vec3{}, 1, actor.BodyTypeStatic)) != nil {
		t.Error("Other should be nil for a foreign body")
	}
	rec.reset()

	world.Step()
	if rec.count(COLLISION_STAY) != 1 || len(rec.events) != 1 {
		t.Fatalf("expected a single stay event, got %v", rec.events)
	}
	rec.reset()

	player.Move(mgl64.Vec3{-1.8, 0, 0})
	world.Step()
	if rec.count(COLLISION_EXIT) != 1 || len(rec.events) != 1 {
		t.Fatalf("expected a single exit event, got %v", rec.events)
	}
	rec.reset()

	world.Step()
	if len(rec.events) != 0 {
		t.Errorf("expected no event after exit, got %v", rec.events)
	}
}

func TestTriggerEvents(t *testing.T) {
	world := NewWorld(1, 64)
	player := createTestBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0.5}, actor.BodyTypeKinematic)
	zone := createTestSphere(mgl64.Vec3{0, 0, 0}, 1, actor.BodyTypeStatic)
	zone.IsTrigger = true
	world.AddBody(player)
	world.AddBody(zone)

	rec := &eventRecorder{}
	rec.listen(world, TRIGGER_ENTER, TRIGGER_STAY, TRIGGER_EXIT, COLLISION_ENTER, COLLISION_EXIT)

	world.Step()
	world.Step()
	player.Move(mgl64.Vec3{0, 5, 0})
	world.Step()

	if rec.count(TRIGGER_ENTER) != 1 || rec.count(TRIGGER_STAY) != 1 || rec.count(TRIGGER_EXIT) != 1 {
		t.Errorf("unexpected trigger sequence: %v", rec.events)
	}
	if rec.count(COLLISION_ENTER) != 0 || rec.count(COLLISION_EXIT) != 0 {
		t.Error("a trigger pair must not raise collision events")
	}
}

func TestRemoveBodyForgetsPairs(t *testing.T) {
	world := NewWorld(1, 64)
	player := createTestBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, actor.BodyTypeKinematic)
	wall := createTestBox(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 1}, actor.BodyTypeStatic)
	world.AddBody(player)
	world.AddBody(wall)

	rec := &eventRecorder{}
	rec.listen(world, COLLISION_ENTER, COLLISION_EXIT)

	world.Step()
	world.RemoveBody(wall)
	world.Step()

	if rec.count(COLLISION_ENTER) != 1 {
		t.Errorf("expected 1 enter event, got %d", rec.count(COLLISION_ENTER))
	}
	if rec.count(COLLISION_EXIT) != 0 {
		t.Error("removed body should not raise an exit event")
	}
	if len(world.Bodies) != 1 || world.Bodies[0] != player {
		t.Errorf("wall not removed: %v", world.Bodies)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		TRIGGER_ENTER:   "trigger_enter",
		COLLISION_ENTER: "collision_enter",
		TRIGGER_STAY:    "trigger_stay",
		COLLISION_STAY:  "collision_stay",
		TRIGGER_EXIT:    "trigger_exit",
		COLLISION_EXIT:  "collision_exit",
		EventType(42):   "unknown",
	}
	for eventType, want := range tests {
		if got := eventType.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
