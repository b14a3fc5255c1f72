package boxcollide

import (
	"bytes"

	"github.com/akmonengine/boxcollide/actor"
	"github.com/google/uuid"
)

const (
	TRIGGER_ENTER EventType = iota
	COLLISION_ENTER
	TRIGGER_STAY
	COLLISION_STAY
	TRIGGER_EXIT
	COLLISION_EXIT
)

type pairKey struct {
	idA uuid.UUID
	idB uuid.UUID
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB *actor.Body) pairKey {
	if bytes.Compare(bodyB.ID[:], bodyA.ID[:]) < 0 {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{idA: bodyA.ID, idB: bodyB.ID}
}

type EventType uint8

func (t EventType) String() string {
	switch t {
	case TRIGGER_ENTER:
		return "trigger_enter"
	case COLLISION_ENTER:
		return "collision_enter"
	case TRIGGER_STAY:
		return "trigger_stay"
	case COLLISION_STAY:
		return "collision_stay"
	case TRIGGER_EXIT:
		return "trigger_exit"
	case COLLISION_EXIT:
		return "collision_exit"
	}
	return "unknown"
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
	Bodies() (*actor.Body, *actor.Body)
}

// PairEvent is the payload shared by every collision and trigger event
type PairEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e PairEvent) Bodies() (*actor.Body, *actor.Body) { return e.BodyA, e.BodyB }

// Other returns the body of the pair that is not body, or nil if body is not part of it
func (e PairEvent) Other(body *actor.Body) *actor.Body {
	switch body {
	case e.BodyA:
		return e.BodyB
	case e.BodyB:
		return e.BodyA
	}
	return nil
}

// Trigger events
type TriggerEnterEvent struct{ PairEvent }

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct{ PairEvent }

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

type TriggerExitEvent struct{ PairEvent }

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

// Collision events
type CollisionEnterEvent struct{ PairEvent }

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct{ PairEvent }

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct{ PairEvent }

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Enter/Stay/Exit detection, keyed by body IDs
	previousActivePairs map[pairKey]Pair
	currentActivePairs  map[pairKey]Pair
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 16),
		previousActivePairs: make(map[pairKey]Pair),
		currentActivePairs:  make(map[pairKey]Pair),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollisions marks the pairs as active for the current step
func (e *Events) recordCollisions(pairs []Pair) {
	for _, p := range pairs {
		e.currentActivePairs[makePairKey(p.BodyA, p.BodyB)] = p
	}
}

// forget drops every tracked pair involving body, without emitting an exit event
func (e *Events) forget(body *actor.Body) {
	for key, pair := range e.previousActivePairs {
		if pair.BodyA == body || pair.BodyB == body {
			delete(e.previousActivePairs, key)
		}
	}
	for key, pair := range e.currentActivePairs {
		if pair.BodyA == body || pair.BodyB == body {
			delete(e.currentActivePairs, key)
		}
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processCollisionEvents() {
	for key, pair := range e.currentActivePairs {
		isTrigger := pair.BodyA.IsTrigger || pair.BodyB.IsTrigger
		payload := PairEvent{BodyA: pair.BodyA, BodyB: pair.BodyB}

		if _, wasActive := e.previousActivePairs[key]; wasActive {
			if isTrigger {
				e.buffer = append(e.buffer, TriggerStayEvent{payload})
			} else {
				e.buffer = append(e.buffer, CollisionStayEvent{payload})
			}
		} else {
			if isTrigger {
				e.buffer = append(e.buffer, TriggerEnterEvent{payload})
			} else {
				e.buffer = append(e.buffer, CollisionEnterEvent{payload})
			}
		}
	}

	for key, pair := range e.previousActivePairs {
		if _, stillActive := e.currentActivePairs[key]; stillActive {
			continue
		}

		isTrigger := pair.BodyA.IsTrigger || pair.BodyB.IsTrigger
		payload := PairEvent{BodyA: pair.BodyA, BodyB: pair.BodyB}
		if isTrigger {
			e.buffer = append(e.buffer, TriggerExitEvent{payload})
		} else {
			e.buffer = append(e.buffer, CollisionExitEvent{payload})
		}
	}

	// Swap for next step and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processCollisionEvents()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
