// Package input turns terminal key events into the per-frame key state polled by the scene.
//
// Terminals only report presses and auto-repeats, never releases: a key counts as held
// until its hold window elapses without a new event for it.
package input

import (
	"sync"
	"time"

	"github.com/akmonengine/boxcollide"
	"github.com/gdamore/tcell/v2"
)

var keys = map[tcell.Key]boxcollide.Key{
	tcell.KeyRight: boxcollide.KeyRight,
	tcell.KeyLeft:  boxcollide.KeyLeft,
	tcell.KeyDown:  boxcollide.KeyDown,
	tcell.KeyUp:    boxcollide.KeyUp,
}

// KeyState implements boxcollide.Input. It is safe to feed from the event goroutine
// while the frame loop polls it.
type KeyState struct {
	mu         sync.Mutex
	holdWindow time.Duration
	lastPress  map[boxcollide.Key]time.Time
	now        func() time.Time
}

func NewKeyState(holdWindow time.Duration) *KeyState {
	return &KeyState{
		holdWindow: holdWindow,
		lastPress:  make(map[boxcollide.Key]time.Time, len(keys)),
		now:        time.Now,
	}
}

// HandleEvent records arrow key events. It reports whether the event was consumed.
func (s *KeyState) HandleEvent(ev *tcell.EventKey) bool {
	key, ok := keys[ev.Key()]
	if !ok {
		return false
	}

	s.mu.Lock()
	s.lastPress[key] = s.now()
	s.mu.Unlock()

	return true
}

func (s *KeyState) IsKeyDown(key boxcollide.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pressed, ok := s.lastPress[key]
	if !ok {
		return false
	}
	if s.now().Sub(pressed) >= s.holdWindow {
		delete(s.lastPress, key)
		return false
	}
	return true
}

// Release forgets every key, e.g. when the terminal loses focus
func (s *KeyState) Release() {
	s.mu.Lock()
	clear(s.lastPress)
	s.mu.Unlock()
}
