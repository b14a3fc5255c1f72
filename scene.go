package boxcollide

import (
	"image/color"

	"github.com/akmonengine/boxcollide/actor"
	"github.com/akmonengine/boxcollide/config"
	"github.com/akmonengine/boxcollide/internal/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Key is a direction key polled once per frame
type Key int

const (
	KeyRight Key = iota
	KeyLeft
	KeyDown
	KeyUp
)

func (k Key) String() string {
	switch k {
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	}
	return "unknown"
}

// Input reports the state of the direction keys for the current frame
type Input interface {
	IsKeyDown(key Key) bool
}

// InputFunc adapts a function to Input
type InputFunc func(key Key) bool

func (f InputFunc) IsKeyDown(key Key) bool { return f(key) }

// NoInput is an Input with every key released
var NoInput = InputFunc(func(Key) bool { return false })

// move is the effect of one direction key: translation axis, sign and model yaw
type move struct {
	key   Key
	delta mgl64.Vec3
	yaw   float64
}

// Only the first held key in this order acts on a frame
var moves = [...]move{
	{KeyRight, mgl64.Vec3{1, 0, 0}, -90},
	{KeyLeft, mgl64.Vec3{-1, 0, 0}, 90},
	{KeyDown, mgl64.Vec3{0, 0, 1}, 0},
	{KeyUp, mgl64.Vec3{0, 0, -1}, 180},
}

// Scene is the demo state: a player box driven by the arrow keys among static obstacles
type Scene struct {
	World     *World
	Player    *actor.Body
	Obstacles []*actor.Body
	Camera    Camera

	// Yaw is the model heading in degrees, it does not rotate the collision box
	Yaw  float64
	Step float64

	Colliding   bool
	PlayerColor color.RGBA

	frame  uint64
	logger *log.Logger
}

// NewScene builds the world described by cfg
func NewScene(cfg config.Scene, logger *log.Logger) (*Scene, error) {
	if logger == nil {
		logger = log.Nop()
	}

	world := NewWorld(cfg.CellSize, DEFAULT_NUM_CELLS)
	world.Workers = cfg.Workers

	player := actor.NewBoxBody("player", cfg.Player.Position.Vec(), cfg.Player.Size.Vec(), actor.BodyTypeKinematic)
	world.AddBody(player)

	s := &Scene{
		World:  world,
		Player: player,
		Camera: Camera{
			Position: cfg.Camera.Position.Vec(),
			Target:   cfg.Camera.Target.Vec(),
			Up:       cfg.Camera.Up.Vec(),
			Fovy:     cfg.Camera.Fovy,
		},
		Step:        cfg.Player.Step,
		PlayerColor: ColorGreen,
		logger:      logger,
	}

	for _, o := range cfg.Obstacles {
		body, err := newObstacle(o)
		if err != nil {
			return nil, err
		}
		s.Obstacles = append(s.Obstacles, body)
		world.AddBody(body)
	}

	world.Events.Subscribe(COLLISION_ENTER, s.logEvent)
	world.Events.Subscribe(COLLISION_EXIT, s.logEvent)
	world.Events.Subscribe(TRIGGER_ENTER, s.logEvent)
	world.Events.Subscribe(TRIGGER_EXIT, s.logEvent)

	logger.Info("scene ready",
		log.Int("obstacles", len(s.Obstacles)),
		log.Any("player", cfg.Player.Position),
		log.Int("workers", world.Workers),
	)

	return s, nil
}

func newObstacle(o config.Obstacle) (*actor.Body, error) {
	var shape actor.ShapeInterface
	switch o.Shape {
	case config.ShapeBox:
		shape = actor.NewBoxFromSize(o.Size.Vec())
	case config.ShapeSphere:
		shape = &actor.Sphere{Radius: o.Radius}
	default:
		return nil, errors.Wrapf(config.ErrUnknownShape, "obstacle %q: %q", o.Name, o.Shape)
	}

	body := actor.NewBody(o.Name, actor.NewTransformYaw(o.Position.Vec(), o.Yaw), shape, actor.BodyTypeStatic)
	body.IsTrigger = o.Trigger

	return body, nil
}

// Update advances the scene by one frame: move, test collisions, recolor
func (s *Scene) Update(input Input) {
	s.frame++

	for _, m := range moves {
		if !input.IsKeyDown(m.key) {
			continue
		}

		delta := m.delta.Mul(s.Step)
		s.Player.Move(delta)
		s.Camera.Translate(delta)
		s.Yaw = m.yaw
		break
	}

	s.Colliding = false
	for _, pair := range s.World.Step() {
		if pair.BodyA.IsTrigger || pair.BodyB.IsTrigger {
			continue
		}
		if pair.BodyA == s.Player || pair.BodyB == s.Player {
			s.Colliding = true
		}
	}

	if s.Colliding {
		s.PlayerColor = ColorRed
	} else {
		s.PlayerColor = ColorGreen
	}
}

// Frame is the number of updates run so far
func (s *Scene) Frame() uint64 {
	return s.frame
}

// PlayerBox is the player's collision box for the current frame
func (s *Scene) PlayerBox() actor.AABB {
	return actor.NewAABBFromCenter(s.Player.Transform.Position, s.Player.Shape.(*actor.Box).Size())
}

// ModelRotation is the heading of the player model around +Y
func (s *Scene) ModelRotation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(s.Yaw), mgl64.Vec3{0, 1, 0})
}

// OnCollisionEnter calls fn with the obstacle each time the player starts touching one.
// Triggers are not reported.
func (s *Scene) OnCollisionEnter(fn func(obstacle *actor.Body)) {
	s.World.Events.Subscribe(COLLISION_ENTER, func(event Event) {
		e := event.(CollisionEnterEvent)
		if other := e.Other(s.Player); other != nil {
			fn(other)
		}
	})
}

func (s *Scene) logEvent(event Event) {
	a, b := event.Bodies()
	s.logger.Debug(event.Type().String(),
		log.String("body_a", a.Name),
		log.String("body_b", b.Name),
		log.Uint64("frame", s.frame),
	)
}
