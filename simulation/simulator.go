package simulation

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/stride-sim/stride/assert"
	"github.com/stride-sim/stride/config"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/world"
)

// Behavior advances one action for one tick. It returns true when it replaced
// the action, in which case the dispatch loop re-runs the new action within
// the same tick.
type Behavior func(s *Simulator, a *player.Actor) bool

// HeldObjectHandler is the interaction collaborator responsible for objects
// bound to the actor's hands. The simulator only guarantees call ordering;
// what picking up or dropping means belongs to the host.
type HeldObjectHandler interface {
	PickUpObject(a *player.Actor) bool
	DropHeldObject(a *player.Actor)
}

// Options tweak simulator behavior per instance.
type Options struct {
	// ContinuousStepping replaces the four collision sub-steps per tick
	// with a single full-length step.
	ContinuousStepping bool

	// Debugf, when set, receives a one-line state trace after every tick.
	Debugf func(format string, args ...interface{})
}

// Simulator advances actors one tick at a time against a geometry source. A
// single Simulator may serve many actors, but no two ticks for the same
// actor may overlap.
type Simulator struct {
	World   world.Source
	Held    HeldObjectHandler
	Log     *logrus.Logger
	Tuning  *config.Config
	Options Options

	behaviors *orderedmap.OrderedMap[uint32, Behavior]
}

// New creates a simulator over the given geometry source with the reference
// tuning and the shipped action catalogue registered.
func New(src world.Source) *Simulator {
	s := &Simulator{
		World:     src,
		Log:       logrus.StandardLogger(),
		Tuning:    config.Default(),
		behaviors: orderedmap.NewOrderedMap[uint32, Behavior](),
	}
	s.registerDefaults()
	return s
}

// Register installs a behavior for an action code. Registering over an
// existing code is a non-fatal warning; the last registration wins.
func (s *Simulator) Register(action uint32, b Behavior) {
	assert.IsTrue(game.KnownGroup(action), "action %#x does not carry a known group", action)
	assert.IsTrue(b != nil, "nil behavior for action %#x", action)
	if !s.behaviors.Set(action, b) {
		s.Log.Warnf("behavior for action %#x registered twice, keeping the newest", action)
	}
}

// Actions returns the registered action codes in registration order.
func (s *Simulator) Actions() []uint32 {
	return s.behaviors.Keys()
}

// run invokes the registered behavior for the actor's current action. An
// unregistered code is recoverable: log, force-reset to idle, stop looping.
func (s *Simulator) run(a *player.Actor) bool {
	b, ok := s.behaviors.Get(a.Action)
	if !ok {
		s.Log.Warnf("no behavior registered for action %#x, resetting to idle", a.Action)
		s.forceIdle(a)
		return false
	}
	return b(s, a)
}

// forceIdle hard-resets the action bookkeeping without running any entry
// routine. Only the unregistered-action fallback uses it.
func (s *Simulator) forceIdle(a *player.Actor) {
	a.PrevAction = a.Action
	a.Action = game.ActIdle
	a.ActionArg = 0
	a.ActionState = 0
	a.ActionTimer = 0
	a.SetForwardVel(0)
	a.Velocity = mgl32.Vec3{}
}

func (s *Simulator) quarterSteps() int {
	if s.Options.ContinuousStepping || s.Tuning.Stepping.Continuous {
		return 1
	}
	return 4
}
