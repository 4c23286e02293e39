package player

import "github.com/stride-sim/stride/game"

// Persistent actor flags. These survive across ticks; everything else in
// the flag domains is rebuilt each tick.
const (
	FlagNormalCap game.Flags = 1 << 0
	FlagMetalCap  game.Flags = 1 << 1
	FlagWingCap   game.Flags = 1 << 2
	FlagCapOnHead game.Flags = 1 << 3

	// Sound gates: set when the one-shot sound for the current action has
	// been handed to the audio collaborator, cleared on every transition.
	FlagActionSoundPlayed game.Flags = 1 << 4
	FlagVoiceSoundPlayed  game.Flags = 1 << 5

	// FlagFallingFar marks that the far-fall sound fired for the current
	// airborne arc. Cleared on transition unless the new action is
	// airborne.
	FlagFallingFar game.Flags = 1 << 6

	// FlagRespawnQueued is the side effect of losing the floor entirely or
	// touching a death plane; the host's respawn flow consumes it.
	FlagRespawnQueued game.Flags = 1 << 7
)

// Per-tick input flags, recomputed from the controller and geometry at the
// start of every tick.
const (
	InputNonzeroAnalog game.Flags = 1 << 0
	InputAPressed      game.Flags = 1 << 1
	InputADown         game.Flags = 1 << 2
	InputBPressed      game.Flags = 1 << 3
	InputZPressed      game.Flags = 1 << 4
	InputZDown         game.Flags = 1 << 5
	InputOffFloor      game.Flags = 1 << 6
	InputAboveSlide    game.Flags = 1 << 7
	InputInWater       game.Flags = 1 << 8
	InputInPoisonGas   game.Flags = 1 << 9
	InputSquished      game.Flags = 1 << 10
)

// Per-tick particle flags, consumed by the rendering collaborator.
const (
	ParticleDust          game.Flags = 1 << 0
	ParticleWaterSplash   game.Flags = 1 << 1
	ParticleWaveTrail     game.Flags = 1 << 2
	ParticleIdleWaterWave game.Flags = 1 << 3
	ParticleWind          game.Flags = 1 << 4
	ParticleBubble        game.Flags = 1 << 5
)
