package player

// ControllerState is one tick's worth of raw controller and camera input.
// Stick axes run -64..64; the camera yaw anchors the stick direction in
// world space.
type ControllerState struct {
	StickX float32
	StickY float32

	APressed bool
	ADown    bool
	BPressed bool
	BDown    bool
	ZPressed bool
	ZDown    bool

	CameraYaw int16
}

// ControllerSource supplies controller state once per tick. The input
// acquisition system behind it is a collaborator; a nil source reads as a
// released controller.
type ControllerSource interface {
	Sample() ControllerState
}

// ScriptedController replays a fixed input sequence and then holds the last
// state. Used by tests and the demo host.
type ScriptedController struct {
	Frames []ControllerState
	cursor int
}

func (c *ScriptedController) Sample() ControllerState {
	if len(c.Frames) == 0 {
		return ControllerState{}
	}
	if c.cursor >= len(c.Frames) {
		return c.Frames[len(c.Frames)-1]
	}
	st := c.Frames[c.cursor]
	c.cursor++
	return st
}
