package app

import (
	"paintbox/hal"
	"paintbox/scene"
)

// Player is what the input layer needs from a scene controller.
type Player interface {
	Start()
	Stop()
	Toggle() bool
	Running() bool
	RequestRedraw()
	Side() scene.Side
	SetSide(scene.Side)
}

// Input maps key presses onto the scene controllers.
//
// Bindings: 1 and 2 toggle the flower and the car, c flips the car, d/Right
// and a/Left drive the robot, q and Escape quit.
type Input struct {
	players map[scene.ID]Player

	// OnToggle fires after a scene starts or stops.
	OnToggle func(id scene.ID, playing bool)
	// OnDirection fires after a scene changes facing.
	OnDirection func(id scene.ID, side scene.Side)
}

func NewInput(players map[scene.ID]Player) *Input {
	return &Input{players: players}
}

// Handle applies one key event. It returns hal.ErrQuit for the quit keys.
func (in *Input) Handle(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyRight:
		in.drive(scene.FacingRight)
		return nil
	case hal.KeyLeft:
		in.drive(scene.FacingLeft)
		return nil
	}

	switch ev.Rune {
	case 'q', 'Q':
		return hal.ErrQuit
	case '1':
		in.toggle(scene.FlowerID)
	case '2':
		in.toggle(scene.CarID)
	case 'c', 'C':
		in.flip(scene.CarID)
	case 'd', 'D':
		in.drive(scene.FacingRight)
	case 'a', 'A':
		in.drive(scene.FacingLeft)
	}
	return nil
}

func (in *Input) toggle(id scene.ID) {
	p, ok := in.players[id]
	if !ok {
		return
	}
	in.toggled(id, p.Toggle())
}

// flip reverses a scene's facing. A paused scene is redrawn so the change
// shows; a running one picks it up on its next frame.
func (in *Input) flip(id scene.ID) {
	p, ok := in.players[id]
	if !ok {
		return
	}
	side := p.Side().Flip()
	p.SetSide(side)
	if !p.Running() {
		p.RequestRedraw()
	}
	in.turned(id, side)
}

// drive implements the robot keys. Pressing toward the current facing starts
// the walk; pressing the other way turns around, stops and redraws once.
func (in *Input) drive(side scene.Side) {
	p, ok := in.players[scene.RobotID]
	if !ok {
		return
	}
	if p.Side() == side {
		if !p.Running() {
			p.Start()
			in.toggled(scene.RobotID, true)
		}
		return
	}
	wasRunning := p.Running()
	p.Stop()
	p.SetSide(side)
	p.RequestRedraw()
	in.turned(scene.RobotID, side)
	if wasRunning {
		in.toggled(scene.RobotID, false)
	}
}

func (in *Input) toggled(id scene.ID, playing bool) {
	if in.OnToggle != nil {
		in.OnToggle(id, playing)
	}
}

func (in *Input) turned(id scene.ID, side scene.Side) {
	if in.OnDirection != nil {
		in.OnDirection(id, side)
	}
}
