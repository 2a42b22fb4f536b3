package scene

import (
	"math"

	"paintbox/gfx"
)

// RobotParams are the robot's tunables.
type RobotParams struct {
	BounceStep    float64 `toml:"bounce_step"`
	BounceMax     float64 `toml:"bounce_max"`
	ArmStep       float64 `toml:"arm_step"`
	ShoulderMin   float64 `toml:"shoulder_min"`
	ShoulderMax   float64 `toml:"shoulder_max"`
	WallStep      float64 `toml:"wall_step"`
	WallLimit     float64 `toml:"wall_limit"`
	FramesPerStep int     `toml:"frames_per_step"`
	Primary       RGB     `toml:"primary"`
	Secondary     RGB     `toml:"secondary"`
}

func DefaultRobotParams() RobotParams {
	return RobotParams{
		BounceStep:    0.002,
		BounceMax:     0.06,
		ArmStep:       0.03,
		ShoulderMin:   -0.8,
		ShoulderMax:   0.5,
		WallStep:      0.01,
		WallLimit:     0.2,
		FramesPerStep: 20,
		Primary:       RGB{0.188, 0.494, 0.439},
		Secondary:     RGB{0.529, 0.784, 0.651},
	}
}

// RobotState is everything that changes between robot frames.
type RobotState struct {
	Side        Side
	WallX       float64
	Bounce      float64
	BounceDir   float64
	Shoulder    float64
	ShoulderDir float64
	// Gait selects one of the two leg poses.
	Gait  int
	Frame int
}

func InitialRobotState() RobotState {
	return RobotState{Side: FacingRight, BounceDir: 1, ShoulderDir: 1}
}

// Elbow is the forearm angle that follows the shoulder.
func (s RobotState) Elbow() float64 { return math.Pi/4 - s.Shoulder/3 }

// Next returns the state one frame later: wall scroll, bounce, arm swing and
// gait counter, in that order.
func (s RobotState) Next(p RobotParams) RobotState {
	if s.Side == FacingRight {
		s.WallX = WrapStep(s.WallX, -p.WallStep, p.WallLimit)
	} else {
		s.WallX = WrapStep(s.WallX, p.WallStep, p.WallLimit)
	}
	s.Bounce, s.BounceDir = TriangularWave(s.Bounce, s.BounceDir, p.BounceStep, 0, p.BounceMax)
	s.Shoulder, s.ShoulderDir = TriangularWave(s.Shoulder, s.ShoulderDir, p.ArmStep, p.ShoulderMin, p.ShoulderMax)
	s.Frame++
	if s.Frame >= p.FramesPerStep {
		s.Frame = 0
		s.Gait = 1 - s.Gait
	}
	return s
}

var (
	wallColor  = gfx.RGB(0.741, 0.624, 0.337)
	floorColor = gfx.RGB(0.431, 0.439, 0.290)
)

// Robot walks in front of a scrolling brick wall, swinging its near arm.
type Robot struct {
	p      RobotParams
	st     RobotState
	bricks []gfx.Vertices
}

func NewRobot(p RobotParams) *Robot {
	return &Robot{p: p, st: InitialRobotState(), bricks: Bricks()}
}

func (rb *Robot) Name() string { return RobotID.String() }

func (rb *Robot) State() RobotState { return rb.st }

func (rb *Robot) SetParams(p RobotParams) { rb.p = p }

func (rb *Robot) Side() Side { return rb.st.Side }

func (rb *Robot) SetSide(s Side) { rb.st.Side = s }

func (rb *Robot) Step() { rb.st = rb.st.Next(rb.p) }

func (rb *Robot) Render(r *gfx.Renderer) error {
	r.Clear(wallColor)
	p := &pen{r: r}

	wall := gfx.Mat4Identity().Translate(float32(rb.st.WallX), 0, 0)
	for _, b := range rb.bricks {
		p.borderedScaled(b, wallColor, &wall, 0.99, 0.99)
	}
	p.poly(robotFloor, floorColor, nil)

	legs := gfx.Mat4Identity()
	body := gfx.Mat4Identity().Translate(0, -float32(rb.st.Bounce), 0)
	if rb.st.Side == FacingLeft {
		legs = legs.Rotate(math.Pi, gfx.AxisY)
		body = body.Rotate(math.Pi, gfx.AxisY)
	}

	c1, c2 := rb.p.Primary.Color(), rb.p.Secondary.Color()
	rb.drawFarArm(p, &body, c1, c2)
	rb.drawFarLeg(p, &legs, c1, c2)
	rb.drawNearLeg(p, &legs, c1, c2)
	rb.drawTorso(p, &body, c1, c2)
	rb.drawHead(p, &body, c1, c2)
	rb.drawNearArm(p, &body, c1, c2)
	return p.err
}

// The far arm is fixed; only the near arm swings.
func (rb *Robot) drawFarArm(p *pen, m *gfx.Mat4, c1, c2 gfx.Color) {
	p.borderedScaled(farArm.Upper, c2, m, 0.96, 0.96)
	p.bordered(farArm.Fore, c2, m)
	p.borderedCircle(farArm.ElbowScrew, c2, m)
	p.borderedScaled(farArm.Hand[0], c1, m, 0.94, 1)
	p.borderedScaled(farArm.Hand[1], c1, m, 1.02, gfx.DefaultBorderScale)
	p.borderedScaled(farArm.Hand[2], c1, m, 0.96, 0.96)
	p.borderedCircle(farArm.HandScrew, c1, m)
}

func (rb *Robot) drawNearArm(p *pen, m *gfx.Mat4, c1, c2 gfx.Color) {
	shoulder := pivot(*m, nearArm.Shoulder, float32(rb.st.Shoulder))
	elbow := pivot(shoulder, nearArm.Elbow, float32(rb.st.Elbow()))

	p.bordered(nearArm.Upper, c2, &shoulder)
	p.borderedCircle(nearArm.ElbowScrew, c2, &shoulder)
	p.bordered(nearArm.Fore, c2, &elbow)
	p.borderedScaled(nearArm.Hand[0], c1, &elbow, 0.96, 0.96)
	p.borderedScaled(nearArm.Hand[1], c1, &elbow, 0.96, 0.96)
	p.borderedCircle(nearArm.HandScrew, c1, &elbow)
}

// pivot returns m rotated by angle around the point at.
func pivot(m gfx.Mat4, at gfx.Vec2, angle float32) gfx.Mat4 {
	return m.Translate(at.X, at.Y, 0).RotateZ(angle).Translate(-at.X, -at.Y, 0)
}

func (rb *Robot) drawFarLeg(p *pen, m *gfx.Mat4, c1, c2 gfx.Color) {
	leg := farLeg[rb.st.Gait]
	p.bordered(leg.Calf, c2, m)
	p.bordered(leg.Thigh, c2, m)
	p.borderedCircle(leg.Knee, c2, m)
	p.bordered(leg.FootSide, c1, m)
	p.bordered(leg.FootFront, c1, m)
	p.bordered(leg.FootBase, c1, m)
}

func (rb *Robot) drawNearLeg(p *pen, m *gfx.Mat4, c1, c2 gfx.Color) {
	leg := nearLeg[rb.st.Gait]
	p.bordered(leg.FootSide, c1, m)
	p.bordered(leg.FootFront, c1, m)
	p.bordered(leg.FootBase, c1, m)
	p.bordered(leg.Thigh, c2, m)
	p.bordered(leg.Calf, c2, m)
	p.borderedCircle(leg.Knee, c2, m)
}

func (rb *Robot) drawTorso(p *pen, m *gfx.Mat4, c1, c2 gfx.Color) {
	p.bordered(torsoTop, c1, m)
	p.bordered(torsoSide, c1, m)
	p.bordered(torsoFront, c2, m)
}

func (rb *Robot) drawHead(p *pen, m *gfx.Mat4, c1, c2 gfx.Color) {
	p.bordered(robotNeck, c2, m)
	p.bordered(robotHead, c1, m)
	p.borderedScaled(robotAntenna, c1, m, 0.9, 0.9)
	p.bordered(robotEyebrow, gfx.Black, m)
	p.bordered(robotNose, c2, m)
	p.bordered(robotJaw[0], c2, m)
	p.bordered(robotJaw[2], c2, m)
	p.borderedScaled(robotJaw[1], c2, m, 1.03, gfx.DefaultBorderScale)
	p.borderedCircle(jawScrew, c1, m)
	for _, e := range robotEyes {
		p.borderedCircle(e.White, gfx.White, m)
		p.borderedCircle(e.Iris, gfx.Black, m)
	}
}

// Bricks lays out the wall: 7 rows of 6 bricks, 0.4 wide and 0.2 tall,
// with even rows shifted left by half a brick.
func Bricks() []gfx.Vertices {
	const rows, cols = 7, 6
	out := make([]gfx.Vertices, 0, rows*cols)
	for i := 0; i < rows; i++ {
		var shift float32
		if i%2 == 0 {
			shift = -0.2
		}
		top := 1 - float32(i)*0.2
		for j := 0; j < cols; j++ {
			left := -1 + float32(j)*0.4 + shift
			out = append(out, gfx.Vertices{
				left, top,
				left, top - 0.2,
				left + 0.4, top - 0.2,
				left + 0.4, top,
			})
		}
	}
	return out
}
