package scene

import (
	"math"
	"math/rand/v2"
	"time"

	"paintbox/gfx"
)

// CarParams are the car's tunables.
type CarParams struct {
	BounceStep float64 `toml:"bounce_step"`
	BounceMax  float64 `toml:"bounce_max"`
	RoadStep   float64 `toml:"road_step"`
	RoadLimit  float64 `toml:"road_limit"`
	WheelStep  float64 `toml:"wheel_step"`
	LaneOffset float64 `toml:"lane_offset"`

	// Color fixes the body color. When nil a random color is picked once.
	Color *RGB `toml:"color,omitempty"`
	// Seed makes the random body color reproducible. Zero seeds from the clock.
	Seed uint64 `toml:"seed"`
}

func DefaultCarParams() CarParams {
	return CarParams{
		BounceStep: 0.001,
		BounceMax:  0.025,
		RoadStep:   0.01,
		RoadLimit:  1,
		WheelStep:  0.1,
		LaneOffset: 0.33,
	}
}

// CarState is everything that changes between car frames.
type CarState struct {
	Side      Side
	Bounce    float64
	BounceDir float64
	RoadX     float64
	LaneY     float64
	Wheel     float64
}

func InitialCarState(p CarParams) CarState {
	return CarState{Side: FacingRight, BounceDir: 1, LaneY: -p.LaneOffset}
}

// Next returns the state one frame later: bounce, then road scroll, then
// wheel spin.
func (s CarState) Next(p CarParams) CarState {
	s.Bounce, s.BounceDir = TriangularWave(s.Bounce, s.BounceDir, p.BounceStep, 0, p.BounceMax)
	if s.Side == FacingRight {
		s.LaneY = -p.LaneOffset
		s.RoadX = WrapStep(s.RoadX, -p.RoadStep, p.RoadLimit)
	} else {
		s.LaneY = 0
		s.RoadX = WrapStep(s.RoadX, p.RoadStep, p.RoadLimit)
	}
	s.Wheel += p.WheelStep
	return s
}

// Car drives along a scrolling road. Facing left it is mirrored around its
// own center and moves to the far lane.
type Car struct {
	p     CarParams
	st    CarState
	color gfx.Color
}

func NewCar(p CarParams) *Car {
	return &Car{p: p, st: InitialCarState(p), color: pickCarColor(p)}
}

func pickCarColor(p CarParams) gfx.Color {
	if p.Color != nil {
		return p.Color.Color()
	}
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	return gfx.RGB(rng.Float32(), rng.Float32(), rng.Float32())
}

func (c *Car) Name() string { return CarID.String() }

func (c *Car) State() CarState { return c.st }

func (c *Car) BodyColor() gfx.Color { return c.color }

func (c *Car) SetParams(p CarParams) {
	c.p = p
	if p.Color != nil {
		c.color = p.Color.Color()
	}
}

func (c *Car) Side() Side { return c.st.Side }

func (c *Car) SetSide(s Side) { c.st.Side = s }

func (c *Car) Step() { c.st = c.st.Next(c.p) }

func (c *Car) Render(r *gfx.Renderer) error {
	r.Clear(Sky)
	p := &pen{r: r}

	road := gfx.Mat4Identity().Translate(float32(c.st.RoadX), 0, 0)
	p.poly(carRoad, roadGrey, nil)
	for _, l := range carRoadLines {
		p.poly(l, gfx.White, &road)
	}

	bounce := float32(c.st.Bounce)
	x, y := carCenter.X, carCenter.Y+bounce
	body := gfx.Mat4Identity().Translate(x, y, 0)
	if c.st.Side == FacingLeft {
		body = body.Rotate(math.Pi, gfx.AxisY)
	}
	body = body.Translate(-x, -y, 0).Translate(0, float32(c.st.LaneY)+bounce, 0)

	p.poly(carBody, c.color, &body)
	p.poly(carWindowRear, Sky, &body)
	p.poly(carWindowRearGlint0, gfx.White, &body)
	p.poly(carWindowRearGlint1, gfx.White, &body)
	p.poly(carWindowFront, Sky, &body)
	p.poly(carWindowFrontGlint0, gfx.White, &body)
	p.poly(carWindowFrontGlint1, gfx.White, &body)
	p.poly(carHeadlight, headlightYellow, &body)
	p.poly(carTaillight, taillightRed, &body)

	for _, w := range carWheels {
		c.drawWheel(p, w)
	}
	return p.err
}

func (c *Car) drawWheel(p *pen, at gfx.Vec2) {
	m := gfx.Mat4Identity().Translate(at.X, at.Y+float32(c.st.LaneY+c.st.Bounce/3), 0)
	if c.st.Side == FacingLeft {
		m = m.Rotate(math.Pi, gfx.AxisY)
	}
	m = m.RotateZ(float32(c.st.Wheel))

	p.circle(0, 0, 0.1, wheelGrey, &m)
	p.circle(0, 0, 0.085, gfx.Black, &m)
	p.circle(0, 0, 0.07, gfx.White, &m)
	p.poly(carWheelSpoke, wheelGrey, &m)
	cross := m.RotateZ(math.Pi / 2)
	p.poly(carWheelSpoke, wheelGrey, &cross)
}

var (
	roadGrey        = gfx.RGB(0.5, 0.5, 0.5)
	wheelGrey       = gfx.RGB(0.3, 0.3, 0.3)
	headlightYellow = gfx.RGB(1, 1, 0)
	taillightRed    = gfx.RGB(1, 0, 0)
)
