package scene

import "paintbox/gfx"

// FlowerParams are the flower's tunables.
type FlowerParams struct {
	RotationStep float64 `toml:"rotation_step"`
}

func DefaultFlowerParams() FlowerParams {
	return FlowerParams{RotationStep: 0.01}
}

// FlowerState is everything that changes between flower frames.
type FlowerState struct {
	Rotation float64
}

// Next returns the state one frame later.
func (s FlowerState) Next(p FlowerParams) FlowerState {
	s.Rotation += p.RotationStep
	return s
}

var (
	stemGreen    = gfx.RGB(0, 0.5, 0)
	petalWhite   = gfx.White
	centerYellow = gfx.RGB(1, 1, 0)
)

// Flower is a static stem under a head that spins around the canvas center.
type Flower struct {
	p  FlowerParams
	st FlowerState
}

func NewFlower(p FlowerParams) *Flower {
	return &Flower{p: p}
}

func (f *Flower) Name() string { return FlowerID.String() }

func (f *Flower) State() FlowerState { return f.st }

func (f *Flower) SetParams(p FlowerParams) { f.p = p }

func (f *Flower) Step() { f.st = f.st.Next(f.p) }

func (f *Flower) Render(r *gfx.Renderer) error {
	r.Clear(Sky)
	p := &pen{r: r}
	p.poly(flowerStem, stemGreen, nil)

	head := gfx.Mat4Identity().RotateZ(float32(f.st.Rotation))
	for _, c := range flowerPetals {
		p.circle(c.X, c.Y, flowerPetalRadius, petalWhite, &head)
	}
	p.circle(0, 0, flowerCenterRadius, centerYellow, &head)
	return p.err
}
