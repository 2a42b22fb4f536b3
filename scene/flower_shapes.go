package scene

import "paintbox/gfx"

var flowerStem = gfx.Vertices{
	-0.03, -0.3,
	0.03, -0.3,
	0.04, -1,
	-0.04, -1,
}

const (
	flowerPetalRadius  = 0.15
	flowerCenterRadius = 0.3
)

// Petal centers, drawn in this order.
var flowerPetals = []gfx.Vec2{
	{X: 0.3, Y: 0},
	{X: 0, Y: 0.3},
	{X: -0.3, Y: 0},
	{X: 0, Y: -0.3},
	{X: 0.21, Y: 0.21},
	{X: -0.21, Y: 0.21},
	{X: 0.21, Y: -0.21},
	{X: -0.21, Y: -0.21},
}
