package scene

import "paintbox/gfx"

// carCenter is the point the car is mirrored around.
var carCenter = gfx.Vec2{X: -0.341, Y: -0.457}

var carWheels = []gfx.Vec2{
	{X: -0.6, Y: -0.58},
	{X: -0.1, Y: -0.58},
}

var carRoad = gfx.Vertices{
	1, -1,
	-1, -1,
	-1, -0.4,
	1, -0.4,
}

var carRoadLines = []gfx.Vertices{
	{
		-1.7, -0.72,
		-1.3, -0.72,
		-1.3, -0.7,
		-1.7, -0.7,
	},
	{
		-0.7, -0.72,
		-0.3, -0.72,
		-0.3, -0.7,
		-0.7, -0.7,
	},
	{
		0.7, -0.72,
		0.3, -0.72,
		0.3, -0.7,
		0.7, -0.7,
	},
	{
		1.7, -0.72,
		1.3, -0.72,
		1.3, -0.7,
		1.7, -0.7,
	},
}

var carWheelSpoke = gfx.Vertices{
	-0.04, -0.005,
	-0.04, 0.005,
	0.04, 0.005,
	0.04, -0.005,
}

var carBody = gfx.Vertices{
	-0.72, -0.56,
	-0.72, -0.42,
	-0.64, -0.28,
	-0.28, -0.28,
	-0.08, -0.42,
	0.04, -0.44,
	0.04, -0.56,
}

var carWindowRear = gfx.Vertices{
	-0.68, -0.42,
	-0.62, -0.31,
	-0.44, -0.31,
	-0.44, -0.42,
}

var carWindowRearGlint0 = gfx.Vertices{
	-0.64, -0.42,
	-0.62, -0.42,
	-0.50, -0.31,
	-0.52, -0.31,
}

var carWindowRearGlint1 = gfx.Vertices{
	-0.44, -0.37,
	-0.44, -0.35,
	-0.50, -0.42,
	-0.48, -0.42,
}

var carWindowFront = gfx.Vertices{
	-0.4, -0.31,
	-0.276, -0.31,
	-0.12, -0.42,
	-0.4, -0.42,
}

var carWindowFrontGlint0 = gfx.Vertices{
	-0.4, -0.41,
	-0.4, -0.42,
	-0.39, -0.42,
	-0.276, -0.31,
	-0.29, -0.31,
}

var carWindowFrontGlint1 = gfx.Vertices{
	-0.24, -0.341,
	-0.31, -0.42,
	-0.3, -0.42,
	-0.237, -0.35,
}

var carHeadlight = gfx.Vertices{
	0.04, -0.45,
	0.04, -0.47,
	0, -0.47,
	0, -0.45,
}

var carTaillight = gfx.Vertices{
	-0.72, -0.43,
	-0.72, -0.45,
	-0.68, -0.45,
	-0.68, -0.43,
}
