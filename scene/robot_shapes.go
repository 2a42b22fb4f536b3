package scene

import "paintbox/gfx"

type robotArm struct {
	Shoulder, Elbow       gfx.Vec2
	Upper, Fore           gfx.Vertices
	Hand                  []gfx.Vertices
	ElbowScrew, HandScrew screw
}

// legPose is one of the two walking poses of a leg. FootBase is the sole on
// the far leg and the instep on the near one.
type legPose struct {
	Knee                          screw
	Thigh, Calf                   gfx.Vertices
	FootSide, FootFront, FootBase gfx.Vertices
}

type robotEye struct {
	White, Iris screw
}

var robotFloor = gfx.Vertices{
	2, -2,
	-2, -2,
	-2, -0.2,
	2, -0.2,
}

var robotNeck = gfx.Vertices{
	0.043, 0.401,
	0.300, 0.401,
	0.296, 0.320,
	0.085, 0.343,
}

var robotHead = gfx.Vertices{
	0.309, 0.545,
	0.509, 0.567,
	0.649, 0.121,
	0.282, 0.129,
}

var robotAntenna = gfx.Vertices{
	0.430, 0.584,
	0.430, 0.558,
	0.404, 0.556,
	0.404, 0.583,
}

var robotEyebrow = gfx.Vertices{
	0.556, 0.495,
	0.412, 0.454,
	0.412, 0.476,
	0.548, 0.517,
}

var robotNose = gfx.Vertices{
	0.538, 0.389,
	0.624, 0.432,
	0.637, 0.400,
	0.544, 0.327,
}

var robotJaw = [3]gfx.Vertices{
	{
		0.464, 0.331,
		0.525, 0.250,
		0.555, 0.081,
		0.441, 0.226,
	},
	{
		0.525, 0.250,
		0.694, 0.270,
		0.789, 0.128,
		0.555, 0.081,
	},
	{
		0.765, 0.382,
		0.789, 0.128,
		0.694, 0.270,
	},
}

var jawScrew = screw{X: 0.478, Y: 0.257, R: 0.0239}

const (
	eyeRadius  = 0.0481
	irisRadius = 0.0175
)

var robotEyes = []robotEye{
	{
		White: screw{X: 0.532, Y: 0.438, R: eyeRadius},
		Iris:  screw{X: 0.529, Y: 0.453, R: irisRadius},
	},
	{
		White: screw{X: 0.483, Y: 0.427, R: eyeRadius},
		Iris:  screw{X: 0.510, Y: 0.415, R: irisRadius},
	},
}

var torsoTop = gfx.Vertices{
	-0.132, 0.443,
	0.096, 0.463,
	0.227, 0.251,
	0.068, 0.238,
}

var torsoFront = gfx.Vertices{
	0.227, 0.251,
	0.068, 0.238,
	-0.218, -0.244,
	-0.054, -0.217,
}

var torsoSide = gfx.Vertices{
	-0.218, -0.244,
	0.068, 0.238,
	-0.132, 0.443,
	-0.434, -0.055,
}

var farArm = robotArm{
	Shoulder: gfx.Vec2{X: 0.027, Y: 0.233},
	Elbow:    gfx.Vec2{X: 0.372, Y: -0.109},
	Upper: gfx.Vertices{
		0.055, 0.266,
		0, 0.2,
		0.348, -0.145,
		0.394, -0.074,
	},
	Fore: gfx.Vertices{
		0.342, -0.090,
		0.348, -0.145,
		0.394, -0.074,
		0.683, -0.056,
		0.676, -0.117,
		0.348, -0.145,
	},
	Hand: []gfx.Vertices{
		{
			0.683, -0.056,
			0.676, -0.117,
			0.734, -0.132,
			0.759, -0.114,
			0.776, 0.026,
			0.709, 0.070,
		},
		{
			0.776, 0.026,
			0.709, 0.070,
			0.831, 0.091,
			0.855, 0.021,
		},
		{
			0.836, -0.184,
			0.865, -0.230,
			0.869, -0.091,
			0.827, -0.150,
			0.759, -0.114,
			0.734, -0.132,
			0.676, -0.117,
			0.865, -0.230,
		},
	},
	ElbowScrew: screw{X: 0.376, Y: -0.109, R: 0.016},
	HandScrew:  screw{X: 0.725, Y: -0.082, R: 0.027},
}

var nearArm = robotArm{
	Shoulder: gfx.Vec2{X: -0.114, Y: 0.207},
	Elbow:    gfx.Vec2{X: -0.145, Y: -0.175},
	Upper: gfx.Vertices{
		-0.062, 0.211,
		-0.095, -0.180,
		-0.145, -0.195,
		-0.114, -0.266,
		-0.205, -0.175,
		-0.163, 0.213,
	},
	Fore: gfx.Vertices{
		-0.145, -0.195,
		-0.188, -0.172,
		-0.233, -0.566,
		-0.126, -0.574,
		-0.095, -0.180,
	},
	Hand: []gfx.Vertices{
		{
			-0.180, -0.570,
			-0.233, -0.566,
			-0.314, -0.605,
			-0.314, -0.655,
			-0.228, -0.610,
			-0.217, -0.645,
			-0.159, -0.623,
			-0.111, -0.655,
			-0.126, -0.574,
		},
		{
			-0.202, -0.811,
			-0.333, -0.780,
			-0.35, -0.705,
			-0.250, -0.743,
			-0.217, -0.645,
			-0.159, -0.623,
			-0.111, -0.655,
			-0.101, -0.726,
		},
	},
	ElbowScrew: screw{X: -0.145, Y: -0.165, R: 0.016},
	HandScrew:  screw{X: -0.167, Y: -0.704, R: 0.025},
}

// farLeg and nearLeg are indexed by RobotState.Gait.
var farLeg = [2]legPose{
	{
		Knee: screw{X: -0.031, Y: -0.335, R: 0.016},
		Thigh: gfx.Vertices{
			-0.175, -0.238,
			-0.052, -0.376,
			-0.010, -0.372,
			0.014, -0.328,
			-0.083, -0.222,
		},
		Calf: gfx.Vertices{
			-0.052, -0.376,
			0, -0.616,
			0.060, -0.532,
			0.014, -0.328,
		},
		FootSide: gfx.Vertices{
			0, -0.616,
			0, -0.671,
			0.119, -0.500,
			0.117, -0.450,
		},
		FootFront: gfx.Vertices{
			0.119, -0.500,
			0.266, -0.500,
			0.266, -0.450,
			0.117, -0.450,
		},
		FootBase: gfx.Vertices{
			0.119, -0.500,
			0.266, -0.500,
			0.122, -0.673,
			0, -0.671,
		},
	},
	{
		// No knee screw in this pose.
		Knee: screw{},
		Thigh: gfx.Vertices{
			-0.140, -0.449,
			-0.259, -0.207,
			-0.215, -0.245,
			-0.167, -0.237,
			-0.067, -0.443,
		},
		Calf: gfx.Vertices{
			-0.067, -0.443,
			-0.140, -0.449,
			-0.223, -0.695,
			-0.156, -0.666,
		},
		FootSide: gfx.Vertices{
			-0.137, -0.778,
			-0.139, -0.835,
			-0.320, -0.762,
			-0.319, -0.707,
		},
		FootFront: gfx.Vertices{
			0.021, -0.717,
			-0.137, -0.778,
			-0.139, -0.835,
			0.021, -0.775,
		},
		FootBase: gfx.Vertices{
			-0.160, -0.666,
			0.021, -0.717,
			-0.137, -0.778,
			-0.319, -0.707,
		},
	},
}

var nearLeg = [2]legPose{
	{
		Knee: screw{X: -0.427, Y: -0.420, R: 0.016},
		Thigh: gfx.Vertices{
			-0.329, -0.147,
			-0.459, -0.389,
			-0.381, -0.441,
			-0.266, -0.202,
		},
		Calf: gfx.Vertices{
			-0.4, -0.386,
			-0.381, -0.441,
			-0.586, -0.627,
			-0.678, -0.612,
			-0.459, -0.389,
		},
		FootBase: gfx.Vertices{
			-0.586, -0.627,
			-0.678, -0.612,
			-0.782, -0.650,
			-0.552, -0.708,
			-0.375, -0.652,
			-0.564, -0.607,
		},
		FootSide: gfx.Vertices{
			-0.782, -0.650,
			-0.552, -0.708,
			-0.552, -0.784,
			-0.782, -0.712,
		},
		FootFront: gfx.Vertices{
			-0.552, -0.708,
			-0.375, -0.652,
			-0.375, -0.722,
			-0.552, -0.784,
		},
	},
	{
		Knee: screw{X: -0.0495, Y: -0.379, R: 0.016},
		Thigh: gfx.Vertices{
			-0.024, -0.426,
			-0.018, -0.369,
			-0.082, -0.222,
			-0.167, -0.237,
			-0.090, -0.388,
		},
		Calf: gfx.Vertices{
			-0.024, -0.426,
			-0.090, -0.388,
			-0.258, -0.454,
			-0.273, -0.527,
		},
		FootBase: gfx.Vertices{
			-0.365, -0.446,
			-0.183, -0.442,
			-0.228, -0.768,
			-0.414, -0.772,
		},
		FootSide: gfx.Vertices{
			-0.414, -0.772,
			-0.365, -0.446,
			-0.413, -0.413,
			-0.466, -0.749,
		},
		FootFront: gfx.Vertices{
			-0.413, -0.413,
			-0.365, -0.446,
			-0.183, -0.442,
			-0.218, -0.410,
		},
	},
}
