package mandel

import (
	"sort"
	"strings"
)

// Named views of the complex plane, selectable by RegionByName.
var (
	// WholeSet frames the complete set at 3:2.
	WholeSet = Region{
		UpperLeft:  complex(-2.0, 1.0),
		LowerRight: complex(1.0, -1.0),
	}

	// Between the main cardioid and the period 2 bulb.
	SeahorseValley = Region{
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	}

	// Near the tip of the antenna on the negative real axis.
	ElephantValley = Region{
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	}

	// A minibrot deep in seahorse valley.
	SpiralMinibrot = Region{
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	}

	TripleSpiral = Region{
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	}

	ValleyOfTheDragon = Region{
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	}

	// Off the real axis next to the period 3 minibrot.
	MinibrotInMiniSpiral = Region{
		UpperLeft:  complex(-1.7390, -0.0220),
		LowerRight: complex(-1.7375, -0.0235),
	}
)

var landmarks = map[string]Region{
	"whole":           WholeSet,
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"minibrot-spiral": MinibrotInMiniSpiral,
}

// RegionByName looks up a landmark by its short name, e.g. "seahorse".
func RegionByName(name string) (Region, bool) {
	r, ok := landmarks[strings.ToLower(name)]
	return r, ok
}

// RegionNames lists the landmark names RegionByName knows, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
