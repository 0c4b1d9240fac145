package colormap

import "math"

// gistEarthData is the GIST earth-tone scale: black through ocean blue,
// vegetation green and sand to white.
var gistEarthData = SegmentData{
	Red: segment([][2]float64{
		{0, 0}, {0.2824, 0.1882}, {0.4588, 0.2714}, {0.549, 0.4719},
		{0.698, 0.7176}, {0.7882, 0.7553}, {1, 0.9922},
	}...),
	Green: segment([][2]float64{
		{0, 0}, {0.0275, 0}, {0.1098, 0.1893}, {0.1647, 0.3035},
		{0.2078, 0.3841}, {0.2824, 0.502}, {0.5216, 0.6397}, {0.698, 0.7171},
		{0.7882, 0.6392}, {0.7922, 0.6413}, {0.8, 0.6447}, {0.8078, 0.6481},
		{0.8157, 0.6549}, {0.8667, 0.7911}, {0.8745, 0.7949}, {0.8824, 0.7973},
		{0.8902, 0.8005}, {0.898, 0.8041}, {0.9412, 0.8569}, {0.9686, 0.8809},
		{1, 0.9961},
	}...),
	Blue: segment([][2]float64{
		{0, 0}, {0.0039, 0.1684}, {0.0078, 0.2212}, {0.0275, 0.4329},
		{0.0314, 0.4549}, {0.2824, 0.5004}, {0.4667, 0.2748}, {0.5451, 0.3205},
		{0.7843, 0.3961}, {0.8941, 0.6651}, {1, 0.9843},
	}...),
}

// coolwarm is Kenneth Moreland's smooth diverging map, 33 evenly spaced
// stops interpolated linearly.
var coolwarm = tableColours([][3]float64{
	{0.2298057, 0.298717966, 0.753683153},
	{0.26623388, 0.353094838, 0.801466763},
	{0.30386891, 0.406535296, 0.84495867},
	{0.342804478, 0.458757618, 0.883725899},
	{0.38301334, 0.50941904, 0.917387822},
	{0.424369608, 0.558148092, 0.945619588},
	{0.46666708, 0.604562568, 0.968154911},
	{0.509635204, 0.648280772, 0.98478814},
	{0.552953156, 0.688929332, 0.995375608},
	{0.596262162, 0.726149107, 0.999836203},
	{0.639176211, 0.759599947, 0.998151185},
	{0.681291281, 0.788964712, 0.990363227},
	{0.722193294, 0.813952739, 0.976574709},
	{0.761464949, 0.834302879, 0.956945269},
	{0.798691636, 0.849786142, 0.931688648},
	{0.833466556, 0.860207984, 0.901068838},
	{0.865395197, 0.86541021, 0.865395561},
	{0.897787179, 0.848937047, 0.820880546},
	{0.924127593, 0.827384882, 0.774508472},
	{0.944468518, 0.800927443, 0.726736146},
	{0.958852946, 0.769767752, 0.678007945},
	{0.96732803, 0.734132809, 0.628751763},
	{0.969954137, 0.694266682, 0.579375448},
	{0.966811177, 0.650421156, 0.530263762},
	{0.958003065, 0.602842431, 0.481775914},
	{0.943660866, 0.551750968, 0.434243684},
	{0.923944917, 0.49730856, 0.387970225},
	{0.89904617, 0.439559467, 0.343229596},
	{0.869186849, 0.378313092, 0.300267182},
	{0.834620542, 0.312874446, 0.259301199},
	{0.795631745, 0.24128379, 0.220525627},
	{0.752534934, 0.157246067, 0.184115123},
	{0.705673158, 0.01555616, 0.150232812},
})

// segment builds a continuous anchor list from (x, y) pairs.
func segment(points ...[2]float64) []Anchor {
	anchors := make([]Anchor, len(points))
	for i, p := range points {
		anchors[i] = Anchor{X: p[0], Below: p[1], Above: p[1]}
	}
	return anchors
}

var hotData = SegmentData{
	Red:   segment([2]float64{0, 0.0416}, [2]float64{0.365079, 1}, [2]float64{1, 1}),
	Green: segment([2]float64{0, 0}, [2]float64{0.365079, 0}, [2]float64{0.746032, 1}, [2]float64{1, 1}),
	Blue:  segment([2]float64{0, 0}, [2]float64{0.746032, 0}, [2]float64{1, 1}),
}

var copperData = SegmentData{
	Red:   segment([2]float64{0, 0}, [2]float64{0.809524, 1}, [2]float64{1, 1}),
	Green: segment([2]float64{0, 0}, [2]float64{1, 0.7812}),
	Blue:  segment([2]float64{0, 0}, [2]float64{1, 0.4975}),
}

var boneData = SegmentData{
	Red:   segment([2]float64{0, 0}, [2]float64{0.746032, 0.652778}, [2]float64{1, 1}),
	Green: segment([2]float64{0, 0}, [2]float64{0.365079, 0.319444}, [2]float64{0.746032, 0.777778}, [2]float64{1, 1}),
	Blue:  segment([2]float64{0, 0}, [2]float64{0.365079, 0.444444}, [2]float64{1, 1}),
}

var jetData = SegmentData{
	Red:   segment([2]float64{0, 0}, [2]float64{0.35, 0}, [2]float64{0.66, 1}, [2]float64{0.89, 1}, [2]float64{1, 0.5}),
	Green: segment([2]float64{0, 0}, [2]float64{0.125, 0}, [2]float64{0.375, 1}, [2]float64{0.64, 1}, [2]float64{0.91, 0}, [2]float64{1, 0}),
	Blue:  segment([2]float64{0, 0.5}, [2]float64{0.11, 1}, [2]float64{0.34, 1}, [2]float64{0.65, 0}, [2]float64{1, 0}),
}

// rainbow channels: red |2x - 0.5|, green sin(pi x), blue cos(pi x / 2).
func rainbow() *Functional {
	return NewFunctional("rainbow",
		func(x float64) float64 { return math.Abs(2*x - 0.5) },
		func(x float64) float64 { return math.Sin(x * math.Pi) },
		func(x float64) float64 { return math.Cos(x * math.Pi / 2) },
	)
}

func gnuplot() *Functional {
	return NewFunctional("gnuplot",
		math.Sqrt,
		func(x float64) float64 { return x * x * x },
		func(x float64) float64 { return math.Sin(2 * math.Pi * x) },
	)
}

// cubehelix implements D. A. Green's scheme (2011) with start 0.5,
// rotations -1.5, hue 1 and gamma 1.
func cubehelix() *Functional {
	const (
		gamma = 1.0
		start = 0.5
		rot   = -1.5
		hue   = 1.0
	)
	channel := func(p0, p1 float64) ChannelFunc {
		return func(x float64) float64 {
			xg := math.Pow(x, gamma)
			a := hue * xg * (1 - xg) / 2
			phi := 2 * math.Pi * (start/3 + rot*x)
			return xg + a*(p0*math.Cos(phi)+p1*math.Sin(phi))
		}
	}
	return NewFunctional("cubehelix",
		channel(-0.14861, 1.78277),
		channel(-0.29227, -0.90649),
		channel(1.97294, 0.0),
	)
}

func functionalMaps() []*Functional {
	return []*Functional{
		rainbow(),
		gnuplot(),
		cubehelix(),
		NewFunctional("spring", constant(1), linear(1, 0), linear(-1, 1)),
		NewFunctional("summer", linear(1, 0), linear(0.5, 0.5), constant(0.4)),
		NewFunctional("autumn", constant(1), linear(1, 0), constant(0)),
		NewFunctional("winter", constant(0), linear(1, 0), linear(-0.5, 1)),
		NewFunctional("cool", linear(1, 0), linear(-1, 1), constant(1)),
		NewFunctional("afmhot", linear(2, 0), linear(2, -0.5), linear(2, -1)),
		NewFunctional("gist_heat", linear(1.5, 0), linear(2, -1), linear(4, -3)),
	}
}
