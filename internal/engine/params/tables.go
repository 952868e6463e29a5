package params

var (
	projectionEnum = []string{"Orthographic", "Perspective"}
	polarityEnum   = []string{"Normal", "Inverted"}
	waveEnum       = []string{"Square", "Triangle", "Saw", "Ramp", "Sine"}
	courseEnum     = []string{
		"/4", "/3", "/2", "x1",
		"x2", "x3", "x4", "x5", "x6", "x7", "x8", "x9",
		"x10", "x11", "x12", "x13", "x14", "x15", "x16", "x17",
		"x18", "x19", "x20", "x21", "x22", "x23", "x24", "x25",
		"x26", "x27", "x28", "x29", "x30", "x31", "x32",
	}
)

func common() []Descriptor {
	return []Descriptor{
		Frequency:   {Name: "Frequency", Min: 1, Max: 1000, Default: 50, Unit: UnitHz},
		RotX:        {Name: "RotX", Min: 0, Max: 360, Default: 0, Unit: UnitDegrees},
		RotY:        {Name: "RotY", Min: 0, Max: 360, Default: 0, Unit: UnitDegrees},
		RotZ:        {Name: "RotZ", Min: 0, Max: 360, Default: 0, Unit: UnitDegrees},
		Distance:    {Name: "Distance", Min: 1, Max: 1000, Default: 500},
		Projection:  {Name: "Projection", Min: 0, Max: 1, Default: 1, Unit: UnitEnum, Enum: projectionEnum},
		Polarity:    {Name: "Polarity", Min: 0, Max: 1, Default: 0, Unit: UnitEnum, Enum: polarityEnum},
		XOut:        {Name: "X Out", Min: 0, Max: NumBuses - 1, Default: 12},
		YOut:        {Name: "Y Out", Min: 0, Max: NumBuses - 1, Default: 13},
		IntOut:      {Name: "Int Out", Min: 0, Max: NumBuses - 1, Default: 14},
		BlankWindow: {Name: "BlankWindow", Min: 0, Max: 1000, Default: 10, Unit: UnitMicroseconds},
		BlankPhase:  {Name: "BlankPhase", Min: -1000, Max: 1000, Default: 0, Unit: UnitMicroseconds},
	}
}

func commonPages() []Page {
	return []Page{
		{Name: "Frequency", Indices: []int{Frequency}},
		{Name: "Rotation", Indices: []int{RotX, RotY, RotZ}},
		{Name: "Camera", Indices: []int{Distance, Projection, Polarity}},
		{Name: "Routing", Indices: []int{XOut, YOut, IntOut}},
		{Name: "Blanking", Indices: []int{BlankWindow, BlankPhase}},
	}
}

// Polyhedra is the parameter table of the five-solid tracer.
var Polyhedra = &Table{
	Params: append(common(),
		Descriptor{Name: "Solid", Min: 0, Max: 499, Default: 0},
	),
	Pages: append(commonPages(),
		Page{Name: "Solid", Indices: []int{Solid}},
	),
}

// Cube is the parameter table of the segment cube tracer.
var Cube = &Table{
	Params: append(common(),
		Descriptor{Name: "Resolution", Min: 0, Max: 100, Default: 0},
		Descriptor{Name: "AmpMod", Min: 0, Max: 127, Default: 0},
		Descriptor{Name: "AmpCorse", Min: 0, Max: 34, Default: 4, Unit: UnitEnum, Enum: courseEnum},
		Descriptor{Name: "AmpFine", Min: -100, Max: 100, Default: 0},
		Descriptor{Name: "AmpWave", Min: 0, Max: 4, Default: 4, Unit: UnitEnum, Enum: waveEnum},
		Descriptor{Name: "AmpPhase", Min: 0, Max: 360, Default: 0, Unit: UnitDegrees},
	),
	Pages: append(commonPages(),
		Page{Name: "Quantize", Indices: []int{Resolution}},
		Page{Name: "AmpMod", Indices: []int{AmpMod, AmpCorse, AmpFine, AmpWave, AmpPhase}},
	),
}
