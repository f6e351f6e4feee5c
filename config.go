package seismic

// Axis identifies one of the three vertical axes a trace may be
// written on (§4.7).
type Axis int

const (
	AxisTime Axis = iota
	AxisDepth
	AxisShiftedTime
)

// OutputFlags toggles per-axis and per-stack writer output (§6
// "output flags").
type OutputFlags struct {
	Time, Depth, ShiftedTime             bool
	TimeStack, DepthStack, ShiftedStack  bool
	StormTime, StormDepth, StormShifted  bool
	ReflectionsOutput                    bool
}

// SegyGeometry carries the inline/xline survey geometry (§6 "segy
// geometry"): start, step and maximum for each direction, plus a UTM
// precision value. No inline/crossline direction flag is carried.
type SegyGeometry struct {
	ILStart, ILStep   int
	XLStart, XLStep   int
	ILMax, XLMax      int
	UTMPrecision      float64
}

// Config is the single settings surface populated from CLI flags
// (cmd/main.go's buildConfig), enumerating every option in §6.
type Config struct {
	// Reflection / moveout path
	NMOCorrect bool
	PSSeismic  bool

	// Shifted-time axis
	TwtFile string

	// Memory-budget decision
	MemoryLimit int64

	// Noise injection
	WhiteNoise bool
	StdDev     float64
	Seed       int64

	// Wavelet
	WaveletFile   string
	PeakFrequency float64
	WaveletScale  float64

	// Offsets / angles
	Offsets []float64
	Angles  []float64

	// Axis sampling
	T0, Dt   float64
	Nt       int
	Z0, Dz   float64
	Nz       int

	Output OutputFlags
	Segy   *SegyGeometry

	OutputPrefix string
	OutputSuffix string

	EarthModelDir string
}

// RadianToDegree converts an internal radian angle to the degrees used
// in output file naming (§6).
const RadianToDegree = 180.0 / 3.14159265358979323846
