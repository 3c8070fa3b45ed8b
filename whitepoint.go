package chroma

import (
	"fmt"
	"math"
)

// WhitePointFromTemperature returns the chromaticity of a daylight
// illuminant with the given correlated color temperature in kelvin,
// valid for 4000 K to 25000 K. The luminance component is 1.
func WhitePointFromTemperature(kelvin float64) (XyY, error) {
	t := kelvin
	t2 := t * t
	t3 := t2 * t

	var x float64
	switch {
	case t >= 4000 && t <= 7000:
		x = -4.6070*(1e9/t3) + 2.9678*(1e6/t2) + 0.09911*(1e3/t) + 0.244063
	case t > 7000 && t <= 25000:
		x = -2.0064*(1e9/t3) + 1.9018*(1e6/t2) + 0.24748*(1e3/t) + 0.237040
	default:
		return XyY{}, fmt.Errorf("chroma: temperature %g K outside the 4000-25000 K daylight range", kelvin)
	}
	y := -3.000*(x*x) + 2.870*x - 0.275
	return XyY{X: x, Y: y, Lum: 1}, nil
}

// isoTemp is one Robertson isotemperature line: reciprocal temperature
// in mired, the intersection with the blackbody locus in CIE 1960 uv,
// and the line's slope.
type isoTemp struct {
	mirek, u, v, t float64
}

var isoTempLines = []isoTemp{
	{0, 0.18006, 0.26352, -0.24341},
	{10, 0.18066, 0.26589, -0.25479},
	{20, 0.18133, 0.26846, -0.26876},
	{30, 0.18208, 0.27119, -0.28539},
	{40, 0.18293, 0.27407, -0.30470},
	{50, 0.18388, 0.27709, -0.32675},
	{60, 0.18494, 0.28021, -0.35156},
	{70, 0.18611, 0.28342, -0.37915},
	{80, 0.18740, 0.28668, -0.40955},
	{90, 0.18880, 0.28997, -0.44278},
	{100, 0.19032, 0.29326, -0.47888},
	{125, 0.19462, 0.30141, -0.58204},
	{150, 0.19962, 0.30921, -0.70471},
	{175, 0.20525, 0.31647, -0.84901},
	{200, 0.21142, 0.32312, -1.0182},
	{225, 0.21807, 0.32909, -1.2168},
	{250, 0.22511, 0.33439, -1.4512},
	{275, 0.23247, 0.33904, -1.7298},
	{300, 0.24010, 0.34308, -2.0637},
	{325, 0.24702, 0.34655, -2.4681},
	{350, 0.25591, 0.34951, -2.9641},
	{375, 0.26400, 0.35200, -3.5814},
	{400, 0.27218, 0.35407, -4.3633},
	{425, 0.28039, 0.35577, -5.3762},
	{450, 0.28863, 0.35714, -6.7262},
	{475, 0.29685, 0.35823, -8.5955},
	{500, 0.30505, 0.35907, -11.324},
	{525, 0.31320, 0.35968, -15.628},
	{550, 0.32129, 0.36011, -23.325},
	{575, 0.32931, 0.36038, -40.770},
	{600, 0.33724, 0.36051, -116.45},
}

// TemperatureFromWhitePoint computes the correlated color temperature
// of a white point by Robertson's method, interpolating between the
// two isotemperature lines that bracket the chromaticity. White points
// too far off the blackbody locus (beyond 600 mired) are rejected.
func TemperatureFromWhitePoint(wp XyY) (float64, error) {
	xs, ys := wp.X, wp.Y

	// CIE 1960 uv coordinates
	us := (2 * xs) / (-xs + 6*ys + 1.5)
	vs := (3 * ys) / (-xs + 6*ys + 1.5)

	var di, mi float64
	for j, line := range isoTempLines {
		dj := ((vs - line.v) - line.t*(us-line.u)) / math.Sqrt(1+line.t*line.t)
		if j != 0 && di/dj < 0 {
			return 1e6 / (mi + (di/(di-dj))*(line.mirek-mi)), nil
		}
		di = dj
		mi = line.mirek
	}
	return 0, fmt.Errorf("chroma: white point (%g, %g) is not near the blackbody locus", xs, ys)
}
