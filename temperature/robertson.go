// SPDX-License-Identifier: MIT

package temperature

import (
	"math"

	"github.com/katalvlaran/chroma/ndarray"
)

// isotemperatureLine is one row of Robertson's table: reciprocal
// temperature r (mired), the CIE 1960 UCS point (u, v) on the Planckian
// locus and the slope t of the isotemperature line through it.
type isotemperatureLine struct {
	r, u, v, t float64
}

var robertsonLines = [...]isotemperatureLine{
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
	{325, 0.24792, 0.34655, -2.4681},
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

// UvToCCTRobertson1968 returns [CCT, Δuv] for CIE 1960 UCS chromaticities
// (..., 2) by interpolating between the two isotemperature lines that
// bracket each point. Δuv is positive above the Planckian locus.
//
// Points hotter than the first line get an infinite CCT; points colder
// than the last line are clamped to it.
//
// Errors: ndarray.ErrChannels.
func UvToCCTRobertson1968(uv *ndarray.Array) (*ndarray.Array, error) {
	out, err := ndarray.MapVec(uv, 2, 2, func(dst, p []float64) {
		dst[0], dst[1] = robertson(p[0], p[1])
	})
	if err != nil {
		return nil, temperatureErrorf(opRobertson, err)
	}

	return out, nil
}

func robertson(u, v float64) (T, Duv float64) {
	var i int
	var dt, du, dv, lastDt, lastDu, lastDv float64
	last := len(robertsonLines) - 1
	for i = 1; i <= last; i++ {
		line := robertsonLines[i]
		du, dv = 1, line.t
		n := math.Hypot(du, dv)
		du, dv = du/n, dv/n
		dt = -(u-line.u)*dv + (v-line.v)*du
		if dt <= 0 || i == last {
			break
		}
		lastDt, lastDu, lastDv = dt, du, dv
	}
	dt = -math.Min(dt, 0)
	f := 0.0
	if lastDt+dt != 0 {
		f = dt / (lastDt + dt)
	}
	prev, line := robertsonLines[i-1], robertsonLines[i]
	T = 1e6 / (prev.r*f + line.r*(1-f))

	uu := u - (prev.u*f + line.u*(1-f))
	vv := v - (prev.v*f + line.v*(1-f))
	du = du*(1-f) + lastDu*f
	dv = dv*(1-f) + lastDv*f
	n := math.Hypot(du, dv)

	return T, -(uu*du + vv*dv) / n
}
