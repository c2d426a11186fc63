package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/ringsim/internal/dynamo"
)

// PowerSpectrum returns |X_k| for k = 0..N/2 of the density p.
func PowerSpectrum(p dynamo.State) []float64 {
	if len(p) == 0 {
		return nil
	}
	x := fft.FFTReal(p)
	ps := make([]float64, len(x)/2+1)
	for k := range ps {
		ps[k] = cmplx.Abs(x[k])
	}
	return ps
}

// ModeFactor is the per-step amplification of Fourier mode k on n sites.
func ModeFactor(alpha float64, n, k int) float64 {
	return 1 - 2*alpha*(1-math.Cos(2*math.Pi*float64(k)/float64(n)))
}

// ModeFactors returns ModeFactor for k = 0..n/2.
func ModeFactors(alpha float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	f := make([]float64, n/2+1)
	for k := range f {
		f[k] = ModeFactor(alpha, n, k)
	}
	return f
}

// MaxFactor returns the largest |λ_k| over the nonzero modes.
func MaxFactor(alpha float64, n int) float64 {
	worst := 0.0
	for k := 1; k <= n/2; k++ {
		worst = math.Max(worst, math.Abs(ModeFactor(alpha, n, k)))
	}
	return worst
}

// MeasuredFactors returns Re(after_k / before_k) for k = 0..N/2. Modes whose
// amplitude in before is below tol are reported as NaN.
func MeasuredFactors(before, after dynamo.State, tol float64) []float64 {
	if len(before) == 0 || len(before) != len(after) {
		return nil
	}
	xb, xa := fft.FFTReal(before), fft.FFTReal(after)
	f := make([]float64, len(xb)/2+1)
	for k := range f {
		if cmplx.Abs(xb[k]) < tol {
			f[k] = math.NaN()
			continue
		}
		f[k] = real(xa[k] / xb[k])
	}
	return f
}

// RelaxationTime is the e-folding time of the slowest decaying mode, in the
// same time units as dt. It is +Inf when that mode does not decay.
func RelaxationTime(alpha float64, n int, dt float64) float64 {
	if n < 2 {
		return math.Inf(1)
	}
	l := math.Abs(ModeFactor(alpha, n, 1))
	if l >= 1 || l == 0 {
		if l == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return -dt / math.Log(l)
}
