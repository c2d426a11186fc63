// Package analysis provides Fourier tools for the diffusion operator.
//
// The explicit operator F is circulant, so its eigenvectors are the discrete
// Fourier modes of the ring. Mode k is multiplied by
//
//	λ_k = 1 - 2α(1 - cos(2πk/N))
//
// on every step. The tools here compare that prediction with measured spectra:
//
//   - [PowerSpectrum]: mode amplitudes of a density via FFT
//   - [ModeFactor]: predicted per-step amplification of mode k
//   - [MeasuredFactors]: amplification observed between two densities
//   - [MaxFactor]: worst amplification over all modes
//
// # Stability
//
// The scheme is stable when no mode grows:
//
//	if analysis.MaxFactor(alpha, n) > 1 {
//	    // densities will oscillate and diverge
//	}
package analysis
