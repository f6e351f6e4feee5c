package seismic

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Wavelet represents the source pulse convolved with reflectivity to
// synthesize a trace (§4.1). It is either a parametric Ricker pulse or
// a sampled wavelet loaded from file and upsampled onto a finer grid.
type Wavelet struct {
	isRicker      bool
	peakFrequency float64

	// depthAdjustmentFactor (L) is the time half-width beyond which the
	// wavelet is treated as zero; the convolution engine prunes any
	// reflector outside it (§4.4, §4.5).
	depthAdjustmentFactor float64

	// Sampled-wavelet fields; unused when isRicker is true.
	samples []float64
	time    []float64
	dtW     float64
	i0      int
}

// NewRickerWavelet constructs a Ricker wavelet with peak frequency fp
// (Hz). L = 1200/fp per §4.1.
func NewRickerWavelet(fp float64) *Wavelet {
	return &Wavelet{
		isRicker:              true,
		peakFrequency:         fp,
		depthAdjustmentFactor: 1200.0 / fp,
	}
}

// NewSampledWavelet builds a sampled Wavelet from raw samples read from
// a wavelet file (§6): N+1 samples, a 1-based-to-0-based sample index
// for t=0, and the sample interval in ms. It derives peak frequency and
// depth adjustment factor, then upsamples by the integer factor
// s = ceil(dtW) via FFT zero-padding, exactly as §4.1 describes.
func NewSampledWavelet(samples []float64, i0ZeroBased int, dtW float64) *Wavelet {
	w := &Wavelet{
		samples: samples,
		i0:      i0ZeroBased,
		dtW:     dtW,
	}

	w.peakFrequency = findPeakFrequency(samples, i0ZeroBased)
	w.depthAdjustmentFactor = findDepthAdjustmentFactor(samples, dtW)

	scale := int(math.Ceil(dtW))
	if scale < 1 {
		scale = 1
	}
	w.samples = upsample(samples, scale)
	w.dtW = dtW / float64(scale)
	w.i0 = i0ZeroBased * scale

	w.time = make([]float64, len(w.samples))
	for j := range w.time {
		w.time[j] = w.dtW * float64(j-w.i0)
	}

	return w
}

// PeakFrequency returns the wavelet's nominal peak frequency. For a
// sampled wavelet this is FindPeakFrequency's 1000/max|sample| value,
// which is dimensionally odd (it behaves like an amplitude, not a
// frequency) — preserved for compatibility per spec.md §9; callers
// must treat it as nominal only, never as a physical Hz value to feed
// back into e.g. NewRickerWavelet.
func (w *Wavelet) PeakFrequency() float64 { return w.peakFrequency }

// DepthAdjustmentFactor returns L, the time half-width outside which
// the wavelet is pruned from the convolution sum.
func (w *Wavelet) DepthAdjustmentFactor() float64 { return w.depthAdjustmentFactor }

// IsRicker reports whether the wavelet is the parametric Ricker form.
func (w *Wavelet) IsRicker() bool { return w.isRicker }

// Evaluate returns the wavelet amplitude at time offset t (ms).
func (w *Wavelet) Evaluate(t float64) float64 {
	if w.isRicker {
		rickerConst := math.Pi * math.Pi * w.peakFrequency * w.peakFrequency * 1e-6
		c := rickerConst * t * t
		return (1 - 2*c) * math.Exp(-c)
	}

	if len(w.samples) == 0 || w.dtW <= 0 {
		return 0
	}

	if t < w.time[0] {
		return w.samples[0]
	}

	start := (t - w.time[0]) / w.dtW
	i := int(start)
	if i < len(w.samples)-1 && t > w.time[i] {
		i++
	}
	if i >= len(w.samples) {
		return 0
	}

	if i > 0 {
		a := (w.time[i] - t) / (w.time[i] - w.time[i-1])
		return a*w.samples[i-1] + (1-a)*w.samples[i]
	}
	return w.samples[0]
}

// findPeakFrequency reproduces FindPeakFrequency's 1000/max|sample|
// computation over the tail of the wavelet starting at
// sampleNumberForZeroTime-1, per spec.md §9's open question: the
// result is dimensionally odd and preserved as-is.
func findPeakFrequency(samples []float64, i0 int) float64 {
	start := i0 - 1
	if start < 0 {
		start = 0
	}
	if start >= len(samples) {
		return 0
	}
	maxVal := findAbsMax(samples[start:])
	if maxVal == 0 {
		return 0
	}
	return 1000.0 / maxVal
}

func findAbsMax(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if math.Abs(v) > max {
			max = math.Abs(v)
		}
	}
	return max
}

// findDepthAdjustmentFactor reproduces FindDepthAdjustmentFactor for a
// sampled wavelet. The original's reverse scan underflows an unsigned
// index past 0 (spec.md §9); this reimplementation scans backward over
// a signed index and stops at the first qualifying sample from the
// end, i.e. the last qualifying index, so no underflow can occur.
func findDepthAdjustmentFactor(samples []float64, dtW float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	waveletMax := findAbsMax(samples)
	threshold := waveletMax * 0.01

	start := 0
	for i, v := range samples {
		if math.Abs(v) > threshold {
			start = i
			break
		}
	}

	end := len(samples) - 1
	for i := len(samples) - 1; i >= 0; i-- {
		if math.Abs(samples[i]) > threshold {
			end = i
			break
		}
	}

	return float64(end-start+1) * dtW
}

// upsample reproduces ResampleTrace: forward real FFT (n/2+1
// coefficients), keep the coefficients below index n/2, zero-pad to
// len(wavelet)*scale, inverse FFT, scale by `scale`. Only the top
// coefficient (the Nyquist bin for even n) is dropped; every lower
// frequency is kept. The truncation point at n/2 is preserved as-is
// for compatibility with the original (spec.md §9's third open
// question).
func upsample(wavelet []float64, scale int) []float64 {
	n := len(wavelet)
	fft := fourier.NewFFT(n)
	spectrum := fft.Coefficients(nil, wavelet)

	fineLen := n * scale
	fineSpectrum := make([]complex128, fineLen/2+1)
	half := n / 2
	if half > len(fineSpectrum) {
		half = len(fineSpectrum)
	}
	copy(fineSpectrum[:half], spectrum[:half])

	fineFFT := fourier.NewFFT(fineLen)
	out := fineFFT.Sequence(nil, fineSpectrum)

	for i := range out {
		out[i] *= float64(scale)
	}
	return out
}
