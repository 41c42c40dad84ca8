package sonar

import "math"

// DetectionIndex returns d = ((Ms - Mn)/σ)², the squared separation of the
// signal-plus-noise and noise-only means in units of the noise deviation.
func DetectionIndex(signalMean, noiseMean, noiseStdDev float64) float64 {
	z := (signalMean - noiseMean) / noiseStdDev
	return z * z
}

// DetectionThresholdKnownSignal is the threshold [dB] for a known signal in
// Gaussian noise with a matched filter: 10·log10(d/2t).
func DetectionThresholdKnownSignal(detectionIndex, durationS float64) float64 {
	return 10 * math.Log10(detectionIndex/(2*durationS))
}

// DetectionThresholdUnknownSignal is the threshold [dB] for an unknown
// signal with an energy detector: 5·log10(dW/t).
func DetectionThresholdUnknownSignal(detectionIndex, bandwidthHz, durationS float64) float64 {
	return 5 * math.Log10(detectionIndex*bandwidthHz/durationS)
}

// SignalExcessActive is SL - 2TL + TS - (NL - DI) - DT.
func SignalExcessActive(sourceLevel, transmissionLoss, targetStrength, noiseLevel, directivityIndex, detectionThreshold float64) float64 {
	return sourceLevel - 2*transmissionLoss + targetStrength - (noiseLevel - directivityIndex) - detectionThreshold
}

// SignalExcessPassive is SL - TL - (NL - DI) - DT.
func SignalExcessPassive(sourceLevel, transmissionLoss, noiseLevel, directivityIndex, detectionThreshold float64) float64 {
	return sourceLevel - transmissionLoss - (noiseLevel - directivityIndex) - detectionThreshold
}
