package sonar

import "math"

// referenceIntensity is the plane-wave intensity of 1 µPa rms in sea water [W/m²].
const referenceIntensity = 0.67e-18

// SourceLevelFromPower returns the source level [dB re 1 µPa at 1 m] of a
// projector radiating powerW watts with directivity index [dB].
func SourceLevelFromPower(powerW, directivityIndexDB float64) float64 {
	return 170.8 + 10*math.Log10(powerW) + directivityIndexDB
}

// IntensityLevel returns the level [dB] of an intensity [W/m²] relative to
// the 1 µPa plane-wave intensity.
func IntensityLevel(intensityWm2 float64) float64 {
	return 10 * math.Log10(intensityWm2/referenceIntensity)
}

// SoundPressureLevel returns 20·log10(p/pref) [dB].
func SoundPressureLevel(pressurePa, referencePa float64) float64 {
	return 20 * math.Log10(pressurePa/referencePa)
}

// IntensityFromPressure returns the plane-wave intensity p²/(ρc) [W/m²].
func IntensityFromPressure(pressurePa, densityKgM3, soundSpeedMS float64) float64 {
	return pressurePa * pressurePa / (densityKgM3 * soundSpeedMS)
}

// NoiseLevelInBand converts a noise spectrum level [dB/Hz] into the level
// in a band of bandwidthHz.
func NoiseLevelInBand(spectrumLevelDB, bandwidthHz float64) float64 {
	return spectrumLevelDB + 10*math.Log10(bandwidthHz)
}

// Wavelength returns c/f [m].
func Wavelength(soundSpeedMS, frequencyHz float64) float64 {
	return soundSpeedMS / frequencyHz
}

// DopplerShiftActive returns the two-way Doppler shift [Hz] of an echo from
// a target closing at radialSpeedMS.
func DopplerShiftActive(frequencyHz, radialSpeedMS, soundSpeedMS float64) float64 {
	return 2 * radialSpeedMS * frequencyHz / soundSpeedMS
}
