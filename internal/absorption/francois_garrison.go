package absorption

import "math"

// Pure-water viscous absorption coefficients, split at 20 °C.
var (
	pureWaterCold = [4]float64{4.937e-4, -2.59e-5, 9.11e-7, -1.50e-8}
	pureWaterWarm = [4]float64{3.964e-4, -1.146e-5, 1.45e-7, -6.5e-10}
)

// fgSoundSpeed is the simplified sound speed Francois and Garrison use inside
// the relaxation amplitudes.
func fgSoundSpeed(temperatureC, salinityPpt, depthM float64) float64 {
	return 1412 + 3.21*temperatureC + 1.19*salinityPpt + 0.0167*depthM
}

// RelaxationFrequencyBoricAcid returns the boric acid relaxation frequency
// [kHz] for temperature [°C] and salinity [ppt].
func RelaxationFrequencyBoricAcid(temperatureC, salinityPpt float64) float64 {
	return 2.8 * math.Sqrt(salinityPpt/35) * math.Pow(10, 4-1245/(temperatureC+273))
}

// RelaxationFrequencyMagnesiumSulfate returns the magnesium sulfate
// relaxation frequency [kHz] for temperature [°C] and salinity [ppt].
func RelaxationFrequencyMagnesiumSulfate(temperatureC, salinityPpt float64) float64 {
	return 8.17 * math.Pow(10, 8-1990/(temperatureC+273)) / (1 + 0.0018*(salinityPpt-35))
}

// pureWater is the viscous term A3·P3·f² [dB/km]. T == 20 uses the cold set.
func pureWater(frequencyKHz, temperatureC, depthM float64) float64 {
	a := pureWaterCold
	if temperatureC > 20 {
		a = pureWaterWarm
	}
	t := temperatureC
	a3 := a[0] + a[1]*t + a[2]*t*t + a[3]*t*t*t
	p3 := 1 - 3.83e-5*depthM + 4.9e-10*depthM*depthM
	return a3 * p3 * frequencyKHz * frequencyKHz
}

// FreshWaterFrancoisGarrison returns the absorption of pure water [dB/km]
// for frequency [kHz], temperature [°C] and depth [m].
func FreshWaterFrancoisGarrison(frequencyKHz, temperatureC, depthM float64) float64 {
	return pureWater(frequencyKHz, temperatureC, depthM)
}

// SeaWaterFrancoisGarrison returns the absorption of sea water [dB/km] for
// frequency [kHz], temperature [°C], salinity [ppt], depth [m] and pH.
func SeaWaterFrancoisGarrison(frequencyKHz, temperatureC, salinityPpt, depthM, pH float64) float64 {
	f2 := frequencyKHz * frequencyKHz
	c := fgSoundSpeed(temperatureC, salinityPpt, depthM)

	// boric acid, P1 = 1
	a1 := 8.86 / c * math.Pow(10, 0.78*pH-5)
	fb := RelaxationFrequencyBoricAcid(temperatureC, salinityPpt)
	boric := a1 * fb * f2 / (f2 + fb*fb)

	// magnesium sulfate
	a2 := 21.44 * salinityPpt / c * (1 + 0.025*temperatureC)
	p2 := 1 - 1.37e-4*depthM + 6.2e-9*depthM*depthM
	fm := RelaxationFrequencyMagnesiumSulfate(temperatureC, salinityPpt)
	mgso4 := a2 * p2 * fm * f2 / (f2 + fm*fm)

	return boric + mgso4 + pureWater(frequencyKHz, temperatureC, depthM)
}
