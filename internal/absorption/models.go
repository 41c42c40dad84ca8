package absorption

import "math"

// nepersToDB converts an amplitude attenuation in Np to dB.
const nepersToDB = 8.686

// FisherSimmons returns the Fisher and Simmons (1977) absorption [dB/m] for
// frequency [Hz], temperature [°C] and depth [m]. Pressure is taken as
// depth/10 atm. The published sum is in Np/m and is converted here.
func FisherSimmons(frequencyHz, temperatureC, depthM float64) float64 {
	t := temperatureC
	p := depthM / 10
	f2 := frequencyHz * frequencyHz
	tk := t + 273.1

	a1 := 1.03e-8 + 2.36e-10*t - 5.22e-12*t*t
	a2 := 5.62e-8 + 7.52e-10*t
	a3 := (55.9 - 2.37*t + 4.77e-2*t*t - 3.48e-4*t*t*t) * 1e-15

	f1 := 1.32e3 * tk * math.Exp(-1700/tk)
	fm := 1.55e7 * tk * math.Exp(-3052/tk)

	p2 := 1 - 10.3e-4*p + 3.7e-7*p*p
	p3 := 1 - 3.84e-4*p + 7.57e-8*p*p

	np := a1*f1*f2/(f1*f1+f2) + a2*p2*fm*f2/(fm*fm+f2) + a3*p3*f2
	return nepersToDB * np
}

// AinslieMcColm returns the Ainslie and McColm (1998) absorption [dB/km] for
// frequency [kHz], temperature [°C], salinity [ppt], depth [km] and pH.
func AinslieMcColm(frequencyKHz, temperatureC, salinityPpt, depthKm, pH float64) float64 {
	t := temperatureC
	f2 := frequencyKHz * frequencyKHz
	f1 := 0.78 * math.Sqrt(salinityPpt/35) * math.Exp(t/26)
	fm := 42 * math.Exp(t/17)

	boric := 0.106 * f1 * f2 / (f1*f1 + f2) * math.Exp((pH-8)/0.56)
	mgso4 := 0.52 * (1 + t/43) * (salinityPpt / 35) * fm * f2 / (fm*fm + f2) * math.Exp(-depthKm/6)
	water := 0.00049 * f2 * math.Exp(-(t/27 + depthKm/17))
	return boric + mgso4 + water
}

// Thorp returns the Thorp absorption [dB/km] for frequency [kHz], valid at
// about 4 °C and 1000 m depth.
func Thorp(frequencyKHz float64) float64 {
	f2 := frequencyKHz * frequencyKHz
	return 0.11*f2/(1+f2) + 44*f2/(4100+f2) + 2.75e-4*f2 + 0.003
}

// ISO 9613-1 reference conditions.
const (
	isoRefTempK     = 293.15
	isoTriplePointK = 273.16
	isoRefPressure  = 101.325
)

// AirISO9613 returns the atmospheric absorption [dB/m] of ISO 9613-1 for
// frequency [Hz], temperature [°C], relative humidity [%] and ambient
// pressure [kPa].
func AirISO9613(frequencyHz, temperatureC, relativeHumidityPct, pressureKPa float64) float64 {
	tk := temperatureC + 273.15
	tr := tk / isoRefTempK
	pr := pressureKPa / isoRefPressure
	f2 := frequencyHz * frequencyHz

	psat := math.Pow(10, -6.8346*math.Pow(isoTriplePointK/tk, 1.261)+4.6151)
	h := relativeHumidityPct * psat / pr

	frO := pr * (24 + 4.04e4*h*(0.02+h)/(0.391+h))
	frN := pr * math.Pow(tr, -0.5) * (9 + 280*h*math.Exp(-4.170*(math.Pow(tr, -1.0/3)-1)))

	classical := 1.84e-11 / pr * math.Sqrt(tr)
	oxygen := 0.01275 * math.Exp(-2239.1/tk) / (frO + f2/frO)
	nitrogen := 0.1068 * math.Exp(-3352/tk) / (frN + f2/frN)
	return nepersToDB * f2 * (classical + math.Pow(tr, -2.5)*(oxygen+nitrogen))
}
