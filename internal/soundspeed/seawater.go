package soundspeed

import "math"

// SeaWaterCoppens returns the speed of sound [m/s] from Coppens (1981).
// Depth is in km, salinity in ppt and temperature in °C.
func SeaWaterCoppens(depthKm, salinityPpt, temperatureC float64) float64 {
	t := temperatureC / 10
	s35 := salinityPpt - 35
	d := depthKm
	c0 := 1449.05 + 45.7*t - 5.21*t*t + 0.23*t*t*t + (1.333-0.126*t+0.009*t*t)*s35
	return c0 + (16.23+0.253*t)*d + (0.213-0.1*t)*d*d + (0.016+0.0002*s35)*s35*t*d
}

// SeaWaterMackenzie returns the nine-term Mackenzie (1981) speed of sound
// [m/s] for depth [m], salinity [ppt] and temperature [°C].
func SeaWaterMackenzie(depthM, salinityPpt, temperatureC float64) float64 {
	t := temperatureC
	s35 := salinityPpt - 35
	d := depthM
	return 1448.96 + 4.591*t - 5.304e-2*t*t + 2.374e-4*t*t*t + 1.340*s35 +
		1.630e-2*d + 1.675e-7*d*d - 1.025e-2*t*s35 - 7.139e-13*t*d*d*d
}

// SeaWaterMedwin returns the Medwin (1975) speed of sound [m/s] for depth
// [m], salinity [ppt] and temperature [°C].
func SeaWaterMedwin(depthM, salinityPpt, temperatureC float64) float64 {
	t := temperatureC
	return 1449.2 + 4.6*t - 0.055*t*t + 0.00029*t*t*t +
		(1.34-0.01*t)*(salinityPpt-35) + 0.016*depthM
}

// SeaWaterLeroy69 returns the Leroy (1969) speed of sound [m/s] for depth
// [m], salinity [ppt] and temperature [°C].
func SeaWaterLeroy69(depthM, salinityPpt, temperatureC float64) float64 {
	t := temperatureC
	s35 := salinityPpt - 35
	return 1492.9 + 3*(t-10) - 6e-3*(t-10)*(t-10) - 4e-2*(t-18)*(t-18) +
		1.2*s35 - 1e-2*(t-18)*s35 + depthM/61
}

// SeaWaterLeroy2008 returns the Leroy, Robinson and Goldsmith (2008) speed of
// sound [m/s] for depth [m], salinity [ppt], temperature [°C] and latitude
// [degrees].
func SeaWaterLeroy2008(depthM, salinityPpt, temperatureC, latitudeDeg float64) float64 {
	t := temperatureC
	s := salinityPpt
	z := depthM
	return 1402.5 + 5*t - 5.44e-2*t*t + 2.1e-4*t*t*t +
		1.33*s - 1.23e-2*s*t + 8.7e-5*s*t*t +
		1.56e-2*z + 2.55e-7*z*z - 7.3e-12*z*z*z +
		1.2e-6*z*(latitudeDeg-45) - 9.5e-13*t*z*z*z +
		3e-7*t*t*z + 1.43e-5*s*z
}

// SeaWaterDelGrosso returns the Del Grosso (1974) NRL II speed of sound [m/s]
// for gauge pressure [kg/cm²], salinity [ppt] and temperature [°C].
func SeaWaterDelGrosso(pressureKgCm2, salinityPpt, temperatureC float64) float64 {
	t := temperatureC
	s := salinityPpt
	p := pressureKgCm2

	const c000 = 1402.392
	dT := 0.5012285e1*t - 0.551184e-1*t*t + 0.221649e-3*t*t*t
	dS := 0.1329530e1*s + 0.1288598e-3*s*s
	dP := 0.1560592*p + 0.2449993e-4*p*p - 0.8833959e-8*p*p*p
	dSTP := -0.1275936e-1*t*s +
		0.6353509e-2*t*p +
		0.2656174e-7*t*t*p*p -
		0.1593895e-5*t*p*p +
		0.5222483e-9*t*p*p*p -
		0.4383615e-6*t*t*t*p -
		0.1616745e-8*s*s*p*p +
		0.9688441e-4*s*t*t +
		0.4857614e-5*s*s*t*p -
		0.3406824e-3*t*s*p
	return c000 + dT + dS + dP + dSTP
}

// UNESCO (Chen and Millero 1977, Fofonoff and Millard 1983) coefficients.
var (
	cmC = [4][6]float64{
		{1402.388, 5.03711, -5.80852e-2, 3.3420e-4, -1.47800e-6, 3.1464e-9},
		{0.153563, 6.8982e-4, -8.1788e-6, 1.3621e-7, -6.1185e-10},
		{3.1260e-5, -1.7107e-6, 2.5974e-8, -2.5335e-10, 1.0405e-12},
		{-9.7729e-9, 3.8504e-10, -2.3643e-12},
	}
	cmA = [4][5]float64{
		{1.389, -1.262e-2, 7.164e-5, 2.006e-6, -3.21e-8},
		{9.4742e-5, -1.2580e-5, -6.4885e-8, 1.0507e-8, -2.0122e-10},
		{-3.9064e-7, 9.1041e-9, -1.6002e-10, 7.988e-12},
		{1.100e-10, 6.649e-12, -3.389e-13},
	}
	cmB = [2][2]float64{
		{-1.922e-2, -4.42e-5},
		{7.3637e-5, 1.7945e-7},
	}
	cmD = [2]float64{1.727e-3, -7.9836e-6}
)

// poly evaluates c[0] + c[1]x + c[2]x² + ... by Horner's rule.
func poly(x float64, c []float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

// SeaWaterChenMillero returns the UNESCO speed of sound [m/s] for pressure
// [bar], salinity [ppt] and temperature [°C].
func SeaWaterChenMillero(pressureBar, salinityPpt, temperatureC float64) float64 {
	t := temperatureC
	s := salinityPpt
	p := pressureBar

	cw := 0.0
	a := 0.0
	for i := 3; i >= 0; i-- {
		cw = cw*p + poly(t, cmC[i][:])
		a = a*p + poly(t, cmA[i][:])
	}
	b := poly(t, cmB[0][:]) + poly(t, cmB[1][:])*p
	d := cmD[0] + cmD[1]*p
	return cw + a*s + b*math.Pow(s, 1.5) + d*s*s
}

// SeaWaterWilson returns the Wilson (1960) speed of sound [m/s] for gauge
// pressure [kg/cm²], salinity [ppt] and temperature [°C].
func SeaWaterWilson(pressureKgCm2, salinityPpt, temperatureC float64) float64 {
	t := temperatureC
	p := pressureKgCm2
	s35 := salinityPpt - 35

	vT := 4.5721*t - 4.4532e-2*t*t - 2.6045e-4*t*t*t + 7.9851e-6*t*t*t*t
	vP := 1.60272e-1*p + 1.0268e-5*p*p + 3.5216e-9*p*p*p - 3.3603e-12*p*p*p*p
	vS := 1.39799*s35 + 1.69202e-3*s35*s35
	vSTP := s35*(-1.1244e-2*t+7.7711e-7*t*t+7.7016e-5*p-1.2943e-7*p*p+3.1580e-8*p*t+1.5790e-9*p*t*t) +
		p*(-1.8607e-4*t+7.4812e-6*t*t+4.5283e-8*t*t*t) +
		p*p*(-2.5294e-7*t+1.8563e-9*t*t) +
		p*p*p*(-1.9646e-10*t)
	return 1449.14 + vT + vP + vS + vSTP
}
