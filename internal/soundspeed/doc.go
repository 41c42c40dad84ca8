// Package soundspeed provides empirical speed-of-sound equations for air,
// fresh water and sea water.
//
// Each equation is exported as a plain function taking the arguments in the
// units of the original publication:
//
//   - [DryAir], [AirIdealGas], [AirCramer]: air
//   - [FreshWaterMarczak], [FreshWaterDelGrossoMader], [FreshWaterLubbersGraaff]: pure water
//   - [SeaWaterCoppens], [SeaWaterMackenzie], [SeaWaterMedwin], [SeaWaterLeroy69],
//     [SeaWaterLeroy2008], [SeaWaterDelGrosso], [SeaWaterChenMillero], [SeaWaterWilson]
//   - [SeaWaterSkone]: range-selected choice between Medwin, Mackenzie and Coppens
//
// Units are not normalised across equations: Coppens takes depth in km,
// Del Grosso and Wilson take gauge pressure in kg/cm², Chen-Millero takes bar.
//
// [Specs] returns the catalog entries, including the published validity
// windows used for range diagnostics.
package soundspeed
