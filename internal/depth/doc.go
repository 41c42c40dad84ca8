// Package depth converts between depth and pressure in sea water.
//
// [DepthToPressureLeroyParthiot] and [PressureToDepthLeroyParthiot] work in
// MPa and accept a caller-supplied [formula.Correction] for regional
// departures from the standard ocean. The pair is not an exact inverse; the
// round-trip residual stays below 0.5 m down to 10000 m.
//
// Saunders (1981) and the UNESCO algorithm of Fofonoff and Millard (1983)
// work in dbar.
package depth
