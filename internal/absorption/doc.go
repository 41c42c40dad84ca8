// Package absorption implements sound absorption coefficients for sea water,
// fresh water and air.
//
// Sea-water models follow Francois and Garrison (1982), Fisher and Simmons
// (1977), Ainslie and McColm (1998) and Thorp (1967). Air absorption follows
// ISO 9613-1. [SeaWaterTabulated] reads a bundled table indexed by
// temperature and frequency and never interpolates.
//
// Units follow each publication: Francois-Garrison, Ainslie-McColm, Thorp and
// the table return dB/km with frequency in kHz; Fisher-Simmons and ISO 9613-1
// return dB/m with frequency in Hz.
package absorption
