// Package sonar implements the terms of the passive and active sonar
// equations: source and noise levels, propagation loss, target strength,
// directivity, detection threshold and signal excess.
//
// Levels are in dB. Reference values follow the underwater convention of
// 1 µPa at 1 m unless a function says otherwise.
package sonar
