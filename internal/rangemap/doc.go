// Package rangemap remaps 8-bit sample planes between linear intensity
// encodings, most commonly full range (0-255) and broadcast limited range
// (16-235).
//
// Conversion is an affine transform with clamping on both sides and
// round-to-nearest integer quantization. Functions here are pure: they never
// mutate their input and have no side effects beyond advisory warnings
// delivered through a caller-supplied sink.
package rangemap
