// Package filter blurs and offsets coverage masks for canvas shadows.
//
// The blur is a separable Gaussian: a horizontal pass into a float
// buffer followed by a vertical pass back to 8 bits, so the cost grows
// with the blur radius rather than its square.
package filter
