// Package guide describes a DSL program's choice points and drives a
// single-threaded trail of samples through them, mixing a learned
// backbone's distribution with a uniform exploration floor.
package guide
