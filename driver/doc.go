// Package driver runs the sample-abstract-filter-transform-observe
// loop described in the system this module continues: each iteration
// picks a random task and training example, samples a program against
// the guide, and trains the backbone on whether it reconstructed the
// target.
package driver
