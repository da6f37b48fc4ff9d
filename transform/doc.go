// Package transform implements the five node mutations a DSL program
// may apply to a filtered node: recolouring, single-step and
// maximal-step translation, directional extension, and rotation.
// Colour and direction arguments may be constant or resolved
// dynamically from a binding.Call at apply time.
package transform
