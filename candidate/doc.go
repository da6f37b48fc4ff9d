// Package candidate enumerates filter, binding, and transform call
// candidates for a task under a chosen abstraction: the DSL operator
// parameterisations that hold across every one of the task's training
// examples, per the enumeration procedure documented in the system
// this module continues.
package candidate
