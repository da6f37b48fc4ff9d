// Package task loads ARC-style grid tasks from JSON files: an ordered
// set of training input/output pairs plus held-out test inputs.
package task
