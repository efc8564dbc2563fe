// Package host provides in-process implementations of the collaborators a
// bypass mixer and its parameters write to: gain elements, a parameter
// table for an effect unit, and a bus that sums the dry and wet paths.
//
// Control goroutines write gains and parameters; a render goroutine reads
// them. Both sides go through atomics, so no locking is required.
package host
