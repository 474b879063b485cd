// Package session drives the edit, assemble and run cycle of an abcout
// source buffer.
//
// Edits are coalesced: each Changed call cancels any pending cycle and
// schedules a new one after a quiet period. A cycle assembles the current
// source from scratch and runs it on a fresh machine. An assembly failure
// is reported and the cycle ends without executing anything.
package session
