// Package isa describes the abcout machine profiles.
//
// The machine has a single instruction, abcout A, B, C, encoded as three
// big-endian operands of the profile's operand width. Executing it adds
// memory[B] into memory[A] and branches to C when the byte sum carries out
// of 255.
package isa
