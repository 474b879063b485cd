// Package asm implements the two pass abcout macro assembler.
//
// The first pass measures every node: macro lengths and the offsets of
// their local labels, then the addresses of the global labels. The second
// pass emits the byte image, expanding each macro invocation inline with
// local labels made unique per expansion, and pads the result to the image
// size of the profile.
//
// A label refers to the address of the byte emitted after its definition.
package asm
