// Package machine implements the abcout interpreter.
//
// Memory is the flat byte image produced by the assembler. Each step reads
// the three operands A, B and C at the instruction pointer, adds memory[B]
// into memory[A], and either falls through to the next instruction or, when
// the sum carries out of a byte, stores the sum modulo 256 and jumps to C.
//
// A write through the screen address plots one pixel: the trigger register
// is cleared, and the X, Y and COLOR registers that follow it select the
// pixel and its palette index.
package machine
