package isa

// Instruction is a decoded abcout instruction.
type Instruction struct {
	A, B, C uint32
}

// AppendUint appends value as a big-endian integer of width bytes.
func AppendUint(buf []byte, width int, value uint32) []byte {
	for n := width - 1; n >= 0; n-- {
		buf = append(buf, byte(value>>(8*n)))
	}
	return buf
}

// Uint reads a big-endian integer of width bytes at addr.
// Addresses wrap around the end of mem.
func Uint(mem []byte, addr uint32, width int) (value uint32) {
	size := uint32(len(mem))
	for n := range width {
		value = (value << 8) | uint32(mem[(addr+uint32(n))%size])
	}
	return
}

// Decode reads the instruction at addr.
func (p *Profile) Decode(mem []byte, addr uint32) (ins Instruction) {
	w := p.OperandWidth
	ins.A = Uint(mem, addr, w)
	ins.B = Uint(mem, addr+uint32(w), w)
	ins.C = Uint(mem, addr+uint32(2*w), w)
	return
}

// Encode appends the instruction to buf.
func (p *Profile) Encode(buf []byte, ins Instruction) []byte {
	w := p.OperandWidth
	buf = AppendUint(buf, w, ins.A)
	buf = AppendUint(buf, w, ins.B)
	return AppendUint(buf, w, ins.C)
}
