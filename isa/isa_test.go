package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfiles(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"narrow", "wide"}, Names())

	wide, err := Lookup("wide")
	assert.NoError(err)
	assert.Equal(9, wide.InstructionWidth())
	assert.Equal(uint32(0xffffff), wide.MaxOperand())
	assert.Equal(65791, wide.ImageSize)

	narrow, err := Lookup("narrow")
	assert.NoError(err)
	assert.Equal(6, narrow.InstructionWidth())
	assert.Equal(uint32(0xffff), narrow.MaxOperand())
	assert.Equal(65536, narrow.ImageSize)

	// Lookup hands out copies.
	wide.StepBudget = 1
	assert.Equal(STEP_BUDGET, PROFILE_WIDE.StepBudget)

	_, err = Lookup("tall")
	var eu ErrProfileUnknown
	assert.True(errors.As(err, &eu))
	assert.Equal(ErrProfileUnknown("tall"), eu)
}

func TestLiteralWidth(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  uint32
		wide   int
		narrow int
	}){
		{0, 1, 2},
		{10, 1, 2},
		{255, 1, 2},
		{256, 2, 2},
		{65535, 2, 2},
		{65536, 3, 2},
		{0xffffff, 3, 2},
	}

	for _, entry := range table {
		assert.Equal(entry.wide, PROFILE_WIDE.LiteralWidth(entry.value), entry.value)
		assert.Equal(entry.narrow, PROFILE_NARROW.LiteralWidth(entry.value), entry.value)
	}
}

func TestCodec(t *testing.T) {
	assert := assert.New(t)

	buf := AppendUint(nil, 3, 0x10203)
	assert.Equal([]byte{0x01, 0x02, 0x03}, buf)

	buf = AppendUint(nil, 3, 5)
	assert.Equal([]byte{0x00, 0x00, 0x05}, buf)

	buf = AppendUint(nil, 2, 0x1234)
	assert.Equal([]byte{0x12, 0x34}, buf)

	mem := PROFILE_WIDE.Encode(nil, Instruction{A: 0x10000, B: 5, C: 0x123456})
	assert.Equal([]byte{1, 0, 0, 0, 0, 5, 0x12, 0x34, 0x56}, mem)
	assert.Equal(Instruction{A: 0x10000, B: 5, C: 0x123456}, PROFILE_WIDE.Decode(mem, 0))

	// Reads wrap at the end of memory.
	mem = []byte{0x02, 0x00, 0x00, 0x01}
	assert.Equal(uint32(0x0102), Uint(mem, 3, 2))
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defs := map[string]uint32{}
	var order []string
	for key, val := range PROFILE_WIDE.Defines() {
		defs[key] = val
		order = append(order, key)
	}

	assert.Equal(uint32(0x10000), defs["SCREEN"])
	assert.Equal(uint32(0x10003), defs["SCREEN_COLOR"])
	assert.Equal(uint32(0xFFF9), defs["HALT"])
	assert.Equal(uint32(9), defs["INSTRUCTION_WIDTH"])
	assert.Equal("HALT", order[0])
	assert.Equal(10, len(order))
}
