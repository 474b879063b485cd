package isa

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/abcout/internal"
)

const (
	SCREEN_WIDTH  = 256 // Horizontal pixels of the screen device.
	SCREEN_HEIGHT = 192 // Vertical pixels of the screen device.

	STEP_BUDGET = 10000 // Default number of instructions run before giving up.
)

// Screen device register offsets from Profile.ScreenAddress.
const (
	SCREEN_REG_TRIGGER = 0
	SCREEN_REG_X       = 1
	SCREEN_REG_Y       = 2
	SCREEN_REG_COLOR   = 3
)

// Profile is an ISA configuration.
type Profile struct {
	Name             string // Name of the profile.
	OperandWidth     int    // Bytes per operand.
	ImageSize        int    // Size of the padded memory image.
	HaltAddress      uint32 // Instruction pointer value that stops execution.
	ScreenAddress    uint32 // Base address of the screen device registers.
	StepBudget       int    // Maximum executed instructions per run.
	VariableLiterals bool   // If set, bare literals take 1, 2 or 3 bytes.
	AlignBranches    bool   // If set, explicit branch targets must be instruction aligned.
}

var (
	// PROFILE_WIDE has 24-bit operands and a 0x100FF byte image.
	PROFILE_WIDE = Profile{
		Name:             "wide",
		OperandWidth:     3,
		ImageSize:        0x100FF,
		HaltAddress:      0xFFF9,
		ScreenAddress:    0x10000,
		StepBudget:       STEP_BUDGET,
		VariableLiterals: true,
	}

	// PROFILE_NARROW has 16-bit operands and a 64K image.
	PROFILE_NARROW = Profile{
		Name:          "narrow",
		OperandWidth:  2,
		ImageSize:     0x10000,
		HaltAddress:   0xFFFC,
		ScreenAddress: 0xFFF8,
		StepBudget:    STEP_BUDGET,
		AlignBranches: true,
	}
)

var profiles = map[string]*Profile{
	PROFILE_WIDE.Name:   &PROFILE_WIDE,
	PROFILE_NARROW.Name: &PROFILE_NARROW,
}

// Lookup returns a copy of a named profile.
func Lookup(name string) (profile *Profile, err error) {
	known, ok := profiles[name]
	if !ok {
		err = ErrProfileUnknown(name)
		return
	}

	clone := *known
	profile = &clone
	return
}

// Names returns the known profile names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(profiles))
}

// InstructionWidth returns the size in bytes of a single instruction.
func (p *Profile) InstructionWidth() int {
	return 3 * p.OperandWidth
}

// MaxOperand returns the largest value an operand can hold.
func (p *Profile) MaxOperand() uint32 {
	return uint32(1)<<(8*p.OperandWidth) - 1
}

// LiteralWidth returns the number of bytes a bare literal occupies.
func (p *Profile) LiteralWidth(value uint32) int {
	if !p.VariableLiterals {
		return p.OperandWidth
	}

	switch {
	case value > 0xffff:
		return 3
	case value > 0xff:
		return 2
	default:
		return 1
	}
}

// Defines returns an iterator over the predefined constants of the profile.
func (p *Profile) Defines() iter.Seq2[string, uint32] {
	memory := map[string]uint32{
		"IMAGE_SIZE":        uint32(p.ImageSize),
		"HALT":              p.HaltAddress,
		"OPERAND_WIDTH":     uint32(p.OperandWidth),
		"INSTRUCTION_WIDTH": uint32(p.InstructionWidth()),
	}
	screen := map[string]uint32{
		"SCREEN":        p.ScreenAddress + SCREEN_REG_TRIGGER,
		"SCREEN_X":      p.ScreenAddress + SCREEN_REG_X,
		"SCREEN_Y":      p.ScreenAddress + SCREEN_REG_Y,
		"SCREEN_COLOR":  p.ScreenAddress + SCREEN_REG_COLOR,
		"SCREEN_WIDTH":  SCREEN_WIDTH,
		"SCREEN_HEIGHT": SCREEN_HEIGHT,
	}

	return internal.IterSeq2Concat(internal.SortedByKey(memory), internal.SortedByKey(screen))
}
