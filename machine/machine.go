// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"context"
	"fmt"
	"log"

	"github.com/ezrec/abcout/asm"
	"github.com/ezrec/abcout/io"
	"github.com/ezrec/abcout/isa"
)

// Ticks between checks for cancellation in Run.
const CANCEL_TICKS = 1024

// Machine is the abcout interpreter state.
type Machine struct {
	Verbose bool         // If set, logs every executed instruction.
	Profile *isa.Profile // ISA profile.
	Program *asm.Program // Loaded program, if loaded from the assembler.
	Screen  io.Screen    // Screen device, may be nil.

	Memory []byte // Flat memory image.
	Ip     uint32 // Instruction pointer.
	Ticks  int    // Instructions executed since reset.
	Budget int    // Maximum instructions per run.
	Status Status // Run state.
}

// Option configures a machine.
type Option func(*Machine)

// WithScreen attaches a screen device.
func WithScreen(screen io.Screen) Option {
	return func(m *Machine) {
		m.Screen = screen
	}
}

// WithStepBudget overrides the profile step budget.
func WithStepBudget(budget int) Option {
	return func(m *Machine) {
		m.Budget = budget
	}
}

// WithVerbose enables instruction tracing.
func WithVerbose(verbose bool) Option {
	return func(m *Machine) {
		m.Verbose = verbose
	}
}

// NewMachine creates a machine with zeroed memory.
func NewMachine(profile *isa.Profile, opts ...Option) (m *Machine) {
	if profile == nil {
		profile = &isa.PROFILE_WIDE
	}

	m = &Machine{
		Profile: profile,
		Memory:  make([]byte, profile.ImageSize),
		Budget:  profile.StepBudget,
	}

	for _, opt := range opts {
		opt(m)
	}

	return
}

// Load copies an assembled program into memory and resets the machine.
func (m *Machine) Load(prog *asm.Program) {
	m.Program = prog
	m.LoadImage(prog.Image)
}

// LoadImage copies an image into memory and resets the machine.
// Short images are zero padded, long images truncated.
func (m *Machine) LoadImage(image []byte) {
	n := copy(m.Memory, image)
	clear(m.Memory[n:])
	m.Reset()
}

// Reset the instruction pointer and counters. Memory is left untouched.
func (m *Machine) Reset() {
	m.Ip = 0
	m.Ticks = 0
	m.Status = STATUS_RUNNING

	if clearer, ok := m.Screen.(io.Clearer); ok {
		clearer.Clear()
	}
}

// addr wraps an operand into memory.
func (m *Machine) addr(value uint32) uint32 {
	return value % uint32(len(m.Memory))
}

// LineNo returns the source line of the instruction at the instruction
// pointer, or 0 if unknown.
func (m *Machine) LineNo() int {
	if m.Program == nil {
		return 0
	}

	dbg := m.Program.Debug(m.Ip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick executes a single instruction. It returns true once the machine
// reached the halt address or ran out of budget.
func (m *Machine) Tick() (done bool) {
	switch {
	case m.Status != STATUS_RUNNING:
	case m.Ip == m.Profile.HaltAddress:
		m.Status = STATUS_HALTED
	case m.Ticks >= m.Budget:
		m.Status = STATUS_BUDGET
	default:
		ins := m.Profile.Decode(m.Memory, m.Ip)
		if m.Verbose {
			log.Printf("%05x: line %d: abcout %#x, %#x, %#x", m.Ip, m.LineNo(), ins.A, ins.B, ins.C)
		}
		m.Execute(ins)
		m.Ticks++
		return false
	}

	if m.Verbose {
		log.Printf("machine: %v at %05x after %d ticks", m.Status, m.Ip, m.Ticks)
	}

	return true
}

// Execute performs one instruction at the instruction pointer.
func (m *Machine) Execute(ins isa.Instruction) {
	a := m.addr(ins.A)
	b := m.addr(ins.B)

	sum := int(m.Memory[a]) + int(m.Memory[b])
	if sum > 0xff {
		m.Memory[a] = byte(sum % 256)
		m.Ip = ins.C
	} else {
		m.Memory[a] = byte(sum)
		m.Ip = m.addr(m.Ip + uint32(m.Profile.InstructionWidth()))
	}

	if ins.A == m.Profile.ScreenAddress {
		m.plot()
	}
}

// plot services a write to the screen trigger register.
func (m *Machine) plot() {
	base := m.Profile.ScreenAddress
	m.Memory[m.addr(base+isa.SCREEN_REG_TRIGGER)] = 0

	index := uint8(io.COLOR_BACKGROUND)
	if m.Memory[m.addr(base+isa.SCREEN_REG_COLOR)] != 0 {
		index = io.COLOR_FOREGROUND
	}

	x := m.Memory[m.addr(base+isa.SCREEN_REG_X)]
	y := m.Memory[m.addr(base+isa.SCREEN_REG_Y)]

	if m.Verbose {
		log.Printf("screen: plot %d, %d color %d", x, y, index)
	}

	if m.Screen != nil {
		m.Screen.Plot(x, y, index)
	}
}

// Run executes until the machine halts, exhausts its budget, or ctx is done.
func (m *Machine) Run(ctx context.Context) (status Status, err error) {
	for !m.Tick() {
		if m.Ticks%CANCEL_TICKS == 0 {
			err = ctx.Err()
			if err != nil {
				break
			}
		}
	}

	status = m.Status
	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	ins := m.Profile.Decode(m.Memory, m.Ip)
	text += fmt.Sprintf("% 7s: %v\n", "status", m.Status)
	text += fmt.Sprintf("% 7s: %05X\n", "ip", m.Ip)
	text += fmt.Sprintf("% 7s: %d/%d\n", "ticks", m.Ticks, m.Budget)
	text += fmt.Sprintf("% 7s: %05X [%02X]\n", "a", ins.A, m.Memory[m.addr(ins.A)])
	text += fmt.Sprintf("% 7s: %05X [%02X]\n", "b", ins.B, m.Memory[m.addr(ins.B)])
	text += fmt.Sprintf("% 7s: %05X\n", "c", ins.C)
	return
}
