package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ezrec/abcout/asm"
	"github.com/ezrec/abcout/io"
	"github.com/ezrec/abcout/isa"
	"github.com/ezrec/abcout/machine"
)

// DEFAULT_DELAY is the quiet period after an edit before a cycle runs.
const DEFAULT_DELAY = 2 * time.Second

// Result is the outcome of one assemble and run cycle.
type Result struct {
	Program *asm.Program     // Assembled program, nil on assembly failure.
	Machine *machine.Machine // Machine state after the run, nil if never run.
	Status  machine.Status   // Final machine status.
	Err     error            // Source, assembly or cancellation error.
}

// Session owns the debounce timer for one source buffer.
type Session struct {
	Verbose bool
	Profile *isa.Profile           // Profile to assemble and run with; PROFILE_WIDE if nil.
	Source  func() (string, error) // Supplies the current source text.
	Screen  io.Screen              // Screen device, may be nil.
	Delay   time.Duration          // Debounce period; DEFAULT_DELAY if zero.
	Budget  int                    // Step budget override; profile budget if zero.
	Report  func(Result)           // Called at the end of every cycle, may be nil.

	mutex  sync.Mutex // Guards the fields below.
	timer  *time.Timer
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	cycle sync.Mutex // Held while a cycle is in flight.
}

func (s *Session) delay() time.Duration {
	if s.Delay <= 0 {
		return DEFAULT_DELAY
	}
	return s.Delay
}

// Changed signals a source edit. Any pending cycle is canceled and a new
// one is scheduled after the debounce period.
func (s *Session) Changed() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return
	}

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	ctx := s.ctx
	s.timer = time.AfterFunc(s.delay(), func() {
		s.RunNow(ctx)
	})
}

// Close cancels any pending or running cycle. Further edits are ignored.
func (s *Session) Close() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
	}
}

// RunNow runs one cycle synchronously. Cycles never overlap; a caller
// waits for any cycle in flight to finish first.
func (s *Session) RunNow(ctx context.Context) (result Result) {
	s.cycle.Lock()
	defer s.cycle.Unlock()

	defer func() {
		if s.Report != nil {
			s.Report(result)
		}
	}()

	if s.Source == nil {
		return
	}

	text, err := s.Source()
	if err != nil {
		log.Printf("session: %v", err)
		result.Err = err
		return
	}

	assembler := &asm.Assembler{
		Verbose: s.Verbose,
		Profile: s.Profile,
	}
	prog, err := assembler.Parse(strings.NewReader(text))
	if err != nil {
		log.Printf("session: %v", err)
		result.Err = err
		return
	}
	result.Program = prog

	opts := []machine.Option{
		machine.WithScreen(s.Screen),
		machine.WithVerbose(s.Verbose),
	}
	if s.Budget > 0 {
		opts = append(opts, machine.WithStepBudget(s.Budget))
	}

	m := machine.NewMachine(prog.Profile, opts...)
	m.Load(prog)
	result.Machine = m

	result.Status, result.Err = m.Run(ctx)
	if s.Verbose {
		log.Printf("session: %v after %d ticks", result.Status, m.Ticks)
	}

	return
}
