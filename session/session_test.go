package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/abcout/asm"
	"github.com/ezrec/abcout/io"
	"github.com/ezrec/abcout/isa"
	"github.com/ezrec/abcout/machine"
)

var drawProgram = strings.Join([]string{
	"abcout SCREEN_X, ten",
	"abcout SCREEN_Y, ten",
	"abcout SCREEN_COLOR, ten",
	"abcout SCREEN, ten",
	"abcout ten, big, HALT",
	"ten: 10",
	"big: 250",
}, "\n")

func source(text string) func() (string, error) {
	return func() (string, error) {
		return text, nil
	}
}

func TestRunNow(t *testing.T) {
	assert := assert.New(t)

	rec := &io.Recorder{}
	reports := 0
	s := &Session{
		Source: source(drawProgram),
		Screen: rec,
		Report: func(Result) { reports++ },
	}

	result := s.RunNow(context.Background())
	assert.NoError(result.Err)
	assert.Equal(machine.STATUS_HALTED, result.Status)
	assert.NotNil(result.Program)
	assert.Equal(&isa.PROFILE_WIDE, result.Program.Profile)
	assert.Equal(5, result.Machine.Ticks)
	assert.Equal([]io.Pixel{{X: 10, Y: 10, Color: io.COLOR_FOREGROUND}}, rec.Pixels)
	assert.Equal(1, reports)

	// The screen is reset each cycle.
	s.RunNow(context.Background())
	assert.Equal([]io.Pixel{{X: 10, Y: 10, Color: io.COLOR_FOREGROUND}}, rec.Pixels)
	assert.Equal(2, reports)
}

func TestRunNowBudget(t *testing.T) {
	assert := assert.New(t)

	s := &Session{
		Profile: &isa.PROFILE_NARROW,
		Source:  source("loop: abcout 7, 9, loop\n200\n255"),
		Budget:  50,
	}

	result := s.RunNow(context.Background())
	assert.NoError(result.Err)
	assert.Equal(machine.STATUS_BUDGET, result.Status)
	assert.Equal(&isa.PROFILE_NARROW, result.Machine.Profile)
	assert.Equal(50, result.Machine.Ticks)
	assert.Equal(byte(150), result.Machine.Memory[7])
}

func TestRunNowFailure(t *testing.T) {
	assert := assert.New(t)

	rec := &io.Recorder{}
	var reported []Result
	s := &Session{
		Source: source("abcout nowhere, 1"),
		Screen: rec,
		Report: func(result Result) { reported = append(reported, result) },
	}

	result := s.RunNow(context.Background())
	var ul asm.ErrUndefinedLabel
	assert.True(errors.As(result.Err, &ul))
	assert.Nil(result.Program)
	assert.Nil(result.Machine)
	assert.Equal(machine.STATUS_RUNNING, result.Status)
	assert.Empty(rec.Pixels)
	assert.Len(reported, 1)

	se := errors.New("unreadable")
	s.Source = func() (string, error) { return "", se }
	result = s.RunNow(context.Background())
	assert.ErrorIs(result.Err, se)
	assert.Nil(result.Program)
	assert.Len(reported, 2)
}

func TestChanged(t *testing.T) {
	assert := assert.New(t)

	results := make(chan Result, 8)
	s := &Session{
		Source: source(drawProgram),
		Delay:  20 * time.Millisecond,
		Report: func(result Result) { results <- result },
	}
	defer s.Close()

	for range 5 {
		s.Changed()
	}

	select {
	case result := <-results:
		assert.NoError(result.Err)
		assert.Equal(machine.STATUS_HALTED, result.Status)
	case <-time.After(2 * time.Second):
		assert.Fail("no cycle ran")
	}

	// Coalesced edits run a single cycle.
	select {
	case <-results:
		assert.Fail("edits were not coalesced")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestClose(t *testing.T) {
	assert := assert.New(t)

	results := make(chan Result, 8)
	s := &Session{
		Source: source(drawProgram),
		Delay:  20 * time.Millisecond,
		Report: func(result Result) { results <- result },
	}

	s.Changed()
	s.Close()

	// Edits after Close are ignored.
	s.Changed()

	select {
	case <-results:
		assert.Fail("cycle ran after Close")
	case <-time.After(100 * time.Millisecond):
	}
}
