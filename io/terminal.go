package io

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Terminal draws pixels as character cells on a tcell screen.
type Terminal struct {
	Screen tcell.Screen
}

var _ Screen = (*Terminal)(nil)

var terminalStyle = [2]tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorWhite),
	tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack),
}

// NewTerminal initializes a terminal. If screen is nil, the host terminal
// is used.
func NewTerminal(screen tcell.Screen) (term *Terminal, err error) {
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			err = errors.Wrap(err, "terminal")
			return
		}
	}

	err = screen.Init()
	if err != nil {
		err = errors.Wrap(err, "terminal")
		return
	}

	screen.SetStyle(terminalStyle[COLOR_BACKGROUND])
	screen.Clear()

	term = &Terminal{Screen: screen}
	return
}

// Plot draws a pixel. Pixels outside the terminal are dropped.
func (term *Terminal) Plot(x, y uint8, index uint8) {
	if index > COLOR_FOREGROUND {
		index = COLOR_FOREGROUND
	}
	w, h := term.Screen.Size()
	if int(x) >= w || int(y) >= h {
		return
	}
	term.Screen.SetContent(int(x), int(y), '█', nil, terminalStyle[index])
}

func (term *Terminal) Clear() {
	term.Screen.Clear()
}

// Show flushes drawn pixels to the terminal.
func (term *Terminal) Show() {
	term.Screen.Show()
}

// Close restores the terminal.
func (term *Terminal) Close() {
	term.Screen.Fini()
}
