package controller

import (
	"time"

	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/render"
)

// Event is one host notification. Events are dispatched one at a time.
type Event interface {
	isEvent()
}

// Loaded delivers a configuration document.
type Loaded struct {
	Input config.Input
}

// Visible reports whether the segment is on screen.
type Visible struct {
	Visible bool
}

// Tick carries the current instant.
type Tick struct {
	Now time.Time
}

// ThemeChanged carries the live terminal palette.
type ThemeChanged struct {
	Theme render.Theme
}

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
	WheelUp
	WheelDown
)

// Mouse reports a click or wheel motion over the segment.
type Mouse struct {
	Button Button
}

type Direction int

const (
	Next Direction = iota
	Previous
	Reset
)

// Navigate moves the selection from the keyboard or command line.
type Navigate struct {
	Direction Direction
}

// Resized reports the columns available to the segment.
type Resized struct {
	Cols int
}

func (Loaded) isEvent()       {}
func (Visible) isEvent()      {}
func (Tick) isEvent()         {}
func (ThemeChanged) isEvent() {}
func (Mouse) isEvent()        {}
func (Navigate) isEvent()     {}
func (Resized) isEvent()      {}

// Result tells the host what to do after an event.
type Result struct {
	// Render asks for the segment to be redrawn.
	Render bool
	// Schedule asks for a Tick after After.
	Schedule bool
	After    time.Duration
}
