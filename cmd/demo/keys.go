package main

import "github.com/germtb/immui"

// Raw terminal key escape sequences, read from stdin in raw mode.
// Grounded on germtb-goli's keys.go, unchanged — these are
// exactly the terminal escape bytes a VT100-descendant emits, regardless
// of what's consuming them.
const (
	space   = " "
	enter   = "\r"
	enterLF = "\n"
	tab     = "\t"
	escape  = "\x1b"

	backspace     = "\x7f"
	backspaceCtrl = "\b"
	deleteKey     = "\x1b[3~"
	insert        = "\x1b[2~"

	keyLeft  = "\x1b[D"
	keyRight = "\x1b[C"
	keyUp    = "\x1b[A"
	keyDown  = "\x1b[B"
	home     = "\x1b[H"
	homeAlt  = "\x1b[1~"
	end      = "\x1b[F"
	endAlt   = "\x1b[4~"
	pageUp   = "\x1b[5~"
	pageDown = "\x1b[6~"

	shiftTab = "\x1b[Z"

	ctrlC = "\x03"
	ctrlU = "\x15"
	ctrlW = "\x17"
)

// decodeKey maps one raw escape sequence read from the terminal to the
// immui.Key bitmask that sequence represents. It returns 0 if seq isn't
// one of the keys immui's update_control and widgets care about — the
// caller falls back to treating it as literal text.
func decodeKey(seq string) immui.Key {
	switch seq {
	case enter, enterLF:
		return immui.KeyReturn
	case escape:
		return immui.KeyEscape
	case tab:
		return immui.KeyTab
	case backspace, backspaceCtrl:
		return immui.KeyBackspace
	case deleteKey:
		return immui.KeyDelete
	case keyLeft:
		return immui.KeyLeft
	case keyRight:
		return immui.KeyRight
	case keyUp:
		return immui.KeyUp
	case keyDown:
		return immui.KeyDown
	case home, homeAlt:
		return immui.KeyHome
	case end, endAlt:
		return immui.KeyEnd
	default:
		return 0
	}
}

// isPrintable reports whether seq is text suitable for
// immui.Context.InputText: a single printable rune, or a multi-rune
// read that does not start with an escape, as opposed to a control
// sequence decodeKey already accounts for.
func isPrintable(seq string) bool {
	if len(seq) == 0 {
		return false
	}
	r := []rune(seq)
	if len(r) != 1 {
		return len(seq) > 1 && seq[0] != 0x1b
	}
	return r[0] >= ' ' && r[0] != 0x7f
}
