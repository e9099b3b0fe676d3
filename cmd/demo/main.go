// Command demo is a small terminal application exercising immui's widget
// set end to end: a window with a label, a button, a checkbox, a slider,
// a drag-scrub number, and a textbox, rendered through package
// termbackend and driven by raw keyboard and SGR mouse input.
//
// Grounded on germtb-goli's Run (app.go): the same
// raw-mode-setup / SIGWINCH-resize / stdin-reader-goroutine /
// signal-driven-shutdown shape, re-pointed from gox's reactive effect
// loop at immui's BeginFrame/EndFrame pump.
package main

import (
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/germtb/immui"
	"github.com/germtb/immui/termbackend"
)

const frameInterval = 16 * time.Millisecond // 60fps, per germtb-goli's defaultFrameInterval

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J\x1b[H"

	// SGR extended mouse reporting, all-motion tracking.
	// Grounded on vito-dang/pkg/pitui/tui.go's escMouse* constants.
	enableMouse  = "\x1b[?1003h\x1b[?1006h"
	disableMouse = "\x1b[?1006l\x1b[?1003l"
)

type demoState struct {
	count  int
	agree  bool
	volume float64
	scrub  float64
	name   string
}

func main() {
	out := os.Stdout
	width, height := terminalSize(os.Stdin)

	var raw *rawModeState
	if isTerminal(os.Stdin) {
		var err error
		raw, err = enableRawMode(os.Stdin)
		if err != nil {
			raw = nil
		}
	}
	defer restoreTerminal(raw)

	io.WriteString(out, hideCursor)
	io.WriteString(out, enableMouse)
	defer io.WriteString(out, disableMouse)
	defer io.WriteString(out, showCursor)
	defer io.WriteString(out, clearScreen)

	ctx := immui.NewContext()
	backend := termbackend.NewBackend(ctx, out, width, height)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGWINCH)

	events := make(chan inputEvent, 64)
	done := make(chan struct{})

	go readInput(os.Stdin, events, done)

	state := &demoState{name: "immui", volume: 0.5}
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case sig := <-sigCh:
			switch sig {
			case syscall.SIGWINCH:
				width, height = terminalSize(os.Stdin)
				backend.Resize(width, height)
			case syscall.SIGINT, syscall.SIGTERM:
				close(done)
				return
			}
		case ev := <-events:
			applyInputEvent(ctx, ev)
			if ev.quit {
				close(done)
				return
			}
		case <-ticker.C:
			ctx.BeginFrame()
			drawDemo(ctx, state, width, height)
			ctx.EndFrame()
			backend.Render(ctx)
		}
	}
}

// drawDemo issues this frame's widget calls: one window containing every
// widget family the core exposes.
func drawDemo(ctx *immui.Context, s *demoState, width, height int) {
	rect := immui.Rect{X: 2, Y: 1, W: int32(width - 4), H: int32(height - 2)}
	if !ctx.BeginWindow("immui demo", rect, 0) {
		return
	}
	ctx.LayoutRow(1, []int32{-1}, 0)
	ctx.Label("Hello from " + s.name)

	ctx.LayoutRow(2, []int32{-1, 80}, 0)
	ctx.Label("Clicks: " + strconv.Itoa(s.count))
	if ctx.Button("increment", immui.IconNone, 0).Submit() {
		s.count++
	}

	ctx.LayoutRow(1, []int32{-1}, 0)
	ctx.Checkbox("agree to terms", &s.agree)

	ctx.LayoutRow(1, []int32{-1}, 0)
	ctx.Slider(&s.volume, 0, 1, 0.01, "volume %.2f", 0)

	ctx.LayoutRow(1, []int32{-1}, 0)
	ctx.Number(&s.scrub, 0.1, "scrub %.2f", 0)

	ctx.LayoutRow(1, []int32{-1}, 0)
	ctx.Textbox(&s.name, 0)

	ctx.EndWindow()
}

// inputEvent is one decoded unit of terminal input, normalized by
// readInput before reaching the main select loop.
type inputEvent struct {
	key     immui.Key
	text    string
	mouse   bool
	pos     immui.Vec2
	button  immui.MouseButton
	press   bool
	release bool
	scroll  immui.Vec2
	quit    bool
}

func applyInputEvent(ctx *immui.Context, ev inputEvent) {
	if ev.mouse {
		ctx.InputMouseMove(ev.pos)
		if ev.press {
			ctx.InputMouseDown(ev.button)
		}
		if ev.release {
			ctx.InputMouseUp(ev.button)
		}
		if ev.scroll != (immui.Vec2{}) {
			ctx.InputScroll(ev.scroll)
		}
		return
	}
	if ev.key != 0 {
		ctx.InputKeyDown(ev.key)
		ctx.InputKeyUp(ev.key)
	}
	if ev.text != "" {
		ctx.InputText(ev.text)
	}
}

// readInput reads raw bytes from f, decodes them into inputEvents, and
// sends them to events until f is closed or done fires.
//
// Grounded on germtb-goli's stdin-reading goroutine in Run
// (germtb-goli/app.go): a single buffered Read per iteration, Ctrl+C
// handled as an immediate quit, everything else routed to a decoder.
func readInput(f *os.File, events chan<- inputEvent, done <-chan struct{}) {
	buf := make([]byte, 64)
	for {
		select {
		case <-done:
			return
		default:
		}
		n, err := f.Read(buf)
		if err != nil {
			return
		}
		seq := string(buf[:n])
		if seq == "\x03" {
			events <- inputEvent{quit: true}
			return
		}
		if ev, ok := decodeMouseSeq(seq); ok {
			events <- ev
			continue
		}
		if key := decodeKey(seq); key != 0 {
			events <- inputEvent{key: key}
			continue
		}
		if isPrintable(seq) {
			events <- inputEvent{text: seq}
		}
	}
}

// decodeMouseSeq parses one SGR mouse report, "\x1b[<b;x;y" followed by
// 'M' (press/motion) or 'm' (release). Coordinates are 1-based in the
// wire format and converted to immui's 0-based cell space.
func decodeMouseSeq(seq string) (inputEvent, bool) {
	if !strings.HasPrefix(seq, "\x1b[<") {
		return inputEvent{}, false
	}
	body := seq[3:]
	if len(body) == 0 {
		return inputEvent{}, false
	}
	action := body[len(body)-1]
	if action != 'M' && action != 'm' {
		return inputEvent{}, false
	}
	fields := strings.Split(body[:len(body)-1], ";")
	if len(fields) != 3 {
		return inputEvent{}, false
	}
	b, err1 := strconv.Atoi(fields[0])
	x, err2 := strconv.Atoi(fields[1])
	y, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return inputEvent{}, false
	}

	ev := inputEvent{mouse: true, pos: immui.Vec2{X: int32(x - 1), Y: int32(y - 1)}}

	const wheelFlag = 0x40
	const buttonMask = 0x3
	if b&wheelFlag != 0 {
		if b&buttonMask == 1 {
			ev.scroll = immui.Vec2{Y: -3}
		} else {
			ev.scroll = immui.Vec2{Y: 3}
		}
		return ev, true
	}

	switch b & buttonMask {
	case 0:
		ev.button = immui.MouseLeft
	case 1:
		ev.button = immui.MouseMiddle
	case 2:
		ev.button = immui.MouseRight
	default:
		return ev, true // pure motion report, no button edge
	}
	if action == 'M' {
		ev.press = true
	} else {
		ev.release = true
	}
	return ev, true
}
