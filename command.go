package immui

import (
	"bytes"
	"encoding/binary"
)

// CmdBufCapacity is the fixed capacity of a CommandList's backing buffer.
const CmdBufCapacity = 256 * 1024

// CmdType tags a command record's variant.
type CmdType uint32

const (
	CmdJump CmdType = iota
	CmdClip
	CmdRect
	CmdText
	CmdIcon
)

func (t CmdType) String() string {
	switch t {
	case CmdJump:
		return "Jump"
	case CmdClip:
		return "Clip"
	case CmdRect:
		return "Rect"
	case CmdText:
		return "Text"
	case CmdIcon:
		return "Icon"
	default:
		return "Unknown"
	}
}

// cmdHeader is the 2-field header every command record begins with: a
// type tag and the record's total size in bytes (header included).
type cmdHeader struct {
	Type CmdType
	Size uint32
}

const cmdHeaderSize = 8 // 2 uint32 fields, little-endian

// JumpCmd redirects the iterator to Dest, an offset into the same buffer.
type JumpCmd struct {
	Dest uint32
}

// jumpCmdSize is the encoded size of a JumpCmd payload (one little-endian
// uint32). cmdHeaderSize+jumpCmdSize is the full size of a Jump record,
// and so the offset of whatever was written immediately after one —
// the destination a root-container chain targets to skip straight past
// a root's own head jump into its content.
const jumpCmdSize = 4

// ClipCmd sets the backend's scissor rect until the next Clip command.
type ClipCmd struct {
	Rect Rect
}

// RectCmd fills Rect with Color.
type RectCmd struct {
	Rect  Rect
	Color Color
}

// Font is an opaque handle the application threads through TextWidth,
// TextHeight, and Text commands. A fixed-size handle (rather than a
// generic type parameter on Context) is what lets Text commands stay
// fixed-size records in the packed buffer; see DESIGN.md.
type Font uint32

// TextCmd draws a string (identified by a 1-based index into the
// CommandList's string table) at Pos's baseline.
type TextCmd struct {
	Font    Font
	Pos     Vec2
	Color   Color
	StrIdx  uint32
	StrLen  uint32
}

// IconId identifies one of the built-in icons.
type IconId uint32

const (
	IconNone IconId = iota
	IconClose
	IconCheck
	IconCollapsed
	IconExpanded
)

// IconCmd draws the identified icon scaled to Rect.
type IconCmd struct {
	Rect  Rect
	Icon  IconId
	Color Color
}

// CommandList is a packed byte buffer of fixed capacity with a
// monotonically advancing write cursor, plus a parallel growable string
// table for the text owned by Text commands.
type CommandList struct {
	buf     [CmdBufCapacity]byte
	idx     int
	strings []string
}

// Len returns the current write cursor position.
func (cl *CommandList) Len() int { return cl.idx }

// Reset rewinds the write cursor and clears the string table, invoked at
// the start of every frame.
func (cl *CommandList) Reset() {
	cl.idx = 0
	cl.strings = cl.strings[:0]
}

// StoreString appends a copy of s to the string table and returns its
// 1-based index, the reference a Text command's StrIdx field carries.
func (cl *CommandList) StoreString(s string) uint32 {
	cl.strings = append(cl.strings, s)
	return uint32(len(cl.strings))
}

// LookupString resolves a 1-based string-table index back to its text.
func (cl *CommandList) LookupString(idx uint32) string {
	if idx == 0 || int(idx) > len(cl.strings) {
		return ""
	}
	return cl.strings[idx-1]
}

func encode(v any) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		panic(&Fault{Kind: BufferOverflow, Msg: "unencodable command payload: " + err.Error()})
	}
	return buf.Bytes()
}

func decode(data []byte, v any) {
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, v); err != nil {
		panic(&Fault{Kind: InvalidCommandIndex, Msg: "corrupt command payload: " + err.Error()})
	}
}

// writeCmd appends a record of the given type and payload at idx,
// advancing the cursor, and returns the offset the record was written at
// (the record's CommandPtr).
func writeCmd(cl *CommandList, typ CmdType, payload any) int {
	body := encode(payload)
	total := cmdHeaderSize + len(body)
	if cl.idx+total > len(cl.buf) {
		fail(BufferOverflow, "command list exceeds capacity %d bytes", CmdBufCapacity)
	}
	start := cl.idx
	header := encode(cmdHeader{Type: typ, Size: uint32(total)})
	copy(cl.buf[cl.idx:], header)
	cl.idx += len(header)
	copy(cl.buf[cl.idx:], body)
	cl.idx += len(body)
	return start
}

// peekHeader reads the header at offset without validating the full
// record, used by the iterator to discover a record's type and size.
func (cl *CommandList) peekHeader(offset int) cmdHeader {
	if offset < 0 || offset+cmdHeaderSize > cl.idx {
		fail(InvalidCommandIndex, "offset %d out of range [0, %d)", offset, cl.idx)
	}
	var h cmdHeader
	decode(cl.buf[offset:offset+cmdHeaderSize], &h)
	return h
}

// readCmd validates offset and decodes the payload at offset+header into
// payload, a pointer to one of {JumpCmd, ClipCmd, RectCmd, TextCmd,
// IconCmd}.
func readCmd(cl *CommandList, offset int, payload any) cmdHeader {
	h := cl.peekHeader(offset)
	end := offset + int(h.Size)
	if end > cl.idx {
		fail(InvalidCommandIndex, "record at %d overruns buffer", offset)
	}
	decode(cl.buf[offset+cmdHeaderSize:end], payload)
	return h
}

// writeJumpPlaceholder reserves a Jump record whose destination will be
// patched later (the head/tail bracketing pattern root containers use).
func writeJumpPlaceholder(cl *CommandList) int {
	return writeCmd(cl, CmdJump, JumpCmd{Dest: 0})
}

// patchJump rewrites the Dest field of the Jump record at offset in
// place. offset must point at a Jump header written by this CommandList.
func patchJump(cl *CommandList, offset int, dest int) {
	h := cl.peekHeader(offset)
	if h.Type != CmdJump {
		fail(InvalidCommandIndex, "patchJump: record at %d is not a Jump", offset)
	}
	body := encode(JumpCmd{Dest: uint32(dest)})
	copy(cl.buf[offset+cmdHeaderSize:], body)
}

// CommandPtr is an offset into a CommandList, returned by write
// operations and consumed by Iterator / readCmd.
type CommandPtr = int

// Iterator walks a CommandList in emission order, chasing Jump commands
// transparently so non-linear z-order splicing is invisible to callers.
type Iterator struct {
	cl     *CommandList
	cursor int
}

// Iterate returns a fresh Iterator positioned at the start of the
// buffer. Iteration is read-only and may be repeated arbitrarily.
func (cl *CommandList) Iterate() *Iterator {
	return &Iterator{cl: cl, cursor: 0}
}

// Next advances the iterator, chasing any Jump commands, and returns the
// next non-Jump command's type and offset. The second bool is false once
// the cursor reaches the write cursor (end of stream).
func (it *Iterator) Next() (CmdType, CommandPtr, bool) {
	for {
		if it.cursor >= it.cl.idx {
			return 0, 0, false
		}
		h := it.cl.peekHeader(it.cursor)
		if h.Type == CmdJump {
			var j JumpCmd
			readCmd(it.cl, it.cursor, &j)
			it.cursor = int(j.Dest)
			continue
		}
		offset := it.cursor
		it.cursor += int(h.Size)
		return h.Type, offset, true
	}
}

// ReadRect reads the Rect command at ptr, a CommandPtr yielded by this
// Iterator's Next. The handle a rendering backend uses to resolve what
// Next just classified as CmdRect.
func (it *Iterator) ReadRect(ptr CommandPtr) RectCmd { return it.cl.ReadRect(ptr) }

// ReadClip reads the Clip command at ptr.
func (it *Iterator) ReadClip(ptr CommandPtr) ClipCmd { return it.cl.ReadClip(ptr) }

// ReadText reads the Text command at ptr, along with its resolved string.
func (it *Iterator) ReadText(ptr CommandPtr) (TextCmd, string) { return it.cl.ReadText(ptr) }

// ReadIcon reads the Icon command at ptr.
func (it *Iterator) ReadIcon(ptr CommandPtr) IconCmd { return it.cl.ReadIcon(ptr) }

// ReadRect reads a Rect command at offset.
func (cl *CommandList) ReadRect(offset CommandPtr) RectCmd {
	var r RectCmd
	readCmd(cl, offset, &r)
	return r
}

// ReadClip reads a Clip command at offset.
func (cl *CommandList) ReadClip(offset CommandPtr) ClipCmd {
	var c ClipCmd
	readCmd(cl, offset, &c)
	return c
}

// ReadText reads a Text command at offset. The returned string is
// resolved from the string table.
func (cl *CommandList) ReadText(offset CommandPtr) (TextCmd, string) {
	var t TextCmd
	readCmd(cl, offset, &t)
	return t, cl.LookupString(t.StrIdx)
}

// ReadIcon reads an Icon command at offset.
func (cl *CommandList) ReadIcon(offset CommandPtr) IconCmd {
	var c IconCmd
	readCmd(cl, offset, &c)
	return c
}
