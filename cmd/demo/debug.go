package main

import (
	"fmt"
	"io"
	"os"

	"github.com/germtb/immui"
)

// dumpCommands prints one line per realized command in ctx's current
// frame, in z-order, to stdout. Nothing in the demo calls it; it is not
// part of the render loop or bound to any key.
//
// Grounded on germtb-goli's FprintLayout/DebugLayout/SprintLayout
// (germtb-goli/debug.go): same "walk a tree/stream, one indented line
// per node, write to an io.Writer" shape, adapted from a layout-box tree
// to immui's flat realized command stream.
func dumpCommands(ctx *immui.Context) {
	fprintCommands(os.Stdout, ctx)
}

func fprintCommands(w io.Writer, ctx *immui.Context) {
	it := ctx.Commands()
	depth := 0
	for {
		typ, ptr, ok := it.Next()
		if !ok {
			return
		}
		switch typ {
		case immui.CmdClip:
			c := it.ReadClip(ptr)
			fmt.Fprintf(w, "%sClip  rect=%+v\n", indent(depth), c.Rect)
		case immui.CmdRect:
			r := it.ReadRect(ptr)
			fmt.Fprintf(w, "%sRect  rect=%+v color=%+v\n", indent(depth), r.Rect, r.Color)
		case immui.CmdText:
			t, str := it.ReadText(ptr)
			fmt.Fprintf(w, "%sText  pos=%+v %q\n", indent(depth), t.Pos, str)
		case immui.CmdIcon:
			ic := it.ReadIcon(ptr)
			fmt.Fprintf(w, "%sIcon  rect=%+v id=%d\n", indent(depth), ic.Rect, ic.Icon)
		}
	}
}

func indent(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}
