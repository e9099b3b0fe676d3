package immui

// Option is a union of 16-bit widget/container option flags.
type Option uint16

const (
	OptAlignCenter Option = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptPopup
	OptClosed
	OptExpanded
)

func (o Option) has(flag Option) bool { return o&flag != 0 }

// Result is the single-frame outcome bitmask returned by every
// interactive widget.
type Result uint8

const (
	// ResultActive means the widget holds focus.
	ResultActive Result = 1 << iota
	// ResultSubmit means the widget was clicked/activated, or Enter was
	// pressed while it held focus.
	ResultSubmit
	// ResultChange means the widget's bound value changed this frame.
	ResultChange
)

func (r Result) Active() bool { return r&ResultActive != 0 }
func (r Result) Submit() bool { return r&ResultSubmit != 0 }
func (r Result) Change() bool { return r&ResultChange != 0 }
