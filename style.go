package immui

// ColorId indexes Style.Colors. Composite widgets add 1 for hover and 2
// for focus when picking a frame color, the convention grounded on
// _examples/other_examples's Zyko0-microui-ebitengine controls.go
// drawControlFrame.
type ColorId int

const (
	ColorText ColorId = iota
	ColorBorder
	ColorWindowBG
	ColorTitleBG
	ColorTitleText
	ColorPanelBG
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	colorMax
)

// Style holds the metrics and palette every drawing/layout routine reads.
// Concrete field set grounded on other_examples/ShadyHippo-debugui's
// `style` struct.
type Style struct {
	Size          Vec2
	Padding       int32
	Spacing       int32
	Indent        int32
	TitleHeight   int32
	ScrollbarSize int32
	ThumbSize     int32
	Colors        [colorMax]Color
}

// DefaultStyle returns a Style with the reference palette and metrics,
// the context-local analogue of germtb-goli's global
// DEFAULT_STYLE (no package-level mutable global — every Context owns
// its own Style value).
func DefaultStyle() Style {
	return Style{
		Size:          Vec2{X: 68, Y: 10},
		Padding:       5,
		Spacing:       4,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		Colors: [colorMax]Color{
			ColorText:        {230, 230, 230, 255},
			ColorBorder:      {25, 25, 25, 255},
			ColorWindowBG:    {50, 50, 50, 255},
			ColorTitleBG:     {25, 25, 25, 255},
			ColorTitleText:   {240, 240, 240, 255},
			ColorPanelBG:     {0, 0, 0, 0},
			ColorButton:      {75, 75, 75, 255},
			ColorButtonHover: {95, 95, 95, 255},
			ColorButtonFocus: {115, 115, 115, 255},
			ColorBase:        {30, 30, 30, 255},
			ColorBaseHover:   {35, 35, 35, 255},
			ColorBaseFocus:   {40, 40, 40, 255},
			ColorScrollBase:  {43, 43, 43, 255},
			ColorScrollThumb: {30, 30, 30, 255},
		},
	}
}
