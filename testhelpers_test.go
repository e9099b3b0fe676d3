package immui

// newTestContext returns a Context wired with fixed-width text metrics
// (one cell per rune, one row tall), so layout and widget tests get
// deterministic rect math without a real font.
func newTestContext() *Context {
	c := NewContext()
	c.SetTextMetrics(
		func(f Font, s string) int32 { return int32(len([]rune(s))) },
		func(f Font) int32 { return 1 },
	)
	return c
}
