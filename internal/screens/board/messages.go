package board

// tickMsg is one panel sample. gen ties it to the tick chain that
// scheduled it so a replaced board never acts on stale ticks.
type tickMsg struct {
	gen int
}
