package pricing

import "time"

// Sentinel activity window. A season or override whose bounds still equal
// these constants has "no explicit scoping": WindowOpen is the reference
// epoch and WindowClose lies thirty years past it, effectively spanning
// all time. Named constants keep the customized-vs-default checks
// branch-free instead of overloading nil.
var (
	WindowOpen  = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	WindowClose = WindowOpen.AddDate(30, 0, 0)
)

// windowActive reports whether at falls inside [start, end] inclusive,
// treating a still-default bound as unconstrained on that side.
func windowActive(at, start, end time.Time) bool {
	openDefault := start.Equal(WindowOpen)
	closeDefault := end.Equal(WindowClose)
	switch {
	case openDefault && closeDefault:
		return true
	case openDefault:
		return !at.After(end)
	case closeDefault:
		return !at.Before(start)
	default:
		return !at.Before(start) && !at.After(end)
	}
}
