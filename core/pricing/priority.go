package pricing

import "strconv"

// Priority is the bounded tie-breaking scale used by every layered entity.
// Values outside [PriorityNone, PriorityHighest] are clamped on
// assignment, never rejected: malformed priority input must not be able to
// fail resolution.
type Priority int

const (
	PriorityNone    Priority = 0
	PriorityLow     Priority = 250
	PriorityNormal  Priority = 500
	PriorityHigh    Priority = 750
	PriorityHighest Priority = 1000
)

// ClampPriority forces v into [PriorityNone, PriorityHighest], returning
// the nearest bound for out-of-range input.
func ClampPriority(v int) Priority {
	if v < int(PriorityNone) {
		return PriorityNone
	}
	if v > int(PriorityHighest) {
		return PriorityHighest
	}
	return Priority(v)
}

// String returns the step name for the named values and the raw integer
// for anything in between.
func (p Priority) String() string {
	switch p {
	case PriorityNone:
		return "none"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityHighest:
		return "highest"
	}
	return strconv.Itoa(int(p))
}

// ParsePriority maps a step name back to its value, returning def for
// anything unrecognized.
func ParsePriority(s string, def Priority) Priority {
	switch s {
	case "none":
		return PriorityNone
	case "low":
		return PriorityLow
	case "normal":
		return PriorityNormal
	case "high":
		return PriorityHigh
	case "highest":
		return PriorityHighest
	}
	if v, err := strconv.Atoi(s); err == nil {
		return ClampPriority(v)
	}
	return def
}
