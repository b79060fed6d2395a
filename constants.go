package qrsdet

// Timing constants, assuming a 200 Hz sampling rate.
const (
	pt200ms  = 40
	pt360ms  = 72
	pt1000ms = 200
	pt2000ms = 400
	pt4000ms = 800

	generalDelay = 38
)

// RR acceptance limits at startup (92%, 116%, 166% of 200).
const (
	rr92Percent  = 184
	rr116Percent = 232
	rr166Percent = 332
)

// Ring buffer sizes.
const (
	lpBufSize = 12
	hpBufSize = 32
	drBufSize = 4
	mvaBufSize = 30
	rrBufSize = 8
)

// Squaring / MVA clamps.
const (
	sqrLimVal = 256
	sqrLimOut = 30000
	mvaLimVal = 32000
)

// State is the decision state machine's current phase.
type State int

const (
	StartUp State = iota
	LearnPh1
	LearnPh2
	Detecting
)

func (s State) String() string {
	switch s {
	case StartUp:
		return "StartUp"
	case LearnPh1:
		return "LearnPh1"
	case LearnPh2:
		return "LearnPh2"
	case Detecting:
		return "Detecting"
	default:
		return "Unknown"
	}
}

// HRState classifies the most recent RR interval as regular or irregular.
type HRState int

const (
	Regular HRState = iota
	Irregular
)

func (h HRState) String() string {
	if h == Irregular {
		return "Irregular"
	}
	return "Regular"
}
