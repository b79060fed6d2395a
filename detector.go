// Package qrsdet implements a real-time, fixed-point QRS (R-peak) detector
// for single-lead ECG streams sampled at 200 Hz, following Pan & Tompkins'
// algorithm. Every stage on the hot path operates on 16/32-bit integers with
// adds, subtracts and shifts; the only true multiplication is in the
// squaring stage, and the only true division is the moving-average
// normalization and the RR-fraction thresholds.
package qrsdet

// Detector owns all state for one ECG stream. It is not safe for concurrent
// use by multiple goroutines; run one Detector per stream.
type Detector struct {
	// Filter buffers and head indices.
	lpBuf  [lpBufSize]int16
	hpBuf  [hpBufSize]int16
	drBuf  [drBufSize]int16
	mvaBuf [mvaBufSize]uint16

	lpHead  int
	hpHead  int
	mvaHead int

	// Direct Form II recursive state.
	lpYNew int16
	lpYOld int16
	yH     int16

	// Most recent filter outputs.
	lpfVal int16
	hpfVal int16
	drfVal int16
	sqfVal uint16
	mvaVal uint16
	mvSum  uint16

	// Peak-tracking registers.
	prevMVA     uint16
	prevPrevMVA uint16

	prevBP     int16
	prevPrevBP int16
	bestPeakBP int16

	prevDR     int16
	prevPrevDR int16
	bestPeakDR int16
	oldPeakDR  int16

	// Blank-time gate.
	blankCnt  int16
	peakiTemp uint16

	// Adaptive thresholds, integrated (MVA) side.
	spki uint16
	npki uint16
	thI1 uint16
	thI2 uint16

	// Adaptive thresholds, band-passed side.
	spkf int16
	npkf int16
	thF1 int16
	thF2 int16

	// RR tracking.
	rrAvg1Buf [rrBufSize]int16
	rrAvg2Buf [rrBufSize]int16
	rr1Head   int
	rr2Head   int
	rr1Sum    int16
	rr2Sum    int16

	recentRRM int16
	rrM       int16
	rrLowL    int16
	rrHighL   int16
	rrMissedL int16
	hrState   HRState

	// Search-back registers.
	sbCntI   int16
	sbPeakI  uint16
	sbPeakBP int16
	sbPeakDR int16

	// Learning aggregates.
	stMxPk     uint16
	stMeanPk   uint16
	stMeanPkBP int16

	countSinceRR int16
	state        State
}

// NewDetector allocates and initializes a Detector, ready to process samples.
func NewDetector() *Detector {
	d := &Detector{}
	d.Reset()
	return d
}

// Reset re-initializes all state in place, equivalent to the reference's
// PT_init(). Calling Reset twice in a row is equivalent to calling it once.
func (d *Detector) Reset() {
	*d = Detector{}

	d.state = StartUp
	d.hrState = Regular

	d.recentRRM = pt1000ms
	d.rrM = pt1000ms
	d.rrLowL = rr92Percent
	d.rrHighL = rr116Percent
	d.rrMissedL = rr166Percent

	for i := range d.rrAvg1Buf {
		d.rrAvg1Buf[i] = pt1000ms
	}
	for i := range d.rrAvg2Buf {
		d.rrAvg2Buf[i] = pt1000ms
	}
	d.rr1Sum = pt1000ms << 3
	d.rr2Sum = pt1000ms << 3
}

// ProcessSample consumes one ECG sample and returns the beat-delay: 0 if no
// beat was detected this sample, or a positive number of samples back to
// where the R-peak occurred.
func (d *Detector) ProcessSample(x int16) int16 {
	var beatDelay int16

	d.lowPass(x)
	d.highPass()

	d.peakBP(d.hpfVal)

	d.derivative()
	d.peakDR(d.drfVal)

	d.square()

	d.movingAverage()
	peaki := d.peakMVA()
	peaki = d.blankGate(peaki)

	d.countSinceRR++

	if d.state == StartUp || d.state == LearnPh1 {
		if peaki > 0 {
			d.learningPhase1(peaki)
		}
	} else {
		beatDelay = d.decide(peaki)
	}

	if sb := d.searchBack(); sb != 0 {
		beatDelay = sb
	}

	if d.countSinceRR > pt4000ms {
		d.Reset()
	}

	return beatDelay
}
