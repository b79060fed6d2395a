package qrsdet

// learningPhase1 computes the running max and mean of peaks seen during
// StartUp/LearnPh1, then seeds the adaptive thresholds at the first peak
// that arrives once countSinceRR (samples since startup or the last reset)
// has reached 400, i.e. 2 seconds. Only called on samples where the
// post-gate integrated peak is non-zero.
//
// stMeanPkBP is seeded from the *current* bestPeakBP on the very first call
// but averaged thereafter; the LearnPh2 threshold seed for spkf still reads
// the current bestPeakBP rather than the averaged stMeanPkBP. This
// asymmetry is preserved from the reference, not "fixed".
func (d *Detector) learningPhase1(peaki uint16) {
	if peaki > d.stMxPk {
		d.stMxPk = peaki
	}

	switch {
	case d.state == StartUp:
		d.state = LearnPh1
		d.stMeanPk = peaki
		d.stMeanPkBP = d.bestPeakBP
	case d.countSinceRR < pt2000ms:
		d.stMeanPk = (d.stMeanPk + peaki) >> 1
		d.stMeanPkBP = (d.stMeanPkBP + d.bestPeakBP) >> 1
	default:
		d.state = LearnPh2

		d.spki = d.stMxPk >> 1
		d.npki = d.stMeanPk >> 3
		d.thI1 = d.npki + ((d.spki - d.npki) >> 2)
		d.thI2 = d.thI1 >> 1

		d.spkf = d.bestPeakBP >> 1
		d.npkf = d.stMeanPkBP >> 3
		d.thF1 = d.npkf + ((d.spkf - d.npkf) >> 2)
		d.thF2 = d.thF1 >> 1
	}
}

// decide runs the LearnPh2/Detecting decision logic for one sample: a
// candidate beat (peaki above both thresholds) either completes the
// LearnPh2->Detecting transition, passes/fails the T-wave test, or is
// confirmed as a beat; a sub-threshold but non-zero peak is classified as
// noise and may become the search-back candidate.
func (d *Detector) decide(peaki uint16) int16 {
	var beatDelay int16

	if peaki > d.thI1 && d.bestPeakBP > d.thF1 {
		switch d.state {
		case LearnPh2:
			d.updateThI(peaki, false)
			d.updateThF(d.bestPeakBP, false)

			beatDelay = generalDelay + pt200ms
			d.countSinceRR = 0
			d.oldPeakDR = d.bestPeakDR
			d.bestPeakDR = 0
			d.bestPeakBP = 0

			d.state = Detecting

		default: // Detecting
			if d.countSinceRR < pt360ms && d.bestPeakDR < (d.oldPeakDR>>2) {
				d.updateThI(peaki, true)
				d.updateThF(d.bestPeakBP, true)
			} else {
				d.updateThI(peaki, false)
				d.updateThF(d.bestPeakBP, false)
				d.updateRR(d.countSinceRR)

				beatDelay = generalDelay + pt200ms
				d.countSinceRR = 0
				d.oldPeakDR = d.bestPeakDR
				d.bestPeakDR = 0
				d.bestPeakBP = 0

				d.clearSearchBack()
			}
		}
	} else if peaki > 0 {
		d.updateThI(peaki, true)
		d.updateThF(d.bestPeakBP, true)

		if peaki > d.sbPeakI && d.countSinceRR >= pt360ms {
			d.sbPeakI = peaki
			d.sbPeakBP = d.bestPeakBP
			d.sbPeakDR = d.bestPeakDR
			d.sbCntI = d.countSinceRR
		}
	}

	return beatDelay
}

// searchBack promotes the tallest noise-classified peak seen outside the
// 360 ms refractory to a confirmed beat once too long has passed since the
// last beat, recovering a missed detection without ever buffering samples.
func (d *Detector) searchBack() int16 {
	if d.state != Detecting {
		return 0
	}
	if !(d.countSinceRR > d.rrMissedL && d.sbPeakI > d.thI2 && d.sbPeakBP > d.thF2) {
		return 0
	}

	d.updateThI(d.sbPeakI, false)
	d.updateThF(d.sbPeakBP, false)
	d.updateRR(d.sbCntI)

	d.countSinceRR -= d.sbCntI
	beatDelay := d.countSinceRR + generalDelay + pt200ms

	d.oldPeakDR = d.sbPeakDR
	d.bestPeakDR = 0
	d.bestPeakBP = 0

	d.clearSearchBack()

	return beatDelay
}

func (d *Detector) clearSearchBack() {
	d.sbCntI = 0
	d.sbPeakI = 0
	d.sbPeakBP = 0
	d.sbPeakDR = 0
}
