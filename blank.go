package qrsdet

// blankGate implements the 200 ms (40-sample) "keep the tallest peak"
// suppression window that follows the integrated-signal peak detector: the
// tallest candidate within any 40-sample window is surfaced exactly once,
// at the window's close. The decrement inside the third branch's else arm
// is easy to drop by accident; it is kept deliberately.
func (d *Detector) blankGate(peaki uint16) uint16 {
	switch {
	case peaki == 0 && d.blankCnt > 0:
		d.blankCnt--
		if d.blankCnt == 0 {
			peaki = d.peakiTemp
		}
	case peaki > 0 && d.blankCnt == 0:
		d.blankCnt = pt200ms
		d.peakiTemp = peaki
		peaki = 0
	case peaki > 0:
		if peaki > d.peakiTemp {
			d.blankCnt = pt200ms
			d.peakiTemp = peaki
			peaki = 0
		} else {
			d.blankCnt--
			if d.blankCnt == 0 {
				peaki = d.peakiTemp
			} else {
				peaki = 0
			}
		}
	}
	return peaki
}
