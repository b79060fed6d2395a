package qrsdet

// updateRR records a confirmed RR interval into the "recent" rolling buffer
// (always), and into the "selected" rolling buffer when the interval falls
// within the current regular band. Recomputes the RR acceptance/missed
// limits and classifies the heart rate as Regular or Irregular.
//
// On a regular interval:
//
//	rrLowL    = 0.92*recentRRM = recentRRM - (2/25)*recentRRM
//	rrHighL   = 1.16*recentRRM = recentRRM + (4/25)*recentRRM
//	rrMissedL = 1.66*rrM       = rrM + (33/50)*rrM
//
// On an irregular one, rrMissedL = 1.66*recentRRM and thI1/thF1 are halved.
func (d *Detector) updateRR(qrs int16) {
	d.rr1Sum += qrs
	d.rr1Sum -= d.rrAvg1Buf[d.rr1Head]
	d.rrAvg1Buf[d.rr1Head] = qrs
	d.recentRRM = d.rr1Sum / rrBufSize
	d.rr1Head++
	if d.rr1Head == rrBufSize {
		d.rr1Head = 0
	}

	if qrs >= d.rrLowL && qrs <= d.rrHighL {
		d.rr2Sum += qrs
		d.rr2Sum -= d.rrAvg2Buf[d.rr2Head]
		d.rrAvg2Buf[d.rr2Head] = qrs
		d.rrM = d.rr2Sum / rrBufSize
		d.rr2Head++
		if d.rr2Head == rrBufSize {
			d.rr2Head = 0
		}

		d.rrLowL = d.recentRRM - (d.recentRRM<<1)/25
		d.rrHighL = d.recentRRM + (d.recentRRM<<2)/25
		d.rrMissedL = d.rrM + (d.rrM*33)/50
		d.hrState = Regular
	} else {
		d.rrMissedL = d.recentRRM + (d.recentRRM*33)/50
		d.thI1 >>= 1
		d.thF1 >>= 1
		d.hrState = Irregular
	}
}
