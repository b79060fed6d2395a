package qrsdet

// highPass implements the Pan-Tompkins high-pass filter,
//
//	y[n] = y[n-1] + x[n-32]/32 - x[n]/32 + x[n-16] - x[n-17]
//
// where x is the low-pass output. Direct Form II: yH carries y[n-1] across
// samples, and hpBuf holds LP outputs so that hpBuf[hpHead] holds x[n-32],
// hpBuf[halfHead] (16 behind) holds x[n-16], and hpBuf[halfHead-1] holds
// x[n-17]. The /32 divisions fold into arithmetic shifts of the already
// >>5-scaled LP output. Output is yH>>1; delay is 16 samples.
func (d *Detector) highPass() {
	halfHead := d.hpHead - hpBufSize/2
	if halfHead < 0 {
		halfHead += hpBufSize
	}

	prevHead := halfHead - 1
	if prevHead < 0 {
		prevHead = hpBufSize - 1
	}

	d.yH += (d.hpBuf[d.hpHead] >> 5) - (d.lpfVal >> 5) + d.hpBuf[halfHead] - d.hpBuf[prevHead]
	d.hpBuf[d.hpHead] = d.lpfVal

	d.hpfVal = d.yH >> 1

	d.hpHead++
	if d.hpHead == hpBufSize {
		d.hpHead = 0
	}
}
