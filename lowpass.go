package qrsdet

// lowPass implements the Pan-Tompkins low-pass filter,
//
//	y[n] = 2*y[n-1] - y[n-2] + x[n] - 2*x[n-6] + x[n-12]
//
// in Direct Form II: lpYOld holds y[n-1], lpYNew holds y[n-2], and lpBuf
// holds raw input samples so that lpBuf[lpHead] (about to be overwritten)
// holds x[n-12] and lpBuf[halfHead] (6 slots behind lpHead) holds x[n-6].
// Output is arithmetically right-shifted by 5; delay is 5 samples.
func (d *Detector) lowPass(x int16) {
	halfHead := d.lpHead - lpBufSize/2
	if halfHead < 0 {
		halfHead += lpBufSize
	}

	w := (d.lpYOld << 1) - d.lpYNew + x - (d.lpBuf[halfHead] << 1) + d.lpBuf[d.lpHead]
	d.lpYNew = d.lpYOld
	d.lpYOld = w
	d.lpBuf[d.lpHead] = x

	d.lpfVal = w >> 5

	d.lpHead++
	if d.lpHead == lpBufSize {
		d.lpHead = 0
	}
}
