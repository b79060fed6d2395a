package qrsdet

// movingAverage maintains a rolling sum of the last mvaBufSize squared
// samples and normalizes it to mvaVal. Delay 15 samples. The division by
// mvaBufSize is the one true division on the hot path besides the
// threshold/RR fractions.
func (d *Detector) movingAverage() {
	if d.mvSum < 0xFFFF-d.sqfVal {
		d.mvSum += d.sqfVal
	} else {
		d.mvSum = 0xFFFF
	}

	if d.mvSum > d.mvaBuf[d.mvaHead] {
		d.mvSum -= d.mvaBuf[d.mvaHead]
	} else {
		d.mvSum = 0
	}

	d.mvaBuf[d.mvaHead] = d.sqfVal

	d.mvaVal = d.mvSum / mvaBufSize
	if d.mvaVal > mvaLimVal {
		d.mvaVal = mvaLimVal
	}

	d.mvaHead++
	if d.mvaHead == mvaBufSize {
		d.mvaHead = 0
	}
}
