package qrsdet

// derivative implements the 5-point derivative,
//
//	y[n] = (2*x[n] + x[n-1] - x[n-3] - 2*x[n-4]) >> 3
//
// over the HP output, using the 4-slot tap line drBuf (no ring pointer:
// drBuf[0..3] hold x[n-1..n-4] before this sample's shift). Delay 2 samples.
func (d *Detector) derivative() {
	w := d.drBuf[0] - d.drBuf[2]
	w += (d.hpfVal - d.drBuf[3]) << 1
	w >>= 3

	d.drBuf[3] = d.drBuf[2]
	d.drBuf[2] = d.drBuf[1]
	d.drBuf[1] = d.drBuf[0]
	d.drBuf[0] = d.hpfVal

	d.drfVal = w
}
