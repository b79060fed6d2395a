package qrsdet

// square implements the squaring stage with its saturation clamps, applied
// strictly in order: (1) |drfVal| > 256 saturates to 0xFFFF, (2) otherwise
// square the rectified magnitude, (3) clamp the result to 30000. This is the
// one true multiplication on the hot path.
func (d *Detector) square() {
	if d.drfVal > sqrLimVal || d.drfVal < -sqrLimVal {
		d.sqfVal = 0xFFFF
	} else {
		var mag uint16
		if d.drfVal < 0 {
			mag = uint16(-d.drfVal)
		} else {
			mag = uint16(d.drfVal)
		}
		d.sqfVal = mag * mag
	}

	if d.sqfVal > sqrLimOut {
		d.sqfVal = sqrLimOut
	}
}
