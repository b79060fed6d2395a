package qrsdet

// LPFVal returns the most recent low-pass filter output.
func (d *Detector) LPFVal() int16 { return d.lpfVal }

// HPFVal returns the most recent high-pass (band-passed) filter output.
func (d *Detector) HPFVal() int16 { return d.hpfVal }

// DRFVal returns the most recent derivative filter output.
func (d *Detector) DRFVal() int16 { return d.drfVal }

// SQFVal returns the most recent squared filter output.
func (d *Detector) SQFVal() uint16 { return d.sqfVal }

// MVAVal returns the most recent moving-average integrator output.
func (d *Detector) MVAVal() uint16 { return d.mvaVal }

// ThI1 returns the current integrated-signal primary threshold.
func (d *Detector) ThI1() uint16 { return d.thI1 }

// ThF1 returns the current band-passed-signal primary threshold.
func (d *Detector) ThF1() int16 { return d.thF1 }

// SPKI returns the integrated-signal level estimate.
func (d *Detector) SPKI() uint16 { return d.spki }

// NPKI returns the integrated-signal noise-level estimate.
func (d *Detector) NPKI() uint16 { return d.npki }

// SPKF returns the band-passed-signal level estimate.
func (d *Detector) SPKF() int16 { return d.spkf }

// NPKF returns the band-passed-signal noise-level estimate.
func (d *Detector) NPKF() int16 { return d.npkf }

// HRState returns whether the most recent RR interval was regular.
func (d *Detector) HRState() HRState { return d.hrState }

// State returns the decision state machine's current phase.
func (d *Detector) State() State { return d.state }

// ShortTimeHR returns the instantaneous heart rate in beats per minute,
// derived from the mean of the last 8 RR intervals regardless of
// regularity. fs is the sampling frequency in Hz.
func (d *Detector) ShortTimeHR(fs int16) int16 {
	return 60 / (d.recentRRM / fs)
}

// LongTimeHR returns the robust heart rate in beats per minute, derived
// from the mean of the last 8 RR intervals that fell within the regular
// band. fs is the sampling frequency in Hz.
func (d *Detector) LongTimeHR(fs int16) int16 {
	return 60 / (d.rrM / fs)
}
