package qrsdet

import "testing"

func TestResetIdempotence(t *testing.T) {
	a := NewDetector()
	b := NewDetector()
	a.Reset()
	a.Reset()
	b.Reset()
	if *a != *b {
		t.Errorf("Reset(); Reset() != Reset(): %+v vs %+v", *a, *b)
	}
}

func TestZeroInputSilence(t *testing.T) {
	d := NewDetector()
	for n := 0; n < 32000; n++ {
		if delay := d.ProcessSample(0); delay != 0 {
			t.Fatalf("sample %d: unexpected beat with zero input, delay=%d", n, delay)
		}
	}
	if d.spki != 0 {
		t.Errorf("expected spki == 0 on an all-zero stream, got %d", d.spki)
	}
	if d.state != StartUp && d.state != LearnPh1 {
		t.Errorf("expected state to stay in StartUp/LearnPh1 on an all-zero stream, got %v", d.state)
	}
}

func TestStallReset(t *testing.T) {
	d := NewDetector()
	// Push some nonzero state in so reset actually has something to undo.
	for n := 0; n < 500; n++ {
		d.ProcessSample(int16(n % 7))
	}
	for n := 0; n < 801; n++ {
		d.ProcessSample(0)
	}

	fresh := NewDetector()
	// countSinceRR already stood at 500 when the zeros began, so the
	// internal Reset() fired on the 301st zero (countSinceRR reaching 801)
	// and the remaining 500 zeros ran on freshly initialized state.
	for n := 0; n < 500; n++ {
		fresh.ProcessSample(0)
	}
	if *d != *fresh {
		t.Errorf("detector not observably equal to a fresh instance after stall: %+v vs %+v", *d, *fresh)
	}
}

func TestInvariantsHoldAcrossStream(t *testing.T) {
	d := NewDetector()
	for n := 0; n < 5000; n++ {
		x := int16(0)
		if n%200 == 0 {
			x = 1000
		}
		d.ProcessSample(x)

		if d.lpHead < 0 || d.lpHead >= lpBufSize {
			t.Fatalf("sample %d: lpHead out of range: %d", n, d.lpHead)
		}
		if d.hpHead < 0 || d.hpHead >= hpBufSize {
			t.Fatalf("sample %d: hpHead out of range: %d", n, d.hpHead)
		}
		if d.mvaHead < 0 || d.mvaHead >= mvaBufSize {
			t.Fatalf("sample %d: mvaHead out of range: %d", n, d.mvaHead)
		}

		var sum1, sum2 int16
		for _, v := range d.rrAvg1Buf {
			sum1 += v
		}
		for _, v := range d.rrAvg2Buf {
			sum2 += v
		}
		if sum1 != d.rr1Sum {
			t.Fatalf("sample %d: rr1Sum invariant broken: sum=%d rr1Sum=%d", n, sum1, d.rr1Sum)
		}
		if sum2 != d.rr2Sum {
			t.Fatalf("sample %d: rr2Sum invariant broken: sum=%d rr2Sum=%d", n, sum2, d.rr2Sum)
		}

		if d.thI2 != d.thI1>>1 {
			t.Fatalf("sample %d: thI2 != thI1/2: thI1=%d thI2=%d", n, d.thI1, d.thI2)
		}
		if d.thF2 != d.thF1>>1 {
			t.Fatalf("sample %d: thF2 != thF1/2: thF1=%d thF2=%d", n, d.thF1, d.thF2)
		}

		if d.blankCnt < 0 || d.blankCnt > pt200ms {
			t.Fatalf("sample %d: blankCnt out of range: %d", n, d.blankCnt)
		}
		if d.countSinceRR < 0 || d.countSinceRR > pt4000ms {
			t.Fatalf("sample %d: countSinceRR out of range: %d", n, d.countSinceRR)
		}
	}
}

func TestRegularImpulseTrainProducesRegularBeats(t *testing.T) {
	d := NewDetector()

	var beatSamples []int
	n := 0
	// A beat is reported some samples after its impulse, so every
	// sample's return value is checked, not only the impulse's.
	process := func(x int16) {
		if delay := d.ProcessSample(x); delay != 0 {
			beatSamples = append(beatSamples, n-int(delay))
		}
		n++
	}
	for impulse := 200; impulse <= 8*200; impulse += 200 {
		for n < impulse {
			process(0)
		}
		process(1000)
		for k := 0; k < 20; k++ {
			process(0)
		}
	}

	if len(beatSamples) < 2 {
		t.Fatalf("expected at least two regular beats, got %v", beatSamples)
	}
	for i := 1; i < len(beatSamples); i++ {
		gap := beatSamples[i] - beatSamples[i-1]
		if gap < 190 || gap > 210 {
			t.Errorf("beat gap %d out of expected ~200-sample range: %v", gap, beatSamples)
		}
	}
	if d.hrState != Regular {
		t.Errorf("expected Regular heart-rate state, got %v", d.hrState)
	}
}

func TestDelayPositivity(t *testing.T) {
	d := NewDetector()
	n := 0
	check := func(delay int16) {
		if delay != 0 && delay != generalDelay+pt200ms {
			t.Errorf("beat delay %d is neither 0 nor the expected %d", delay, generalDelay+pt200ms)
		}
	}
	for impulse := 200; impulse <= 6*200; impulse += 200 {
		for ; n < impulse; n++ {
			check(d.ProcessSample(0))
		}
		check(d.ProcessSample(1000))
		n++
	}
}
