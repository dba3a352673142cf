package game

import "testing"

func TestDelayFramesCurve(t *testing.T) {
	tuning := DefaultTuning()

	if got := tuning.DelayFrames(1); got != tuning.MaxDelayFrames {
		t.Errorf("DelayFrames(1) = %d, expected the slowest interval %d", got, tuning.MaxDelayFrames)
	}
	if got := tuning.DelayFrames(MaxLength); got != tuning.MinDelayFrames {
		t.Errorf("DelayFrames(%d) = %d, expected the fastest interval %d", MaxLength, got, tuning.MinDelayFrames)
	}

	// Defensive for callers that tick before Init.
	if tuning.DelayFrames(0) != tuning.DelayFrames(1) {
		t.Error("length below 1 should be treated as 1")
	}

	prev := tuning.DelayFrames(1)
	for length := 2; length <= MaxLength; length++ {
		d := tuning.DelayFrames(length)
		if d < tuning.MinDelayFrames || d > tuning.MaxDelayFrames {
			t.Fatalf("DelayFrames(%d) = %d, out of [%d, %d]",
				length, d, tuning.MinDelayFrames, tuning.MaxDelayFrames)
		}
		if d > prev {
			t.Fatalf("DelayFrames(%d) = %d rose above DelayFrames(%d) = %d",
				length, d, length-1, prev)
		}
		prev = d
	}
}

func TestDelayFramesQuadraticShape(t *testing.T) {
	tuning := DefaultTuning()

	// Ease-in: the drop over the first growth steps is smaller than the
	// drop across the middle of the curve.
	early := tuning.DelayFrames(1) - tuning.DelayFrames(5)
	mid := tuning.DelayFrames(15) - tuning.DelayFrames(25)
	if early >= mid {
		t.Errorf("early drop %d should be smaller than mid-curve drop %d", early, mid)
	}
}

func TestSpeedReadout(t *testing.T) {
	tuning := DefaultTuning()

	if got := tuning.SpeedReadout(tuning.MaxDelayFrames); got != 1 {
		t.Errorf("readout at the slowest delay = %d, expected 1", got)
	}
	if got := tuning.SpeedReadout(tuning.MinDelayFrames); got != tuning.SpeedMaxValue() {
		t.Errorf("readout at the fastest delay = %d, expected %d", got, tuning.SpeedMaxValue())
	}

	prev := 0
	for delay := tuning.MaxDelayFrames; delay >= tuning.MinDelayFrames; delay-- {
		r := tuning.SpeedReadout(delay)
		if r < 1 || r > tuning.SpeedMaxValue() {
			t.Fatalf("SpeedReadout(%d) = %d, out of [1, %d]", delay, r, tuning.SpeedMaxValue())
		}
		if r < prev {
			t.Fatalf("SpeedReadout(%d) = %d dropped below %d", delay, r, prev)
		}
		prev = r
	}
}
