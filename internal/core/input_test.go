package core

import (
	"testing"
	"time"
)

func TestInputFrameAxis(t *testing.T) {
	in := NewInputFrame()

	if in.Axis(AxisPaddle) != 0 {
		t.Error("unbound axis should read as 0")
	}

	in.SetAxis(AxisPaddle, 0.5)
	if in.Axis(AxisPaddle) != 0.5 {
		t.Errorf("Axis() = %v, expected 0.5", in.Axis(AxisPaddle))
	}

	in.SetAxis(AxisPaddle, 7)
	if in.Axis(AxisPaddle) != 1 {
		t.Errorf("Axis() = %v, expected clamp to 1", in.Axis(AxisPaddle))
	}

	var zero InputFrame
	if zero.Axis(AxisPaddle) != 0 {
		t.Error("zero-value frame should have no axes")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	in := NewInputFrame()
	in.Set(ActionLaunch)
	in.SetAxis(AxisPaddle, -1)
	in.Elapsed = 16 * time.Millisecond

	clone := in.Clone()
	in.Clear()

	if in.Has(ActionLaunch) || in.Axis(AxisPaddle) != 0 || in.Elapsed != 0 {
		t.Error("Clear should reset actions, axes and elapsed time")
	}
	if !clone.Has(ActionLaunch) || clone.Axis(AxisPaddle) != -1 || clone.Seconds() != 0.016 {
		t.Error("Clone should be independent of the original")
	}
}

func TestRuntimeConfigFrameTime(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		in, expected time.Duration
	}{
		{16 * time.Millisecond, 16 * time.Millisecond},
		{-time.Second, 0},
		{time.Second, cfg.MaxFrameTime},
	}

	for _, tc := range tests {
		if got := cfg.FrameTime(tc.in); got != tc.expected {
			t.Errorf("FrameTime(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	cfg.MaxFrameTime = 0
	if got := cfg.FrameTime(time.Second); got != time.Second {
		t.Errorf("FrameTime without ceiling = %v, expected 1s", got)
	}
}
