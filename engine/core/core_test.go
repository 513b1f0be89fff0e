package core

import (
	"errors"
	"math"
	"testing"
)

func TestFrameMetricsRollingAverage(t *testing.T) {
	m := NewFrameMetrics(5)
	if m.FPS() != 0 {
		t.Fatalf("FPS() with no samples = %v, want 0", m.FPS())
	}
	// the first sample falls out of the 5-wide window
	for _, ft := range []float64{1.0, 0.02, 0.02, 0.02, 0.02, 0.02} {
		m.Update(ft)
	}
	if got := m.FrameTime(); math.Abs(got-0.02) > 1e-12 {
		t.Fatalf("FrameTime() = %v, want 0.02", got)
	}
	if got := m.FPS(); math.Abs(got-50) > 1e-9 {
		t.Fatalf("FPS() = %v, want 50", got)
	}
	if m.DeltaTime() != 0.02 {
		t.Fatalf("DeltaTime() = %v, want 0.02", m.DeltaTime())
	}
	if m.Frames() != 6 {
		t.Fatalf("Frames() = %d, want 6", m.Frames())
	}
}

func TestFrameMetricsClampsNegative(t *testing.T) {
	m := NewFrameMetrics(0)
	m.Update(-1)
	if m.DeltaTime() != 0 {
		t.Fatalf("DeltaTime() = %v, want 0", m.DeltaTime())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: "info", want: InfoLevel},
		{in: "warn", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "fatal", wantErr: true},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("ParseLogLevel(%q) error = %v, want ErrInvalidConfig", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseLogLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestEventFireOrderAndInput(t *testing.T) {
	EventSystemInitialize()
	defer EventSystemShutdown()
	if err := InputInitialize(); err != nil {
		t.Fatal(err)
	}
	defer InputShutdown()

	var got []string
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) {
		ke := ctx.Data.(*KeyEvent)
		if ke.KeyCode == KEY_W {
			got = append(got, "first")
		}
	})
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) {
		got = append(got, "second")
	})

	InputProcessKey(KEY_W, true)
	// repeated press with no state change fires nothing
	InputProcessKey(KEY_W, true)

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("listeners ran as %v, want [first second]", got)
	}
	if !InputIsKeyDown(KEY_W) || InputWasKeyDown(KEY_W) {
		t.Fatalf("key state before InputUpdate is wrong")
	}
	InputUpdate()
	if !InputWasKeyDown(KEY_W) {
		t.Fatalf("InputWasKeyDown(KEY_W) = false after InputUpdate")
	}
	if EventFire(EventContext{Type: EVENT_CODE_RESIZED}) {
		t.Fatalf("EventFire with no listeners reported handled")
	}
	InputProcessKey(KEY_W, false)
}
