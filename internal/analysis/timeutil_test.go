package analysis

import (
	"errors"
	"fmt"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"06:30", 390},
		{"7:05", 425},
		{" 22:30 ", 1350},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := TimeToMinutes(tt.in)
			if err != nil {
				t.Fatalf("TimeToMinutes(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// TestTimeToMinutes_Invalid verifies that malformed and out-of-range values
// are rejected instead of clamped.
func TestTimeToMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12", "1230", "24:00", "12:60", "-1:30", "12:5", "123:00", "ab:cd"} {
		t.Run(in, func(t *testing.T) {
			_, err := TimeToMinutes(in)
			if !errors.Is(err, ErrInvalidTime) {
				t.Errorf("TimeToMinutes(%q) error = %v, want ErrInvalidTime", in, err)
			}
		})
	}
}

func TestSleepDurationMinutes(t *testing.T) {
	tests := []struct {
		bed, wake string
		want      int
	}{
		{"23:00", "07:00", 480},
		{"01:00", "09:30", 510},
		{"22:00", "22:00", 1440},
		{"06:00", "06:01", 1},
		{"06:01", "06:00", 1439},
	}
	for _, tt := range tests {
		t.Run(tt.bed+"-"+tt.wake, func(t *testing.T) {
			got, err := SleepDurationMinutes(tt.bed, tt.wake)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SleepDurationMinutes(%s, %s) = %d, want %d", tt.bed, tt.wake, got, tt.want)
			}
		})
	}
}

// TestSleepDurationMinutes_Property sweeps the clock and checks the duration
// is never negative and follows the midnight-rollover rule.
func TestSleepDurationMinutes_Property(t *testing.T) {
	for bed := 0; bed < MinutesPerDay; bed += 37 {
		for wake := 0; wake < MinutesPerDay; wake += 53 {
			b := fmt.Sprintf("%02d:%02d", bed/60, bed%60)
			w := fmt.Sprintf("%02d:%02d", wake/60, wake%60)
			got, err := SleepDurationMinutes(b, w)
			if err != nil {
				t.Fatalf("SleepDurationMinutes(%s, %s) error: %v", b, w, err)
			}
			want := wake - bed
			if wake <= bed {
				want = wake + MinutesPerDay - bed
			}
			if got < 0 || got != want {
				t.Fatalf("SleepDurationMinutes(%s, %s) = %d, want %d", b, w, got, want)
			}
		}
	}
}

func TestSleepDurationMinutes_InvalidInput(t *testing.T) {
	if _, err := SleepDurationMinutes("25:00", "07:00"); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime for bad bedtime, got %v", err)
	}
	if _, err := SleepDurationMinutes("23:00", "7"); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime for bad wake time, got %v", err)
	}
}

func TestElapsedMinutes(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"10:00", "11:15", 75},
		{"23:30", "00:15", 45},
		{"10:00", "10:00", 0},
	}
	for _, tt := range tests {
		got, err := ElapsedMinutes(tt.start, tt.end)
		if err != nil {
			t.Fatalf("ElapsedMinutes(%s, %s) error: %v", tt.start, tt.end, err)
		}
		if got != tt.want {
			t.Errorf("ElapsedMinutes(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{450: "7h 30m", 480: "8h", 45: "0h 45m", 0: "0h"}
	for mins, want := range tests {
		if got := FormatDuration(mins); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", mins, got, want)
		}
	}
}

func TestFormatWorkoutDuration(t *testing.T) {
	tests := map[int]string{45: "45m", 65: "1h 5m", 60: "1h 0m", 0: "0m"}
	for mins, want := range tests {
		if got := FormatWorkoutDuration(mins); got != want {
			t.Errorf("FormatWorkoutDuration(%d) = %q, want %q", mins, got, want)
		}
	}
}
