package report

import (
	"errors"
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	start, end, err := MonthWindow("2024-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Fatalf("window = [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}
}

func TestMonthWindowYearRollover(t *testing.T) {
	_, end, err := MonthWindow("2024-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("end = %v, want %v", end, want)
	}
}

func TestMonthWindowRejectsMalformed(t *testing.T) {
	for _, month := range []string{"", "2024", "2024-3", "2024-13", "2024-00", "03-2024", "banana", "2024-03-01"} {
		if _, _, err := MonthWindow(month); !errors.Is(err, ErrBadMonth) {
			t.Fatalf("MonthWindow(%q) err = %v, want ErrBadMonth", month, err)
		}
	}
}
