package slots

import (
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday

	tests := []struct {
		name          string
		window        Window
		expectedCount int
		expectErr     bool
	}{
		{
			name: "single day half hour slots",
			window: Window{
				StartDate: day,
				EndDate:   day,
				OpenTime:  "08:00",
				CloseTime: "18:00",
				Duration:  30,
			},
			expectedCount: 20,
		},
		{
			name: "hour slots over two days",
			window: Window{
				StartDate: day,
				EndDate:   day.AddDate(0, 0, 1),
				OpenTime:  "09:00",
				CloseTime: "12:00",
				Duration:  60,
			},
			expectedCount: 6,
		},
		{
			name: "sunday skipped",
			window: Window{
				StartDate: day,
				EndDate:   day.AddDate(0, 0, 6), // Mon..Sun
				OpenTime:  "10:00",
				CloseTime: "12:00",
				Duration:  60,
				SkipDays:  []time.Weekday{time.Sunday},
			},
			expectedCount: 12, // 6 working days * 2 slots
		},
		{
			name: "default duration applied",
			window: Window{
				StartDate: day,
				EndDate:   day,
				OpenTime:  "10:00",
				CloseTime: "11:00",
			},
			expectedCount: 2,
		},
		{
			name: "trailing partial slot dropped",
			window: Window{
				StartDate: day,
				EndDate:   day,
				OpenTime:  "09:00",
				CloseTime: "10:45",
				Duration:  30,
			},
			expectedCount: 3,
		},
		{
			name: "end before start",
			window: Window{
				StartDate: day,
				EndDate:   day.AddDate(0, 0, -1),
				OpenTime:  "08:00",
				CloseTime: "18:00",
				Duration:  30,
			},
			expectErr: true,
		},
		{
			name: "close not after open",
			window: Window{
				StartDate: day,
				EndDate:   day,
				OpenTime:  "18:00",
				CloseTime: "08:00",
				Duration:  30,
			},
			expectErr: true,
		},
		{
			name: "malformed open time",
			window: Window{
				StartDate: day,
				EndDate:   day,
				OpenTime:  "eight",
				CloseTime: "18:00",
				Duration:  30,
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Generate(tt.window)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(entries) != tt.expectedCount {
				t.Errorf("expected %d entries, got %d", tt.expectedCount, len(entries))
			}
		})
	}
}

func TestGenerateEntryShape(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	entries, err := Generate(Window{
		StartDate: day,
		EndDate:   day,
		OpenTime:  "09:00",
		CloseTime: "10:00",
		Duration:  30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].StartTime != "09:00" || entries[0].EndTime != "09:30" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].StartTime != "09:30" || entries[1].EndTime != "10:00" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if !entries[0].Date.Equal(day) {
		t.Errorf("unexpected date: %v", entries[0].Date)
	}
}
