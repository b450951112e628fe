package utils

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []time.Time
	}{
		{
			name:  "aligned start",
			start: date(2020, time.January, 1),
			end:   date(2020, time.March, 15),
			want:  []time.Time{date(2020, time.January, 1), date(2020, time.February, 1), date(2020, time.March, 1)},
		},
		{
			name:  "partial leading month rounds up",
			start: date(2020, time.January, 15),
			end:   date(2020, time.March, 15),
			want:  []time.Time{date(2020, time.February, 1), date(2020, time.March, 1)},
		},
		{
			name:  "same day not month start",
			start: date(2020, time.January, 15),
			end:   date(2020, time.January, 15),
			want:  nil,
		},
		{
			name:  "end before start",
			start: date(2020, time.March, 1),
			end:   date(2020, time.January, 1),
			want:  nil,
		},
		{
			name:  "year boundary",
			start: date(2019, time.November, 1),
			end:   date(2020, time.January, 31),
			want:  []time.Time{date(2019, time.November, 1), date(2019, time.December, 1), date(2020, time.January, 1)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MonthsBetween(c.start, c.end)
			if len(got) != len(c.want) {
				t.Fatalf("MonthsBetween() length = %d, want %d", len(got), len(c.want))
			}

			for index, month := range got {
				if !month.Equal(c.want[index]) {
					t.Errorf("MonthsBetween()[%d] = %v, want %v", index, month, c.want[index])
				}
			}
		})
	}
}

func TestDayStart(t *testing.T) {
	now := time.Date(2026, time.August, 30, 13, 45, 12, 999, time.UTC)
	got := DayStart(now)
	want := date(2026, time.August, 30)
	if !got.Equal(want) {
		t.Errorf("DayStart() = %v, want %v", got, want)
	}
}
