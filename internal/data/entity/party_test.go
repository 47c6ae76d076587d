package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func TestPartyOverlaps(t *testing.T) {
	existing := &Party{StartTime: at(10, 0), EndTime: at(11, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"back to back after does not overlap", at(11, 0), at(12, 0), false},
		{"back to back before does not overlap", at(9, 0), at(10, 0), false},
		{"new start inside existing", at(10, 30), at(11, 30), true},
		{"new end inside existing", at(9, 30), at(10, 30), true},
		{"existing contained in new", at(9, 0), at(12, 0), true},
		{"new contained in existing", at(10, 15), at(10, 45), true},
		{"identical interval", at(10, 0), at(11, 0), true},
		{"fully before", at(7, 0), at(8, 0), false},
		{"fully after", at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.start, tt.end))
		})
	}
}

func TestPartyOverlapsIsSymmetric(t *testing.T) {
	intervals := []struct{ start, end time.Time }{
		{at(9, 0), at(10, 0)},
		{at(9, 30), at(10, 30)},
		{at(10, 0), at(11, 0)},
		{at(10, 15), at(10, 45)},
		{at(11, 0), at(12, 0)},
	}

	for i, a := range intervals {
		for j, b := range intervals {
			pa := &Party{StartTime: a.start, EndTime: a.end}
			pb := &Party{StartTime: b.start, EndTime: b.end}
			assert.Equal(t, pa.Overlaps(b.start, b.end), pb.Overlaps(a.start, a.end),
				"overlaps(%d,%d) must equal overlaps(%d,%d)", i, j, j, i)
		}
	}
}

func TestSeatID(t *testing.T) {
	assert.Equal(t, "H5 - A3", SeatID("H5", "A", 3))
	assert.Equal(t, "H2 - C10", SeatID("H2", "C", 10))
}
