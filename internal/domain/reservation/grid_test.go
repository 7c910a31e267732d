package reservation

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"9", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseTimeToMinutes(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseTimeToMinutes(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseTimeToMinutes(%q) should fail", tc.in)
		}
	}
}

func TestMinutesToLabel_ZeroPadded(t *testing.T) {
	if got := MinutesToLabel(570); got != "09:30" {
		t.Fatalf("expected 09:30, got %s", got)
	}
	if got := MinutesToLabel(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %s", got)
	}
}

func TestWindowSlots_ThirtyMinuteService(t *testing.T) {
	// 09:00-12:00, 30 min: last start is 11:30.
	slots := WindowSlots(540, 720, 30)
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	if slots[0] != 540 || slots[5] != 690 {
		t.Fatalf("expected 540..690, got %v", slots)
	}
}

func TestWindowSlots_LongerService(t *testing.T) {
	// 09:00-12:00, 60 min: 11:30 no longer fits, last start is 11:00.
	slots := WindowSlots(540, 720, 60)
	if len(slots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(slots))
	}
	if slots[4] != 660 {
		t.Fatalf("expected last start 660, got %d", slots[4])
	}
}

func TestWindowSlots_TooShortWindow(t *testing.T) {
	if slots := WindowSlots(540, 560, 30); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestOccupiedSet_MarkAndSpan(t *testing.T) {
	occ := make(OccupiedSet)
	occ.MarkRange(540, 570) // 09:00-09:30 books exactly one slot

	if occ.SpanFree(540, 30) {
		t.Fatal("09:00 should be taken")
	}
	if !occ.SpanFree(570, 30) {
		t.Fatal("09:30 should be free")
	}

	// A 60-min booking starting 09:00 would cross the taken slot.
	if occ.SpanFree(540, 60) {
		t.Fatal("60-min span over 09:00 should be blocked")
	}
	if !occ.SpanFree(570, 60) {
		t.Fatal("60-min span from 09:30 should be free")
	}
}

func TestOccupiedSet_OffGridStart(t *testing.T) {
	occ := make(OccupiedSet)
	// Marking steps from the range start, even when it sits off-grid.
	occ.MarkRange(525, 585)

	if occ.SpanFree(525, 30) {
		t.Fatal("08:45 should be taken")
	}
	if occ.SpanFree(555, 30) {
		t.Fatal("09:15 should be taken")
	}
}
