package redboy

import "testing"

func TestBitIsSet(t *testing.T) {
	cases := []struct {
		bit   uint
		value uint32
		want  bool
	}{
		{0, 0x1, true},
		{0, 0x2, false},
		{31, 0x80000000, true},
		{7, 0xFF, true},
		{8, 0xFF, false},
	}
	for _, tc := range cases {
		if got := bitIsSet(tc.bit, tc.value); got != tc.want {
			t.Errorf("bitIsSet(%d, 0x%X) = %v, want %v", tc.bit, tc.value, got, tc.want)
		}
	}
}

func TestBitGetRange(t *testing.T) {
	cases := []struct {
		start, end uint
		value      uint32
		want       uint32
	}{
		{0, 3, 0xFF, 0xF},
		{4, 7, 0xFF, 0xF},
		{0, 31, 0xDEADBEEF, 0xDEADBEEF},
		{8, 15, 0x0000FF00, 0xFF},
	}
	for _, tc := range cases {
		if got := bitGetRange(tc.start, tc.end, tc.value); got != tc.want {
			t.Errorf("bitGetRange(%d, %d, 0x%X) = 0x%X, want 0x%X", tc.start, tc.end, tc.value, got, tc.want)
		}
	}
}

func TestBitSignExtend(t *testing.T) {
	cases := []struct {
		startSize uint
		value     uint32
		want      int32
	}{
		{4, 0x1F, -1},  // 5-bit immediate, all ones -> -1
		{4, 0x07, 7},   // positive 5-bit immediate
		{8, 0x1FF, -1}, // 9-bit displacement, all ones -> -1
		{8, 0x001, 1},
	}
	for _, tc := range cases {
		if got := bitSignExtend(tc.startSize, tc.value); got != tc.want {
			t.Errorf("bitSignExtend(%d, 0x%X) = %d, want %d", tc.startSize, tc.value, got, tc.want)
		}
	}
}
