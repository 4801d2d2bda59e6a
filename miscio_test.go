package redboy

import "testing"

func TestMiscIOOrMask(t *testing.T) {
	// Write 0x00 to TCR (index 8), read back 0xE0 under its OR mask.
	c := NewCore()
	addr := uint32(ioTCR * 4)
	c.IO.Write8(addr, 0x00)
	if got := c.IO.Read8(addr); got != 0xE0 {
		t.Errorf("TCR read after writing 0 = 0x%02X, want 0xE0", got)
	}
}

func TestMiscIOReadMaskRoundTrip(t *testing.T) {
	// Round-trip law: write then read yields (value & read_mask) | or_mask.
	c := NewCore()
	addr := uint32(ioCCR * 4)
	c.IO.Write8(addr, 0x00)
	want := byte(0x00)&ioReadMask[ioCCR] | ioOrMask[ioCCR]
	if got := c.IO.Read8(addr); got != want {
		t.Errorf("CCR read = 0x%02X, want 0x%02X", got, want)
	}
}
