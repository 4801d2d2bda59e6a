package redboy

import "testing"

func TestVipResetVersionRegister(t *testing.T) {
	c := NewCore()
	if c.VIP.VER != vipVersionVal {
		t.Errorf("VIP.VER = %d, want %d", c.VIP.VER, vipVersionVal)
	}
}

func TestVipRead16Write16RoundTrip(t *testing.T) {
	c := NewCore()
	c.VIP.Write16(0x00000100, 0xABCD)
	if got := c.VIP.Read16(0x00000100); got != 0xABCD {
		t.Errorf("Read16 after Write16 = 0x%04X, want 0xABCD", got)
	}
}

func TestVipRead8IsHalfwordReadModifyWrite(t *testing.T) {
	c := NewCore()
	c.VIP.Write16(0x00000200, 0x1234)
	if got := c.VIP.Read8(0x00000200); got != 0x34 {
		t.Errorf("Read8 low byte = 0x%02X, want 0x34", got)
	}
	if got := c.VIP.Read8(0x00000201); got != 0x12 {
		t.Errorf("Read8 high byte = 0x%02X, want 0x12", got)
	}
	c.VIP.Write8(0x00000200, 0xFF)
	if got := c.VIP.Read16(0x00000200); got != 0x12FF {
		t.Errorf("Read16 after Write8 low byte = 0x%04X, want 0x12FF", got)
	}
}

func TestVipIntclrClearsOnlyMatchingBits(t *testing.T) {
	c := NewCore()
	c.VIP.INTPND = 0b1111
	c.VIP.ioWrite(vipRegINTCLR, 0b0101)
	if c.VIP.INTPND != 0b1010 {
		t.Errorf("INTPND after INTCLR = 0b%04b, want 0b1010", c.VIP.INTPND)
	}
}

func TestVipTickAccumulatesCycles(t *testing.T) {
	c := NewCore()
	c.VIP.Tick(10)
	c.VIP.Tick(5)
	if c.VIP.CycleCounter != 15 {
		t.Errorf("CycleCounter = %d, want 15", c.VIP.CycleCounter)
	}
}

func TestCoreStepInstructionTicksVip(t *testing.T) {
	c := newTestCore()
	// Freshly reset WRAM decodes to harmless 2-byte register CMPs, so
	// StepInstruction advances by exactly one fixed-cost tick.
	c.StepInstruction()
	if c.VIP.CycleCounter != instrCycleCost {
		t.Errorf("VIP.CycleCounter after one instruction = %d, want %d", c.VIP.CycleCounter, instrCycleCost)
	}
}
