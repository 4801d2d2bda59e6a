package redboy

import "testing"

func TestCoreStepRunsExactlyOneFrameOfCycles(t *testing.T) {
	c := newTestCore()
	// Freshly reset WRAM holds the fill pattern, whose halfwords all decode
	// to 2-byte register CMPs: harmless straight-line code at a fixed
	// instrCycleCost each, so the frame's cycle budget divides evenly and
	// VIP.CycleCounter lands on CyclesPerFrame exactly.
	c.Step()
	if c.VIP.CycleCounter != CyclesPerFrame {
		t.Errorf("VIP.CycleCounter after one Step = %d, want %d", c.VIP.CycleCounter, uint64(CyclesPerFrame))
	}
}

func TestCoreStepStopsEarlyOnHaltButStillTicksRemainder(t *testing.T) {
	c := newTestCore()
	c.poke16(testCodeBase, encodeRR(opHalt, 0, 0))
	c.Step()
	if !c.CPU.Halted {
		t.Fatal("CPU not halted after executing HALT")
	}
	if c.VIP.CycleCounter != CyclesPerFrame {
		t.Errorf("VIP.CycleCounter after halted Step = %d, want %d (remaining cycles still ticked)", c.VIP.CycleCounter, uint64(CyclesPerFrame))
	}
}

func TestCoreStepOnAlreadyHaltedCoreTicksFullFrame(t *testing.T) {
	c := newTestCore()
	c.poke16(testCodeBase, encodeRR(opHalt, 0, 0))
	c.Step() // halts and consumes the frame
	c.Step() // already halted: the whole next frame should still tick
	if c.VIP.CycleCounter != 2*CyclesPerFrame {
		t.Errorf("VIP.CycleCounter after two Steps = %d, want %d", c.VIP.CycleCounter, uint64(2*CyclesPerFrame))
	}
}

func TestCoreResetRestoresColdBootStateWithoutDroppingROM(t *testing.T) {
	c := NewCore()
	rom := make([]byte, 1024)
	if err := c.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	title := c.RomTitle()

	c.CPU.R[4] = 0xDEADBEEF
	c.VIP.VRAM[0] = 0x1234
	c.VSU.Channels[0].Enabled = true

	c.Reset()

	if c.CPU.R[4] != 0 {
		t.Errorf("R[4] = 0x%08X after Reset, want 0", c.CPU.R[4])
	}
	if c.VIP.VRAM[0] != uint16(vipFillPattern[0]) {
		t.Errorf("VRAM[0] = 0x%04X after Reset, want fill value 0x%02X", c.VIP.VRAM[0], vipFillPattern[0])
	}
	if c.VSU.Channels[0].Enabled {
		t.Error("VSU channel 0 still enabled after Reset")
	}
	if c.RomTitle() != title {
		t.Errorf("RomTitle() changed after Reset: got %q, want %q", c.RomTitle(), title)
	}
}

func TestCoreRegistersAndPSWAccessors(t *testing.T) {
	c := NewCore()
	c.CPU.R[7] = 0x42
	c.CPU.PSW.Z = true

	regs := c.Registers()
	if regs[7] != 0x42 {
		t.Errorf("Registers()[7] = 0x%X, want 0x42", regs[7])
	}
	if !c.PSW().Z {
		t.Error("PSW().Z = false, want true")
	}
}
