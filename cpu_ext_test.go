package redboy

import (
	"math"
	"testing"
)

// encodeSubop7 builds a format-7 instruction pair: the r1/r2 fields live in
// the first word, the sub-opcode in the high bits of the second, per
// cpu_decode.go's decodeSubop7Ext/decodeSubop7BitStr.
func encodeSubop7(opcode uint8, r1, r2 uint8, subShift uint, sub uint8) (w1, w2 uint16) {
	w1 = encodeRR(opcode, r1, r2)
	w2 = uint16(sub) << subShift
	return
}

func TestAddfS(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = math.Float32bits(1.5)
	c.CPU.R[2] = math.Float32bits(2.25)
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpAddfS)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	got := math.Float32frombits(c.CPU.R[2])
	if got != 3.75 {
		t.Errorf("ADDF.S result = %v, want 3.75", got)
	}
}

func TestSubfS(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = math.Float32bits(1.0)
	c.CPU.R[2] = math.Float32bits(4.0)
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpSubfS)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	got := math.Float32frombits(c.CPU.R[2])
	if got != 3.0 {
		t.Errorf("SUBF.S result = %v, want 3.0", got)
	}
}

func TestDivfSByZeroSetsFZD(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = math.Float32bits(0)
	c.CPU.R[2] = math.Float32bits(1.0)
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpDivfS)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if !c.CPU.PSW.FZD {
		t.Error("DIVF.S by zero did not set FZD")
	}
}

func TestCvtWsIntToFloat(t *testing.T) {
	c := newTestCore()
	var neg7 int32 = -7
	c.CPU.R[1] = uint32(neg7)
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpCvtWs)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	got := math.Float32frombits(c.CPU.R[2])
	if got != -7.0 {
		t.Errorf("CVT.WS result = %v, want -7.0", got)
	}
}

func TestCvtSwFloatToIntRounds(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = math.Float32bits(2.6)
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpCvtSw)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if got := int32(c.CPU.R[2]); got != 3 {
		t.Errorf("CVT.SW result = %d, want 3 (rounded)", got)
	}
}

func TestTrncSTruncatesTowardZero(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = math.Float32bits(2.9)
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpTrncS)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if got := int32(c.CPU.R[2]); got != 2 {
		t.Errorf("TRNC.S result = %d, want 2 (truncated)", got)
	}
}

func TestMpyhwMultipliesBySignExtendedLowHalf(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = 0x0000FFFE // -2 as a 16-bit value
	c.CPU.R[2] = 10
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpMpyhw)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if got := int32(c.CPU.R[2]); got != -20 {
		t.Errorf("MPYHW result = %d, want -20", got)
	}
}

func TestRevBitReversal(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = 0x00000001
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpRev)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if c.CPU.R[2] != 0x80000000 {
		t.Errorf("REV result = 0x%08X, want 0x80000000", c.CPU.R[2])
	}
}

func TestXhSwapsHalfwords(t *testing.T) {
	c := newTestCore()
	c.CPU.R[2] = 0x12345678
	w1, w2 := encodeSubop7(opFpuExt, 0, 2, 10, fpXh)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if c.CPU.R[2] != 0x56781234 {
		t.Errorf("XH result = 0x%08X, want 0x56781234", c.CPU.R[2])
	}
}

func TestXbSwapsLowHalfwordBytes(t *testing.T) {
	c := newTestCore()
	c.CPU.R[2] = 0x12345678
	w1, w2 := encodeSubop7(opFpuExt, 0, 2, 10, fpXb)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if c.CPU.R[2] != 0x12347856 {
		t.Errorf("XB result = 0x%08X, want 0x12347856", c.CPU.R[2])
	}
}

func TestCmpfSEquality(t *testing.T) {
	c := newTestCore()
	c.CPU.R[1] = math.Float32bits(3.0)
	c.CPU.R[2] = math.Float32bits(3.0)
	w1, w2 := encodeSubop7(opFpuExt, 1, 2, 10, fpCmpfS)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()
	if !c.CPU.PSW.Z {
		t.Error("CMPF.S of equal operands did not set Z")
	}
}
