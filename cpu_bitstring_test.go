package redboy

import "testing"

// setupBitString primes the five fixed bit-string registers and returns the
// two destination/source word addresses used by the test.
func setupBitString(c *Core, dstWord, srcWord uint32, dstBit, srcBit, length uint32) {
	c.CPU.R[bsRegDstBit] = dstBit
	c.CPU.R[bsRegSrcBit] = srcBit
	c.CPU.R[bsRegLen] = length
	c.CPU.R[bsRegDstWord] = dstWord
	c.CPU.R[bsRegSrcWord] = srcWord
}

func TestBitStringMovbsuCopiesBits(t *testing.T) {
	c := newTestCore()
	const dstWord, srcWord = 0x05001000, 0x05002000
	c.Bus.Write32(srcWord, 0xFFFFFFFF)
	c.Bus.Write32(dstWord, 0x00000000)
	setupBitString(c, dstWord, srcWord, 0, 0, 32)

	w1, w2 := encodeSubop7(opBitStr, 0, 0, 11, bsMovbsu)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()

	if got := c.Bus.Read32(dstWord); got != 0xFFFFFFFF {
		t.Errorf("MOVBSU result = 0x%08X, want 0xFFFFFFFF", got)
	}
	if c.CPU.R[bsRegLen] != 0 {
		t.Errorf("bit count after MOVBSU = %d, want 0", c.CPU.R[bsRegLen])
	}
}

func TestBitStringAndbsu(t *testing.T) {
	c := newTestCore()
	const dstWord, srcWord = 0x05001000, 0x05002000
	c.Bus.Write32(srcWord, 0b1010)
	c.Bus.Write32(dstWord, 0b1100)
	setupBitString(c, dstWord, srcWord, 0, 0, 4)

	w1, w2 := encodeSubop7(opBitStr, 0, 0, 11, bsAndbsu)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()

	if got := c.Bus.Read32(dstWord) & 0xF; got != 0b1000 {
		t.Errorf("ANDBSU low nibble = 0b%04b, want 0b1000", got)
	}
}

func TestBitStringSch1BsuFindsSetBit(t *testing.T) {
	c := newTestCore()
	const srcWord = 0x05002000
	c.Bus.Write32(srcWord, 0b0001_0000)
	setupBitString(c, 0, srcWord, 0, 0, 32)

	w1, w2 := encodeSubop7(opBitStr, 0, 0, 11, bsSch1Bsu)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()

	if c.CPU.PSW.Z {
		t.Error("SCH1BSU found a set bit but Z is set")
	}
	if c.CPU.R[bsRegLen] != 32-4 {
		t.Errorf("remaining length = %d, want %d", c.CPU.R[bsRegLen], 32-4)
	}
}

func TestBitStringSch1BsuExhaustsWithoutMatch(t *testing.T) {
	c := newTestCore()
	const srcWord = 0x05002000
	c.Bus.Write32(srcWord, 0)
	setupBitString(c, 0, srcWord, 0, 0, 8)

	w1, w2 := encodeSubop7(opBitStr, 0, 0, 11, bsSch1Bsu)
	c.poke16(testCodeBase, w1)
	c.poke16(testCodeBase+2, w2)
	c.CPU.StepInstruction()

	if !c.CPU.PSW.Z {
		t.Error("SCH1BSU with no match should set Z")
	}
	if c.CPU.R[bsRegLen] != 0 {
		t.Errorf("remaining length = %d, want 0", c.CPU.R[bsRegLen])
	}
}
