// cpu_ops.go - primary opcode dispatch and instruction semantics

/*
 ####   ##### ####  ####   ####  #   #
 #   #  #     #   # #   # #   #  # #
 ####   ####  #   # ####  #   #   #
 #   #  #     #   # #   # #   #   #
 #   #  ##### ####  ####   ####    #

(c) 2025 - 2026 Zayn Otley
https://github.com/zaynotley/redboy

License: GPLv3 or later
*/

package redboy

// execute fetches the opcode word at PC, dispatches on the primary opcode,
// and commits the next PC. Every case is responsible for advancing PC
// itself (branches/jumps set it explicitly; everything else falls through
// to the trailing += width at the bottom of the relevant arm).
func (c *CPU) execute() {
	word := c.fetch16(c.PC)
	opcode := uint8((word >> 10) & 0x3F)

	switch opcode {
	case opMovReg:
		r1, r2 := decodeRR(word)
		c.setReg(r2, c.reg(r1))
		c.PC += 2

	case opAddReg:
		r1, r2 := decodeRR(word)
		a, b := c.reg(r2), c.reg(r1)
		res := a + b
		c.addFlags(a, b, res)
		c.setReg(r2, res)
		c.PC += 2

	case opSub:
		r1, r2 := decodeRR(word)
		a, b := c.reg(r2), c.reg(r1)
		res := a - b
		c.subFlags(a, b, res)
		c.setReg(r2, res)
		c.PC += 2

	case opCmpReg:
		r1, r2 := decodeRR(word)
		a, b := c.reg(r2), c.reg(r1)
		c.subFlags(a, b, a-b)
		c.PC += 2

	case opShlReg:
		r1, r2 := decodeRR(word)
		c.shiftLeft(r2, c.reg(r1)&0x1F)
		c.PC += 2

	case opShrReg:
		r1, r2 := decodeRR(word)
		c.shiftRightLogical(r2, c.reg(r1)&0x1F)
		c.PC += 2

	case opJmp:
		r1, _ := decodeRR(word)
		c.setPC(c.reg(r1))

	case opSarReg:
		r1, r2 := decodeRR(word)
		c.shiftRightArith(r2, c.reg(r1)&0x1F)
		c.PC += 2

	case opMul:
		r1, r2 := decodeRR(word)
		c.mul(r1, r2, true)
		c.PC += 2

	case opDiv:
		r1, r2 := decodeRR(word)
		c.div(r1, r2, true)
		c.PC += 2

	case opMulu:
		r1, r2 := decodeRR(word)
		c.mul(r1, r2, false)
		c.PC += 2

	case opDivu:
		r1, r2 := decodeRR(word)
		c.div(r1, r2, false)
		c.PC += 2

	case opOr:
		r1, r2 := decodeRR(word)
		res := c.reg(r2) | c.reg(r1)
		c.logicFlags(res)
		c.setReg(r2, res)
		c.PC += 2

	case opAnd:
		r1, r2 := decodeRR(word)
		res := c.reg(r2) & c.reg(r1)
		c.logicFlags(res)
		c.setReg(r2, res)
		c.PC += 2

	case opXor:
		r1, r2 := decodeRR(word)
		res := c.reg(r2) ^ c.reg(r1)
		c.logicFlags(res)
		c.setReg(r2, res)
		c.PC += 2

	case opNot:
		r1, r2 := decodeRR(word)
		res := ^c.reg(r1)
		c.logicFlags(res)
		c.setReg(r2, res)
		c.PC += 2

	case opMovImm:
		_, r2 := decodeRR(word)
		imm := uint32(bitSignExtend(4, uint32(decodeImm5(word))))
		c.setReg(r2, imm)
		c.PC += 2

	case opAddImm:
		_, r2 := decodeRR(word)
		a := c.reg(r2)
		b := uint32(bitSignExtend(4, uint32(decodeImm5(word))))
		res := a + b
		c.addFlags(a, b, res)
		c.setReg(r2, res)
		c.PC += 2

	case opSetf:
		_, r2 := decodeRR(word)
		cond := decodeImm5(word) & 0xF
		c.setReg(r2, b2u32(c.condHolds(cond)))
		c.PC += 2

	case opCmpImm:
		_, r2 := decodeRR(word)
		a := c.reg(r2)
		b := uint32(bitSignExtend(4, uint32(decodeImm5(word))))
		c.subFlags(a, b, a-b)
		c.PC += 2

	case opShlImm:
		_, r2 := decodeRR(word)
		c.shiftLeft(r2, uint32(decodeImm5(word)))
		c.PC += 2

	case opShrImm:
		_, r2 := decodeRR(word)
		c.shiftRightLogical(r2, uint32(decodeImm5(word)))
		c.PC += 2

	case opCli:
		c.PSW.ID = false
		c.PC += 2

	case opSarImm:
		_, r2 := decodeRR(word)
		c.shiftRightArith(r2, uint32(decodeImm5(word)))
		c.PC += 2

	case opTrap:
		c.doTrap(decodeImm5(word))

	case opReti:
		c.doReti()

	case opHalt:
		c.Halted = true
		c.PC += 2

	case opLdsr:
		idx := decodeImm5(word)
		_, r2 := decodeRR(word)
		c.writeSysreg(idx, c.reg(r2))
		c.PC += 2

	case opStsr:
		idx := decodeImm5(word)
		_, r2 := decodeRR(word)
		c.setReg(r2, c.readSysreg(idx))
		c.PC += 2

	case opSei:
		c.PSW.ID = true
		c.PC += 2

	case opBitStr:
		c.executeBitString(word)

	case opBcond0, opBcond1, opBcond2, opBcond3, opBcond4, opBcond5, opBcond6, opBcond7:
		cond, disp := decodeBcondField(opcode, word)
		c.branch(cond, disp)

	case opMovea:
		r1, r2 := decodeRR(word)
		imm := c.decodeImm16()
		c.setReg(r2, c.reg(r1)+uint32(int32(int16(imm))))
		c.PC += 4

	case opAddi:
		r1, r2 := decodeRR(word)
		imm := uint32(int32(int16(c.decodeImm16())))
		a := c.reg(r1)
		res := a + imm
		c.addFlags(a, imm, res)
		c.setReg(r2, res)
		c.PC += 4

	case opJr:
		w2 := c.decodeImm16()
		disp := decodeJumpDisp26(word, w2)
		c.setPC(uint32(int64(c.PC) + int64(disp)))

	case opJal:
		w2 := c.decodeImm16()
		disp := decodeJumpDisp26(word, w2)
		ret := c.PC + 4
		c.setPC(uint32(int64(c.PC) + int64(disp)))
		c.setReg(31, ret)

	case opOri:
		r1, r2 := decodeRR(word)
		imm := uint32(c.decodeImm16())
		res := c.reg(r1) | imm
		c.logicFlags(res)
		c.setReg(r2, res)
		c.PC += 4

	case opAndi:
		r1, r2 := decodeRR(word)
		imm := uint32(c.decodeImm16())
		res := c.reg(r1) & imm
		c.logicFlags(res)
		c.setReg(r2, res)
		c.PC += 4

	case opXori:
		r1, r2 := decodeRR(word)
		imm := uint32(c.decodeImm16())
		res := c.reg(r1) ^ imm
		c.logicFlags(res)
		c.setReg(r2, res)
		c.PC += 4

	case opMovhi:
		r1, r2 := decodeRR(word)
		imm := uint32(c.decodeImm16())
		c.setReg(r2, c.reg(r1)+(imm<<16))
		c.PC += 4

	case opLdB:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.setReg(r2, uint32(int32(int8(c.core.Bus.Read8(addr)))))
		c.PC += 4

	case opLdH:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.setReg(r2, uint32(int32(int16(c.core.Bus.Read16(addr)))))
		c.PC += 4

	case opLdW:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.setReg(r2, c.core.Bus.Read32(addr))
		c.PC += 4

	case opStB:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.core.Bus.Write8(addr, uint8(c.reg(r2)))
		c.PC += 4

	case opStH:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.core.Bus.Write16(addr, uint16(c.reg(r2)))
		c.PC += 4

	case opStW:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.core.Bus.Write32(addr, c.reg(r2))
		c.PC += 4

	case opInB:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.setReg(r2, uint32(c.core.Bus.Read8(addr)))
		c.PC += 4

	case opInH:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.setReg(r2, uint32(c.core.Bus.Read16(addr)))
		c.PC += 4

	case opCaxi:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		old := c.core.Bus.Read32(addr)
		c.subFlags(old, c.reg(r2), old-c.reg(r2))
		if old == c.reg(r2) {
			c.core.Bus.Write32(addr, c.reg(30))
		}
		c.setReg(r2, old)
		c.PC += 4

	case opInW:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.setReg(r2, c.core.Bus.Read32(addr))
		c.PC += 4

	case opOutB:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.core.Bus.Write8(addr, uint8(c.reg(r2)))
		c.PC += 4

	case opOutH:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.core.Bus.Write16(addr, uint16(c.reg(r2)))
		c.PC += 4

	case opFpuExt:
		c.executeExtended(word)

	case opOutW:
		r1, r2 := decodeRR(word)
		addr := c.loadStoreAddr(r1, word)
		c.core.Bus.Write32(addr, c.reg(r2))
		c.PC += 4

	default:
		c.core.fatalf("cpu: undefined opcode 0x%02X at pc 0x%08X", opcode, c.PC)
		c.PC += 2
	}
}

// loadStoreAddr computes base + sign-extended 16-bit displacement for the
// format 6 load/store/in/out instructions.
func (c *CPU) loadStoreAddr(r1 uint8, word uint16) uint32 {
	disp := int32(int16(c.decodeImm16()))
	return c.reg(r1) + uint32(disp)
}

func (c *CPU) shiftLeft(r2 uint8, amount uint32) {
	v := c.reg(r2)
	var res uint32
	var cy bool
	if amount == 0 {
		res = v
		cy = false
	} else {
		res = v << amount
		cy = bitIsSet(uint(32-amount), v)
	}
	c.setZS(res)
	c.PSW.CY = cy
	c.PSW.OV = false
	c.setReg(r2, res)
}

func (c *CPU) shiftRightLogical(r2 uint8, amount uint32) {
	v := c.reg(r2)
	var res uint32
	var cy bool
	if amount == 0 {
		res = v
		cy = false
	} else {
		res = v >> amount
		cy = bitIsSet(uint(amount-1), v)
	}
	c.setZS(res)
	c.PSW.CY = cy
	c.PSW.OV = false
	c.setReg(r2, res)
}

func (c *CPU) shiftRightArith(r2 uint8, amount uint32) {
	v := int32(c.reg(r2))
	var res int32
	var cy bool
	if amount == 0 {
		res = v
		cy = false
	} else {
		res = v >> amount
		cy = bitIsSet(uint(amount-1), uint32(v))
	}
	c.setZS(uint32(res))
	c.PSW.CY = cy
	c.PSW.OV = false
	c.setReg(r2, uint32(res))
}

// mul computes a 32x32->64 multiply; the high word is stored in r30, the
// low word in r2.
func (c *CPU) mul(r1, r2 uint8, signed bool) {
	if signed {
		a, b := int64(int32(c.reg(r2))), int64(int32(c.reg(r1)))
		full := a * b
		hi := uint32(full >> 32)
		lo := uint32(full)
		c.setZS(lo)
		c.PSW.OV = full != int64(int32(lo))
		c.setReg(30, hi)
		c.setReg(r2, lo)
	} else {
		a, b := uint64(c.reg(r2)), uint64(c.reg(r1))
		full := a * b
		hi := uint32(full >> 32)
		lo := uint32(full)
		c.PSW.Z = full == 0
		c.PSW.S = full&(1<<63) != 0
		c.PSW.OV = hi != 0
		c.setReg(30, hi)
		c.setReg(r2, lo)
	}
}

// div computes a 32/32 divide; the quotient goes to r2, the remainder to
// r30.
func (c *CPU) div(r1, r2 uint8, signed bool) {
	divisor := c.reg(r1)
	if divisor == 0 {
		c.core.fatalf("cpu: division by zero at pc 0x%08X", c.PC)
		return
	}
	if signed {
		a, b := int32(c.reg(r2)), int32(divisor)
		if a == -0x80000000 && b == -1 {
			c.PSW.OV = true
			c.setReg(r2, uint32(a))
			c.setReg(30, 0)
			return
		}
		q, rem := a/b, a%b
		c.setZS(uint32(q))
		c.PSW.OV = false
		c.setReg(r2, uint32(q))
		c.setReg(30, uint32(rem))
	} else {
		a, b := c.reg(r2), divisor
		q, rem := a/b, a%b
		c.setZS(q)
		c.PSW.OV = false
		c.setReg(r2, q)
		c.setReg(30, rem)
	}
}

func b2u32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
