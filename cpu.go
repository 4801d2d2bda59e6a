// cpu.go - V810 CPU state, reset, and instruction fetch

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

/*
cpu.go is the heart of the module: a cycle-driven fetch/decode/execute loop
for the V810's seven instruction formats. Dispatch is a flat switch on the
six-bit primary opcode, with sub-dispatch switches for the two extended
groups (floating-point/Nintendo-extended and bit-string): fetch, classify, a
big switch, side effects on the register file and bus, then the program
counter advances.

Core Features:
  - Thirty-two 32-bit general registers, register 0 hardwired to zero
  - Full system-register file (EIPC/EIPSW/FEPC/FEPSW/ECR/PSW/PIR/TKCW/
    CHCW/ADTRE/ABS, plus two undocumented scratch registers)
  - Fixed per-instruction cycle cost, consumed by the VIP/VSU tickers

Signal Flow:
 1. Fetch the 16-bit opcode word at PC.
 2. Classify by the opcode group and extract the format's operand fields,
    fetching extra 16-bit words for formats 4-7 as needed.
 3. Execute the operation, updating registers, flags, and/or the bus.
 4. Re-align and commit PC.
 5. Clear register 0 and emit the instruction's cycle cost.
*/

package redboy

// CPU is the V810 processor core.
type CPU struct {
	R  [32]uint32
	PC uint32

	PSW PSW

	EIPC  uint32
	EIPSW uint32
	FEPC  uint32
	FEPSW uint32

	ECRFECC uint16
	ECREICC uint16

	PIR   uint32
	TKCW  TKCW
	CHCW  uint32
	ADTRE uint32
	UNK29 uint32
	UNK30 uint32
	ABS   uint32

	Halted    bool
	StepCount uint64

	core *Core
}

func newCPU(core *Core) *CPU {
	c := &CPU{core: core}
	c.Reset()
	return c
}

// Reset restores the documented V810 cold-reset state.
func (c *CPU) Reset() {
	core := c.core
	*c = CPU{core: core}
	c.PC = resetPC
	c.ECREICC = 0xFFF0
	c.PSW.NP = true
	c.PIR = processorID
}

// reg reads general register i; register 0 always reads 0.
func (c *CPU) reg(i uint8) uint32 {
	if i == 0 {
		return 0
	}
	return c.R[i]
}

// setReg writes general register i; writes to register 0 are dropped.
func (c *CPU) setReg(i uint8, v uint32) {
	if i == 0 {
		return
	}
	c.R[i] = v
}

// setPC re-aligns and commits a new program counter; PC bit 0 is always 0
// after any modification.
func (c *CPU) setPC(pc uint32) {
	c.PC = pc &^ 1
}

func (c *CPU) fetch16(addr uint32) uint16 {
	return c.core.Bus.Read16(addr)
}

// instrCycleCost is the fixed per-instruction cycle cost used by this
// first-approximation implementation; true per-opcode timing is a later
// refinement.
const instrCycleCost = 4

// StepInstruction fetches, decodes, and executes exactly one instruction,
// returning the cycle cost to charge against the VIP/VSU tickers. When the
// CPU is halted it does nothing and returns 0; interrupt wake-up dispatch
// is not implemented.
func (c *CPU) StepInstruction() uint32 {
	if c.Halted {
		return 0
	}

	c.execute()
	c.R[0] = 0
	c.StepCount++
	return instrCycleCost
}
