// cpu_constants.go - V810 opcode, condition, and system-register constants

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

// Primary opcode values (bits 10-15 of the first instruction word).
const (
	opMovReg  = 0x00
	opAddReg  = 0x01
	opSub     = 0x02
	opCmpReg  = 0x03
	opShlReg  = 0x04
	opShrReg  = 0x05
	opJmp     = 0x06
	opSarReg  = 0x07
	opMul     = 0x08
	opDiv     = 0x09
	opMulu    = 0x0A
	opDivu    = 0x0B
	opOr      = 0x0C
	opAnd     = 0x0D
	opXor     = 0x0E
	opNot     = 0x0F
	opMovImm  = 0x10
	opAddImm  = 0x11
	opSetf    = 0x12
	opCmpImm  = 0x13
	opShlImm  = 0x14
	opShrImm  = 0x15
	opCli     = 0x16
	opSarImm  = 0x17
	opTrap    = 0x18
	opReti    = 0x19
	opHalt    = 0x1A
	opLdsr    = 0x1C
	opSei     = 0x1E
	opStsr    = 0x1D
	opBitStr  = 0x1F
	opBcond0  = 0x20
	opBcond1  = 0x21
	opBcond2  = 0x22
	opBcond3  = 0x23
	opBcond4  = 0x24
	opBcond5  = 0x25
	opBcond6  = 0x26
	opBcond7  = 0x27
	opMovea   = 0x28
	opAddi    = 0x29
	opJr      = 0x2A
	opJal     = 0x2B
	opOri     = 0x2C
	opAndi    = 0x2D
	opXori    = 0x2E
	opMovhi   = 0x2F
	opLdB     = 0x30
	opLdH     = 0x31
	opLdW     = 0x33
	opStB     = 0x34
	opStH     = 0x35
	opStW     = 0x37
	opInB     = 0x38
	opInH     = 0x39
	opCaxi    = 0x3A
	opInW     = 0x3B
	opOutB    = 0x3C
	opOutH    = 0x3D
	opFpuExt  = 0x3E
	opOutW    = 0x3F
)

// Extended group 0x3E sub-opcodes (bits 10-15 of the second word), format 7.
const (
	fpCmpfS  = 0x00
	fpCvtWs  = 0x02
	fpCvtSw  = 0x03
	fpAddfS  = 0x04
	fpSubfS  = 0x05
	fpMulfS  = 0x06
	fpDivfS  = 0x07
	fpXb     = 0x08
	fpXh     = 0x09
	fpRev    = 0x0A
	fpTrncS  = 0x0B
	fpMpyhw  = 0x0C
)

// Bit-string group 0x1F sub-opcodes (bits 11-15 of the second word).
const (
	bsSch0Bsu = 0x00
	bsSch1Bsu = 0x01
	bsSch0Bsd = 0x02
	bsSch1Bsd = 0x03
	bsOrbsu   = 0x08
	bsAndbsu  = 0x09
	bsXorbsu  = 0x0A
	bsMovbsu  = 0x0B
	bsOrnbsu  = 0x0C
	bsAndnbsu = 0x0D
	bsXornbsu = 0x0E
	bsNotbsu  = 0x0F
)

// Branch condition codes, indexed by the 4-bit cond field.
const (
	condBV  = 0x0
	condBC  = 0x1
	condBE  = 0x2
	condBNH = 0x3
	condBN  = 0x4
	condBR  = 0x5
	condBLT = 0x6
	condBLE = 0x7
	condBNV = 0x8
	condBNC = 0x9
	condBNE = 0xA
	condBH  = 0xB
	condBP  = 0xC
	condNop = 0xD
	condBGE = 0xE
	condBGT = 0xF
)

// System register indices addressed by LDSR/STSR's 5-bit immediate.
const (
	sysEIPC  = 0
	sysEIPSW = 1
	sysFEPC  = 2
	sysFEPSW = 3
	sysECR   = 4
	sysPSW   = 5
	sysPIR   = 6
	sysTKCW  = 7
	sysCHCW  = 24
	sysADTRE = 25
	sysUNK29 = 29
	sysUNK30 = 30
	sysABS   = 31
)

const processorID = 0x00005346

// resetPC is the V810's cold-reset program counter.
const resetPC = 0xFFFFFFF0
