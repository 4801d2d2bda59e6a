// cpu_sysreg.go - LDSR/STSR system register access

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

// readSysreg returns the current value of the system register addressed by
// a 5-bit LDSR/STSR index, covering the full PIR/TKCW/CHCW/ADTRE/UNK29/
// UNK30/ABS register set alongside the exception-handling registers.
func (c *CPU) readSysreg(idx uint8) uint32 {
	switch idx {
	case sysEIPC:
		return c.EIPC
	case sysEIPSW:
		return c.EIPSW
	case sysFEPC:
		return c.FEPC
	case sysFEPSW:
		return c.FEPSW
	case sysECR:
		// FECC occupies the high halfword, EICC the low halfword, per the
		// V810 manual's ECR layout (matches the reset state's
		// {FECC=0x0000, EICC=0xFFF0} == 0x0000FFF0).
		return uint32(c.ECRFECC)<<16 | uint32(c.ECREICC)
	case sysPSW:
		return c.PSW.ToU32()
	case sysPIR:
		return c.PIR
	case sysTKCW:
		return c.TKCW.ToU32()
	case sysCHCW:
		return c.CHCW
	case sysADTRE:
		return c.ADTRE
	case sysUNK29:
		return c.UNK29
	case sysUNK30:
		return c.UNK30
	case sysABS:
		return c.ABS
	}
	c.core.logf("cpu: read of reserved system register %d", idx)
	return 0
}

// writeSysreg stores v into the system register addressed by idx. Read-only
// registers (PIR) silently ignore the write, matching the V810 manual.
func (c *CPU) writeSysreg(idx uint8, v uint32) {
	switch idx {
	case sysEIPC:
		c.EIPC = v
	case sysEIPSW:
		c.EIPSW = v
	case sysFEPC:
		c.FEPC = v
	case sysFEPSW:
		c.FEPSW = v
	case sysECR:
		// ECR is read-only via LDSR: the write is ignored.
		c.core.logf("cpu: write to read-only ECR register ignored")
	case sysPSW:
		c.PSW = PSWFromU32(v)
	case sysPIR:
		c.core.logf("cpu: write to read-only PIR register ignored")
	case sysTKCW:
		c.TKCW = TKCWFromU32(v)
	case sysCHCW:
		c.CHCW = v
	case sysADTRE:
		c.ADTRE = v
	case sysUNK29:
		c.UNK29 = v
	case sysUNK30:
		c.UNK30 = v
	case sysABS:
		// ABS stores the absolute value of the written operand.
		if int32(v) < 0 {
			v = uint32(-int32(v))
		}
		c.ABS = v
	default:
		c.core.logf("cpu: write to reserved system register %d ignored", idx)
	}
}
