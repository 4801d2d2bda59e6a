// cpu_branch.go - Bcond condition evaluation and branch/jump commit

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

// condHolds evaluates one of the 16 V810 branch conditions against the
// current flags.
func (c *CPU) condHolds(cond uint8) bool {
	p := c.PSW
	switch cond {
	case condBV:
		return p.OV
	case condBC:
		return p.CY
	case condBE:
		return p.Z
	case condBNH:
		return p.CY || p.Z
	case condBN:
		return p.S
	case condBR:
		return true
	case condBLT:
		return p.S != p.OV
	case condBLE:
		return p.Z || (p.S != p.OV)
	case condBNV:
		return !p.OV
	case condBNC:
		return !p.CY
	case condBNE:
		return !p.Z
	case condBH:
		return !p.CY && !p.Z
	case condBP:
		return !p.S
	case condNop:
		return false
	case condBGE:
		return p.S == p.OV
	case condBGT:
		return !p.Z && (p.S == p.OV)
	}
	return false
}

// branch commits the Bcond instruction: a taken branch adds the 9-bit
// signed displacement to PC (the displacement is relative to the
// instruction's own address); a not-taken branch simply advances to the
// next instruction.
func (c *CPU) branch(cond uint8, disp int32) {
	if c.condHolds(cond) {
		c.setPC(uint32(int64(c.PC) + int64(disp)))
		return
	}
	c.PC += 2
}
