// cpu_exceptions.go - TRAP/RETI exception entry and return

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
cpu_exceptions.go covers the two user-visible halves of the V810's
exception model: the software TRAP instruction and its RETI return. Real
hardware-raised exceptions (bus errors, divide traps, the actual interrupt
controller) are out of scope, but the register-save contract TRAP and
RETI share with a real interrupt entry is fully modeled, since
SaveState/LoadState and the monitor both need EIPC/EIPSW to round-trip
correctly.
*/

package redboy

// trapVectorLow and trapVectorHigh are the fixed handler entry points for TRAP,
// per the V810 manual's exception table (vector 0xFFFFFF40 for the
// trap group used by vectors 0x00-0x0F, 0xFFFFFF60 for 0x10-0x1F).
const (
	trapVectorLow  = 0xFFFFFF40
	trapVectorHigh = 0xFFFFFF60
)

// doTrap saves the restart PC and PSW, raises exception-handler mode, and
// jumps to the fixed TRAP vector for the given 5-bit vector number.
func (c *CPU) doTrap(vector uint8) {
	c.EIPC = c.PC + 2
	c.EIPSW = c.PSW.ToU32()
	c.PSW.EP = true
	c.PSW.ID = true

	if vector < 0x10 {
		c.ECREICC = 0xFFC0 | uint16(vector)
		c.setPC(trapVectorLow)
	} else {
		c.ECREICC = 0xFFC0 | uint16(vector)
		c.setPC(trapVectorHigh)
	}
}

// doReti restores PC and PSW from the exception-save registers, preferring
// the NMI pair (FEPC/FEPSW) when NP is set, matching the V810's documented
// nested-exception priority.
func (c *CPU) doReti() {
	if c.PSW.NP {
		c.setPC(c.FEPC)
		c.PSW = PSWFromU32(c.FEPSW)
		return
	}
	c.setPC(c.EIPC)
	c.PSW = PSWFromU32(c.EIPSW)
}
