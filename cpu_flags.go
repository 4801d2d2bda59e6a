// cpu_flags.go - PSW flag computation for arithmetic and logical results

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

// setZS sets Z and S from a result value; shared by every instruction that
// touches the condition flags.
func (c *CPU) setZS(result uint32) {
	c.PSW.Z = result == 0
	c.PSW.S = bitIsSet(31, result)
}

// addFlags computes Z/S/CY/OV for a+b (unsigned carry-out, signed overflow).
func (c *CPU) addFlags(a, b, result uint32) {
	c.setZS(result)
	c.PSW.CY = uint64(a)+uint64(b) > 0xFFFFFFFF
	c.PSW.OV = (a^result)&(b^result)&0x80000000 != 0
}

// subFlags computes Z/S/CY/OV for a-b (unsigned borrow, signed overflow).
func (c *CPU) subFlags(a, b, result uint32) {
	c.setZS(result)
	c.PSW.CY = a < b
	c.PSW.OV = (a^b)&(a^result)&0x80000000 != 0
}

// logicFlags computes Z/S for bitwise results and always clears OV; CY is
// left untouched, per the V810's documented AND/OR/XOR/NOT behaviour.
func (c *CPU) logicFlags(result uint32) {
	c.setZS(result)
	c.PSW.OV = false
}
