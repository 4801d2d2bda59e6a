// cpu_decode.go - instruction format field extraction

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

// decodeRR splits the common r1 (bits 0-4) / r2 (bits 5-9) register fields
// shared by formats 1, 2, 5, 6, and 7.
func decodeRR(word uint16) (r1, r2 uint8) {
	return uint8(word & 0x1F), uint8((word >> 5) & 0x1F)
}

// decodeImm5 extracts the 5-bit immediate/vector/sysreg-index field that
// format 2 overlays on the r1 position.
func decodeImm5(word uint16) uint8 {
	return uint8(word & 0x1F)
}

// decodeBcondField recovers the 4-bit branch condition and the 9-bit signed
// displacement from a format 3 opcode word. The condition is split across
// the primary opcode's low three bits and word bit 9.
func decodeBcondField(opcode uint8, word uint16) (cond uint8, disp int32) {
	cond = ((opcode & 0x7) << 1) | uint8((word>>9)&1)
	disp = bitSignExtend(8, uint32(word&0x1FF))
	return
}

// decodeJumpDisp26 recovers the 26-bit signed displacement used by JR/JAL
// (format 4): the low 10 bits of the first word form the high bits, and a
// second fetched word supplies the low 16 bits.
func decodeJumpDisp26(word1, word2 uint16) int32 {
	raw := (uint32(word1&0x3FF) << 16) | uint32(word2)
	return bitSignExtend(25, raw)
}

// decodeImm16 fetches and returns the 16-bit immediate/displacement word
// that follows a format 5 or format 6 opcode word.
func (c *CPU) decodeImm16() uint16 {
	w := c.fetch16(c.PC + 2)
	return w
}

// decodeSubop7Ext and decodeSubop7BitStr extract the format 7 sub-opcode
// from the second word. The
// extended float/Nintendo group (0x3E) uses bits 10-15; the bit-string group
// (0x1F) uses bits 11-15.
func decodeSubop7Ext(word2 uint16) uint8 {
	return uint8((word2 >> 10) & 0x3F)
}

func decodeSubop7BitStr(word2 uint16) uint8 {
	return uint8((word2 >> 11) & 0x1F)
}
