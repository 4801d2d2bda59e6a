// miscio.go - timer, pad, link, and game-pak register window

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
miscio.go models the 0x02xxxxxx region: eleven named 8-bit registers
(link communication, pad serial shift, timer counter, pak wait control)
sharing one generic "masked OR" read contract. None of these drive real
link-cable, pad-polling, or wait-state behaviour - that is out of scope
- but the register file itself, its reset values, and its read-back
contract are fully in scope and bit-exact.
*/

package redboy

// MiscIO is the timer/pad/link/pak register window.
type MiscIO struct {
	regs [ioNumRegs]uint8
	core *Core
}

func newMiscIO(core *Core) *MiscIO {
	m := &MiscIO{core: core}
	m.Reset()
	return m
}

// Reset restores the pre-game-boot register values.
func (m *MiscIO) Reset() {
	m.regs = ioResetValue
}

// ioIndex computes the 4-bit register index from an address in this
// region's mirrored window.
func ioIndex(addr uint32) uint32 {
	return (addr >> 2) & 0xF
}

// Read8 returns (stored & readMask) | orMask for the addressed register.
func (m *MiscIO) Read8(addr uint32) uint8 {
	i := ioIndex(addr)
	return m.regs[i]&ioReadMask[i] | ioOrMask[i]
}

// Write8 stores the full byte written; masking only applies on read.
func (m *MiscIO) Write8(addr uint32, value uint8) {
	m.regs[ioIndex(addr)] = value
}
