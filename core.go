// core.go - top-level console assembly: CPU, bus, and peripheral wiring

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
core.go is the module's front door: Core wires the CPU to its bus and the
bus to the VIP, VSU, misc I/O window, work RAM, and loaded ROM, then drives
the whole thing forward one frame at a time.
*/

package redboy

// Core is one Virtual Boy console: CPU, bus, and every mapped peripheral.
type Core struct {
	CPU *CPU
	Bus *Bus
	VIP *VIP
	VSU *VSU
	IO  *MiscIO

	WRAM [WramSize]byte

	rom     []byte
	romMask uint32
	header  RomHeader

	Debug bool
}

// NewCore builds an unloaded console in its post-reset state.
func NewCore() *Core {
	c := &Core{}
	c.Bus = newBus(c)
	c.CPU = newCPU(c)
	c.VIP = newVIP(c)
	c.VSU = newVSU(c)
	c.IO = newMiscIO(c)
	c.resetWRAM()
	return c
}

// Reset restores every sub-device to its cold-boot state without discarding
// the loaded ROM.
func (c *Core) Reset() {
	c.CPU.Reset()
	c.VIP.Reset()
	c.VSU.Reset()
	c.IO.Reset()
	c.resetWRAM()
}

func (c *Core) resetWRAM() {
	for i := range c.WRAM {
		c.WRAM[i] = wramFillPattern[i&7]
	}
}

// Step runs the CPU for one frame's worth of cycles (CyclesPerFrame); each
// instruction's cycle batch also drives the VIP and VSU forward by the same
// count.
func (c *Core) Step() {
	var spent uint32
	for spent < CyclesPerFrame {
		if c.CPU.Halted {
			// No enabled-interrupt wake-up is implemented; a halted CPU
			// still lets the rest of the frame's cycles reach the VIP/VSU
			// so their tickers stay in sync with wall time.
			remaining := CyclesPerFrame - spent
			c.VIP.Tick(remaining)
			c.VSU.Tick(remaining)
			return
		}
		spent += c.StepInstruction()
	}
}

// StepInstruction executes exactly one CPU instruction, advances the VIP
// and VSU by its cycle cost, and returns that cost; used by the debug
// monitor's single-step command and by Step's frame loop.
func (c *Core) StepInstruction() uint32 {
	cycles := c.CPU.StepInstruction()
	c.VIP.Tick(cycles)
	c.VSU.Tick(cycles)
	return cycles
}

// Registers returns a copy of the 32 general-purpose registers.
func (c *Core) Registers() [32]uint32 {
	return c.CPU.R
}

// PSW returns the current processor status word.
func (c *Core) PSW() PSW {
	return c.CPU.PSW
}
