// bus.go - region-dispatching memory bus

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
bus.go implements the V810's memory bus: three pairs of entry points
(Read8/Write8, Read16/Write16, Read32/Write32) that resolve the region from
bits 26-24 of the address and forward to the owning device. 32-bit accesses
always decompose into two 16-bit halfword accesses, low word first, matching
the hardware's native 16-bit bus width. Reads from unmapped regions return 0;
writes to unmapped regions are dropped. No bus trap is ever raised - this
matches typical hardware, where a floating bus read is simply undefined, not
exceptional.
*/

package redboy

// Bus routes guest memory accesses to the VIP, VSU, WRAM, ROM, or
// miscellaneous I/O window that owns the address. It holds no state of its
// own; every byte it serves is owned by one of the devices it wraps.
type Bus struct {
	core *Core
}

func newBus(core *Core) *Bus {
	return &Bus{core: core}
}

// Read8 reads one byte from the bus.
func (b *Bus) Read8(addr uint32) uint8 {
	switch busRegion(addr) {
	case regionVIP:
		return b.core.VIP.Read8(addr)
	case regionVSU:
		b.core.logf("bus: 8-bit VSU read is undefined hardware behaviour at 0x%08X", addr)
		return 0xFF
	case regionIO:
		return b.core.IO.Read8(addr)
	case regionWRAM:
		return b.core.WRAM[addr&(WramSize-1)]
	case regionExpansion, regionPakRAM:
		return 0xFF
	case regionROM:
		return b.core.readROM(addr)
	default: // regionUnmapped
		return 0
	}
}

// Write8 writes one byte to the bus.
func (b *Bus) Write8(addr uint32, v uint8) {
	switch busRegion(addr) {
	case regionVIP:
		b.core.VIP.Write8(addr, v)
	case regionVSU:
		b.core.VSU.Write8(addr, v)
	case regionIO:
		b.core.IO.Write8(addr, v)
	case regionWRAM:
		b.core.WRAM[addr&(WramSize-1)] = v
	case regionExpansion, regionPakRAM, regionROM:
		// read-only or unimplemented: dropped
	default: // regionUnmapped
	}
}

// Read16 reads one halfword. addr's bit 0 is assumed already aligned by the
// caller (the CPU); bus handlers only mask what they own.
func (b *Bus) Read16(addr uint32) uint16 {
	addr &^= 1
	switch busRegion(addr) {
	case regionVIP:
		return b.core.VIP.Read16(addr)
	case regionVSU:
		b.core.logf("bus: 16-bit VSU read is undefined hardware behaviour at 0x%08X", addr)
		return 0xDEAD
	case regionIO:
		lo := uint16(b.core.IO.Read8(addr))
		hi := uint16(b.core.IO.Read8(addr + 1))
		return lo | hi<<8
	case regionWRAM:
		i := addr & (WramSize - 1)
		return uint16(b.core.WRAM[i]) | uint16(b.core.WRAM[i+1])<<8
	case regionExpansion, regionPakRAM:
		return 0xFFFF
	case regionROM:
		lo := uint16(b.core.readROM(addr))
		hi := uint16(b.core.readROM(addr + 1))
		return lo | hi<<8
	default: // regionUnmapped
		return 0
	}
}

// Write16 writes one halfword.
func (b *Bus) Write16(addr uint32, v uint16) {
	addr &^= 1
	switch busRegion(addr) {
	case regionVIP:
		b.core.VIP.Write16(addr, v)
	case regionVSU:
		b.core.logf("bus: 16-bit VSU write is undefined hardware behaviour at 0x%08X", addr)
	case regionIO:
		b.core.IO.Write8(addr, uint8(v))
		b.core.IO.Write8(addr+1, uint8(v>>8))
	case regionWRAM:
		i := addr & (WramSize - 1)
		b.core.WRAM[i] = uint8(v)
		b.core.WRAM[i+1] = uint8(v >> 8)
	case regionExpansion, regionPakRAM, regionROM:
		// read-only or unimplemented: dropped
	default: // regionUnmapped
	}
}

// Read32 reads one word as two little-endian-ordered halfword reads, low
// word first.
func (b *Bus) Read32(addr uint32) uint32 {
	addr &^= 3
	lo := uint32(b.Read16(addr))
	hi := uint32(b.Read16(addr + 2))
	return lo | hi<<16
}

// Write32 writes one word as two little-endian-ordered halfword writes, low
// word first.
func (b *Bus) Write32(addr uint32, v uint32) {
	addr &^= 3
	b.Write16(addr, uint16(v))
	b.Write16(addr+2, uint16(v>>16))
}

// readROM resolves a Game Pak ROM address through the loaded image's
// power-of-two mask. Reads before a ROM is loaded return 0xFF, matching the
// "unimplemented Game Pak Expansion" default.
func (c *Core) readROM(addr uint32) uint8 {
	if len(c.rom) == 0 {
		return 0xFF
	}
	return c.rom[addr&c.romMask]
}
