// constants.go - fixed hardware constants for the emulated console

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

// Display and timing constants.
const (
	ScreenWidth  = 384
	ScreenHeight = 224
	FramesPerSec = 50
	CPUHz        = 20_000_000
	SampleRateHz = 41700

	// CyclesPerFrame is the number of 20 MHz CPU cycles in one 50 Hz frame.
	CyclesPerFrame = CPUHz / FramesPerSec
)

// ROM size limits.
const (
	MaxCommercialRomSize = 2 * 1024 * 1024
	MaxRomSize           = 16 * 1024 * 1024

	// RomHeaderSize is the length of the header block.
	RomHeaderSize = 32
	// RomHeaderOffsetFromEnd is how many bytes before the end of the ROM
	// image the header begins.
	RomHeaderOffsetFromEnd = 544
)

// Memory sizes.
const (
	WramSize = 64 * 1024

	vipVRAMSize = 128 * 1024
	vipDRAMSize = 128 * 1024

	vsuWaveRAMBlockSize = 32
	vsuModRAMSize       = 32
	vsuNumWaveChannels  = 5
	vsuNumChannels      = 6
)

// Reset-time fill patterns used to paint uninitialized RAM so that
// forgetting to initialize a region is obvious in a memory dump.
var (
	vipFillPattern  = [4]byte{0xDE, 0xAD, 0xBE, 0xEF}
	wramFillPattern = [8]byte{0x0D, 0x0E, 0x0A, 0x0D, 0x0B, 0x0E, 0x0E, 0x0F}
)
