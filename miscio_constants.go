// miscio_constants.go - timer/pad/link/pak register window layout

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

// Eleven 8-bit registers at 4-byte stride within a 16-register window;
// index = (addr >> 2) & 0xF. Indices 11-15 are undocumented and treated
// as plain read/write scratch cells.
package redboy

const (
	ioCCR  = 0
	ioCCSR = 1
	ioCDTR = 2
	ioCDRR = 3
	ioSDLR = 4
	ioSDHR = 5
	ioTLR  = 6
	ioTHR  = 7
	ioTCR  = 8
	ioWCR  = 9
	ioSCR  = 10

	ioNumRegs = 16
)

// ioReadMask selects the meaningful bits of each register on read. No
// documentation narrows any register below the full byte, so every entry
// is 0xFF; the table exists so a narrower mask is a one-line change.
var ioReadMask = [ioNumRegs]uint8{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// ioOrMask is the "bits hardwired high on read" mask for each register.
var ioOrMask = [ioNumRegs]uint8{
	ioCCR:  0x69,
	ioCCSR: 0x60,
	ioTCR:  0xE0,
	ioWCR:  0xFC,
	ioSCR:  0x48,
}

// ioResetValue is the pre-game-boot value of each register.
var ioResetValue = [ioNumRegs]uint8{
	ioCCR:  0x6D,
	ioCCSR: 0xFF,
	ioTLR:  0xFF,
	ioTHR:  0xFF,
	ioTCR:  0xE4,
	ioWCR:  0xFC,
	ioSCR:  0x4C,
}
