// vsu_constants.go - VSU register window layout

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

// VSU register map, as an offset within the 2 KiB window: five 128-byte
// waveform RAM blocks and one 128-byte modulation RAM block
// below offset 0x300 (32 effective samples each, one byte per 4-byte
// slot), six 64-byte-strided channel blocks from 0x400, and SSTOP at
// 0x580.
package redboy

const (
	vsuWindowMask = 0x7FF

	vsuWaveBlockStride = 0x80 // 128 bytes per waveform/modulation block
	vsuWaveSlotStride  = 4    // one effective sample every 4 bytes

	vsuChannelBase   = 0x400
	vsuChannelStride = 0x40

	vsuOffINT = 0x00
	vsuOffLRV = 0x04
	vsuOffFQL = 0x08
	vsuOffFQH = 0x0C
	vsuOffEV0 = 0x10
	vsuOffEV1 = 0x14
	vsuOffRAM = 0x18
	vsuOffSWP = 0x1C // channel 5 (index 4) only

	vsuOffSSTOP = 0x580
)

// vsuNoiseTapBit maps the 3-bit noise-control field of channel 6's SxEV1 to
// the LFSR tap bit. Index i yields a noise sequence length of 32767, 1953,
// 254, 217, 73, 63, 42, 28 respectively.
var vsuNoiseTapBit = [8]uint8{14, 10, 13, 4, 8, 6, 9, 11}

// noiseChannelIndex is the zero-based index of the noise channel (the
// hardware's "channel 6").
const noiseChannelIndex = 5

// modChannelIndex is the zero-based index of the channel whose enabled
// flag gates modulation-RAM access (the hardware's "channel 5").
const modChannelIndex = 4

// vsuSamplePeriodUnit is the number of 20 MHz CPU cycles per unit of the
// 11-bit frequency divider, derived from the VSU's documented 5 MHz
// sampling clock (CPUHz / 5,000,000 = 4). A channel advances its sampling
// position once every (2048-divider)*vsuSamplePeriodUnit CPU cycles.
const vsuSamplePeriodUnit = CPUHz / 5_000_000

// vsuFreqDividerLimit is the divider value at and above which a channel's
// period would be zero or negative; such a channel is silent, the same
// way an SxRAM index beyond the five waveform blocks silences a channel.
const vsuFreqDividerLimit = 2048
