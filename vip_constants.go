// vip_constants.go - VIP address map and I/O register offsets

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

// VIP logical address layout, within the 512 KiB mirrored window
// (addr & 0x7FFFF), selected by the top two bits of that 19-bit offset:
//
//	0x00000-0x1FFFF  VRAM (holds the frame buffers and character tables)
//	0x20000-0x3FFFF  DRAM (background maps, world/column/object tables)
//	0x40000-0x5FFFF  I/O registers (named ports live at 0x5F800 onward)
//	0x60000-0x77FFF  unmapped
//	0x78000-0x7FFFF  mirror of the four VRAM character tables
//
// Character tables live inside VRAM at 0x6000 + n*0x8000 for n = 0..3.
package redboy

const (
	vipWindowMask   = 0x7FFFF
	vipQuadrantBits = 17

	vipCharTableBase   = 0x6000
	vipCharTableStride = 0x8000
	vipCharMirrorBase  = 0x78000
)

// VIP I/O register offsets, within the masked VIP window.
const (
	vipRegINTPND  = 0x5F800
	vipRegINTENB  = 0x5F802
	vipRegINTCLR  = 0x5F804
	vipRegDPSTTS  = 0x5F820
	vipRegDPCTRL  = 0x5F822
	vipRegBRTA    = 0x5F824
	vipRegBRTB    = 0x5F826
	vipRegBRTC    = 0x5F828
	vipRegREST    = 0x5F82A
	vipRegFRMCYC  = 0x5F82E
	vipRegCTA     = 0x5F830
	vipRegXPSTTS  = 0x5F840
	vipRegXPCTRL  = 0x5F842
	vipRegVER     = 0x5F844
	vipRegSPT0    = 0x5F848
	vipRegSPT1    = 0x5F84A
	vipRegSPT2    = 0x5F84C
	vipRegSPT3    = 0x5F84E
	vipRegGPLT0   = 0x5F860
	vipRegGPLT1   = 0x5F862
	vipRegGPLT2   = 0x5F864
	vipRegGPLT3   = 0x5F866
	vipRegJPLT0   = 0x5F868
	vipRegJPLT1   = 0x5F86A
	vipRegJPLT2   = 0x5F86C
	vipRegJPLT3   = 0x5F86E
	vipRegBKCOL   = 0x5F870
	vipVersionVal = 2
)

// vipDpsttsPlaceholder is the fixed read value for DPSTTS until real
// display-state tracking exists.
const vipDpsttsPlaceholder = 0xFFFF
