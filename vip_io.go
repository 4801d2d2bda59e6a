// vip_io.go - VIP named I/O register reads and writes

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

// ioRead dispatches a 16-bit read inside the VIP's I/O quadrant. Unknown
// ports and ports the real hardware does not define as readable return 0.
func (v *VIP) ioRead(addr uint32) uint16 {
	switch addr {
	case vipRegINTPND:
		return v.INTPND
	case vipRegINTENB:
		return v.INTENB
	case vipRegDPSTTS:
		return vipDpsttsPlaceholder
	case vipRegDPCTRL:
		return v.DPCTRL
	case vipRegBRTA:
		return v.BRTA
	case vipRegBRTB:
		return v.BRTB
	case vipRegBRTC:
		return v.BRTC
	case vipRegREST:
		return v.REST
	case vipRegFRMCYC:
		return v.FRMCYC
	case vipRegCTA:
		return v.CTA
	case vipRegXPSTTS:
		return v.XPSTTS
	case vipRegXPCTRL:
		return v.XPCTRL
	case vipRegVER:
		return v.VER
	case vipRegSPT0, vipRegSPT1, vipRegSPT2, vipRegSPT3:
		return v.SPT[(addr-vipRegSPT0)>>1]
	case vipRegGPLT0, vipRegGPLT1, vipRegGPLT2, vipRegGPLT3:
		return v.GPLT[(addr-vipRegGPLT0)>>1]
	case vipRegJPLT0, vipRegJPLT1, vipRegJPLT2, vipRegJPLT3:
		return v.JPLT[(addr-vipRegJPLT0)>>1]
	case vipRegBKCOL:
		return v.BKCOL
	default:
		v.core.fatalf("vip: invalid register read at 0x%08X", addr)
		return 0
	}
}

// ioWrite dispatches a 16-bit write inside the VIP's I/O quadrant. INTCLR
// is write-only and clears the matching bits of INTPND rather than storing
// its own value. VER is read-only hardware and ignores writes.
func (v *VIP) ioWrite(addr uint32, value uint16) {
	switch addr {
	case vipRegINTPND:
		// read-only: dropped
	case vipRegINTENB:
		v.INTENB = value
	case vipRegINTCLR:
		v.INTPND &^= value
	case vipRegDPSTTS:
		// read-only: dropped
	case vipRegDPCTRL:
		v.DPCTRL = value
	case vipRegBRTA:
		v.BRTA = value
	case vipRegBRTB:
		v.BRTB = value
	case vipRegBRTC:
		v.BRTC = value
	case vipRegREST:
		v.REST = value
	case vipRegFRMCYC:
		v.FRMCYC = value
	case vipRegCTA:
		v.CTA = value
	case vipRegXPSTTS:
		// read-only: dropped
	case vipRegXPCTRL:
		v.XPCTRL = value
	case vipRegVER:
		// read-only: dropped
	case vipRegSPT0, vipRegSPT1, vipRegSPT2, vipRegSPT3:
		v.SPT[(addr-vipRegSPT0)>>1] = value
	case vipRegGPLT0, vipRegGPLT1, vipRegGPLT2, vipRegGPLT3:
		v.GPLT[(addr-vipRegGPLT0)>>1] = value
	case vipRegJPLT0, vipRegJPLT1, vipRegJPLT2, vipRegJPLT3:
		v.JPLT[(addr-vipRegJPLT0)>>1] = value
	case vipRegBKCOL:
		v.BKCOL = value
	default:
		v.core.fatalf("vip: invalid register write at 0x%08X value 0x%04X", addr, value)
	}
}
