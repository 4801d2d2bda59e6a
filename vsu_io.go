// vsu_io.go - VSU channel-register address dispatch

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

// ioWrite dispatches a write that landed outside the waveform/modulation
// RAM blocks to the owning channel's register, or to SSTOP.
func (s *VSU) ioWrite(off uint32, value uint8) {
	if off == vsuOffSSTOP {
		s.writeSSTOP(value)
		return
	}
	if off < vsuChannelBase {
		s.core.logf("vsu: write to unmapped offset 0x%03X value 0x%02X", off, value)
		return
	}

	rel := off - vsuChannelBase
	ch := int(rel / vsuChannelStride)
	if ch >= vsuNumChannels {
		s.core.logf("vsu: write to unmapped offset 0x%03X value 0x%02X", off, value)
		return
	}
	reg := rel % vsuChannelStride

	switch reg {
	case vsuOffINT:
		s.writeSxINT(ch, value)
	case vsuOffLRV:
		s.writeSxLRV(ch, value)
	case vsuOffFQL:
		s.writeSxFQL(ch, value)
	case vsuOffFQH:
		s.writeSxFQH(ch, value)
	case vsuOffEV0:
		s.writeSxEV0(ch, value)
	case vsuOffEV1:
		s.writeSxEV1(ch, value)
	case vsuOffRAM:
		if ch == noiseChannelIndex {
			s.core.logf("vsu: channel 6 has no SxRAM register (offset 0x%03X)", off)
			return
		}
		s.writeSxRAM(ch, value)
	case vsuOffSWP:
		if ch != modChannelIndex {
			s.core.logf("vsu: S5SWP written via channel %d (offset 0x%03X)", ch, off)
			return
		}
		s.Sweep = value
	default:
		s.core.logf("vsu: write to unmapped channel-%d offset 0x%03X value 0x%02X", ch, reg, value)
	}
}
