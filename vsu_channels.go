// vsu_channels.go - per-channel register write semantics

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

// writeSxINT unpacks SxINT and resets the sampling position, the
// envelope step timer, and (for the noise channel) the LFSR.
func (s *VSU) writeSxINT(ch int, value uint8) {
	c := &s.Channels[ch]
	c.Interval = uint8(bitGetRange(0, 4, uint32(value)))
	c.AutoOff = bitIsSet(5, uint32(value))
	c.Enabled = bitIsSet(7, uint32(value))

	c.SamplingPosition = 0
	c.EnvStepCounter = 0
	if ch == noiseChannelIndex {
		c.LFSR = 0x7FFF
	}
}

// writeSxLRV splits the right/left volume nibbles: right is bits 0-3,
// left is bits 4-7.
func (s *VSU) writeSxLRV(ch int, value uint8) {
	c := &s.Channels[ch]
	c.RightVol = uint8(bitGetRange(0, 3, uint32(value)))
	c.LeftVol = uint8(bitGetRange(4, 7, uint32(value)))
}

func (s *VSU) writeSxFQL(ch int, value uint8) {
	s.Channels[ch].FreqLow = value
}

func (s *VSU) writeSxFQH(ch int, value uint8) {
	s.Channels[ch].FreqHigh = uint8(bitGetRange(0, 2, uint32(value)))
}

func (s *VSU) writeSxEV0(ch int, value uint8) {
	c := &s.Channels[ch]
	c.EnvInterval = uint8(bitGetRange(0, 2, uint32(value)))
	c.EnvDown = bitIsSet(3, uint32(value))
	c.EnvReload = uint8(bitGetRange(4, 7, uint32(value)))
}

func (s *VSU) writeSxEV1(ch int, value uint8) {
	c := &s.Channels[ch]
	c.EnvEnabled = bitIsSet(0, uint32(value))
	c.EnvLoop = bitIsSet(1, uint32(value))
	c.NoiseCtrl = uint8(bitGetRange(4, 6, uint32(value)))
}

// writeSxRAM stores the waveform-block selector; values above 4 are kept
// as-is rather than clamped, leaving the channel silent rather than
// rejecting the write.
func (s *VSU) writeSxRAM(ch int, value uint8) {
	s.Channels[ch].RAMIndex = value
}

// writeSSTOP is the only bulk-disable mechanism: bit 0 set disables every
// channel; cleared, the write is a no-op.
func (s *VSU) writeSSTOP(value uint8) {
	if !bitIsSet(0, uint32(value)) {
		return
	}
	for i := range s.Channels {
		s.Channels[i].Enabled = false
	}
}

// noiseTapBit returns the LFSR tap bit selected by channel 6's SxEV1
// noise-control field.
func (s *VSU) noiseTapBit() uint8 {
	return vsuNoiseTapBit[s.Channels[noiseChannelIndex].NoiseCtrl&0x7]
}
