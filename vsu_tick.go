// vsu_tick.go - per-cycle advance of channel sampling position and noise LFSR

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
vsu_tick.go consumes the cycle count the CPU emits each step and advances
every enabled channel's sampling position, or the noise channel's LFSR, by
the number of sample periods that have elapsed. This is a
first-approximation audio clock in the same spirit as cpu.go's fixed
instrCycleCost: cycle-perfect timing is out of scope for now, and the
same "preserve the interface shape, refine the numbers later" approach
applies to this ticker.
*/

package redboy

// Tick advances every enabled channel by cycles CPU clocks, driven by each
// channel's frequency-divider field and its sampling-position cursor.
func (s *VSU) Tick(cycles uint32) {
	for i := range s.Channels {
		ch := &s.Channels[i]
		if !ch.Enabled {
			continue
		}
		divider := uint32(ch.FreqHigh)<<8 | uint32(ch.FreqLow)
		if divider >= vsuFreqDividerLimit {
			continue
		}
		period := (vsuFreqDividerLimit - divider) * vsuSamplePeriodUnit
		ch.CycleAccum += cycles
		for ch.CycleAccum >= period {
			ch.CycleAccum -= period
			s.advanceChannel(i)
		}
	}
}

// advanceChannel steps one channel's sampling position (or, for the noise
// channel, its LFSR) and recomputes its current output sample.
func (s *VSU) advanceChannel(i int) {
	ch := &s.Channels[i]
	if i == noiseChannelIndex {
		tap := bitIsSet(uint(s.noiseTapBit()), uint32(ch.LFSR))
		bit0 := ch.LFSR&1 != 0
		newBit := tap != bit0 // XOR
		ch.LFSR >>= 1
		if newBit {
			ch.LFSR |= 1 << 14
		}
		if ch.LFSR&1 != 0 {
			ch.Sample = 31
		} else {
			ch.Sample = -32
		}
		return
	}

	ch.SamplingPosition = (ch.SamplingPosition + 1) % vsuWaveRAMBlockSize
	if ch.RAMIndex > 4 {
		ch.Sample = 0
		return
	}
	raw := s.Waveform[ch.RAMIndex][ch.SamplingPosition]
	ch.Sample = int8(raw&0x3F) - 32
}
