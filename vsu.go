// vsu.go - Virtual Sound Unit state

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
vsu.go models the six-channel PCM/noise synthesizer: five waveform RAM
blocks, one modulation RAM block, and the per-channel control registers.
Hardware only defines 8-bit accesses to this device; 16-bit reads/writes
and 8-bit reads are undefined behaviour and are logged rather than
serviced, the same "benign default, logged" contract this module applies
to every unimplemented or undefined operation.
*/

package redboy

// VSUChannel is one of the VSU's six PCM/noise channel control blocks.
type VSUChannel struct {
	// SxINT
	Interval uint8
	AutoOff  bool
	Enabled  bool

	// SxLRV
	RightVol uint8
	LeftVol  uint8

	// SxFQL / SxFQH (11-bit divider)
	FreqLow  uint8
	FreqHigh uint8

	// SxEV0
	EnvInterval uint8
	EnvDown     bool
	EnvReload   uint8

	// SxEV1
	EnvEnabled bool
	EnvLoop    bool
	NoiseCtrl  uint8 // channel 6 only: selects the LFSR tap bit

	// SxRAM: which waveform block (0-4) this channel samples. Values > 4
	// leave the channel silent without disabling it.
	RAMIndex uint8

	SamplingPosition uint8
	EnvStepCounter   uint8
	Sample           int8

	// LFSR is channel 6's 15-bit noise shift register; unused elsewhere.
	LFSR uint16

	// CycleAccum is the running remainder of CPU cycles toward this
	// channel's next sample advance (see Tick in vsu_tick.go).
	CycleAccum uint32
}

// VSU holds the waveform RAM, modulation RAM, and six channel control
// blocks.
type VSU struct {
	Waveform   [vsuNumWaveChannels][vsuWaveRAMBlockSize]uint8
	Modulation [vsuModRAMSize]uint8
	Channels   [vsuNumChannels]VSUChannel
	Sweep      uint8 // S5SWP

	core *Core
}

func newVSU(core *Core) *VSU {
	return &VSU{core: core}
}

// Reset zeroes the entire VSU.
func (s *VSU) Reset() {
	core := s.core
	*s = VSU{core: core}
}

// anyChannelEnabled reports whether any of the six channels is currently
// enabled.
func (s *VSU) anyChannelEnabled() bool {
	for i := range s.Channels {
		if s.Channels[i].Enabled {
			return true
		}
	}
	return false
}

// canAccessWaveRAM implements the "waveform RAM is writable only when
// every channel's enabled flag is false" invariant.
func (s *VSU) canAccessWaveRAM() bool {
	return !s.anyChannelEnabled()
}

// canAccessModRAM implements the "modulation RAM is writable only when
// channel 5's enabled flag is false" invariant (channel 5 is
// modChannelIndex here, zero-based).
func (s *VSU) canAccessModRAM() bool {
	return !s.Channels[modChannelIndex].Enabled
}

// Read8 is undefined hardware behaviour; this returns a benign sentinel
// and logs rather than panicking.
func (s *VSU) Read8(addr uint32) uint8 {
	s.core.logf("vsu: 8-bit reads are undefined hardware behaviour (addr 0x%08X)", addr)
	return 0xFF
}

// Write8 is the VSU's only defined access path.
func (s *VSU) Write8(addr uint32, value uint8) {
	off := addr & vsuWindowMask
	block := (off / vsuWaveBlockStride)
	if block < vsuNumWaveChannels {
		slot := (off % vsuWaveBlockStride) / vsuWaveSlotStride
		if s.canAccessWaveRAM() {
			s.Waveform[block][slot] = value
		}
		return
	}
	if block == vsuNumWaveChannels { // modulation RAM block
		slot := (off % vsuWaveBlockStride) / vsuWaveSlotStride
		if s.canAccessModRAM() {
			s.Modulation[slot] = value
		}
		return
	}
	s.ioWrite(off, value)
}
