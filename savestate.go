// savestate.go - save state serialization

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
savestate.go implements save/restore as a 16-byte metadata prefix (magic,
version, payload size, a reserved field that must be zero) followed by a
flat copy of every sub-device's state. LoadState
validates all four metadata fields before touching anything, so a corrupt or
foreign buffer leaves the running Core untouched - the same
validate-before-mutate discipline rom.go's LoadROM follows.
*/

package redboy

import (
	"bytes"
	"encoding/binary"
)

const (
	stateMagic   = 0x52454431 // "RED1"
	stateVersion = 1
)

// SaveState serializes the entire console state into a self-describing
// buffer.
func (c *Core) SaveState() []byte {
	var body bytes.Buffer
	enc := binary.LittleEndian

	writeU64 := func(v uint64) { binary.Write(&body, enc, v) }
	writeU32 := func(v uint32) { binary.Write(&body, enc, v) }
	writeU16 := func(v uint16) { binary.Write(&body, enc, v) }
	writeU8 := func(v uint8) { body.WriteByte(v) }
	writeBool := func(v bool) {
		if v {
			writeU8(1)
		} else {
			writeU8(0)
		}
	}

	// CPU
	cpu := c.CPU
	for _, r := range cpu.R {
		writeU32(r)
	}
	writeU32(cpu.PC)
	writeU32(cpu.PSW.ToU32())
	writeU32(cpu.EIPC)
	writeU32(cpu.EIPSW)
	writeU32(cpu.FEPC)
	writeU32(cpu.FEPSW)
	writeU16(cpu.ECRFECC)
	writeU16(cpu.ECREICC)
	writeU32(cpu.PIR)
	writeU32(cpu.TKCW.ToU32())
	writeU32(cpu.CHCW)
	writeU32(cpu.ADTRE)
	writeU32(cpu.UNK29)
	writeU32(cpu.UNK30)
	writeU32(cpu.ABS)
	writeBool(cpu.Halted)
	writeU32(uint32(cpu.StepCount))

	// VIP
	vip := c.VIP
	for _, v := range vip.VRAM {
		writeU16(v)
	}
	for _, v := range vip.DRAM {
		writeU16(v)
	}
	writeU16(vip.INTPND)
	writeU16(vip.INTENB)
	writeU16(vip.DPSTTS)
	writeU16(vip.DPCTRL)
	writeU16(vip.BRTA)
	writeU16(vip.BRTB)
	writeU16(vip.BRTC)
	writeU16(vip.REST)
	writeU16(vip.FRMCYC)
	writeU16(vip.CTA)
	writeU16(vip.XPSTTS)
	writeU16(vip.XPCTRL)
	writeU16(vip.VER)
	writeU64(vip.CycleCounter)
	for _, v := range vip.SPT {
		writeU16(v)
	}
	for _, v := range vip.GPLT {
		writeU16(v)
	}
	for _, v := range vip.JPLT {
		writeU16(v)
	}
	writeU16(vip.BKCOL)

	// VSU
	vsu := c.VSU
	for _, block := range vsu.Waveform {
		body.Write(block[:])
	}
	body.Write(vsu.Modulation[:])
	for _, ch := range vsu.Channels {
		writeU8(ch.Interval)
		writeBool(ch.AutoOff)
		writeBool(ch.Enabled)
		writeU8(ch.RightVol)
		writeU8(ch.LeftVol)
		writeU8(ch.FreqLow)
		writeU8(ch.FreqHigh)
		writeU8(ch.EnvInterval)
		writeBool(ch.EnvDown)
		writeU8(ch.EnvReload)
		writeBool(ch.EnvEnabled)
		writeBool(ch.EnvLoop)
		writeU8(ch.NoiseCtrl)
		writeU8(ch.RAMIndex)
		writeU8(ch.SamplingPosition)
		writeU8(ch.EnvStepCounter)
		writeU8(uint8(ch.Sample))
		writeU16(ch.LFSR)
		writeU32(ch.CycleAccum)
	}
	writeU8(vsu.Sweep)

	// Misc I/O
	body.Write(c.IO.regs[:])

	// Work RAM
	body.Write(c.WRAM[:])

	payload := body.Bytes()

	var out bytes.Buffer
	binary.Write(&out, enc, uint32(stateMagic))
	binary.Write(&out, enc, uint32(stateVersion))
	binary.Write(&out, enc, uint32(len(payload)))
	binary.Write(&out, enc, uint32(0)) // reserved
	out.Write(payload)
	return out.Bytes()
}

// LoadState validates and restores a buffer produced by SaveState. The
// Core's state is left unmodified if validation fails for any reason.
func (c *Core) LoadState(data []byte) error {
	if len(data) < 16 {
		return ErrStateTooShort
	}
	enc := binary.LittleEndian
	magic := enc.Uint32(data[0:4])
	version := enc.Uint32(data[4:8])
	size := enc.Uint32(data[8:12])
	reserved := enc.Uint32(data[12:16])

	if magic != stateMagic {
		return ErrStateMagic
	}
	if version != stateVersion {
		return ErrStateVersion
	}
	if reserved != 0 {
		return ErrStateReserved
	}
	payload := data[16:]
	if uint32(len(payload)) != size {
		return ErrStateSize
	}
	if want := uint32(len(c.SaveState()) - 16); size != want {
		return ErrStateSize
	}

	r := bytes.NewReader(payload)
	readU32 := func() uint32 {
		var v uint32
		binary.Read(r, enc, &v)
		return v
	}
	readU16 := func() uint16 {
		var v uint16
		binary.Read(r, enc, &v)
		return v
	}
	readU8 := func() uint8 {
		var v uint8
		binary.Read(r, enc, &v)
		return v
	}
	readBool := func() bool { return readU8() != 0 }
	readU64 := func() uint64 {
		var v uint64
		binary.Read(r, enc, &v)
		return v
	}

	cpu := c.CPU
	for i := range cpu.R {
		cpu.R[i] = readU32()
	}
	cpu.PC = readU32()
	cpu.PSW = PSWFromU32(readU32())
	cpu.EIPC = readU32()
	cpu.EIPSW = readU32()
	cpu.FEPC = readU32()
	cpu.FEPSW = readU32()
	cpu.ECRFECC = readU16()
	cpu.ECREICC = readU16()
	cpu.PIR = readU32()
	cpu.TKCW = TKCWFromU32(readU32())
	cpu.CHCW = readU32()
	cpu.ADTRE = readU32()
	cpu.UNK29 = readU32()
	cpu.UNK30 = readU32()
	cpu.ABS = readU32()
	cpu.Halted = readBool()
	cpu.StepCount = uint64(readU32())

	vip := c.VIP
	for i := range vip.VRAM {
		vip.VRAM[i] = readU16()
	}
	for i := range vip.DRAM {
		vip.DRAM[i] = readU16()
	}
	vip.INTPND = readU16()
	vip.INTENB = readU16()
	vip.DPSTTS = readU16()
	vip.DPCTRL = readU16()
	vip.BRTA = readU16()
	vip.BRTB = readU16()
	vip.BRTC = readU16()
	vip.REST = readU16()
	vip.FRMCYC = readU16()
	vip.CTA = readU16()
	vip.XPSTTS = readU16()
	vip.XPCTRL = readU16()
	vip.VER = readU16()
	vip.CycleCounter = readU64()
	for i := range vip.SPT {
		vip.SPT[i] = readU16()
	}
	for i := range vip.GPLT {
		vip.GPLT[i] = readU16()
	}
	for i := range vip.JPLT {
		vip.JPLT[i] = readU16()
	}
	vip.BKCOL = readU16()

	vsu := c.VSU
	for i := range vsu.Waveform {
		r.Read(vsu.Waveform[i][:])
	}
	r.Read(vsu.Modulation[:])
	for i := range vsu.Channels {
		ch := &vsu.Channels[i]
		ch.Interval = readU8()
		ch.AutoOff = readBool()
		ch.Enabled = readBool()
		ch.RightVol = readU8()
		ch.LeftVol = readU8()
		ch.FreqLow = readU8()
		ch.FreqHigh = readU8()
		ch.EnvInterval = readU8()
		ch.EnvDown = readBool()
		ch.EnvReload = readU8()
		ch.EnvEnabled = readBool()
		ch.EnvLoop = readBool()
		ch.NoiseCtrl = readU8()
		ch.RAMIndex = readU8()
		ch.SamplingPosition = readU8()
		ch.EnvStepCounter = readU8()
		ch.Sample = int8(readU8())
		ch.LFSR = readU16()
		ch.CycleAccum = readU32()
	}
	vsu.Sweep = readU8()

	r.Read(c.IO.regs[:])
	r.Read(c.WRAM[:])

	return nil
}
