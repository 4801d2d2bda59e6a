// doc.go - package overview for the redboy V810 core

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
Package redboy implements the core of a Virtual Boy emulator: the V810
32-bit RISC CPU, a region-dispatching memory bus, and the memory-mapped
register interfaces for the VIP (graphics), VSU (sound), and the
timer/pad/link/pak miscellaneous I/O window.

Core Features:
  - Cycle-driven fetch/decode/execute of the seven V810 instruction formats
  - Full Program Status Word, system-register file, and exception/reset state
  - Address-mirrored memory bus with 8/16/32-bit accessors
  - VIP character-table and I/O-register emulation
  - VSU six-channel waveform/noise synthesis register model
  - Flat, versioned save-state container

Signal Flow:
 1. The outer driver calls Step, which runs CPU instructions until the
    per-frame cycle budget is spent.
 2. Each CPU instruction fetch/decode/execute issues Bus reads and writes.
 3. The Bus resolves the destination region from the address and forwards
    to the owning device (VIP, VSU, WRAM, ROM, or the misc I/O window).
 4. Devices mutate their own state under the Core's single-threaded step
    loop; no locking is required.
 5. Cycles emitted by the CPU advance the VIP and VSU tickers by the same
    amount every step.

This package intentionally does not read ROM files, parse command-line
arguments, resample audio, blit video, or poll input devices — those are
external collaborators. See cmd/redboy-mon for a minimal driver that
supplies them.
*/
package redboy
