// monitor.go - interactive debug REPL over a running redboy.Core

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
monitor.go is a small state machine that sits beside the running core and
lets a human single-step it, inspect registers and memory, and set
breakpoints. It is deliberately line-oriented rather than a full-screen
scrollback UI. Commands run on the same goroutine that reads the raw
terminal, so only one caller ever touches the Core; the single mutex guards
the breakpoint set.
*/

package monitor

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/zaynotley/redboy"
)

// Monitor is a raw-terminal REPL wrapped around one running Core.
type Monitor struct {
	mu          sync.Mutex
	core        *redboy.Core
	breakpoints map[uint32]bool
	out         *bufio.Writer

	fd       int
	oldState *term.State
}

// New builds a Monitor over an already-constructed, ROM-loaded Core.
func New(core *redboy.Core) *Monitor {
	return &Monitor{
		core:        core,
		breakpoints: make(map[uint32]bool),
		out:         bufio.NewWriter(os.Stdout),
	}
}

// LoadBreakpoints seeds the breakpoint set from a config file's address
// list, applied before Run starts reading commands.
func (m *Monitor) LoadBreakpoints(addrs []uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range addrs {
		m.breakpoints[a] = true
	}
}

// Run puts the controlling terminal into raw mode and drives the command
// loop until the user quits or stdin closes. Terminal state is always
// restored before returning.
func (m *Monitor) Run() error {
	m.fd = int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(m.fd)
	if err != nil {
		return fmt.Errorf("monitor: failed to set raw mode: %w", err)
	}
	m.oldState = oldState
	defer func() {
		_ = term.Restore(m.fd, m.oldState)
	}()

	m.printf("redboy monitor - type help for commands\r\n")
	m.prompt()

	for {
		line, ok := m.readLine()
		if !ok {
			m.printf("\r\n")
			return nil
		}
		if m.dispatch(strings.TrimSpace(line)) {
			return nil
		}
		m.prompt()
	}
}

func (m *Monitor) prompt() {
	m.printf("redboy> ")
}

func (m *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
	m.out.Flush()
}

// readLine performs its own minimal line editing (printable echo, CR/LF
// submits, DEL/BS erases) since raw mode disables the terminal's own
// editing, mirroring terminal_host.go's CR->LF and DEL->BS translation.
func (m *Monitor) readLine() (string, bool) {
	var buf []byte
	one := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(one)
		if n == 0 || err != nil {
			return "", false
		}
		b := one[0]
		switch {
		case b == '\r' || b == '\n':
			return string(buf), true
		case b == 0x7F || b == 0x08:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				m.printf("\b \b")
			}
		case b == 0x03: // Ctrl-C
			return "quit", true
		case b >= 0x20 && b < 0x7F:
			buf = append(buf, b)
			m.printf("%c", b)
		}
	}
}

// dispatch executes one command line and reports whether the monitor
// should exit.
func (m *Monitor) dispatch(line string) bool {
	m.printf("\r\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help", "h", "?":
		m.printHelp()
	case "quit", "q", "exit":
		return true
	case "regs", "r":
		m.printRegs()
	case "step", "s":
		n := 1
		if len(args) > 0 {
			n = atoiDefault(args[0], 1)
		}
		for i := 0; i < n; i++ {
			m.core.StepInstruction()
		}
		m.printRegs()
	case "continue", "c":
		m.continueUntilBreak()
	case "break", "b":
		if len(args) != 1 {
			m.printf("usage: break <addr>\r\n")
			break
		}
		addr, err := parseAddr(args[0])
		if err != nil {
			m.printf("bad address: %v\r\n", err)
			break
		}
		m.mu.Lock()
		m.breakpoints[addr] = true
		m.mu.Unlock()
		m.printf("breakpoint set at 0x%08X\r\n", addr)
	case "clear":
		if len(args) != 1 {
			m.printf("usage: clear <addr>\r\n")
			break
		}
		addr, err := parseAddr(args[0])
		if err != nil {
			m.printf("bad address: %v\r\n", err)
			break
		}
		m.mu.Lock()
		delete(m.breakpoints, addr)
		m.mu.Unlock()
	case "mem", "m":
		if len(args) < 1 {
			m.printf("usage: mem <addr> [len]\r\n")
			break
		}
		addr, err := parseAddr(args[0])
		if err != nil {
			m.printf("bad address: %v\r\n", err)
			break
		}
		length := 16
		if len(args) > 1 {
			length = atoiDefault(args[1], 16)
		}
		m.dumpMem(addr, length)
	case "poke":
		if len(args) != 2 {
			m.printf("usage: poke <addr> <byte>\r\n")
			break
		}
		addr, err := parseAddr(args[0])
		if err != nil {
			m.printf("bad address: %v\r\n", err)
			break
		}
		val, err := strconv.ParseUint(args[1], 0, 8)
		if err != nil {
			m.printf("bad value: %v\r\n", err)
			break
		}
		m.core.Bus.Write8(addr, uint8(val))
	case "reset":
		m.core.Reset()
		m.printf("core reset\r\n")
	case "save":
		if len(args) != 1 {
			m.printf("usage: save <file>\r\n")
			break
		}
		if err := os.WriteFile(args[0], m.core.SaveState(), 0o644); err != nil {
			m.printf("save failed: %v\r\n", err)
		}
	case "load":
		if len(args) != 1 {
			m.printf("usage: load <file>\r\n")
			break
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			m.printf("load failed: %v\r\n", err)
			break
		}
		if err := m.core.LoadState(data); err != nil {
			m.printf("load failed: %v\r\n", err)
		}
	default:
		m.printf("unknown command %q (try help)\r\n", cmd)
	}
	return false
}

func (m *Monitor) continueUntilBreak() {
	m.mu.Lock()
	bps := make(map[uint32]bool, len(m.breakpoints))
	for a := range m.breakpoints {
		bps[a] = true
	}
	m.mu.Unlock()

	for {
		if m.core.CPU.Halted {
			m.printf("halted at PC=0x%08X\r\n", m.core.CPU.PC)
			return
		}
		m.core.StepInstruction()
		if bps[m.core.CPU.PC] {
			m.printf("breakpoint hit at PC=0x%08X\r\n", m.core.CPU.PC)
			m.printRegs()
			return
		}
	}
}

func (m *Monitor) printRegs() {
	regs := m.core.Registers()
	for i := 0; i < 32; i += 4 {
		m.printf("r%-2d=%08X r%-2d=%08X r%-2d=%08X r%-2d=%08X\r\n",
			i, regs[i], i+1, regs[i+1], i+2, regs[i+2], i+3, regs[i+3])
	}
	psw := m.core.PSW()
	m.printf("pc=%08X psw=%08X z=%v s=%v ov=%v cy=%v\r\n",
		m.core.CPU.PC, psw.ToU32(), psw.Z, psw.S, psw.OV, psw.CY)
}

func (m *Monitor) dumpMem(addr uint32, length int) {
	for i := 0; i < length; i += 16 {
		m.printf("%08X: ", addr+uint32(i))
		for j := 0; j < 16 && i+j < length; j++ {
			m.printf("%02X ", m.core.Bus.Read8(addr+uint32(i+j)))
		}
		m.printf("\r\n")
	}
}

func (m *Monitor) printHelp() {
	m.printf("commands: step [n], continue, regs, mem <addr> [len], poke <addr> <byte>,\r\n")
	m.printf("          break <addr>, clear <addr>, save <file>, load <file>, reset, quit\r\n")
}

func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	return uint32(v), err
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
