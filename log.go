// log.go - debug-gated diagnostic logging

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

import "log"

// logf writes a diagnostic line when the core runs with Debug set. Release
// builds pay only the cost of the boolean check.
func (c *Core) logf(format string, args ...any) {
	if c == nil || !c.Debug {
		return
	}
	log.Printf(format, args...)
}

// fatalf logs and panics when the core runs with Debug set; in release mode
// it is a no-op and the caller is expected to already have substituted a
// benign default value. This is how an unimplemented or unreachable
// operation reports itself without crashing a release build.
func (c *Core) fatalf(format string, args ...any) {
	if c == nil || !c.Debug {
		return
	}
	log.Panicf(format+" (step %d)", append(args, c.CPU.StepCount)...)
}
