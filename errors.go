// errors.go - load-time and state-validation error sentinels

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

import "errors"

// Load-time errors, returned to the caller as plain sentinel values.
// None of these ever leave the Core in a partially-mutated state: LoadROM
// and LoadState validate completely before touching any field.
var (
	ErrRomSize       = errors.New("redboy: rom size is not a power of two")
	ErrRomTooSmall   = errors.New("redboy: rom is smaller than the header block")
	ErrRomTooLarge   = errors.New("redboy: rom exceeds the maximum supported size")
	ErrRomHeader     = errors.New("redboy: rom header reserved bytes are not zero")
	ErrStateMagic    = errors.New("redboy: save state magic does not match")
	ErrStateVersion  = errors.New("redboy: save state version is unsupported")
	ErrStateSize     = errors.New("redboy: save state size field does not match payload")
	ErrStateReserved = errors.New("redboy: save state reserved field is not zero")
	ErrStateTooShort = errors.New("redboy: save state buffer is shorter than the metadata header")
)
