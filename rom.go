// rom.go - Game Pak ROM loading and header extraction

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
rom.go validates and loads a Game Pak image, then exposes the 32-byte
header tucked into the last 544 bytes of every commercial cartridge:
title, maker code, game code, version, and the four reserved bytes that
must read zero.
*/

package redboy

// RomHeader is the 32-byte cartridge header located at romSize - 544.
type RomHeader struct {
	Title     [20]byte
	Reserved  [4]byte
	MakerCode [2]byte
	GameCode  [4]byte
	Version   uint8
}

// LoadROM validates and installs a Game Pak image. The image size must be a
// power of two, large enough to hold the header RomHeaderOffsetFromEnd bytes
// before its end, and at most MaxRomSize bytes; the header's reserved field
// must read all zero. On any validation failure the Core's ROM state is left
// unchanged.
func (c *Core) LoadROM(data []byte) error {
	size := len(data)
	if size == 0 || size&(size-1) != 0 {
		return ErrRomSize
	}
	if size < RomHeaderOffsetFromEnd {
		return ErrRomTooSmall
	}
	if size > MaxRomSize {
		return ErrRomTooLarge
	}

	hdr, err := parseRomHeader(data)
	if err != nil {
		return err
	}

	c.rom = data
	c.romMask = uint32(size - 1)
	c.header = hdr
	c.Reset()
	return nil
}

func parseRomHeader(data []byte) (RomHeader, error) {
	var hdr RomHeader
	off := len(data) - RomHeaderOffsetFromEnd
	if off < 0 {
		return hdr, ErrRomHeader
	}
	raw := data[off : off+RomHeaderSize]

	copy(hdr.Title[:], raw[0:20])
	copy(hdr.Reserved[:], raw[20:24])
	copy(hdr.MakerCode[:], raw[24:26])
	copy(hdr.GameCode[:], raw[26:30])
	hdr.Version = raw[30]

	for _, b := range hdr.Reserved {
		if b != 0 {
			return hdr, ErrRomHeader
		}
	}
	return hdr, nil
}

// RomHeader returns the loaded cartridge's parsed header.
func (c *Core) RomHeader() RomHeader {
	return c.header
}

// RomTitle returns the cartridge title with trailing spaces trimmed.
func (c *Core) RomTitle() string {
	end := len(c.header.Title)
	for end > 0 && (c.header.Title[end-1] == ' ' || c.header.Title[end-1] == 0) {
		end--
	}
	return string(c.header.Title[:end])
}
