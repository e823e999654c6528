// internal/packet/encode.go
package packet

import (
	"fmt"

	"github.com/tamzrod/pacemaker-monitor/internal/params"
)

// Checksum is the XOR fold of b.
func Checksum(b []byte) byte {
	var c byte
	for _, x := range b {
		c ^= x
	}
	return c
}

// Control builds a 4-byte control packet: SYNC SOH fn CHK.
// CHK covers the first three bytes.
func Control(fn byte) []byte {
	pkt := []byte{Sync, SOH, fn, 0}
	pkt[3] = Checksum(pkt[:3])
	return pkt
}

// Download builds a parameter-download packet for the registry's current mode.
//
// Layout:
//
//	SYNC SOH 0x55 CHK(header)   4 bytes
//	mode, then each mode parameter in ModeTable order,
//	  big-endian, Size() bytes each
//	CHK(payload)                1 byte
//
// The payload checksum covers payload bytes only.
// An Off numeric value is sent as zero bytes of its width; on the wire it is
// indistinguishable from a programmed zero.
func Download(reg *params.Registry, modes params.ModeTable) ([]byte, error) {
	mode := reg.Mode()
	fields, ok := modes.Fields(mode)
	if !ok {
		return nil, fmt.Errorf("packet: no layout for mode %q", mode)
	}

	pkt := Control(FnDownloadParams)
	for _, name := range fields {
		p, ok := reg.Get(name)
		if !ok {
			return nil, fmt.Errorf("packet: mode %s: unknown parameter %q", mode, name)
		}
		v, present := p.Wire()
		pkt = appendBigEndian(pkt, v, present, p.Size())
	}

	return append(pkt, Checksum(pkt[HeaderLen:])), nil
}

// appendBigEndian writes the low width bytes of v, most significant first.
// Negative values come out two's-complement.
func appendBigEndian(dst []byte, v int, present bool, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		if !present {
			dst = append(dst, 0x00)
			continue
		}
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}
