// internal/telemetry/scan.go
package telemetry

import "github.com/tamzrod/pacemaker-monitor/internal/packet"

type scanState uint8

const (
	seekSync scanState = iota
	seekSOH
	collectData
)

// Scan runs one decoding pass over buf.
//
// States: seekSync -> seekSOH -> collectData(4) -> emit -> seekSync.
// A byte that is not SYNC is dropped in seekSync. A byte that is not SOH
// is dropped in seekSOH and the scan returns to seekSync; that byte is not
// retried as a SYNC candidate.
//
// A frame is only started when a whole frame is left in buf, so frames never
// straddle two passes. consumed is the number of leading bytes the pass is
// done with; the caller keeps buf[consumed:] for the next pass.
func Scan(buf []byte) (samples []Sample, consumed int) {
	i := 0
	state := seekSync

	for {
		switch state {
		case seekSync:
			if len(buf)-i < packet.EgramFrameLen {
				return samples, i
			}
			if buf[i] == packet.Sync {
				state = seekSOH
			}
			i++

		case seekSOH:
			if buf[i] == packet.SOH {
				state = collectData
			} else {
				state = seekSync
			}
			i++

		case collectData:
			d := buf[i : i+packet.EgramDataLen]
			samples = append(samples, Sample{
				VRaw: uint16(d[0])<<8 | uint16(d[1]),
				ARaw: uint16(d[2])<<8 | uint16(d[3]),
			})
			i += packet.EgramDataLen
			state = seekSync
		}
	}
}
