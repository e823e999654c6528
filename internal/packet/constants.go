// internal/packet/constants.go
package packet

// Serial link framing constants.
// These values define the protocol and MUST NOT be configurable.

// ---- FRAME MARKERS ----

// Sync is the first byte of every packet and egram frame.
const Sync byte = 0x16

// SOH (start of header) follows Sync.
const SOH byte = 0x01

// ---- FUNCTION CODES ----

// FnRequestEgram asks the device to start streaming egram frames.
const FnRequestEgram byte = 0x47

// FnEcho asks the device to echo its current parameters.
const FnEcho byte = 0x49

// FnDownloadParams carries a parameter payload to the device.
const FnDownloadParams byte = 0x55

// FnStopEgram asks the device to stop streaming.
const FnStopEgram byte = 0x62

// ---- GEOMETRY ----

// HeaderLen is SYNC SOH FUNC CHK.
const HeaderLen = 4

// EgramDataLen is v_hi v_lo a_hi a_lo.
const EgramDataLen = 4

// EgramFrameLen is SYNC SOH + data, one sample per frame.
const EgramFrameLen = 2 + EgramDataLen
