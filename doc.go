// Package fixcodec is a FIX protocol application-layer codec: the
// Safe Message/Safe Parser pipeline lives here; the zero-allocation
// Fast Message/Fast Parser/Fast Builder pipeline lives in the fast
// subpackage. Both share the checksum, fixtime, tag, and wire leaf
// packages.
//
// A FIX session layer (sequence numbers, resend logic, logon/logout)
// is out of scope; this module defines only the message codec such a
// layer is built on (spec §1).
package fixcodec
