// Package cancel provides the shared cancellation signal used by the
// cooperative pipelines in pkg/template.
//
// A Signal is a monotonic atomic flag with shared ownership: clone the
// pointer freely, cancel from anywhere, observe from anywhere. It carries
// no deadline, no cause and no wait primitive. Operations that honor it
// poll at fixed checkpoints rather than block on it.
//
// Key constructs:
// - New: create an unset Signal
// - Cancel: set the flag (idempotent)
// - IsCancelled: snapshot the flag
package cancel
