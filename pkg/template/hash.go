package template

import (
	"encoding/hex"
	"errors"
	"hash/fnv"
	"io"
)

// DiagnosticHash returns a deterministic, non-cryptographic fingerprint of
// input: the FNV-1a 64-bit sum, hex encoded. It is stable across processes
// and cheap enough for error paths. It exists so oversized payloads can be
// referenced in errors and logs without retaining the payload.
func DiagnosticHash(input string) string {
	h := fnv.New64a()
	_, _ = io.WriteString(h, input) // never fails
	return hex.EncodeToString(h.Sum(nil))
}

// withDiagnosticHash attaches the input fingerprint to a size-policy
// failure. The hash is computed here, on the failure path only; success
// paths never pay for it.
func withDiagnosticHash(err error, input string) error {
	var tooLarge *InputTooLargeError
	if errors.As(err, &tooLarge) {
		tooLarge.Hash = DiagnosticHash(input)
	}
	return err
}
