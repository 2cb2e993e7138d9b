// Package model inspects GGUF model files without loading their
// weights. It exists so hosts can validate a checkpoint and show its
// details before committing memory to it.
//
// Common usage:
// - Load: verify the GGUF magic and describe a file (family, size, bands)
// - BackendInfo: report the compute backend for the current platform
//
// Failures are classified as *NotFoundError, *InvalidFormatError or
// *IOError, all of which flatten cleanly at the binding boundary.
package model
