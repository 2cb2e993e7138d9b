// Package bind is the host-boundary surface of the library: the call
// contract foreign runtimes bind against. Everything it exposes is flat
// by construction, plain structs of strings and integers, plus one
// error shape with a closed set of kinds.
//
// Common usage:
// - NewSignal: obtain a shared cancellation handle for the host to keep
// - Echo / EchoWithConfig: run the validated echo pipeline
// - LoadModelMetadata / BackendInfo: model-file inspection
// - HelloWorld / Random: smoke tests after binding
//
// Rich Go callers should use package template directly; this package
// deliberately trades expressiveness for portability.
package bind
