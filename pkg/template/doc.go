// Package template implements the core of the multiplatform template
// library: a validated, cooperatively cancellable echo pipeline and the
// configuration that drives it.
//
// Common usage:
// - Echo: run the pipeline with library defaults and an optional cancel.Signal
// - Config.Echo: run it under an explicit size limit and validation switch
// - EchoAll: echo a batch concurrently under one shared signal
// - CheckSize/CheckContent: the validation rules, usable on their own
// - HelloWorld/Random: binding smoke tests
//
// Every failure is one of three classified errors: *InputTooLargeError,
// *InvalidInputError or *CancelledError. Hosts that need a flat,
// binding-friendly surface should use package bind instead of calling
// this package directly.
package template
