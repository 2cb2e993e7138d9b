package bind

import (
	"context"
	"fmt"

	"github.com/eaceto/go-multiplatform-template-lib/pkg/template"
	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/cancel"
	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/model"
)

// EchoResult is the flat reply hosts receive from Echo.
type EchoResult struct {
	Text      string
	Length    int64
	Timestamp int64
}

// ModelMetadata mirrors model.Metadata with host-safe field types.
type ModelMetadata struct {
	ModelType           string
	VocabSize           int64
	ContextLength       int64
	EmbeddingDimensions int64
	ParameterCount      string
	FileSizeBytes       int64
}

// NewSignal returns a fresh cancellation handle. Hosts keep it and pass
// it to any number of Echo calls; cancelling it stops them all.
func NewSignal() *cancel.Signal {
	return cancel.New()
}

// HelloWorld reports that the library is loaded and callable.
func HelloWorld() bool {
	return template.HelloWorld()
}

// Random returns a uniform value in [0.0, 1.0).
func Random() float64 {
	return template.Random()
}

// Echo echoes input under the library defaults. A nil result with nil
// error means the input was empty. Every non-nil error is an *Error.
func Echo(input string, sig *cancel.Signal) (*EchoResult, error) {
	return echoWith(template.DefaultConfig(), input, sig)
}

// EchoWithConfig echoes input under an explicit size limit and
// validation switch. A negative maxInputSize is rejected before the
// pipeline runs.
func EchoWithConfig(input string, maxInputSize int64, validation bool, sig *cancel.Signal) (*EchoResult, error) {
	if maxInputSize < 0 {
		return nil, &Error{
			Kind:    KindGeneric,
			Message: fmt.Sprintf("max input size must not be negative, got %d", maxInputSize),
		}
	}
	return echoWith(template.NewConfig(uint64(maxInputSize), validation), input, sig)
}

func echoWith(cfg template.Config, input string, sig *cancel.Signal) (*EchoResult, error) {
	// Hosts hold the Signal handle; no Go context crosses the boundary.
	out, err := cfg.Echo(context.Background(), input, sig)
	if err != nil {
		return nil, Flatten(err)
	}
	if out == nil {
		return nil, nil
	}
	return &EchoResult{
		Text:      out.Text(),
		Length:    int64(out.Length()),
		Timestamp: int64(out.Timestamp()),
	}, nil
}

// LoadModelMetadata describes the GGUF file at path without loading it.
func LoadModelMetadata(path string) (*ModelMetadata, error) {
	md, err := model.Load(path)
	if err != nil {
		return nil, Flatten(err)
	}
	return &ModelMetadata{
		ModelType:           md.ModelType,
		VocabSize:           int64(md.VocabSize),
		ContextLength:       int64(md.ContextLength),
		EmbeddingDimensions: int64(md.EmbeddingDimensions),
		ParameterCount:      md.ParameterCount,
		FileSizeBytes:       int64(md.FileSizeBytes),
	}, nil
}

// BackendInfo reports the compute backend for this platform.
func BackendInfo() string {
	return model.BackendInfo()
}
