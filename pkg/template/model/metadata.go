package model

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ggufMagic is the four-byte signature opening every GGUF model file.
var ggufMagic = []byte("GGUF")

// Header fields reported until full GGUF metadata parsing lands: common
// values for quantized LLaMA-family checkpoints.
const (
	defaultVocabSize     = 32000
	defaultContextLength = 2048
	defaultEmbeddingDims = 4096
)

// Metadata describes a model file without loading its weights.
type Metadata struct {
	ModelType           string
	VocabSize           uint32
	ContextLength       uint32
	EmbeddingDimensions uint32
	ParameterCount      string
	FileSizeBytes       uint64
}

// Load reads just enough of the file at path to describe it: the GGUF
// magic is verified, the model family is inferred from the filename and
// the parameter count is estimated from the file size. The weights stay
// on disk.
func Load(path string) (*Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &IOError{Op: "stat", Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}
	defer f.Close()

	magic := make([]byte, len(ggufMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("failed to read magic: %v", err)}
	}
	if !bytes.Equal(magic, ggufMagic) {
		return nil, &InvalidFormatError{Reason: "not a valid GGUF file (invalid magic number)"}
	}

	size := uint64(info.Size())
	return &Metadata{
		ModelType:           inferModelType(path),
		VocabSize:           defaultVocabSize,
		ContextLength:       defaultContextLength,
		EmbeddingDimensions: defaultEmbeddingDims,
		ParameterCount:      estimateParameterCount(size),
		FileSizeBytes:       size,
	}, nil
}

func inferModelType(path string) string {
	name := strings.ToLower(filepath.Base(path))
	for _, family := range []string{"llama", "phi", "mistral", "gemma"} {
		if strings.Contains(name, family) {
			return family
		}
	}
	return "unknown"
}

// estimateParameterCount maps quantized checkpoint sizes onto rough
// parameter bands.
func estimateParameterCount(sizeBytes uint64) string {
	sizeMB := sizeBytes / (1 << 20)
	switch {
	case sizeMB <= 100:
		return "< 1B"
	case sizeMB <= 500:
		return "1B"
	case sizeMB <= 1000:
		return "3B"
	case sizeMB <= 2000:
		return "7B"
	case sizeMB <= 5000:
		return "13B"
	case sizeMB <= 15000:
		return "30B"
	default:
		return "70B+"
	}
}
