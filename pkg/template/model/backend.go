package model

import (
	"fmt"
	"runtime"
)

// BackendInfo describes the compute backend an embedding host can
// expect on this platform, together with the CPU count and OS.
func BackendInfo() string {
	return fmt.Sprintf("backend: %s, CPU threads: %d, platform: %s",
		detectBackend(), runtime.NumCPU(), runtime.GOOS)
}

func detectBackend() string {
	switch runtime.GOOS {
	case "darwin":
		return "Metal (Apple Silicon)"
	case "ios":
		return "Metal (iOS)"
	case "android":
		if runtime.GOARCH == "arm64" {
			return "CPU (Android ARM64)"
		}
		return "CPU (Android)"
	default:
		return "CPU"
	}
}
