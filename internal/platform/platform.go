// Package platform resolves which of the per-platform logo paths
// applies to the running host and loads the bytes behind it. The
// document engine itself never touches the file system; it only
// consumes whatever bytes the host hands it.
package platform

import (
	"os"
	"runtime"

	"github.com/entttom/quartabill/internal/model"
)

// OS identifies the host platform class.
type OS int

const (
	Windows OS = iota
	Mac
	Linux
	Other
)

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Mac:
		return "mac"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// Current returns the platform class of the running host.
func Current() OS {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Mac
	case "linux":
		return Linux
	default:
		return Other
	}
}

// LogoLoader supplies raw logo image bytes, or nil when no logo is
// configured. Errors are recovered by the caller with a placeholder
// box, never propagated into the generated document.
type LogoLoader interface {
	Load() ([]byte, error)
}

// FileLogoLoader reads the logo from the issuer's path for one
// platform.
type FileLogoLoader struct {
	path string
}

// NewFileLogoLoader selects the issuer's logo path for the given
// platform.
func NewFileLogoLoader(issuer model.Issuer, host OS) *FileLogoLoader {
	return &FileLogoLoader{path: LogoPath(issuer, host)}
}

// Load returns the logo bytes, or nil without error when no path is
// configured.
func (l *FileLogoLoader) Load() ([]byte, error) {
	if l.path == "" {
		return nil, nil
	}
	return os.ReadFile(l.path)
}

// LogoPath picks the per-platform logo path field from the issuer
// record.
func LogoPath(issuer model.Issuer, host OS) string {
	switch host {
	case Windows:
		return issuer.LogoPathWindows
	case Mac:
		return issuer.LogoPathMac
	case Linux:
		return issuer.LogoPathLinux
	default:
		return ""
	}
}
