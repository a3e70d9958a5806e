// Package fontres resolves font families to drawable faces.
//
// Resolution probes an ordered list of candidate font files per family and
// platform, the same chain a desktop install would satisfy. When no candidate
// loads, it falls back to the Go fonts embedded in the binary, so resolution
// never fails and requires no error handling from callers.
package fontres

import (
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/menta2k/image-labeler/pkg/types"
)

// Rendering DPI for font sizing. 72 makes point size equal pixel size.
const fontDPI = 72

// Resolver maps a font family and size to a drawable face
type Resolver interface {
	Resolve(family types.FontFamily, size int) font.Face
}

// PathResolver resolves fonts by probing filesystem candidates, falling back
// to an embedded Go font. The zero value is ready to use.
type PathResolver struct {
	// ExtraDirs lists additional directories searched before the
	// platform candidates.
	ExtraDirs []string
}

// New creates a PathResolver with the default probe chain
func New() *PathResolver {
	return &PathResolver{}
}

// Resolve probes each candidate path for the family in order and returns the
// first face that loads. All failures are silent: the embedded Go fonts are
// the terminal fallback.
func (r *PathResolver) Resolve(family types.FontFamily, size int) font.Face {
	for _, path := range r.candidates(family) {
		if face := loadFaceFile(path, size); face != nil {
			return face
		}
	}
	return fallbackFace(family, size)
}

// candidates returns the ordered probe list for a family on this platform
func (r *PathResolver) candidates(family types.FontFamily) []string {
	var paths []string
	for _, dir := range r.ExtraDirs {
		switch family {
		case types.FamilyMonospace:
			paths = append(paths, filepath.Join(dir, "DejaVuSansMono.ttf"))
		default:
			paths = append(paths, filepath.Join(dir, "Arial.ttf"))
		}
	}
	switch family {
	case types.FamilyMonospace:
		paths = append(paths,
			"DejaVuSansMono.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
			"/Library/Fonts/Menlo.ttc",
			`C:\Windows\Fonts\consola.ttf`,
		)
	default:
		paths = append(paths,
			"Arial.ttf",
			"arial.ttf",
			"/Library/Fonts/Arial.ttf",
			`C:\Windows\Fonts\arial.ttf`,
			"/usr/share/fonts/truetype/msttcorefonts/Arial.ttf",
		)
	}
	if runtime.GOOS == "linux" {
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths,
				filepath.Join(home, ".fonts", "DejaVuSansMono.ttf"),
				filepath.Join(home, ".local", "share", "fonts", "DejaVuSansMono.ttf"),
			)
		}
	}
	return paths
}

// loadFaceFile parses a TTF/OTF file (or the first font of a collection)
// at the given size. Returns nil on any failure.
func loadFaceFile(path string, size int) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		coll, cerr := opentype.ParseCollection(data)
		if cerr != nil || coll.NumFonts() == 0 {
			return nil
		}
		if f, err = coll.Font(0); err != nil {
			return nil
		}
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}

// fallbackFace builds a face from the embedded Go fonts: Go Mono for the
// monospace family, Go Regular otherwise. basicfont is the last resort if
// the embedded data somehow fails to parse.
func fallbackFace(family types.FontFamily, size int) font.Face {
	data := goregular.TTF
	if family == types.FamilyMonospace {
		data = gomono.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// Static ensures a fixed face is always resolved, regardless of family or
// size. Useful for deterministic tests.
type Static struct {
	Face font.Face
}

// Resolve returns the fixed face
func (s Static) Resolve(types.FontFamily, int) font.Face {
	return s.Face
}
