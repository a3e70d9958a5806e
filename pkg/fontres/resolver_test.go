package fontres

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/menta2k/image-labeler/pkg/types"
)

func TestResolveNeverReturnsNil(t *testing.T) {
	r := New()

	for _, family := range []types.FontFamily{types.FamilyArial, types.FamilyMonospace} {
		for _, size := range []int{types.MinFontSize, 30, types.MaxFontSize} {
			face := r.Resolve(family, size)
			if face == nil {
				t.Errorf("Resolve(%q, %d) returned nil", family, size)
			}
		}
	}
}

func TestResolveFallsBackToEmbedded(t *testing.T) {
	// A probe chain that can only hit an empty directory must fall through
	// to the embedded font without error
	dir := t.TempDir()
	r := &PathResolver{ExtraDirs: []string{dir}}

	face := r.Resolve(types.FamilyArial, 24)
	if face == nil {
		t.Fatal("fallback resolution returned nil")
	}

	// The face must be usable for measurement
	if adv := font.MeasureString(face, "HI"); adv <= 0 {
		t.Errorf("fallback face measured advance %v for \"HI\"", adv)
	}
}

func TestResolveLoadsFileCandidate(t *testing.T) {
	// A valid TTF dropped into an extra dir takes priority over the fallback
	dir := t.TempDir()
	path := filepath.Join(dir, "Arial.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	r := &PathResolver{ExtraDirs: []string{dir}}
	face := r.Resolve(types.FamilyArial, 16)
	if face == nil {
		t.Fatal("Resolve returned nil")
	}
	if face == basicfont.Face7x13 {
		t.Error("file candidate ignored, got the bitmap fallback")
	}
}

func TestLoadFaceFileRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(path, []byte("this is not a font"), 0644); err != nil {
		t.Fatal(err)
	}

	if face := loadFaceFile(path, 16); face != nil {
		t.Error("expected nil face for garbage font data")
	}
	if face := loadFaceFile(filepath.Join(dir, "missing.ttf"), 16); face != nil {
		t.Error("expected nil face for missing file")
	}
}

func TestCandidatesPerFamily(t *testing.T) {
	r := New()

	arial := r.candidates(types.FamilyArial)
	if len(arial) == 0 {
		t.Fatal("no Arial candidates")
	}
	joined := strings.ToLower(strings.Join(arial, "\n"))
	if !strings.Contains(joined, "arial") {
		t.Errorf("Arial candidates do not mention arial: %v", arial)
	}

	mono := r.candidates(types.FamilyMonospace)
	if len(mono) == 0 {
		t.Fatal("no Monospace candidates")
	}
	joined = strings.Join(mono, "\n")
	if !strings.Contains(joined, "DejaVuSansMono") {
		t.Errorf("Monospace candidates do not mention DejaVuSansMono: %v", mono)
	}
}

func TestStaticResolver(t *testing.T) {
	s := Static{Face: basicfont.Face7x13}
	if face := s.Resolve(types.FamilyArial, 99); face != basicfont.Face7x13 {
		t.Error("Static resolver did not return the fixed face")
	}
}
