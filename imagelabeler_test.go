package imagelabeler

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/menta2k/image-labeler/pkg/fontres"
	"github.com/menta2k/image-labeler/pkg/frame"
	"github.com/menta2k/image-labeler/pkg/imgio"
	"github.com/menta2k/image-labeler/pkg/types"
)

// createTestImage creates a solid white test image
func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	return img
}

func TestNew(t *testing.T) {
	labeler := New()
	if labeler == nil {
		t.Fatal("New() returned nil")
	}
	if labeler.renderer == nil {
		t.Error("renderer component is nil")
	}
	if labeler.node == nil {
		t.Error("node component is nil")
	}
}

func TestAnnotateImage(t *testing.T) {
	labeler := NewWithResolver(fontres.Static{Face: basicfont.Face7x13})
	img := createTestImage(100, 100)

	opts := types.DefaultOptions()
	opts.ColorScheme = types.WhiteOnBlack
	opts.EdgeOffset = 0

	out := labeler.AnnotateImage(img, "HI", opts)
	if out.Bounds() != img.Bounds() {
		t.Errorf("output bounds %v, want %v", out.Bounds(), img.Bounds())
	}

	changed := false
	for y := 0; y < 100 && !changed; y++ {
		for x := 0; x < 100; x++ {
			if out.NRGBAAt(x, y) != (color.NRGBA{255, 255, 255, 255}) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("label left no mark on the image")
	}
}

func TestAnnotateBatch(t *testing.T) {
	labeler := NewWithResolver(fontres.Static{Face: basicfont.Face7x13})

	batch := frame.Batch{frame.New(60, 40), frame.New(80, 80)}
	out, err := labeler.AnnotateBatch(batch, "BATCH", types.DefaultOptions())
	if err != nil {
		t.Fatalf("AnnotateBatch failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("output batch length = %d, want 2", len(out))
	}
	for i := range out {
		if out[i].Width != batch[i].Width || out[i].Height != batch[i].Height {
			t.Errorf("frame %d dimensions changed", i)
		}
	}
}

func TestAnnotateFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")

	if err := imgio.Save(createTestImage(120, 90), inPath, "png", 90, false); err != nil {
		t.Fatal(err)
	}

	labeler := NewWithResolver(fontres.Static{Face: basicfont.Face7x13})
	if err := labeler.AnnotateFile(inPath, outPath, "FILE", types.DefaultOptions()); err != nil {
		t.Fatalf("AnnotateFile failed: %v", err)
	}

	out, err := imgio.Load(outPath)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	if out.Bounds().Dx() != 120 || out.Bounds().Dy() != 90 {
		t.Errorf("output dimensions = %dx%d, want 120x90",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestAnnotateFileMissingInput(t *testing.T) {
	labeler := New()
	err := labeler.AnnotateFile("/nonexistent/in.png", "/nonexistent/out.png", "X", types.DefaultOptions())
	if err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestNodeSpec(t *testing.T) {
	labeler := New()
	spec := labeler.NodeSpec()
	if spec.ID != "AddTextLabel" {
		t.Errorf("node ID = %q, want AddTextLabel", spec.ID)
	}
	if len(spec.Inputs) != 9 {
		t.Errorf("input count = %d, want 9", len(spec.Inputs))
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Error("GetVersion does not match Version")
	}
}

func TestFileExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"photo.PNG", "png"},
		{"dir/photo.jpg", "jpg"},
		{"archive.tar.webp", "webp"},
		{"noext", "jpg"},
		{"dir.v2/noext", "jpg"},
	}

	for _, tt := range tests {
		if got := fileExt(tt.path); got != tt.want {
			t.Errorf("fileExt(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
