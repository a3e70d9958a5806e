// Package imagelabeler renders text labels over images.
//
// A label is a semi-transparent rounded rectangle drawn behind fully opaque
// text at one of five anchor positions. The box is composited through a
// transparent overlay so its opacity is exactly 50% regardless of the pixels
// beneath it, and the text is centered inside the box using the measured ink
// bounding box of the string.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		imagelabeler "github.com/menta2k/image-labeler"
//		"github.com/menta2k/image-labeler/pkg/types"
//	)
//
//	func main() {
//		labeler := imagelabeler.New()
//
//		opts := types.DefaultOptions()
//		opts.Placement = types.BottomRight
//		opts.ColorScheme = types.WhiteOnBlack
//
//		if err := labeler.AnnotateFile("photo.jpg", "photo_labeled.jpg", "DRAFT", opts); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Label (pkg/label): text measurement, box placement and compositing
// 2. Fontres (pkg/fontres): font resolution with silent platform fallbacks
// 3. Frame (pkg/frame): float32 [0,1] pixel grids for batch processing
// 4. Node (pkg/node): the host-plugin schema and batch entry point
//
// Font resolution never fails: candidate font files are probed in order and
// the embedded Go fonts serve as the fallback, so a machine without Arial
// still renders a label.
package imagelabeler

import (
	"fmt"
	"image"

	"github.com/menta2k/image-labeler/pkg/fontres"
	"github.com/menta2k/image-labeler/pkg/frame"
	"github.com/menta2k/image-labeler/pkg/imgio"
	"github.com/menta2k/image-labeler/pkg/label"
	"github.com/menta2k/image-labeler/pkg/node"
	"github.com/menta2k/image-labeler/pkg/types"
)

// Version of the image labeler library
const Version = "1.0.0"

// Labeler provides a high-level interface for labeling images and batches
type Labeler struct {
	renderer *label.Renderer
	node     *node.Node
}

// New creates a Labeler with the default platform font resolver
func New() *Labeler {
	r := label.New()
	return &Labeler{renderer: r, node: node.NewWithRenderer(r)}
}

// NewWithResolver creates a Labeler with a custom font resolver
func NewWithResolver(resolver fontres.Resolver) *Labeler {
	r := label.NewWithResolver(resolver)
	return &Labeler{renderer: r, node: node.NewWithRenderer(r)}
}

// AnnotateImage draws the label on a copy of img and returns the result
func (l *Labeler) AnnotateImage(img image.Image, text string, opts types.Options) *image.NRGBA {
	return l.renderer.Annotate(img, text, opts)
}

// AnnotateBatch labels every frame of a batch, preserving order and frame
// dimensions
func (l *Labeler) AnnotateBatch(batch frame.Batch, text string, opts types.Options) (frame.Batch, error) {
	return l.node.Apply(batch, text, opts)
}

// AnnotateFile loads an image, labels it, and saves the result. The output
// format follows the output path extension.
func (l *Labeler) AnnotateFile(inputPath, outputPath, text string, opts types.Options) error {
	img, err := imgio.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	labeled := l.AnnotateImage(img, text, opts)

	ext := fileExt(outputPath)
	if err := imgio.Save(labeled, outputPath, ext, 90, false); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// NodeSpec returns the registration schema exposed to a hosting node editor
func (l *Labeler) NodeSpec() node.Spec {
	return node.InputSpec()
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}

// fileExt extracts the lowercase extension without the dot
func fileExt(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			ext := path[i+1:]
			out := make([]byte, len(ext))
			for j := 0; j < len(ext); j++ {
				c := ext[j]
				if c >= 'A' && c <= 'Z' {
					c += 'a' - 'A'
				}
				out[j] = c
			}
			return string(out)
		case '/', '\\':
			return "jpg"
		}
	}
	return "jpg"
}
