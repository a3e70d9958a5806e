// Package node exposes the label renderer through a host-plugin contract:
// a schema describing the node's inputs and outputs, registration metadata
// for the host's node catalog, and a single entry method over image batches.
package node

import (
	"fmt"

	"github.com/menta2k/image-labeler/pkg/frame"
	"github.com/menta2k/image-labeler/pkg/label"
	"github.com/menta2k/image-labeler/pkg/types"
)

// Node identity exposed to the host catalog
const (
	ID          = "AddTextLabel"
	DisplayName = "Add Text Label"
	Category    = "image/annotation"
)

// Kind enumerates the value kinds an input descriptor can declare
type Kind string

// Input value kinds
const (
	KindImage  Kind = "IMAGE"
	KindString Kind = "STRING"
	KindInt    Kind = "INT"
	KindEnum   Kind = "ENUM"
)

// Input describes one input slot of the node schema
type Input struct {
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	Default  any      `json:"default,omitempty"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Choices  []string `json:"choices,omitempty"`
}

// Spec is the registration record the host reads to list and wire the node
type Spec struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Category    string  `json:"category"`
	Inputs      []Input `json:"inputs"`
	Outputs     []Kind  `json:"outputs"`
}

// InputSpec returns the node's full input schema, defaults and ranges
// matching the declared option set
func InputSpec() Spec {
	def := types.DefaultOptions()
	return Spec{
		ID:          ID,
		DisplayName: DisplayName,
		Category:    Category,
		Inputs: []Input{
			{Name: "image", Kind: KindImage, Required: true},
			{Name: "text", Kind: KindString, Required: true, Default: "YOUR TEXT"},
			{Name: "font_family", Kind: KindEnum, Default: string(def.FontFamily),
				Choices: []string{string(types.FamilyArial), string(types.FamilyMonospace)}},
			{Name: "font_size", Kind: KindInt, Default: def.FontSize,
				Min: types.MinFontSize, Max: types.MaxFontSize},
			{Name: "placement", Kind: KindEnum, Default: string(def.Placement),
				Choices: []string{
					string(types.TopLeft), string(types.TopRight),
					string(types.BottomLeft), string(types.BottomRight),
					string(types.Center),
				}},
			{Name: "edge_offset", Kind: KindInt, Default: def.EdgeOffset,
				Min: 0, Max: types.MaxEdgeOffset},
			{Name: "color_scheme", Kind: KindEnum, Default: string(def.ColorScheme),
				Choices: []string{string(types.WhiteOnBlack), string(types.BlackOnWhite)}},
			{Name: "padding", Kind: KindInt, Default: def.Padding,
				Min: 0, Max: types.MaxPadding},
			{Name: "corner_radius", Kind: KindInt, Default: def.CornerRadius,
				Min: 0, Max: types.MaxCornerRadius},
		},
		Outputs: []Kind{KindImage},
	}
}

// Node is one instance of the text label node
type Node struct {
	renderer *label.Renderer
}

// New creates a node with the default renderer
func New() *Node {
	return &Node{renderer: label.New()}
}

// NewWithRenderer creates a node backed by a custom renderer
func NewWithRenderer(r *label.Renderer) *Node {
	return &Node{renderer: r}
}

// Apply is the node's single entry method: label every frame of the batch.
// Options outside their schema ranges are clamped, matching the range
// enforcement a host applies before invoking the node. The output batch has
// the same length, order and frame dimensions as the input.
func (n *Node) Apply(batch frame.Batch, text string, opts types.Options) (frame.Batch, error) {
	for i, f := range batch {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return n.renderer.AnnotateBatch(batch, text, opts.Clamped()), nil
}

// Constructors maps node IDs to constructors and DisplayNames maps node IDs
// to catalog names. Hosts discover available nodes through these two maps.
var (
	Constructors = map[string]func() *Node{
		ID: New,
	}
	DisplayNames = map[string]string{
		ID: DisplayName,
	}
)
