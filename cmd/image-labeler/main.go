package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	imagelabeler "github.com/menta2k/image-labeler"
	"github.com/menta2k/image-labeler/internal/config"
	"github.com/menta2k/image-labeler/internal/utils"
	"github.com/menta2k/image-labeler/pkg/imgio"
	"github.com/menta2k/image-labeler/pkg/types"
)

func main() {
	var in, outDir, text, cfgPath string
	var family, placement, scheme string
	var size, edge, padding, radius int
	var ext string
	var quality int
	var lossless bool

	flag.StringVar(&in, "in", "", "input image path or directory (jpg/png/webp)")
	flag.StringVar(&outDir, "out", "", "output directory (default from config)")
	flag.StringVar(&text, "text", "", "label text (default from config)")
	flag.StringVar(&cfgPath, "config", "", "config file path (JSON)")

	flag.StringVar(&family, "font", "", "font family: Arial|Monospace")
	flag.IntVar(&size, "size", 0, "font size in px (6-256)")
	flag.StringVar(&placement, "placement", "", "top_left|top_right|bottom_left|bottom_right|center")
	flag.IntVar(&edge, "edge", -1, "edge offset in px (0-4096)")
	flag.StringVar(&scheme, "scheme", "", "color scheme: white_on_black|black_on_white")
	flag.IntVar(&padding, "padding", -1, "box padding in px (0-256)")
	flag.IntVar(&radius, "radius", -1, "corner radius in px (0-128)")

	flag.StringVar(&ext, "ext", "", "output format: jpg|png|webp (default from config)")
	flag.IntVar(&quality, "quality", 0, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", false, "WebP lossless mode")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|dir -text \"LABEL\" [-placement bottom_right] [-scheme white_on_black] [-out outdir]",
			filepath.Base(os.Args[0]))
	}

	// Load config, then let flags override it
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	opts := cfg.Options()
	if family != "" {
		fam, err := types.ParseFontFamily(family)
		if err != nil {
			log.Fatal(err)
		}
		opts.FontFamily = fam
	}
	if size > 0 {
		opts.FontSize = size
	}
	if placement != "" {
		pl, err := types.ParsePlacement(placement)
		if err != nil {
			log.Fatal(err)
		}
		opts.Placement = pl
	}
	if edge >= 0 {
		opts.EdgeOffset = edge
	}
	if scheme != "" {
		cs, err := types.ParseColorScheme(scheme)
		if err != nil {
			log.Fatal(err)
		}
		opts.ColorScheme = cs
	}
	if padding >= 0 {
		opts.Padding = padding
	}
	if radius >= 0 {
		opts.CornerRadius = radius
	}
	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	if text == "" {
		text = cfg.Label.Text
	}
	if outDir == "" {
		outDir = cfg.Output.OutputDir
	}
	if ext == "" {
		ext = cfg.Output.DefaultFormat
	}
	if quality <= 0 {
		quality = cfg.Output.Quality
	}
	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatal(err)
	}

	// Collect inputs: a single file or every image under a directory
	var inputs []string
	if info, err := os.Stat(in); err != nil {
		log.Fatal(err)
	} else if info.IsDir() {
		inputs, err = utils.ListImageFiles(in)
		if err != nil {
			log.Fatal(err)
		}
		if len(inputs) == 0 {
			log.Fatalf("no image files found under %s", in)
		}
	} else {
		inputs = []string{in}
	}

	labeler := imagelabeler.New()

	for _, path := range inputs {
		img, err := imgio.Load(path)
		if err != nil {
			log.Printf("load %s failed: %v", path, err)
			continue
		}

		labeled := labeler.AnnotateImage(img, text, opts)

		outPath := utils.GenerateOutputFilename(path, outDir, cfg.Output.Prefix, cfg.Output.Suffix, strings.ToLower(ext))
		if err := imgio.Save(labeled, outPath, ext, quality, lossless); err != nil {
			log.Printf("save %s failed: %v", outPath, err)
			continue
		}
		log.Printf("wrote %s", outPath)
	}
}
