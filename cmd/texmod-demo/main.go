// Command texmod-demo shades a full-screen quad with a texture and four
// corner vertex colors and writes the result as a PNG.
//
// Usage:
//
//	texmod-demo -texture photo.jpg -tl '#ff0000' -br '#0000ff' -address repeat -tile 3
//
// Without -texture a checkerboard is used.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texmod"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

func main() {
	var (
		texture = flag.String("texture", "", "texture image (PNG, JPEG, GIF, BMP, WebP); checkerboard if empty")
		output  = flag.String("output", "texmod.png", "output file")
		width   = flag.Int("width", 512, "output width")
		height  = flag.Int("height", 512, "output height")
		tl      = flag.String("tl", "#ffffff", "top-left vertex color")
		tr      = flag.String("tr", "#ffffff", "top-right vertex color")
		bl      = flag.String("bl", "#ffffff", "bottom-left vertex color")
		br      = flag.String("br", "#ffffff", "bottom-right vertex color")
		address = flag.String("address", "clamp", "address mode: clamp, repeat or mirror")
		filter  = flag.String("filter", "linear", "filter: nearest or linear")
		tile    = flag.Float64("tile", 1, "texture repetitions across the quad")
		workers = flag.Int("workers", 0, "shading goroutines (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		texmod.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid output size %dx%d", *width, *height)
	}

	corners, err := parseCorners(*tl, *tr, *bl, *br)
	if err != nil {
		log.Fatal(err)
	}

	desc, err := samplerDescriptor(*address, *filter)
	if err != nil {
		log.Fatal(err)
	}

	img, err := loadTexture(*texture)
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}

	bg := texmod.NewBindGroup(img, texmod.NewSampler(desc))
	frags := quadFragments(*width, *height, corners, float32(*tile))

	c := texmod.NewCompositor(texmod.WithWorkers(*workers))
	defer c.Close()

	shaded := make([]texmod.Color4, len(frags))
	c.ShadeFragments(shaded, frags, bg)

	if err := savePNG(*output, *width, *height, shaded); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Shaded %d fragments to %s (%dx%d)\n", len(frags), *output, *width, *height)
}

// parseCorners parses the vertex colors in top-left, top-right,
// bottom-left, bottom-right order.
func parseCorners(hex ...string) ([4]texmod.Color4, error) {
	var out [4]texmod.Color4
	for i, h := range hex {
		c, err := texmod.ParseHex(h)
		if err != nil {
			return out, err
		}
		out[i] = c
	}
	return out, nil
}

func samplerDescriptor(address, filter string) (texmod.SamplerDescriptor, error) {
	desc := texmod.DefaultSamplerDescriptor()

	var mode gputypes.AddressMode
	switch address {
	case "clamp":
		mode = gputypes.AddressModeClampToEdge
	case "repeat":
		mode = gputypes.AddressModeRepeat
	case "mirror":
		mode = gputypes.AddressModeMirrorRepeat
	default:
		return desc, fmt.Errorf("unknown address mode %q", address)
	}
	desc.AddressModeU, desc.AddressModeV, desc.AddressModeW = mode, mode, mode

	var f gputypes.FilterMode
	switch filter {
	case "nearest":
		f = gputypes.FilterModeNearest
	case "linear":
		f = gputypes.FilterModeLinear
	default:
		return desc, fmt.Errorf("unknown filter %q", filter)
	}
	desc.MagFilter, desc.MinFilter, desc.MipmapFilter = f, f, f

	return desc, nil
}

func loadTexture(path string) (*texmod.Image, error) {
	if path == "" {
		return checkerboard(8, 32)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return texmod.ImageFromStd(src)
}

// checkerboard builds a cells x cells board of cellSize-pixel squares.
func checkerboard(cells, cellSize int) (*texmod.Image, error) {
	size := cells * cellSize
	pix := make([]byte, 0, size*size*4)
	for y := range size {
		for x := range size {
			v := byte(64)
			if (x/cellSize+y/cellSize)%2 == 0 {
				v = 230
			}
			pix = append(pix, v, v, v, 255)
		}
	}
	return texmod.NewImage(size, size, gputypes.TextureFormatRGBA8Unorm, pix)
}

// quadFragments interpolates the corner colors and texture coordinates
// across a w x h quad, one fragment per pixel center.
func quadFragments(w, h int, corners [4]texmod.Color4, tile float32) []texmod.Fragment {
	frags := make([]texmod.Fragment, 0, w*h)
	for y := range h {
		fy := (float32(y) + 0.5) / float32(h)
		left := corners[0].Lerp(corners[2], fy)
		right := corners[1].Lerp(corners[3], fy)
		for x := range w {
			fx := (float32(x) + 0.5) / float32(w)
			frags = append(frags, texmod.Fragment{
				Color: left.Lerp(right, fx),
				UV:    texmod.UV(fx*tile, fy*tile),
			})
		}
	}
	return frags
}

func savePNG(path string, w, h int, colors []texmod.Color4) error {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range colors {
		out.SetNRGBA(i%w, i/w, c.NRGBA())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, out); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
