// Command canvasdemo draws lines and text onto a grayscale canvas and saves
// it as PNG.
//
// Without -input the canvas starts blank. With -input the image is decoded
// and drawn over; -crop additionally draws into a copy of that region only.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/text"
)

// config holds the command line settings.
type config struct {
	width, height int
	input, crop   string
	font          string
	size          int
	text          string
	blend         bool
	output        string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 600, "canvas width")
	flag.IntVar(&cfg.height, "height", 400, "canvas height")
	flag.StringVar(&cfg.input, "input", "", "image to draw over")
	flag.StringVar(&cfg.crop, "crop", "", "region of -input to copy first, as x0,y0,x1,y1")
	flag.StringVar(&cfg.font, "font", "", "font file or name (default: "+text.DefaultFontPath+")")
	flag.IntVar(&cfg.size, "size", 48, "text pixel height")
	flag.StringVar(&cfg.text, "text", "Hello, canvas", "text to draw")
	flag.BoolVar(&cfg.blend, "blend", false, "alpha-blend glyphs instead of overwriting")
	flag.StringVar(&cfg.output, "output", "canvasdemo.png", "output file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("Demo saved to %s\n", cfg.output)
}

// run renders one frame as configured and saves it.
func run(cfg config) error {
	opts := []canvas.Option{canvas.WithBoundsCheck(true)}
	if cfg.font != "" {
		path, err := text.LocateFont(cfg.font)
		if err != nil {
			return fmt.Errorf("find font: %w", err)
		}
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return fmt.Errorf("load font: %w", err)
		}
		defer src.Close()
		opts = append(opts, canvas.WithFont(src))
	}
	if cfg.blend {
		opts = append(opts, canvas.WithCompositing(text.CompositeBlend))
	}

	c, err := target(cfg.input, cfg.crop, cfg.width, cfg.height, opts)
	if err != nil {
		return fmt.Errorf("create canvas: %w", err)
	}
	defer c.Release()

	drawFrame(c)
	drawLabel(c, cfg.text, cfg.size)

	if err := c.SavePNG(cfg.output); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// target builds the canvas to draw on: blank, a decoded image, or a copy
// of a region of a decoded image.
func target(input, crop string, w, h int, opts []canvas.Option) (*canvas.Canvas, error) {
	if input == "" {
		c, err := canvas.NewBlank(w, h, 1, opts...)
		if err != nil {
			return nil, err
		}
		c.Fill(255)
		return c, nil
	}

	img, err := canvas.LoadImage(input, 1, opts...)
	if err != nil {
		return nil, err
	}
	if crop == "" {
		return img.Canvas, nil
	}
	defer img.Release()

	r, err := parseRect(crop)
	if err != nil {
		return nil, err
	}
	view, err := canvas.NewMemoryCanvas(img.Canvas, r)
	if err != nil {
		return nil, err
	}
	return view.Canvas, nil
}

// drawFrame draws a border and both diagonals.
func drawFrame(c *canvas.Canvas) {
	w, h := c.Width()-1, c.Height()-1
	corners := []image.Point{{0, 0}, {w, 0}, {w, h}, {0, h}}
	for i, p := range corners {
		c.DrawLine(p, corners[(i+1)%len(corners)], 0)
	}
	c.DrawLine(corners[0], corners[2], 128)
	c.DrawLine(corners[1], corners[3], 128)
}

// drawLabel centres msg on the canvas with a box around it.
func drawLabel(c *canvas.Canvas, msg string, size int) {
	sz := c.TextSize(msg, size)
	loc := image.Pt((c.Width()-sz.X)/2, (c.Height()-sz.Y)/2)
	c.DrawText(msg, loc, size)

	box := c.TextExtent(msg, size).Add(loc).Inset(-4)
	c.DrawLine(box.Min, image.Pt(box.Max.X, box.Min.Y), 0)
	c.DrawLine(image.Pt(box.Max.X, box.Min.Y), box.Max, 0)
	c.DrawLine(box.Max, image.Pt(box.Min.X, box.Max.Y), 0)
	c.DrawLine(image.Pt(box.Min.X, box.Max.Y), box.Min, 0)
}
