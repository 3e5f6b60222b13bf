// Command pixconv decodes an image file, converts it to a pixfmt format and
// writes the raw pixel buffer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pixfmt"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	toFlag      = flag.String("to", "", "target pixel format, e.g. RGB565 or NV12")
	outFlag     = flag.String("o", "", "raw output file (default stdout)")
	previewFlag = flag.String("preview", "", "write the converted pixels back as .png or .bmp")
	widthFlag   = flag.Int("preview-width", 0, "scale the preview to this width")
	memFlag     = flag.Int("max-mem", 0, "fail conversions needing more bytes than this")
	zstdFlag    = flag.Bool("zstd", false, "compress the raw output with zstd")
	jobsFlag    = flag.Int("j", 0, "convert rows on up to N goroutines")
	listFlag    = flag.Bool("list", false, "list formats and exit")
	verboseFlag = flag.Bool("v", false, "log conversion details to stderr")
)

const usageStr = `pixconv converts images between in-memory pixel formats.

Usage:

    pixconv -to FORMAT [-o out.raw] [-zstd] [-preview out.png] [path]
    pixconv -list

The path to the input image file is optional. If omitted, stdin is read.
Inputs may be BMP, GIF, JPEG, PNG, TIFF or WEBP. The converted buffer is
written to -o, or to stdout when neither -o nor -preview is given.

Flags:

    -to FORMAT          target format name (see -list), case-insensitive
    -o PATH             raw output file
    -preview PATH       decode the result back and save it as PNG or BMP
    -preview-width N    scale the preview to N pixels wide
    -max-mem N          refuse conversions needing more than N bytes
    -zstd               zstd-compress the raw output
    -j N                convert rows on up to N goroutines
    -v                  debug logging
`

var errNoTarget = errors.New("pixconv: missing -to flag")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	if *verboseFlag {
		pixfmt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *listFlag {
		return list(os.Stdout)
	}
	if *toFlag == "" {
		return errNoTarget
	}
	target, err := pixfmt.ParseFormat(*toFlag)
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	switch flag.NArg() {
	case 0:
		// No-op.
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	default:
		return errors.New("pixconv: too many filenames; the maximum is one")
	}

	var opts []pixfmt.Option
	if *memFlag > 0 {
		opts = append(opts, pixfmt.WithMemoryLimit(*memFlag))
	}
	if *jobsFlag > 1 {
		opts = append(opts, pixfmt.WithWorkers(*jobsFlag))
	}
	bm, err := convert(in, target, opts...)
	if err != nil {
		return err
	}

	if *previewFlag != "" {
		if err := writePreview(*previewFlag, bm, *widthFlag); err != nil {
			return err
		}
	}
	switch {
	case *outFlag != "":
		return writeRaw(*outFlag, bm, *zstdFlag)
	case *previewFlag == "":
		return copyRaw(os.Stdout, bm, *zstdFlag)
	}
	return nil
}

// convert decodes an image and reformats it to target.
func convert(r io.Reader, target pixfmt.Format, opts ...pixfmt.Option) (*pixfmt.Bitmap, error) {
	img, kind, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	pixfmt.Logger().Debug("pixconv: decoded", "kind", kind, "bounds", img.Bounds())
	return pixfmt.FromImage(img, target, opts...)
}

func writeRaw(path string, bm *pixfmt.Bitmap, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := copyRaw(f, bm, compress); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// copyRaw writes the pixel buffer of bm, as a single zstd frame when
// compress is set.
func copyRaw(w io.Writer, bm *pixfmt.Bitmap, compress bool) error {
	data, err := bm.Lock()
	if err != nil {
		return err
	}
	defer bm.Unlock()

	if !compress {
		_, err = w.Write(data)
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func writePreview(path string, bm *pixfmt.Bitmap, width int) error {
	img, err := bm.Image(0)
	if err != nil {
		return err
	}
	if width > 0 && width != img.Bounds().Dx() {
		img = scale(img, width)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".png":
		err = png.Encode(f, img)
	default:
		err = fmt.Errorf("pixconv: unsupported preview extension %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// scale resamples img to the given width keeping the aspect ratio.
func scale(img image.Image, width int) image.Image {
	b := img.Bounds()
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// list prints every format with its identifier, pixel size, the bytes of a
// 1920x1080 plane and the matching GPU texture format.
func list(w io.Writer) error {
	p := message.NewPrinter(language.English)
	hd := pixfmt.Size2D{Width: 1920, Height: 1080}
	for _, f := range pixfmt.Formats() {
		bw, bh, bytes := f.BlockSize()
		layout := fmt.Sprintf("%d bpp", f.BitsPerPixel())
		if f.IsBlockCompressed() {
			layout = fmt.Sprintf("%dx%d/%dB", bw, bh, bytes)
		}
		tex := "-"
		if t := f.TextureFormat(); t != gputypes.TextureFormatUndefined {
			tex = t.String()
		}
		if _, err := p.Fprintf(w, "%-10s 0x%08x %-10s %12d  %s\n",
			f, uint32(f), layout, pixfmt.CalcPlaneSize(f, hd), tex); err != nil {
			return err
		}
	}
	return nil
}
