// Command gologo interprets a Logo-dialect turtle-graphics script and
// renders the drawing to an SVG or PNG image.
//
//	gologo -o flower.svg [-W width] [-H height] [-v] flower.lg
//
// With no script argument it starts an interactive session instead.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/Sheeplet1/gologo/canvas"
	"github.com/Sheeplet1/gologo/interp"
	"github.com/Sheeplet1/gologo/lang"
	"github.com/Sheeplet1/gologo/parser"
	"github.com/Sheeplet1/gologo/turtle"
)

const (
	defaultWidth  = 1000
	defaultHeight = 1000
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	width := defaultWidth
	height := defaultHeight
	output := ""
	verbose := false

	opts, optind, err := getopt.Getopts(args, "W:H:o:v")
	if err != nil {
		errorf("gologo: %v", err)
		usage()
		return 2
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'W':
			width, err = strconv.Atoi(opt.Value)
		case 'H':
			height, err = strconv.Atoi(opt.Value)
		case 'o':
			output = opt.Value
		case 'v':
			verbose = true
		}
		if err != nil || width <= 0 || height <= 0 {
			errorf("gologo: invalid dimension %q", opt.Value)
			return 2
		}
	}
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	rest := args[optind:]
	if len(rest) == 0 {
		return runREPL(width, height)
	}
	if len(rest) > 1 {
		usage()
		return 2
	}
	if output == "" {
		errorf("gologo: -o <image.svg|image.png> is required when running a script")
		return 2
	}
	return runScript(rest[0], output, width, height)
}

func runScript(script, output string, width, height int) int {
	var src []byte
	var err error
	if script == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(script)
	}
	if err != nil {
		errorf("gologo: %v", err)
		return 1
	}

	image := canvas.NewImage(width, height)
	t := turtle.New(image)
	env := lang.NewEnv()

	nodes, err := parser.ParseString(string(src), env)
	if err != nil {
		errorf("parse error: %v", err)
		return 1
	}
	if err := interp.New(t, env).Execute(nodes); err != nil {
		errorf("execution error: %v", err)
		return 1
	}
	if err := saveImage(image, output); err != nil {
		errorf("gologo: %v", err)
		return 1
	}
	return 0
}

// saveImage picks the encoder from the output extension.
func saveImage(im *canvas.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return im.SaveSVG(path)
	case ".png":
		return im.SavePNG(path)
	default:
		return fmt.Errorf("invalid output extension %q: use .svg or .png", filepath.Ext(path))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gologo [-W width] [-H height] [-v] -o <image.svg|image.png> <script.lg | ->")
	fmt.Fprintln(os.Stderr, "       gologo [-W width] [-H height] [-v]   (interactive session)")
}

func errorf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
}
