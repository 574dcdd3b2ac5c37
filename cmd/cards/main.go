// Command cards runs a flash-card image quiz: it shows images from a
// directory and asks for the matching name, tracking a running score
// over randomly selected subsets.
//
//	cards [flags] <directory>
//
// The directory holds the .png card images and, optionally, a
// sol_map.json sidecar mapping lowercase image names to accepted
// answers. Escape or closing the window quits; under --no-replacement
// the quiz also ends once every image has been used up.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"

	"github.com/flashdeck/cards"
	"github.com/flashdeck/cards/backend/opengl"
)

const windowTitle = "cards"

// fontCandidates lists TTF names tried in order for the quiz font.
var fontCandidates = []string{
	"Arial.ttf",
	"arial.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"FreeSans.ttf",
}

// config holds the parsed command line. It is passed explicitly to the
// components that need it; nothing reads flags ambiently.
type config struct {
	dir           string
	subsetSize    int
	noReplacement bool
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// parseFlags parses the command line into a config.
func parseFlags(args []string) (config, error) {
	var cfg config
	pflag.IntVarP(&cfg.subsetSize, "subset-size", "s", 10, "number of images in a subset")
	pflag.BoolVar(&cfg.noReplacement, "no-replacement", false,
		"remove images from the pool once they have appeared in a subset")
	if err := pflag.CommandLine.Parse(args); err != nil {
		return config{}, err
	}

	if pflag.NArg() != 1 {
		return config{}, errors.New("usage: cards [flags] <directory>")
	}
	cfg.dir = pflag.Arg(0)
	return cfg, nil
}

func run(cfg config) error {
	files, err := cards.ListCardFiles(cfg.dir)
	if err != nil {
		return err
	}
	if cfg.subsetSize > len(files) {
		return fmt.Errorf("subset size (%d) must be less than or equal to the number of images (%d)",
			cfg.subsetSize, len(files))
	}

	solutions, err := cards.LoadSolutions(cfg.dir)
	if err != nil {
		return err
	}

	policy := "with replacement"
	if cfg.noReplacement {
		policy = "without replacement"
	}
	log.Printf("%d images in %s, subsets of %d %s", len(files), cfg.dir, cfg.subsetSize, policy)

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cards.FrameWidth, cards.FrameHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbWidth, fbHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	font, err := opengl.LoadSystemFont(fontCandidates...)
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}

	inputAdapter := opengl.NewInputAdapter(window)

	// Decode, scale, and upload a card image. Runs synchronously at
	// each subset selection; the stall is accepted.
	load := func(file string) (*cards.Card, error) {
		img, err := cards.LoadCardImage(cfg.dir, file, cards.FrameWidth)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		return &cards.Card{
			Name:    cards.DisplayName(file),
			Texture: renderer.CreateImageTexture(img),
			Width:   float32(b.Dx()),
			Height:  float32(b.Dy()),
		}, nil
	}

	var opts []cards.SelectorOption
	if cfg.noReplacement {
		opts = append(opts, cards.WithoutReplacement())
	}
	selector := cards.NewSelector(files, cfg.subsetSize, load, opts...)

	quiz, err := cards.NewQuiz(selector, solutions)
	if err != nil {
		return err
	}

	scene := cards.NewScene(font, cards.FrameWidth, cards.FrameHeight)

	// Main loop: poll input, mutate state, render, present.
	for !window.ShouldClose() {
		inputAdapter.Update()
		glfw.PollEvents()

		running, err := cards.Dispatch(inputAdapter.Input(), quiz)
		if errors.Is(err, cards.ErrPoolExhausted) {
			log.Print("image pool exhausted")
			return nil
		}
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(1, 0.98, 0.91, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := cards.AcquireDrawList()
		scene.Compose(dl, quiz)
		err = renderer.Render(dl)
		cards.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
