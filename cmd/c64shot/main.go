// Command c64shot captures a pixel-accurate screenshot of a running
// Commodore 64's VIC-II output over an Ultimate 64's remote freeze/DMA
// HTTP facility.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/climbr-dev/c64shot/internal/capture"
	"github.com/climbr-dev/c64shot/internal/preview"
	"github.com/climbr-dev/c64shot/internal/remote"
	"github.com/climbr-dev/c64shot/internal/render"
	"github.com/climbr-dev/c64shot/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			printHelp()
			return 0
		}
		fmt.Fprintln(os.Stderr, "c64shot:", err)
		return 1
	}

	ext := strings.ToLower(extOf(cfg.outputPath))
	if !validExtension(ext) {
		fmt.Fprintf(os.Stderr, "c64shot: unsupported output extension %q\n", ext)
		return 1
	}

	client := remote.New(cfg.host, cfg.password)

	var stages chan string
	var done chan struct{}
	var program *tea.Program
	if isTerminal(os.Stdout) {
		stages = make(chan string, 32)
		done = make(chan struct{})
		model := tui.NewModel(stages, done)
		program = tea.NewProgram(model)
	}

	opts := capture.Options{
		Border:      cfg.border,
		Sprites:     cfg.sprites,
		Upscale:     cfg.upscale,
		NoROMBypass: cfg.noROMBypass,
		WriteDumps:  cfg.dumpDir != "",
		DumpDir:     cfg.dumpDir,
		Progress: func(stage string) {
			if stages != nil {
				stages <- stage
			} else {
				fmt.Fprintln(os.Stderr, "c64shot:", stage)
			}
		},
	}

	var img render.RgbImage
	var captureErr error
	captureDone := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		img, captureErr = capture.Capture(ctx, client, opts)
		if stages != nil {
			close(stages)
		}
		if done != nil {
			close(done)
		}
		close(captureDone)
	}()

	if program != nil {
		if _, err := program.Run(); err != nil {
			fmt.Fprintln(os.Stderr, "c64shot:", err)
		}
	}
	<-captureDone

	if captureErr != nil {
		fmt.Fprintln(os.Stderr, "c64shot: capture failed:", captureErr)
		return 1
	}

	out, err := os.Create(cfg.outputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "c64shot:", err)
		return 1
	}
	defer out.Close()
	if err := render.EncodeToFile(out, img, cfg.outputPath); err != nil {
		fmt.Fprintln(os.Stderr, "c64shot: encode failed:", err)
		return 1
	}

	if cfg.preview {
		win, err := preview.Open(img)
		if err != nil {
			fmt.Fprintln(os.Stderr, "c64shot: preview failed:", err)
			return 0
		}
		win.WaitClose()
		win.Cleanup()
	}

	return 0
}

type config struct {
	host        string
	outputPath  string
	border      bool
	sprites     bool
	upscale     int
	password    string
	noROMBypass bool
	dumpDir     string
	preview     bool
}

var errHelpRequested = errors.New("help requested")

// parseArgs implements the CLI surface of spec.md §6. A flag.FlagSet alone
// cannot express "--upscale=N" long flags alongside positional arguments
// without a custom pre-pass, so every long flag (boolean switches and
// --name=value flags alike) is split out of os.Args by hand first; the
// remainder (the positionals) is handed to flag.FlagSet.
func parseArgs(args []string) (config, error) {
	cfg := config{
		border:  false,
		sprites: true,
		upscale: 1,
	}

	var rest []string
	for _, a := range args {
		switch {
		case a == "--help" || a == "-h":
			return cfg, errHelpRequested
		case a == "--no-border":
			cfg.border = false
		case a == "--border":
			cfg.border = true
		case a == "--nosprites":
			cfg.sprites = false
		case a == "--no-rom-bypass":
			cfg.noROMBypass = true
		case a == "--preview":
			cfg.preview = true
		case strings.HasPrefix(a, "--upscale="):
			n, err := strconv.Atoi(strings.TrimPrefix(a, "--upscale="))
			if err != nil || n < 1 {
				return cfg, fmt.Errorf("--upscale requires an integer >= 1, got %q", strings.TrimPrefix(a, "--upscale="))
			}
			cfg.upscale = n
		case strings.HasPrefix(a, "--password="):
			cfg.password = strings.TrimPrefix(a, "--password=")
		case strings.HasPrefix(a, "--dump-dir="):
			cfg.dumpDir = strings.TrimPrefix(a, "--dump-dir=")
		case strings.HasPrefix(a, "--"):
			return cfg, unknownFlagError(a)
		default:
			rest = append(rest, a)
		}
	}

	fs := flag.NewFlagSet("c64shot", flag.ContinueOnError)
	if err := fs.Parse(rest); err != nil {
		return cfg, err
	}
	positional := fs.Args()
	if len(positional) < 1 {
		return cfg, errors.New("missing required IP_ADDRESS argument")
	}
	cfg.host = positional[0]
	cfg.outputPath = "screenshot.png"
	if len(positional) >= 2 {
		cfg.outputPath = positional[1]
	}
	return cfg, nil
}

// unknownFlagError mirrors the original Python's "did you mean" suggestions
// for common typos.
func unknownFlagError(flagName string) error {
	suggestions := map[string]string{
		"--scale":  "--upscale=N",
		"--sprite": "--nosprites",
		"--border": "--no-border / --border",
		"--bypass": "--no-rom-bypass",
	}
	for typo, correct := range suggestions {
		if strings.HasPrefix(flagName, typo) {
			return fmt.Errorf("unknown flag %q, did you mean %q?", flagName, correct)
		}
	}
	return fmt.Errorf("unknown flag %q", flagName)
}

func extOf(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i:]
}

func validExtension(ext string) bool {
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff", ".tif":
		return true
	default:
		return false
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}

func printHelp() {
	fmt.Println(`c64shot IP_ADDRESS [output_path]

Flags:
  --no-border       omit the 32px border (default)
  --border          include the 32px border
  --nosprites       skip sprite compositing
  --upscale=N       nearest-neighbor upscale by integer factor N (default 1)
  --password=STR    Ultimate 64 HTTP password
  --no-rom-bypass   disable the ROM-shadow bypass (fails on VIC bank 3)
  --dump-dir=PATH   write raw memory windows to PATH alongside the image
  --preview         open a window showing the captured frame
  --help, -h        show this help`)
}
