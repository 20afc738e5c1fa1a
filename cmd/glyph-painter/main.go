package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/glyph-painter/audio"
	"github.com/lixenwraith/glyph-painter/config"
	"github.com/lixenwraith/glyph-painter/core"
	"github.com/lixenwraith/glyph-painter/document"
	"github.com/lixenwraith/glyph-painter/editor"
	"github.com/lixenwraith/glyph-painter/input"
	"github.com/lixenwraith/glyph-painter/render"
	"github.com/lixenwraith/glyph-painter/stash"
	"github.com/lixenwraith/glyph-painter/view"
)

// Poll loop period
const frameInterval = 15 * time.Millisecond

func main() {
	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg := config.Default()
	cfg.ApplyEnv()
	fs := flag.NewFlagSet("glyph-painter", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: glyph-painter [flags] <document>\n")
		fs.PrintDefaults()
	}
	if err := cfg.Parse(fs, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// A malformed document is reported and replaced by a blank one
	grid, created, loadErr := document.Load(cfg.Path, cfg.Width, cfg.Height)
	if loadErr != nil {
		log.Printf("Document: %v, starting blank", loadErr)
		grid = core.NewGrid(cfg.Width, cfg.Height)
	}

	if cfg.ExportPNG != "" {
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", loadErr)
			os.Exit(1)
		}
		if err := exportPNG(cfg.ExportPNG, grid, cfg.ExportScale); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "glyph-painter needs an interactive terminal")
		os.Exit(1)
	}

	// Stash is optional, the editor runs without it
	var slots editor.Stash
	if cfg.StashPath != "" {
		store, err := stash.Open(cfg.StashPath)
		if err != nil {
			log.Printf("Stash: %v (continuing without stash)", err)
		} else {
			defer store.Close()
			slots = store
		}
	}

	sound := audio.NewSoundManager(cfg.Volume)
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio: initialization failed: %v (continuing without audio)", err)
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	surface := render.NewCellSurface()
	session := editor.NewSession(grid, surface, editor.Options{
		Path:  cfg.Path,
		Stash: slots,
		Sound: sound,
	})
	switch {
	case loadErr != nil:
		session.Report(loadErr)
	case created:
		session.Notify("New document %s", cfg.Path)
	}

	run(screen, session, input.NewMachine(), view.New(screen, surface))
}

// run is the poll loop: drain pending events, apply each, draw one frame
func run(screen tcell.Screen, session *editor.Session, machine *input.Machine, v *view.View) {
	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as PollEvent blocks
	go func() {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for range ticker.C {
	drain:
		for {
			select {
			case ev := <-eventChan:
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
					continue
				}
				machine.SetMode(session.Mode())
				machine.SetPicker(session.PickerArea())
				if in := machine.Process(ev); in != nil {
					// Errors are already on the status line
					_ = session.Apply(*in)
				}
			default:
				break drain
			}
		}

		if session.ShouldQuit() {
			return
		}
		v.Draw(session, time.Now())
	}
}

func exportPNG(path string, g *core.Grid, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.ExportPNG(f, g, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
