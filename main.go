package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/esimov/ascii-wind/simulation"
	"github.com/esimov/ascii-wind/terminal"
)

func main() {
	var (
		color         = flag.String("color", "cyan", "wind color ("+strings.Join(terminal.Hues(), ", ")+")")
		showDensity   = flag.Bool("density", false, "start with the density visualization")
		normalDensity = flag.Bool("normal-density", false, "use normal density instead of high density")
		seed          = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	)
	flag.Parse()

	if err := run(*color, *showDensity, !*normalDensity, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "ascii-wind:", err)
		os.Exit(1)
	}
}

func run(color string, showDensity, highDensity bool, seed int64) error {
	palette, err := terminal.NewPalette(color)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not an interactive terminal")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	surface, err := terminal.New()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	// The terminal must be restored before any diagnostic reaches the user.
	defer surface.Close()

	sim := simulation.New(surface, palette, rng, simulation.Options{
		ShowDensity: showDensity,
		HighDensity: highDensity,
	})
	sim.Run()
	return nil
}
