package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dingutil/flashborder/internal/color"
)

// printPalette lists the named colors, with swatches when stdout is a
// terminal and plain text when piped.
func printPalette(w io.Writer) {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}

	for _, name := range color.Names() {
		c, _ := color.Named(name)
		hex := c.Hex()
		if styled {
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(hex)).
				Render("      ")
			fmt.Fprintf(w, "%s  %-8s %s\n", swatch, name, hex)
		} else {
			fmt.Fprintf(w, "%-8s %s\n", name, hex)
		}
	}
}
