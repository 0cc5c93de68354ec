package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when the renderer cannot be used.
func printMarkdown(source string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(source)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
