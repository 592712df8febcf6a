package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/folha/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: folha-tui <batch-file>")
		os.Exit(1)
	}
	batchPath := os.Args[1]

	if _, err := os.Stat(batchPath); os.IsNotExist(err) {
		fmt.Printf("Error: batch file not found: %s\n", batchPath)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(batchPath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
