package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ked/config"
	"ked/tui"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	for _, arg := range args {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("ked %s\n", version)
			os.Exit(0)
		}
		if arg == "--help" || arg == "-h" {
			printHelp()
			os.Exit(0)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	app := tui.New(cfg)
	if len(args) > 0 {
		app.OpenInitial(args[0])
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
	}
}

func printHelp() {
	fmt.Println("ked - a modal terminal text editor")
	fmt.Println()
	fmt.Println("Usage: ked [options] [file]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("Normal mode:")
	fmt.Println("  h/j/k/l        Move (H/J/K/L extend the selection)")
	fmt.Println("  i/a            Insert before / append after the selection")
	fmt.Println("  A              Insert at end of line")
	fmt.Println("  o              Open a line below")
	fmt.Println("  c              Change (delete, then insert)")
	fmt.Println("  d              Delete the selection")
	fmt.Println("  g/G            Goto (h/j/k/l: line start, file end, file start, line end)")
	fmt.Println("  y/p            Yank / paste")
	fmt.Println("  u              Undo")
	fmt.Println("  Ctrl+P/Ctrl+N  Previous / next tab")
	fmt.Println("  Ctrl+U/Ctrl+D  Scroll half a page")
	fmt.Println("  :              Command line (quit/q, open/e <path>, write/w)")
}
