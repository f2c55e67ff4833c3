package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nitfgo/nitfgo/cmd/nitfexplorer/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if err := logger.Init(logger.Options{Enabled: debugMode, Level: slog.LevelDebug}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch filteredArgs[0] {
	case "--help", "-h":
		printHelp()
		os.Exit(0)
	case "--version", "-v":
		fmt.Printf("nitfexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting nitfexplorer", "path", path, "debug", debugMode)

	if _, err := os.Stat(path); err != nil {
		logger.Error("nitf file not found", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
		os.Exit(1)
	}

	m := NewModel(path)
	if m.err != nil {
		logger.Error("failed to open record", "error", m.err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", m.err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := finalModel.(Model); ok {
		if err := fm.Close(); err != nil {
			logger.Warn("error closing mapped file", "error", err)
		}
	}

	logger.Info("nitfexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: nitfexplorer [options] <nitf-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'nitfexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("nitfexplorer - Interactive TUI for browsing NITF/NSIF files")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  nitfexplorer [options] <nitf-file>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug     write debug logs to ~/.nitfexplorer/logs")
	fmt.Println("  -h, --help      show this help text")
	fmt.Println("  -v, --version   show version information")
	fmt.Println()
	fmt.Println("KEYS:")
	fmt.Println("  up/k, down/j    move the selection")
	fmt.Println("  right/l, enter  expand a segment or TRE")
	fmt.Println("  left/h          collapse, or jump to the parent row")
	fmt.Println("  g / G           jump to the first / last row")
	fmt.Println("  y               copy the selected detail to the clipboard")
	fmt.Println("  e               export the selected TRE's encoded bytes")
	fmt.Println("  ?               toggle the full key help")
	fmt.Println("  q, ctrl+c       quit")
}
