package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justsurfingit/job-board/internal/board"
	"github.com/justsurfingit/job-board/internal/client"
	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/ui"
)

func main() {
	cfg := config.Load()

	apiURL := flag.String("api", cfg.APIBaseURL, "base URL of the job board API")
	logFile := flag.String("log", "", "write diagnostics to this file")
	flag.Parse()

	// The terminal belongs to the board, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "board")
		if err != nil {
			fmt.Fprintln(os.Stderr, "open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "board ", log.LstdFlags)

	cl := client.New(*apiURL)
	ctrl := board.New(context.Background(), cl, logger)
	defer ctrl.Close()

	logger.Printf("connecting to %s", *apiURL)

	p := tea.NewProgram(ui.NewModel(ctrl, cl.SignOut), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "board:", err)
		os.Exit(1)
	}
	if m, ok := final.(ui.Model); ok && m.Notice() != "" {
		fmt.Println(m.Notice())
	}
}
