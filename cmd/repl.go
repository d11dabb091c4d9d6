package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"go.booleval.dev/pkg"
)

func repl(interp *booleval.Interpreter, cfg *booleval.Config) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	loadHistory(line, cfg.HistoryFile)
	defer saveHistory(line, cfg.HistoryFile)

	for {
		input, err := line.Prompt(cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}

			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}

			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		// A bad line is reported and the session goes on
		_ = evalSource(os.Stdout, interp, input)
	}
}

func loadHistory(line *liner.State, path string) {
	if path == "" {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = line.ReadHistory(f)
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: failed to save history:", err)
		return
	}
	defer f.Close()

	_, _ = line.WriteHistory(f)
}
