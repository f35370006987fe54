// Command simon plays Simon Says in the terminal. Arrow keys tilt the board,
// space presses A and B together to start, q quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	simon "github.com/koscakluka/simon/core"
	"github.com/koscakluka/simon/core/audio/miniaudio"
	"github.com/koscakluka/simon/core/audio/portaudio"
	"github.com/koscakluka/simon/core/board/terminal"
	"github.com/koscakluka/simon/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "simon")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = simon.NewSeed(); err != nil {
			return err
		}
	}

	audioClient, closeAudio, err := openAudio(cfg.AudioBackend)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	board := terminal.NewBoard()
	program := tea.NewProgram(board.Model(), tea.WithAltScreen(), tea.WithContext(ctx))
	board.Attach(program)

	opts := []simon.EngineOption{
		simon.WithDisplay(board),
		simon.WithSpeaker(board),
		simon.WithGestureSensor(board),
		simon.WithButtons(board),
		simon.WithRandom(simon.NewRandom(seed)),
		simon.WithPollInterval(cfg.PollInterval),
		simon.WithEventCallback(board.HandleEvent),
	}
	if audioClient != nil {
		opts = append(opts, simon.WithAudio(audioClient))
	}
	engine := simon.NewEngine(opts...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := engine.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("session %s stopped: %v", result.SessionID, err)
		}
		log.Printf("session %s finished after %d rounds (seed %d)", result.SessionID, result.Rounds, seed)
		board.Finish(result, err)
	}()

	_, err = program.Run()
	cancel()
	<-done
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

// openAudio connects the configured backend. The returned close function is
// always safe to call.
func openAudio(backend config.AudioBackend) (simon.Audio, func(), error) {
	switch backend {
	case config.AudioBackendMiniaudio:
		client, err := miniaudio.NewClient()
		if err != nil {
			return nil, func() {}, fmt.Errorf("open miniaudio: %w", err)
		}
		return client, client.Close, nil
	case config.AudioBackendPortaudio:
		client, err := portaudio.NewClient(portaudio.DefaultBufferSize)
		if err != nil {
			return nil, func() {}, fmt.Errorf("open portaudio: %w", err)
		}
		return client, client.Close, nil
	default:
		return nil, func() {}, nil
	}
}
