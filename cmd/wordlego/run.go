package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hupe1980/wordlego"
	"github.com/hupe1980/wordlego/resultlog"
	"github.com/hupe1980/wordlego/table"
	"github.com/hupe1980/wordlego/vocab"
)

type runConfig struct {
	wordsPath   string
	maxGuesses  int
	workers     int
	logPath     string
	logLevel    slog.Level
	snapshot    string
	compression table.Compression
	pairs       []string
}

func run(ctx context.Context, cfg runConfig) error {
	v, err := vocab.ReadFile(cfg.wordsPath)
	if err != nil {
		return err
	}

	logPath := cfg.logPath
	if logPath == "" {
		logPath = fmt.Sprintf("result%d.txt", len(cfg.pairs)/2+1)
	}
	log, err := resultlog.Create(logPath)
	if err != nil {
		return err
	}
	defer log.Close()

	opts := []wordlego.Option{
		wordlego.WithMaxGuesses(cfg.maxGuesses),
		wordlego.WithWorkers(cfg.workers),
		wordlego.WithLogLevel(cfg.logLevel),
		wordlego.WithResultSink(log),
	}
	if cfg.snapshot != "" {
		store, name, err := openSnapshotStore(cfg.snapshot)
		if err != nil {
			return err
		}
		opts = append(opts,
			wordlego.WithSnapshotStore(store, name),
			wordlego.WithSnapshotCompression(cfg.compression),
		)
	}

	solver, err := wordlego.New(ctx, v, opts...)
	if err != nil {
		return err
	}

	for i := 0; i+1 < len(cfg.pairs); i += 2 {
		if err := solver.Apply(ctx, cfg.pairs[i], cfg.pairs[i+1]); err != nil {
			return err
		}
	}

	fmt.Println("Saving results in:", log.Path())

	rec, solveErr := solver.Solve(ctx)
	if err := log.Close(); err != nil {
		return err
	}
	if err := resultlog.Sort(log.Path()); err != nil {
		return err
	}

	switch {
	case errors.Is(solveErr, wordlego.ErrNoGuaranteedWin):
		fmt.Println("Computation is done. You can't win!")
	case solveErr != nil:
		return solveErr
	default:
		fmt.Println("Computation is done. Play the word:", rec.Word)
	}

	return nil
}
