package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/birdayz/streamtap/kprocessor"
	"github.com/birdayz/streamtap/ktest"
)

// peek drives records through the peek topology and returns how many reached
// the counter. With a nil input, count synthetic records are generated.
func peek(ctx context.Context, logger *slog.Logger, w io.Writer, input io.Reader, label string, count int) (n int, err error) {
	dag, err := buildPeekTopology(w, label, &n)
	if err != nil {
		return 0, fmt.Errorf("build topology: %w", err)
	}

	driver, err := ktest.NewDriver(dag,
		ktest.WithLog(logger),
		ktest.WithInterceptors(kprocessor.LoggingInterceptor(logger)),
	)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := driver.Close(); err == nil {
			err = closeErr
		}
	}()

	if input == nil {
		for i := 0; i < count; i++ {
			if err := driver.Process(ctx, peekEntry, i, fmt.Sprintf("V%d", i)); err != nil {
				return n, err
			}
		}
		return n, nil
	}

	scanner := bufio.NewScanner(input)
	for line := 0; scanner.Scan(); line++ {
		if err := driver.Process(ctx, peekEntry, line, scanner.Text()); err != nil {
			return n, err
		}
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read input: %w", err)
	}
	return n, nil
}
