package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdayz/streamtap"
	"github.com/birdayz/streamtap/kdag"
	"github.com/birdayz/streamtap/kprocessor"
	"github.com/birdayz/streamtap/kserde"
	"github.com/birdayz/streamtap/pkg/log"
)

const peekEntry = "test-stream"

var peekFlags struct {
	label string
	count int
	stdin bool
}

var peekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Print records passing a peek node",
	Long: "peek wires source -> print -> count and drives records through it.\n" +
		"Records are either synthetic (key i, value \"V\"+i) or one per stdin line\n" +
		"(key = line number).",
	Args: cobra.NoArgs,
	RunE: runPeek,
}

func init() {
	f := peekCmd.Flags()
	f.StringVar(&peekFlags.label, "label", peekEntry, "Label printed in front of every record")
	f.IntVar(&peekFlags.count, "count", 4, "Number of synthetic records")
	f.BoolVar(&peekFlags.stdin, "stdin", false, "Read record values from stdin, one per line")
}

func runPeek(cmd *cobra.Command, _ []string) error {
	if peekFlags.count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", peekFlags.count)
	}

	logger := log.New(rootFlags.verbose)
	out := bufio.NewWriter(cmd.OutOrStdout())

	var input io.Reader
	if peekFlags.stdin {
		input = cmd.InOrStdin()
	}

	n, err := peek(cmd.Context(), logger, out, input, peekFlags.label, peekFlags.count)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}

	logger.Info("Peek done", "records", n, "label", peekFlags.label)
	return nil
}

// buildPeekTopology wires source -> print -> count. count is incremented once
// per record reaching the end of the topology.
func buildPeekTopology(w io.Writer, label string, count *int) (*kdag.DAG, error) {
	b := kdag.NewBuilder()

	if err := streamtap.RegisterSource(b, "source", peekEntry, kserde.IntDeserializer, kserde.StringDeserializer); err != nil {
		return nil, err
	}
	if err := streamtap.RegisterPrint(b, "print", "source", w, kserde.FormatInt, kserde.FormatString, label); err != nil {
		return nil, err
	}
	counter := kprocessor.ActionFunc[int, string](func(int, string) error {
		*count++
		return nil
	})
	if err := streamtap.RegisterForEach(b, "count", "print", counter); err != nil {
		return nil, err
	}

	return b.Build()
}
