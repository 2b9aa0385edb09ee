package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/orthology"
	"github.com/aretw0/orthology/pkg/domain"
	"golang.org/x/term"
)

// isTerminal reports whether the stream is an interactive terminal.
var isTerminal = func(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(opts Options, logger *slog.Logger, hooks domain.LifecycleHooks) (*orthology.Engine, error) {
	engine, err := orthology.New(
		orthology.WithSeparator(opts.Separator),
		orthology.WithIDFirst(opts.IDFirst),
		orthology.WithLogger(logger),
		orthology.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// ResolveSeparator fills in a missing separator by asking on the terminal.
// Without a terminal to ask on, a missing separator is a configuration error.
func ResolveSeparator(opts *Options, streams Streams) error {
	if opts.Separator != "" {
		return nil
	}
	if !isTerminal(streams.In) {
		return &domain.ConfigurationError{Field: "separator", Reason: "not set (use --sep or the config file)"}
	}

	sep, err := promptSeparator(streams.In, streams.Out)
	if err != nil {
		return err
	}
	opts.Separator = sep
	return nil
}

func promptSeparator(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Specify the separator: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read separator: %w", err)
	}
	fmt.Fprintln(out)

	// Only the line break is stripped: a space is a legal separator.
	sep := strings.TrimRight(line, "\r\n")
	if sep == "" {
		return "", &domain.ConfigurationError{Field: "separator", Reason: "must not be empty"}
	}
	return sep, nil
}
