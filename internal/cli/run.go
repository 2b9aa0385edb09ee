package cli

import (
	"io"
	"os"

	"github.com/aretw0/orthology/internal/config"
)

// Options contains the resolved configuration of one command invocation:
// the config file merged with the flags the user set.
type Options struct {
	config.Config

	// Input is the Newick file to read; "-" reads standard input.
	Input string

	// Pretty renders compact statements through the Markdown renderer.
	Pretty bool

	// Mermaid switches the tree command to a Mermaid flowchart.
	Mermaid bool

	// Addr is the listen address of the serve and mcp commands.
	Addr string

	// Transport selects the MCP transport: stdio or sse.
	Transport string

	// Quiet suppresses the banner.
	Quiet bool
}

// Streams are the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}
