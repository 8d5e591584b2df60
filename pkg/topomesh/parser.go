package topomesh

import (
	"github.com/beetlebugorg/topomesh/internal/parser"
)

// Parser parses TopoJSON documents.
//
// Create a parser with NewParser and use Parse or ParseWithOptions to read files.
type Parser interface {
	// Parse reads a TopoJSON file and returns the topology.
	//
	// Returns ErrShapeMismatch, ErrUnknownGeometryKind or
	// ErrInvalidArcReference when the document is malformed.
	Parse(filename string) (*Topology, error)

	// ParseBytes parses TopoJSON text held in memory.
	ParseBytes(data []byte) (*Topology, error)

	// ParseWithOptions parses a TopoJSON file with custom options.
	ParseWithOptions(filename string, opts ParseOptions) (*Topology, error)
}

// NewParser creates a new TopoJSON parser with default settings.
//
// Example:
//
//	parser := topomesh.NewParser()
//	topo, err := parser.Parse("coast.topojson")
func NewParser() Parser {
	return NewParserWithOptions(DefaultParseOptions())
}

// NewParserWithOptions creates a parser whose Parse and ParseBytes use opts.
func NewParserWithOptions(opts ParseOptions) Parser {
	return &parserWrapper{
		internal: parser.NewParserWithOptions(convertParseOptions(opts)),
	}
}

// parserWrapper wraps the internal parser and converts options.
type parserWrapper struct {
	internal parser.Parser
}

func (p *parserWrapper) Parse(filename string) (*Topology, error) {
	return p.internal.Parse(filename)
}

func (p *parserWrapper) ParseBytes(data []byte) (*Topology, error) {
	return p.internal.ParseBytes(data)
}

func (p *parserWrapper) ParseWithOptions(filename string, opts ParseOptions) (*Topology, error) {
	return p.internal.ParseWithOptions(filename, convertParseOptions(opts))
}

func convertParseOptions(opts ParseOptions) parser.ParseOptions {
	return parser.ParseOptions{
		SkipUnknownGeometries: opts.SkipUnknownGeometries,
		ValidateTopology:      opts.ValidateTopology,
		Logger:                opts.Logger,
	}
}
