package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/ohler55/ojg/oj"
	"go.uber.org/zap"
)

// Parser parses TopoJSON documents into Topology values.
//
// Parsing happens in two steps: the JSON text is deserialized into an untyped
// value tree (maps, slices, numbers), then the tree is converted into the
// typed model. Structural errors (ErrShapeMismatch, ErrInvalidArcReference)
// abort the whole document.
type Parser interface {
	// Parse reads a TopoJSON file and returns the topology.
	Parse(filename string) (*Topology, error)

	// ParseBytes parses TopoJSON text held in memory.
	ParseBytes(data []byte) (*Topology, error)

	// ParseWithOptions parses a file with custom options.
	ParseWithOptions(filename string, opts ParseOptions) (*Topology, error)
}

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// SkipUnknownGeometries: if true, geometries with an unrecognized type tag
	// are dropped and recorded in Topology.Skipped.
	// Default: false (return ErrUnknownGeometryKind)
	SkipUnknownGeometries bool

	// ValidateTopology: if true, every arc index referenced by a geometry is
	// checked against the arc table.
	// Default: true
	ValidateTopology bool

	// Logger receives warnings about skipped geometries. Nil means no logging.
	Logger *zap.Logger
}

// DefaultParseOptions returns parse options with defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SkipUnknownGeometries: false,
		ValidateTopology:      true,
	}
}

func (o ParseOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// defaultParser implements the Parser interface.
type defaultParser struct {
	opts ParseOptions
}

// NewParser creates a new TopoJSON parser with default options.
func NewParser() Parser {
	return &defaultParser{opts: DefaultParseOptions()}
}

// NewParserWithOptions creates a parser whose Parse and ParseBytes use opts.
func NewParserWithOptions(opts ParseOptions) Parser {
	return &defaultParser{opts: opts}
}

// Parse reads a TopoJSON file and returns the topology.
func (p *defaultParser) Parse(filename string) (*Topology, error) {
	return p.ParseWithOptions(filename, p.opts)
}

// ParseBytes parses TopoJSON text.
func (p *defaultParser) ParseBytes(data []byte) (*Topology, error) {
	return ParseBytes(data, p.opts)
}

// ParseWithOptions parses with custom options.
func (p *defaultParser) ParseWithOptions(filename string, opts ParseOptions) (*Topology, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	topo, err := ParseBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return topo, nil
}

// ParseBytes deserializes TopoJSON text and builds the topology.
func ParseBytes(data []byte, opts ParseOptions) (*Topology, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return FromValue(root, opts)
}

// FromValue builds a topology from an already deserialized value tree.
//
// Unknown top-level members are ignored. Any of objects, arcs, transform and
// bbox may be absent; the matching field is then left empty.
func FromValue(root any, opts ParseOptions) (*Topology, error) {
	doc, err := ToMap(root, "$")
	if err != nil {
		return nil, err
	}

	topo := &Topology{
		Objects: make(map[string]*Object),
		root:    root,
	}

	if raw, ok := doc["type"]; ok {
		t, ok := raw.(string)
		if !ok {
			return nil, mismatch("type", "string", raw)
		}
		topo.Type = t
	}

	if raw, ok := doc["transform"]; ok && raw != nil {
		if topo.Transform, err = parseTransform(raw); err != nil {
			return nil, err
		}
	}

	if raw, ok := doc["arcs"]; ok {
		if topo.Arcs, err = parseArcs(raw); err != nil {
			return nil, err
		}
	}

	if raw, ok := doc["bbox"]; ok && raw != nil {
		if topo.BBox, err = parseBBox(raw); err != nil {
			return nil, err
		}
	}

	if raw, ok := doc["objects"]; ok {
		objects, err := ToMap(raw, "objects")
		if err != nil {
			return nil, err
		}
		// Sorted so the first error and the Skipped order are deterministic.
		names := make([]string, 0, len(objects))
		for name := range objects {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			obj, err := parseObject(topo, name, objects[name], opts)
			if err != nil {
				return nil, err
			}
			topo.Objects[name] = obj
		}
	}

	if opts.ValidateTopology {
		if err := ValidateTopology(topo); err != nil {
			return nil, err
		}
	}

	return topo, nil
}
