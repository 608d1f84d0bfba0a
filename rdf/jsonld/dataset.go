package jsonld

import (
	"fmt"

	"github.com/charmbracelet/log"
	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// Dataset is an rdf.Dataset stored in a json-gold *ld.RDFDataset.
//
// Statements the native dataset holds in generalized form (for example a
// blank node predicate produced by json-gold's generalized RDF mode) end
// any stream that reaches them with an *rdf.ConversionError. They still
// count towards Size.
type Dataset struct {
	native   *ld.RDFDataset
	conv     converter
	keys     map[string]struct{} // entryKey of every native quad
	size     int
	mods     uint64
	readOnly bool
	logger   *log.Logger
	closed   bool
}

var _ rdf.Dataset = (*Dataset)(nil)

// DatasetOption configures a Dataset.
type DatasetOption func(*Dataset)

// ReadOnly makes every mutation fail with rdf.ErrNotSupported.
func ReadOnly() DatasetOption {
	return func(d *Dataset) {
		d.readOnly = true
	}
}

func newDataset(f *Factory, native *ld.RDFDataset, opts ...DatasetOption) *Dataset {
	if native == nil {
		native = ld.NewRDFDataset()
	}
	if native.Graphs == nil {
		native.Graphs = make(map[string][]*ld.Quad)
	}
	d := &Dataset{
		native: native,
		conv:   f.conv,
		keys:   make(map[string]struct{}),
		logger: f.Logger(),
	}
	d.conv.foreign = make(map[string]rdf.BlankNode)
	for _, opt := range opts {
		opt(d)
	}
	d.index()
	return d
}

// index drops duplicate native quads and records the key of every quad
// kept.
func (d *Dataset) index() {
	dropped := 0
	for name, quads := range d.native.Graphs {
		kept := quads[:0]
		for _, q := range quads {
			if q == nil {
				continue
			}
			k := entryKey(name, nativeKey(q))
			if _, dup := d.keys[k]; dup {
				dropped++
				continue
			}
			d.keys[k] = struct{}{}
			kept = append(kept, q)
		}
		d.native.Graphs[name] = kept
	}
	d.size = len(d.keys)
	if dropped > 0 {
		d.logger.Debug("dropped duplicate native quads", "count", dropped)
	}
}

// Native returns the underlying json-gold dataset. Changing it directly
// bypasses duplicate tracking.
func (d *Dataset) Native() *ld.RDFDataset { return d.native }

// NQuads serializes the dataset with json-gold's N-Quads serializer.
func (d *Dataset) NQuads() (string, error) {
	if d.closed {
		return "", rdf.ErrClosed
	}
	serializer := &ld.NQuadRDFSerializer{}
	out, err := serializer.Serialize(d.native)
	if err != nil {
		return "", err
	}
	s, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("jsonld: unexpected N-Quads result %T", out)
	}
	return s, nil
}

// Canonical returns the URDNA2015 canonical N-Quads form of the dataset.
func (d *Dataset) Canonical() (string, error) {
	if d.closed {
		return "", rdf.ErrClosed
	}
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"
	opts.Algorithm = ld.AlgorithmURDNA2015
	out, err := ld.NewJsonLdApi().Normalize(d.native, opts)
	if err != nil {
		return "", err
	}
	s, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("jsonld: unexpected normalization result %T", out)
	}
	return s, nil
}

func (d *Dataset) writable(op string) error {
	if d.closed {
		return rdf.ErrClosed
	}
	if d.readOnly {
		return rdf.NotSupported(op + " on read-only dataset")
	}
	return nil
}

func (d *Dataset) Add(q rdf.Quad) error {
	if err := d.writable("add"); err != nil {
		return err
	}
	if err := q.Validate(); err != nil {
		return err
	}
	nq := d.conv.toNativeQuad(q)
	name := d.conv.graphKey(q.G)
	k := entryKey(name, nativeKey(nq))
	if _, ok := d.keys[k]; ok {
		return nil
	}
	d.keys[k] = struct{}{}
	d.conv.remember(q)
	d.native.Graphs[name] = append(d.native.Graphs[name], nq)
	d.size++
	d.mods++
	return nil
}

func (d *Dataset) Remove(q rdf.Quad) error {
	if err := d.writable("remove"); err != nil {
		return err
	}
	if q.Validate() != nil {
		return nil
	}
	d.remove(d.conv.graphKey(q.G), nativeKey(d.conv.toNativeQuad(q)))
	return nil
}

func (d *Dataset) remove(name, qk string) {
	k := entryKey(name, qk)
	if _, ok := d.keys[k]; !ok {
		return
	}
	quads := d.native.Graphs[name]
	for i, nq := range quads {
		if nativeKey(nq) == qk {
			quads = append(quads[:i], quads[i+1:]...)
			break
		}
	}
	if len(quads) == 0 && name != defaultGraph {
		delete(d.native.Graphs, name)
	} else {
		d.native.Graphs[name] = quads
	}
	delete(d.keys, k)
	d.size--
	d.mods++
}

// RemoveMatching collects the matches before changing the native dataset.
func (d *Dataset) RemoveMatching(p rdf.QuadPattern) (int, error) {
	if err := d.writable("remove"); err != nil {
		return 0, err
	}
	matches, err := d.Match(p).Collect()
	if err != nil {
		return 0, err
	}
	for _, q := range matches {
		d.remove(d.conv.graphKey(q.G), nativeKey(d.conv.toNativeQuad(q)))
	}
	d.logger.Debug("removed matching statements", "container", "jsonld dataset", "count", len(matches))
	return len(matches), nil
}

func (d *Dataset) Clear() error {
	if err := d.writable("clear"); err != nil {
		return err
	}
	d.logger.Debug("clearing", "container", "jsonld dataset", "size", d.size)
	d.native.Graphs = map[string][]*ld.Quad{defaultGraph: {}}
	clear(d.keys)
	d.size = 0
	d.mods++
	return nil
}

func (d *Dataset) Contains(q rdf.Quad) bool {
	if d.closed || q.Validate() != nil {
		return false
	}
	_, ok := d.keys[entryKey(d.conv.graphKey(q.G), nativeKey(d.conv.toNativeQuad(q)))]
	return ok
}

func (d *Dataset) ContainsMatching(p rdf.QuadPattern) bool {
	_, ok, err := d.Match(p).First()
	return ok && err == nil
}

func (d *Dataset) Size() int { return d.size }

// Logger returns the logger the dataset reports to.
func (d *Dataset) Logger() *log.Logger { return d.logger }

func (d *Dataset) Stream() *rdf.Stream[rdf.Quad] {
	return d.Match(rdf.QuadPattern{})
}

// Match converts native quads lazily. A bound graph restricts the scan to
// that graph's quads. Mutating the dataset while the stream is consumed
// ends it with rdf.ErrConcurrentModification.
func (d *Dataset) Match(p rdf.QuadPattern) *rdf.Stream[rdf.Quad] {
	return rdf.NewStream(func(yield func(rdf.Quad) bool) error {
		if d.closed {
			return rdf.ErrClosed
		}
		start := d.mods
		for _, name := range d.graphKeys(p.G) {
			for _, nq := range d.native.Graphs[name] {
				q, generalized, err := d.conv.fromNativeQuad(nq, name)
				if err != nil {
					d.logger.Warn("native statement is not strict RDF",
						"subject", generalized.S, "predicate", generalized.P, "object", generalized.O, "err", err)
					return err
				}
				if !p.Matches(q) {
					continue
				}
				if !yield(q) {
					return nil
				}
				if d.mods != start {
					return rdf.ErrConcurrentModification
				}
			}
		}
		return nil
	})
}

// graphKeys lists the native graph keys a graph selection can touch.
func (d *Dataset) graphKeys(m rdf.GraphMatch) []string {
	if name, ok := m.Name(); ok {
		return []string{d.conv.graphKey(name)}
	}
	keys := make([]string, 0, len(d.native.Graphs))
	for name := range d.native.Graphs {
		keys = append(keys, name)
	}
	return keys
}

// DefaultGraph returns a live view of the default graph.
func (d *Dataset) DefaultGraph() rdf.Graph {
	return rdf.NewGraphView(d, nil)
}

// Graph returns a live view of the graph named name.
func (d *Dataset) Graph(name rdf.Subject) rdf.Graph {
	return rdf.NewGraphView(d, name)
}

// UnionGraph returns a live view of all graphs merged.
func (d *Dataset) UnionGraph() rdf.Graph {
	return rdf.NewUnionView(d)
}

// GraphNames streams the names of the non-empty named graphs, read from
// the native graph keys.
func (d *Dataset) GraphNames() *rdf.Stream[rdf.Subject] {
	return rdf.NewStream(func(yield func(rdf.Subject) bool) error {
		if d.closed {
			return rdf.ErrClosed
		}
		for _, name := range d.graphKeys(rdf.AnyGraph) {
			if name == defaultGraph || len(d.native.Graphs[name]) == 0 {
				continue
			}
			t, err := d.conv.graphName(name)
			if err != nil {
				return err
			}
			s, ok := t.(rdf.Subject)
			if !ok {
				return &rdf.ConversionError{Position: rdf.PositionGraphName, Term: t}
			}
			if !yield(s) {
				return nil
			}
		}
		return nil
	})
}

// Close releases the native dataset.
func (d *Dataset) Close() error {
	if d.closed {
		return nil
	}
	d.logger.Debug("closing", "container", "jsonld dataset", "size", d.size)
	d.closed = true
	d.native = nil
	d.keys = nil
	return nil
}
