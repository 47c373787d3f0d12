package kdag

import (
	"errors"
	"fmt"
)

var (
	ErrNodeAlreadyExists = errors.New("node already exists")
	ErrNodeNotFound      = errors.New("node not found")
	ErrCycleDetected     = errors.New("cycle detected")
	ErrInvalidNodeID     = errors.New("invalid node name")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrInvalidTopology   = errors.New("invalid topology")
)

// Builder collects nodes and edges. It is not safe for concurrent use.
//
// The typed registration functions of the streamtap package sit on top of
// it, this package only sees reflect types.
type Builder struct {
	nodes   map[string]*Node
	entries map[string]*Node
}

func NewBuilder() *Builder {
	return &Builder{
		nodes:   make(map[string]*Node),
		entries: make(map[string]*Node),
	}
}

// Node returns the node registered under name.
func (b *Builder) Node(name string) (*Node, bool) {
	n, ok := b.nodes[name]
	return n, ok
}

// AddSource registers an entry node reading topic.
func (b *Builder) AddSource(name, topic string, out Signature, runtime any) error {
	if err := b.checkNew(name); err != nil {
		return err
	}
	if topic == "" {
		return fmt.Errorf("%w: source %q has no topic", ErrInvalidTopology, name)
	}
	if other, ok := b.entries[topic]; ok {
		return fmt.Errorf("%w: topic %q is already read by %q", ErrInvalidTopology, topic, other.Name)
	}

	n := &Node{Name: name, Kind: KindSource, Topic: topic, Out: out, Runtime: runtime}
	b.nodes[name] = n
	b.entries[topic] = n
	return nil
}

// AddProcessor registers a processor below parent.
func (b *Builder) AddProcessor(name, parent string, in, out Signature, runtime any) error {
	return b.attach(parent, &Node{Name: name, Kind: KindProcessor, In: in, Out: out, Runtime: runtime})
}

// AddSink registers a sink writing topic below parent.
func (b *Builder) AddSink(name, topic, parent string, in Signature, runtime any) error {
	if topic == "" {
		return fmt.Errorf("%w: sink %q has no topic", ErrInvalidTopology, name)
	}
	return b.attach(parent, &Node{Name: name, Kind: KindSink, Topic: topic, In: in, Runtime: runtime})
}

// Connect adds an edge between two registered nodes, e.g. to merge two
// branches into one node. The child receives records from both parents.
// Cycles are reported by Build.
func (b *Builder) Connect(parent, child string) error {
	p, ok := b.nodes[parent]
	if !ok {
		return fmt.Errorf("%w: parent %q", ErrNodeNotFound, parent)
	}
	c, ok := b.nodes[child]
	if !ok {
		return fmt.Errorf("%w: child %q", ErrNodeNotFound, child)
	}
	if err := p.accepts(c); err != nil {
		return err
	}
	p.Children = append(p.Children, c)
	return nil
}

func (b *Builder) attach(parent string, n *Node) error {
	if err := b.checkNew(n.Name); err != nil {
		return err
	}
	p, ok := b.nodes[parent]
	if !ok {
		return fmt.Errorf("%w: parent %q of %s %q", ErrNodeNotFound, parent, n.Kind, n.Name)
	}
	if err := p.accepts(n); err != nil {
		return err
	}
	b.nodes[n.Name] = n
	p.Children = append(p.Children, n)
	return nil
}

func (b *Builder) checkNew(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if _, ok := b.nodes[name]; ok {
		return fmt.Errorf("%w: %q", ErrNodeAlreadyExists, name)
	}
	return nil
}

// Build walks the topology from its entries and freezes it.
func (b *Builder) Build() (*DAG, error) {
	if len(b.entries) == 0 {
		return nil, fmt.Errorf("%w: no sources", ErrInvalidTopology)
	}
	order, err := buildOrder(sortedEntries(b.entries))
	if err != nil {
		return nil, err
	}
	return &DAG{entries: b.entries, order: order}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *DAG {
	dag, err := b.Build()
	if err != nil {
		panic(err)
	}
	return dag
}
