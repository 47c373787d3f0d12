package kdag

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind tells sources, processors and sinks apart.
type Kind int

const (
	KindSource Kind = iota
	KindProcessor
	KindSink
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindProcessor:
		return "processor"
	case KindSink:
		return "sink"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Signature is the key and value type on one side of a node.
type Signature struct {
	Key   reflect.Type
	Value reflect.Type
}

// SignatureOf returns the signature of records with key K and value V.
func SignatureOf[K, V any]() Signature {
	return Signature{Key: reflect.TypeFor[K](), Value: reflect.TypeFor[V]()}
}

func (s Signature) String() string {
	return fmt.Sprintf("(%v, %v)", s.Key, s.Value)
}

// Node is one vertex of a topology. In is zero for sources, Out is zero for
// sinks.
//
// Children holds the nodes this node forwards to, in the order they were
// wired. Runtime dispatch follows that order.
type Node struct {
	Name     string
	Kind     Kind
	Topic    string
	In       Signature
	Out      Signature
	Children []*Node

	// Runtime is the opaque factory the execution layer turns into a
	// runtime node.
	Runtime any
}

// ChildNames returns the names of the children in wiring order.
func (n *Node) ChildNames() []string {
	names := make([]string, len(n.Children))
	for i, c := range n.Children {
		names[i] = c.Name
	}
	return names
}

// accepts checks that records leaving n can enter child.
func (n *Node) accepts(child *Node) error {
	switch {
	case n.Kind == KindSink:
		return fmt.Errorf("%w: sink %q cannot forward to %q", ErrInvalidTopology, n.Name, child.Name)
	case child.Kind == KindSource:
		return fmt.Errorf("%w: source %q cannot have a parent", ErrInvalidTopology, child.Name)
	case n.Out != child.In:
		return fmt.Errorf("%w: %q emits %s, %q expects %s", ErrTypeMismatch, n.Name, n.Out, child.Name, child.In)
	}
	return nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidNodeID, name)
	}
	return nil
}
