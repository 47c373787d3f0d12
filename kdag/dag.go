package kdag

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DAG is a validated topology.
type DAG struct {
	entries map[string]*Node
	order   []*Node
}

// Entries returns the source topics, sorted.
func (d *DAG) Entries() []string {
	return slices.Sorted(maps.Keys(d.entries))
}

// Entry returns the source reading topic.
func (d *DAG) Entry(topic string) (*Node, bool) {
	n, ok := d.entries[topic]
	return n, ok
}

// BuildOrder returns every node exactly once, each node after all of its
// children.
func (d *DAG) BuildOrder() []*Node {
	return slices.Clone(d.order)
}

func sortedEntries(entries map[string]*Node) []*Node {
	out := make([]*Node, 0, len(entries))
	for _, topic := range slices.Sorted(maps.Keys(entries)) {
		out = append(out, entries[topic])
	}
	return out
}

// buildOrder is a post-order depth-first walk over the children in wiring
// order. A node met again while still on the path closes a cycle.
func buildOrder(roots []*Node) ([]*Node, error) {
	const (
		unseen = iota
		onPath
		done
	)
	state := make(map[*Node]int)
	var (
		order []*Node
		path  []string
	)

	var visit func(n *Node) error
	visit = func(n *Node) error {
		switch state[n] {
		case done:
			return nil
		case onPath:
			return fmt.Errorf("%w: %s -> %s", ErrCycleDetected, strings.Join(path, " -> "), n.Name)
		}
		state[n] = onPath
		path = append(path, n.Name)
		for _, c := range n.Children {
			if err := visit(c); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[n] = done
		order = append(order, n)
		return nil
	}

	for _, r := range roots {
		if err := visit(r); err != nil {
			return nil, err
		}
	}
	return order, nil
}
