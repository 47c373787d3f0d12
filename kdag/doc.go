// Package kdag holds the type-erased shape of a topology.
//
// Nodes are registered by name below a parent. Every edge is checked when it
// is added: the key and value types a parent emits must be the types its child
// accepts. Sources are the entries of a topology and are looked up by the
// topic they read.
//
// A node's children keep the order they were wired in. The runtime forwards
// records depth-first in that order, so the sequence in which nodes observe a
// record follows from the registration calls alone.
//
// Build walks the graph once from its entries. The walk rejects cycles and
// yields the order runtime nodes are constructed in, every node after its
// children.
package kdag
