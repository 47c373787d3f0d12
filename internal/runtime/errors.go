package runtime

import (
	"errors"
)

var (
	ErrDeserialize = errors.New("deserialize")
	ErrSerialize   = errors.New("serialize")
)

// NodeError attributes a failure to the runtime node it happened in. Only the
// node an error starts in wraps it, nodes further up pass it on as is.
type NodeError struct {
	Node string
	Err  error
}

func (e *NodeError) Error() string {
	return "node " + e.Node + ": " + e.Err.Error()
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// Attribute returns the node err is attributed to and the error it reported.
// Errors without attribution are returned unchanged with an empty node.
func Attribute(err error) (node string, cause error) {
	var ne *NodeError
	if errors.As(err, &ne) {
		return ne.Node, ne.Err
	}
	return "", err
}

// attributed wraps err into a NodeError for node unless it already carries
// one.
func attributed(node string, err error) error {
	var ne *NodeError
	if errors.As(err, &ne) {
		return err
	}
	return &NodeError{Node: node, Err: err}
}
