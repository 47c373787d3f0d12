package execution

import (
	"fmt"

	"github.com/birdayz/streamtap/internal/runtime"
	"github.com/birdayz/streamtap/kdag"
	"github.com/birdayz/streamtap/kprocessor"
)

// RuntimeNode is a built node of any kind.
type RuntimeNode interface {
	Init() error
	Close() error
}

// BuiltNode is a runtime node together with its name in the DAG.
type BuiltNode struct {
	Name string
	Node RuntimeNode
}

// SourceNode is a built source. It accepts raw records as well as untyped
// key/value pairs that are checked against the declared source types.
type SourceNode interface {
	RuntimeNode
	runtime.RawRecordProcessor
	runtime.AnyInputProcessor
}

// BuiltSource is a source node together with its name in the DAG.
type BuiltSource struct {
	Name string
	Node SourceNode
}

// BuildEnv is shared by all nodes of one build.
type BuildEnv struct {
	Collector    runtime.RecordCollector
	Interceptors *kprocessor.InterceptorChain
}

// NodeFactory is stored in every kdag.Node by the Register functions.
// children are built already and passed in wiring order.
type NodeFactory interface {
	Build(env BuildEnv, children []BuiltNode) (RuntimeNode, error)
}

type NodeBuildResult struct {
	// Sources keyed by topic
	Sources map[string]BuiltSource
	// Children before parents
	Nodes []BuiltNode
}

// BuildNodes builds one runtime node per DAG node. Nodes are built in the
// DAG's build order, so every node gets its finished children at construction.
func BuildNodes(dag *kdag.DAG, env BuildEnv) (*NodeBuildResult, error) {
	order := dag.BuildOrder()
	built := make(map[*kdag.Node]RuntimeNode, len(order))
	result := &NodeBuildResult{
		Sources: make(map[string]BuiltSource),
		Nodes:   make([]BuiltNode, 0, len(order)),
	}

	for _, node := range order {
		factory, ok := node.Runtime.(NodeFactory)
		if !ok {
			return nil, fmt.Errorf("build %s %s: no runtime factory", node.Kind, node.Name)
		}

		children := make([]BuiltNode, len(node.Children))
		for i, c := range node.Children {
			children[i] = BuiltNode{Name: c.Name, Node: built[c]}
		}

		rn, err := factory.Build(env, children)
		if err != nil {
			return nil, fmt.Errorf("build %s %s: %w", node.Kind, node.Name, err)
		}
		built[node] = rn
		result.Nodes = append(result.Nodes, BuiltNode{Name: node.Name, Node: rn})

		if node.Kind == kdag.KindSource {
			source, ok := rn.(SourceNode)
			if !ok {
				return nil, fmt.Errorf("build source %s: does not accept records", node.Name)
			}
			result.Sources[node.Topic] = BuiltSource{Name: node.Name, Node: source}
		}
	}

	return result, nil
}

// BuildTask builds a Task for the whole DAG. A nil collector is replaced by a
// fresh one, interceptors may be nil.
func BuildTask(dag *kdag.DAG, collector *RecordCollector, interceptors *kprocessor.InterceptorChain) (*Task, error) {
	if collector == nil {
		collector = NewRecordCollector()
	}

	nodes, err := BuildNodes(dag, BuildEnv{Collector: collector, Interceptors: interceptors})
	if err != nil {
		return nil, err
	}

	return NewTaskWithConfig(TaskConfig{
		TaskID:    fmt.Sprintf("task%v", dag.Entries()),
		Sources:   nodes.Sources,
		Nodes:     nodes.Nodes,
		Collector: collector,
	}), nil
}
