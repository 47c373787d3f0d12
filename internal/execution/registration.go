package execution

import (
	"fmt"

	"github.com/birdayz/streamtap/internal/runtime"
	"github.com/birdayz/streamtap/kdag"
	"github.com/birdayz/streamtap/kprocessor"
	"github.com/birdayz/streamtap/kserde"
)

// RegisterSource registers a source reading topic. The deserializers are only
// used for raw records, typed injection bypasses them.
func RegisterSource[K, V any](b *kdag.Builder, name, topic string, keyDeserializer kserde.Deserializer[K], valueDeserializer kserde.Deserializer[V]) error {
	return b.AddSource(name, topic, kdag.SignatureOf[K, V](), &sourceFactory[K, V]{
		name:       name,
		topic:      topic,
		keyDeser:   keyDeserializer,
		valueDeser: valueDeserializer,
	})
}

// RegisterProcessor registers a processor below parent.
func RegisterProcessor[Kin, Vin, Kout, Vout any](b *kdag.Builder, p kprocessor.ProcessorBuilder[Kin, Vin, Kout, Vout], name, parent string) error {
	if p == nil {
		return fmt.Errorf("processor %q: nil processor builder", name)
	}
	return b.AddProcessor(name, parent, kdag.SignatureOf[Kin, Vin](), kdag.SignatureOf[Kout, Vout](), &processorFactory[Kin, Vin, Kout, Vout]{
		name:    name,
		builder: p,
	})
}

// RegisterSink registers a sink writing topic below parent.
func RegisterSink[K, V any](b *kdag.Builder, name, topic string, keySerializer kserde.Serializer[K], valueSerializer kserde.Serializer[V], parent string) error {
	return b.AddSink(name, topic, parent, kdag.SignatureOf[K, V](), &sinkFactory[K, V]{
		name:     name,
		topic:    topic,
		keySer:   keySerializer,
		valueSer: valueSerializer,
	})
}

type sourceFactory[K, V any] struct {
	name       string
	topic      string
	keyDeser   kserde.Deserializer[K]
	valueDeser kserde.Deserializer[V]
}

func (f *sourceFactory[K, V]) Build(_ BuildEnv, children []BuiltNode) (RuntimeNode, error) {
	source := runtime.NewRuntimeSourceNode(f.name, f.topic, f.keyDeser, f.valueDeser)
	if err := wire(children, source.AddDownstream); err != nil {
		return nil, err
	}
	return source, nil
}

type processorFactory[Kin, Vin, Kout, Vout any] struct {
	name    string
	builder kprocessor.ProcessorBuilder[Kin, Vin, Kout, Vout]
}

func (f *processorFactory[Kin, Vin, Kout, Vout]) Build(env BuildEnv, children []BuiltNode) (RuntimeNode, error) {
	pctx := runtime.NewInternalProcessorContext[Kout, Vout]()
	if err := wire(children, pctx.AddOutput); err != nil {
		return nil, err
	}

	processor := f.builder()
	if processor == nil {
		return nil, fmt.Errorf("processor builder of %s returned nil", f.name)
	}
	return runtime.NewRuntimeProcessorNode(f.name, processor, pctx, env.Interceptors), nil
}

type sinkFactory[K, V any] struct {
	name     string
	topic    string
	keySer   kserde.Serializer[K]
	valueSer kserde.Serializer[V]
}

func (f *sinkFactory[K, V]) Build(env BuildEnv, _ []BuiltNode) (RuntimeNode, error) {
	return runtime.NewRuntimeSinkNode(f.name, f.topic, f.keySer, f.valueSer, env.Collector), nil
}

// wire hands every child to add. A child that does not accept (K, V) is a
// type mismatch the builder should have caught.
func wire[K, V any](children []BuiltNode, add func(string, runtime.InputProcessor[K, V])) error {
	for _, c := range children {
		in, ok := c.Node.(runtime.InputProcessor[K, V])
		if !ok {
			return fmt.Errorf("%w: child %s does not accept %s", kdag.ErrTypeMismatch, c.Name, kdag.SignatureOf[K, V]())
		}
		add(c.Name, in)
	}
	return nil
}

var (
	_ NodeFactory = (*sourceFactory[string, string])(nil)
	_ NodeFactory = (*processorFactory[string, string, string, string])(nil)
	_ NodeFactory = (*sinkFactory[string, string])(nil)
)
