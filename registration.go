package streamtap

import (
	"io"

	"github.com/birdayz/streamtap/internal/execution"
	"github.com/birdayz/streamtap/kdag"
	"github.com/birdayz/streamtap/kprocessor"
	"github.com/birdayz/streamtap/kserde"
)

// RegisterSource registers a source node that reads from topic. The topic is
// also the entry name records are injected at.
func RegisterSource[K, V any](b *kdag.Builder, name string, topic string, keyDeserializer kserde.Deserializer[K], valueDeserializer kserde.Deserializer[V]) error {
	return execution.RegisterSource(b, name, topic, keyDeserializer, valueDeserializer)
}

// MustRegisterSource is like RegisterSource but panics on error.
func MustRegisterSource[K, V any](b *kdag.Builder, name string, topic string, keyDeserializer kserde.Deserializer[K], valueDeserializer kserde.Deserializer[V]) {
	must(RegisterSource(b, name, topic, keyDeserializer, valueDeserializer))
}

// RegisterProcessor registers a processor node below parent.
func RegisterProcessor[Kin, Vin, Kout, Vout any](b *kdag.Builder, p kprocessor.ProcessorBuilder[Kin, Vin, Kout, Vout], name string, parent string) error {
	return execution.RegisterProcessor(b, p, name, parent)
}

// MustRegisterProcessor is like RegisterProcessor but panics on error.
func MustRegisterProcessor[Kin, Vin, Kout, Vout any](b *kdag.Builder, p kprocessor.ProcessorBuilder[Kin, Vin, Kout, Vout], name string, parent string) {
	must(RegisterProcessor(b, p, name, parent))
}

// RegisterSink registers a sink node that writes to topic.
func RegisterSink[K, V any](b *kdag.Builder, name, topic string, keySerializer kserde.Serializer[K], valueSerializer kserde.Serializer[V], parent string) error {
	return execution.RegisterSink(b, name, topic, keySerializer, valueSerializer, parent)
}

// MustRegisterSink is like RegisterSink but panics on error.
func MustRegisterSink[K, V any](b *kdag.Builder, name, topic string, keySerializer kserde.Serializer[K], valueSerializer kserde.Serializer[V], parent string) {
	must(RegisterSink(b, name, topic, keySerializer, valueSerializer, parent))
}

// RegisterPeek registers a pass-through node that applies action to every
// record and forwards it unchanged.
func RegisterPeek[K, V any](b *kdag.Builder, name, parent string, action kprocessor.Action[K, V]) error {
	p, err := kprocessor.NewPeek(action, true)
	if err != nil {
		return err
	}
	return RegisterProcessor(b, p, name, parent)
}

// MustRegisterPeek is like RegisterPeek but panics on error.
func MustRegisterPeek[K, V any](b *kdag.Builder, name, parent string, action kprocessor.Action[K, V]) {
	must(RegisterPeek(b, name, parent, action))
}

// RegisterForEach registers a terminal node that applies action to every
// record and forwards nothing.
func RegisterForEach[K, V any](b *kdag.Builder, name, parent string, action kprocessor.Action[K, V]) error {
	p, err := kprocessor.NewPeek(action, false)
	if err != nil {
		return err
	}
	return RegisterProcessor(b, p, name, parent)
}

// MustRegisterForEach is like RegisterForEach but panics on error.
func MustRegisterForEach[K, V any](b *kdag.Builder, name, parent string, action kprocessor.Action[K, V]) {
	must(RegisterForEach(b, name, parent, action))
}

// RegisterPrint registers a pass-through node writing one line per record to w:
//
//	[label]: key, value
func RegisterPrint[K, V any](b *kdag.Builder, name, parent string, w io.Writer, keyFmt kserde.Formatter[K], valueFmt kserde.Formatter[V], label string) error {
	p, err := kprocessor.Print(w, keyFmt, valueFmt, label)
	if err != nil {
		return err
	}
	return RegisterProcessor(b, p, name, parent)
}

// MustRegisterPrint is like RegisterPrint but panics on error.
func MustRegisterPrint[K, V any](b *kdag.Builder, name, parent string, w io.Writer, keyFmt kserde.Formatter[K], valueFmt kserde.Formatter[V], label string) {
	must(RegisterPrint(b, name, parent, w, keyFmt, valueFmt, label))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
