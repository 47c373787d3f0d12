// Package streamtap builds small stream processing topologies out of typed
// nodes and observes the records flowing through them.
//
// A topology is registered on a kdag.Builder: sources name the entry topics,
// processors and sinks are attached below a parent. Pass-through nodes
// (RegisterPeek, RegisterPrint) run an action on every record and forward it
// unchanged, terminal nodes (RegisterForEach) stop the record.
//
//	b := kdag.NewBuilder()
//	streamtap.MustRegisterSource(b, "src", "test-stream", kserde.IntDeserializer, kserde.StringDeserializer)
//	streamtap.MustRegisterPrint(b, "print", "src", os.Stdout, kserde.FormatInt, kserde.FormatString, "peek")
//	streamtap.MustRegisterForEach(b, "count", "print", kprocessor.ActionFunc[int, string](count))
//
//	driver, err := ktest.NewDriver(b.MustBuild())
//
// See package ktest for driving records through a built topology.
package streamtap
