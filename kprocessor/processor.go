package kprocessor

import (
	"context"
)

// Processor is the contract every node of a topology runs. Init hands over the
// context used to forward records to the children of the node.
type Processor[Kin any, Vin any, Kout any, Vout any] interface {
	Init(ProcessorContext[Kout, Vout]) error
	Close() error
	Process(ctx context.Context, k Kin, v Vin) error
}

// ProcessorBuilder creates a fresh processor instance. A builder is invoked
// once per runtime node, so a processor never sees records of another node.
type ProcessorBuilder[Kin any, Vin any, Kout any, Vout any] func() Processor[Kin, Vin, Kout, Vout]
