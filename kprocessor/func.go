package kprocessor

import "context"

// Func is a processor assembled from plain functions. Unset hooks do nothing,
// so a Func without OnProcess drops every record.
//
//	lengths := kprocessor.Func[string, string, string, int]{
//	    OnProcess: func(pctx kprocessor.ProcessorContext[string, int], ctx context.Context, k, v string) error {
//	        pctx.Forward(ctx, k, len(v))
//	        return nil
//	    },
//	}.Builder()
type Func[Kin, Vin, Kout, Vout any] struct {
	OnInit    func(ProcessorContext[Kout, Vout]) error
	OnProcess func(pctx ProcessorContext[Kout, Vout], ctx context.Context, k Kin, v Vin) error
	OnClose   func() error
}

// Builder returns a builder handing out one processor per call. The hooks are
// shared, the processor context is not.
func (f Func[Kin, Vin, Kout, Vout]) Builder() ProcessorBuilder[Kin, Vin, Kout, Vout] {
	return func() Processor[Kin, Vin, Kout, Vout] {
		return &funcProcessor[Kin, Vin, Kout, Vout]{hooks: f}
	}
}

type funcProcessor[Kin, Vin, Kout, Vout any] struct {
	hooks Func[Kin, Vin, Kout, Vout]
	pctx  ProcessorContext[Kout, Vout]
}

func (p *funcProcessor[Kin, Vin, Kout, Vout]) Init(pctx ProcessorContext[Kout, Vout]) error {
	p.pctx = pctx
	if p.hooks.OnInit == nil {
		return nil
	}
	return p.hooks.OnInit(pctx)
}

func (p *funcProcessor[Kin, Vin, Kout, Vout]) Process(ctx context.Context, k Kin, v Vin) error {
	if p.hooks.OnProcess == nil {
		return nil
	}
	return p.hooks.OnProcess(p.pctx, ctx, k, v)
}

func (p *funcProcessor[Kin, Vin, Kout, Vout]) Close() error {
	if p.hooks.OnClose == nil {
		return nil
	}
	return p.hooks.OnClose()
}
