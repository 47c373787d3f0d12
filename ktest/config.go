package ktest

import (
	"log/slog"

	"github.com/birdayz/streamtap/internal/execution"
	"github.com/birdayz/streamtap/kprocessor"
)

// RecordCollector buffers the records written by sink nodes, per topic.
type RecordCollector = execution.RecordCollector

// NewRecordCollector creates an empty collector that can be shared between drivers.
func NewRecordCollector() *RecordCollector {
	return execution.NewRecordCollector()
}

// Option is a function that configures a Driver
type Option func(*Driver)

// WithLog sets the logger for the driver
var WithLog = func(log *slog.Logger) Option {
	return func(d *Driver) {
		if log != nil {
			d.log = log
		}
	}
}

// WithRecordCollector makes sink nodes write into collector instead of a
// collector owned by the driver.
var WithRecordCollector = func(collector *RecordCollector) Option {
	return func(d *Driver) {
		d.collector = collector
	}
}

// WithInterceptors wraps every processor node in interceptors. The first
// interceptor is the outermost.
var WithInterceptors = func(interceptors ...kprocessor.ProcessorInterceptor) Option {
	return func(d *Driver) {
		d.interceptors = append(d.interceptors, interceptors...)
	}
}
