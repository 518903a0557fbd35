package collection

import (
	"github.com/isle-engine/omni/trace"
)

type config[T any] struct {
	name    string
	compare func(a, b T) int
	destroy func(T)
	trace   *trace.List
}

type Option[T any] func(c *config[T])

// WithCompare sets the ordering used by Insert, Remove and Find.
func WithCompare[T any](compare func(a, b T) int) Option[T] {
	return func(c *config[T]) {
		c.compare = compare
	}
}

// WithDestructor sets the function called once for every discarded element.
func WithDestructor[T any](destroy func(T)) Option[T] {
	return func(c *config[T]) {
		c.destroy = destroy
	}
}

// WithTrace appends t to the list trace. Several traces are composed.
func WithTrace[T any](t trace.List, opts ...trace.ListComposeOption) Option[T] {
	return func(c *config[T]) {
		if c.trace == nil {
			c.trace = &trace.List{}
		}
		c.trace = c.trace.Compose(&t, opts...)
	}
}

// WithName names the list in trace events.
func WithName[T any](name string) Option[T] {
	return func(c *config[T]) {
		c.name = name
	}
}
