package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/goauction/base/log"
)

// PanicEvent is what a recovered goroutine panicked with
type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	name           string
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type Option func(*options)

// WithName tags the panic log of the goroutine
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithAfterEnded runs f once the goroutine is done, whether it returned or
// panicked.
func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a goroutine. The returned channel yields the panic
// if f panics and is closed otherwise.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	panicCh := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			p := recover()
			if p != nil {
				stack := debug.Stack()
				log.Log().WithFields(log.Fields{
					"err":       p,
					"goroutine": o.name,
					"stack":     string(stack),
				}).Error("panic")
				if o.afterRecovered != nil {
					o.afterRecovered(p, stack)
				}
				panicCh <- &PanicEvent{Panic: p, Stack: stack}
			} else {
				close(panicCh)
			}
			if o.afterEnded != nil {
				o.afterEnded()
			}
		}()
		f()
	}()
	return panicCh
}
