// Package register lets packages contribute setup hooks from init without
// the consumer importing them by name.
package register

import "sync"

type funcRegister struct {
	handlers map[any][]any
	locker   sync.RWMutex
}

var fr = &funcRegister{
	handlers: make(map[any][]any),
}

type Handler[T any] func(T)

// RegisterFunc appends handler under key. Handlers run in registration order.
func RegisterFunc[T any](key any, handler Handler[T]) {
	fr.locker.Lock()
	fr.handlers[key] = append(fr.handlers[key], handler)
	fr.locker.Unlock()
}

// ResolveFuncHandlers returns the handlers under key whose argument type is T.
func ResolveFuncHandlers[T any](key any) []Handler[T] {
	fr.locker.RLock()
	defer fr.locker.RUnlock()

	var result []Handler[T]
	for _, v := range fr.handlers[key] {
		if h, ok := v.(Handler[T]); ok {
			result = append(result, h)
		}
	}
	return result
}
