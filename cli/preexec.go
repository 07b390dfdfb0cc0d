package cli

import "sync"

// PreInvoke is a function that may run before a command's callback.
type PreInvoke func() error

var (
	preInvokeMux    sync.Mutex
	globalPreInvoke []PreInvoke
)

// AddGlobalPreInvoke registers a function that runs right before any
// callback in any command tree. If a [PreInvoke] returns an error, the
// callback is not invoked and the error is returned from the call instead.
// Parse-only use is unaffected.
//
// Passing a nil [PreInvoke] panics.
func AddGlobalPreInvoke(fn PreInvoke) {
	if fn == nil {
		panic("nil pre-invoke function")
	}
	preInvokeMux.Lock()
	defer preInvokeMux.Unlock()
	globalPreInvoke = append(globalPreInvoke, fn)
}

func runGlobalPreInvoke() error {
	preInvokeMux.Lock()
	defer preInvokeMux.Unlock()
	for _, fn := range globalPreInvoke {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
