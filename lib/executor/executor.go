package executor

import (
	"fmt"
	"runtime"

	"github.com/cloudfoundry-incubator/ducati-netns/lib/ns"
)

type Executor struct {
	Namespacer ns.NetworkNamespacer
}

// InNamespace runs callback on an OS thread attached to the namespace at
// nsPath, then re-attaches the thread's original namespace before
// returning, whether the callback succeeds, fails, or panics. The
// goroutine is pinned to its OS thread for the whole round trip; when
// the original namespace cannot be restored the thread is left locked so
// the runtime discards it.
func (e *Executor) InNamespace(nsPath string, callback func() error) (err error) {
	runtime.LockOSThread()

	original, err := e.Namespacer.Get()
	if err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("could not open current namespace: %s", err)
	}
	defer original.Close()

	target, err := e.Namespacer.GetFromPath(nsPath)
	if err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("could not open namespace %q: %s", nsPath, err)
	}
	defer target.Close()

	if err := e.Namespacer.Set(target); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("set namespace %q failed: %s", nsPath, err)
	}

	defer func() {
		if restoreErr := e.Namespacer.Set(original); restoreErr != nil {
			if err == nil {
				err = fmt.Errorf("restore original namespace: %s", restoreErr)
			}
			return
		}
		runtime.UnlockOSThread()
	}()

	return callback()
}
