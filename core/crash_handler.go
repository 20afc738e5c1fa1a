package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashFini func()
)

// SetCrashFinalizer registers the terminal teardown run before a crash report
func SetCrashFinalizer(fini func()) {
	crashMu.Lock()
	crashFini = fini
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fini := crashFini
	crashFini = nil
	crashMu.Unlock()
	if fini != nil {
		fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mGLYPH-PAINTER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
