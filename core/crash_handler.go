package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores a display device to its original state
type Finalizer interface {
	Fini()
}

var crashScreen atomic.Pointer[Finalizer]

// RegisterCrashScreen records the screen HandleCrash must restore before printing
func RegisterCrashScreen(f Finalizer) {
	crashScreen.Store(&f)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashScreen.Swap(nil); f != nil {
		(*f).Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
