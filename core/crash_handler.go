// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
	crashHooks  []func()

	// Replaced in tests
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// SetCrashScreen registers the screen finalized before a crash report is printed
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// OnCrash registers a cleanup hook run after the screen is finalized, in registration order
func OnCrash(fn func()) {
	crashMu.Lock()
	crashHooks = append(crashHooks, fn)
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen, hooks := crashScreen, crashHooks
	crashMu.Unlock()

	// Restore terminal first so the report is readable
	if screen != nil {
		screen.Fini()
	}
	for _, fn := range hooks {
		fn()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
