// Package statsview runs a local HTTP server offering runtime statistics of
// the emulator process. It is started by the -statsview flag of the debugger.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// Standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
