// Package buildctx provides the pocket generator's build/log context:
// a bounded, categorized message log plus named timers, grounded on the
// teacher's recast.BuildContext / detour.rcContext. Unlike the teacher's
// version — which is itself the sink — Context forwards every message to
// an injected model.Logger collaborator (the spec's external logging
// interface) while also retaining history for DumpLog and for tests that
// want to assert on what was logged during a run.
package buildctx

import (
	"fmt"
	"time"
)

// Category classifies a logged message.
type Category int

const (
	CategoryProgress Category = iota
	CategoryWarning
	CategoryError
)

const maxMessages = 1000

// TimerLabel names one of the phases a Context can time.
type TimerLabel int

const (
	TimerSample TimerLabel = iota
	TimerVoronoi
	TimerTreeBuild
	TimerRoll
	TimerStitch
	timerCount
)

// Sink receives log messages as they are emitted. model.Logger satisfies
// this interface; Context accepts any implementation so callers are not
// forced to import model from this low-level package.
type Sink interface {
	Logf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errf(format string, args ...interface{})
}

// Context accumulates a bounded log and a set of named timers over the
// lifetime of a single run() call.
type Context struct {
	sink Sink

	logEnabled   bool
	timerEnabled bool

	messages    [maxMessages]string
	numMessages int

	startTime [timerCount]time.Time
	accTime   [timerCount]time.Duration
}

// New creates a Context forwarding to sink. A nil sink only retains
// history, forwarding nothing.
func New(sink Sink) *Context {
	return &Context{sink: sink, logEnabled: true, timerEnabled: true}
}

// EnableLog toggles whether Logf/Warnf/Errf record and forward messages.
func (c *Context) EnableLog(state bool) { c.logEnabled = state }

// EnableTimer toggles whether timers accumulate.
func (c *Context) EnableTimer(state bool) { c.timerEnabled = state }

// Logf records and forwards a progress message.
func (c *Context) Logf(format string, args ...interface{}) { c.log(CategoryProgress, format, args...) }

// Warnf records and forwards a warning.
func (c *Context) Warnf(format string, args ...interface{}) { c.log(CategoryWarning, format, args...) }

// Errf records and forwards an error.
func (c *Context) Errf(format string, args ...interface{}) { c.log(CategoryError, format, args...) }

func (c *Context) log(cat Category, format string, args ...interface{}) {
	if !c.logEnabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if c.numMessages < maxMessages {
		c.messages[c.numMessages] = prefix(cat) + msg
		c.numMessages++
	}
	if c.sink == nil {
		return
	}
	switch cat {
	case CategoryProgress:
		c.sink.Logf("%s", msg)
	case CategoryWarning:
		c.sink.Warnf("%s", msg)
	case CategoryError:
		c.sink.Errf("%s", msg)
	}
}

func prefix(cat Category) string {
	switch cat {
	case CategoryWarning:
		return "WARN "
	case CategoryError:
		return "ERR "
	default:
		return "PROG "
	}
}

// LogCount returns the number of messages recorded so far.
func (c *Context) LogCount() int { return c.numMessages }

// LogText returns the i'th recorded message.
func (c *Context) LogText(i int) string { return c.messages[i] }

// DumpLog prints a header followed by every recorded message, in the style
// of the teacher's BuildContext.DumpLog.
func (c *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < c.numMessages; i++ {
		fmt.Println(c.messages[i])
	}
}

// StartTimer starts the named timer.
func (c *Context) StartTimer(label TimerLabel) {
	if c.timerEnabled {
		c.startTime[label] = time.Now()
	}
}

// StopTimer stops the named timer and accumulates its elapsed time.
func (c *Context) StopTimer(label TimerLabel) {
	if c.timerEnabled {
		c.accTime[label] += time.Since(c.startTime[label])
	}
}

// AccumulatedTime returns the named timer's total accumulated duration, or
// -1 if timers are disabled.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return -1
	}
	return c.accTime[label]
}
