package buildctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	logs, warns, errs []string
}

func (r *recordingSink) Logf(format string, args ...interface{})  { r.logs = append(r.logs, format) }
func (r *recordingSink) Warnf(format string, args ...interface{}) { r.warns = append(r.warns, format) }
func (r *recordingSink) Errf(format string, args ...interface{})  { r.errs = append(r.errs, format) }

func TestContext_ForwardsAndRecords(t *testing.T) {
	sink := &recordingSink{}
	ctx := New(sink)

	ctx.Logf("starting")
	ctx.Warnf("narrow channel")
	ctx.Errf("overshoot")

	require.Equal(t, 3, ctx.LogCount())
	assert.Equal(t, "PROG starting", ctx.LogText(0))
	assert.Equal(t, "WARN narrow channel", ctx.LogText(1))
	assert.Equal(t, "ERR overshoot", ctx.LogText(2))

	assert.Len(t, sink.logs, 1)
	assert.Len(t, sink.warns, 1)
	assert.Len(t, sink.errs, 1)
}

func TestContext_DisabledLogDoesNotRecord(t *testing.T) {
	ctx := New(nil)
	ctx.EnableLog(false)
	ctx.Logf("should not appear")
	assert.Equal(t, 0, ctx.LogCount())
}

func TestContext_Timer(t *testing.T) {
	ctx := New(nil)
	ctx.StartTimer(TimerRoll)
	ctx.StopTimer(TimerRoll)
	assert.GreaterOrEqual(t, ctx.AccumulatedTime(TimerRoll), time.Duration(0))
}
