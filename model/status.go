package model

import "fmt"

// Status is a bit-flagged result code, following the same shape as the
// teacher's DtStatus: a high success/failure/partial bit plus a detail
// mask identifying what happened.
type Status uint32

const (
	StatusFailure    Status = 1 << 31
	StatusSuccess    Status = 1 << 30
	StatusPartial    Status = 1 << 29 // a path was produced, but one or more branches were cut short
	statusDetailMask Status = 0x0fffffff

	// Detail bits, meaningful alongside StatusFailure or StatusPartial.
	DetailConfigFault     Status = 1 << 0 // invalid emit-option combination (kind 1)
	DetailInfeasible      Status = 1 << 1 // no tree root found (kind 2)
	DetailBranchAbandoned Status = 1 << 2 // a non-root branch had no ancestor slice to attach to (kind 3)
	DetailOvershoot       Status = 1 << 3 // engagement overshoot terminated a branch (kind 4)
	DetailUndershoot      Status = 1 << 4 // engagement undershoot silently terminated a branch (kind 5)
	DetailInternal        Status = 1 << 5 // empty branch curve / structural invariant violation (kind 6)
)

// StatusOK is a plain success with no detail bits set.
var StatusOK = NewStatus(StatusSuccess, 0)

// NewStatus combines a high bit (Success/Failure/Partial) with detail bits.
func NewStatus(high Status, detail Status) Status {
	return high | (detail & statusDetailMask)
}

// Succeeded reports whether s represents success (StatusSuccess or
// StatusPartial, i.e. "a path was produced").
func (s Status) Succeeded() bool { return s&(StatusSuccess|StatusPartial) != 0 }

// Failed reports whether s represents outright failure.
func (s Status) Failed() bool { return s&StatusFailure != 0 }

// Partial reports whether s represents a partial result.
func (s Status) Partial() bool { return s&StatusPartial != 0 }

// Detail reports whether the given detail bit is set.
func (s Status) Detail(d Status) bool { return s&d != 0 }

// WithDetail returns s with additional detail bits OR'd in.
func (s Status) WithDetail(d Status) Status { return s | (d & statusDetailMask) }

// Error implements the error interface so a failed Status can be returned
// and compared like any other Go error.
func (s Status) Error() string {
	switch {
	case s.Detail(DetailConfigFault):
		return "pocket: invalid configuration"
	case s.Detail(DetailInfeasible):
		return "pocket: no admissible root (infeasible pocket or startpoint outside pocket)"
	case s.Detail(DetailBranchAbandoned):
		return "pocket: branch abandoned"
	case s.Detail(DetailOvershoot):
		return "pocket: engagement overshoot"
	case s.Detail(DetailUndershoot):
		return "pocket: engagement undershoot"
	case s.Detail(DetailInternal):
		return "pocket: internal invariant violation"
	case s.Failed():
		return fmt.Sprintf("pocket: unspecified failure 0x%x", uint32(s))
	default:
		return "pocket: success"
	}
}
