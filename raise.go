package xgxreport

// raisedError carries a Report through error returns. It holds the report by
// reference so the exact instance can be recovered by Wrap or AsReport.
type raisedError struct {
	report *Report
	stk    Stack
}

// Error returns the report message.
func (e *raisedError) Error() string { return e.report.message }

// Unwrap exposes the report cause to errors.Is/As.
func (e *raisedError) Unwrap() error { return e.report.cause }

// Report returns the carried report.
func (e *raisedError) Report() *Report { return e.report }

// StackFrames returns the stack captured at the Raise call site.
func (e *raisedError) StackFrames() Stack { return e.stk }
