// predicates.go — recognise errors that carry a raised Report.
//
// The search follows both Unwrap() error and Unwrap() []error, so a raised
// report is found even after fmt.Errorf("...: %w", err) or errors.Join along
// the way. It walks with a causeGuard rather than errors.As, which would spin
// forever on a cause chain that loops back on itself.
package xgxreport

// carrierSearchDepth bounds how deep AsReport looks for a raised report.
const carrierSearchDepth = 1024

// AsReport returns the report carried by the first error in err's chain
// produced by Report.Raise.
func AsReport(err error) (*Report, bool) {
	if err == nil {
		return nil, false
	}
	g := newCauseGuard(carrierSearchDepth)
	g.mark(err)
	found := g.find(err, 1, func(e error) bool {
		re, ok := e.(*raisedError)
		return ok && re.report != nil
	})
	if found == nil {
		return nil, false
	}
	return found.(*raisedError).report, true
}

// IsReported reports whether err's chain contains a raised Report.
func IsReported(err error) bool {
	_, ok := AsReport(err)
	return ok
}
