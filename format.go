// format.go — fmt.Formatter for raised reports.
//
// Behavior:
//
//   %s, %v   → the report message (Error()).
//   %q       → quoted message.
//   %+v      → verbose, multi-line:
//                msg="<message>"
//                report:
//                <indented JSON of the report>
//                stack:
//                  funcA file.go:123
//                  funcB other.go:45
package xgxreport

import (
	"fmt"
	"io"
)

func formatVerbose(w io.Writer, r *Report, stk Stack) {
	_, _ = fmt.Fprintf(w, "msg=%q", r.message)

	// A failing builder must not break error formatting.
	if obj, err := r.Render(); err != nil {
		_, _ = fmt.Fprintf(w, "\nreport: %v", err)
	} else {
		_, _ = io.WriteString(w, "\nreport:\n")
		_, _ = io.WriteString(w, indentJSON(obj, r.cfg.indent))
	}

	if len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

func (e *raisedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.report, e.stk)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}
