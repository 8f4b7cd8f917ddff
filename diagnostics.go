package fastuidraw

// DiagnosticKind enumerates the non-fatal conditions surfaced to a caller
// instead of a panic or error return (§7).
type DiagnosticKind int

const (
	// DiagnosticBudgetExhausted means at least one subset returned by
	// Select exceeds maxAttributeCount or maxIndexCount on its own; the
	// full clip-visible set is still returned.
	DiagnosticBudgetExhausted DiagnosticKind = iota
	// DiagnosticTriangulationFailed means a leaf's sweep produced a
	// combine() call that could not be resolved to a vertex (degenerate
	// or self-intersecting input); the leaf's geometry is still usable,
	// just incomplete.
	DiagnosticTriangulationFailed
	// DiagnosticInvalidFillRule means a StandardFillRule value outside
	// the four defined enumerants was passed; the caller got the
	// non-zero rule instead.
	DiagnosticInvalidFillRule
)

// Diagnostic is one occurrence of a DiagnosticKind, returned alongside
// the otherwise-successful result it accompanies.
type Diagnostic struct {
	Kind     DiagnosticKind
	Message  string
	SubsetID int // meaningful for DiagnosticTriangulationFailed
}
