package parse

// ErrKind is a per-line diagnostic code. Diagnostics accumulate on the
// statement they belong to and never abort a run: both assembler passes
// always process every line.
type ErrKind int

const (
	ErrInvalidLine ErrKind = iota
	ErrMissingCommand
	ErrUnknownCommand
	ErrMissingOperand
	ErrOperandNotFound
	ErrOperandResolutionFailed
	ErrDuplicateLabel
	ErrAddressOverflow
)

func (e ErrKind) String() string {
	switch e {
	case ErrInvalidLine:
		return "INVALID LINE"
	case ErrMissingCommand:
		return "MISSING COMMAND"
	case ErrUnknownCommand:
		return "COMMAND NOT FOUND"
	case ErrMissingOperand:
		return "MISSING OPERAND"
	case ErrOperandNotFound:
		return "OPERAND NOT FOUND"
	case ErrOperandResolutionFailed:
		return "OPERAND FORMAT OR SPELLING"
	case ErrDuplicateLabel:
		return "DUPLICATE LABEL"
	case ErrAddressOverflow:
		return "ADDRESS OVERFLOW"
	default:
		return "UNKNOWN"
	}
}
