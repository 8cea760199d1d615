// Package parse turns one raw source line into a typed Statement.
//
// The MUCPU source language is line oriented and case-insensitive:
//
//	[ws] [LABEL:] [ws] MNEMONIC ws+ OPERAND [ws]*
//
// or a comment, a line whose first column is a semicolon. Labels consist of
// letters and digits, are declared at most once and may be used before or
// after their declaration. Operands are either exactly two hex digits or a
// label reference; which one cannot be decided per line, so the raw token is
// kept verbatim for the second assembler pass.
package parse

import (
	"regexp"
	"strings"

	"github.com/mucpu/muasm/asm/ins"
)

type (
	// Kind classifies a parsed line.
	Kind int

	// Statement is the immutable result of parsing one source line.
	// Parsing is total: malformed input comes back as a Statement with
	// diagnostics attached, never as a failure.
	Statement struct {
		Src string // source line, upper-cased

		Kind Kind

		Label    string
		Mnemonic string
		Operand  string // raw token, resolved in pass 2

		Opcode int // opcode byte, -1 if none

		Errs []ErrKind
	}
)

const (
	Comment Kind = iota
	Instruction
	Malformed
)

var (
	statement = regexp.MustCompile(`^\s*(?:(\w+):)?\s*(\w+)\s+(\w+)\s*$`)

	// partial shapes, matched so diagnostics can name what is missing
	labelOnly = regexp.MustCompile(`^\s*(\w+):\s*$`)
	noOperand = regexp.MustCompile(`^\s*(?:(\w+):)?\s*(\w+)\s*$`)
)

// Parse parses a single raw source line.
func Parse(line string) Statement {
	src := strings.ToUpper(line)

	if strings.HasPrefix(src, ";") {
		return Statement{Src: src, Kind: Comment, Opcode: -1}
	}

	st := Statement{Src: src, Kind: Instruction, Opcode: -1}

	switch {
	case match(statement, src, &st.Label, &st.Mnemonic, &st.Operand):
	case match(labelOnly, src, &st.Label):
		st.Errs = append(st.Errs, ErrMissingCommand)

		return st
	case match(noOperand, src, &st.Label, &st.Mnemonic):
		st.Errs = append(st.Errs, ErrMissingOperand)
	default:
		st.Kind = Malformed
		st.Errs = append(st.Errs, ErrInvalidLine)

		return st
	}

	if op, ok := ins.Opcode(st.Mnemonic); ok {
		st.Opcode = int(op)
	} else if !ins.Known(st.Mnemonic) {
		st.Errs = append(st.Errs, ErrUnknownCommand)
	}

	return st
}

func match(re *regexp.Regexp, src string, groups ...*string) bool {
	m := re.FindStringSubmatch(src)
	if m == nil {
		return false
	}

	for i, g := range groups {
		*g = m[i+1]
	}

	return true
}
