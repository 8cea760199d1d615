// Package asm assembles MUCPU 2017 source into a listing and machine code.
//
// Assembly is two sequential passes over the parsed statements. Pass 1
// assigns a program counter address to every non-comment line and collects
// label declarations. Pass 2 resolves every operand against the completed
// label table, so forward and backward references behave the same.
package asm

import (
	"context"
	"os"
	"regexp"
	"strconv"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/mucpu/muasm/asm/ins"
	"github.com/mucpu/muasm/asm/parse"
)

type (
	// Line is a statement with its resolved fields. Addr and Val are byte
	// values, -1 when not resolved (comments carry no address, errored
	// operands no value).
	Line struct {
		parse.Statement

		Addr int
		Val  int
	}

	// Program is the result of one assembly run: the lines in source
	// order plus the pass 1 label table. It is not mutated after
	// Assemble returns; every run builds a fresh one.
	Program struct {
		Lines  []Line
		Labels map[string]int
	}
)

// AssembleFile reads a source file and assembles it.
func AssembleFile(ctx context.Context, name string) (*Program, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Assemble(ctx, name, text), nil
}

// Assemble runs both passes over the source text. It is total: lines with
// diagnostics stay in the program, nothing aborts the run.
func Assemble(ctx context.Context, name string, text []byte) *Program {
	lines := splitLines(text)

	p := &Program{
		Lines:  make([]Line, 0, len(lines)),
		Labels: make(map[string]int),
	}

	for _, raw := range lines {
		p.Lines = append(p.Lines, Line{
			Statement: parse.Parse(raw),
			Addr:      -1,
			Val:       -1,
		})
	}

	p.assign(ctx)
	p.resolve(ctx)

	tlog.SpanFromContext(ctx).Printw("assembled", "name", name, "lines", len(p.Lines), "labels", len(p.Labels))

	return p
}

// assign is pass 1: program counter assignment and label collection.
// Comments take no slot. DB takes one addressable unit, every other
// statement two, recognized or not. Duplicate label declarations keep the
// first address and flag the later line. A line whose address would leave
// the one-byte address space gets no address and declares no labels.
func (p *Program) assign(ctx context.Context) {
	tr := tlog.SpanFromContext(ctx).V("pass1")

	pc := 0

	for i := range p.Lines {
		l := &p.Lines[i]

		if l.Kind == parse.Comment {
			continue
		}

		if pc > 0xFF {
			p.flag(l, parse.ErrAddressOverflow)
			pc += ins.Width(l.Mnemonic)

			continue
		}

		l.Addr = pc

		if l.Label != "" {
			if _, ok := p.Labels[l.Label]; ok {
				p.flag(l, parse.ErrDuplicateLabel)
			} else {
				p.Labels[l.Label] = pc

				tr.Printw("label", "name", l.Label, "addr", tlog.FormatNext("%02X"), pc)
			}
		}

		pc += ins.Width(l.Mnemonic)
	}
}

var hexByte = regexp.MustCompile(`^[0-9A-F]{2}$`)

// resolve is pass 2: operand resolution against the completed label table.
// The table is read-only here, which is what makes resolution order
// irrelevant. Literals win over labels: a two-hex-digit token is always a
// byte value, never a label reference.
func (p *Program) resolve(ctx context.Context) {
	tr := tlog.SpanFromContext(ctx).V("pass2")

	for i := range p.Lines {
		l := &p.Lines[i]

		if l.Kind == parse.Comment {
			continue
		}

		switch op := l.Statement.Operand; {
		case op == "":
			p.flag(l, parse.ErrOperandNotFound)
		case hexByte.MatchString(op):
			v, _ := strconv.ParseUint(op, 16, 8)
			l.Val = int(v)
		default:
			addr, ok := p.Labels[op]
			if !ok {
				p.flag(l, parse.ErrOperandResolutionFailed)

				break
			}

			l.Val = addr

			tr.Printw("label ref", "name", op, "addr", tlog.FormatNext("%02X"), addr)
		}
	}
}

func (p *Program) flag(l *Line, e parse.ErrKind) {
	l.Errs = append(l.Errs, e)

	tlog.V("diag").Printw("diagnostic", "err", e, "src", l.Src, "from", loc.Callers(1, 2))
}

// splitLines splits source text into lines, tolerating CRLF and a final
// newline. Interior blank lines are kept: the grammar forbids them and the
// parser flags each one.
func splitLines(text []byte) []string {
	lines := strings.Split(string(text), "\n")

	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	if n := len(lines); n != 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
