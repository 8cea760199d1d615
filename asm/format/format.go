// Package format renders a completed Program. All renderers are pure
// functions appending to a caller supplied buffer; they never change the
// program.
package format

import (
	"sort"

	"github.com/nikandfor/hacked/hfmt"

	"github.com/mucpu/muasm/asm"
	"github.com/mucpu/muasm/asm/ins"
	"github.com/mucpu/muasm/asm/parse"
)

// Listing renders one record per source line: address, opcode byte and
// operand byte as two hex digits or two blanks each, then any diagnostics,
// then the source text.
func Listing(b []byte, p *asm.Program) []byte {
	for _, l := range p.Lines {
		b = appHex(b, l.Addr)
		b = append(b, ' ')
		b = appHex(b, l.Opcode)
		b = append(b, ' ')
		b = appHex(b, l.Val)
		b = append(b, ' ')

		for _, e := range l.Errs {
			b = hfmt.Appendf(b, "%v ERROR: ", e)
		}

		b = append(b, l.Src...)
		b = append(b, '\n')
	}

	return b
}

// MachineCode renders the flat byte stream, one two-hex-digit token per
// line: per non-comment statement the opcode byte then the operand byte.
// DB contributes only its data byte; bytes a diagnostic left unresolved are
// omitted, the stream carries no placeholders.
func MachineCode(b []byte, p *asm.Program) []byte {
	for _, l := range p.Lines {
		if l.Kind == parse.Comment {
			continue
		}

		if l.Mnemonic != ins.Data && l.Opcode >= 0 {
			b = hfmt.Appendf(b, "%02X\n", l.Opcode)
		}

		if l.Val >= 0 {
			b = hfmt.Appendf(b, "%02X\n", l.Val)
		}
	}

	return b
}

// Labels renders the pass 1 label table, sorted by name.
func Labels(b []byte, p *asm.Program) []byte {
	names := make([]string, 0, len(p.Labels))

	for name := range p.Labels {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		b = hfmt.Appendf(b, "%s=%02X\n", name, p.Labels[name])
	}

	return b
}

func appHex(b []byte, v int) []byte {
	if v < 0 {
		return append(b, "  "...)
	}

	return hfmt.Appendf(b, "%02X", v)
}
