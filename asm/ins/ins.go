// Package ins defines the MUCPU 2017 instruction set.
//
// The machine has a single general purpose register (A) and a single
// addressing mode, so every instruction is a mnemonic followed by one byte
// operand. Each instruction occupies two addressable units: the opcode byte
// and the operand byte. The DB directive places one literal data byte and
// has no opcode.
package ins

// Data is the data byte directive. It is a known mnemonic but not an
// instruction: it emits only its operand byte.
const Data = "DB"

var opcodes = map[string]byte{
	"LOD": 0x01,
	"STO": 0x02,
	"OUT": 0x04,
	"ADD": 0x08,
	"ADC": 0x10,
	"JNZ": 0x20,
	"JMP": 0x40,
	"HLT": 0x80,
}

// Opcode returns the opcode byte of a mnemonic.
// DB is known but carries no opcode byte.
func Opcode(mnemonic string) (byte, bool) {
	op, ok := opcodes[mnemonic]
	return op, ok
}

// Known reports whether the mnemonic is part of the instruction set.
func Known(mnemonic string) bool {
	if mnemonic == Data {
		return true
	}

	_, ok := opcodes[mnemonic]

	return ok
}

// Width returns the number of addressable units a statement with the given
// mnemonic occupies: 1 for DB, 2 for everything else. Unrecognized mnemonics
// still occupy an ordinary instruction slot.
func Width(mnemonic string) int {
	if mnemonic == Data {
		return 1
	}

	return 2
}
