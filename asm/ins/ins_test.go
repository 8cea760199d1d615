package ins

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodes(t *testing.T) {
	for mnemonic, want := range map[string]byte{
		"LOD": 0x01,
		"STO": 0x02,
		"OUT": 0x04,
		"ADD": 0x08,
		"ADC": 0x10,
		"JNZ": 0x20,
		"JMP": 0x40,
		"HLT": 0x80,
	} {
		op, ok := Opcode(mnemonic)

		assert.True(t, ok, "%v", mnemonic)
		assert.Equal(t, want, op, "%v", mnemonic)
	}
}

func TestDataDirective(t *testing.T) {
	_, ok := Opcode(Data)

	assert.False(t, ok)
	assert.True(t, Known(Data))
	assert.Equal(t, 1, Width(Data))
}

func TestUnknown(t *testing.T) {
	_, ok := Opcode("FOO")

	assert.False(t, ok)
	assert.False(t, Known("FOO"))
	assert.Equal(t, 2, Width("FOO"))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 2, Width("LOD"))
	assert.Equal(t, 2, Width("HLT"))
	assert.Equal(t, 1, Width("DB"))
}
