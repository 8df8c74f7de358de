package isla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBinaryLeaf(t *testing.T) {
	t.Parallel()

	got, err := EncodeBinary(NewBinLeaf([]byte(";)")))
	require.NoError(t, err)
	want := append(binHeader(), 0x02, 0x00, 0x00, 0x00, ';', ')')
	assert.Equal(t, want, got)
}

func TestEncodeBinaryTooLong(t *testing.T) {
	t.Parallel()

	huge := make([]byte, maxLen28+1)
	_, err := EncodeBinary(NewBinLeaf(huge))
	var bad *ErrEncodeTooLong
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "leaf", bad.What)
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	v := NewBinMap(map[string]BinValue{
		"name":  NewBinLeaf([]byte("beatrice")),
		"bytes": NewBinLeaf([]byte{0x00, 0x01, 0xFF}),
		"empty": NewBinLeaf(nil),
		"tags":  NewBinLeafList([]byte("a"), []byte("b")),
	})

	encoded, err := EncodeBinary(v)
	require.NoError(t, err)

	decoded, err := DecodeBinary(encoded)
	require.NoError(t, err)
	assert.True(t, v.Equal(decoded), "round trip mismatch: got %v, want %v", decoded, v)
}

func TestBinaryNestedGrid(t *testing.T) {
	t.Parallel()

	grid := NewBinList(
		NewBinLeafList([]byte{0x01}, []byte{0x02}, []byte{0x03}),
		NewBinLeafList([]byte{0x04}, []byte{0x05}, []byte{0x06}),
	)
	v := NewBinMap(map[string]BinValue{"grid": grid})

	encoded, err := EncodeBinary(v)
	require.NoError(t, err)

	decoded, err := DecodeBinary(encoded)
	require.NoError(t, err)

	row, err := decoded.Field([]byte("grid"))
	require.NoError(t, err)
	second, err := row.Elem(1)
	require.NoError(t, err)
	cell, err := second.Elem(2)
	require.NoError(t, err)
	leaf, err := cell.AsLeaf()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06}, leaf)
}
