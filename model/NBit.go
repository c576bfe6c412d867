package model

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/libsv/go-bt/v2"
	"github.com/syscoin-blockchain/sysnode/errors"
)

// NBit is the compact difficulty target field of a block header, held in the
// little-endian byte order it has on the wire. The display form (String) is
// big-endian hex, as rendered by block explorers.
type NBit [4]byte

// NewNBitFromSlice creates an NBit from 4 little-endian bytes.
func NewNBitFromSlice(b []byte) (*NBit, error) {
	if len(b) != 4 {
		return nil, errors.NewInvalidArgumentError("nBit should be 4 bytes long, got %d", len(b))
	}

	var nBit NBit

	copy(nBit[:], b)

	return &nBit, nil
}

// NewNBitFromString creates an NBit from its big-endian hex representation,
// e.g. "1e0fffff".
func NewNBitFromString(s string) (*NBit, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding nBit hex string", err)
	}

	if len(b) != 4 {
		return nil, errors.NewInvalidArgumentError("nBit should be 4 bytes long, got %d", len(b))
	}

	return NewNBitFromSlice(bt.ReverseBytes(b))
}

// NewNBitFromUint32 creates an NBit from the numeric compact value, e.g.
// 0x1e0fffff.
func NewNBitFromUint32(compact uint32) *NBit {
	var nBit NBit

	binary.LittleEndian.PutUint32(nBit[:], compact)

	return &nBit
}

// CloneBytes returns a copy of the little-endian bytes.
func (n *NBit) CloneBytes() []byte {
	b := make([]byte, 4)
	copy(b, n[:])

	return b
}

// Uint32 returns the numeric compact value.
func (n *NBit) Uint32() uint32 {
	return binary.LittleEndian.Uint32(n[:])
}

func (n NBit) String() string {
	return hex.EncodeToString(bt.ReverseBytes(n.CloneBytes()))
}
