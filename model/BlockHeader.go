package model

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/libsv/go-bc"
	"github.com/libsv/go-bk/crypto"
	"github.com/libsv/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/syscoin-blockchain/sysnode/errors"
)

type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block header in the blockchain.
	HashPrevBlock *chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	HashMerkleRoot *chainhash.Hash

	// Time the block was created in unix time.
	Timestamp uint32

	// Difficulty target for the block, in compact form.
	Bits NBit

	// Nonce used to generate the block.
	Nonce uint32
}

func NewBlockHeaderFromBytes(headerBytes []byte) (*BlockHeader, error) {
	if len(headerBytes) != 80 {
		return nil, errors.NewInvalidArgumentError("block header should be 80 bytes long, got %d", len(headerBytes))
	}

	hashPrevBlock, err := chainhash.NewHash(headerBytes[4:36])
	if err != nil {
		return nil, errors.NewProcessingError("error creating previous block hash from bytes", err)
	}

	hashMerkleRoot, err := chainhash.NewHash(headerBytes[36:68])
	if err != nil {
		return nil, errors.NewProcessingError("error creating merkle root hash from bytes", err)
	}

	bits, err := NewNBitFromSlice(headerBytes[72:76])
	if err != nil {
		return nil, err
	}

	return &BlockHeader{
		Version:        binary.LittleEndian.Uint32(headerBytes[:4]),
		HashPrevBlock:  hashPrevBlock,
		HashMerkleRoot: hashMerkleRoot,
		Timestamp:      binary.LittleEndian.Uint32(headerBytes[68:72]),
		Bits:           *bits,
		Nonce:          binary.LittleEndian.Uint32(headerBytes[76:]),
	}, nil
}

func NewBlockHeaderFromString(headerHex string) (*BlockHeader, error) {
	headerBytes, err := hex.DecodeString(headerHex)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding hex string to bytes", err)
	}

	return NewBlockHeaderFromBytes(headerBytes)
}

func (bh *BlockHeader) Hash() *chainhash.Hash {
	hash := chainhash.DoubleHashH(bh.Bytes())
	return &hash
}

// Valid reports whether the header's proof of work digest is below the target
// its own Bits field claims. It does not check that the claimed target is the
// one the chain requires, that is the difficulty validator's job.
func (bh *BlockHeader) Valid() bool {
	target, err := bc.ExpandTargetFromAsInt(bh.Bits.String())
	if err != nil {
		return false
	}

	digest := bt.ReverseBytes(crypto.Sha256d(bh.Bytes()))

	var bn = big.NewInt(0)
	bn.SetBytes(digest)

	return bn.Cmp(target) < 0
}

func (bh *BlockHeader) Bytes() []byte {
	var blockHeaderBytes []byte
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Version)...)
	blockHeaderBytes = append(blockHeaderBytes, bh.HashPrevBlock.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bh.HashMerkleRoot.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Timestamp)...)
	blockHeaderBytes = append(blockHeaderBytes, bh.Bits.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Nonce)...)

	return blockHeaderBytes
}

func (bh *BlockHeader) String() string {
	return fmt.Sprintf("%s (prev: %s, time: %d, bits: %s)", bh.Hash(), bh.HashPrevBlock, bh.Timestamp, bh.Bits)
}
