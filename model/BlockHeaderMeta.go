package model

// BlockHeaderMeta holds the chain position a header acquired when it was
// accepted into the store. The store owns these values; validators only read
// them.
type BlockHeaderMeta struct {
	Height    uint32 `json:"height"`     // Height of the block in the blockchain.
	ChainWork []byte `json:"chain_work"` // Cumulative work up to and including this block, big-endian.
}
