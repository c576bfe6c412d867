package blockchain

import (
	"context"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/syscoin-blockchain/sysnode/model"
)

// Store is the header store the difficulty validator walks. Lookups are keyed
// by block hash and headers are immutable once stored, so implementations may
// serve reads concurrently with inserts.
type Store interface {
	// GetBlockHeader returns the header with the given hash and the chain
	// position it was stored at. A missing header is
	// errors.ErrBlockNotFound.
	GetBlockHeader(ctx context.Context, blockHash *chainhash.Hash) (*model.BlockHeader, *model.BlockHeaderMeta, error)

	// StoreBlockHeader stores a header together with its chain position.
	StoreBlockHeader(ctx context.Context, header *model.BlockHeader, meta *model.BlockHeaderMeta) error

	// GetBestBlockHeader returns the header at the tip of the most-work
	// chain known to the store.
	GetBestBlockHeader(ctx context.Context) (*model.BlockHeader, *model.BlockHeaderMeta, error)
}
