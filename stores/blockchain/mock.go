package blockchain

import (
	"context"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/syscoin-blockchain/sysnode/errors"
	"github.com/syscoin-blockchain/sysnode/model"
)

// MockStore is a test double with its maps exposed so tests can seed chains
// and break links directly. Not safe for concurrent use.
type MockStore struct {
	Headers    map[chainhash.Hash]*model.BlockHeader
	Metas      map[chainhash.Hash]*model.BlockHeaderMeta
	BestHeader *model.BlockHeader
	BestMeta   *model.BlockHeaderMeta
}

func NewMockStore() *MockStore {
	return &MockStore{
		Headers: map[chainhash.Hash]*model.BlockHeader{},
		Metas:   map[chainhash.Hash]*model.BlockHeaderMeta{},
	}
}

func (m *MockStore) GetBlockHeader(ctx context.Context, blockHash *chainhash.Hash) (*model.BlockHeader, *model.BlockHeaderMeta, error) {
	header, ok := m.Headers[*blockHash]
	if !ok {
		return nil, nil, errors.ErrBlockNotFound
	}

	return header, m.Metas[*blockHash], nil
}

func (m *MockStore) StoreBlockHeader(ctx context.Context, header *model.BlockHeader, meta *model.BlockHeaderMeta) error {
	m.Headers[*header.Hash()] = header
	m.Metas[*header.Hash()] = meta

	if m.BestMeta == nil || meta.Height >= m.BestMeta.Height {
		m.BestHeader = header
		m.BestMeta = meta
	}

	return nil
}

func (m *MockStore) GetBestBlockHeader(ctx context.Context) (*model.BlockHeader, *model.BlockHeaderMeta, error) {
	if m.BestHeader == nil {
		return nil, nil, errors.ErrBlockNotFound
	}

	return m.BestHeader, m.BestMeta, nil
}
