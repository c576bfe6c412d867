// Package memory provides an in-process header store. It is the store of
// choice for light clients holding their header chain in memory and for
// embedders that manage persistence themselves.
package memory

import (
	"context"
	"sync"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/syscoin-blockchain/sysnode/errors"
	"github.com/syscoin-blockchain/sysnode/model"
)

type Store struct {
	mu         sync.RWMutex
	headers    map[chainhash.Hash]*model.BlockHeader
	metas      map[chainhash.Hash]*model.BlockHeaderMeta
	bestHeader *model.BlockHeader
	bestMeta   *model.BlockHeaderMeta
}

func New() *Store {
	return &Store{
		headers: map[chainhash.Hash]*model.BlockHeader{},
		metas:   map[chainhash.Hash]*model.BlockHeaderMeta{},
	}
}

func (s *Store) GetBlockHeader(ctx context.Context, blockHash *chainhash.Hash) (*model.BlockHeader, *model.BlockHeaderMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	header, ok := s.headers[*blockHash]
	if !ok {
		return nil, nil, errors.ErrBlockNotFound
	}

	return header, s.metas[*blockHash], nil
}

func (s *Store) StoreBlockHeader(ctx context.Context, header *model.BlockHeader, meta *model.BlockHeaderMeta) error {
	if header == nil || meta == nil {
		return errors.NewInvalidArgumentError("header and meta are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash := header.Hash()
	s.headers[*hash] = header
	s.metas[*hash] = meta

	if s.bestMeta == nil || meta.Height >= s.bestMeta.Height {
		s.bestHeader = header
		s.bestMeta = meta
	}

	return nil
}

func (s *Store) GetBestBlockHeader(ctx context.Context) (*model.BlockHeader, *model.BlockHeaderMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.bestHeader == nil {
		return nil, nil, errors.ErrBlockNotFound
	}

	return s.bestHeader, s.bestMeta, nil
}
