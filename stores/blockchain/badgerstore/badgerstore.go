// Package badgerstore provides a persistent header store backed by badger.
package badgerstore

import (
	"context"
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/ordishs/go-utils"
	"github.com/syscoin-blockchain/sysnode/errors"
	"github.com/syscoin-blockchain/sysnode/model"
	"github.com/syscoin-blockchain/sysnode/ulogger"
)

const (
	headerKeyPrefix = "header_"
	metaKeyPrefix   = "meta_"
	bestHeaderKey   = "best_header"
)

type Store struct {
	db     *badger.DB
	logger ulogger.Logger
}

func New(logger ulogger.Logger, dir string) (*Store, error) {
	badgerOpts := badger.DefaultOptions(dir).
		WithLogger(newBadgerLogger(logger)).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, errors.NewStorageError("error opening badger store at %s", dir, err)
	}

	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetBlockHeader(ctx context.Context, blockHash *chainhash.Hash) (*model.BlockHeader, *model.BlockHeaderMeta, error) {
	var (
		header *model.BlockHeader
		meta   *model.BlockHeaderMeta
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(headerKey(blockHash))
		if err != nil {
			return err
		}

		if err = item.Value(func(v []byte) error {
			header, err = model.NewBlockHeaderFromBytes(v)
			return err
		}); err != nil {
			return err
		}

		item, err = txn.Get(metaKey(blockHash))
		if err != nil {
			return err
		}

		return item.Value(func(v []byte) error {
			meta, err = decodeMeta(v)
			return err
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil, errors.ErrBlockNotFound
		}

		return nil, nil, errors.NewStorageError("error reading block header %s", blockHash, err)
	}

	return header, meta, nil
}

func (s *Store) StoreBlockHeader(ctx context.Context, header *model.BlockHeader, meta *model.BlockHeaderMeta) error {
	if header == nil || meta == nil {
		return errors.NewInvalidArgumentError("header and meta are required")
	}

	hash := header.Hash()

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(headerKey(hash), header.Bytes()); err != nil {
			return err
		}

		if err := txn.Set(metaKey(hash), encodeMeta(meta)); err != nil {
			return err
		}

		bestHash, err := s.bestHash(txn)
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if bestHash == nil {
			return txn.Set([]byte(bestHeaderKey), hash.CloneBytes())
		}

		bestMetaItem, err := txn.Get(metaKey(bestHash))
		if err != nil {
			return err
		}

		var bestMeta *model.BlockHeaderMeta

		if err = bestMetaItem.Value(func(v []byte) error {
			bestMeta, err = decodeMeta(v)
			return err
		}); err != nil {
			return err
		}

		if meta.Height >= bestMeta.Height {
			return txn.Set([]byte(bestHeaderKey), hash.CloneBytes())
		}

		return nil
	})
	if err != nil {
		return errors.NewStorageError("error storing block header %s", hash, err)
	}

	s.logger.Debugf("stored block header %s at height %d", utils.ReverseAndHexEncodeSlice(hash.CloneBytes()), meta.Height)

	return nil
}

func (s *Store) GetBestBlockHeader(ctx context.Context) (*model.BlockHeader, *model.BlockHeaderMeta, error) {
	var bestHash *chainhash.Hash

	err := s.db.View(func(txn *badger.Txn) error {
		hash, err := s.bestHash(txn)
		if err != nil {
			return err
		}

		bestHash = hash

		return nil
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil, errors.ErrBlockNotFound
		}

		return nil, nil, errors.NewStorageError("error reading best block header", err)
	}

	return s.GetBlockHeader(ctx, bestHash)
}

func (s *Store) bestHash(txn *badger.Txn) (*chainhash.Hash, error) {
	item, err := txn.Get([]byte(bestHeaderKey))
	if err != nil {
		return nil, err
	}

	var hash *chainhash.Hash

	if err = item.Value(func(v []byte) error {
		hash, err = chainhash.NewHash(v)
		return err
	}); err != nil {
		return nil, err
	}

	return hash, nil
}

func headerKey(hash *chainhash.Hash) []byte {
	return append([]byte(headerKeyPrefix), hash.CloneBytes()...)
}

func metaKey(hash *chainhash.Hash) []byte {
	return append([]byte(metaKeyPrefix), hash.CloneBytes()...)
}

func encodeMeta(meta *model.BlockHeaderMeta) []byte {
	b := make([]byte, 4, 4+len(meta.ChainWork))
	binary.LittleEndian.PutUint32(b, meta.Height)

	return append(b, meta.ChainWork...)
}

func decodeMeta(b []byte) (*model.BlockHeaderMeta, error) {
	if len(b) < 4 {
		return nil, errors.NewStorageError("block header meta should be at least 4 bytes long, got %d", len(b))
	}

	meta := &model.BlockHeaderMeta{
		Height: binary.LittleEndian.Uint32(b[:4]),
	}

	if len(b) > 4 {
		meta.ChainWork = make([]byte, len(b)-4)
		copy(meta.ChainWork, b[4:])
	}

	return meta, nil
}
