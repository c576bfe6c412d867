package badgerstore

import (
	"context"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/stretchr/testify/require"
	"github.com/syscoin-blockchain/sysnode/errors"
	"github.com/syscoin-blockchain/sysnode/model"
	"github.com/syscoin-blockchain/sysnode/ulogger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(ulogger.TestLogger{}, t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func newTestHeader(t *testing.T, nonce uint32) *model.BlockHeader {
	t.Helper()

	bits, err := model.NewNBitFromString("1d00ffff")
	require.NoError(t, err)

	return &model.BlockHeader{
		Version:        1,
		HashPrevBlock:  &chainhash.Hash{},
		HashMerkleRoot: &chainhash.Hash{},
		Timestamp:      1500000000,
		Bits:           *bits,
		Nonce:          nonce,
	}
}

func TestStoreAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	header := newTestHeader(t, 1)
	meta := &model.BlockHeaderMeta{Height: 3, ChainWork: []byte{0x01, 0x00, 0x01, 0x00, 0x01}}

	require.NoError(t, store.StoreBlockHeader(ctx, header, meta))

	got, gotMeta, err := store.GetBlockHeader(ctx, header.Hash())
	require.NoError(t, err)
	require.Equal(t, header, got)
	require.Equal(t, meta, gotMeta)
}

func TestGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.GetBlockHeader(context.Background(), &chainhash.Hash{0x01})
	require.True(t, errors.Is(err, errors.ErrBlockNotFound))
}

func TestBestBlockHeader(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, _, err := store.GetBestBlockHeader(ctx)
	require.True(t, errors.Is(err, errors.ErrBlockNotFound))

	low := newTestHeader(t, 1)
	high := newTestHeader(t, 2)

	require.NoError(t, store.StoreBlockHeader(ctx, low, &model.BlockHeaderMeta{Height: 5}))
	require.NoError(t, store.StoreBlockHeader(ctx, high, &model.BlockHeaderMeta{Height: 10}))

	best, meta, err := store.GetBestBlockHeader(ctx)
	require.NoError(t, err)
	require.Equal(t, high, best)
	require.Equal(t, uint32(10), meta.Height)
}

func TestMetaWithoutChainWork(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	header := newTestHeader(t, 1)
	require.NoError(t, store.StoreBlockHeader(ctx, header, &model.BlockHeaderMeta{Height: 1}))

	_, meta, err := store.GetBlockHeader(ctx, header.Hash())
	require.NoError(t, err)
	require.Equal(t, uint32(1), meta.Height)
	require.Nil(t, meta.ChainWork)
}

func TestStoreNil(t *testing.T) {
	store := newTestStore(t)

	require.Error(t, store.StoreBlockHeader(context.Background(), nil, nil))
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := New(ulogger.TestLogger{}, dir)
	require.NoError(t, err)

	header := newTestHeader(t, 1)
	require.NoError(t, store.StoreBlockHeader(ctx, header, &model.BlockHeaderMeta{Height: 1}))
	require.NoError(t, store.Close())

	store, err = New(ulogger.TestLogger{}, dir)
	require.NoError(t, err)

	defer func() {
		_ = store.Close()
	}()

	got, _, err := store.GetBlockHeader(ctx, header.Hash())
	require.NoError(t, err)
	require.Equal(t, header, got)
}
