package blockchain

import (
	"context"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/stretchr/testify/require"
	"github.com/syscoin-blockchain/sysnode/errors"
	"github.com/syscoin-blockchain/sysnode/model"
	"github.com/syscoin-blockchain/sysnode/settings"
	"github.com/syscoin-blockchain/sysnode/ulogger"
)

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

func TestMockStore(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore()

	_, _, err := store.GetBestBlockHeader(ctx)
	require.True(t, errors.Is(err, errors.ErrBlockNotFound))

	header := newTestHeader(t, 1)
	require.NoError(t, store.StoreBlockHeader(ctx, header, &model.BlockHeaderMeta{Height: 1}))

	got, meta, err := store.GetBlockHeader(ctx, header.Hash())
	require.NoError(t, err)
	require.Equal(t, header, got)
	require.Equal(t, uint32(1), meta.Height)

	best, bestMeta, err := store.GetBestBlockHeader(ctx)
	require.NoError(t, err)
	require.Equal(t, header, best)
	require.Equal(t, uint32(1), bestMeta.Height)

	_, _, err = store.GetBlockHeader(ctx, &chainhash.Hash{0x01})
	require.True(t, errors.Is(err, errors.ErrBlockNotFound))
}

func TestNewStore(t *testing.T) {
	logger := ulogger.TestLogger{}

	t.Run("memory", func(t *testing.T) {
		store, err := NewStore(logger, &settings.Settings{
			BlockchainStore: settings.BlockchainStoreSettings{Backend: "memory"},
		})
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("badger", func(t *testing.T) {
		store, err := NewStore(logger, &settings.Settings{
			BlockchainStore: settings.BlockchainStoreSettings{
				Backend:   "badger",
				Directory: t.TempDir(),
			},
		})
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := NewStore(logger, &settings.Settings{
			BlockchainStore: settings.BlockchainStoreSettings{Backend: "aerospike"},
		})
		require.Error(t, err)
	})
}
