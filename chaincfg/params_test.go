package chaincfg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyscoinRetargetConstants(t *testing.T) {
	require.Equal(t, uint32(360), SyscoinInterval)
	require.Equal(t, float64(21600), SyscoinTargetTimespan.Seconds())
	require.Equal(t, float64(60), SyscoinTargetSpacing.Seconds())
}

func TestGetChainParams(t *testing.T) {
	for _, network := range []string{"mainnet", "testnet", "regtest"} {
		params, err := GetChainParams(network)
		require.NoError(t, err)
		require.Equal(t, network, params.Name)
		require.Equal(t, SyscoinInterval, params.Interval)
	}

	_, err := GetChainParams("stn")
	require.Error(t, err)
}

func TestPowLimitMatchesCompactBits(t *testing.T) {
	// mainnet and testnet pow limits are exactly representable in compact
	// form, so the expanded and compact fields must agree
	expected := new(big.Int).Lsh(big.NewInt(0x0fffff), 216)

	require.Zero(t, MainNetParams.PowLimit.Cmp(expected))
	require.Equal(t, uint32(0x1e0fffff), MainNetParams.PowLimitBits)
	require.Zero(t, TestNetParams.PowLimit.Cmp(expected))

	// the regression limit 2^255-1 is not exactly representable, its compact
	// form truncates to the top three bytes
	require.Equal(t, uint32(0x207fffff), RegressionNetParams.PowLimitBits)
	require.Equal(t, 1, RegressionNetParams.PowLimit.Cmp(expected))
}

func TestIsAuxPowBlockVersion(t *testing.T) {
	require.True(t, MainNetParams.IsAuxPowBlockVersion(0x100))
	require.True(t, MainNetParams.IsAuxPowBlockVersion(0x101))
	require.False(t, MainNetParams.IsAuxPowBlockVersion(0x1))
	require.False(t, MainNetParams.IsAuxPowBlockVersion(0))
}

func TestBlockSubsidy(t *testing.T) {
	// the reference client pays a flat subsidy at every height
	require.Equal(t, uint64(10_000*KoinuPerSyscoin), MainNetParams.BlockSubsidy(0))
	require.Equal(t, uint64(10_000*KoinuPerSyscoin), MainNetParams.BlockSubsidy(1_000_000))
}

func TestRegisterDuplicate(t *testing.T) {
	// default networks are registered on init
	require.ErrorIs(t, Register(&MainNetParams), ErrDuplicateNet)
}
