package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()

	require.Equal(t, "sysnode", s.ClientName)
	require.Equal(t, "mainnet", s.ChainCfgParams.Name)
	require.Equal(t, uint32(360), s.ChainCfgParams.Interval)
	require.Equal(t, "memory", s.BlockchainStore.Backend)
	require.Equal(t, "data/headers", s.BlockchainStore.Directory)
}

func TestNewSettingsNetworkOverride(t *testing.T) {
	t.Setenv("network", "regtest")

	s := NewSettings()
	require.Equal(t, "regtest", s.ChainCfgParams.Name)
	require.True(t, s.ChainCfgParams.NoDifficultyAdjustment)
}
