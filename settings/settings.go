package settings

import (
	"github.com/syscoin-blockchain/sysnode/chaincfg"
)

func NewSettings() *Settings {
	params, err := chaincfg.GetChainParams(getString("network", "mainnet"))
	if err != nil {
		panic(err)
	}

	dataFolder := getString("dataFolder", "data")

	return &Settings{
		ClientName:     getString("clientName", "sysnode"),
		DataFolder:     dataFolder,
		LoggerType:     getString("logger", "zerolog"),
		LogLevel:       getString("logLevel", "INFO"),
		ChainCfgParams: params,
		BlockchainStore: BlockchainStoreSettings{
			Backend:   getString("blockchainstore", "memory"),
			Directory: getString("blockchainstore_dir", dataFolder+"/headers"),
		},
	}
}
