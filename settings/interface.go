package settings

import (
	"github.com/syscoin-blockchain/sysnode/chaincfg"
)

type BlockchainStoreSettings struct {
	// Backend selects the header store implementation: "memory" or "badger".
	Backend string

	// Directory is the on-disk location used by persistent backends.
	Directory string
}

type Settings struct {
	ClientName     string
	DataFolder     string
	LoggerType     string
	LogLevel       string
	ChainCfgParams *chaincfg.Params

	BlockchainStore BlockchainStoreSettings
}
