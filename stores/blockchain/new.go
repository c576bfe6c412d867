package blockchain

import (
	"github.com/syscoin-blockchain/sysnode/errors"
	"github.com/syscoin-blockchain/sysnode/settings"
	"github.com/syscoin-blockchain/sysnode/stores/blockchain/badgerstore"
	"github.com/syscoin-blockchain/sysnode/stores/blockchain/memory"
	"github.com/syscoin-blockchain/sysnode/ulogger"
)

func NewStore(logger ulogger.Logger, tSettings *settings.Settings) (Store, error) {
	switch tSettings.BlockchainStore.Backend {
	case "memory":
		return memory.New(), nil
	case "badger":
		return badgerstore.New(logger, tSettings.BlockchainStore.Directory)
	}

	return nil, errors.NewStorageError("unknown blockchain store backend: %s", tSettings.BlockchainStore.Backend)
}
