// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// SyscoinNet represents which Syscoin network a message belongs to. The value
// is the four magic bytes that prefix every message on the wire.
type SyscoinNet uint32

// Constants used to indicate the network.
const (
	// MainNet represents the main, production network where people trade
	// things.
	MainNet SyscoinNet = 0xffcae2ce

	// TestNet represents the test network.
	TestNet SyscoinNet = 0xcee2cafe

	// RegressionNet represents the regression test network.
	RegressionNet SyscoinNet = 0xdab5bffa
)

// These constants are the difficulty retarget parameters shared by every
// Syscoin network. The interval is derived from the timespan and spacing, the
// chain retargets once per interval.
const (
	// SyscoinTargetTimespan is the desired elapsed time of one full retarget
	// interval: 6 hours.
	SyscoinTargetTimespan = 6 * time.Hour

	// SyscoinTargetSpacing is the desired time between blocks: 1 minute.
	SyscoinTargetSpacing = time.Minute

	// SyscoinInterval is the number of blocks between retargets.
	SyscoinInterval = uint32(SyscoinTargetTimespan / SyscoinTargetSpacing)
)

// Merge-mining constants. Tagging only, auxiliary proof-of-work validation is
// performed by the surrounding chain-validation framework.
const (
	// AuxPowChainID is the chain identity Syscoin uses inside merged-mining
	// block versions.
	AuxPowChainID = 0x1000

	// BlockVersionFlagAuxPow is the block version bit that marks a block as
	// carrying an auxiliary proof of work.
	BlockVersionFlagAuxPow = 0x00000100
)

// Currency codes for the Syscoin denominations.
const (
	// CodeSyscoin is the currency code for base 1 Syscoin.
	CodeSyscoin = "SYSCOIN"

	// CodeMSyscoin is the currency code for base 1/1,000 Syscoin.
	CodeMSyscoin = "mSYSCOIN"

	// CodeKoinu is the currency code for base 1/100,000,000 Syscoin.
	CodeKoinu = "Koinu"

	// KoinuPerSyscoin is the number of koinu in one syscoin.
	KoinuPerSyscoin = 100_000_000
)

// Block subsidy values in koinu. These mirror the reference client's schedule
// and are configuration data, not consensus logic owned by this library.
const (
	baseSubsidy   = 500_000 * KoinuPerSyscoin
	stableSubsidy = 10_000 * KoinuPerSyscoin
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a Syscoin block can
	// have for the main network.  It is the value 0x0fffff * 2^216.
	mainPowLimit = new(big.Int).Lsh(big.NewInt(0x0fffff), 216)

	// testNetPowLimit is the highest proof of work value a Syscoin block
	// can have for the test network.
	testNetPowLimit = new(big.Int).Lsh(big.NewInt(0x0fffff), 216)

	// regressionPowLimit is the highest proof of work value a Syscoin block
	// can have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks. Checkpoint data is carried here for
// callers, nothing in this library consumes it during difficulty validation.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// Params defines a Syscoin network by its parameters.  These parameters may be
// used by Syscoin applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net SyscoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256, i.e. the easiest allowed target.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// Interval is the number of blocks between difficulty retargets,
	// TargetTimespan / TargetTimePerBlock.
	Interval uint32

	// RetargetAdjustmentFactor is the adjustment factor used to limit
	// the minimum and maximum amount of adjustment that can occur between
	// difficulty retargets.
	RetargetAdjustmentFactor int64

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// NoDifficultyAdjustment defines whether the network should skip the
	// normal difficulty adjustment and keep the current difficulty.
	NoDifficultyAdjustment bool

	// GenerateSupported specifies whether or not CPU mining is allowed.
	GenerateSupported bool

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// HasMaxMoney indicates whether the network enforces a money supply
	// ceiling. Syscoin's reference client does not.
	HasMaxMoney bool

	// MaxMoney is the money supply ceiling in koinu when HasMaxMoney is
	// set. The value is a placeholder carried from the reference client.
	MaxMoney uint64

	// UriScheme is the scheme used in payment URIs for this network.
	UriScheme string
}

// MainNetParams defines the network parameters for the main Syscoin network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         MainNet,
	DefaultPort: "8369",

	// Chain parameters
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	TargetTimespan:           SyscoinTargetTimespan,
	TargetTimePerBlock:       SyscoinTargetSpacing,
	Interval:                 SyscoinInterval,
	RetargetAdjustmentFactor: 4, // 25% less, 400% more
	ReduceMinDifficulty:      false,
	NoDifficultyAdjustment:   false,
	GenerateSupported:        false,

	// Checkpoints ordered from oldest to newest.
	Checkpoints: nil,

	HasMaxMoney: false,
	MaxMoney:    21_000_000 * KoinuPerSyscoin,

	UriScheme: "syscoin",
}

// TestNetParams defines the network parameters for the Syscoin test network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         TestNet,
	DefaultPort: "18369",

	// Chain parameters
	PowLimit:     testNetPowLimit,
	PowLimitBits: 0x1e0fffff,

	TargetTimespan:           SyscoinTargetTimespan,
	TargetTimePerBlock:       SyscoinTargetSpacing,
	Interval:                 SyscoinInterval,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      true,
	NoDifficultyAdjustment:   false,
	GenerateSupported:        true,

	Checkpoints: nil,

	HasMaxMoney: false,
	MaxMoney:    21_000_000 * KoinuPerSyscoin,

	UriScheme: "syscoin",
}

// RegressionNetParams defines the network parameters for the regression test
// network. Difficulty is never adjusted so blocks can be generated on demand.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         RegressionNet,
	DefaultPort: "18444",

	// Chain parameters
	PowLimit:     regressionPowLimit,
	PowLimitBits: 0x207fffff,

	TargetTimespan:           SyscoinTargetTimespan,
	TargetTimePerBlock:       SyscoinTargetSpacing,
	Interval:                 SyscoinInterval,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      true,
	NoDifficultyAdjustment:   true,
	GenerateSupported:        true,

	Checkpoints: nil,

	HasMaxMoney: false,
	MaxMoney:    21_000_000 * KoinuPerSyscoin,

	UriScheme: "syscoin",
}

// IsAuxPowBlockVersion returns whether the given block version carries an
// auxiliary proof of work.
func (p *Params) IsAuxPowBlockVersion(version uint32) bool {
	return version&BlockVersionFlagAuxPow > 0
}

// ChainID returns the merged-mining chain identity for this network.
func (p *Params) ChainID() int {
	return AuxPowChainID
}

// BlockSubsidy returns the mining subsidy in koinu for a block at the given
// height. The reference client pays the stable subsidy at every height.
func (p *Params) BlockSubsidy(height uint32) uint64 {
	_ = height
	return stableSubsidy
}

var (
	// ErrDuplicateNet describes an error where the parameters for a Syscoin
	// network could not be set due to the network already being a standard
	// network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate Syscoin network")

	registeredNets = make(map[SyscoinNet]struct{})
)

// Register registers the network parameters for a Syscoin network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}

	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func GetChainParams(network string) (*Params, error) {
	switch network {
	case "mainnet":
		return &MainNetParams, nil
	case "testnet":
		return &TestNetParams, nil
	case "regtest":
		return &RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %s", network)
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}
