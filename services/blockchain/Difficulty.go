package blockchain

import (
	"context"
	"math/big"
	"time"

	"github.com/ordishs/gocore"
	"github.com/syscoin-blockchain/sysnode/chaincfg"
	"github.com/syscoin-blockchain/sysnode/errors"
	"github.com/syscoin-blockchain/sysnode/model"
	blockchain_store "github.com/syscoin-blockchain/sysnode/stores/blockchain"
	"github.com/syscoin-blockchain/sysnode/ulogger"
)

// Difficulty validates the compact difficulty target claimed by each incoming
// block header against the value the retarget algorithm computes from the
// chain's own history. It never writes to the store and keeps no per-header
// state, so a single instance can serve a whole validation pipeline.
type Difficulty struct {
	logger               ulogger.Logger
	store                blockchain_store.Store
	chainParams          *chaincfg.Params
	powLimitnBits        *model.NBit
	slowWalkLogThreshold time.Duration
}

func NewDifficulty(store blockchain_store.Store, logger ulogger.Logger, params *chaincfg.Params) (*Difficulty, error) {
	if params.Interval == 0 {
		return nil, errors.NewConfigurationError("chain params interval must be at least 1")
	}

	slowWalkLogThresholdMillis, _ := gocore.Config().GetInt("difficulty_slow_walk_log_threshold_ms", 50)

	d := &Difficulty{
		logger:               logger,
		store:                store,
		chainParams:          params,
		powLimitnBits:        model.NewNBitFromUint32(params.PowLimitBits),
		slowWalkLogThreshold: time.Duration(slowWalkLogThresholdMillis) * time.Millisecond,
	}

	return d, nil
}

// IsRetargetBoundary reports whether the block after the one at prevHeight is
// a difficulty transition point.
func (d *Difficulty) IsRetargetBoundary(prevHeight uint32) bool {
	return (prevHeight+1)%d.chainParams.Interval == 0
}

// CheckDifficultyTransition checks that the difficulty target claimed by the
// candidate header is the one the chain requires after prevHeader. Off a
// retarget boundary the target must not change at all. On a boundary the new
// target is recomputed from the timestamps spanning the previous interval and
// must match the candidate's claim exactly.
//
// The store is only read. Every returned error means the candidate must be
// rejected; none is recovered from internally.
func (d *Difficulty) CheckDifficultyTransition(ctx context.Context, prevHeader *model.BlockHeader, prevMeta *model.BlockHeaderMeta, candidate *model.BlockHeader) error {
	// On networks without difficulty adjustment (regtest) every target is
	// acceptable as long as it doesn't change.
	if d.chainParams.NoDifficultyAdjustment {
		if candidate.Bits != prevHeader.Bits {
			return errors.NewDifficultyUnexpectedChangeError("unexpected change in difficulty at height %d: %s vs %s",
				prevMeta.Height, candidate.Bits, prevHeader.Bits)
		}

		return nil
	}

	// Is this supposed to be a difficulty transition point?
	if !d.IsRetargetBoundary(prevMeta.Height) {
		// No ... so check the difficulty didn't actually change.
		if candidate.Bits != prevHeader.Bits {
			return errors.NewDifficultyUnexpectedChangeError("unexpected change in difficulty at height %d: %s vs %s",
				prevMeta.Height, candidate.Bits, prevHeader.Bits)
		}

		return nil
	}

	// We need to find a block far back in the chain. It's OK that this is
	// expensive because retargets only occur once per interval.
	start := time.Now()

	intervalStart, intervalStartMeta, err := d.walkToIntervalStart(ctx, prevHeader)
	if err != nil {
		return err
	}

	if !d.IsRetargetBoundary(intervalStartMeta.Height - 1) {
		return errors.NewDifficultyMalformedWalkError("interval walk landed at height %d which is not a transition point", intervalStartMeta.Height)
	}

	if elapsed := time.Since(start); elapsed > d.slowWalkLogThreshold {
		d.logger.Infof("difficulty transition traversal took %s", elapsed)
	}

	nBits := d.computeTarget(prevHeader, intervalStart, candidate.Bits.Uint32())

	receivedTargetCompact := candidate.Bits.Uint32()
	if nBits != receivedTargetCompact {
		return errors.NewDifficultyMismatchError("network provided difficulty bits do not match what was calculated: %08x vs %08x",
			nBits, receivedTargetCompact)
	}

	return nil
}

// CalcNextWorkRequired returns the compact target the block after prevHeader
// is required to carry. Off a retarget boundary that is prevHeader's own
// target. On a boundary the recomputed target is truncated at prevHeader's
// compact exponent, the best precision available without a candidate claim.
func (d *Difficulty) CalcNextWorkRequired(ctx context.Context, prevHeader *model.BlockHeader, prevMeta *model.BlockHeaderMeta) (*model.NBit, error) {
	if d.chainParams.NoDifficultyAdjustment {
		return d.powLimitnBits, nil
	}

	if !d.IsRetargetBoundary(prevMeta.Height) {
		return &prevHeader.Bits, nil
	}

	intervalStart, intervalStartMeta, err := d.walkToIntervalStart(ctx, prevHeader)
	if err != nil {
		return nil, err
	}

	if !d.IsRetargetBoundary(intervalStartMeta.Height - 1) {
		return nil, errors.NewDifficultyMalformedWalkError("interval walk landed at height %d which is not a transition point", intervalStartMeta.Height)
	}

	nBits := d.computeTarget(prevHeader, intervalStart, prevHeader.Bits.Uint32())

	return model.NewNBitFromSlice(uint32ToBytes(nBits))
}

// walkToIntervalStart follows previous-block hashes back from prevHeader,
// reading exactly interval headers from the store. The returned header is the
// first block of the retarget interval that ends at prevHeader.
func (d *Difficulty) walkToIntervalStart(ctx context.Context, prevHeader *model.BlockHeader) (*model.BlockHeader, *model.BlockHeaderMeta, error) {
	hash := prevHeader.Hash()

	var (
		cursor     *model.BlockHeader
		cursorMeta *model.BlockHeaderMeta
		err        error
	)

	for i := uint32(0); i < d.chainParams.Interval; i++ {
		cursor, cursorMeta, err = d.store.GetBlockHeader(ctx, hash)
		if err != nil {
			// The local store is following a chain that cannot be
			// reconciled to its own retarget history. The caller
			// may resync and revalidate, we don't retry here.
			return nil, nil, errors.NewDifficultyBrokenChainError(
				"difficulty transition point but we did not find a way back to the last transition point. Not found: %s", hash, err)
		}

		hash = cursor.HashPrevBlock
	}

	return cursor, cursorMeta, nil
}

// computeTarget recomputes the compact difficulty target for the block after
// prevHeader from the elapsed time of the interval that started at
// intervalStart. The result is truncated to the precision claimed by the
// candidate's compact exponent before encoding, the calculated value carries
// more precision than a compact field can.
func (d *Difficulty) computeTarget(prevHeader, intervalStart *model.BlockHeader, receivedTargetCompact uint32) uint32 {
	timespan := int64(prevHeader.Timestamp) - int64(intervalStart.Timestamp)

	// Limit the adjustment step.
	targetTimespan := int64(d.chainParams.TargetTimespan / time.Second)
	adjustmentFactor := d.chainParams.RetargetAdjustmentFactor

	if timespan < targetTimespan/adjustmentFactor {
		timespan = targetTimespan / adjustmentFactor
	}

	if timespan > targetTimespan*adjustmentFactor {
		timespan = targetTimespan * adjustmentFactor
	}

	newTarget := CompactToBig(prevHeader.Bits.Uint32())
	newTarget.Mul(newTarget, big.NewInt(timespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	if newTarget.Cmp(d.chainParams.PowLimit) > 0 {
		d.logger.Infof("difficulty hit proof of work limit: %s", newTarget.Text(16))
		newTarget.Set(d.chainParams.PowLimit)
	}

	// The calculated difficulty is to a higher precision than received, so
	// reduce it to the precision of the received compact exponent.
	accuracyBytes := int32(receivedTargetCompact>>24) - 3

	mask := big.NewInt(0xFFFFFF)
	if accuracyBytes >= 0 {
		mask.Lsh(mask, uint(accuracyBytes)*8)
	} else {
		mask.Rsh(mask, uint(-accuracyBytes)*8)
	}

	newTarget.And(newTarget, mask)

	return BigToCompact(newTarget)
}
