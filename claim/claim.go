package claim

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/bnb-chain/ens-claim-input/cache"
	"github.com/bnb-chain/ens-claim-input/types"
)

// PadClaims lays refs out over capacity slots. Slots past the last claim repeat
// it, since the circuit reads every slot. Extra refs beyond capacity are dropped.
func PadClaims(refs []types.ClaimReference, capacity int) (blockNumbers, txIdxs, logIdxs []uint64) {
	blockNumbers = make([]uint64, capacity)
	txIdxs = make([]uint64, capacity)
	logIdxs = make([]uint64, capacity)
	if len(refs) == 0 {
		return
	}
	for i := 0; i < capacity; i++ {
		ref := refs[len(refs)-1]
		if i < len(refs) {
			ref = refs[i]
		}
		blockNumbers[i] = ref.BlockNumber
		txIdxs[i] = ref.TxIdx
		logIdxs[i] = ref.LogIdx
	}
	return
}

// NewBundle builds the circuit input for refs padded to capacity.
func NewBundle(refs []types.ClaimReference, capacity int) *types.ReferenceBundle {
	blockNumbers, txIdxs, logIdxs := PadClaims(refs, capacity)
	numClaims := len(refs)
	if numClaims > capacity {
		numClaims = capacity
	}
	return &types.ReferenceBundle{
		BlockNumbers: blockNumbers,
		TxIdxs:       txIdxs,
		LogIdxs:      logIdxs,
		NumClaims:    numClaims,
	}
}

// ClaimID packs a reference into one word: block<<128 | tx<<64 | log.
func ClaimID(ref types.ClaimReference) common.Hash {
	id := new(uint256.Int).SetUint64(ref.BlockNumber)
	id.Lsh(id, 64)
	id.Or(id, new(uint256.Int).SetUint64(ref.TxIdx))
	id.Lsh(id, 64)
	id.Or(id, new(uint256.Int).SetUint64(ref.LogIdx))
	return common.Hash(id.Bytes32())
}

// IDs returns the claim ids of the first NumClaims slots of bundle.
func IDs(bundle *types.ReferenceBundle, c cache.Cache) []common.Hash {
	ids := make([]common.Hash, 0, bundle.NumClaims)
	for i := 0; i < bundle.NumClaims; i++ {
		ref := bundle.Claim(i)
		id, ok := c.Get(ref.Key())
		if !ok {
			id = ClaimID(ref)
			c.Set(ref.Key(), id)
		}
		ids = append(ids, id)
	}
	return ids
}
