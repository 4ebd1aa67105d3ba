package types

// ClaimReference locates one event log on chain.
type ClaimReference struct {
	BlockNumber uint64
	TxIdx       uint64
	LogIdx      uint64
}

func (r ClaimReference) Key() string {
	return GetClaimKey(r.BlockNumber, r.TxIdx, r.LogIdx)
}

// ReferenceBundle is the circuit input. Field order is the serialized order.
type ReferenceBundle struct {
	BlockNumbers []uint64 `json:"block_numbers"`
	TxIdxs       []uint64 `json:"tx_idxs"`
	LogIdxs      []uint64 `json:"log_idxs"`
	NumClaims    int      `json:"num_claims"`
}

// Claim returns the reference held in slot i.
func (b *ReferenceBundle) Claim(i int) ClaimReference {
	return ClaimReference{
		BlockNumber: b.BlockNumbers[i],
		TxIdx:       b.TxIdxs[i],
		LogIdx:      b.LogIdxs[i],
	}
}
