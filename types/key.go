package types

import (
	"fmt"
)

func GetClaimKey(blockNumber, txIdx, logIdx uint64) string {
	return fmt.Sprintf("claim_b%d_t%d_l%d", blockNumber, txIdx, logIdx)
}
