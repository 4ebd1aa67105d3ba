package generator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bnb-chain/ens-claim-input/cache"
	"github.com/bnb-chain/ens-claim-input/claim"
	"github.com/bnb-chain/ens-claim-input/config"
	"github.com/bnb-chain/ens-claim-input/logging"
	"github.com/bnb-chain/ens-claim-input/types"
)

const indent = "    "

type Generator struct {
	config     *config.GeneratorConfig
	claimCache cache.Cache
}

func NewGenerator(cfg *config.GeneratorConfig) *Generator {
	claimCache, err := cache.NewLocalCache(cfg.GetClaimCacheSize())
	if err != nil {
		panic(err)
	}
	return &Generator{
		config:     cfg,
		claimCache: claimCache,
	}
}

// Generate builds the input bundle for the configured reference claim.
func (g *Generator) Generate() *types.ReferenceBundle {
	ref := types.ClaimReference{
		BlockNumber: g.config.BlockNumber,
		TxIdx:       g.config.TxIdx,
		LogIdx:      g.config.LogIdx,
	}
	bundle := claim.NewBundle([]types.ClaimReference{ref}, g.config.RepeatCount)
	for i, id := range claim.IDs(bundle, g.claimCache) {
		logging.Logger.Debugf("claim %s, slot=%d, claim_id=%s", bundle.Claim(i).Key(), i, hexutil.Encode(id.Bytes()))
	}
	return bundle
}

// Encode serializes bundle with four space indentation.
func (g *Generator) Encode(bundle *types.ReferenceBundle) ([]byte, error) {
	return json.MarshalIndent(bundle, "", indent)
}

// Print writes the encoded bundle and a trailing newline to w.
func (g *Generator) Print(w io.Writer) error {
	bundle := g.Generate()
	bz, err := g.Encode(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}
	if _, err = w.Write(append(bz, '\n')); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	logging.Logger.Debugf("wrote bundle, num_claims=%d, slots=%d", bundle.NumClaims, len(bundle.BlockNumbers))
	return nil
}
