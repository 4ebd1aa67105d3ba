package cache

import (
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"
)

// Cache memoizes claim ids by claim key.
type Cache interface {
	Get(key string) (common.Hash, bool)
	Set(key string, id common.Hash)
}

type LocalCache struct {
	*lru.Cache
}

func NewLocalCache(size uint64) (Cache, error) {
	cache, err := lru.New(int(size))
	if err != nil {
		return nil, err
	}
	return &LocalCache{
		cache,
	}, nil
}

func (c *LocalCache) Get(key string) (common.Hash, bool) {
	v, ok := c.Cache.Get(key)
	if !ok {
		return common.Hash{}, false
	}
	return v.(common.Hash), true
}

func (c *LocalCache) Set(key string, id common.Hash) {
	c.Cache.Add(key, id)
}
