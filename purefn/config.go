package purefn

const defaultNumShards = 16

// MemoConfig shapes the cache behind a memoized function.
type MemoConfig struct {
	NumShards int    // default: 16, ignored when MaxSize > 0
	MaxSize   uint32 // default: 0 (unbounded, never evicts)
}

// NewMemoConfig normalizes its arguments. A non-positive shard count
// falls back to the default.
func NewMemoConfig(numShards int, maxSize uint32) MemoConfig {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	return MemoConfig{
		NumShards: numShards,
		MaxSize:   maxSize,
	}
}

func DefaultMemoConfig() MemoConfig {
	return NewMemoConfig(defaultNumShards, 0)
}

// Bounded reports whether the cache may forget entries.
func (c MemoConfig) Bounded() bool {
	return c.MaxSize > 0
}
