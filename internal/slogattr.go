package internal

import (
	"log/slog"
)

// SlogSeed returns a slog.Attr for a seed of up to 8 bytes packed
// little-endian into a uint64 without allocating a string.
// Longer seeds are logged by their length only.
func SlogSeed(key string, seed []byte) slog.Attr {
	if len(seed) > 8 {
		return slog.Int(key+"_len", len(seed))
	}
	var u64Seed uint64
	for i, b := range seed {
		u64Seed |= uint64(b) << (8 * i)
	}
	return slog.Uint64(key, u64Seed)
}
