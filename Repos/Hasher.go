package Repos

import "hash/maphash"

// Hasher is a seeded string hasher. The receivers are thread-safe.
type Hasher struct {
	seed maphash.Seed
}

// NewHasher creates a Hasher with a random seed.
func NewHasher() Hasher {
	return Hasher{maphash.MakeSeed()}
}

// HashString hashes v.
func (u Hasher) HashString(v string) uint {
	return uint(maphash.String(u.seed, v))
}
