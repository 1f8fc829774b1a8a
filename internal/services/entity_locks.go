package services

import (
	"hash/fnv"
	"sync"
)

const lockShards = 64

// entityLocks is a sharded lock table keyed by entity id. Every
// counter-affecting operation takes the owning entity's lock so that two
// concurrent read-modify-write cycles on the same user or post cannot lose
// an update. Keys hash onto a fixed shard set, so unrelated entities may
// share a mutex; that only costs throughput, never correctness.
type entityLocks struct {
	shards [lockShards]sync.Mutex
}

func newEntityLocks() *entityLocks {
	return &entityLocks{}
}

// shardFor hashes a key onto a shard index (FNV-1a)
func (l *entityLocks) shardFor(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32() % lockShards
}

// Lock acquires the shard for key and returns its unlock func
func (l *entityLocks) Lock(key string) func() {
	mu := &l.shards[l.shardFor(key)]
	mu.Lock()
	return mu.Unlock
}

// LockPair acquires the shards for both keys in ascending shard order so
// that concurrent operations touching overlapping pairs cannot deadlock.
// A single lock is taken when both keys land on the same shard.
func (l *entityLocks) LockPair(a, b string) func() {
	sa, sb := l.shardFor(a), l.shardFor(b)
	if sa == sb {
		mu := &l.shards[sa]
		mu.Lock()
		return mu.Unlock
	}
	if sa > sb {
		sa, sb = sb, sa
	}
	first, second := &l.shards[sa], &l.shards[sb]
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
