package cache

import (
	"fmt"
	"strings"
)

// kmBucketSize groups kilometers-driven into 10k ranges. Two vehicles at
// 42,000 and 47,000 km are the same vehicle for valuation purposes, and
// bucketing keeps the cache hit rate useful.
const kmBucketSize = 10000

// Fingerprint builds a normalized cache key for a vehicle. Brand and model
// are lowercased and space-collapsed so "Maruti  Swift" and "maruti swift"
// collide on purpose.
func Fingerprint(brand, model string, kmDriven int) string {
	return fmt.Sprintf("%s:%s:%s", normalize(brand), normalize(model), kmBucket(kmDriven))
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

func kmBucket(km int) string {
	if km < 0 {
		km = 0
	}
	low := km / kmBucketSize * kmBucketSize
	return fmt.Sprintf("%dk-%dk", low/1000, (low+kmBucketSize)/1000)
}
