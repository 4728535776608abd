package cache

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFingerprint_Normalizes(t *testing.T) {
	a := Fingerprint("Maruti", "Swift", 42000)
	b := Fingerprint("  maruti ", "SWIFT", 47000)

	assert.Equal(t, a, b)
	assert.Equal(t, "maruti:swift:40k-50k", a)
}

func TestFingerprint_BucketBoundaries(t *testing.T) {
	assert.Equal(t, "maruti:swift:0k-10k", Fingerprint("Maruti", "Swift", 0))
	assert.Equal(t, "maruti:swift:0k-10k", Fingerprint("Maruti", "Swift", 9999))
	assert.Equal(t, "maruti:swift:10k-20k", Fingerprint("Maruti", "Swift", 10000))
	assert.Equal(t, "maruti:swift:0k-10k", Fingerprint("Maruti", "Swift", -5))
}

func TestFingerprint_MultiWordModel(t *testing.T) {
	assert.Equal(t, "maruti:swift-dzire:20k-30k", Fingerprint("Maruti", "Swift  Dzire", 25000))
}
