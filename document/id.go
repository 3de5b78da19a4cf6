// id.go implements identifier strategies for new documents.
//
// Design: TimeRandomID is short and mostly increasing but two documents
// created in the same millisecond can collide. Callers that need
// collision-free identifiers plug in UUIDGenerator or their own IDGenerator.

package document

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxFractionDigits bounds the random suffix, roughly the precision of a
// float64 fraction rendered in base 36.
const maxFractionDigits = 11

// IDGenerator produces a fresh identifier on every call.
type IDGenerator interface {
	NewID() string
}

// TimeRandomID joins the current Unix time in milliseconds and the digits of
// a random fraction, both in base 36.
type TimeRandomID struct {
	// Clock overrides time.Now. Nil means time.Now.
	Clock func() time.Time
}

// NewID returns an identifier such as "m2x1k8z0q4f7b3n9sd".
func (g TimeRandomID) NewID() string {
	now := time.Now
	if g.Clock != nil {
		now = g.Clock
	}
	return strconv.FormatInt(now().UnixMilli(), 36) + fraction36(rand.Float64())
}

// fraction36 renders the digits after the radix point of f (0 <= f < 1) in
// base 36, dropping trailing zeros.
func fraction36(f float64) string {
	var b strings.Builder
	for i := 0; i < maxFractionDigits && f > 0; i++ {
		f *= 36
		d := int(f)
		f -= float64(d)
		b.WriteByte(strconv.FormatInt(int64(d), 36)[0])
	}
	s := strings.TrimRight(b.String(), "0")
	if s == "" {
		return "0"
	}
	return s
}

// UUIDGenerator returns random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new UUID string.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Compile-time interface compliance.
var (
	_ IDGenerator = TimeRandomID{}
	_ IDGenerator = UUIDGenerator{}
)
