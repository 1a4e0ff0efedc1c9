// Package idgen generates entity ids of the form {prefix}_{base36}.
package idgen

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Entity prefixes.
const (
	Campaign   = "camp"
	Profile    = "prof"
	Experiment = "exp"
	Brand      = "brand"
	Offer      = "offer"
)

// SuffixLen is the number of base36 digits after the prefix.
const SuffixLen = 9

// 36^9
const space = 101559956668416

// New returns a fresh id for prefix. The random part is taken from a v4
// UUID and reduced to SuffixLen base36 digits.
func New(prefix string) string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[8:]) % space
	s := strconv.FormatUint(n, 36)
	return prefix + "_" + strings.Repeat("0", SuffixLen-len(s)) + s
}
