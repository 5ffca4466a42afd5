// Package mchecksum computes a deterministic SHA-256 digest over the
// canonical msgpack encoding of a value. Struct fields are encoded in
// declaration order and map keys in sorted order, giving a stable byte
// stream for checksumming.
package mchecksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vmihailenco/msgpack/v5"
)

// Sum encodes v as canonical msgpack and returns the hex-encoded SHA-256 digest.
func Sum(v any) (string, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)

	if err := enc.Encode(v); err != nil {
		return "", err
	}

	digest := sha256.Sum256(buf.Bytes())

	return hex.EncodeToString(digest[:]), nil
}
