// Package token implements the core text operations behind the API:
// input validation, whitespace tokenization and MD5 checksum generation.
// Everything here is a pure function so the logic can be tested without
// spinning up the HTTP layer.
package token

import (
    "crypto/md5"
    "encoding/hex"
    "errors"
    "strings"
)

// ErrEmptyText is returned by Validate when the input contains no
// non-whitespace characters. Handlers map it to HTTP 400.
var ErrEmptyText = errors.New("text cannot be empty")

// Validate checks that text contains at least one non-whitespace character.
// The input is returned unchanged; trimming only happens for the check so
// that downstream operations (in particular the checksum) see the exact
// bytes the client sent.
func Validate(text string) (string, error) {
    if strings.TrimSpace(text) == "" {
        return "", ErrEmptyText
    }
    return text, nil
}

// Tokenize splits text on runs of Unicode whitespace (spaces, tabs,
// newlines) and drops empty fragments. Order follows the input; no
// deduplication or normalization is applied, so identical input always
// yields an identical token sequence.
func Tokenize(text string) []string {
    return strings.Fields(text)
}

// Checksum returns the MD5 digest of the UTF-8 bytes of text as a
// 32-character lowercase hex string. MD5 is not collision-resistant; the
// digest is a demonstration checksum, not an integrity guarantee.
func Checksum(text string) string {
    sum := md5.Sum([]byte(text))
    return hex.EncodeToString(sum[:])
}
