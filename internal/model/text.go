// Package model defines the request and response payloads of the API.
// All of these are transient: built for one request, serialized, and
// discarded. Nothing is persisted and no payload references another
// request.
package model

// TextInput is the JSON body accepted by the POST endpoints. Text is a
// pointer so handlers can tell a missing field (malformed request, 422)
// apart from a present-but-empty value (invalid input, 400).
type TextInput struct {
    Text *string `json:"text"`
}

// TokenResponse carries the tokens extracted from the input in order of
// appearance. Count always equals len(Tokens).
type TokenResponse struct {
    Tokens []string `json:"tokens"`
    Count  int      `json:"count"`
}

// ChecksumResponse carries the MD5 digest of the input as 32 lowercase
// hex characters, together with the input exactly as received.
type ChecksumResponse struct {
    Checksum     string `json:"checksum"`
    OriginalText string `json:"original_text"`
}

// Welcome is the landing payload served at the root path. Endpoints maps
// each route to a short description so the API is discoverable without
// external docs.
type Welcome struct {
    Message     string            `json:"message"`
    Participant string            `json:"participant"`
    Environment string            `json:"environment"`
    Description string            `json:"description"`
    Endpoints   map[string]string `json:"endpoints"`
}
