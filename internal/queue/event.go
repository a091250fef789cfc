// Package queue defines message payloads exchanged over the message broker.
package queue

// TextProcessedEvent is published after a tokenize, generate or checksum
// request completes successfully. It carries enough for downstream
// consumers to build usage statistics without the service keeping any
// state of its own; the input text itself is never included, only its
// length.
type TextProcessedEvent struct {
    Operation   string `json:"operation"`    // "generate", "tokenize" or "checksum"
    InputChars  int    `json:"input_chars"`  // rune count of the submitted text
    TokenCount  int    `json:"token_count"`  // number of tokens produced (0 for checksum)
    Checksum    string `json:"checksum"`     // hex digest (empty for tokenization)
    ProcessedAt string `json:"processed_at"` // RFC 3339 UTC timestamp
}

// TextProcessedQueue is the durable queue the events travel through.
const TextProcessedQueue = "text.processed"
