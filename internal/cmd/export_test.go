package cmd

// DecodeInto exposes the decode entrypoint with an injectable output writer
// to external tests.
var DecodeInto = (*Decode).decode
