// Package types defines the compiled type structures for transcoding.
//
// CompiledType is the resolved form of an ABI type expression: a builtin, a
// struct with its inherited fields flattened in, a variant, or one of the
// array, optional and binary-extension modifiers wrapping an element type.
// Resolution happens once per expression per contract; the encoder and
// decoder switch on Kind without consulting the ABI document again.
//
// # Key Types
//
//   - CompiledType: resolved type with flattened fields or members
//   - Kind: type discriminator (builtin, struct, variant, modifier)
//
// This package is internal to the transcoder.
package types
