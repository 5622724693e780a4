// Package errors provides structured error types for the abieos codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, ABI type expression, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindFieldTypeMismatch).
//		Path("transfer", "quantity").
//		AbiType("asset").
//		Detail("expected string, got number").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "uint32", "string")
//	err := errors.Truncated(path, 8, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// The exported Err* sentinels match by kind regardless of phase:
//
//	if errors.Is(err, errors.ErrActionNotBound) { ... }
package errors
