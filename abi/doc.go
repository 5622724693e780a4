// Package abi defines the ABI document model.
//
// A Def declares a contract's aliases (types), structs, variants, and the
// action, table and action result bindings that name the types used on the
// wire. Ricardian clauses, error messages and extensions are carried for
// round trips but not interpreted.
//
// Meta returns the fixed schema that describes a Def itself; the transcoder
// package uses it to convert ABI documents between binary and JSON with the
// same engine that converts contract data.
//
// Validate checks structure only. Type expressions are resolved when a Def is
// compiled by the transcoder.
package abi
