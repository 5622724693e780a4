// Package abieos converts contract data between the compact ABI binary wire
// format and JSON, driven by ABI documents supplied at runtime.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	abieos/              Root package with the Context registry and Contract handles
//	├── name/            64-bit name codec
//	├── abi/             ABI document model, meta-schema and validation
//	├── transcoder/      Type resolution and binary/JSON conversion
//	├── errors/          Structured error types for debugging
//	└── cmd/abieos/      Command line front end and interactive explorer
//
// # Quick Start
//
// Register an ABI and convert an action:
//
//	ctx := abieos.NewWithDefaults()
//
//	if err := ctx.SetABIHex("eosio.token", tokenABIHex); err != nil {
//	    log.Fatal(err)
//	}
//
//	typ, err := ctx.TypeForAction("eosio.token", "transfer")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hex, err := ctx.JSONToHex("eosio.token", typ,
//	    `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"Hello!"}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(hex) // 0000000000855C34...
//
// # Contract Handles
//
// A Contract binds a context to one contract name so repeated calls do not
// restate it:
//
//	token := ctx.ContractByName(name.MustFromString("eosio.token"))
//	out, err := token.HexToJSON("transfer", hex)
//
// # Errors
//
// Every failure is an *errors.Error carrying a phase, a kind and the field
// path of the offending value. Match kinds with the sentinels:
//
//	if errors.Is(err, abierrors.ErrActionNotBound) { ... }
//
// # Thread Safety
//
// Context is safe for concurrent use. Registering an ABI replaces the
// contract's schema and resolution cache in one step; calls already in flight
// finish against the schema they started with.
package abieos
