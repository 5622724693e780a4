package abieos

import (
	"bytes"
	"fmt"

	"github.com/wippyai/abieos/abi"
	"github.com/wippyai/abieos/name"
)

// ABIFormat selects how Contract.LoadABI interprets its input.
type ABIFormat uint8

const (
	AbiJSON ABIFormat = iota // JSON document
	AbiHex                   // hex of the binary form
	AbiBin                   // binary form
)

func (f ABIFormat) String() string {
	switch f {
	case AbiJSON:
		return "json"
	case AbiHex:
		return "hex"
	case AbiBin:
		return "bin"
	}
	return fmt.Sprintf("ABIFormat(%d)", uint8(f))
}

// DetectABIFormat guesses the encoding of an ABI file: JSON when it starts
// with '{', hex when every byte is a hex digit, binary otherwise.
func DetectABIFormat(data []byte) ABIFormat {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return AbiJSON
	}
	if len(trimmed) == 0 || len(trimmed)%2 != 0 {
		return AbiBin
	}
	for _, b := range trimmed {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
		default:
			return AbiBin
		}
	}
	return AbiHex
}

// Contract is a Context bound to one contract name.
type Contract struct {
	ctx  *Context
	name name.Name
}

// Contract returns a handle for the named contract. The contract need not
// be registered yet.
func (c *Context) Contract(contract string) (*Contract, error) {
	n, err := name.Parse(contract)
	if err != nil {
		return nil, err
	}
	return c.ContractByName(n), nil
}

// ContractByName returns a handle for contract.
func (c *Context) ContractByName(contract name.Name) *Contract {
	return &Contract{ctx: c, name: contract}
}

// Name returns the contract the handle is bound to.
func (k *Contract) Name() name.Name {
	return k.name
}

// LoadABI registers data, encoded as format, as the contract's ABI.
func (k *Contract) LoadABI(format ABIFormat, data []byte) error {
	contract := k.name.String()
	switch format {
	case AbiJSON:
		return k.ctx.SetABIJSON(contract, string(data))
	case AbiHex:
		return k.ctx.SetABIHex(contract, string(data))
	case AbiBin:
		return k.ctx.SetABIBin(contract, data)
	}
	return fmt.Errorf("abieos: unknown ABI format %v", format)
}

// Loaded reports whether an ABI is registered for the contract.
func (k *Contract) Loaded() bool {
	_, err := k.ctx.get(k.name)
	return err == nil
}

// ABI returns the registered document. It must not be modified.
func (k *Contract) ABI() (*abi.Def, error) {
	tr, err := k.ctx.get(k.name)
	if err != nil {
		return nil, err
	}
	return tr.Def(), nil
}

// TypeForAction returns the type bound to action.
func (k *Contract) TypeForAction(action string) (string, error) {
	return k.ctx.TypeForAction(k.name.String(), action)
}

// TypeForTable returns the row type of table.
func (k *Contract) TypeForTable(table string) (string, error) {
	return k.ctx.TypeForTable(k.name.String(), table)
}

// TypeForActionResult returns the result type of action.
func (k *Contract) TypeForActionResult(action string) (string, error) {
	return k.ctx.TypeForActionResult(k.name.String(), action)
}

// JSONToBin serializes jsonText as typeName.
func (k *Contract) JSONToBin(typeName, jsonText string) ([]byte, error) {
	return k.ctx.JSONToBin(k.name.String(), typeName, jsonText)
}

// JSONToHex is JSONToBin with uppercase hex output.
func (k *Contract) JSONToHex(typeName, jsonText string) (string, error) {
	return k.ctx.JSONToHex(k.name.String(), typeName, jsonText)
}

// BinToJSON deserializes data as typeName.
func (k *Contract) BinToJSON(typeName string, data []byte) (string, error) {
	return k.ctx.BinToJSON(k.name.String(), typeName, data)
}

// HexToJSON is BinToJSON for hex input.
func (k *Contract) HexToJSON(typeName, hexText string) (string, error) {
	return k.ctx.HexToJSON(k.name.String(), typeName, hexText)
}
