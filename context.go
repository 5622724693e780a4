package abieos

import (
	"encoding/hex"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/abieos/abi"
	"github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/name"
	"github.com/wippyai/abieos/transcoder"
)

// Context holds the ABIs registered for a set of contracts.
// Thread-safe.
type Context struct {
	contracts map[name.Name]*transcoder.Transcoder
	log       *zap.Logger
	opts      Options
	mu        sync.RWMutex
}

// New creates an empty Context with the given options.
func New(opts Options) *Context {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	return &Context{
		contracts: make(map[name.Name]*transcoder.Transcoder),
		log:       log,
		opts:      opts,
	}
}

// NewWithDefaults creates an empty Context with default options.
func NewWithDefaults() *Context {
	return New(DefaultOptions())
}

// Options returns the configuration.
func (c *Context) Options() Options {
	return c.opts
}

// StringToName encodes a name string as its 64-bit value.
func StringToName(s string) (uint64, error) {
	n, err := name.FromString(s)
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// NameToString renders a 64-bit name value. It never fails.
func NameToString(v uint64) string {
	return name.Name(v).String()
}

// SetABI registers def for contract, replacing any previous ABI together
// with its resolved types.
func (c *Context) SetABI(contract string, def *abi.Def) error {
	n, err := name.Parse(contract)
	if err != nil {
		return err
	}
	return c.register(n, def)
}

// SetABIJSON registers an ABI given as JSON text.
func (c *Context) SetABIJSON(contract, abiJSON string) error {
	n, err := name.Parse(contract)
	if err != nil {
		return err
	}
	def, err := transcoder.ParseABIJSON([]byte(abiJSON))
	if err != nil {
		c.log.Debug("abi rejected", zap.Stringer("contract", n), zap.Error(err))
		return err
	}
	return c.register(n, def)
}

// SetABIHex registers an ABI given as hex of its binary form.
func (c *Context) SetABIHex(contract, abiHex string) error {
	data, err := decodeHex(abiHex)
	if err != nil {
		return err
	}
	return c.SetABIBin(contract, data)
}

// SetABIBin registers an ABI given in binary form.
func (c *Context) SetABIBin(contract string, data []byte) error {
	n, err := name.Parse(contract)
	if err != nil {
		return err
	}
	def, err := transcoder.ParseABIBinary(data)
	if err != nil {
		c.log.Debug("abi rejected", zap.Stringer("contract", n), zap.Error(err))
		return err
	}
	return c.register(n, def)
}

func (c *Context) register(contract name.Name, def *abi.Def) error {
	tr, err := transcoder.New(def, c.opts.transcoder())
	if err != nil {
		c.log.Debug("abi rejected", zap.Stringer("contract", contract), zap.Error(err))
		return err
	}

	c.mu.Lock()
	_, replaced := c.contracts[contract]
	c.contracts[contract] = tr
	c.mu.Unlock()

	c.log.Debug("abi registered",
		zap.Stringer("contract", contract),
		zap.String("version", def.Version),
		zap.Int("types", len(def.Types)),
		zap.Int("structs", len(def.Structs)),
		zap.Int("variants", len(def.Variants)),
		zap.Bool("replaced", replaced))
	return nil
}

// RemoveABI drops the ABI registered for contract. It reports whether one
// was registered.
func (c *Context) RemoveABI(contract string) (bool, error) {
	n, err := name.Parse(contract)
	if err != nil {
		return false, err
	}
	c.mu.Lock()
	_, ok := c.contracts[n]
	delete(c.contracts, n)
	c.mu.Unlock()
	if ok {
		c.log.Debug("abi removed", zap.Stringer("contract", n))
	}
	return ok, nil
}

// Contracts returns the registered contract names in ascending order.
func (c *Context) Contracts() []name.Name {
	c.mu.RLock()
	names := make([]name.Name, 0, len(c.contracts))
	for n := range c.contracts {
		names = append(names, n)
	}
	c.mu.RUnlock()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ABI returns the document registered for contract. It must not be modified.
func (c *Context) ABI(contract string) (*abi.Def, error) {
	tr, err := c.lookup(contract)
	if err != nil {
		return nil, err
	}
	return tr.Def(), nil
}

func (c *Context) lookup(contract string) (*transcoder.Transcoder, error) {
	n, err := name.Parse(contract)
	if err != nil {
		return nil, err
	}
	return c.get(n)
}

func (c *Context) get(contract name.Name) (*transcoder.Transcoder, error) {
	c.mu.RLock()
	tr, ok := c.contracts[contract]
	c.mu.RUnlock()
	if !ok {
		return nil, errors.ContractNotFound(contract.String())
	}
	return tr, nil
}

// JSONToBin serializes JSON text as typeName of contract.
func (c *Context) JSONToBin(contract, typeName, jsonText string) ([]byte, error) {
	tr, err := c.lookup(contract)
	if err != nil {
		return nil, err
	}
	return c.jsonToBin(tr, contract, typeName, jsonText)
}

func (c *Context) jsonToBin(tr *transcoder.Transcoder, contract, typeName, jsonText string) ([]byte, error) {
	data, err := tr.JSONToBinary(typeName, []byte(jsonText))
	if err != nil {
		c.log.Debug("json to binary failed",
			zap.String("contract", contract), zap.String("type", typeName), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// JSONToHex is JSONToBin with uppercase hex output.
func (c *Context) JSONToHex(contract, typeName, jsonText string) (string, error) {
	data, err := c.JSONToBin(contract, typeName, jsonText)
	if err != nil {
		return "", err
	}
	return encodeHex(data), nil
}

// BinToJSON deserializes data as typeName of contract into compact JSON.
func (c *Context) BinToJSON(contract, typeName string, data []byte) (string, error) {
	tr, err := c.lookup(contract)
	if err != nil {
		return "", err
	}
	return c.binToJSON(tr, contract, typeName, data)
}

func (c *Context) binToJSON(tr *transcoder.Transcoder, contract, typeName string, data []byte) (string, error) {
	out, err := tr.BinaryToJSON(typeName, data)
	if err != nil {
		c.log.Debug("binary to json failed",
			zap.String("contract", contract), zap.String("type", typeName), zap.Error(err))
		return "", err
	}
	return string(out), nil
}

// HexToJSON is BinToJSON with hex input in either case.
func (c *Context) HexToJSON(contract, typeName, hexText string) (string, error) {
	data, err := decodeHex(hexText)
	if err != nil {
		return "", err
	}
	return c.BinToJSON(contract, typeName, data)
}

// TypeForAction returns the argument type bound to action.
func (c *Context) TypeForAction(contract, action string) (string, error) {
	tr, err := c.lookup(contract)
	if err != nil {
		return "", err
	}
	return typeForAction(tr, contract, action)
}

// TypeForTable returns the row type bound to table.
func (c *Context) TypeForTable(contract, table string) (string, error) {
	tr, err := c.lookup(contract)
	if err != nil {
		return "", err
	}
	return typeForTable(tr, contract, table)
}

// TypeForActionResult returns the return value type bound to action.
func (c *Context) TypeForActionResult(contract, action string) (string, error) {
	tr, err := c.lookup(contract)
	if err != nil {
		return "", err
	}
	return typeForActionResult(tr, contract, action)
}

func typeForAction(tr *transcoder.Transcoder, contract, action string) (string, error) {
	n, err := name.Parse(action)
	if err != nil {
		return "", err
	}
	if t, ok := tr.Def().ActionType(n); ok {
		return t, nil
	}
	return "", errors.NotBound(errors.KindActionNotBound, contract, "action", action)
}

func typeForTable(tr *transcoder.Transcoder, contract, table string) (string, error) {
	n, err := name.Parse(table)
	if err != nil {
		return "", err
	}
	if t, ok := tr.Def().TableType(n); ok {
		return t, nil
	}
	return "", errors.NotBound(errors.KindTableNotBound, contract, "table", table)
}

func typeForActionResult(tr *transcoder.Transcoder, contract, action string) (string, error) {
	n, err := name.Parse(action)
	if err != nil {
		return "", err
	}
	if t, ok := tr.Def().ActionResultType(n); ok {
		return t, nil
	}
	return "", errors.NotBound(errors.KindActionResultNotBound, contract, "action result", action)
}

// ABIJSONToBin converts an ABI document from JSON to its binary form.
func (c *Context) ABIJSONToBin(abiJSON string) ([]byte, error) {
	return transcoder.ABIJSONToBinary([]byte(abiJSON))
}

// ABIBinToJSON converts a binary ABI document to JSON.
func (c *Context) ABIBinToJSON(data []byte) (string, error) {
	out, err := transcoder.ABIBinaryToJSON(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.ParseFailed("hex", err)
	}
	return data, nil
}

func encodeHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
