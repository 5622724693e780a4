package transcoder

import (
	"github.com/wippyai/abieos/abi"
)

// Transcoder converts between JSON and ABI binary for the types of one ABI
// document. It is immutable after construction and safe for concurrent use.
type Transcoder struct {
	compiler *Compiler
	enc      *Encoder
	dec      *Decoder
}

// New validates def and compiles every type it declares.
func New(def *abi.Def, opts Options) (*Transcoder, error) {
	c, err := NewCompiler(def, opts)
	if err != nil {
		return nil, err
	}
	return &Transcoder{
		compiler: c,
		enc:      NewEncoder(c.Options()),
		dec:      NewDecoder(c.Options()),
	}, nil
}

// Compiler returns the compiler that resolves the transcoder's types.
func (t *Transcoder) Compiler() *Compiler {
	return t.compiler
}

// Def returns the ABI document the transcoder was built from.
func (t *Transcoder) Def() *abi.Def {
	return t.compiler.Def()
}

// Resolve compiles a type expression such as "transfer" or "name[]".
func (t *Transcoder) Resolve(typeExpr string) (*CompiledType, error) {
	return t.compiler.Resolve(typeExpr)
}

// Encode serializes a generic value as typeExpr.
func (t *Transcoder) Encode(typeExpr string, value any) ([]byte, error) {
	ct, err := t.compiler.Resolve(typeExpr)
	if err != nil {
		return nil, err
	}
	return t.enc.Encode(ct, value)
}

// JSONToBinary parses JSON text and serializes it as typeExpr.
func (t *Transcoder) JSONToBinary(typeExpr string, text []byte) ([]byte, error) {
	ct, err := t.compiler.Resolve(typeExpr)
	if err != nil {
		return nil, err
	}
	v, err := ParseJSON(text)
	if err != nil {
		return nil, err
	}
	return t.enc.Encode(ct, v)
}

// Decode deserializes data as typeExpr into generic values.
func (t *Transcoder) Decode(typeExpr string, data []byte) (any, error) {
	ct, err := t.compiler.Resolve(typeExpr)
	if err != nil {
		return nil, err
	}
	return t.dec.Decode(ct, data)
}

// BinaryToJSON deserializes data as typeExpr and renders compact JSON.
func (t *Transcoder) BinaryToJSON(typeExpr string, data []byte) ([]byte, error) {
	v, err := t.Decode(typeExpr, data)
	if err != nil {
		return nil, err
	}
	return MarshalJSON(v)
}
