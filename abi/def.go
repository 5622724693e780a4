package abi

import (
	"github.com/wippyai/abieos/name"
)

// TypeDef declares an alias: NewTypeName resolves to Type.
type TypeDef struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

// FieldDef is one named, typed struct member.
type FieldDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// StructDef is an ordered field list with an optional base struct whose
// fields precede its own.
type StructDef struct {
	Name   string     `json:"name"`
	Base   string     `json:"base"`
	Fields []FieldDef `json:"fields"`
}

// ActionDef binds an action name to its argument type.
type ActionDef struct {
	Name              name.Name `json:"name"`
	Type              string    `json:"type"`
	RicardianContract string    `json:"ricardian_contract"`
}

// TableDef binds a table name to its row type.
type TableDef struct {
	Name      name.Name `json:"name"`
	IndexType string    `json:"index_type"`
	KeyNames  []string  `json:"key_names"`
	KeyTypes  []string  `json:"key_types"`
	Type      string    `json:"type"`
}

// ClausePair is a ricardian clause; preserved but not interpreted.
type ClausePair struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

// ErrorMessage maps a contract error code to text; preserved but not interpreted.
type ErrorMessage struct {
	ErrorCode uint64 `json:"error_code,string"`
	ErrorMsg  string `json:"error_msg"`
}

// Extension is an opaque tagged ABI extension.
type Extension struct {
	Tag   uint16 `json:"tag"`
	Value string `json:"value"`
}

// VariantDef is a tagged union; the member position is the wire tag.
type VariantDef struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// ActionResultDef binds an action name to its return value type.
type ActionResultDef struct {
	Name       name.Name `json:"name"`
	ResultType string    `json:"result_type"`
}

// Def is a complete ABI document.
type Def struct {
	Version          string            `json:"version"`
	Types            []TypeDef         `json:"types"`
	Structs          []StructDef       `json:"structs"`
	Actions          []ActionDef       `json:"actions"`
	Tables           []TableDef        `json:"tables"`
	RicardianClauses []ClausePair      `json:"ricardian_clauses"`
	ErrorMessages    []ErrorMessage    `json:"error_messages"`
	AbiExtensions    []Extension       `json:"abi_extensions"`
	Variants         []VariantDef      `json:"variants,omitempty"`
	ActionResults    []ActionResultDef `json:"action_results,omitempty"`
}

// ActionType returns the type bound to action.
func (d *Def) ActionType(action name.Name) (string, bool) {
	for _, a := range d.Actions {
		if a.Name == action {
			return a.Type, true
		}
	}
	return "", false
}

// TableType returns the row type bound to table.
func (d *Def) TableType(table name.Name) (string, bool) {
	for _, t := range d.Tables {
		if t.Name == table {
			return t.Type, true
		}
	}
	return "", false
}

// ActionResultType returns the return type bound to action.
func (d *Def) ActionResultType(action name.Name) (string, bool) {
	for _, r := range d.ActionResults {
		if r.Name == action {
			return r.ResultType, true
		}
	}
	return "", false
}
