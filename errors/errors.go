package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseName    Phase = "name"    // name string conversion
	PhaseParse   Phase = "parse"   // ABI document parsing and validation
	PhaseResolve Phase = "resolve" // type expression resolution
	PhaseEncode  Phase = "encode"  // JSON to binary
	PhaseDecode  Phase = "decode"  // binary to JSON
	PhaseLookup  Phase = "lookup"  // contract and binding lookups
	PhaseInput   Phase = "input"   // hex and JSON text framing
)

// Kind categorizes the error
type Kind string

const (
	KindNameTooLong          Kind = "name_too_long"
	KindInvalidNameCharacter Kind = "invalid_name_character"
	KindAbiParse             Kind = "abi_parse"
	KindUnknownType          Kind = "unknown_type"
	KindAliasCycle           Kind = "alias_cycle"
	KindInvalidNesting       Kind = "invalid_nesting"
	KindRecursionLimit       Kind = "recursion_limit"
	KindMissingField         Kind = "missing_field"
	KindFieldTypeMismatch    Kind = "field_type_mismatch"
	KindNoMatchingVariant    Kind = "no_matching_variant_type"
	KindVariantOutOfRange    Kind = "variant_index_out_of_range"
	KindTruncatedInput       Kind = "truncated_input"
	KindInvalidUTF8          Kind = "invalid_utf8"
	KindOverflow             Kind = "overflow"
	KindInvalidData          Kind = "invalid_data"
	KindContractNotFound     Kind = "contract_not_registered"
	KindActionNotBound       Kind = "action_not_bound"
	KindTableNotBound        Kind = "table_not_bound"
	KindActionResultNotBound Kind = "action_result_not_bound"
)

// Kind sentinels match any error of the same kind regardless of phase.
var (
	ErrNameTooLong          = &Error{Kind: KindNameTooLong}
	ErrInvalidNameCharacter = &Error{Kind: KindInvalidNameCharacter}
	ErrAbiParse             = &Error{Kind: KindAbiParse}
	ErrUnknownType          = &Error{Kind: KindUnknownType}
	ErrAliasCycle           = &Error{Kind: KindAliasCycle}
	ErrInvalidNesting       = &Error{Kind: KindInvalidNesting}
	ErrRecursionLimit       = &Error{Kind: KindRecursionLimit}
	ErrMissingField         = &Error{Kind: KindMissingField}
	ErrFieldTypeMismatch    = &Error{Kind: KindFieldTypeMismatch}
	ErrNoMatchingVariant    = &Error{Kind: KindNoMatchingVariant}
	ErrVariantOutOfRange    = &Error{Kind: KindVariantOutOfRange}
	ErrTruncatedInput       = &Error{Kind: KindTruncatedInput}
	ErrInvalidUTF8          = &Error{Kind: KindInvalidUTF8}
	ErrOverflow             = &Error{Kind: KindOverflow}
	ErrInvalidData          = &Error{Kind: KindInvalidData}
	ErrContractNotFound     = &Error{Kind: KindContractNotFound}
	ErrActionNotBound       = &Error{Kind: KindActionNotBound}
	ErrTableNotBound        = &Error{Kind: KindTableNotBound}
	ErrActionResultNotBound = &Error{Kind: KindActionResultNotBound}
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	AbiType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.AbiType != "" {
		b.WriteString(": type ")
		b.WriteString(e.AbiType)
	}

	if e.Detail != "" {
		if e.AbiType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase == "" {
			return e.Kind == t.Kind
		}
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// AbiType sets the ABI type expression involved
func (b *Builder) AbiType(t string) *Builder {
	b.err.AbiType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NameTooLong creates an error for a name string over 13 characters
func NameTooLong(s string) *Error {
	return &Error{
		Phase:  PhaseName,
		Kind:   KindNameTooLong,
		Value:  s,
		Detail: fmt.Sprintf("name %q has %d characters (max 13)", s, len(s)),
	}
}

// InvalidNameCharacter creates an error for a character outside the name alphabet
func InvalidNameCharacter(s string, pos int) *Error {
	return &Error{
		Phase:  PhaseName,
		Kind:   KindInvalidNameCharacter,
		Value:  s,
		Detail: fmt.Sprintf("invalid character %q at position %d in name %q", s[pos], pos, s),
	}
}

// AbiParse creates an ABI document error
func AbiParse(path []string, detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindAbiParse,
		Path:   path,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// UnknownType creates an unresolvable type error
func UnknownType(path []string, typeName string) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindUnknownType,
		Path:    path,
		AbiType: typeName,
		Detail:  "unknown type",
	}
}

// AliasCycle creates an alias chain error
func AliasCycle(path []string, typeName string, chain []string) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindAliasCycle,
		Path:    path,
		AbiType: typeName,
		Detail:  "alias chain " + strings.Join(chain, " -> "),
	}
}

// TypeMismatch creates a JSON shape mismatch error
func TypeMismatch(phase Phase, path []string, abiType, got string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindFieldTypeMismatch,
		Path:    path,
		AbiType: abiType,
		Detail:  "got " + got,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMissingField,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// InvalidDiscriminant creates an out of range variant index error
func InvalidDiscriminant(phase Phase, path []string, disc uint32, count int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindVariantOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("variant index %d out of range (%d members)", disc, count),
		Value:  disc,
	}
}

// NoMatchingVariant creates an error for a value no variant member accepts
func NoMatchingVariant(path []string, variant string) *Error {
	return &Error{
		Phase:   PhaseEncode,
		Kind:    KindNoMatchingVariant,
		Path:    path,
		AbiType: variant,
		Detail:  "value does not match any variant member",
	}
}

// Truncated creates a short read error
func Truncated(path []string, want, remaining int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedInput,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", want, remaining),
		Value:  want,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindOverflow,
		Path:    path,
		AbiType: targetType,
		Detail:  fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:   value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Lookup package convenience constructors

// ContractNotFound creates an error for an unregistered contract
func ContractNotFound(contract string) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindContractNotFound,
		Detail: fmt.Sprintf("contract %q is not registered", contract),
	}
}

// NotBound creates an action/table/action result binding miss
func NotBound(kind Kind, contract, what, name string) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   kind,
		Detail: fmt.Sprintf("contract %q has no %s %q", contract, what, name),
	}
}

// ParseFailed creates an input framing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseInput,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
