package abi

// MetaRoot is the meta-schema type describing a serialized ABI document.
const MetaRoot = "abi_def"

// Meta returns the built-in schema that describes ABI documents themselves.
// Binary and JSON ABI documents are converted with the same engine as
// contract data, using this schema as the registered ABI.
func Meta() *Def {
	return &Def{
		Version: "eosio::abi/1.1",
		Structs: []StructDef{
			{Name: "extensions_entry", Fields: []FieldDef{
				{Name: "tag", Type: "uint16"},
				{Name: "value", Type: "bytes"},
			}},
			{Name: "type_def", Fields: []FieldDef{
				{Name: "new_type_name", Type: "string"},
				{Name: "type", Type: "string"},
			}},
			{Name: "field_def", Fields: []FieldDef{
				{Name: "name", Type: "string"},
				{Name: "type", Type: "string"},
			}},
			{Name: "struct_def", Fields: []FieldDef{
				{Name: "name", Type: "string"},
				{Name: "base", Type: "string"},
				{Name: "fields", Type: "field_def[]"},
			}},
			{Name: "action_def", Fields: []FieldDef{
				{Name: "name", Type: "name"},
				{Name: "type", Type: "string"},
				{Name: "ricardian_contract", Type: "string"},
			}},
			{Name: "table_def", Fields: []FieldDef{
				{Name: "name", Type: "name"},
				{Name: "index_type", Type: "string"},
				{Name: "key_names", Type: "string[]"},
				{Name: "key_types", Type: "string[]"},
				{Name: "type", Type: "string"},
			}},
			{Name: "clause_pair", Fields: []FieldDef{
				{Name: "id", Type: "string"},
				{Name: "body", Type: "string"},
			}},
			{Name: "error_message", Fields: []FieldDef{
				{Name: "error_code", Type: "uint64"},
				{Name: "error_msg", Type: "string"},
			}},
			{Name: "variant_def", Fields: []FieldDef{
				{Name: "name", Type: "string"},
				{Name: "types", Type: "string[]"},
			}},
			{Name: "action_result_def", Fields: []FieldDef{
				{Name: "name", Type: "name"},
				{Name: "result_type", Type: "string"},
			}},
			{Name: MetaRoot, Fields: []FieldDef{
				{Name: "version", Type: "string"},
				{Name: "types", Type: "type_def[]"},
				{Name: "structs", Type: "struct_def[]"},
				{Name: "actions", Type: "action_def[]"},
				{Name: "tables", Type: "table_def[]"},
				{Name: "ricardian_clauses", Type: "clause_pair[]"},
				{Name: "error_messages", Type: "error_message[]"},
				{Name: "abi_extensions", Type: "extensions_entry[]"},
				{Name: "variants", Type: "variant_def[]$"},
				{Name: "action_results", Type: "action_result_def[]$"},
			}},
		},
	}
}
