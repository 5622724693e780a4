package abi

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/wippyai/abieos/errors"
)

// VersionPrefix is the required prefix of every supported ABI version string.
const VersionPrefix = "eosio::abi/1."

// Validate checks the document's structure: supported version, unique
// declared type names, struct bases that name structs, and unique action,
// table and action result bindings. All problems are reported together.
// Type expressions are checked later, when the schema is compiled.
func (d *Def) Validate() error {
	var errs error

	if !strings.HasPrefix(d.Version, VersionPrefix) {
		errs = multierr.Append(errs, errors.AbiParse([]string{"version"}, "unsupported ABI version %q", d.Version))
	}

	declared := make(map[string]string)
	declare := func(path []string, typeName, what string) {
		if typeName == "" {
			errs = multierr.Append(errs, errors.AbiParse(path, "%s has an empty name", what))
			return
		}
		if prev, dup := declared[typeName]; dup {
			errs = multierr.Append(errs, errors.AbiParse(path, "%s %q redefines %s", what, typeName, prev))
			return
		}
		declared[typeName] = what
	}

	for i, t := range d.Types {
		declare(indexPath("types", i), t.NewTypeName, "type")
	}
	structs := make(map[string]bool, len(d.Structs))
	for i, s := range d.Structs {
		declare(indexPath("structs", i), s.Name, "struct")
		structs[s.Name] = true
	}
	for i, v := range d.Variants {
		declare(indexPath("variants", i), v.Name, "variant")
	}

	for i, s := range d.Structs {
		path := indexPath("structs", i)
		if s.Base != "" && !structs[s.Base] {
			errs = multierr.Append(errs, errors.AbiParse(path, "struct %q has base %q which is not a struct", s.Name, s.Base))
		}
		seen := make(map[string]bool, len(s.Fields))
		for j, f := range s.Fields {
			if seen[f.Name] {
				errs = multierr.Append(errs, errors.AbiParse(append(path, "fields["+strconv.Itoa(j)+"]"),
					"struct %q has duplicate field %q", s.Name, f.Name))
			}
			seen[f.Name] = true
		}
	}

	errs = multierr.Append(errs, uniqueNames("actions", len(d.Actions), func(i int) string { return d.Actions[i].Name.String() }))
	errs = multierr.Append(errs, uniqueNames("tables", len(d.Tables), func(i int) string { return d.Tables[i].Name.String() }))
	errs = multierr.Append(errs, uniqueNames("action_results", len(d.ActionResults), func(i int) string { return d.ActionResults[i].Name.String() }))

	if errs == nil {
		return nil
	}
	problems := multierr.Errors(errs)
	if len(problems) == 1 {
		return problems[0]
	}
	return errors.New(errors.PhaseParse, errors.KindAbiParse).
		Detail("%d problems in ABI", len(problems)).
		Cause(errs).
		Build()
}

func uniqueNames(section string, n int, nameAt func(int) string) error {
	var errs error
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		s := nameAt(i)
		if seen[s] {
			errs = multierr.Append(errs, errors.AbiParse(indexPath(section, i), "duplicate binding %q", s))
		}
		seen[s] = true
	}
	return errs
}

func indexPath(section string, i int) []string {
	return []string{section + "[" + strconv.Itoa(i) + "]"}
}
