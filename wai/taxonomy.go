package wai

import (
	"strconv"

	"go.bytecodealliance.org/wit"
)

// mapKind translates a wit type into the closed boundary taxonomy.
// AST kinds with no mapping (resource handles, futures, streams) come back
// as KindUnknown; Kind() turns that into an Unsupported error.
func mapKind(t wit.Type) Kind {
	switch typ := t.(type) {
	case nil:
		return KindUnit
	case wit.Bool:
		return KindBool
	case wit.U8:
		return KindU8
	case wit.U16:
		return KindU16
	case wit.U32:
		return KindU32
	case wit.U64:
		return KindU64
	case wit.S8:
		return KindS8
	case wit.S16:
		return KindS16
	case wit.S32:
		return KindS32
	case wit.S64:
		return KindS64
	case wit.F32:
		return KindF32
	case wit.F64:
		return KindF64
	case wit.Char:
		return KindChar
	case wit.String:
		return KindString
	case *wit.TypeDef:
		return mapTypeDefKind(typ)
	default:
		return KindUnknown
	}
}

func mapTypeDefKind(td *wit.TypeDef) Kind {
	if td == nil || td.Kind == nil {
		return KindUnknown
	}
	switch kind := td.Kind.(type) {
	case *wit.Record:
		return KindRecord
	case *wit.List:
		return KindList
	case *wit.Tuple:
		return KindTuple
	case *wit.Enum:
		return KindEnum
	case *wit.Flags:
		return KindFlags
	case *wit.Option:
		return KindOption
	case *wit.Result:
		return KindExpected
	case *wit.Variant:
		if casesAreOrdinal(kind.Cases) {
			return KindUnion
		}
		return KindVariant
	case wit.Type:
		return mapKind(kind)
	default:
		return KindUnknown
	}
}

// casesAreOrdinal reports whether every case is named by its own index,
// the lowering the parser applies to unions.
func casesAreOrdinal(cases []wit.Case) bool {
	if len(cases) == 0 {
		return false
	}
	for i, c := range cases {
		if c.Name != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// variantCases digs the case list out of a variant-shaped type, or nil.
func variantCases(t wit.Type) []wit.Case {
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil
	}
	v, ok := td.Kind.(*wit.Variant)
	if !ok {
		return nil
	}
	return v.Cases
}

// recordFields digs the field list out of a record type, or nil.
func recordFields(t wit.Type) []wit.Field {
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil
	}
	r, ok := td.Kind.(*wit.Record)
	if !ok {
		return nil
	}
	return r.Fields
}
