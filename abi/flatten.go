package abi

import (
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"
)

// CoreValType is a core wasm value type.
type CoreValType = api.ValueType

const (
	CoreI32 = api.ValueTypeI32
	CoreI64 = api.ValueTypeI64
	CoreF32 = api.ValueTypeF32
	CoreF64 = api.ValueTypeF64
)

// FlattenTypes flattens a sequence of wit types to core wasm types.
func FlattenTypes(types []wit.Type) []CoreValType {
	var flat []CoreValType
	for _, t := range types {
		flat = append(flat, FlattenType(t)...)
	}
	return flat
}

// FlattenType flattens one wit type to core wasm types. The nil type
// (unit) flattens to nothing.
func FlattenType(t wit.Type) []CoreValType {
	switch v := t.(type) {
	case nil:
		return nil
	case wit.Bool, wit.U8, wit.U16, wit.U32, wit.S8, wit.S16, wit.S32, wit.Char:
		return []CoreValType{CoreI32}
	case wit.U64, wit.S64:
		return []CoreValType{CoreI64}
	case wit.F32:
		return []CoreValType{CoreF32}
	case wit.F64:
		return []CoreValType{CoreF64}
	case wit.String:
		return []CoreValType{CoreI32, CoreI32} // ptr, len
	case *wit.TypeDef:
		return flattenTypeDef(v)
	default:
		return []CoreValType{CoreI32}
	}
}

func flattenTypeDef(td *wit.TypeDef) []CoreValType {
	if td == nil || td.Kind == nil {
		return []CoreValType{CoreI32}
	}

	switch kind := td.Kind.(type) {
	case *wit.Record:
		var flat []CoreValType
		for _, f := range kind.Fields {
			flat = append(flat, FlattenType(f.Type)...)
		}
		return flat

	case *wit.List:
		return []CoreValType{CoreI32, CoreI32} // ptr, len

	case *wit.Tuple:
		var flat []CoreValType
		for _, t := range kind.Types {
			flat = append(flat, FlattenType(t)...)
		}
		return flat

	case *wit.Enum:
		return []CoreValType{CoreI32}

	case *wit.Flags:
		// One i32 per 32 flags, mirroring the layout side.
		n := (len(kind.Flags) + 31) / 32
		if n < 1 {
			n = 1
		}
		words := make([]CoreValType, n)
		for i := range words {
			words[i] = CoreI32
		}
		return words

	case *wit.Option:
		return flattenTagged([]wit.Type{kind.Type})

	case *wit.Result:
		return flattenTagged([]wit.Type{kind.OK, kind.Err})

	case *wit.Variant:
		payloads := make([]wit.Type, len(kind.Cases))
		for i, c := range kind.Cases {
			payloads[i] = c.Type
		}
		return flattenTagged(payloads)

	case *wit.Own, *wit.Borrow:
		return []CoreValType{CoreI32} // resource handle

	case wit.Type:
		return FlattenType(kind)

	default:
		return []CoreValType{CoreI32}
	}
}

// flattenTagged produces a discriminant word followed by the join of all
// payload flattenings, per the canonical ABI variant rule.
func flattenTagged(payloads []wit.Type) []CoreValType {
	var payload []CoreValType
	for _, t := range payloads {
		if t == nil {
			continue
		}
		for i, ct := range FlattenType(t) {
			if i < len(payload) {
				payload[i] = joinTypes(payload[i], ct)
			} else {
				payload = append(payload, ct)
			}
		}
	}
	return append([]CoreValType{CoreI32}, payload...)
}

// joinTypes unions two core types sharing a variant payload slot.
func joinTypes(a, b CoreValType) CoreValType {
	if a == b {
		return a
	}
	// 32-bit types can share an i32 slot
	if (a == CoreI32 && b == CoreF32) || (a == CoreF32 && b == CoreI32) {
		return CoreI32
	}
	// Different sizes require i64
	return CoreI64
}
