package wai

// Kind is the closed type taxonomy exposed across the boundary. Values are
// part of the boundary contract: new tags are appended and retired tags
// (CChar, Usize) keep their codes so embedders never see a renumbering.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindS8
	KindS16
	KindS32
	KindS64
	KindF32
	KindF64
	KindChar
	KindCChar
	KindUsize
	KindRecord
	KindList
	KindUnknown
	KindVariant
	KindTuple
	KindEnum
	KindFlags
	KindUnion
	KindOption
	KindExpected
	KindBool
	KindString
	KindUnit
)

var kindNames = [...]string{
	KindU8:       "u8",
	KindU16:      "u16",
	KindU32:      "u32",
	KindU64:      "u64",
	KindS8:       "s8",
	KindS16:      "s16",
	KindS32:      "s32",
	KindS64:      "s64",
	KindF32:      "f32",
	KindF64:      "f64",
	KindChar:     "char",
	KindCChar:    "cchar",
	KindUsize:    "usize",
	KindRecord:   "record",
	KindList:     "list",
	KindUnknown:  "unknown",
	KindVariant:  "variant",
	KindTuple:    "tuple",
	KindEnum:     "enum",
	KindFlags:    "flags",
	KindUnion:    "union",
	KindOption:   "option",
	KindExpected: "expected",
	KindBool:     "bool",
	KindString:   "string",
	KindUnit:     "unit",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether k is a scalar or string kind with no nested
// structure to walk into.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindU8, KindU16, KindU32, KindU64,
		KindS8, KindS16, KindS32, KindS64,
		KindF32, KindF64, KindChar, KindCChar, KindUsize,
		KindBool, KindString, KindUnit:
		return true
	}
	return false
}
