// Package witx parses the wai interface-description dialect into the
// go.bytecodealliance.org/wit object model.
//
// The dialect covers the pre-component-model grammar:
//
//	record point { x: s32, y: s32 }
//	variant shape { circle(f64), square(f64), dot }
//	enum color { red, green, blue }
//	flags perms { read, write }
//	union number { u32, f64 }
//	type bytes = list<u8>
//
//	area: function(p: point) -> s64
//	divide: function(a: s32, b: s32) -> expected<s32, string>
//
// Type expressions: the primitives (bool, char, string, s8..s64, u8..u64,
// f32, f64), unit, list<T>, option<T>, tuple<T, ...>, expected<T, E> and
// references to previously declared names. Forward references and duplicate
// names are errors. Unions lower to variants with ordinal case names.
// Functions may return multiple values with "-> (a, b)"; "-> unit" is the
// same as no arrow at all.
//
// Resource declarations are rejected: the introspection layer has no
// representation for handles.
package witx
