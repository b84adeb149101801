// Package abi computes canonical-ABI properties of wit types: memory
// layout (size and alignment) and the flat core-wasm signature of a
// function for a given calling direction.
//
// Layout follows the canonical ABI rules:
//
//	Type            Size    Alignment
//	──────────────────────────────────
//	bool            1       1
//	u8/s8           1       1
//	u16/s16         2       2
//	u32/s32/f32     4       4
//	u64/s64/f64     8       8
//	char            4       4
//	string          8       4 (ptr + len)
//	list<T>         8       4 (ptr + len)
//	record          sum     max field align
//	variant         varies  max(disc, case align)
//	option<T>       1+size  max(1, T align)
//	flags           1/2/4/8 per bit count
//
// Signatures flatten parameters and results to core value types
// (i32/i64/f32/f64). When the flat parameter count exceeds MaxFlatParams
// the parameters are passed indirectly through a single pointer; when the
// flat result count exceeds MaxFlatResults the results travel through a
// return pointer and the RetPtr part records the words stored behind it.
package abi
