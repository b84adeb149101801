package abi

import "go.bytecodealliance.org/wit"

// Canonical ABI flattening limits.
const (
	MaxFlatParams  = 16
	MaxFlatResults = 1
)

// Direction selects which side of the boundary a signature is computed
// for: functions exported by the guest or imported into it.
type Direction uint8

const (
	Export Direction = iota
	Import
)

// Signature is the flat calling-convention shape of one function.
//
// Params and Results hold the core value types the caller passes and
// receives. When the flat parameter count exceeds MaxFlatParams the
// parameters are spilled to memory and Params collapses to a single
// pointer (IndirectParams). When the flat result count exceeds
// MaxFlatResults, RetPtr holds the words written behind the return
// pointer (IndirectResults); for exports the core function then returns
// the pointer, for imports it receives the pointer as a trailing
// parameter and returns nothing.
type Signature struct {
	Params          []CoreValType
	Results         []CoreValType
	RetPtr          []CoreValType
	IndirectParams  bool
	IndirectResults bool
}

// NewSignature computes the flat signature of a function with the given
// parameter and result types.
func NewSignature(dir Direction, params, results []wit.Type) Signature {
	sig := Signature{
		Params:  FlattenTypes(params),
		Results: FlattenTypes(results),
	}

	if len(sig.Params) > MaxFlatParams {
		sig.Params = []CoreValType{CoreI32}
		sig.IndirectParams = true
	}

	if len(sig.Results) > MaxFlatResults {
		sig.RetPtr = sig.Results
		sig.IndirectResults = true
		if dir == Export {
			sig.Results = []CoreValType{CoreI32}
		} else {
			sig.Params = append(sig.Params, CoreI32)
			sig.Results = nil
		}
	}

	return sig
}
