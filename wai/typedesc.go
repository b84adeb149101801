package wai

import (
	"strconv"

	"go.bytecodealliance.org/wit"

	"github.com/singlestore-labs/to-wit/abi"
	"github.com/singlestore-labs/to-wit/errors"
)

// subtype is the resolved nested-type slot of a descriptor. Only lists
// (element type) and expected (ok/err alternatives) carry subtypes worth
// walking into; everything else is noSubtype.
type subtype interface {
	isSubtype()
}

type noSubtype struct{}

type listElement struct {
	elem *TypeDescriptor
}

type expectedAlternatives struct {
	ok  *TypeDescriptor
	err *TypeDescriptor
}

func (noSubtype) isSubtype()            {}
func (listElement) isSubtype()          {}
func (expectedAlternatives) isSubtype() {}

// TypeDescriptor is an immutable view of one type occurrence: the
// occurrence name (parameter, field or case name; empty for nested
// anonymous occurrences), the mapped kind, and the resolved subtypes.
// Distinct occurrences get distinct descriptors even when structurally
// identical.
type TypeDescriptor struct {
	typ    wit.Type
	layout *abi.Calculator
	sub    subtype
	name   string
	kind   Kind
}

// newTypeDescriptor materializes a descriptor and, recursively, the
// descriptors of its interesting subtypes. The AST is finite and acyclic
// once parsing has succeeded, so the recursion terminates.
func newTypeDescriptor(layout *abi.Calculator, name string, t wit.Type) *TypeDescriptor {
	td := &TypeDescriptor{
		typ:    t,
		layout: layout,
		name:   name,
		kind:   mapKind(t),
		sub:    noSubtype{},
	}

	if def, ok := t.(*wit.TypeDef); ok {
		switch kind := def.Kind.(type) {
		case *wit.List:
			td.sub = listElement{
				elem: newTypeDescriptor(layout, "", kind.Type),
			}
		case *wit.Result:
			td.sub = expectedAlternatives{
				ok:  newTypeDescriptor(layout, "", kind.OK),
				err: newTypeDescriptor(layout, "", kind.Err),
			}
		}
	}

	return td
}

// Name returns the occurrence name, empty for anonymous occurrences such
// as list elements and expected alternatives.
func (td *TypeDescriptor) Name() string {
	return td.name
}

// Kind returns the boundary type tag. Unmapped AST kinds report
// KindUnknown together with an Unsupported error; callers must treat that
// as a hard stop for the subtree.
func (td *TypeDescriptor) Kind() (Kind, error) {
	if td.kind == KindUnknown {
		return KindUnknown, errors.Unsupported(errors.PhaseQuery, "type has no boundary representation")
	}
	return td.kind, nil
}

// Align returns the canonical ABI alignment, or 0 for unknown kinds.
func (td *TypeDescriptor) Align() uint32 {
	if td.kind == KindUnknown {
		return 0
	}
	return td.layout.Of(td.typ).Align
}

// Size returns the canonical ABI size, or 0 for unknown kinds.
func (td *TypeDescriptor) Size() uint32 {
	if td.kind == KindUnknown {
		return 0
	}
	return td.layout.Of(td.typ).Size
}

// RecordFields walks the fields of a record.
func (td *TypeDescriptor) RecordFields() (*FieldIter, error) {
	if td.kind != KindRecord {
		return nil, errors.TypeMismatch(errors.PhaseQuery, "field walk", "record", td.kind.String())
	}
	return newFieldIter(td.layout, recordFields(td.typ)), nil
}

// VariantCases walks the cases of a variant (or union, which is a variant
// with ordinal case names).
func (td *TypeDescriptor) VariantCases() (*CaseIter, error) {
	if td.kind != KindVariant && td.kind != KindUnion {
		return nil, errors.TypeMismatch(errors.PhaseQuery, "case walk", "variant", td.kind.String())
	}
	return newCaseIter(td.layout, variantCases(td.typ)), nil
}

// VariantTagWidth returns the discriminant width in bytes: 1, 2 or 4.
func (td *TypeDescriptor) VariantTagWidth() (uint32, error) {
	if td.kind != KindVariant && td.kind != KindUnion {
		return 0, errors.TypeMismatch(errors.PhaseQuery, "tag width", "variant", td.kind.String())
	}
	return abi.DiscriminantSize(len(variantCases(td.typ))), nil
}

// ListElem returns the cached element type of a list.
func (td *TypeDescriptor) ListElem() (*TypeDescriptor, error) {
	sub, ok := td.sub.(listElement)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseQuery, "element access", "list", td.kind.String())
	}
	return sub.elem, nil
}

// ExpectedOK returns the cached ok alternative of an expected.
func (td *TypeDescriptor) ExpectedOK() (*TypeDescriptor, error) {
	sub, ok := td.sub.(expectedAlternatives)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseQuery, "ok access", "expected", td.kind.String())
	}
	return sub.ok, nil
}

// ExpectedErr returns the cached err alternative of an expected.
func (td *TypeDescriptor) ExpectedErr() (*TypeDescriptor, error) {
	sub, ok := td.sub.(expectedAlternatives)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseQuery, "err access", "expected", td.kind.String())
	}
	return sub.err, nil
}

// Structural classification predicates. These are recomputed from the case
// or field list on every call; they are cheap and rarely used, so caching
// them would only add state to keep consistent.

// VariantIsBool reports whether the variant is two payload-free cases
// named false and true.
func (td *TypeDescriptor) VariantIsBool() bool {
	cases := variantCases(td.typ)
	return len(cases) == 2 &&
		cases[0].Name == "false" && cases[0].Type == nil &&
		cases[1].Name == "true" && cases[1].Type == nil
}

// VariantIsOption reports whether the variant is exactly none (no payload)
// plus some.
func (td *TypeDescriptor) VariantIsOption() bool {
	cases := variantCases(td.typ)
	return len(cases) == 2 &&
		cases[0].Name == "none" && cases[0].Type == nil &&
		cases[1].Name == "some"
}

// VariantIsExpected reports whether the variant is exactly ok plus err.
func (td *TypeDescriptor) VariantIsExpected() bool {
	cases := variantCases(td.typ)
	return len(cases) == 2 && cases[0].Name == "ok" && cases[1].Name == "err"
}

// VariantIsEnum reports whether no case carries a payload.
func (td *TypeDescriptor) VariantIsEnum() bool {
	cases := variantCases(td.typ)
	if len(cases) == 0 {
		return false
	}
	for _, c := range cases {
		if c.Type != nil {
			return false
		}
	}
	return true
}

// VariantIsUnion reports whether every case is named by its own ordinal.
func (td *TypeDescriptor) VariantIsUnion() bool {
	return casesAreOrdinal(variantCases(td.typ))
}

// RecordIsTuple reports whether the record's fields are named 0..n-1 in
// order.
func (td *TypeDescriptor) RecordIsTuple() bool {
	fields := recordFields(td.typ)
	if len(fields) == 0 {
		return false
	}
	for i, f := range fields {
		if f.Name != strconv.Itoa(i) {
			return false
		}
	}
	return true
}
