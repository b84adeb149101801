package ffi

import (
	"github.com/singlestore-labs/to-wit/wai"
)

// TypeDefName writes the occurrence name of the type: the parameter,
// field or case name, or the empty string for anonymous occurrences.
func (s *Session) TypeDefName(td *TypeDef, out *string) bool {
	return s.capture("typedef name", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("typedef name")
		}
		*out = td.td.Name()
		return nil
	})
}

// TypeDefKind writes the boundary kind tag of the type.
func (s *Session) TypeDefKind(td *TypeDef, out *wai.Kind) bool {
	return s.capture("typedef kind", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("typedef kind")
		}
		kind, err := td.td.Kind()
		if err != nil {
			return err
		}
		*out = kind
		return nil
	})
}

// TypeDefAlign writes the canonical ABI alignment of the type.
func (s *Session) TypeDefAlign(td *TypeDef, out *uint32) bool {
	return s.capture("typedef align", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("typedef align")
		}
		*out = td.td.Align()
		return nil
	})
}

// TypeDefSize writes the canonical ABI size of the type.
func (s *Session) TypeDefSize(td *TypeDef, out *uint32) bool {
	return s.capture("typedef size", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("typedef size")
		}
		*out = td.td.Size()
		return nil
	})
}

// RecordFieldWalk writes a fresh iterator over a record's fields.
func (s *Session) RecordFieldWalk(td *TypeDef, out **FieldIter) bool {
	return s.capture("record field walk", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("record field walk")
		}
		it, err := td.td.RecordFields()
		if err != nil {
			return err
		}
		*out = &FieldIter{it: it, owner: td.owner}
		return nil
	})
}

// VariantCaseWalk writes a fresh iterator over a variant's cases.
func (s *Session) VariantCaseWalk(td *TypeDef, out **CaseIter) bool {
	return s.capture("variant case walk", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("variant case walk")
		}
		it, err := td.td.VariantCases()
		if err != nil {
			return err
		}
		*out = &CaseIter{it: it, owner: td.owner}
		return nil
	})
}

// VariantTagWidth writes the discriminant width of a variant in bytes.
func (s *Session) VariantTagWidth(td *TypeDef, out *uint32) bool {
	return s.capture("variant tag width", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("variant tag width")
		}
		width, err := td.td.VariantTagWidth()
		if err != nil {
			return err
		}
		*out = width
		return nil
	})
}

// ListElemGet writes the element type of a list.
func (s *Session) ListElemGet(td *TypeDef, out **TypeDef) bool {
	return s.capture("list elem get", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("list elem get")
		}
		elem, err := td.td.ListElem()
		if err != nil {
			return err
		}
		*out = &TypeDef{td: elem, owner: td.owner}
		return nil
	})
}

// ExpectedOKGet writes the ok alternative of an expected type.
func (s *Session) ExpectedOKGet(td *TypeDef, out **TypeDef) bool {
	return s.capture("expected ok get", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("expected ok get")
		}
		alt, err := td.td.ExpectedOK()
		if err != nil {
			return err
		}
		*out = &TypeDef{td: alt, owner: td.owner}
		return nil
	})
}

// ExpectedErrGet writes the err alternative of an expected type.
func (s *Session) ExpectedErrGet(td *TypeDef, out **TypeDef) bool {
	return s.capture("expected err get", func() error {
		if err := td.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("expected err get")
		}
		alt, err := td.td.ExpectedErr()
		if err != nil {
			return err
		}
		*out = &TypeDef{td: alt, owner: td.owner}
		return nil
	})
}
