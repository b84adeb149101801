package ffi

import (
	"github.com/singlestore-labs/to-wit/errors"
	"github.com/singlestore-labs/to-wit/wai"
)

// Document is an opaque handle to a parsed interface description. All
// other handles are derived from a document and die with it.
type Document struct {
	doc      *wai.Document
	disposed bool
}

// Function is an opaque handle to one function of a document.
type Function struct {
	fn    *wai.Function
	owner *Document
}

// TypeDef is an opaque handle to one type occurrence. TypeDef handles
// are views owned by their document; they have no dispose operation.
type TypeDef struct {
	td    *wai.TypeDescriptor
	owner *Document
}

// Signature is an opaque handle to a function's flat signature.
type Signature struct {
	sig   *wai.Signature
	owner *Document
}

// TypeIter walks function parameters or results.
type TypeIter struct {
	it       *wai.TypeIter
	owner    *Document
	disposed bool
}

// FieldIter walks record fields.
type FieldIter struct {
	it       *wai.FieldIter
	owner    *Document
	disposed bool
}

// CaseIter walks variant cases.
type CaseIter struct {
	it       *wai.CaseIter
	owner    *Document
	disposed bool
}

func errNilHandle(what string) error {
	return errors.InvalidArgument(errors.PhaseBoundary, "nil "+what+" handle")
}

func errDisposed(what string) error {
	return errors.InvalidArgument(errors.PhaseBoundary, what+" handle used after dispose")
}

func errNilOut(op string) error {
	return errors.InvalidArgument(errors.PhaseBoundary, op+": nil out pointer")
}

// live validates a document handle.
func (d *Document) live() error {
	if d == nil {
		return errNilHandle("document")
	}
	if d.disposed || d.doc == nil || d.doc.Disposed() {
		return errDisposed("document")
	}
	return nil
}

func (f *Function) live() error {
	if f == nil {
		return errNilHandle("function")
	}
	return f.owner.live()
}

func (t *TypeDef) live() error {
	if t == nil {
		return errNilHandle("typedef")
	}
	return t.owner.live()
}

func (s *Signature) live() error {
	if s == nil {
		return errNilHandle("signature")
	}
	return s.owner.live()
}

func (it *TypeIter) live() error {
	if it == nil {
		return errNilHandle("type iterator")
	}
	if it.disposed {
		return errDisposed("type iterator")
	}
	return it.owner.live()
}

func (it *FieldIter) live() error {
	if it == nil {
		return errNilHandle("field iterator")
	}
	if it.disposed {
		return errDisposed("field iterator")
	}
	return it.owner.live()
}

func (it *CaseIter) live() error {
	if it == nil {
		return errNilHandle("case iterator")
	}
	if it.disposed {
		return errDisposed("case iterator")
	}
	return it.owner.live()
}
