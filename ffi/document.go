package ffi

import (
	"fortio.org/safecast"

	"github.com/singlestore-labs/to-wit/errors"
	"github.com/singlestore-labs/to-wit/wai"
)

// Parse parses interface-description source into a new document handle.
func (s *Session) Parse(sourceName string, data []byte, out **Document) bool {
	return s.capture("parse", func() error {
		if out == nil {
			return errNilOut("parse")
		}
		doc, err := wai.Parse(sourceName, data)
		if err != nil {
			return err
		}
		*out = &Document{doc: doc}
		return nil
	})
}

// DocumentDispose releases a document. Every handle derived from it
// becomes invalid. Disposing twice is an error.
func (s *Session) DocumentDispose(doc *Document) bool {
	return s.capture("document dispose", func() error {
		if err := doc.live(); err != nil {
			return err
		}
		doc.doc.Dispose()
		doc.disposed = true
		return nil
	})
}

// FuncCount writes the number of functions in the document.
func (s *Session) FuncCount(doc *Document, out *uint64) bool {
	return s.capture("func count", func() error {
		if err := doc.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("func count")
		}
		n, err := safecast.Conv[uint64](doc.doc.FuncCount())
		if err != nil {
			return errors.Internal(errors.PhaseBoundary, "func count conversion", err)
		}
		*out = n
		return nil
	})
}

// FuncByIndex writes the handle of the function at the given position in
// declaration order.
func (s *Session) FuncByIndex(doc *Document, index uint64, out **Function) bool {
	return s.capture("func by index", func() error {
		if err := doc.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("func by index")
		}
		i, err := safecast.Conv[int](index)
		if err != nil {
			return errors.InvalidArgument(errors.PhaseBoundary, "function index does not fit")
		}
		fn, err := doc.doc.FuncByIndex(i)
		if err != nil {
			return err
		}
		*out = &Function{fn: fn, owner: doc}
		return nil
	})
}

// FuncByName writes the handle of the function with the given name.
func (s *Session) FuncByName(doc *Document, name string, out **Function) bool {
	return s.capture("func by name", func() error {
		if err := doc.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("func by name")
		}
		fn, err := doc.doc.FuncByName(name)
		if err != nil {
			return err
		}
		*out = &Function{fn: fn, owner: doc}
		return nil
	})
}

// FuncName writes the function's name.
func (s *Session) FuncName(fn *Function, out *string) bool {
	return s.capture("func name", func() error {
		if err := fn.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("func name")
		}
		*out = fn.fn.Name()
		return nil
	})
}

// FuncParamWalk writes a fresh iterator over the function's parameters.
func (s *Session) FuncParamWalk(fn *Function, out **TypeIter) bool {
	return s.capture("func param walk", func() error {
		if err := fn.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("func param walk")
		}
		*out = &TypeIter{it: fn.fn.Params(), owner: fn.owner}
		return nil
	})
}

// FuncResultWalk writes a fresh iterator over the function's results.
func (s *Session) FuncResultWalk(fn *Function, out **TypeIter) bool {
	return s.capture("func result walk", func() error {
		if err := fn.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("func result walk")
		}
		*out = &TypeIter{it: fn.fn.Results(), owner: fn.owner}
		return nil
	})
}

// FuncSignature writes the handle of the function's flat signature.
func (s *Session) FuncSignature(fn *Function, out **Signature) bool {
	return s.capture("func signature", func() error {
		if err := fn.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("func signature")
		}
		*out = &Signature{sig: fn.fn.Signature(), owner: fn.owner}
		return nil
	})
}
