package wai

import (
	"go.bytecodealliance.org/wit"

	"github.com/singlestore-labs/to-wit/abi"
	"github.com/singlestore-labs/to-wit/errors"
)

// cursor is a single-pass iterator over an ordered source sequence. It
// starts positioned at the first element (or off, when the source is
// empty); advancing materializes the next item, including its recursive
// subtype resolution. One cursor shape backs all three iterator families,
// which differ only in the source element type.
type cursor[S any] struct {
	src  []S
	item func(S) *TypeDescriptor
	cur  *TypeDescriptor
}

func newCursor[S any](src []S, item func(S) *TypeDescriptor) cursor[S] {
	c := cursor[S]{src: src, item: item}
	if len(src) > 0 {
		c.cur = item(src[0])
		c.src = src[1:]
	}
	return c
}

// off reports whether the cursor is past the end.
func (c *cursor[S]) off() bool {
	return c.cur == nil
}

// advance moves to the next element; advancing an exhausted cursor is an
// error.
func (c *cursor[S]) advance() error {
	if c.cur == nil {
		return errors.OutOfBounds(errors.PhaseQuery, "iterator advanced past its end")
	}
	if len(c.src) == 0 {
		c.cur = nil
		return nil
	}
	c.cur = c.item(c.src[0])
	c.src = c.src[1:]
	return nil
}

// current returns the item under the cursor.
func (c *cursor[S]) current() (*TypeDescriptor, error) {
	if c.cur == nil {
		return nil, errors.OutOfBounds(errors.PhaseQuery, "iterator read past its end")
	}
	return c.cur, nil
}

// dispose drops the source and the current item; subsequent reads behave
// as exhausted.
func (c *cursor[S]) dispose() {
	c.src = nil
	c.cur = nil
	c.item = nil
}

// namedType is one parameter or result: results have empty names.
type namedType struct {
	typ  wit.Type
	name string
}

// TypeIter walks function parameters or results.
type TypeIter struct {
	c cursor[namedType]
}

func newTypeIter(layout *abi.Calculator, src []namedType) *TypeIter {
	return &TypeIter{c: newCursor(src, func(nt namedType) *TypeDescriptor {
		return newTypeDescriptor(layout, nt.name, nt.typ)
	})}
}

// Off reports whether the iterator is exhausted. A nil iterator is
// treated as exhausted.
func (it *TypeIter) Off() bool {
	return it == nil || it.c.off()
}

// Next advances to the next entry.
func (it *TypeIter) Next() error {
	if it == nil {
		return errors.OutOfBounds(errors.PhaseQuery, "iterator advanced past its end")
	}
	return it.c.advance()
}

// Current returns the descriptor under the iterator.
func (it *TypeIter) Current() (*TypeDescriptor, error) {
	if it == nil {
		return nil, errors.OutOfBounds(errors.PhaseQuery, "iterator read past its end")
	}
	return it.c.current()
}

// Dispose releases the iterator. The underlying document is unaffected.
func (it *TypeIter) Dispose() {
	if it != nil {
		it.c.dispose()
	}
}

// FieldIter walks record fields.
type FieldIter struct {
	c cursor[wit.Field]
}

func newFieldIter(layout *abi.Calculator, fields []wit.Field) *FieldIter {
	return &FieldIter{c: newCursor(fields, func(f wit.Field) *TypeDescriptor {
		return newTypeDescriptor(layout, f.Name, f.Type)
	})}
}

func (it *FieldIter) Off() bool {
	return it == nil || it.c.off()
}

func (it *FieldIter) Next() error {
	if it == nil {
		return errors.OutOfBounds(errors.PhaseQuery, "iterator advanced past its end")
	}
	return it.c.advance()
}

func (it *FieldIter) Current() (*TypeDescriptor, error) {
	if it == nil {
		return nil, errors.OutOfBounds(errors.PhaseQuery, "iterator read past its end")
	}
	return it.c.current()
}

func (it *FieldIter) Dispose() {
	if it != nil {
		it.c.dispose()
	}
}

// CaseIter walks variant cases. Cases without a payload yield a unit
// descriptor carrying the case name.
type CaseIter struct {
	c cursor[wit.Case]
}

func newCaseIter(layout *abi.Calculator, cases []wit.Case) *CaseIter {
	return &CaseIter{c: newCursor(cases, func(cs wit.Case) *TypeDescriptor {
		return newTypeDescriptor(layout, cs.Name, cs.Type)
	})}
}

func (it *CaseIter) Off() bool {
	return it == nil || it.c.off()
}

func (it *CaseIter) Next() error {
	if it == nil {
		return errors.OutOfBounds(errors.PhaseQuery, "iterator advanced past its end")
	}
	return it.c.advance()
}

func (it *CaseIter) Current() (*TypeDescriptor, error) {
	if it == nil {
		return nil, errors.OutOfBounds(errors.PhaseQuery, "iterator read past its end")
	}
	return it.c.current()
}

func (it *CaseIter) Dispose() {
	if it != nil {
		it.c.dispose()
	}
}
