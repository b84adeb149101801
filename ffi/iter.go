package ffi

// Iterator operations come in three families over the same cursor shape:
// TypeIter for parameters and results, FieldIter for record fields,
// CaseIter for variant cases. Off is a pure predicate and never touches
// the session; a nil or dead iterator reads as off.

// TypeIterOff reports whether the iterator is exhausted.
func (s *Session) TypeIterOff(it *TypeIter) bool {
	if it.live() != nil {
		return true
	}
	return it.it.Off()
}

// TypeIterNext advances the iterator.
func (s *Session) TypeIterNext(it *TypeIter) bool {
	return s.capture("type iter next", func() error {
		if err := it.live(); err != nil {
			return err
		}
		return it.it.Next()
	})
}

// TypeIterAt writes the typedef handle under the iterator.
func (s *Session) TypeIterAt(it *TypeIter, out **TypeDef) bool {
	return s.capture("type iter at", func() error {
		if err := it.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("type iter at")
		}
		td, err := it.it.Current()
		if err != nil {
			return err
		}
		*out = &TypeDef{td: td, owner: it.owner}
		return nil
	})
}

// TypeIterDispose releases the iterator. The document is unaffected.
func (s *Session) TypeIterDispose(it *TypeIter) bool {
	return s.capture("type iter dispose", func() error {
		if err := it.live(); err != nil {
			return err
		}
		it.it.Dispose()
		it.disposed = true
		return nil
	})
}

// FieldIterOff reports whether the iterator is exhausted.
func (s *Session) FieldIterOff(it *FieldIter) bool {
	if it.live() != nil {
		return true
	}
	return it.it.Off()
}

// FieldIterNext advances the iterator.
func (s *Session) FieldIterNext(it *FieldIter) bool {
	return s.capture("field iter next", func() error {
		if err := it.live(); err != nil {
			return err
		}
		return it.it.Next()
	})
}

// FieldIterAt writes the typedef handle under the iterator.
func (s *Session) FieldIterAt(it *FieldIter, out **TypeDef) bool {
	return s.capture("field iter at", func() error {
		if err := it.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("field iter at")
		}
		td, err := it.it.Current()
		if err != nil {
			return err
		}
		*out = &TypeDef{td: td, owner: it.owner}
		return nil
	})
}

// FieldIterDispose releases the iterator.
func (s *Session) FieldIterDispose(it *FieldIter) bool {
	return s.capture("field iter dispose", func() error {
		if err := it.live(); err != nil {
			return err
		}
		it.it.Dispose()
		it.disposed = true
		return nil
	})
}

// CaseIterOff reports whether the iterator is exhausted.
func (s *Session) CaseIterOff(it *CaseIter) bool {
	if it.live() != nil {
		return true
	}
	return it.it.Off()
}

// CaseIterNext advances the iterator.
func (s *Session) CaseIterNext(it *CaseIter) bool {
	return s.capture("case iter next", func() error {
		if err := it.live(); err != nil {
			return err
		}
		return it.it.Next()
	})
}

// CaseIterAt writes the typedef handle under the iterator.
func (s *Session) CaseIterAt(it *CaseIter, out **TypeDef) bool {
	return s.capture("case iter at", func() error {
		if err := it.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("case iter at")
		}
		td, err := it.it.Current()
		if err != nil {
			return err
		}
		*out = &TypeDef{td: td, owner: it.owner}
		return nil
	})
}

// CaseIterDispose releases the iterator.
func (s *Session) CaseIterDispose(it *CaseIter) bool {
	return s.capture("case iter dispose", func() error {
		if err := it.live(); err != nil {
			return err
		}
		it.it.Dispose()
		it.disposed = true
		return nil
	})
}
