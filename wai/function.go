package wai

// Function is an immutable view of one parsed function: its name, its
// ordinal position in the document, and its eagerly computed signature.
// Functions are owned by their Document and are never disposed
// individually.
type Function struct {
	doc     *Document
	sig     *Signature
	name    string
	params  []namedType
	results []namedType
	index   int
}

// Name returns the function name.
func (f *Function) Name() string {
	return f.name
}

// Index returns the function's ordinal position in the document.
func (f *Function) Index() int {
	return f.index
}

// Params returns a fresh iterator over the function's parameters.
func (f *Function) Params() *TypeIter {
	return newTypeIter(f.doc.layout, f.params)
}

// Results returns a fresh iterator over the function's results.
func (f *Function) Results() *TypeIter {
	return newTypeIter(f.doc.layout, f.results)
}

// Signature returns the flat calling-convention signature, computed for
// the export direction when the document was parsed.
func (f *Function) Signature() *Signature {
	return f.sig
}
