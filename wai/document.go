package wai

import (
	"unicode/utf8"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/singlestore-labs/to-wit/abi"
	"github.com/singlestore-labs/to-wit/errors"
	"github.com/singlestore-labs/to-wit/witx"
)

// Document owns a parsed interface description: the function descriptors
// in declaration order, the name index, and the layout calculator shared
// by every type descriptor derived from it. After Parse returns, a
// Document is immutable and safe for concurrent readers until Dispose.
type Document struct {
	layout *abi.Calculator
	byName map[string]*Function
	name   string
	funcs  []*Function
}

// Parse parses interface-description source into a Document. The input
// must be valid UTF-8. Function descriptors and their signatures are
// built eagerly, so every later query is a pure read.
func Parse(sourceName string, data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, errors.InvalidArgument(errors.PhaseParse, "input is not valid UTF-8")
	}

	iface, err := witx.Parse(sourceName, string(data))
	if err != nil {
		return nil, err
	}

	d := &Document{
		name:   sourceName,
		layout: abi.NewCalculator(),
		byName: make(map[string]*Function, len(iface.Functions)),
	}

	for i, fn := range iface.Functions {
		// The parser already rejects duplicates; never overwrite silently
		// if that ever stops being true.
		if _, ok := d.byName[fn.Name]; ok {
			return nil, errors.Internal(errors.PhaseParse, "duplicate function name "+fn.Name, nil)
		}

		params := make([]namedType, len(fn.Params))
		paramTypes := make([]wit.Type, len(fn.Params))
		for j, p := range fn.Params {
			params[j] = namedType{name: p.Name, typ: p.Type}
			paramTypes[j] = p.Type
		}
		results := make([]namedType, len(fn.Results))
		for j, rt := range fn.Results {
			results[j] = namedType{typ: rt}
		}

		f := &Function{
			doc:     d,
			name:    fn.Name,
			index:   i,
			params:  params,
			results: results,
			sig:     newSignature(abi.NewSignature(abi.Export, paramTypes, fn.Results)),
		}
		d.funcs = append(d.funcs, f)
		d.byName[fn.Name] = f
	}

	Logger().Debug("parsed document",
		zap.String("source", sourceName),
		zap.Int("functions", len(d.funcs)),
		zap.Int("types", len(iface.TypeDecls)))

	return d, nil
}

// FuncCount returns the number of functions in the document.
func (d *Document) FuncCount() int {
	return len(d.funcs)
}

// FuncByIndex returns the i-th function in declaration order.
func (d *Document) FuncByIndex(i int) (*Function, error) {
	if i < 0 || i >= len(d.funcs) {
		return nil, errors.IndexNotFound(errors.PhaseQuery, "function", i, len(d.funcs))
	}
	f := d.funcs[i]
	// Cross-check the positional table against the name index.
	if d.byName[f.name] != f {
		return nil, errors.Internal(errors.PhaseQuery, "function index out of sync with name map", nil)
	}
	return f, nil
}

// FuncByName returns the function with the given name.
func (d *Document) FuncByName(name string) (*Function, error) {
	f, ok := d.byName[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseQuery, "function", name)
	}
	return f, nil
}

// Dispose releases the document. Descriptors and iterators derived from
// it must not be used afterward.
func (d *Document) Dispose() {
	d.funcs = nil
	d.byName = nil
	d.layout = nil
}

// Disposed reports whether Dispose has been called.
func (d *Document) Disposed() bool {
	return d.byName == nil
}
