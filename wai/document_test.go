package wai

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/singlestore-labs/to-wit/errors"
)

const demoSource = `
record point {
    x: f32,
    y: f32,
}

enum color { red, green, blue }

area: function(p: point) -> f32
translate: function(p: point, dx: f32, dy: f32) -> point
name-of: function(c: color) -> string
`

func mustParse(t *testing.T, source string) *Document {
	t.Helper()
	doc, err := Parse("demo", []byte(source))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestParseAndLookup(t *testing.T) {
	doc := mustParse(t, demoSource)

	if got := doc.FuncCount(); got != 3 {
		t.Fatalf("FuncCount: got %d, want 3", got)
	}

	wantNames := []string{"area", "translate", "name-of"}
	for i, want := range wantNames {
		f, err := doc.FuncByIndex(i)
		if err != nil {
			t.Fatalf("FuncByIndex(%d): %v", i, err)
		}
		if f.Name() != want {
			t.Errorf("FuncByIndex(%d).Name: got %q, want %q", i, f.Name(), want)
		}
		if f.Index() != i {
			t.Errorf("FuncByIndex(%d).Index: got %d", i, f.Index())
		}

		byName, err := doc.FuncByName(want)
		if err != nil {
			t.Fatalf("FuncByName(%q): %v", want, err)
		}
		if byName != f {
			t.Errorf("FuncByName(%q) and FuncByIndex(%d) disagree", want, i)
		}
	}
}

func TestFuncLookupErrors(t *testing.T) {
	doc := mustParse(t, demoSource)

	for _, i := range []int{-1, 3, 100} {
		_, err := doc.FuncByIndex(i)
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseQuery, Kind: errors.KindNotFound}) {
			t.Errorf("FuncByIndex(%d): got %v, want query/not_found", i, err)
		}
	}

	_, err := doc.FuncByName("no-such-function")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseQuery, Kind: errors.KindNotFound}) {
		t.Errorf("FuncByName: got %v, want query/not_found", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source []byte
		kind   errors.Kind
	}{
		{"invalid utf-8", []byte{0x72, 0xff, 0xfe}, errors.KindInvalidArgument},
		{"syntax error", []byte("record {"), errors.KindParse},
		{"unknown type", []byte("f: function(x: nope)"), errors.KindParse},
		{"resource decl", []byte("resource file { }"), errors.KindParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("demo", tt.source)
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: tt.kind}) {
				t.Errorf("got %v, want parse/%s", err, tt.kind)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	doc := mustParse(t, "")
	if got := doc.FuncCount(); got != 0 {
		t.Errorf("FuncCount: got %d, want 0", got)
	}
}

func TestFunctionParamsAndResults(t *testing.T) {
	doc := mustParse(t, demoSource)

	f, err := doc.FuncByName("translate")
	if err != nil {
		t.Fatal(err)
	}

	wantParams := []struct {
		name string
		kind Kind
	}{
		{"p", KindRecord},
		{"dx", KindF32},
		{"dy", KindF32},
	}
	it := f.Params()
	for _, want := range wantParams {
		if it.Off() {
			t.Fatalf("params exhausted before %q", want.name)
		}
		td, err := it.Current()
		if err != nil {
			t.Fatal(err)
		}
		if td.Name() != want.name {
			t.Errorf("param name: got %q, want %q", td.Name(), want.name)
		}
		kind, err := td.Kind()
		if err != nil {
			t.Fatal(err)
		}
		if kind != want.kind {
			t.Errorf("param %q kind: got %v, want %v", want.name, kind, want.kind)
		}
		if err := it.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if !it.Off() {
		t.Error("params iterator not exhausted after last parameter")
	}

	rit := f.Results()
	td, err := rit.Current()
	if err != nil {
		t.Fatal(err)
	}
	if td.Name() != "" {
		t.Errorf("result name: got %q, want empty", td.Name())
	}
	kind, err := td.Kind()
	if err != nil {
		t.Fatal(err)
	}
	if kind != KindRecord {
		t.Errorf("result kind: got %v, want record", kind)
	}
}

func TestEmptyResults(t *testing.T) {
	doc := mustParse(t, "ping: function()")
	f, err := doc.FuncByIndex(0)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Results().Off() {
		t.Error("results of a unit function should start exhausted")
	}
}

func TestMultipleResults(t *testing.T) {
	doc := mustParse(t, "split: function(s: string) -> (string, string)")
	f, err := doc.FuncByName("split")
	if err != nil {
		t.Fatal(err)
	}

	it := f.Results()
	count := 0
	for !it.Off() {
		td, err := it.Current()
		if err != nil {
			t.Fatal(err)
		}
		kind, err := td.Kind()
		if err != nil {
			t.Fatal(err)
		}
		if kind != KindString {
			t.Errorf("result %d kind: got %v, want string", count, kind)
		}
		count++
		if err := it.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if count != 2 {
		t.Errorf("results: got %d, want 2", count)
	}
}

func TestIndependentIterators(t *testing.T) {
	doc := mustParse(t, demoSource)
	f, err := doc.FuncByName("translate")
	if err != nil {
		t.Fatal(err)
	}

	a := f.Params()
	b := f.Params()
	if err := a.Next(); err != nil {
		t.Fatal(err)
	}
	if err := a.Next(); err != nil {
		t.Fatal(err)
	}

	td, err := b.Current()
	if err != nil {
		t.Fatal(err)
	}
	if td.Name() != "p" {
		t.Errorf("second iterator moved with the first: got %q", td.Name())
	}
}

func TestPointArea(t *testing.T) {
	doc := mustParse(t, `
record Point { x: s32, y: s32 }
area: function(p: Point) -> s64
`)

	if got := doc.FuncCount(); got != 1 {
		t.Fatalf("FuncCount: got %d, want 1", got)
	}
	f, err := doc.FuncByName("area")
	if err != nil {
		t.Fatal(err)
	}

	p, err := f.Params().Current()
	if err != nil {
		t.Fatal(err)
	}
	kind, err := p.Kind()
	if err != nil {
		t.Fatal(err)
	}
	if kind != KindRecord {
		t.Fatalf("param kind: got %v, want record", kind)
	}

	fit, err := p.RecordFields()
	if err != nil {
		t.Fatal(err)
	}
	var fields []string
	for !fit.Off() {
		fd, err := fit.Current()
		if err != nil {
			t.Fatal(err)
		}
		fields = append(fields, fd.Name())
		kind, err := fd.Kind()
		if err != nil {
			t.Fatal(err)
		}
		if kind != KindS32 {
			t.Errorf("field %q kind: got %v, want s32", fd.Name(), kind)
		}
		if err := fit.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if len(fields) != 2 || fields[0] != "x" || fields[1] != "y" {
		t.Errorf("fields: got %v", fields)
	}

	r, err := f.Results().Current()
	if err != nil {
		t.Fatal(err)
	}
	kind, err = r.Kind()
	if err != nil {
		t.Fatal(err)
	}
	if kind != KindS64 {
		t.Errorf("result kind: got %v, want s64", kind)
	}
}

// Two independent walks resolve subtypes to distinct descriptor instances
// that agree on everything observable.
func TestSubtypeResolutionIdempotence(t *testing.T) {
	doc := mustParse(t, `
record item { id: u32, label: string }
f: function(xs: list<item>)
`)
	f, err := doc.FuncByIndex(0)
	if err != nil {
		t.Fatal(err)
	}

	walk := func() *TypeDescriptor {
		td, err := f.Params().Current()
		if err != nil {
			t.Fatal(err)
		}
		elem, err := td.ListElem()
		if err != nil {
			t.Fatal(err)
		}
		return elem
	}

	a, b := walk(), walk()
	if a == b {
		t.Fatal("independent walks returned the same descriptor instance")
	}
	ka, erra := a.Kind()
	kb, errb := b.Kind()
	if erra != nil || errb != nil {
		t.Fatal(erra, errb)
	}
	if ka != kb || a.Name() != b.Name() || a.Align() != b.Align() || a.Size() != b.Size() {
		t.Errorf("walks disagree: %v/%q/%d/%d vs %v/%q/%d/%d",
			ka, a.Name(), a.Align(), a.Size(),
			kb, b.Name(), b.Align(), b.Size())
	}
}

// A parsed document is shared read-only; concurrent walks from several
// goroutines must agree on every layout they measure. Run with -race.
func TestConcurrentWalks(t *testing.T) {
	doc := mustParse(t, `
record item { id: u32, label: string }
f: function(xs: list<item>) -> list<item>
`)
	f, err := doc.FuncByIndex(0)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				td, err := f.Params().Current()
				if err != nil {
					t.Error(err)
					return
				}
				if td.Size() != 8 || td.Align() != 4 {
					t.Errorf("list layout: got %d/%d, want 8/4", td.Size(), td.Align())
					return
				}
				elem, err := td.ListElem()
				if err != nil {
					t.Error(err)
					return
				}
				if elem.Size() != 12 || elem.Align() != 4 {
					t.Errorf("item layout: got %d/%d, want 12/4", elem.Size(), elem.Align())
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDispose(t *testing.T) {
	doc := mustParse(t, demoSource)
	if doc.Disposed() {
		t.Fatal("fresh document reports disposed")
	}
	doc.Dispose()
	if !doc.Disposed() {
		t.Fatal("disposed document reports live")
	}
	if got := doc.FuncCount(); got != 0 {
		t.Errorf("FuncCount after dispose: got %d, want 0", got)
	}
}
