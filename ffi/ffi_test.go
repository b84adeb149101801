package ffi

import (
	"strings"
	"testing"

	"github.com/singlestore-labs/to-wit/wai"
)

const demoSource = `
record point {
    x: f32,
    y: f32,
}

area: function(p: point) -> f32
scale: function(p: point, by: f32) -> point
parse-point: function(s: string) -> expected<point, string>
`

func parseDemo(t *testing.T, s *Session) *Document {
	t.Helper()
	var doc *Document
	if !s.Parse("demo", []byte(demoSource), &doc) {
		t.Fatalf("Parse failed: %s", s.LastError())
	}
	return doc
}

func TestSessionErrorLifecycle(t *testing.T) {
	s := NewSession()
	if s.LastError() != "" {
		t.Fatalf("fresh session has error %q", s.LastError())
	}

	var doc *Document
	if s.Parse("bad", []byte("record {"), &doc) {
		t.Fatal("Parse of invalid source succeeded")
	}
	if s.LastError() == "" {
		t.Fatal("failed Parse left no error message")
	}
	if doc != nil {
		t.Fatal("out pointer written on failure")
	}

	// A successful operation clears the pending error.
	if !s.Parse("demo", []byte(demoSource), &doc) {
		t.Fatalf("Parse failed: %s", s.LastError())
	}
	if s.LastError() != "" {
		t.Errorf("successful Parse left error %q", s.LastError())
	}

	if s.Parse("bad", []byte("record {"), new(*Document)) {
		t.Fatal("Parse of invalid source succeeded")
	}
	s.ClearError()
	if s.LastError() != "" {
		t.Errorf("ClearError left %q", s.LastError())
	}
}

func TestFunctionLookup(t *testing.T) {
	s := NewSession()
	doc := parseDemo(t, s)

	var count uint64
	if !s.FuncCount(doc, &count) {
		t.Fatalf("FuncCount: %s", s.LastError())
	}
	if count != 3 {
		t.Fatalf("FuncCount: got %d, want 3", count)
	}

	var fn *Function
	if !s.FuncByIndex(doc, 1, &fn) {
		t.Fatalf("FuncByIndex: %s", s.LastError())
	}
	var name string
	if !s.FuncName(fn, &name) {
		t.Fatalf("FuncName: %s", s.LastError())
	}
	if name != "scale" {
		t.Errorf("FuncName: got %q, want scale", name)
	}

	if s.FuncByIndex(doc, 3, &fn) {
		t.Error("FuncByIndex past the end succeeded")
	}
	if !strings.Contains(s.LastError(), "not found") {
		t.Errorf("error message: got %q", s.LastError())
	}

	if !s.FuncByName(doc, "parse-point", &fn) {
		t.Fatalf("FuncByName: %s", s.LastError())
	}
	if s.FuncByName(doc, "missing", &fn) {
		t.Error("FuncByName of unknown function succeeded")
	}
}

func TestParamWalk(t *testing.T) {
	s := NewSession()
	doc := parseDemo(t, s)

	var fn *Function
	if !s.FuncByName(doc, "scale", &fn) {
		t.Fatalf("FuncByName: %s", s.LastError())
	}

	var it *TypeIter
	if !s.FuncParamWalk(fn, &it) {
		t.Fatalf("FuncParamWalk: %s", s.LastError())
	}

	var names []string
	var kinds []wai.Kind
	for !s.TypeIterOff(it) {
		var td *TypeDef
		if !s.TypeIterAt(it, &td) {
			t.Fatalf("TypeIterAt: %s", s.LastError())
		}
		var name string
		var kind wai.Kind
		if !s.TypeDefName(td, &name) || !s.TypeDefKind(td, &kind) {
			t.Fatalf("typedef query: %s", s.LastError())
		}
		names = append(names, name)
		kinds = append(kinds, kind)
		if !s.TypeIterNext(it) {
			t.Fatalf("TypeIterNext: %s", s.LastError())
		}
	}
	if !s.TypeIterDispose(it) {
		t.Fatalf("TypeIterDispose: %s", s.LastError())
	}

	if len(names) != 2 || names[0] != "p" || names[1] != "by" {
		t.Errorf("param names: got %v", names)
	}
	if len(kinds) != 2 || kinds[0] != wai.KindRecord || kinds[1] != wai.KindF32 {
		t.Errorf("param kinds: got %v", kinds)
	}

	// Advancing an exhausted, disposed iterator is an error, not a crash.
	if s.TypeIterNext(it) {
		t.Error("TypeIterNext after dispose succeeded")
	}
	if !s.TypeIterOff(it) {
		t.Error("disposed iterator does not read as off")
	}
}

func TestRecordFieldWalk(t *testing.T) {
	s := NewSession()
	doc := parseDemo(t, s)

	var fn *Function
	var it *TypeIter
	var td *TypeDef
	if !s.FuncByName(doc, "area", &fn) ||
		!s.FuncParamWalk(fn, &it) ||
		!s.TypeIterAt(it, &td) {
		t.Fatalf("setup: %s", s.LastError())
	}

	var fit *FieldIter
	if !s.RecordFieldWalk(td, &fit) {
		t.Fatalf("RecordFieldWalk: %s", s.LastError())
	}

	var fields []string
	for !s.FieldIterOff(fit) {
		var fd *TypeDef
		if !s.FieldIterAt(fit, &fd) {
			t.Fatalf("FieldIterAt: %s", s.LastError())
		}
		var name string
		var size, align uint32
		if !s.TypeDefName(fd, &name) || !s.TypeDefSize(fd, &size) || !s.TypeDefAlign(fd, &align) {
			t.Fatalf("field query: %s", s.LastError())
		}
		if size != 4 || align != 4 {
			t.Errorf("field %q layout: got %d/%d, want 4/4", name, size, align)
		}
		fields = append(fields, name)
		if !s.FieldIterNext(fit) {
			t.Fatalf("FieldIterNext: %s", s.LastError())
		}
	}
	if len(fields) != 2 || fields[0] != "x" || fields[1] != "y" {
		t.Errorf("fields: got %v", fields)
	}

	// Field walk of a non-record fails with a type mismatch.
	var rit *TypeIter
	var f32td *TypeDef
	var fn2 *Function
	if !s.FuncByName(doc, "scale", &fn2) ||
		!s.FuncParamWalk(fn2, &rit) ||
		!s.TypeIterNext(rit) ||
		!s.TypeIterAt(rit, &f32td) {
		t.Fatalf("setup: %s", s.LastError())
	}
	var bad *FieldIter
	if s.RecordFieldWalk(f32td, &bad) {
		t.Error("RecordFieldWalk on f32 succeeded")
	}
	if !strings.Contains(s.LastError(), "type_mismatch") {
		t.Errorf("error message: got %q", s.LastError())
	}
}

func TestExpectedSubtypes(t *testing.T) {
	s := NewSession()
	doc := parseDemo(t, s)

	var fn *Function
	var rit *TypeIter
	var td *TypeDef
	if !s.FuncByName(doc, "parse-point", &fn) ||
		!s.FuncResultWalk(fn, &rit) ||
		!s.TypeIterAt(rit, &td) {
		t.Fatalf("setup: %s", s.LastError())
	}

	var kind wai.Kind
	if !s.TypeDefKind(td, &kind) {
		t.Fatalf("TypeDefKind: %s", s.LastError())
	}
	if kind != wai.KindExpected {
		t.Fatalf("result kind: got %v, want expected", kind)
	}

	var okTd, errTd *TypeDef
	if !s.ExpectedOKGet(td, &okTd) || !s.ExpectedErrGet(td, &errTd) {
		t.Fatalf("expected subtypes: %s", s.LastError())
	}
	var okKind, errKind wai.Kind
	if !s.TypeDefKind(okTd, &okKind) || !s.TypeDefKind(errTd, &errKind) {
		t.Fatalf("subtype kinds: %s", s.LastError())
	}
	if okKind != wai.KindRecord {
		t.Errorf("ok kind: got %v, want record", okKind)
	}
	if errKind != wai.KindString {
		t.Errorf("err kind: got %v, want string", errKind)
	}

	if s.ListElemGet(td, new(*TypeDef)) {
		t.Error("ListElemGet on expected succeeded")
	}
}

func TestVariantOps(t *testing.T) {
	s := NewSession()
	var doc *Document
	if !s.Parse("demo", []byte(`
variant shape { circle(f64), square(f64), dot }
f: function(s: shape)
`), &doc) {
		t.Fatalf("Parse: %s", s.LastError())
	}

	var fn *Function
	var it *TypeIter
	var td *TypeDef
	if !s.FuncByIndex(doc, 0, &fn) ||
		!s.FuncParamWalk(fn, &it) ||
		!s.TypeIterAt(it, &td) {
		t.Fatalf("setup: %s", s.LastError())
	}

	var width uint32
	if !s.VariantTagWidth(td, &width) {
		t.Fatalf("VariantTagWidth: %s", s.LastError())
	}
	if width != 1 {
		t.Errorf("tag width: got %d, want 1", width)
	}

	var cit *CaseIter
	if !s.VariantCaseWalk(td, &cit) {
		t.Fatalf("VariantCaseWalk: %s", s.LastError())
	}
	var cases []string
	for !s.CaseIterOff(cit) {
		var cd *TypeDef
		if !s.CaseIterAt(cit, &cd) {
			t.Fatalf("CaseIterAt: %s", s.LastError())
		}
		var name string
		if !s.TypeDefName(cd, &name) {
			t.Fatalf("TypeDefName: %s", s.LastError())
		}
		cases = append(cases, name)
		if !s.CaseIterNext(cit) {
			t.Fatalf("CaseIterNext: %s", s.LastError())
		}
	}
	if !s.CaseIterDispose(cit) {
		t.Fatalf("CaseIterDispose: %s", s.LastError())
	}
	if len(cases) != 3 || cases[0] != "circle" || cases[2] != "dot" {
		t.Errorf("cases: got %v", cases)
	}
}

func TestSignatureOps(t *testing.T) {
	s := NewSession()
	doc := parseDemo(t, s)

	var fn *Function
	var sig *Signature
	if !s.FuncByName(doc, "parse-point", &fn) || !s.FuncSignature(fn, &sig) {
		t.Fatalf("setup: %s", s.LastError())
	}

	var n uint64
	if !s.SigPartLength(sig, wai.SigParams, &n) {
		t.Fatalf("SigPartLength: %s", s.LastError())
	}
	if n != 2 {
		t.Errorf("params length: got %d, want 2", n)
	}

	var w wai.WordKind
	if !s.SigPartWord(sig, wai.SigParams, 0, &w) {
		t.Fatalf("SigPartWord: %s", s.LastError())
	}
	if w != wai.WordI32 {
		t.Errorf("param word 0: got %v, want i32", w)
	}
	if s.SigPartWord(sig, wai.SigParams, 2, &w) {
		t.Error("SigPartWord past the end succeeded")
	}

	// expected<point, string> flattens past the single-word result limit.
	var ind bool
	if !s.SigPartIndirect(sig, wai.SigResults, &ind) {
		t.Fatalf("SigPartIndirect: %s", s.LastError())
	}
	if !ind {
		t.Error("results should be indirect")
	}
	if !s.SigPartLength(sig, wai.SigRetPtr, &n) {
		t.Fatalf("SigPartLength(retptr): %s", s.LastError())
	}
	if n == 0 {
		t.Error("retptr part is empty")
	}
}

func TestDisposedAndNilHandles(t *testing.T) {
	s := NewSession()
	doc := parseDemo(t, s)

	var fn *Function
	if !s.FuncByIndex(doc, 0, &fn) {
		t.Fatalf("FuncByIndex: %s", s.LastError())
	}

	if !s.DocumentDispose(doc) {
		t.Fatalf("DocumentDispose: %s", s.LastError())
	}
	if s.DocumentDispose(doc) {
		t.Error("double dispose succeeded")
	}

	var count uint64
	if s.FuncCount(doc, &count) {
		t.Error("FuncCount on disposed document succeeded")
	}
	if !strings.Contains(s.LastError(), "dispose") {
		t.Errorf("error message: got %q", s.LastError())
	}

	// Handles derived from the document die with it.
	var name string
	if s.FuncName(fn, &name) {
		t.Error("FuncName on function of disposed document succeeded")
	}

	if s.FuncCount(nil, &count) {
		t.Error("FuncCount on nil document succeeded")
	}
	if s.FuncName(nil, &name) {
		t.Error("FuncName on nil function succeeded")
	}
	if !s.TypeIterOff(nil) {
		t.Error("TypeIterOff(nil): got false, want true")
	}
	if s.TypeIterNext(nil) {
		t.Error("TypeIterNext(nil) succeeded")
	}
}

func TestNilOutPointer(t *testing.T) {
	s := NewSession()
	doc := parseDemo(t, s)

	if s.FuncCount(doc, nil) {
		t.Error("FuncCount with nil out succeeded")
	}
	if !strings.Contains(s.LastError(), "out pointer") {
		t.Errorf("error message: got %q", s.LastError())
	}
	if s.Parse("demo", []byte(demoSource), nil) {
		t.Error("Parse with nil out succeeded")
	}
}

func TestNilSession(t *testing.T) {
	var s *Session
	if s.LastError() != "" {
		t.Error("nil session has error text")
	}
	s.ClearError()
	var doc *Document
	if s.Parse("demo", []byte(demoSource), &doc) {
		t.Error("Parse on nil session succeeded")
	}
}
