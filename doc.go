// Package towit provides introspection over WebAssembly interface
// definitions ("wai"/witx-style documents) through a boundary that is safe
// to drive from foreign callers: opaque handles, cursor iterators, boolean
// success flags and per-session error messages.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	to-wit/         Root package documentation
//	├── wai/        Document, function and type descriptors, cursor iterators
//	├── ffi/        Session-scoped boundary: bool + out-parameter dispatch
//	├── witx/       Parser for the wai interface-description dialect
//	├── abi/        Canonical ABI layout and wasm signature calculation
//	└── errors/     Structured error types shared by all packages
//
// # Quick Start
//
// Parse a document and walk a function:
//
//	doc, err := wai.Parse("demo", []byte(src))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Dispose()
//
//	fn, err := doc.FuncByName("area")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	params := fn.Params()
//	defer params.Dispose()
//	for !params.Off() {
//	    td, _ := params.Current()
//	    fmt.Println(td.Name())
//	    _ = params.Next()
//	}
//
// Foreign embedders use the ffi package instead, which exposes the same
// operations behind explicit sessions and disposable opaque handles.
package towit
