// Package ffi is the foreign-function boundary over the wai core. It is
// shaped for embedders that cannot consume Go errors: every fallible
// operation is a method on a Session that returns a bool, writes its
// result through an out pointer only on success, and records the failure
// message on the session otherwise. Nothing panics across the boundary;
// recovered panics surface as internal errors.
//
// Handles returned by the boundary are opaque wrappers around wai
// objects. Disposing a handle (or the document that owns it) marks it,
// and later use fails with an invalid-argument error instead of
// undefined behavior. Handles and sessions are not synchronized; each
// session and the handles it produced belong to one goroutine at a time.
package ffi
