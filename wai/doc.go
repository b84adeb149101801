// Package wai is the introspection core over parsed interface
// descriptions. Parse builds an immutable Document from source text;
// from there, functions are looked up by index or name, their parameter
// and result types are walked through single-pass iterators, and each
// type occurrence is described by a TypeDescriptor carrying its kind,
// canonical ABI layout, and resolved subtypes. Function signatures are
// flattened to core machine words at parse time.
//
// Documents own everything derived from them: disposing a document
// invalidates its functions, descriptors and iterators. Iterators are
// independent cursors; walking the same sequence twice yields distinct
// descriptor values for the same underlying types.
package wai
