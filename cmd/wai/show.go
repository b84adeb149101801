package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/singlestore-labs/to-wit/ffi"
	"github.com/singlestore-labs/to-wit/wai"
)

var showCmd = &cobra.Command{
	Use:   "show FILE FUNC",
	Short: "Show the signature and type tree of one function",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		s := ffi.NewSession()
		doc, err := parseFile(s, args[0])
		if err != nil {
			return err
		}
		defer s.DocumentDispose(doc)

		var fn *ffi.Function
		if !s.FuncByName(doc, args[1], &fn) {
			return sessionErr(s, "func by name")
		}

		fmt.Println(titleStyle.Render(args[1]))

		if err := showSignature(s, fn); err != nil {
			return err
		}

		var params *ffi.TypeIter
		if !s.FuncParamWalk(fn, &params) {
			return sessionErr(s, "param walk")
		}
		fmt.Println("Params:")
		if err := showTypeList(s, params); err != nil {
			return err
		}

		var results *ffi.TypeIter
		if !s.FuncResultWalk(fn, &results) {
			return sessionErr(s, "result walk")
		}
		fmt.Println("Results:")
		return showTypeList(s, results)
	},
}

func showSignature(s *ffi.Session, fn *ffi.Function) error {
	var sig *ffi.Signature
	if !s.FuncSignature(fn, &sig) {
		return sessionErr(s, "func signature")
	}

	parts := []struct {
		part wai.SigPart
		name string
	}{
		{wai.SigParams, "params"},
		{wai.SigResults, "results"},
		{wai.SigRetPtr, "retptr"},
	}

	fmt.Println("Signature:")
	for _, p := range parts {
		var n uint64
		if !s.SigPartLength(sig, p.part, &n) {
			return sessionErr(s, "sig part length")
		}
		words := make([]string, n)
		for i := uint64(0); i < n; i++ {
			var w wai.WordKind
			if !s.SigPartWord(sig, p.part, i, &w) {
				return sessionErr(s, "sig part word")
			}
			words[i] = w.String()
		}
		var indirect bool
		if !s.SigPartIndirect(sig, p.part, &indirect) {
			return sessionErr(s, "sig part indirect")
		}
		line := fmt.Sprintf("  %-8s (%s)", p.name, strings.Join(words, ", "))
		if indirect {
			line += dimStyle.Render(" indirect")
		}
		fmt.Println(line)
	}
	return nil
}

// showTypeList prints every entry of a type iterator as a recursive tree.
func showTypeList(s *ffi.Session, it *ffi.TypeIter) error {
	defer s.TypeIterDispose(it)
	for !s.TypeIterOff(it) {
		var td *ffi.TypeDef
		if !s.TypeIterAt(it, &td) {
			return sessionErr(s, "type iter at")
		}
		if err := showType(s, td, 1); err != nil {
			return err
		}
		if !s.TypeIterNext(it) {
			return sessionErr(s, "type iter next")
		}
	}
	return nil
}

// showType prints one type occurrence and recurses into record fields,
// variant cases, list elements and expected alternatives.
func showType(s *ffi.Session, td *ffi.TypeDef, depth int) error {
	var name string
	var kind wai.Kind
	var size, align uint32
	if !s.TypeDefName(td, &name) {
		return sessionErr(s, "typedef name")
	}
	if !s.TypeDefKind(td, &kind) {
		// Unsupported kinds terminate the subtree but not the listing.
		fmt.Printf("%s%s %s\n",
			strings.Repeat("  ", depth),
			label(name),
			errorStyle.Render("<unsupported>"))
		return nil
	}
	if !s.TypeDefSize(td, &size) || !s.TypeDefAlign(td, &align) {
		return sessionErr(s, "typedef layout")
	}

	fmt.Printf("%s%s%s %s\n",
		strings.Repeat("  ", depth),
		label(name),
		typeStyle.Render(kind.String()),
		dimStyle.Render(fmt.Sprintf("(size=%d, align=%d)", size, align)))

	switch kind {
	case wai.KindRecord:
		var fit *ffi.FieldIter
		if !s.RecordFieldWalk(td, &fit) {
			return sessionErr(s, "record field walk")
		}
		defer s.FieldIterDispose(fit)
		for !s.FieldIterOff(fit) {
			var fd *ffi.TypeDef
			if !s.FieldIterAt(fit, &fd) {
				return sessionErr(s, "field iter at")
			}
			if err := showType(s, fd, depth+1); err != nil {
				return err
			}
			if !s.FieldIterNext(fit) {
				return sessionErr(s, "field iter next")
			}
		}

	case wai.KindVariant, wai.KindUnion:
		var width uint32
		if !s.VariantTagWidth(td, &width) {
			return sessionErr(s, "variant tag width")
		}
		fmt.Printf("%s%s\n",
			strings.Repeat("  ", depth+1),
			dimStyle.Render(fmt.Sprintf("tag: %d byte(s)", width)))
		var cit *ffi.CaseIter
		if !s.VariantCaseWalk(td, &cit) {
			return sessionErr(s, "variant case walk")
		}
		defer s.CaseIterDispose(cit)
		for !s.CaseIterOff(cit) {
			var cd *ffi.TypeDef
			if !s.CaseIterAt(cit, &cd) {
				return sessionErr(s, "case iter at")
			}
			if err := showType(s, cd, depth+1); err != nil {
				return err
			}
			if !s.CaseIterNext(cit) {
				return sessionErr(s, "case iter next")
			}
		}

	case wai.KindList:
		var elem *ffi.TypeDef
		if !s.ListElemGet(td, &elem) {
			return sessionErr(s, "list elem get")
		}
		return showType(s, elem, depth+1)

	case wai.KindExpected:
		var okTd, errTd *ffi.TypeDef
		if !s.ExpectedOKGet(td, &okTd) || !s.ExpectedErrGet(td, &errTd) {
			return sessionErr(s, "expected alternatives")
		}
		if err := showType(s, okTd, depth+1); err != nil {
			return err
		}
		return showType(s, errTd, depth+1)
	}

	return nil
}

func label(name string) string {
	if name == "" {
		return ""
	}
	return funcStyle.Render(name) + ": "
}
