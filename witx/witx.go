package witx

import (
	"go.bytecodealliance.org/wit"

	"github.com/singlestore-labs/to-wit/witx/internal/token"
)

// Param is one named function parameter.
type Param struct {
	Type wit.Type
	Name string
}

// Function is one parsed function declaration. Results are a list: the
// dialect supports multiple return values via "-> (a, b)".
type Function struct {
	Name    string
	Params  []Param
	Results []wit.Type
}

// Interface is a parsed interface-description document. Types use the
// go.bytecodealliance.org/wit object model; "unit" is the nil wit.Type.
type Interface struct {
	NamedTypes map[string]wit.Type
	Name       string
	TypeDecls  []string // declaration order of NamedTypes keys
	Functions  []*Function
}

// Parse parses interface-description source text. The returned Interface
// and everything reachable from it is immutable.
func Parse(name, text string) (*Interface, error) {
	p := newParser(name, token.Tokenize(text))
	return p.parse()
}
