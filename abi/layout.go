package abi

import (
	"sync"

	"go.bytecodealliance.org/wit"
)

// Layout is the in-memory footprint of one type.
type Layout struct {
	Size  uint32
	Align uint32
}

// Calculator computes canonical-ABI layouts with a per-TypeDef cache.
// The cache fills lazily as types are first measured, so it is guarded by
// a mutex and safe for concurrent readers of the same document. Layouts
// are pure functions of the type, so a racing recomputation stores the
// same value.
type Calculator struct {
	mu    sync.Mutex
	cache map[*wit.TypeDef]Layout
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Layout),
	}
}

// Of returns the layout of t. The nil type (unit) occupies no space.
func (c *Calculator) Of(t wit.Type) Layout {
	switch typ := t.(type) {
	case nil:
		return Layout{Size: 0, Align: 1}
	case wit.U8, wit.S8, wit.Bool:
		return Layout{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return Layout{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return Layout{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return Layout{Size: 8, Align: 8}
	case wit.String:
		return Layout{Size: 8, Align: 4} // [ptr: u32, len: u32]
	case *wit.TypeDef:
		return c.ofTypeDef(typ)
	default:
		return Layout{Size: 0, Align: 1}
	}
}

func (c *Calculator) ofTypeDef(t *wit.TypeDef) Layout {
	c.mu.Lock()
	cached, ok := c.cache[t]
	c.mu.Unlock()
	if ok {
		return cached
	}

	// Computed outside the lock: ofTypeDef recurses through nested types.
	var l Layout

	switch kind := t.Kind.(type) {
	case *wit.Record:
		l = c.ofFields(kind.Fields)
	case *wit.Variant:
		l = c.ofVariant(kind)
	case *wit.Enum:
		size := DiscriminantSize(len(kind.Cases))
		l = Layout{Size: size, Align: size}
	case *wit.List:
		l = Layout{Size: 8, Align: 4}
	case *wit.Option:
		l = c.ofTagged(1, []wit.Type{kind.Type})
	case *wit.Result:
		l = c.ofTagged(1, []wit.Type{kind.OK, kind.Err})
	case *wit.Tuple:
		l = c.ofSequence(kind.Types)
	case *wit.Flags:
		l = ofFlags(len(kind.Flags))
	case wit.Type:
		l = c.Of(kind)
	default:
		l = Layout{Size: 0, Align: 1}
	}

	c.mu.Lock()
	c.cache[t] = l
	c.mu.Unlock()
	return l
}

func (c *Calculator) ofFields(fields []wit.Field) Layout {
	types := make([]wit.Type, len(fields))
	for i, f := range fields {
		types[i] = f.Type
	}
	return c.ofSequence(types)
}

// ofSequence lays types out one after another, aligning each to its own
// alignment and padding the total to the max alignment.
func (c *Calculator) ofSequence(types []wit.Type) Layout {
	if len(types) == 0 {
		return Layout{Size: 0, Align: 1}
	}

	maxAlign := uint32(1)
	offset := uint32(0)

	for _, t := range types {
		l := c.Of(t)
		offset = AlignTo(offset, l.Align)
		if l.Align > maxAlign {
			maxAlign = l.Align
		}
		offset += l.Size
	}

	return Layout{
		Size:  AlignTo(offset, maxAlign),
		Align: maxAlign,
	}
}

// ofTagged lays out a discriminant followed by the largest payload.
// Nil payload entries (unit alternatives) contribute nothing.
func (c *Calculator) ofTagged(discSize uint32, payloads []wit.Type) Layout {
	maxAlign := discSize
	maxSize := uint32(0)

	for _, t := range payloads {
		if t == nil {
			continue
		}
		l := c.Of(t)
		if l.Align > maxAlign {
			maxAlign = l.Align
		}
		if l.Size > maxSize {
			maxSize = l.Size
		}
	}

	payloadOffset := AlignTo(discSize, maxAlign)
	return Layout{
		Size:  AlignTo(payloadOffset+maxSize, maxAlign),
		Align: maxAlign,
	}
}

func (c *Calculator) ofVariant(v *wit.Variant) Layout {
	if len(v.Cases) == 0 {
		return Layout{Size: 0, Align: 1}
	}
	payloads := make([]wit.Type, len(v.Cases))
	for i, cs := range v.Cases {
		payloads[i] = cs.Type
	}
	return c.ofTagged(DiscriminantSize(len(v.Cases)), payloads)
}

func ofFlags(n int) Layout {
	switch {
	case n == 0:
		return Layout{Size: 0, Align: 1}
	case n <= 8:
		return Layout{Size: 1, Align: 1}
	case n <= 16:
		return Layout{Size: 2, Align: 2}
	case n <= 32:
		return Layout{Size: 4, Align: 4}
	case n <= 64:
		return Layout{Size: 8, Align: 8}
	default:
		// >64 flags: multiple u32s per canonical ABI
		return Layout{Size: uint32((n + 31) / 32 * 4), Align: 4}
	}
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uint32) uint32 {
	return (offset + align - 1) / align * align
}

// DiscriminantSize is 1 byte for <=256 cases, 2 for <=65536, else 4.
func DiscriminantSize(numCases int) uint32 {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}
