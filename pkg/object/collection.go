package object

import (
	"fmt"
	"strings"
)

type keyKind uint8

const (
	keyIndex keyKind = iota
	keyString
	keyNumber
)

// CollectionKey is a comparable key: a positional index, a string, or a
// non-integer number key kept in its printed form.
type CollectionKey struct {
	kind  keyKind
	index int
	str   string
}

func IndexKey(i int) CollectionKey      { return CollectionKey{kind: keyIndex, index: i} }
func StringKey(s string) CollectionKey  { return CollectionKey{kind: keyString, str: s} }
func NumberKey(v float64) CollectionKey { return CollectionKey{kind: keyNumber, str: FormatNumber(v)} }

func (k CollectionKey) String() string {
	switch k.kind {
	case keyIndex:
		return fmt.Sprintf("%d", k.index)
	default:
		return k.str
	}
}

// Collection is the one aggregate value: it behaves like an array when all
// keys are positional indices and like a record otherwise. size tracks the
// array-like extent (one past the highest index ever inserted).
type Collection struct {
	entries map[CollectionKey]Object
	size    int
}

func NewCollection() *Collection {
	return &Collection{entries: make(map[CollectionKey]Object)}
}

func CollectionFromElements(elements []Object) *Collection {
	c := NewCollection()
	for _, el := range elements {
		c.Push(el)
	}
	return c
}

func (c *Collection) Kind() ObjectKind { return KindCollection }

func (c *Collection) Inspect() string {
	var out strings.Builder
	out.WriteString("[")
	if c.IsArrayLike() {
		for i := 0; i < c.size; i++ {
			if i > 0 {
				out.WriteString(", ")
			}
			if val, ok := c.entries[IndexKey(i)]; ok {
				out.WriteString(val.Inspect())
			} else {
				out.WriteString("nil")
			}
		}
	} else {
		first := true
		for key, val := range c.entries {
			if !first {
				out.WriteString(", ")
			}
			out.WriteString(key.String())
			out.WriteString(" = ")
			out.WriteString(val.Inspect())
			first = false
		}
	}
	out.WriteString("]")
	return out.String()
}

func (c *Collection) Get(key CollectionKey) (Object, bool) {
	val, ok := c.entries[key]
	return val, ok
}

func (c *Collection) GetByIndex(i int) (Object, bool) {
	return c.Get(IndexKey(i))
}

func (c *Collection) GetByString(s string) (Object, bool) {
	return c.Get(StringKey(s))
}

func (c *Collection) Insert(key CollectionKey, value Object) {
	if key.kind == keyIndex && key.index >= c.size {
		c.size = key.index + 1
	}
	c.entries[key] = value
}

func (c *Collection) Push(value Object) {
	c.entries[IndexKey(c.size)] = value
	c.size++
}

func (c *Collection) Pop() (Object, bool) {
	if c.size == 0 {
		return nil, false
	}
	c.size--
	key := IndexKey(c.size)
	val, ok := c.entries[key]
	delete(c.entries, key)
	return val, ok
}

func (c *Collection) Len() int {
	if c.IsArrayLike() {
		return c.size
	}
	return len(c.entries)
}

func (c *Collection) IsArrayLike() bool {
	if c.size > 0 {
		return true
	}
	for k := range c.entries {
		if k.kind != keyIndex {
			return false
		}
	}
	return true
}
