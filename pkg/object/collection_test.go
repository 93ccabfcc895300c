package object

import "testing"

func TestCollectionPushPop(t *testing.T) {
	c := NewCollection()
	c.Push(&Number{Value: 1})
	c.Push(&Number{Value: 2})
	c.Push(&Number{Value: 3})

	if c.Len() != 3 {
		t.Fatalf("Len expected=3, got=%d", c.Len())
	}

	val, ok := c.Pop()
	if !ok {
		t.Fatalf("Pop on non-empty collection failed")
	}
	if num := val.(*Number); num.Value != 3 {
		t.Errorf("Pop expected=3, got=%s", val.Inspect())
	}
	if c.Len() != 2 {
		t.Errorf("Len after pop expected=2, got=%d", c.Len())
	}

	c.Pop()
	c.Pop()
	if _, ok := c.Pop(); ok {
		t.Errorf("Pop on empty collection should fail")
	}
}

func TestCollectionGetAndInsert(t *testing.T) {
	c := NewCollection()
	c.Push(&Number{Value: 10})
	c.Insert(StringKey("host"), &String{Value: "localhost"})
	c.Insert(NumberKey(1.5), &String{Value: "half"})

	val, ok := c.GetByIndex(0)
	if !ok {
		t.Fatalf("GetByIndex(0) failed")
	}
	if val.(*Number).Value != 10 {
		t.Errorf("GetByIndex(0) expected=10, got=%s", val.Inspect())
	}

	val, ok = c.GetByString("host")
	if !ok {
		t.Fatalf("GetByString failed")
	}
	if val.(*String).Value != "localhost" {
		t.Errorf("GetByString expected=localhost, got=%s", val.Inspect())
	}

	if _, ok := c.Get(NumberKey(1.5)); !ok {
		t.Errorf("Get(NumberKey(1.5)) failed")
	}
	if _, ok := c.GetByString("missing"); ok {
		t.Errorf("lookup of missing key should fail")
	}
}

func TestCollectionInsertExtendsSize(t *testing.T) {
	c := NewCollection()
	c.Insert(IndexKey(2), &Number{Value: 5})

	if c.Len() != 3 {
		t.Fatalf("Len expected=3 after insert at index 2, got=%d", c.Len())
	}

	c.Push(&Number{Value: 6})
	val, ok := c.GetByIndex(3)
	if !ok || val.(*Number).Value != 6 {
		t.Errorf("Push after sparse insert should land at index 3")
	}
}

func TestCollectionIsArrayLike(t *testing.T) {
	arr := NewCollection()
	arr.Push(&Number{Value: 1})
	if !arr.IsArrayLike() {
		t.Errorf("pushed-only collection should be array-like")
	}

	rec := NewCollection()
	rec.Insert(StringKey("a"), &Number{Value: 1})
	if rec.IsArrayLike() {
		t.Errorf("string-keyed collection should not be array-like")
	}

	if !NewCollection().IsArrayLike() {
		t.Errorf("empty collection should be array-like")
	}
}

func TestCollectionInspect(t *testing.T) {
	arr := CollectionFromElements([]Object{
		&Number{Value: 1},
		&Number{Value: 2},
		&Number{Value: 3},
	})
	if got := arr.Inspect(); got != "[1, 2, 3]" {
		t.Errorf("array inspect expected=%q, got=%q", "[1, 2, 3]", got)
	}

	rec := NewCollection()
	rec.Insert(StringKey("a"), &Number{Value: 1})
	if got := rec.Inspect(); got != "[a = 1]" {
		t.Errorf("record inspect expected=%q, got=%q", "[a = 1]", got)
	}
}
