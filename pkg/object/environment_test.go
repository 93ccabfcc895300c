package object

import "testing"

func TestEnvironmentSetAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Number{Value: 5})

	val, ok := env.Get("x")
	if !ok {
		t.Fatalf("Get failed for bound name")
	}
	if val.(*Number).Value != 5 {
		t.Errorf("expected=5, got=%s", val.Inspect())
	}

	if _, ok := env.Get("missing"); ok {
		t.Errorf("Get should fail for unbound name")
	}
}

func TestEnvironmentRebinding(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Number{Value: 1})
	env.Set("x", &Number{Value: 2})

	val, _ := env.Get("x")
	if val.(*Number).Value != 2 {
		t.Errorf("last write should win, got=%s", val.Inspect())
	}
}

func TestEnvironmentAssign(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Number{Value: 1})

	if !env.Assign("x", &Number{Value: 9}) {
		t.Fatalf("Assign failed for declared name")
	}
	val, _ := env.Get("x")
	if val.(*Number).Value != 9 {
		t.Errorf("expected=9, got=%s", val.Inspect())
	}

	if env.Assign("y", &Number{Value: 1}) {
		t.Errorf("Assign should fail for undeclared name")
	}
}

func TestEnclosedEnvironment(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("a", &Number{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("b", &Number{Value: 2})

	if _, ok := inner.Get("a"); !ok {
		t.Errorf("inner scope should see outer bindings")
	}
	if _, ok := outer.Get("b"); ok {
		t.Errorf("outer scope should not see inner bindings")
	}

	// Shadowing: Set in the inner scope leaves the outer binding intact.
	inner.Set("a", &Number{Value: 10})
	val, _ := outer.Get("a")
	if val.(*Number).Value != 1 {
		t.Errorf("outer binding changed by inner Set, got=%s", val.Inspect())
	}

	// Assign rebinds in the declaring scope.
	if !inner.Assign("b", &Number{Value: 20}) {
		t.Fatalf("Assign in inner scope failed")
	}
	if !NewEnclosedEnvironment(outer).Assign("a", &Number{Value: 3}) {
		t.Fatalf("Assign should walk to the outer scope")
	}
	val, _ = outer.Get("a")
	if val.(*Number).Value != 3 {
		t.Errorf("Assign through child should update outer, got=%s", val.Inspect())
	}
}
