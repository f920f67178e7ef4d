package cassowary

import "testing"

func TestSymbolPacking(t *testing.T) {
	for _, kind := range []SymbolKind{External, Slack, Error, Dummy} {
		sym := newSymbol(kind, 42)
		if sym.Kind() != kind {
			t.Fatalf("Kind() = %v, want %v", sym.Kind(), kind)
		}
		if sym.ID() != 42 {
			t.Fatalf("ID() = %d, want 42", sym.ID())
		}
		if !sym.Valid() {
			t.Fatalf("expected %v to be valid", sym)
		}
	}
}

func TestInvalidSymbol(t *testing.T) {
	if InvalidSymbol.Valid() {
		t.Fatal("InvalidSymbol must not be valid")
	}
	other := newSymbol(Invalid, 0)
	if other != InvalidSymbol {
		t.Fatal("all Invalid symbols with id 0 must compare equal")
	}
}

func TestSymbolRestricted(t *testing.T) {
	cases := map[SymbolKind]bool{
		External: false,
		Slack:    true,
		Error:    true,
		Dummy:    false,
	}
	for kind, want := range cases {
		sym := newSymbol(kind, 1)
		if sym.Restricted() != want {
			t.Fatalf("%v.Restricted() = %v, want %v", kind, sym.Restricted(), want)
		}
	}
}

func TestNearZero(t *testing.T) {
	if !nearZero(0) {
		t.Fatal("0 must be near zero")
	}
	if !nearZero(1e-9) {
		t.Fatal("1e-9 must be near zero")
	}
	if nearZero(1e-6) {
		t.Fatal("1e-6 must not be near zero")
	}
	if !nearZero(-1e-9) {
		t.Fatal("-1e-9 must be near zero")
	}
}
