package value

import "testing"

func TestEqual_NullNeverEqual(t *testing.T) {
	if Null().Equal(Null()) {
		t.Error("null must not equal null")
	}
	if Null().Equal(Int64(1)) || Int64(1).Equal(Null()) {
		t.Error("null must not equal a value")
	}

	// A null nested anywhere poisons equality too.
	a := List(Int64(1), Null())
	b := List(Int64(1), Null())
	if a.Equal(b) {
		t.Error("lists with nested nulls must not compare equal")
	}
}

func TestIdentical_NullsMatch(t *testing.T) {
	if !Null().Identical(Null()) {
		t.Error("null must be identical to null")
	}
	a := List(Int64(1), Null())
	b := List(Int64(1), Null())
	if !a.Identical(b) {
		t.Error("identical lists with nested nulls must match")
	}
	if a.Identical(List(Int64(1), Int64(2))) {
		t.Error("different lists must not match")
	}
}

func TestEqual_Struct(t *testing.T) {
	a := Struct(
		Field{Name: "icd", Value: String("A123")},
		Field{Name: "n", Value: Int64(1)},
	)
	b := Struct(
		Field{Name: "icd", Value: String("A123")},
		Field{Name: "n", Value: Int64(1)},
	)
	if !a.Equal(b) {
		t.Error("structs with equal fields must compare equal")
	}

	c := Struct(
		Field{Name: "other", Value: String("A123")},
		Field{Name: "n", Value: Int64(1)},
	)
	if a.Equal(c) {
		t.Error("structs with different field names must not compare equal")
	}
}

func TestGetField(t *testing.T) {
	s := Struct(Field{Name: "a", Value: Int64(5)})
	v, ok := s.GetField("a")
	if !ok || !v.Identical(Int64(5)) {
		t.Errorf("expected 5, got %s (ok=%v)", v, ok)
	}
	if _, ok := s.GetField("missing"); ok {
		t.Error("expected missing field lookup to fail")
	}
}

func TestString_Rendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Int64(42), "42"},
		{Bool(true), "true"},
		{String("ab"), `"ab"`},
		{Enum("L"), "L"},
		{DateOf(2020, 1, 1), "2020-01-01"},
		{List(Int64(1), Null()), "[1, null]"},
		{Struct(Field{Name: "a", Value: Int64(1)}), "{a: 1}"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}
