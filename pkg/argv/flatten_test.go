// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"slices"
	"testing"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		variant string
		fields  []Field
		want    []string
	}{
		{
			name:    "unit variant",
			variant: "Empty",
			want:    []string{"empty"},
		},
		{
			name:    "text fields",
			variant: "Mock",
			fields: []Field{
				{"with", Text("with")},
				{"without", Text("without")},
				{"path", Path("foo/bar/file.text")},
			},
			want: []string{"mock", "--with", "with", "--without", "without", "--path", "foo/bar/file.text"},
		},
		{
			name:    "absent optional omitted",
			variant: "Run",
			fields: []Field{
				{"or_not", None()},
				{"level", Int(1)},
			},
			want: []string{"run", "--level", "1"},
		},
		{
			name:    "present optional keyed",
			variant: "Run",
			fields:  []Field{{"or_not", Some(Text("yes"))}},
			want:    []string{"run", "--or-not", "yes"},
		},
		{
			name:    "nested record spliced without key",
			variant: "Nested",
			fields: []Field{
				{"level", Int(1)},
				{"sub", Record("SubStruct", Field{"a", Int(0)}, Field{"b", Int(1)})},
			},
			want: []string{"nested", "--level", "1", "--a", "0", "--b", "1"},
		},
		{
			name:    "present optional record keyed",
			variant: "Nested",
			fields:  []Field{{"sub", Some(Record("SubStruct", Field{"a", Int(7)}))}},
			want:    []string{"nested", "--sub", "--a", "7"},
		},
		{
			name:    "present optional empty record omitted",
			variant: "Nested",
			fields:  []Field{{"sub", Some(Record("Unit"))}},
			want:    []string{"nested"},
		},
		{
			name:    "absent optional record omitted",
			variant: "Nested",
			fields:  []Field{{"sub", None()}, {"level", Int(2)}},
			want:    []string{"nested", "--level", "2"},
		},
		{
			name:    "empty nested record contributes nothing",
			variant: "Nested",
			fields:  []Field{{"sub", Record("Unit")}},
			want:    []string{"nested"},
		},
		{
			name:    "deeply nested records",
			variant: "Outer",
			fields: []Field{
				{"mid", Record("Mid", Field{"x", Int(1)}, Field{"inner", Record("Inner", Field{"y", Int(2)})})},
			},
			want: []string{"outer", "--x", "1", "--y", "2"},
		},
		{
			name:    "snake_case field becomes kebab key",
			variant: "GenSomething",
			fields: []Field{
				{"something_to_gen", Uint(2)},
				{"tuple", PairOf(Int(1), Int(2))},
				{"variables", Seq(PairOf(Int(1), Int(2)), PairOf(Int(3), Int(4)))},
			},
			want: []string{"gen-something", "--something-to-gen", "2", "--tuple", "1->2", "--variables", "1->2,3->4"},
		},
		{
			name:    "empty sequence still keyed",
			variant: "List",
			fields:  []Field{{"items", Seq()}},
			want:    []string{"list", "--items", ""},
		},
		{
			name:    "nil field value treated as absent",
			variant: "Run",
			fields:  []Field{{"maybe", nil}},
			want:    []string{"run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Flatten(tt.variant, tt.fields); !slices.Equal(got, tt.want) {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlatten_TokenCount(t *testing.T) {
	t.Parallel()

	fields := []Field{
		{"a", Int(1)},
		{"b", None()},
		{"c", Some(Text("x"))},
		{"d", Seq(Int(1), Int(2))},
		{"e", PairOf(Int(1), Int(2))},
	}
	// 1 name + 2 per single-token value field; the absent optional adds 0.
	want := 1 + 2*4
	if got := len(Flatten("Count", fields)); got != want {
		t.Errorf("len(Flatten()) = %d, want %d", got, want)
	}
}

func TestRecordValue_Tokens(t *testing.T) {
	t.Parallel()

	rec := RecordValue{Name: "GenSomething", Fields: []Field{{"x", Int(1)}}}
	want := []string{"gen-something", "--x", "1"}
	if got := rec.Tokens(); !slices.Equal(got, want) {
		t.Errorf("Tokens() = %q, want %q", got, want)
	}
}

func TestFlatten_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	fields := []Field{{"a_b", Int(1)}}
	_ = Flatten("X", fields)
	if fields[0].Name != "a_b" {
		t.Errorf("field name mutated to %q", fields[0].Name)
	}
}

func TestFlatten_PresentOptionalMatchesMandatoryShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		inner Value
	}{
		{"scalar", Int(3)},
		{"path", Path("a/b")},
		{"sequence", Seq(Int(1), Int(2))},
		{"empty sequence", Seq()},
		{"pair", PairOf(Text("k"), Int(1))},
		{"fallback", Display(struct{}{})},
		{"nested optional", Some(Text("x"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mandatory := Flatten("V", []Field{{"field", tt.inner}})
			optional := Flatten("V", []Field{{"field", Some(tt.inner)}})
			if !slices.Equal(optional, mandatory) {
				t.Errorf("Flatten(Some(x)) = %q, Flatten(x) = %q", optional, mandatory)
			}
		})
	}

	t.Run("record", func(t *testing.T) {
		t.Parallel()
		rec := Record("Sub", Field{"a", Int(7)}, Field{"b_c", Seq(Int(1))})
		want := append([]string{"v", "--field"}, Encode(rec)...)
		if got := Flatten("V", []Field{{"field", Some(rec)}}); !slices.Equal(got, want) {
			t.Errorf("Flatten(Some(record)) = %q, want %q", got, want)
		}
		if got := len(Flatten("V", []Field{{"field", rec}})); got != len(want)-1 {
			t.Errorf("mandatory record contributed %d tokens, want %d", got-1, len(want)-2)
		}
	})
}
