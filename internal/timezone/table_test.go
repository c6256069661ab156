package timezone

import (
	"reflect"
	"testing"
)

func abc() *Table {
	t := NewTable()
	t.Replace([]Offset{{"a", 1}, {"b", 2}, {"c", 3}})
	return t
}

func TestNewTable(t *testing.T) {
	tbl := NewTable(DefaultSeeds...)
	want := []string{"UTC", "PDT", "JST"}
	if got := tbl.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
	if got := tbl.OffsetOf("PDT"); got != -7 {
		t.Errorf("OffsetOf(PDT) = %v, want -7", got)
	}

	bare := NewTable()
	if bare.Len() != 1 || bare.First() != "UTC" {
		t.Errorf("NewTable() = %v, want only UTC", bare.Labels())
	}
}

func TestNavigationWraps(t *testing.T) {
	tbl := abc()
	tests := []struct {
		name  string
		fn    func(string) string
		label string
		want  string
	}{
		{"next middle", tbl.Next, "a", "b"},
		{"next wraps", tbl.Next, "c", "a"},
		{"next unknown", tbl.Next, "zzz", "a"},
		{"previous middle", tbl.Previous, "c", "b"},
		{"previous wraps", tbl.Previous, "a", "c"},
		{"previous unknown", tbl.Previous, "zzz", "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.label); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNavigationInverse(t *testing.T) {
	tbl := abc()
	for _, l := range tbl.Labels() {
		if got := tbl.Next(tbl.Previous(l)); got != l {
			t.Errorf("Next(Previous(%q)) = %q", l, got)
		}
		if got := tbl.Previous(tbl.Next(l)); got != l {
			t.Errorf("Previous(Next(%q)) = %q", l, got)
		}
	}

	single := NewTable()
	if single.Next("UTC") != "UTC" || single.Previous("UTC") != "UTC" {
		t.Errorf("single entry table should navigate to itself")
	}
}

func TestOffsetOfUnknown(t *testing.T) {
	tbl := abc()
	if got := tbl.OffsetOf("nope"); got != 0 {
		t.Errorf("OffsetOf(unknown) = %v, want 0", got)
	}
}

func TestReplace(t *testing.T) {
	tbl := abc()
	if tbl.Replace(nil) {
		t.Error("Replace(nil) reported success")
	}
	if got := tbl.Labels(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("empty Replace changed table to %v", got)
	}

	if !tbl.Replace([]Offset{{"IST", 5.5}, {"EST", -5}, {"IST", 5.75}}) {
		t.Fatal("Replace reported failure")
	}
	if got := tbl.Labels(); !reflect.DeepEqual(got, []string{"IST", "EST"}) {
		t.Errorf("Labels() = %v, want [IST EST]", got)
	}
	if got := tbl.OffsetOf("IST"); got != 5.75 {
		t.Errorf("duplicate label offset = %v, want last value 5.75", got)
	}
	if tbl.Contains("a") {
		t.Error("old entries survived Replace")
	}
}

func TestOrderDefinesNavigation(t *testing.T) {
	one := NewTable()
	one.Replace([]Offset{{"x", 0}, {"y", 0}, {"z", 0}})
	two := NewTable()
	two.Replace([]Offset{{"z", 0}, {"y", 0}, {"x", 0}})

	if one.Next("x") != "y" || two.Next("x") != "z" {
		t.Errorf("navigation should follow insertion order")
	}
}

func TestEntriesIsCopy(t *testing.T) {
	tbl := abc()
	e := tbl.Entries()
	e[0].Label = "mutated"
	if tbl.First() != "a" {
		t.Error("Entries() exposed internal storage")
	}
}
