package record

import (
	"reflect"
	"testing"
)

// TestString_AliasPriority tests that the first present alias wins, even when
// its value is empty.
func TestString_AliasPriority(t *testing.T) {
	tests := []struct {
		name    string
		raw     Raw
		aliases []string
		want    string
	}{
		{"primary present", Raw{"name": "Starter", "pName": "Old"}, []string{"name", "pName"}, "Starter"},
		{"fallback used", Raw{"pName": "Old"}, []string{"name", "pName"}, "Old"},
		{"present but empty wins", Raw{"name": "", "pName": "Old"}, []string{"name", "pName"}, ""},
		{"nil value skipped", Raw{"name": nil, "pName": "Old"}, []string{"name", "pName"}, "Old"},
		{"nothing present", Raw{}, []string{"name", "pName"}, ""},
		{"number coerced", Raw{"age": 21.0}, []string{"age"}, "21"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.String(tt.aliases...); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.aliases, got, tt.want)
			}
		})
	}
}

// TestNumber_Coercion tests numeric coercion including string parsing.
func TestNumber_Coercion(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want float64
	}{
		{"float", Raw{"price": 8999.0}, 8999},
		{"numeric string", Raw{"price": "8999"}, 8999},
		{"padded string", Raw{"price": " 8999 "}, 8999},
		{"garbage string", Raw{"price": "free"}, 0},
		{"missing", Raw{}, 0},
		{"nil", Raw{"price": nil}, 0},
		{"bool", Raw{"price": true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.Number("price"); got != tt.want {
				t.Errorf("Number(price) = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestStringList_Shapes tests list coercion from arrays and CSV strings.
func TestStringList_Shapes(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want []string
	}{
		{"json array", Raw{"tags": []any{"Power", "Form"}}, []string{"Power", "Form"}},
		{"csv string", Raw{"tags": "Power, Form , "}, []string{"Power", "Form"}},
		{"single value", Raw{"tags": "Power"}, []string{"Power"}},
		{"missing", Raw{}, []string{}},
		{"empty string", Raw{"tags": ""}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.StringList("tags"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringList(tags) = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestID_KeepsExisting tests that an existing non-empty id is preserved.
func TestID_KeepsExisting(t *testing.T) {
	raw := Raw{"id": "abc-123"}
	if got := raw.ID(); got != "abc-123" {
		t.Errorf("ID() = %q, want abc-123", got)
	}
}

// TestID_GeneratesWhenMissing tests that a missing or empty id gets replaced.
func TestID_GeneratesWhenMissing(t *testing.T) {
	for _, raw := range []Raw{{}, {"id": ""}, {"id": nil}} {
		if got := raw.ID(); got == "" {
			t.Errorf("ID() on %v returned empty", raw)
		}
	}
}

// TestNewID_Unique tests that generated ids do not collide.
func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate %q", id)
		}
		seen[id] = true
	}
}
