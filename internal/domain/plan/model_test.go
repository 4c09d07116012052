package plan

import (
	"reflect"
	"testing"

	"gymverse/internal/domain/record"
)

// TestNormalize_LegacyShapes tests field reconciliation from older record shapes.
func TestNormalize_LegacyShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  record.Raw
		want Plan
	}{
		{
			"canonical record unchanged",
			record.Raw{
				"id": "p1", "name": "Starter", "category": "Monthly",
				"oldPrice": 12000.0, "newPrice": 8999.0,
				"desc": "d", "features": []any{"a", "b"},
			},
			Plan{ID: "p1", Name: "Starter", Category: "Monthly", OldPrice: 12000, NewPrice: 8999, Desc: "d", Features: []string{"a", "b"}},
		},
		{
			"pName and pCat shape",
			record.Raw{"id": "p2", "pName": "Pro", "pCat": "Monthly", "pPrice": 13999.0},
			Plan{ID: "p2", Name: "Pro", Category: "Monthly", OldPrice: 13999, NewPrice: 13999, Desc: "", Features: []string{}},
		},
		{
			"single final price feeds both",
			record.Raw{"id": "p3", "name": "Elite", "cat": "Monthly", "final": 19999.0},
			Plan{ID: "p3", Name: "Elite", Category: "Monthly", OldPrice: 19999, NewPrice: 19999, Desc: "", Features: []string{}},
		},
		{
			"offerPrice and offerDesc",
			record.Raw{"id": "p4", "name": "X", "category": "C", "old": 100.0, "offerPrice": 50.0, "offerDesc": "deal"},
			Plan{ID: "p4", Name: "X", Category: "C", OldPrice: 100, NewPrice: 50, Desc: "deal", Features: []string{}},
		},
		{
			"csv features",
			record.Raw{"id": "p5", "name": "Y", "category": "C", "oldPrice": 2.0, "newPrice": 1.0, "features": "gym, sauna"},
			Plan{ID: "p5", Name: "Y", Category: "C", OldPrice: 2, NewPrice: 1, Desc: "", Features: []string{"gym", "sauna"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got == nil {
				t.Fatal("Normalize returned nil for non-nil input")
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("Normalize() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// TestNormalize_Nil tests that nil input yields nil.
func TestNormalize_Nil(t *testing.T) {
	if got := Normalize(nil); got != nil {
		t.Errorf("Normalize(nil) = %+v, want nil", got)
	}
}

// TestNormalize_Idempotent tests that normalizing a canonical record again
// yields the same record.
func TestNormalize_Idempotent(t *testing.T) {
	raw := record.Raw{
		"id": "p1", "name": "Starter", "category": "Monthly",
		"oldPrice": 12000.0, "newPrice": 8999.0,
		"desc": "d", "features": []any{"a"},
	}
	first := Normalize(raw)
	second := Normalize(record.Raw{
		"id": first.ID, "name": first.Name, "category": first.Category,
		"oldPrice": first.OldPrice, "newPrice": first.NewPrice,
		"desc": first.Desc, "features": []any{"a"},
	})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second normalization changed record: %+v vs %+v", first, second)
	}
}

// TestNormalize_GeneratesID tests that a record without id gets one.
func TestNormalize_GeneratesID(t *testing.T) {
	got := Normalize(record.Raw{"name": "Starter"})
	if got.ID == "" {
		t.Error("expected generated id, got empty")
	}
}

// TestValidate tests the create/edit business rules.
func TestValidate(t *testing.T) {
	valid := Plan{Name: "Starter", Category: "Monthly", OldPrice: 12000, NewPrice: 8999}

	tests := []struct {
		name    string
		mutate  func(p *Plan)
		wantErr error
	}{
		{"valid", func(p *Plan) {}, nil},
		{"empty name", func(p *Plan) { p.Name = "  " }, ErrEmptyName},
		{"empty category", func(p *Plan) { p.Category = "" }, ErrEmptyCategory},
		{"zero old price", func(p *Plan) { p.OldPrice = 0 }, ErrInvalidOldPrice},
		{"zero new price", func(p *Plan) { p.NewPrice = 0 }, ErrInvalidNewPrice},
		{"new equals old", func(p *Plan) { p.NewPrice = p.OldPrice }, ErrPriceNotLower},
		{"new above old", func(p *Plan) { p.NewPrice = p.OldPrice + 1 }, ErrPriceNotLower},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSameName tests case-insensitive name comparison.
func TestSameName(t *testing.T) {
	p := Plan{Name: "Starter"}
	if !p.SameName("sTaRtEr") {
		t.Error("expected case-insensitive match")
	}
	if p.SameName("Pro") {
		t.Error("expected mismatch for different name")
	}
}
