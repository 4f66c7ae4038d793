package entities

import (
	"testing"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "enabled", status: StatusEnabled, want: true},
		{name: "disabled", status: StatusDisabled, want: true},
		{name: "zero", status: 0, want: false},
		{name: "out of range", status: 3, want: false},
		{name: "negative", status: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%d).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	if got := StatusEnabled.String(); got != "enabled" {
		t.Errorf("StatusEnabled.String() = %q", got)
	}
	if got := StatusDisabled.String(); got != "disabled" {
		t.Errorf("StatusDisabled.String() = %q", got)
	}
	if got := Status(7).String(); got != "status(7)" {
		t.Errorf("Status(7).String() = %q", got)
	}
}

func TestProductAttr_Validate(t *testing.T) {
	tests := []struct {
		name    string
		attr    ProductAttr
		wantErr bool
	}{
		{
			name: "valid attribute",
			attr: ProductAttr{Name: "Color", Status: StatusEnabled},
		},
		{
			name:    "empty name",
			attr:    ProductAttr{Name: "", Status: StatusEnabled},
			wantErr: true,
		},
		{
			name:    "unknown status",
			attr:    ProductAttr{Name: "Color", Status: 9},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attr.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("ProductAttr.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProductAttrValue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   ProductAttrValue
		wantErr bool
	}{
		{
			name:  "valid value",
			value: ProductAttrValue{AttrID: 1, Name: "Red", Status: StatusEnabled},
		},
		{
			name:    "missing attribute",
			value:   ProductAttrValue{Name: "Red", Status: StatusEnabled},
			wantErr: true,
		},
		{
			name:    "empty name",
			value:   ProductAttrValue{AttrID: 1, Status: StatusDisabled},
			wantErr: true,
		},
		{
			name:    "unknown status",
			value:   ProductAttrValue{AttrID: 1, Name: "Red"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("ProductAttrValue.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProductAttrUpdate_IsEmpty(t *testing.T) {
	name := "Colour"
	status := StatusDisabled

	if !(&ProductAttrUpdate{ID: 1}).IsEmpty() {
		t.Error("expected update without fields to be empty")
	}
	if (&ProductAttrUpdate{ID: 1, Name: &name}).IsEmpty() {
		t.Error("expected name update to be non-empty")
	}
	if (&ProductAttrValueUpdate{ID: 1, Status: &status}).IsEmpty() {
		t.Error("expected status update to be non-empty")
	}
}

func TestNewProductAttrDetail_EmptyValues(t *testing.T) {
	detail := NewProductAttrDetail(&ProductAttr{ID: 3, Name: "Size", Status: StatusEnabled})

	if detail.Values == nil {
		t.Fatal("expected non-nil values slice")
	}
	if len(detail.Values) != 0 {
		t.Errorf("expected 0 values, got %d", len(detail.Values))
	}
	if detail.ID != 3 || detail.Name != "Size" {
		t.Errorf("unexpected detail: %+v", detail)
	}
}

func TestGroupValuesByAttrID(t *testing.T) {
	values := []*ProductAttrValue{
		{ID: 10, AttrID: 1, Name: "Red"},
		{ID: 20, AttrID: 2, Name: "M"},
		{ID: 11, AttrID: 1, Name: "Blue"},
		{ID: 12, AttrID: 1, Name: "Green"},
	}

	grouped := GroupValuesByAttrID(values)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(grouped))
	}

	wantOrder := []int64{10, 11, 12}
	got := grouped[1]
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d values for attr 1, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: expected value %d, got %d", i, id, got[i].ID)
		}
	}

	if len(grouped[3]) != 0 {
		t.Errorf("expected no values for attr 3, got %d", len(grouped[3]))
	}
}

func TestProductAttrAndValuePair_String(t *testing.T) {
	pair := &ProductAttrAndValuePair{AttrID: 1, AttrName: "Color", AttrValueID: 10, AttrValueName: "Red"}
	if got := pair.String(); got != "Color:Red" {
		t.Errorf("ProductAttrAndValuePair.String() = %q, want %q", got, "Color:Red")
	}
}
