package marketplace

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/coder-yr/taste-link/models"
)

func validForm() JoinForm {
	return JoinForm{
		SupplierName:     "GreenPack Solutions",
		SupplierID:       "SUP001",
		ProductOffering:  "rice-bowls",
		PricePerUnit:     "2.50",
		MinOrderQuantity: "100",
	}
}

func TestJoinFormValid(t *testing.T) {
	if errs := validForm().Validate(); errs != nil {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestJoinFormFieldRules(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*JoinForm)
		field string
		msg   string
	}{
		{"one char name", func(f *JoinForm) { f.SupplierName = "A" }, FieldSupplierName, "Supplier name must be at least 2 characters"},
		{"empty name", func(f *JoinForm) { f.SupplierName = "" }, FieldSupplierName, "Supplier name must be at least 2 characters"},
		{"short id", func(f *JoinForm) { f.SupplierID = "S1" }, FieldSupplierID, "Supplier ID must be at least 3 characters"},
		{"no offering", func(f *JoinForm) { f.ProductOffering = "" }, FieldProductOffering, "Please select a product offering"},
		{"unknown offering", func(f *JoinForm) { f.ProductOffering = "electronics" }, FieldProductOffering, "Please select a product offering"},
		{"zero price", func(f *JoinForm) { f.PricePerUnit = "0" }, FieldPricePerUnit, "Price must be a positive number"},
		{"negative price", func(f *JoinForm) { f.PricePerUnit = "-1.5" }, FieldPricePerUnit, "Price must be a positive number"},
		{"text price", func(f *JoinForm) { f.PricePerUnit = "cheap" }, FieldPricePerUnit, "Price must be a positive number"},
		{"empty price", func(f *JoinForm) { f.PricePerUnit = "" }, FieldPricePerUnit, "Price must be a positive number"},
		{"nan price", func(f *JoinForm) { f.PricePerUnit = "NaN" }, FieldPricePerUnit, "Price must be a positive number"},
		{"zero quantity", func(f *JoinForm) { f.MinOrderQuantity = "0" }, FieldMinOrderQuantity, "Minimum order quantity must be a positive number"},
		{"text quantity", func(f *JoinForm) { f.MinOrderQuantity = "lots" }, FieldMinOrderQuantity, "Minimum order quantity must be a positive number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.edit(&f)
			errs := f.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if errs[tc.field] != tc.msg {
				t.Errorf("error for %s = %q, want %q", tc.field, errs[tc.field], tc.msg)
			}
		})
	}
}

func TestJoinFormAllEmpty(t *testing.T) {
	errs := JoinForm{}.Validate()
	if len(errs) != 5 {
		t.Fatalf("expected five errors, got %v", errs)
	}
	if !strings.HasPrefix(errs.Error(), "invalid join form: minOrderQuantity:") {
		t.Errorf("unexpected error text %q", errs.Error())
	}
}

func TestJoinFormMultibyteName(t *testing.T) {
	f := validForm()
	f.SupplierName = "食品"
	if errs := f.Validate(); errs != nil {
		t.Errorf("two-rune name should pass, got %v", errs)
	}
}

func TestJoinFormNumericWhitespace(t *testing.T) {
	f := validForm()
	f.PricePerUnit = " 2.5 "
	f.MinOrderQuantity = "1e2"
	req, err := f.ToJoinRequest("1", time.Unix(0, 0))
	if err != nil {
		t.Fatalf("ToJoinRequest: %v", err)
	}
	if req.PricePerUnit != 2.5 || req.MinOrderQuantity != 100 {
		t.Errorf("unexpected parsed values %+v", req)
	}
}

func TestToJoinRequest(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	req, err := validForm().ToJoinRequest("3", now)
	if err != nil {
		t.Fatalf("ToJoinRequest: %v", err)
	}
	if req.ID == "" || req.CampaignID != "3" || req.SupplierCode != "SUP001" {
		t.Errorf("unexpected request %+v", req)
	}
	if req.Status != models.JoinPending || !req.SubmittedAt.Equal(now) {
		t.Errorf("unexpected status/time %+v", req)
	}

	bad := validForm()
	bad.SupplierName = "A"
	_, err = bad.ToJoinRequest("3", now)
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) || fieldErrs[FieldSupplierName] == "" {
		t.Errorf("expected FieldErrors, got %v", err)
	}
}
