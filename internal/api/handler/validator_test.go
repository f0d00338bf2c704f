package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()
	req := createProductRequest{Name: "Laptop", Description: "14 inch", Price: 999.99}
	if err := v.Validate(req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidator_CollectsAllViolations(t *testing.T) {
	v := NewValidator()
	req := createProductRequest{Name: strings.Repeat("x", 201), Price: -1}

	err := v.Validate(req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Fatalf("expected 2 violations, got %+v", ve.Errors)
	}

	messages := map[string]string{}
	for _, fe := range ve.Errors {
		messages[fe.PropertyName] = fe.ErrorMessage
	}
	if messages["Name"] != "Name must not exceed 200 characters." {
		t.Fatalf("unexpected Name message %q", messages["Name"])
	}
	if messages["Price"] != "Price must be greater than 0." {
		t.Fatalf("unexpected Price message %q", messages["Price"])
	}
}

func TestValidator_ZeroPriceRejected(t *testing.T) {
	v := NewValidator()
	req := createProductRequest{Name: "Free sample", Price: 0}

	err := v.Validate(req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].ErrorMessage != "Price must be greater than 0." {
		t.Fatalf("unexpected errors: %+v", ve.Errors)
	}
}

func TestValidator_DescriptionTooLong(t *testing.T) {
	v := NewValidator()
	req := createProductRequest{Name: "Laptop", Description: strings.Repeat("d", 1001), Price: 10}

	err := v.Validate(req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Errors[0].ErrorMessage != "Description must not exceed 1000 characters." {
		t.Fatalf("unexpected message %q", ve.Errors[0].ErrorMessage)
	}
}
