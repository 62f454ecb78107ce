package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func validInput() domain.ProductInput {
	return domain.ProductInput{
		Title:       "Notebook",
		Description: "Plain dotted notebook",
		ImageURL:    "https://img.example/notebook.png",
		PriceMinor:  1000,
	}
}

func TestProductInputValidate_Ok(t *testing.T) {
	if errs := validInput().Validate(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestProductInputValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(in *domain.ProductInput)
		want error
	}{
		{
			name: "short title",
			mut: func(in *domain.ProductInput) {
				in.Title = "ab"
			},
			want: domain.ErrTitleTooShort,
		},
		{
			name: "negative price",
			mut: func(in *domain.ProductInput) {
				in.PriceMinor = -1
			},
			want: domain.ErrPriceNegative,
		},
		{
			name: "short description",
			mut: func(in *domain.ProductInput) {
				in.Description = "abc"
			},
			want: domain.ErrDescriptionLength,
		},
		{
			name: "long description",
			mut: func(in *domain.ProductInput) {
				in.Description = strings.Repeat("x", 401)
			},
			want: domain.ErrDescriptionLength,
		},
		{
			name: "missing image",
			mut: func(in *domain.ProductInput) {
				in.ImageURL = ""
			},
			want: domain.ErrImageURLRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)

			errs := in.Validate()
			if len(errs) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
			found := false
			for _, err := range errs {
				if errors.Is(err, tc.want) {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %v among %v", tc.want, errs)
			}
		})
	}
}

func TestProductInputValidate_CollectsAllViolations(t *testing.T) {
	in := domain.ProductInput{Title: "a", Description: "b", PriceMinor: -1}

	errs := in.Validate()
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(errs), errs)
	}
}

func TestValidationError_FirstMessageAndList(t *testing.T) {
	vErr := &domain.ValidationError{Violations: []error{
		domain.ErrTitleTooShort,
		domain.ErrPriceNegative,
	}}

	if vErr.Error() != domain.ErrTitleTooShort.Error() {
		t.Fatalf("expected first violation as message, got %s", vErr.Error())
	}
	if got := vErr.Messages(); len(got) != 2 {
		t.Fatalf("expected 2 messages, got %v", got)
	}
}
