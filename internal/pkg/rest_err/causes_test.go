package rest_err

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
)

type bindingSample struct {
	Email string `validate:"required,email"`
	Name  string `validate:"max=3"`
}

func TestNewBindingErrorListsFieldCauses(t *testing.T) {
	err := validator.New().Struct(bindingSample{Email: "nope", Name: "toolong"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	restErr := NewBindingError("invalid json body", err)
	if restErr.Code != http.StatusBadRequest || restErr.Err != ErrBadRequest {
		t.Fatalf("unexpected error kind: %+v", restErr)
	}
	if len(restErr.Causes) != 2 {
		t.Fatalf("expected 2 causes, got %d", len(restErr.Causes))
	}
	if restErr.Causes[0].Field != "email" {
		t.Fatalf("expected email cause first, got %q", restErr.Causes[0].Field)
	}
	if restErr.Causes[1].Message != "must be at most 3 characters" {
		t.Fatalf("unexpected max message: %q", restErr.Causes[1].Message)
	}
}

func TestNewBindingErrorWrapsPlainErrors(t *testing.T) {
	restErr := NewBindingError("invalid json body", errors.New("unexpected EOF"))
	if len(restErr.Causes) != 1 || restErr.Causes[0].Field != "body" {
		t.Fatalf("unexpected causes: %+v", restErr.Causes)
	}
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  *RestErr
		code int
		kind string
	}{
		{NewUnauthorizedError("x"), http.StatusUnauthorized, ErrUnauthorized},
		{NewForbiddenError("x"), http.StatusForbidden, ErrForbidden},
		{NewNotFoundError("x"), http.StatusNotFound, ErrNotFound},
		{NewConflictValidationError("x", nil), http.StatusConflict, ErrConflict},
		{NewInternalServerError("x", nil), http.StatusInternalServerError, ErrInternalServerError},
		{NewNotImplementedError("x"), http.StatusNotImplemented, ErrNotImplemented},
	}
	for _, tc := range cases {
		if tc.err.Code != tc.code || tc.err.Err != tc.kind {
			t.Fatalf("expected %d/%s, got %d/%s", tc.code, tc.kind, tc.err.Code, tc.err.Err)
		}
	}
}
