package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewDomainError("STORE_UNAVAILABLE", "Storage unavailable", cause, http.StatusBadGateway)

	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be wrapped")
	}
	if e.Error() != "STORE_UNAVAILABLE: dynamo down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "STORE_UNAVAILABLE" || body.Message != "Storage unavailable" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestNewDomainErrorSimple(t *testing.T) {
	e := NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	if e.HTTPStatus != http.StatusNotFound || e.Err != nil {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e.Error() != "BUDGET_NOT_FOUND: Budget not found" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	if NewDomainError("X", "x", nil, 0).HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500")
	}
}
