package request

import "testing"

func TestQuoteRequestRequest_ToInput(t *testing.T) {
	r := QuoteRequestRequest{
		Name:    "  Ana  ",
		Email:   " ana@ex.com ",
		Company: "Acme",
		Phone:   " (11) 99999-9999 ",
		Service: "Infraestrutura de TI",
		Message: "   ",
	}

	in := r.ToInput()
	if in.Name != "Ana" || in.Email != "ana@ex.com" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if in.Phone == nil || *in.Phone != "(11) 99999-9999" {
		t.Fatalf("expected trimmed phone, got %v", in.Phone)
	}
	if in.Message != nil {
		t.Fatalf("expected blank message to become nil, got %v", *in.Message)
	}
}

func TestQuoteRequestRequest_ToInputEmptyOptionals(t *testing.T) {
	in := QuoteRequestRequest{Name: "Ana", Email: "ana@ex.com", Company: "Acme", Service: "Outro"}.ToInput()
	if in.Phone != nil || in.Message != nil {
		t.Fatalf("expected nil optionals, got phone=%v message=%v", in.Phone, in.Message)
	}
}
