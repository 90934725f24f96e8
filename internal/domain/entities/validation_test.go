package entities

import "testing"

func fieldNames(errs []FieldError) map[string]bool {
	out := map[string]bool{}
	for _, e := range errs {
		out[e.Field] = true
	}
	return out
}

func TestQuoteRequestInput_Validate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		in := QuoteRequestInput{Name: "Ana", Email: "ana@ex.com", Company: "Acme", Service: "Infraestrutura de TI"}
		if errs := in.Validate(); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("all required fields missing", func(t *testing.T) {
		in := QuoteRequestInput{Name: "", Email: "bad", Company: "", Service: ""}
		errs := in.Validate()
		if len(errs) != 4 {
			t.Fatalf("expected 4 errors, got %d: %v", len(errs), errs)
		}
		fields := fieldNames(errs)
		for _, f := range []string{"name", "email", "company", "service"} {
			if !fields[f] {
				t.Fatalf("expected violation for %q, got %v", f, errs)
			}
		}
	})

	t.Run("single missing field enumerated alone", func(t *testing.T) {
		in := QuoteRequestInput{Name: "Ana", Email: "ana@ex.com", Company: "", Service: "Consultoria em TI"}
		errs := in.Validate()
		if len(errs) != 1 || errs[0].Field != "company" {
			t.Fatalf("expected only company violation, got %v", errs)
		}
		if errs[0].Message != "Nome da empresa é obrigatório" {
			t.Fatalf("unexpected message: %q", errs[0].Message)
		}
	})

	t.Run("optional fields unconstrained", func(t *testing.T) {
		phone := ""
		msg := ""
		in := QuoteRequestInput{Name: "Ana", Email: "ana@ex.com", Company: "Acme", Service: "Outro", Phone: &phone, Message: &msg}
		if errs := in.Validate(); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"local@domain.tld",
		"ana@ex.com",
		"first.last+tag@sub.domain.com.br",
	}
	for _, v := range valid {
		if !IsValidEmail(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}

	invalid := []string{
		"not-an-email",
		"",
		"missing@tld",
		"@domain.tld",
		"user@.com",
		"user@domain.",
		"two words@domain.tld",
	}
	for _, v := range invalid {
		if IsValidEmail(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestSmsMessageInput_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := SmsMessageInput{RecipientPhone: "+5511999999999", Message: "Nova solicitação"}
		if errs := in.Validate(); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("missing recipient and body", func(t *testing.T) {
		errs := SmsMessageInput{}.Validate()
		if len(errs) != 2 {
			t.Fatalf("expected 2 errors, got %v", errs)
		}
	})

	t.Run("body at and over the limit", func(t *testing.T) {
		atLimit := make([]rune, SmsMaxMessageLen)
		for i := range atLimit {
			atLimit[i] = 'a'
		}
		in := SmsMessageInput{RecipientPhone: "+5511999999999", Message: string(atLimit)}
		if errs := in.Validate(); len(errs) != 0 {
			t.Fatalf("expected limit-length body to pass, got %v", errs)
		}

		in.Message = string(atLimit) + "a"
		errs := in.Validate()
		if len(errs) != 1 || errs[0].Message != "Message too long" {
			t.Fatalf("expected length violation, got %v", errs)
		}
	})
}
