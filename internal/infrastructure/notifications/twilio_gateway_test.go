package notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testGateway(serverURL string) *TwilioGateway {
	return &TwilioGateway{
		accountSid: "AC123",
		authToken:  "secret",
		fromNumber: "+15550001111",
		baseURL:    serverURL,
		client:     &http.Client{Timeout: 2 * time.Second},
	}
}

func TestTwilioGateway_SendSms(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the form and returns the sid", func(t *testing.T) {
		var gotPath, gotFrom, gotTo, gotBody string
		var gotUser, gotPass string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, _ = r.BasicAuth()
			_ = r.ParseForm()
			gotFrom = r.PostFormValue("From")
			gotTo = r.PostFormValue("To")
			gotBody = r.PostFormValue("Body")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"sid":"SM999","status":"queued"}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		sid, err := g.SendSms(ctx, "11988887777", "Nova solicitação de orçamento")
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		if sid != "SM999" {
			t.Fatalf("expected sid SM999, got %s", sid)
		}
		if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
			t.Fatalf("unexpected path %s", gotPath)
		}
		if gotUser != "AC123" || gotPass != "secret" {
			t.Fatalf("unexpected basic auth %s:%s", gotUser, gotPass)
		}
		if gotFrom != "+15550001111" {
			t.Fatalf("unexpected From %s", gotFrom)
		}
		if gotTo != "+5511988887777" {
			t.Fatalf("expected national number to gain +55, got %s", gotTo)
		}
		if gotBody != "Nova solicitação de orçamento" {
			t.Fatalf("unexpected Body %s", gotBody)
		}
	})

	t.Run("api error surfaces status and provider message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Authenticate"}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		_, err := g.SendSms(ctx, "+5511988887777", "oi")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Authenticate") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing sid is an error even on 201", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		_, err := g.SendSms(ctx, "+5511988887777", "oi")
		if err == nil || !strings.Contains(err.Error(), "missing sid") {
			t.Fatalf("expected missing sid error, got %v", err)
		}
	})

	t.Run("unreachable provider fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		g := testGateway(srv.URL)
		_, err := g.SendSms(ctx, "+5511988887777", "oi")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("mock mode skips the provider", func(t *testing.T) {
		g := &TwilioGateway{mockMode: true}
		sid, err := g.SendSms(ctx, "11988887777", "oi")
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		if !strings.HasPrefix(sid, "SM") || len(sid) != 34 {
			t.Fatalf("unexpected mock sid %s", sid)
		}
	})
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+5511988887777": "+5511988887777",
		"11988887777":    "+5511988887777",
		" 11988887777 ":  "+5511988887777",
		"+14155550100":   "+14155550100",
	}
	for in, want := range cases {
		if got := normalizePhone(in); got != want {
			t.Errorf("normalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewTwilioGateway(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("SMS_GATEWAY_MOCK", "")
		t.Setenv("TWILIO_ACCOUNT_SID", "")
		t.Setenv("TWILIO_AUTH_TOKEN", "")
		t.Setenv("TWILIO_FROM_NUMBER", "")

		if _, err := NewTwilioGateway(); err != ErrMissingTwilioCredentials {
			t.Fatalf("expected ErrMissingTwilioCredentials, got %v", err)
		}
	})

	t.Run("mock flag wins over credentials", func(t *testing.T) {
		t.Setenv("SMS_GATEWAY_MOCK", "true")
		t.Setenv("TWILIO_ACCOUNT_SID", "")

		g, err := NewTwilioGateway()
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if !g.mockMode {
			t.Fatal("expected mock mode")
		}
	})
}
