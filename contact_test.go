package verdant

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestContactMessageValidate(t *testing.T) {
	valid := ContactMessage{Name: "Ali Kaya", Email: "ali@example.com", Message: "Bahçe düzenlemesi istiyorum"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	missing := []ContactMessage{
		{Email: "a@b.c", Message: "m"},
		{Name: "Ali", Message: "m"},
		{Name: "Ali", Email: "a@b.c"},
		{Name: "  ", Email: "a@b.c", Message: "m"},
	}
	for i, m := range missing {
		if err := m.Validate(); !errors.Is(err, ErrMissingFields) {
			t.Errorf("case %d: expected ErrMissingFields, got %v", i, err)
		}
	}
}

func TestContactMessageValidateExtended(t *testing.T) {
	m := ContactMessage{Name: "Ali", Email: "a@b.c", Message: "m"}
	if err := m.ValidateExtended(); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("extended form requires phone and service, got %v", err)
	}
	m.Phone = "0555 111 22 33"
	m.Service = "Peyzaj Tasarımı"
	if err := m.ValidateExtended(); err != nil {
		t.Fatalf("complete extended form rejected: %v", err)
	}
}

func TestDialDigits(t *testing.T) {
	tests := []struct{ in, want string }{
		{"+90 (555) 111 22 33", "905551112233"},
		{"0555-111-2233", "05551112233"},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := DialDigits(tt.in); got != tt.want {
			t.Errorf("DialDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	m := ContactMessage{
		Name:    "Ali Kaya",
		Email:   "ali@example.com",
		Phone:   "0555 111 22 33",
		Service: "Peyzaj Tasarımı",
		Message: "Teklif almak istiyorum",
	}
	link := WhatsAppLink("+90 (532) 000 11 22", m)

	if !strings.HasPrefix(link, "https://wa.me/905320001122?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := u.Query().Get("text")
	for _, want := range []string{"Ad: Ali Kaya", "E-posta: ali@example.com", "Telefon: 0555 111 22 33", "Hizmet: Peyzaj Tasarımı", "Mesaj: Teklif almak istiyorum"} {
		if !strings.Contains(text, want) {
			t.Errorf("decoded text missing %q:\n%s", want, text)
		}
	}
}

func TestWhatsAppLinkOmitsEmptyOptionalFields(t *testing.T) {
	m := ContactMessage{Name: "Ali", Email: "a@b.c", Message: "merhaba"}
	link := WhatsAppLink("05551112233", m)

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := u.Query().Get("text")
	if strings.Contains(text, "Telefon:") || strings.Contains(text, "Hizmet:") {
		t.Errorf("optional lines should be omitted:\n%s", text)
	}
}

func TestInquiryLink(t *testing.T) {
	link := InquiryLink("0532 000 11 22", "Bodur Çam")
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if u.Host != "wa.me" || u.Path != "/05320001122" {
		t.Errorf("unexpected target: %s", link)
	}
	if !strings.Contains(u.Query().Get("text"), "Bodur Çam") {
		t.Errorf("product title missing from text: %s", u.Query().Get("text"))
	}

	// Empty title falls back to a generic word.
	link = InquiryLink("05320001122", "")
	u, _ = url.Parse(link)
	if !strings.Contains(u.Query().Get("text"), "Ürün") {
		t.Errorf("expected fallback title, got %s", u.Query().Get("text"))
	}
}
