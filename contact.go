package verdant

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingFields rejects a contact form submission with an empty required
// field.
var ErrMissingFields = errors.New("name, email and message are required")

// ContactMessage is a contact form submission. Phone and Service are only
// required by the extended quote form.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// Validate checks the basic contact form: name, email and message must be
// non-empty.
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Message) == "" {
		return ErrMissingFields
	}
	return nil
}

// ValidateExtended checks the quote form variant, which additionally
// requires phone and service.
func (m ContactMessage) ValidateExtended() error {
	if err := m.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(m.Phone) == "" || strings.TrimSpace(m.Service) == "" {
		return ErrMissingFields
	}
	return nil
}

// DialDigits reduces a display phone number to the digits-only form WhatsApp
// links require.
func DialDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink builds the pre-filled deep link that delivers the message.
// The site never persists submissions; the messaging app is the channel.
func WhatsAppLink(phone string, m ContactMessage) string {
	text := fmt.Sprintf("Ad: %s\nE-posta: %s\n", m.Name, m.Email)
	if m.Phone != "" {
		text += fmt.Sprintf("Telefon: %s\n", m.Phone)
	}
	if m.Service != "" {
		text += fmt.Sprintf("Hizmet: %s\n", m.Service)
	}
	text += fmt.Sprintf("Mesaj: %s", m.Message)
	return "https://wa.me/" + DialDigits(phone) + "?text=" + url.QueryEscape(text)
}

// InquiryLink builds the per-product WhatsApp inquiry link shown on the
// products page.
func InquiryLink(phone, productTitle string) string {
	if productTitle == "" {
		productTitle = "Ürün"
	}
	text := fmt.Sprintf("Merhaba, %s hakkında bilgi almak istiyorum.", productTitle)
	return "https://wa.me/" + DialDigits(phone) + "?text=" + url.QueryEscape(text)
}
