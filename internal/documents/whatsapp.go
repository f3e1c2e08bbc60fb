package documents

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"rebobinagem/internal/domain/entities"
)

var ErrInvalidPhone = errors.New("client has no usable phone number")

const technicalReportPreview = 200

// CleanPhone keeps the digits of a Brazilian phone number, drops a leading trunk 0 and
// prefixes the 55 country code. Numbers with fewer than 10 digits are rejected.
func CleanPhone(phone string) (string, bool) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 10 {
		return "", false
	}
	digits = strings.TrimPrefix(digits, "0")
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return digits, true
}

// WhatsAppLink builds the wa.me link that opens a chat with the client prefilled with the
// budget summary.
func WhatsAppLink(b entities.Budget, client entities.Client, shop Shop) (string, error) {
	phone, ok := CleanPhone(contactPhone(client))
	if !ok {
		return "", ErrInvalidPhone
	}
	text := strings.ReplaceAll(url.QueryEscape(WhatsAppMessage(b, client, shop)), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, text), nil
}

// WhatsAppMessage is the plain-text body sent in the link.
func WhatsAppMessage(b entities.Budget, client entities.Client, shop Shop) string {
	var m strings.Builder

	fmt.Fprintf(&m, "Olá %s!\n\n", client.Name)
	fmt.Fprintf(&m, "Segue o %s #%s\n\n", title(b.Status), b.ShortID())
	m.WriteString("*Detalhes:*\n")
	fmt.Fprintf(&m, "Cliente: %s\n", client.Name)
	fmt.Fprintf(&m, "Data: %s\n\n", b.Date.Format(dateLayout))

	motor := b.Motor
	if motor.Brand != "" || motor.Model != "" || motor.CV != "" || motor.Type != "" {
		m.WriteString("*Dados do Motor:*\n")
		writeIf(&m, "Marca", motor.Brand)
		writeIf(&m, "Modelo", motor.Model)
		writeIf(&m, "CV", motor.CV)
		writeIf(&m, "Tipo", motor.Type)
		m.WriteString("\n")
	}

	if len(b.Items) > 0 {
		m.WriteString("*Peças e Serviços:*\n")
		for i, it := range b.Items {
			fmt.Fprintf(&m, "%d. %s - Qtd: %d - R$ %s\n", i+1, it.PartName, it.Quantity, it.Subtotal.StringFixed(2))
		}
		m.WriteString("\n")
	}

	if b.DiscountPercent != nil {
		fmt.Fprintf(&m, "Subtotal: R$ %s\n", b.Subtotal.StringFixed(2))
		fmt.Fprintf(&m, "Desconto (%s%%): - R$ %s\n", b.DiscountPercent.String(), b.DiscountValue.StringFixed(2))
	}
	fmt.Fprintf(&m, "*Valor Total: R$ %s*\n\n", b.Total.StringFixed(2))

	if b.TechnicalReport != "" {
		fmt.Fprintf(&m, "*Laudo Técnico:*\n%s\n\n", truncate(b.TechnicalReport, technicalReportPreview))
	}

	m.WriteString("Atenciosamente,\n")
	m.WriteString(shop.Name)
	return m.String()
}

func writeIf(m *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(m, "%s: %s\n", label, value)
	}
}
