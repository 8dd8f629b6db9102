package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	domsale "example.com/flowpos/internal/domain/sale"
	domsettings "example.com/flowpos/internal/domain/settings"
)

// ReceiptMailer sends plain-text receipts over SMTP. Header and footer lines
// come from the store's receipt settings.
type ReceiptMailer struct {
	addr         string
	from         string
	settingsRepo domsettings.Repository
}

func NewReceiptMailer(addr, from string, settingsRepo domsettings.Repository) *ReceiptMailer {
	return &ReceiptMailer{addr: addr, from: from, settingsRepo: settingsRepo}
}

func (m *ReceiptMailer) Send(ctx context.Context, s *domsale.Sale, email string) error {
	cfg, err := m.settingsRepo.GetReceiptConfig(ctx)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", email)
	fmt.Fprintf(&b, "Subject: Receipt %s\r\n", s.ID)
	b.WriteString("\r\n")
	if cfg.HeaderText != "" {
		b.WriteString(cfg.HeaderText + "\r\n\r\n")
	}
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "%-30s x%-3d %s\r\n", l.Name, l.Quantity, l.UnitPrice.StringFixed(2))
	}
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Subtotal: %s\r\n", s.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Tax:      %s\r\n", s.Tax.StringFixed(2))
	fmt.Fprintf(&b, "Total:    %s\r\n", s.Total.StringFixed(2))
	if cfg.FooterText != "" {
		b.WriteString("\r\n" + cfg.FooterText + "\r\n")
	}

	return smtp.SendMail(m.addr, nil, m.from, []string{email}, []byte(b.String()))
}
