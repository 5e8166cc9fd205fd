// Package notifier formats cart contents into the outbound WhatsApp
// handoff. It is pure text and URL construction; nothing here performs I/O.
package notifier

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sunlinkenergy/sunlink-backend/internal/store"
	"github.com/sunlinkenergy/sunlink-backend/pkg/config"
	"github.com/sunlinkenergy/sunlink-backend/pkg/money"
)

const (
	messageGreeting = "Hello! I'm interested in the following solar products:\n\n"
	messageClosing  = "Please let me know about availability and delivery options. Thank you!"
)

// WhatsApp builds checkout handoff links for a fixed recipient number.
type WhatsApp struct {
	recipient string
}

func NewWhatsApp(cfg config.WhatsAppConfig) *WhatsApp {
	return &WhatsApp{recipient: strings.TrimSpace(cfg.Recipient)}
}

// Message renders the human-readable order summary sent to the recipient.
func (w *WhatsApp) Message(items []store.CartLine, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString(messageGreeting)

	for i, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Price: %s\n\n", money.FormatUSD(lineTotal))
	}

	fmt.Fprintf(&b, "Total: %s\n\n", money.FormatUSD(total))
	b.WriteString(messageClosing)
	return b.String()
}

// CheckoutURL returns the wa.me deep link carrying the encoded summary.
func (w *WhatsApp) CheckoutURL(items []store.CartLine, total decimal.Decimal) string {
	query := url.Values{}
	query.Set("text", w.Message(items, total))

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + w.recipient,
		RawQuery: query.Encode(),
	}
	return link.String()
}
