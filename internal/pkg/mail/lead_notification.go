package mail

import (
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/internal/pkg/env"
)

// SendLeadNotifications mails the new lead to the configured admin address
// and a confirmation to the customer. It is meant to run in a goroutine after
// the lead row is persisted: failures are logged and never retried, the HTTP
// response does not wait for it.
func SendLeadNotifications(lead models.Lead) {
	adminAddr := env.GetEnv("ADMIN_EMAIL", "")
	if adminAddr != "" {
		subject := fmt.Sprintf("Nauja užklausa #%d — %s", lead.ID, lead.PlanName)
		if err := SendMail(adminAddr, subject, LeadAdminBody(lead)); err != nil {
			log.Printf("Failed to send lead notification to admin: %v", err)
		}
	}

	if lead.Email != "" {
		subject := "Jūsų užklausa gauta"
		if err := SendMail(lead.Email, subject, LeadCustomerBody(lead)); err != nil {
			log.Printf("Failed to send lead confirmation to customer: %v", err)
		}
	}
}

// LeadAdminBody renders the internal notification with the full breakdown.
func LeadAdminBody(lead models.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Nauja užklausa #%d</h2>", lead.ID)
	fmt.Fprintf(&b, "<p><strong>Planas:</strong> %s</p>", html.EscapeString(lead.PlanName))
	fmt.Fprintf(&b, "<p><strong>Vardas:</strong> %s<br>", html.EscapeString(lead.Name))
	fmt.Fprintf(&b, "<strong>El. paštas:</strong> %s<br>", html.EscapeString(lead.Email))
	if lead.Phone != "" {
		fmt.Fprintf(&b, "<strong>Telefonas:</strong> %s<br>", html.EscapeString(lead.Phone))
	}
	fmt.Fprintf(&b, "<strong>Miestas:</strong> %s</p>", html.EscapeString(lead.City))
	if lead.Comment != "" {
		fmt.Fprintf(&b, "<p><strong>Komentaras:</strong> %s</p>", html.EscapeString(lead.Comment))
	}

	if len(lead.SelectedOptions) > 0 {
		b.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Pasirinkimas</th><th>Kiekis</th><th>Kaina</th></tr>")
		for _, opt := range lead.SelectedOptions {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s</td></tr>",
				html.EscapeString(opt.Label), opt.Quantity, FormatEuroCents(opt.TotalPrice))
		}
		b.WriteString("</table>")
	}

	fmt.Fprintf(&b, "<p><strong>Bendra suma: %s</strong></p>", FormatEuroCents(lead.TotalPriceCents))
	fmt.Fprintf(&b, "<p>Užklausos nr.: %s</p>", lead.Reference)
	return b.String()
}

// LeadCustomerBody renders the confirmation sent back to the prospect.
func LeadCustomerBody(lead models.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Sveiki, %s,</p>", html.EscapeString(lead.Name))
	fmt.Fprintf(&b, "<p>Gavome jūsų užklausą dėl plano <strong>%s</strong>. ", html.EscapeString(lead.PlanName))
	fmt.Fprintf(&b, "Preliminari kaina: <strong>%s</strong>.</p>", FormatEuroCents(lead.TotalPriceCents))
	fmt.Fprintf(&b, "<p>Užklausos numeris: %s. Susisieksime per 1–2 darbo dienas.</p>", lead.Reference)
	return b.String()
}

// FormatEuroCents renders integer cents as a euro string, e.g. 655900 -> "6559 €"
// and 655950 -> "6559,50 €". The comma decimal separator follows Lithuanian
// formatting, matching the rest of the mail copy.
func FormatEuroCents(cents int) string {
	if cents%100 == 0 {
		return fmt.Sprintf("%d €", cents/100)
	}
	return fmt.Sprintf("%d,%02d €", cents/100, cents%100)
}
