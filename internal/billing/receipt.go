package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/shopspring/decimal"
)

const receiptDivider = "====================================="

// ReceiptData carries everything the formatter needs. The quote must be the
// freshly recomputed one, not a value cached from an earlier calculate call.
type ReceiptData struct {
	PatientName string
	Date        string
	TimeSlot    string
	Method      entity.PaymentMethod
	Quote       Quote
	PaidAt      time.Time
}

// FormatPHP renders an amount with thousands separators and two decimals,
// matching the clinic's display convention (1300 -> "1,300.00").
func FormatPHP(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String() + fracPart
	}
	return b.String() + fracPart
}

// RenderReceipt produces the fixed-width plain-text receipt: header, patient
// and appointment details, one bullet line per recognized service with a
// right-aligned price, total, payment timestamp, footer.
func RenderReceipt(data ReceiptData) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(receiptDivider + "\n")
	b.WriteString("  SMILE CARE DENTAL CLINIC\n")
	b.WriteString("    OFFICIAL RECEIPT\n")
	b.WriteString(receiptDivider + "\n")
	fmt.Fprintf(&b, "Patient: %s\n", data.PatientName)
	fmt.Fprintf(&b, "Date: %s\n", data.Date)
	fmt.Fprintf(&b, "Time: %s\n", data.TimeSlot)
	fmt.Fprintf(&b, "Payment Method: %s\n", data.Method)
	b.WriteString(receiptDivider + "\n")
	b.WriteString("             SERVICES\n")
	b.WriteString(receiptDivider + "\n")

	for _, item := range data.Quote.LineItems {
		fmt.Fprintf(&b, "  • %-25s PHP %8s\n", item.Name, FormatPHP(item.Price))
	}

	b.WriteString(receiptDivider + "\n")
	fmt.Fprintf(&b, "Total Amount: PHP %s\n", FormatPHP(data.Quote.FinalTotal))
	fmt.Fprintf(&b, "Payment Date: %s\n", data.PaidAt.Format("2006-01-02 15:04"))
	b.WriteString(receiptDivider + "\n")
	b.WriteString("\nThank you for choosing Smile Care Dental Clinic!\n")

	return b.String()
}
