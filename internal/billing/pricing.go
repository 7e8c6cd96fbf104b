package billing

import (
	"strings"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/shopspring/decimal"
)

// LineItem is one recognized service on a quote or receipt.
type LineItem struct {
	Name  string
	Price decimal.Decimal
}

// Quote is the result of pricing an appointment's services for a patient.
type Quote struct {
	BaseTotal      decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalTotal     decimal.Decimal
	LineItems      []LineItem
}

var (
	rateZero    = decimal.Zero
	rateSenior  = decimal.RequireFromString("0.20")
	rateStudent = decimal.RequireFromString("0.10")
	ratePWD     = decimal.RequireFromString("0.20")
)

// DiscountRate returns the fractional discount for a demographic type.
// Unknown types get no discount.
func DiscountRate(demographic entity.DemographicType) decimal.Decimal {
	switch demographic {
	case entity.DemographicSenior:
		return rateSenior
	case entity.DemographicStudent:
		return rateStudent
	case entity.DemographicPWD:
		return ratePWD
	default:
		return rateZero
	}
}

// ComputeQuote prices the stored services text for a patient demographic.
// A catalog service counts once when its name appears as a substring of the
// services text; names outside the catalog contribute nothing. All arithmetic
// is exact decimal, so FinalTotal = BaseTotal - BaseTotal*rate to the centavo.
func ComputeQuote(servicesText string, demographic entity.DemographicType) Quote {
	base := decimal.Zero
	var items []LineItem

	for _, svc := range catalog {
		if strings.Contains(servicesText, svc.Name) {
			base = base.Add(svc.Price)
			items = append(items, LineItem{Name: svc.Name, Price: svc.Price})
		}
	}

	rate := DiscountRate(demographic)
	discount := base.Mul(rate)

	return Quote{
		BaseTotal:      base,
		DiscountRate:   rate,
		DiscountAmount: discount,
		FinalTotal:     base.Sub(discount),
		LineItems:      items,
	}
}
