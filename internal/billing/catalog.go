package billing

import (
	"github.com/shopspring/decimal"
)

// Service is one billable procedure from the clinic's fixed price list.
type Service struct {
	Name  string
	Price decimal.Decimal
}

// catalog is loaded once at process start and never mutated. Prices in PHP.
var catalog = []Service{
	{Name: "Dental Cleaning", Price: decimal.NewFromInt(500)},
	{Name: "Tooth Extraction", Price: decimal.NewFromInt(1000)},
	{Name: "Braces Consultation", Price: decimal.NewFromInt(700)},
	{Name: "Whitening", Price: decimal.NewFromInt(1200)},
	{Name: "Dental Check-up", Price: decimal.NewFromInt(300)},
	{Name: "Root Canal", Price: decimal.NewFromInt(3500)},
	{Name: "Dental Filling", Price: decimal.NewFromInt(1500)},
	{Name: "X-Ray", Price: decimal.NewFromInt(800)},
	{Name: "Gum Treatment", Price: decimal.NewFromInt(2000)},
	{Name: "Dental Implant", Price: decimal.NewFromInt(8000)},
}

// Catalog returns the service price list in display order.
func Catalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}

// LookupService returns the catalog entry with the given name.
func LookupService(name string) (Service, bool) {
	for _, svc := range catalog {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}
