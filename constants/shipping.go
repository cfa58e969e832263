package constants

import "strings"

// PaymentType is the closed set of payment labels printed on labels.
type PaymentType string

const (
	PaymentCOD     PaymentType = "COD"
	PaymentPrepaid PaymentType = "Prepaid"
)

var allPaymentTypes = []PaymentType{
	PaymentCOD,
	PaymentPrepaid,
}

// Couriers is the closed set of courier names recognized on labels, in
// match-priority order.
var Couriers = []string{
	"Valmo",
	"Delhivery",
	"Ecom Express",
	"Xpressbees",
	"Shadowfax",
	"Blue Dart",
}

// PaymentTypesAsStrings returns the payment labels in match-priority order.
func PaymentTypesAsStrings() []string {
	result := make([]string, len(allPaymentTypes))
	for i, p := range allPaymentTypes {
		result[i] = string(p)
	}
	return result
}

// IsCourier reports whether s names a known courier, ignoring case.
func IsCourier(s string) bool {
	for _, c := range Couriers {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
