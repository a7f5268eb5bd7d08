package viewmodel

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Textos de ausencia que renderiza la UI.
const (
	NotSpecified = "Not specified"
	NotProvided  = "Not provided"
	NotAvailable = "N/A"
)

// Formato monetario fijo en-US / USD / 0 decimales. Es política fija del
// producto (mercado EE.UU.), no un parámetro por caller.
var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formatea un monto en USD sin decimales: 1500 -> "$1,500".
// Cero se trata como ausente y devuelve "Not specified" (quirk heredado del
// producto: ningún ingreso o renta legítimo es exactamente cero).
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsZero() {
		return NotSpecified
	}
	f, _ := amount.Round(0).Float64()
	return usPrinter.Sprintf("$%v", number.Decimal(f, number.MaxFractionDigits(0)))
}

// FormatCurrencyPtr variante para montos opcionales: nil -> "Not specified".
func FormatCurrencyPtr(amount *decimal.Decimal) string {
	if amount == nil {
		return NotSpecified
	}
	return FormatCurrency(*amount)
}

// FormatAMIPercent formatea la banda AMI: 60 -> "60% AMI". Cero -> "N/A".
func FormatAMIPercent(pct int) string {
	if pct <= 0 {
		return NotAvailable
	}
	return usPrinter.Sprintf("%d%% AMI", pct)
}

// coalesce devuelve el primer string no vacío, o fallback.
func coalesce(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}
