// Package export turns computed results into tabular row/column structures
// the presentation layer can render directly or write as delimited files,
// plus the INR display formatting used throughout.
package export

import (
	"fmt"
	"strings"
)

// FormatINRLakhs formats an amount in lakhs (1 lakh = 100,000): "₹62.5L".
func FormatINRLakhs(amount float64) string {
	return "₹" + groupThousands(fmt.Sprintf("%.1f", amount/100000)) + "L"
}

// FormatINRCrores formats an amount in crores (1 crore = 10,000,000): "₹1.23Cr".
func FormatINRCrores(amount float64) string {
	return "₹" + groupThousands(fmt.Sprintf("%.2f", amount/10000000)) + "Cr"
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatRupees formats a plain per-order rupee amount: "₹3.25".
func FormatRupees(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// groupThousands inserts comma separators into the integer part of an
// already-formatted number ("12345.6" -> "12,345.6").
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
