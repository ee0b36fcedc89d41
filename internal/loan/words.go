package loan

import "strings"

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "Ten", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords renders a whole peso amount in English words, grouped by
// thousand and million, with a "Pesos" currency suffix. Amounts of one
// billion or more are not supported and render empty.
//
// Quirk carried over from the legacy agreement templates: when the amount
// ends in a teen (10-19) the currency suffix is omitted, so 15 renders as
// "Fifteen" rather than "Fifteen Pesos". The shipped templates bake the
// missing suffix into the surrounding text, so changing it would double it.
func AmountInWords(amount int64) string {
	if amount < 0 || amount >= 1_000_000_000 {
		return ""
	}

	if amount == 0 {
		return "Zero"
	}

	words := spell(amount)
	if r := amount % 100; r >= 10 && r <= 19 {
		return words
	}

	return words + " Pesos"
}

func spell(n int64) string {
	var parts []string

	if m := n / 1_000_000; m > 0 {
		parts = append(parts, spellBelowThousand(m)+" Million")
	}

	if t := (n / 1_000) % 1_000; t > 0 {
		parts = append(parts, spellBelowThousand(t)+" Thousand")
	}

	if r := n % 1_000; r > 0 {
		parts = append(parts, spellBelowThousand(r))
	}

	return strings.Join(parts, " ")
}

func spellBelowThousand(n int64) string {
	var parts []string

	if h := n / 100; h > 0 {
		parts = append(parts, onesWords[h]+" Hundred")
	}

	switch r := n % 100; {
	case r == 0:
	case r < 20:
		parts = append(parts, onesWords[r])
	default:
		w := tensWords[r/10]
		if u := r % 10; u > 0 {
			w += " " + onesWords[u]
		}

		parts = append(parts, w)
	}

	return strings.Join(parts, " ")
}
