package mpin

import "strings"

// DetectSpecialPatterns searches for higher-order transformations that
// direct set membership misses: reversals, constant digit shifts,
// palindromes, and partial date matches. Checks are independent and
// additive; none suppresses another, and the result only depends on the
// inputs, never on check order.
func DetectSpecialPatterns(pin string, mappings ...Fragments) []ReasonCode {
	var found []ReasonCode

	if isPalindrome(pin) {
		found = append(found, ReasonPalindrome)
	}

	for _, m := range mappings {
		reversed := false
		shifted := false
		partial := false

		for name, value := range m.Direct {
			if len(value) != len(pin) {
				continue
			}
			// Reversal compares against the base fragments only; reversing
			// a reversed fragment would just re-derive the original. The
			// shift check ranges over every fragment, since a shift of a
			// reversed fragment is not derivable from shifting its base.
			if !strings.HasPrefix(name, "reversed") && pin == reverse(value) {
				reversed = true
			}
			if isConstantShift(pin, value) {
				shifted = true
			}
		}

		for _, value := range m.Parts {
			if len(value) >= 3 && len(value) < len(pin) && strings.Contains(pin, value) {
				partial = true
			}
		}

		if reversed {
			found = append(found, m.Origin.ReversedCode())
		}
		if shifted {
			found = append(found, ReasonShiftedPattern)
		}
		if partial {
			found = append(found, m.Origin.PartialCode())
		}
	}

	return found
}

// isPalindrome reports whether the PIN reads the same reversed.
func isPalindrome(pin string) bool {
	return pin == reverse(pin)
}

// isConstantShift reports whether pin equals fragment with every digit
// shifted by the same offset 1-9 (mod 10).
func isConstantShift(pin, fragment string) bool {
	if len(pin) != len(fragment) || len(pin) == 0 {
		return false
	}
	offset := (int(pin[0]-'0') - int(fragment[0]-'0') + 10) % 10
	if offset == 0 {
		return false
	}
	for i := 1; i < len(pin); i++ {
		if (int(fragment[i]-'0')+offset)%10 != int(pin[i]-'0') {
			return false
		}
	}
	return true
}
