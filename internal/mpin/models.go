package mpin

import (
	"sort"
	"time"
)

// Supported PIN lengths.
const (
	PINLength4 = 4
	PINLength6 = 6
)

// Strength is the derived verdict for a submitted PIN.
type Strength string

const (
	StrengthStrong Strength = "STRONG"
	StrengthWeak   Strength = "WEAK"
)

// ReasonCode identifies why a PIN matched a weakness rule.
type ReasonCode string

// Static rules, demographic direct matches, and special-pattern findings.
const (
	ReasonSequential      ReasonCode = "SEQUENTIAL"
	ReasonRepeated        ReasonCode = "REPEATED"
	ReasonKeyboardPattern ReasonCode = "KEYBOARD_PATTERN"

	ReasonBirthdate       ReasonCode = "BIRTHDATE"
	ReasonSpouseBirthdate ReasonCode = "SPOUSE_BIRTHDATE"
	ReasonAnniversary     ReasonCode = "ANNIVERSARY"

	ReasonBirthdateReversed       ReasonCode = "BIRTHDATE_REVERSED"
	ReasonSpouseBirthdateReversed ReasonCode = "SPOUSE_BIRTHDATE_REVERSED"
	ReasonAnniversaryReversed     ReasonCode = "ANNIVERSARY_REVERSED"
	ReasonShiftedPattern          ReasonCode = "SHIFTED_PATTERN"
	ReasonPalindrome              ReasonCode = "PALINDROME"
	ReasonPartialBirthdate        ReasonCode = "PARTIAL_BIRTHDATE"
	ReasonPartialSpouseBirthdate  ReasonCode = "PARTIAL_SPOUSE_BIRTHDATE"
	ReasonPartialAnniversary      ReasonCode = "PARTIAL_ANNIVERSARY"
)

// reasonOrder is the single source of truth for report ordering: static rules
// first, then direct demographic matches, then special-pattern findings.
var reasonOrder = []ReasonCode{
	ReasonSequential,
	ReasonRepeated,
	ReasonKeyboardPattern,
	ReasonBirthdate,
	ReasonSpouseBirthdate,
	ReasonAnniversary,
	ReasonBirthdateReversed,
	ReasonSpouseBirthdateReversed,
	ReasonAnniversaryReversed,
	ReasonShiftedPattern,
	ReasonPalindrome,
	ReasonPartialBirthdate,
	ReasonPartialSpouseBirthdate,
	ReasonPartialAnniversary,
}

var reasonRank = func() map[ReasonCode]int {
	ranks := make(map[ReasonCode]int, len(reasonOrder))
	for i, c := range reasonOrder {
		ranks[c] = i
	}
	return ranks
}()

// IsValid checks if the reason code is one of the supported enum values.
func (c ReasonCode) IsValid() bool {
	_, ok := reasonRank[c]
	return ok
}

// String returns the string representation of the reason code.
func (c ReasonCode) String() string {
	return string(c)
}

// Describe returns a human-readable explanation for display surfaces.
func (c ReasonCode) Describe() string {
	switch c {
	case ReasonSequential:
		return "ascending or descending digit sequence"
	case ReasonRepeated:
		return "repeated digit pattern"
	case ReasonKeyboardPattern:
		return "geometric pattern on the phone keypad"
	case ReasonBirthdate:
		return "matches your date of birth"
	case ReasonSpouseBirthdate:
		return "matches your spouse's date of birth"
	case ReasonAnniversary:
		return "matches your wedding anniversary"
	case ReasonBirthdateReversed:
		return "reversal of your date of birth"
	case ReasonSpouseBirthdateReversed:
		return "reversal of your spouse's date of birth"
	case ReasonAnniversaryReversed:
		return "reversal of your wedding anniversary"
	case ReasonShiftedPattern:
		return "personal date with every digit shifted by a constant"
	case ReasonPalindrome:
		return "reads the same forwards and backwards"
	case ReasonPartialBirthdate:
		return "contains part of your date of birth"
	case ReasonPartialSpouseBirthdate:
		return "contains part of your spouse's date of birth"
	case ReasonPartialAnniversary:
		return "contains part of your wedding anniversary"
	}
	return string(c)
}

// sortReasons orders codes by their fixed rank, in place.
func sortReasons(codes []ReasonCode) {
	sort.Slice(codes, func(i, j int) bool {
		return reasonRank[codes[i]] < reasonRank[codes[j]]
	})
}

// Origin identifies the semantic source of a demographic date.
type Origin string

const (
	OriginBirthdate       Origin = "birthdate"
	OriginSpouseBirthdate Origin = "spouse_birthdate"
	OriginAnniversary     Origin = "anniversary"
)

// DirectCode returns the reason tag for direct candidate-set membership.
func (o Origin) DirectCode() ReasonCode {
	switch o {
	case OriginSpouseBirthdate:
		return ReasonSpouseBirthdate
	case OriginAnniversary:
		return ReasonAnniversary
	}
	return ReasonBirthdate
}

// ReversedCode returns the reason tag for the special reversal check.
func (o Origin) ReversedCode() ReasonCode {
	switch o {
	case OriginSpouseBirthdate:
		return ReasonSpouseBirthdateReversed
	case OriginAnniversary:
		return ReasonAnniversaryReversed
	}
	return ReasonBirthdateReversed
}

// PartialCode returns the reason tag for the special substring check.
func (o Origin) PartialCode() ReasonCode {
	switch o {
	case OriginSpouseBirthdate:
		return ReasonPartialSpouseBirthdate
	case OriginAnniversary:
		return ReasonPartialAnniversary
	}
	return ReasonPartialBirthdate
}

// Fragments is the mapping of named numeric fragments extracted from one
// demographic date, split by how they participate in detection.
//
// Direct entries are exactly as wide as the target PIN length and become
// candidate-set members. Parts are narrower building blocks consumed by the
// special-pattern detector.
type Fragments struct {
	Origin Origin
	Direct map[string]string
	Parts  map[string]string
}

// CandidateSet maps each weak candidate PIN to the reasons it was generated.
// A candidate produced by independent rules carries all of their tags.
type CandidateSet map[string][]ReasonCode

func (cs CandidateSet) add(pin string, code ReasonCode) {
	for _, have := range cs[pin] {
		if have == code {
			return
		}
	}
	cs[pin] = append(cs[pin], code)
}

func (cs CandidateSet) clone() CandidateSet {
	out := make(CandidateSet, len(cs))
	for pin, codes := range cs {
		out[pin] = append([]ReasonCode(nil), codes...)
	}
	return out
}

// ValidateRequest carries one PIN evaluation: the submitted PIN, its declared
// length, and any demographic dates the caller chose to supply.
type ValidateRequest struct {
	PIN             string
	Length          int
	Birthdate       *Date
	SpouseBirthdate *Date
	Anniversary     *Date
}

// Report is the outcome of a single validation call. Reasons are distinct and
// ordered by the fixed category ranking; Strength is WEAK iff Reasons is
// non-empty.
type Report struct {
	PIN         string
	Length      int
	Strength    Strength
	Reasons     []ReasonCode
	EvaluatedAt time.Time
}
