package mpin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFragments(t *testing.T, d Date, origin Origin, length int) Fragments {
	t.Helper()
	frags, err := ExtractDateFragments(d, length)
	require.NoError(t, err)
	frags.Origin = origin
	return frags
}

func TestGenerateCandidates_Static(t *testing.T) {
	t.Run("length 4 tables", func(t *testing.T) {
		set := GenerateCandidates(PINLength4)

		assert.Contains(t, set["1234"], ReasonSequential)
		assert.Contains(t, set["6543"], ReasonSequential)
		assert.Contains(t, set["7777"], ReasonRepeated)
		assert.Contains(t, set["1212"], ReasonRepeated)
		assert.Contains(t, set["1221"], ReasonRepeated)
		assert.Contains(t, set["2580"], ReasonKeyboardPattern)
		assert.Contains(t, set["1470"], ReasonKeyboardPattern)

		assert.NotContains(t, set, "7391")
	})

	t.Run("length 6 tables", func(t *testing.T) {
		set := GenerateCandidates(PINLength6)

		assert.Contains(t, set["123456"], ReasonSequential)
		assert.Contains(t, set["654321"], ReasonSequential)
		assert.Contains(t, set["999999"], ReasonRepeated)
		assert.Contains(t, set["121212"], ReasonRepeated)
		assert.Contains(t, set["123123"], ReasonRepeated)
		assert.Contains(t, set["147258"], ReasonKeyboardPattern)
	})
}

func TestGenerateCandidates_Demographic(t *testing.T) {
	birth := mustFragments(t, Date{Year: 1995, Month: 2, Day: 9}, OriginBirthdate, PINLength4)

	t.Run("direct fragments join the set tagged by origin", func(t *testing.T) {
		set := GenerateCandidates(PINLength4, birth)

		assert.Contains(t, set["0209"], ReasonBirthdate)
		assert.Contains(t, set["0902"], ReasonBirthdate)
		assert.Contains(t, set["1995"], ReasonBirthdate)
		// Reversal fragments are first-class members.
		assert.Contains(t, set["9020"], ReasonBirthdate)
	})

	t.Run("colliding origins union their tags", func(t *testing.T) {
		anniv := mustFragments(t, Date{Year: 2015, Month: 5, Day: 24}, OriginAnniversary, PINLength4)
		spouse := mustFragments(t, Date{Year: 1990, Month: 5, Day: 24}, OriginSpouseBirthdate, PINLength4)

		set := GenerateCandidates(PINLength4, spouse, anniv)
		assert.ElementsMatch(t,
			[]ReasonCode{ReasonSpouseBirthdate, ReasonAnniversary},
			set["0524"])
	})

	t.Run("static collision keeps both tags", func(t *testing.T) {
		frags := mustFragments(t, Date{Year: 1980, Month: 3, Day: 25}, OriginBirthdate, PINLength4)

		set := GenerateCandidates(PINLength4, frags)
		assert.ElementsMatch(t,
			[]ReasonCode{ReasonKeyboardPattern, ReasonBirthdate},
			set["2580"])
	})
}

func TestGenerateCandidates_Properties(t *testing.T) {
	birth := mustFragments(t, Date{Year: 1995, Month: 2, Day: 9}, OriginBirthdate, PINLength4)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t,
			GenerateCandidates(PINLength4, birth),
			GenerateCandidates(PINLength4, birth))
	})

	t.Run("monotone", func(t *testing.T) {
		static := GenerateCandidates(PINLength4)
		enriched := GenerateCandidates(PINLength4, birth)

		for pin, tags := range static {
			require.Contains(t, enriched, pin)
			for _, tag := range tags {
				assert.Contains(t, enriched[pin], tag, "pin %s", pin)
			}
		}
	})

	t.Run("tags are distinct per candidate", func(t *testing.T) {
		set := GenerateCandidates(PINLength4, birth, birth)
		for pin, tags := range set {
			seen := make(map[ReasonCode]struct{}, len(tags))
			for _, tag := range tags {
				_, dup := seen[tag]
				assert.False(t, dup, "pin %s repeats tag %s", pin, tag)
				seen[tag] = struct{}{}
			}
		}
	})
}
