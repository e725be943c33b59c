package mpin

// GenerateCandidates expands the static pattern tables plus any demographic
// fragment mappings into the full candidate set of weak PINs for the target
// length. It never fails: absent demographic input is valid and yields the
// static set alone.
//
// Generation is idempotent and monotone: identical inputs produce identical
// sets, and supplying more demographic dates only ever adds candidates.
func GenerateCandidates(targetLength int, mappings ...Fragments) CandidateSet {
	set := staticCandidates(targetLength)
	addDemographicCandidates(set, targetLength, mappings)
	return set
}

// staticCandidates builds the origin-independent portion of the candidate
// set: sequences, repeats, and keypad chains.
func staticCandidates(length int) CandidateSet {
	set := make(CandidateSet)
	for _, pin := range sequentialRuns(length) {
		set.add(pin, ReasonSequential)
	}
	for _, pin := range repeatedRuns(length) {
		set.add(pin, ReasonRepeated)
	}
	for _, pin := range keypadChains[length] {
		set.add(pin, ReasonKeyboardPattern)
	}
	return set
}

// addDemographicCandidates folds every full-width fragment into the set,
// tagged with its origin. Two origins colliding on the same numeric string
// union their tags rather than overwriting.
func addDemographicCandidates(set CandidateSet, targetLength int, mappings []Fragments) {
	for _, m := range mappings {
		code := m.Origin.DirectCode()
		for _, value := range m.Direct {
			if len(value) == targetLength {
				set.add(value, code)
			}
		}
	}
}
