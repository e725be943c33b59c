package mpin

import "strings"

// Static pattern tables. These are process-wide constant data: loaded once,
// never mutated. The keypad chains are a fixed, documented selection of
// vertical, horizontal, diagonal, and knight-walk traversals of the 3x4
// phone keypad; pure ascending/descending runs are covered by the
// sequential rule instead.
var keypadChains = map[int][]string{
	PINLength4: {
		"2580", "0852", // center column down / up
		"1470", "0741", // left column down / up
		"3690", "0963", // right column down / up
		"1357", "7531", "3159", "9513", // diagonals
		"1236", "3214", "7894", "4561", "3698", "1593", "8520", "7410",
	},
	PINLength6: {
		"147258", "258369", "369258", "258147", // column pairs
		"147852", "963852", "852963", "741852", "258963",
		"159753", "753159", "963147", // zigzags
		"123654", "456123", "789456", "321654", "654987", "123698",
	},
}

// sequentialRuns returns every strictly ascending and descending digit run of
// the given length, without wrap-around (1234, 6789, 9876, 3210, ...).
func sequentialRuns(length int) []string {
	runs := make([]string, 0, 2*(11-length))
	for start := 0; start <= 10-length; start++ {
		var asc, desc strings.Builder
		for i := 0; i < length; i++ {
			asc.WriteByte(byte('0' + start + i))
			desc.WriteByte(byte('0' + start + length - 1 - i))
		}
		runs = append(runs, asc.String(), desc.String())
	}
	return runs
}

// repeatedRuns returns the all-same-digit PINs plus the pair and triplet
// repetition forms for the given length (ABAB/ABBA for 4, ABABAB/ABCABC
// for 6).
func repeatedRuns(length int) []string {
	runs := make([]string, 0, 10+100)
	for d := byte('0'); d <= '9'; d++ {
		runs = append(runs, strings.Repeat(string(d), length))
	}
	for a := byte('0'); a <= '9'; a++ {
		for b := byte('0'); b <= '9'; b++ {
			if a == b {
				continue
			}
			pair := string(a) + string(b)
			switch length {
			case PINLength4:
				runs = append(runs, pair+pair)
				runs = append(runs, pair+string(b)+string(a))
			case PINLength6:
				runs = append(runs, pair+pair+pair)
				triplet := pair + string((a-'0'+b-'0')%10+'0')
				runs = append(runs, triplet+triplet)
			}
		}
	}
	return runs
}
