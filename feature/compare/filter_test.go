package compare_test

import (
	"testing"

	"head2head/core/athletics"
	"head2head/feature/compare"

	"github.com/stretchr/testify/assert"
)

func TestFilterResults(t *testing.T) {
	tests := []struct {
		name       string
		race       string
		discipline string
		keep       bool
	}{
		{"Final", "F", "1500 Metres", true},
		{"Numbered Final", "F1", "1500 Metres", true},
		{"Empty Round Code", "", "Marathon", true},
		{"Heat", "H1", "1500 Metres", false},
		{"Semifinal", "SF2", "1500 Metres", false},
		{"Preliminary", "PR4", "100 Metres", false},
		{"Qualification", "Q", "Long Jump", false},
		{"Lowercase Heat", "h1", "1500 Metres", false},
		{"Relay Final", "F", "4x400 Metres Relay", false},
		{"Medley", "F", "Distance Medley Relay", false},
		{"Shorthand Relay", "F", "4x100m", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := []athletics.Result{{Race: tc.race, Discipline: tc.discipline}}
			got := compare.FilterResults(in)
			if tc.keep {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFilterResultsIdempotent(t *testing.T) {
	in := []athletics.Result{
		{Race: "F", Discipline: "1500 Metres"},
		{Race: "H1", Discipline: "1500 Metres"},
		{Race: "F", Discipline: "4x400 Metres Relay"},
	}

	once := compare.FilterResults(in)
	twice := compare.FilterResults(once)
	assert.Equal(t, once, twice)
}
