package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationInput_OverrideKey(t *testing.T) {
	tests := []struct {
		name  string
		input ClassificationInput
		want  string
	}{
		{
			name:  "category only",
			input: ClassificationInput{CategoryID: "moradia"},
			want:  "moradia",
		},
		{
			name: "category and subcategory",
			input: ClassificationInput{
				CategoryID:    "moradia",
				SubcategoryID: "aluguel",
			},
			want: "moradia::aluguel",
		},
		{
			name: "full key",
			input: ClassificationInput{
				CategoryID:    "saude",
				SubcategoryID: "academia",
				MerchantKey:   "F:SMARTFIT",
			},
			want: "saude::academia::F:SMARTFIT",
		},
		{
			name: "merchant without subcategory is omitted",
			input: ClassificationInput{
				CategoryID:  "saude",
				MerchantKey: "F:SMARTFIT",
			},
			want: "saude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.OverrideKey())
		})
	}
}

func TestExpenseNature_Valid(t *testing.T) {
	for _, n := range []ExpenseNature{NatureFixed, NatureVariable, NatureEventual, NatureUnknown} {
		assert.True(t, n.Valid())
	}
	assert.False(t, ExpenseNature("RECURRING").Valid())
	assert.False(t, ExpenseNature("").Valid())
}

func TestHistoryEntry_Month(t *testing.T) {
	entry := HistoryEntry{Date: time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)}
	assert.Equal(t, "2024-12", entry.Month())
}

func TestFingerprint_Key(t *testing.T) {
	assert.Equal(t, "F:NETFLIX", Fingerprint{Strong: "F:NETFLIX", Weak: "W:netflix"}.Key())
	assert.Equal(t, "W:padaria_ze", Fingerprint{Weak: "W:padaria_ze"}.Key())
	assert.Empty(t, Fingerprint{}.Key())
}

func TestResultRoundTripsThroughJSON(t *testing.T) {
	in := ExpenseNatureResult{
		Nature:     NatureFixed,
		Source:     SourceSystemRule,
		Confidence: 0.95,
		Reason:     "recurring commitment for this category",
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out ExpenseNatureResult
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
