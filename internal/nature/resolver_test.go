package nature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/tables"
)

func TestResolver_OverrideAlwaysWins(t *testing.T) {
	r := Default()

	tests := []struct {
		name      string
		input     model.ClassificationInput
		overrides Overrides
		want      model.ExpenseNature
	}{
		{
			name:      "override contradicts the variable table",
			input:     model.ClassificationInput{CategoryID: "alimentacao"},
			overrides: Overrides{"alimentacao": model.NatureFixed},
			want:      model.NatureFixed,
		},
		{
			name: "override scoped to subcategory",
			input: model.ClassificationInput{
				CategoryID:    "moradia",
				SubcategoryID: "aluguel",
			},
			overrides: Overrides{"moradia::aluguel": model.NatureEventual},
			want:      model.NatureEventual,
		},
		{
			name: "override scoped to merchant",
			input: model.ClassificationInput{
				CategoryID:    "saude",
				SubcategoryID: "academia",
				MerchantKey:   "F:SMARTFIT",
			},
			overrides: Overrides{"saude::academia::F:SMARTFIT": model.NatureVariable},
			want:      model.NatureVariable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(tt.input, tt.overrides, nil)
			assert.Equal(t, tt.want, got.Nature)
			assert.Equal(t, model.SourceUser, got.Source)
			assert.Equal(t, model.ConfidenceUser, got.Confidence)
		})
	}
}

func TestResolver_RuleTable(t *testing.T) {
	r := Default()

	tests := []struct {
		name  string
		input model.ClassificationInput
		want  model.ExpenseNature
	}{
		{
			name:  "eventual category",
			input: model.ClassificationInput{CategoryID: "viagens"},
			want:  model.NatureEventual,
		},
		{
			name: "fixed subcategory",
			input: model.ClassificationInput{
				CategoryID:    "moradia",
				SubcategoryID: "aluguel",
			},
			want: model.NatureFixed,
		},
		{
			name: "whole-category fixed entry",
			input: model.ClassificationInput{
				CategoryID:    "assinaturas",
				SubcategoryID: "streaming",
			},
			want: model.NatureFixed,
		},
		{
			name:  "variable category",
			input: model.ClassificationInput{CategoryID: "lazer"},
			want:  model.NatureVariable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(tt.input, nil, nil)
			assert.Equal(t, tt.want, got.Nature)
			assert.Equal(t, model.SourceSystemRule, got.Source)
			assert.Equal(t, model.ConfidenceRule, got.Confidence)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestResolver_RulePrecedence(t *testing.T) {
	// a category present in all three lists resolves EVENTUAL: the
	// eventual list beats the fixed mapping beats the variable list
	r := NewResolver(tables.NatureTables{
		Eventual: []string{"dupla"},
		Fixed:    []tables.CategoryRule{{Category: "dupla"}},
		Variable: []string{"dupla"},
	})

	got := r.Classify(model.ClassificationInput{CategoryID: "dupla"}, nil, nil)
	assert.Equal(t, model.NatureEventual, got.Nature)

	// and fixed beats variable
	r = NewResolver(tables.NatureTables{
		Fixed:    []tables.CategoryRule{{Category: "dupla"}},
		Variable: []string{"dupla"},
	})
	got = r.Classify(model.ClassificationInput{CategoryID: "dupla"}, nil, nil)
	assert.Equal(t, model.NatureFixed, got.Nature)
}

func TestResolver_DefaultUnknown(t *testing.T) {
	r := Default()

	got := r.Classify(model.ClassificationInput{CategoryID: "desconhecida"}, nil, nil)
	assert.Equal(t, model.NatureUnknown, got.Nature)
	assert.Equal(t, model.SourceSystemRule, got.Source)
	assert.Equal(t, model.ConfidenceUnknown, got.Confidence)
}

func TestResolver_ClassifyBatchMatchesSingle(t *testing.T) {
	r := Default()

	overrides := Overrides{"viagens": model.NatureFixed}
	history := monthlyHistory("saude", "academia", []float64{100, 118, 95})

	inputs := []model.ClassificationInput{
		{CategoryID: "viagens"},
		{CategoryID: "alimentacao"},
		{CategoryID: "moradia", SubcategoryID: "aluguel"},
		{CategoryID: "saude", SubcategoryID: "academia"},
		{CategoryID: "desconhecida"},
	}

	batch := r.ClassifyBatch(inputs, overrides, history)
	assert.Len(t, batch, len(inputs))

	for _, in := range inputs {
		single := r.Classify(in, overrides, history)
		assert.Equal(t, single, batch[in.OverrideKey()],
			"batch result for %q must equal single classification", in.OverrideKey())
	}
}

// monthlyHistory builds one entry per month with the given amounts,
// starting in January 2024.
func monthlyHistory(category, subcategory string, amounts []float64) []model.HistoryEntry {
	entries := make([]model.HistoryEntry, 0, len(amounts))
	for i, amount := range amounts {
		entries = append(entries, model.HistoryEntry{
			Date:          time.Date(2024, time.Month(i+1), 10, 0, 0, 0, 0, time.UTC),
			CategoryID:    category,
			SubcategoryID: subcategory,
			Amount:        amount,
		})
	}
	return entries
}
