package nature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/granabr/descritor/internal/model"
)

func TestResolver_RecurrencePromotion(t *testing.T) {
	r := Default()
	academia := model.ClassificationInput{CategoryID: "saude", SubcategoryID: "academia"}

	tests := []struct {
		name       string
		amounts    []float64
		wantNature model.ExpenseNature
		wantSource model.NatureSource
	}{
		{
			name:       "stable amounts promote to fixed",
			amounts:    []float64{100, 118, 95},
			wantNature: model.NatureFixed,
			wantSource: model.SourceAIInference,
		},
		{
			name:       "unstable amounts fall through to unknown",
			amounts:    []float64{100, 130, 90},
			wantNature: model.NatureUnknown,
			wantSource: model.SourceSystemRule,
		},
		{
			name:       "two months are not enough",
			amounts:    []float64{100, 100},
			wantNature: model.NatureUnknown,
			wantSource: model.SourceSystemRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(academia, nil, monthlyHistory("saude", "academia", tt.amounts))
			assert.Equal(t, tt.wantNature, got.Nature)
			assert.Equal(t, tt.wantSource, got.Source)
			if tt.wantNature == model.NatureFixed {
				assert.Equal(t, model.ConfidenceHeuristic, got.Confidence)
			}
		})
	}
}

func TestResolver_RecurrenceSumsWithinMonth(t *testing.T) {
	r := Default()
	in := model.ClassificationInput{CategoryID: "transporte", SubcategoryID: "estacionamento"}

	// two entries in January sum to a stable monthly total
	history := []model.HistoryEntry{
		{Date: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), CategoryID: "transporte", SubcategoryID: "estacionamento", Amount: 40},
		{Date: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), CategoryID: "transporte", SubcategoryID: "estacionamento", Amount: 60},
		{Date: time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC), CategoryID: "transporte", SubcategoryID: "estacionamento", Amount: 100},
		{Date: time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), CategoryID: "transporte", SubcategoryID: "estacionamento", Amount: 95},
	}

	got := r.Classify(in, nil, history)
	assert.Equal(t, model.NatureFixed, got.Nature)
	assert.Equal(t, model.SourceAIInference, got.Source)
}

func TestResolver_RecurrenceGuards(t *testing.T) {
	r := Default()
	history := monthlyHistory("saude", "academia", []float64{100, 100, 100})

	// not attempted without a subcategory
	got := r.Classify(model.ClassificationInput{CategoryID: "saude"}, nil, history)
	assert.Equal(t, model.NatureUnknown, got.Nature)

	// not attempted for pairs outside the candidate list
	got = r.Classify(model.ClassificationInput{CategoryID: "saude", SubcategoryID: "consultas"}, nil, history)
	assert.Equal(t, model.NatureUnknown, got.Nature)

	// not attempted without history
	got = r.Classify(model.ClassificationInput{CategoryID: "saude", SubcategoryID: "academia"}, nil, nil)
	assert.Equal(t, model.NatureUnknown, got.Nature)

	// history for a different pair does not count
	other := monthlyHistory("saude", "personal-trainer", []float64{100, 100, 100})
	got = r.Classify(model.ClassificationInput{CategoryID: "saude", SubcategoryID: "academia"}, nil, other)
	assert.Equal(t, model.NatureUnknown, got.Nature)
}
