package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wine-quality-service/internal/core/domain"
)

func TestPredictRequest_ToFeatureVector(t *testing.T) {
	body := `{"fixed_acidity":1,"volatile_acidity":2,"citric_acid":3,"residual_sugar":4,
		"chlorides":5,"free_sulfur_dioxide":6,"total_sulfur_dioxide":7,"density":8,
		"pH":9,"sulphates":10,"alcohol":11}`

	var req PredictRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	fv := req.ToFeatureVector()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, fv.Values())
}

func TestToPredictResponse(t *testing.T) {
	resp := ToPredictResponse(&domain.PredictionResult{Name: "n", RollNo: "r", WineQuality: 5.5})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"n","roll_no":"r","wine_quality":5.5}`, string(raw))
}
