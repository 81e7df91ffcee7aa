package dto

import "wine-quality-service/internal/core/domain"

// ToFeatureVector assumes the request passed binding validation.
func (r *PredictRequest) ToFeatureVector() domain.FeatureVector {
	return domain.FeatureVector{
		FixedAcidity:       *r.FixedAcidity,
		VolatileAcidity:    *r.VolatileAcidity,
		CitricAcid:         *r.CitricAcid,
		ResidualSugar:      *r.ResidualSugar,
		Chlorides:          *r.Chlorides,
		FreeSulfurDioxide:  *r.FreeSulfurDioxide,
		TotalSulfurDioxide: *r.TotalSulfurDioxide,
		Density:            *r.Density,
		PH:                 *r.PH,
		Sulphates:          *r.Sulphates,
		Alcohol:            *r.Alcohol,
	}
}

func ToPredictResponse(result *domain.PredictionResult) PredictResponse {
	return PredictResponse{
		Name:        result.Name,
		RollNo:      result.RollNo,
		WineQuality: result.WineQuality,
	}
}
