package dto

// PredictRequest fields are pointers so that a missing or null field fails
// the required check instead of decoding as zero.
type PredictRequest struct {
	FixedAcidity       *float64 `json:"fixed_acidity" binding:"required"`
	VolatileAcidity    *float64 `json:"volatile_acidity" binding:"required"`
	CitricAcid         *float64 `json:"citric_acid" binding:"required"`
	ResidualSugar      *float64 `json:"residual_sugar" binding:"required"`
	Chlorides          *float64 `json:"chlorides" binding:"required"`
	FreeSulfurDioxide  *float64 `json:"free_sulfur_dioxide" binding:"required"`
	TotalSulfurDioxide *float64 `json:"total_sulfur_dioxide" binding:"required"`
	Density            *float64 `json:"density" binding:"required"`
	PH                 *float64 `json:"pH" binding:"required"`
	Sulphates          *float64 `json:"sulphates" binding:"required"`
	Alcohol            *float64 `json:"alcohol" binding:"required"`
}

type PredictResponse struct {
	Name        string  `json:"name"`
	RollNo      string  `json:"roll_no"`
	WineQuality float64 `json:"wine_quality"`
}

type RootResponse struct {
	Message string `json:"message"`
}
