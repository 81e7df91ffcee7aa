package domain

import (
	"gonum.org/v1/gonum/mat"
)

// LabelColumn is the dataset column the regressor is trained to predict.
const LabelColumn = "quality"

// FeatureColumns lists the training column names in the order the model was
// fit on. Embedded spaces and the "pH" casing are significant.
var FeatureColumns = []string{
	"fixed acidity",
	"volatile acidity",
	"citric acid",
	"residual sugar",
	"chlorides",
	"free sulfur dioxide",
	"total sulfur dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}

// FeatureVector holds one wine's physicochemical measurements. No range
// checks are applied; values reach the model as given.
type FeatureVector struct {
	FixedAcidity       float64
	VolatileAcidity    float64
	CitricAcid         float64
	ResidualSugar      float64
	Chlorides          float64
	FreeSulfurDioxide  float64
	TotalSulfurDioxide float64
	Density            float64
	PH                 float64
	Sulphates          float64
	Alcohol            float64
}

// Values returns the measurements ordered as FeatureColumns.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.FixedAcidity,
		f.VolatileAcidity,
		f.CitricAcid,
		f.ResidualSugar,
		f.Chlorides,
		f.FreeSulfurDioxide,
		f.TotalSulfurDioxide,
		f.Density,
		f.PH,
		f.Sulphates,
		f.Alcohol,
	}
}

// Frame builds the single-row scoring table for this vector.
func (f FeatureVector) Frame() *Frame {
	columns := make([]string, len(FeatureColumns))
	copy(columns, FeatureColumns)
	return &Frame{
		Columns: columns,
		Data:    mat.NewDense(1, len(columns), f.Values()),
	}
}

// Frame is a table of named numeric columns, one row per observation.
type Frame struct {
	Columns []string
	Data    *mat.Dense
}

// Rows returns the number of observations in the frame.
func (f *Frame) Rows() int {
	if f == nil || f.Data == nil {
		return 0
	}
	r, _ := f.Data.Dims()
	return r
}
