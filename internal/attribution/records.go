package attribution

// GenerationRecord is one row of the hourly net-generation-by-fuel series.
type GenerationRecord struct {
	Period         string `json:"period"`
	Respondent     string `json:"respondent"`
	RespondentName string `json:"respondent-name,omitempty"`
	FuelType       string `json:"fueltype"`
	TypeName       string `json:"type-name,omitempty"`
	Value          string `json:"value"`
	ValueUnits     string `json:"value-units,omitempty"`
}

// InterchangeRecord is one row of the hourly interchange series. Value is the
// net transfer from FromBA to ToBA; EIA reports imports as negative values.
type InterchangeRecord struct {
	Period     string `json:"period"`
	FromBA     string `json:"fromba"`
	FromBAName string `json:"fromba-name,omitempty"`
	ToBA       string `json:"toba"`
	ToBAName   string `json:"toba-name,omitempty"`
	Value      string `json:"value"`
	ValueUnits string `json:"value-units,omitempty"`
}

// RegionRecord is one row of the hourly demand/net-generation/total-interchange
// series. It is carried through for callers but not used by the solve.
type RegionRecord struct {
	Period         string `json:"period"`
	Respondent     string `json:"respondent"`
	RespondentName string `json:"respondent-name,omitempty"`
	Type           string `json:"type"`
	TypeName       string `json:"type-name,omitempty"`
	Value          string `json:"value"`
	ValueUnits     string `json:"value-units,omitempty"`
}

// HourRecords is the complete input for one hour.
type HourRecords struct {
	Period      string
	Generation  []GenerationRecord
	Interchange []InterchangeRecord
	Region      []RegionRecord
}

// Vector is indexed by registry position.
type Vector []float64

// Matrix is a square matrix indexed by registry position. M[i][j] is the
// transfer from authority i to authority j.
type Matrix [][]float64

func newMatrix(n int) Matrix {
	m := make(Matrix, n)
	cells := make([]float64, n*n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}
	return m
}
