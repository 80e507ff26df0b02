package models

type Dimension string

const (
	DimensionFinancial        Dimension = "financial"
	DimensionLifestyle        Dimension = "lifestyle"
	DimensionTimeIndependence Dimension = "timeIndependence"
	DimensionAlignment        Dimension = "alignment"
)

// Label returns the human readable dimension name used in generated text.
func (d Dimension) Label() string {
	switch d {
	case DimensionFinancial:
		return "Financial Outlook"
	case DimensionLifestyle:
		return "Lifestyle Fit"
	case DimensionTimeIndependence:
		return "Time to Independence"
	case DimensionAlignment:
		return "Personal Alignment"
	}
	return string(d)
}

// Scores holds the four 0-100 dimension scores of one path.
type Scores struct {
	Financial        int `json:"financial"`
	Lifestyle        int `json:"lifestyle"`
	TimeIndependence int `json:"timeIndependence"`
	Alignment        int `json:"alignment"`
}

// Get returns the score of a single dimension.
func (s Scores) Get(d Dimension) int {
	switch d {
	case DimensionFinancial:
		return s.Financial
	case DimensionLifestyle:
		return s.Lifestyle
	case DimensionTimeIndependence:
		return s.TimeIndependence
	case DimensionAlignment:
		return s.Alignment
	}
	return 0
}

// PreferenceWeights are relative importances; they need not sum to anything.
type PreferenceWeights struct {
	FinancialWeight float64 `json:"financialWeight"`
	LifestyleWeight float64 `json:"lifestyleWeight"`
	TimeWeight      float64 `json:"timeWeight"`
	AlignmentWeight float64 `json:"alignmentWeight"`
}

// Get returns the weight attached to a dimension.
func (w PreferenceWeights) Get(d Dimension) float64 {
	switch d {
	case DimensionFinancial:
		return w.FinancialWeight
	case DimensionLifestyle:
		return w.LifestyleWeight
	case DimensionTimeIndependence:
		return w.TimeWeight
	case DimensionAlignment:
		return w.AlignmentWeight
	}
	return 0
}

type ScoredPath struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Scores       Scores `json:"scores"`
	OverallScore int    `json:"overallScore"`
}

// PathPick references a path chosen by the recommender together with the
// score that won it the pick.
type PathPick struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type Tradeoff struct {
	PathID      string    `json:"pathId"`
	PathName    string    `json:"pathName"`
	Dimension   Dimension `json:"dimension"`
	Gap         int       `json:"gap"`
	Description string    `json:"description"`
}

type Recommendation struct {
	BestOverall   *PathPick    `json:"bestOverall"`
	BestFinancial *PathPick    `json:"bestFinancial"`
	BestLifestyle *PathPick    `json:"bestLifestyle"`
	BestLowRisk   *PathPick    `json:"bestLowRisk"`
	Reasoning     string       `json:"reasoning"`
	Tradeoffs     []Tradeoff   `json:"tradeoffs"`
	AllRanked     []ScoredPath `json:"allRanked"`
}
