package chart

// Kind is the type of a chart
type Kind string

const (
	KindLine     Kind = "line"
	KindBar      Kind = "bar"
	KindDoughnut Kind = "doughnut"
)

// Chart IDs of the six drawing targets
const (
	ConfirmedCasesByDateID     = "confirmedCasesByDateLineChart"
	ConfirmedCasesByDistrictID = "confirmedCasesByDistrictBarChart"
	DeathCasesByDateID         = "deathCasesByDateLineChart"
	DeathCasesByAreaID         = "deathCasesByDistrictDoughnutChart"
	CumulativeConfirmedID      = "cumulativeLineChart"
	CumulativeDeathsID         = "deathCasesCumulativeLineChart"
)

// IDs lists chart IDs in page order
var IDs = []string{
	ConfirmedCasesByDateID,
	ConfirmedCasesByDistrictID,
	DeathCasesByDateID,
	DeathCasesByAreaID,
	CumulativeConfirmedID,
	CumulativeDeathsID,
}

var (
	confirmedColor  = "#10316b"
	deathColor      = "#222"
	cumulativeColor = "#e25822"

	districtColors = []string{
		"#10316b", "#000000", "#e25822", "#ececeb", "#f6f578", "#f6d743", "#649d66", "#06623b",
		"#10316b", "#000000", "#e25822", "#ececeb", "#f6f578", "#f6d743", "#649d66", "#06623b",
		"#10316b", "#000000", "#e25822", "#ececeb", "#f6f578", "#f6d743",
	}

	areaColors = []string{"#10316b", "#000000", "#e25822", "#ececeb", "#363636"}
)

// Dataset is the single series of a chart
type Dataset struct {
	Label       string   `json:"label"`
	Data        []int    `json:"data"`
	Colors      []string `json:"colors"`
	BorderWidth int      `json:"borderWidth"`
	Fill        bool     `json:"fill"`
}

// Color returns the color of the i-th data point, cycling through Colors
func (d Dataset) Color(i int) string {
	if len(d.Colors) == 0 {
		return ""
	}
	return d.Colors[i%len(d.Colors)]
}

// Definition describes one chart independently of the drawing backend
type Definition struct {
	ID         string   `json:"id"`
	Kind       Kind     `json:"type"`
	Labels     []string `json:"labels"`
	Dataset    Dataset  `json:"dataset"`
	YAxisLabel string   `json:"yAxisLabel,omitempty"`
}
