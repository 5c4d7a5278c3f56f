package schema

// CaseRecord is one confirmed case as published by the data source
type CaseRecord struct {
	Date               string `json:"date"`
	HealthCareDistrict string `json:"healthCareDistrict"`
}

// DeathRecord is one death case as published by the data source
type DeathRecord struct {
	Date string `json:"date"`
	Area string `json:"area"`
}

// Dataset is the response body of the corona data endpoint
type Dataset struct {
	Confirmed []CaseRecord  `json:"confirmed"`
	Deaths    []DeathRecord `json:"deaths"`
}
