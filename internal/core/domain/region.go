package domain

// Region is a coarse geographic grouping used to scope country choice.
type Region string

const (
	RegionNorthAmerica Region = "north-america"
	RegionSouthAmerica Region = "south-america"
	RegionEurope       Region = "europe"
	RegionMENA         Region = "mena"
	RegionAsia         Region = "asia"
	RegionAfrica       Region = "africa"
	RegionAustralia    Region = "australia"
	RegionRussia       Region = "russia"
)

// RegionInfo is the presentation entry for a region in the reference catalog.
type RegionInfo struct {
	ID     Region `json:"id"`
	Name   string `json:"name"`   // e.g., "North America"
	NameAr string `json:"nameAr"` // Arabic display name
}

// Country is a selectable locale entity with an associated region and default currency.
type Country struct {
	Code            string `json:"code"` // e.g., "US"
	Name            string `json:"name"`
	Flag            string `json:"flag"`
	Region          Region `json:"region"`
	DefaultCurrency string `json:"defaultCurrency"`
	Language        string `json:"language"`
}
