package db_models

// Neighborhoods accepted for Building.Neighborhood.
var Neighborhoods = []string{
	"Manhattan - Upper East Side",
	"Manhattan - Upper West Side",
	"Manhattan - Midtown",
	"Manhattan - Chelsea",
	"Manhattan - Greenwich Village",
	"Manhattan - SoHo",
	"Manhattan - Tribeca",
	"Manhattan - Financial District",
	"Manhattan - Harlem",
	"Manhattan - East Village",
	"Manhattan - Lower East Side",
	"Brooklyn - Williamsburg",
	"Brooklyn - DUMBO",
	"Brooklyn - Brooklyn Heights",
	"Brooklyn - Park Slope",
	"Brooklyn - Bushwick",
	"Brooklyn - Bedford-Stuyvesant",
	"Brooklyn - Crown Heights",
	"Brooklyn - Greenpoint",
	"Queens - Astoria",
	"Queens - Long Island City",
	"Queens - Flushing",
	"Queens - Jackson Heights",
	"Bronx - Riverdale",
	"Bronx - Fordham",
	"Staten Island - St. George",
}

// BuildingTypes accepted for Building.BuildingType.
var BuildingTypes = []string{
	"High-rise",
	"Mid-rise",
	"Walk-up",
	"Brownstone",
	"Townhouse",
	"Loft",
	"Co-op",
	"Condo",
}

func IsNeighborhood(s string) bool {
	return contains(Neighborhoods, s)
}

func IsBuildingType(s string) bool {
	return contains(BuildingTypes, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
