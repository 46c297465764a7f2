package espn

import "strings"

// franchiseIDs maps every NFL team abbreviation to its ESPN numeric
// team ID. The IDs are assigned by ESPN and are not contiguous.
var franchiseIDs = map[string]int{
	"ARI": 22, // Arizona Cardinals
	"ATL": 1,  // Atlanta Falcons
	"BAL": 33, // Baltimore Ravens
	"BUF": 2,  // Buffalo Bills
	"CAR": 29, // Carolina Panthers
	"CHI": 3,  // Chicago Bears
	"CIN": 4,  // Cincinnati Bengals
	"CLE": 5,  // Cleveland Browns
	"DAL": 6,  // Dallas Cowboys
	"DEN": 7,  // Denver Broncos
	"DET": 8,  // Detroit Lions
	"GB":  9,  // Green Bay Packers
	"HOU": 34, // Houston Texans
	"IND": 11, // Indianapolis Colts
	"JAX": 30, // Jacksonville Jaguars
	"KC":  12, // Kansas City Chiefs
	"LV":  13, // Las Vegas Raiders
	"LAC": 24, // Los Angeles Chargers
	"LAR": 14, // Los Angeles Rams
	"MIA": 15, // Miami Dolphins
	"MIN": 16, // Minnesota Vikings
	"NE":  17, // New England Patriots
	"NO":  18, // New Orleans Saints
	"NYG": 19, // New York Giants
	"NYJ": 20, // New York Jets
	"PHI": 21, // Philadelphia Eagles
	"PIT": 23, // Pittsburgh Steelers
	"SF":  25, // San Francisco 49ers
	"SEA": 26, // Seattle Seahawks
	"TB":  27, // Tampa Bay Buccaneers
	"TEN": 10, // Tennessee Titans
	"WAS": 28, // Washington Commanders
}

// TeamID resolves a team abbreviation ("KC", "SF") to ESPN's numeric
// team ID. The second return is false for unknown abbreviations.
func TeamID(abbreviation string) (int, bool) {
	id, ok := franchiseIDs[strings.ToUpper(abbreviation)]
	return id, ok
}

// TeamAbbreviations returns all known abbreviations, unordered.
func TeamAbbreviations() []string {
	abbrs := make([]string, 0, len(franchiseIDs))
	for abbr := range franchiseIDs {
		abbrs = append(abbrs, abbr)
	}
	return abbrs
}
