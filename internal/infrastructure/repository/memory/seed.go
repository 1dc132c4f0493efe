package memory

import "github.com/huddlebot/huddle/internal/domain/team"

// SeedTeams returns the static FBS team table. Order matters: fuzzy search
// results keep this order, so teams are grouped by conference the way the
// league reads them.
func SeedTeams() []team.Team {
	return []team.Team{
		// SEC
		{Name: "Alabama", Conference: "SEC", LogoAssetID: 333},
		{Name: "Arkansas", Conference: "SEC", LogoAssetID: 8},
		{Name: "Auburn", Conference: "SEC", LogoAssetID: 2},
		{Name: "Florida", Conference: "SEC", LogoAssetID: 57},
		{Name: "Georgia", Conference: "SEC", LogoAssetID: 61},
		{Name: "Kentucky", Conference: "SEC", LogoAssetID: 96},
		{Name: "LSU", Conference: "SEC", LogoAssetID: 99},
		{Name: "Mississippi State", Conference: "SEC", LogoAssetID: 344},
		{Name: "Missouri", Conference: "SEC", LogoAssetID: 142},
		{Name: "Oklahoma", Conference: "SEC", LogoAssetID: 201},
		{Name: "Ole Miss", Conference: "SEC", LogoAssetID: 145},
		{Name: "South Carolina", Conference: "SEC", LogoAssetID: 2579},
		{Name: "Tennessee", Conference: "SEC", LogoAssetID: 2633},
		{Name: "Texas", Conference: "SEC", LogoAssetID: 251},
		{Name: "Texas A&M", Conference: "SEC", LogoAssetID: 245},
		{Name: "Vanderbilt", Conference: "SEC", LogoAssetID: 238},

		// Big Ten
		{Name: "Illinois", Conference: "Big Ten", LogoAssetID: 356},
		{Name: "Indiana", Conference: "Big Ten", LogoAssetID: 84},
		{Name: "Iowa", Conference: "Big Ten", LogoAssetID: 2294},
		{Name: "Maryland", Conference: "Big Ten", LogoAssetID: 120},
		{Name: "Michigan", Conference: "Big Ten", LogoAssetID: 130},
		{Name: "Michigan State", Conference: "Big Ten", LogoAssetID: 127},
		{Name: "Minnesota", Conference: "Big Ten", LogoAssetID: 135},
		{Name: "Nebraska", Conference: "Big Ten", LogoAssetID: 158},
		{Name: "Northwestern", Conference: "Big Ten", LogoAssetID: 77},
		{Name: "Ohio State", Conference: "Big Ten", LogoAssetID: 194},
		{Name: "Oregon", Conference: "Big Ten", LogoAssetID: 2483},
		{Name: "Penn State", Conference: "Big Ten", LogoAssetID: 213},
		{Name: "Purdue", Conference: "Big Ten", LogoAssetID: 2509},
		{Name: "Rutgers", Conference: "Big Ten", LogoAssetID: 164},
		{Name: "UCLA", Conference: "Big Ten", LogoAssetID: 26},
		{Name: "USC", Conference: "Big Ten", LogoAssetID: 30},
		{Name: "Washington", Conference: "Big Ten", LogoAssetID: 264},
		{Name: "Wisconsin", Conference: "Big Ten", LogoAssetID: 275},

		// Big 12
		{Name: "Arizona", Conference: "Big 12", LogoAssetID: 12},
		{Name: "Arizona State", Conference: "Big 12", LogoAssetID: 9},
		{Name: "Baylor", Conference: "Big 12", LogoAssetID: 239},
		{Name: "BYU", Conference: "Big 12", LogoAssetID: 252},
		{Name: "Cincinnati", Conference: "Big 12", LogoAssetID: 2132},
		{Name: "Colorado", Conference: "Big 12", LogoAssetID: 38},
		{Name: "Houston", Conference: "Big 12", LogoAssetID: 248},
		{Name: "Iowa State", Conference: "Big 12", LogoAssetID: 66},
		{Name: "Kansas", Conference: "Big 12", LogoAssetID: 2305},
		{Name: "Kansas State", Conference: "Big 12", LogoAssetID: 2306},
		{Name: "Oklahoma State", Conference: "Big 12", LogoAssetID: 197},
		{Name: "TCU", Conference: "Big 12", LogoAssetID: 2628},
		{Name: "Texas Tech", Conference: "Big 12", LogoAssetID: 2641},
		{Name: "UCF", Conference: "Big 12", LogoAssetID: 2116},
		{Name: "Utah", Conference: "Big 12", LogoAssetID: 254},
		{Name: "West Virginia", Conference: "Big 12", LogoAssetID: 277},

		// ACC
		{Name: "Boston College", Conference: "ACC", LogoAssetID: 103},
		{Name: "California", Conference: "ACC", LogoAssetID: 25},
		{Name: "Clemson", Conference: "ACC", LogoAssetID: 228},
		{Name: "Duke", Conference: "ACC", LogoAssetID: 150},
		{Name: "Florida State", Conference: "ACC", LogoAssetID: 52},
		{Name: "Georgia Tech", Conference: "ACC", LogoAssetID: 59},
		{Name: "Louisville", Conference: "ACC", LogoAssetID: 97},
		{Name: "Miami", Conference: "ACC", LogoAssetID: 2390},
		{Name: "NC State", Conference: "ACC", LogoAssetID: 152},
		{Name: "North Carolina", Conference: "ACC", LogoAssetID: 153},
		{Name: "Pittsburgh", Conference: "ACC", LogoAssetID: 221},
		{Name: "SMU", Conference: "ACC", LogoAssetID: 2567},
		{Name: "Stanford", Conference: "ACC", LogoAssetID: 24},
		{Name: "Syracuse", Conference: "ACC", LogoAssetID: 183},
		{Name: "Virginia", Conference: "ACC", LogoAssetID: 258},
		{Name: "Virginia Tech", Conference: "ACC", LogoAssetID: 259},
		{Name: "Wake Forest", Conference: "ACC", LogoAssetID: 154},

		// Independents and Group of Five regulars
		{Name: "Notre Dame", Conference: "Independent", LogoAssetID: 87},
		{Name: "Army", Conference: "Independent", LogoAssetID: 349},
		{Name: "Navy", Conference: "AAC", LogoAssetID: 2426},
		{Name: "Memphis", Conference: "AAC", LogoAssetID: 235},
		{Name: "Tulane", Conference: "AAC", LogoAssetID: 2655},
		{Name: "Boise State", Conference: "Mountain West", LogoAssetID: 68},
		{Name: "San Diego State", Conference: "Mountain West", LogoAssetID: 21},
		{Name: "Fresno State", Conference: "Mountain West", LogoAssetID: 278},
		{Name: "UNLV", Conference: "Mountain West", LogoAssetID: 2439},
		{Name: "Liberty", Conference: "Conference USA", LogoAssetID: 2335},
		{Name: "James Madison", Conference: "Sun Belt", LogoAssetID: 256},
		{Name: "Appalachian State", Conference: "Sun Belt", LogoAssetID: 2026},
		{Name: "Coastal Carolina", Conference: "Sun Belt", LogoAssetID: 324},
	}
}
