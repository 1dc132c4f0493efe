package team

import "fmt"

// Team is one claimable college-football program. The name is the canonical,
// case-sensitive form used everywhere else in the system.
type Team struct {
	Name        string
	Conference  string
	LogoAssetID int64
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Conference == "" {
		return fmt.Errorf("team conference is required")
	}
	if t.LogoAssetID <= 0 {
		return fmt.Errorf("team logo asset id is required")
	}

	return nil
}

// LogoURL renders the ESPN CDN location for the team's logo asset.
func (t Team) LogoURL() string {
	return fmt.Sprintf("https://a.espncdn.com/i/teamlogos/ncaa/500/%d.png", t.LogoAssetID)
}
