package models

// PlatformStats holds platform-wide aggregate counters.
// TotalPrizePool is a formatted dollar string produced by a best-effort
// text scan of tournament prize fields, not an authoritative money value.
type PlatformStats struct {
	TotalTournaments  int64  `json:"totalTournaments"`
	ActiveTournaments int64  `json:"activeTournaments"`
	TotalPlayers      int64  `json:"totalPlayers"`
	TotalPrizePool    string `json:"totalPrizePool"`
}

// ProfileStats summarizes a single user's tournament activity.
// TournamentsWon is a mock heuristic until match results exist.
type ProfileStats struct {
	TournamentsCreated      int   `json:"tournamentsCreated"`
	TournamentsParticipated int64 `json:"tournamentsParticipated"`
	TournamentsWon          int64 `json:"tournamentsWon"`
}
