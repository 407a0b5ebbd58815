package stats

import "time"

type ClubStats struct {
	ClubID       int       `json:"club_id" db:"club_id"`
	LastUpdated  time.Time `json:"last_updated" db:"last_updated"`
	CountMembers int       `json:"cnt_members" db:"cnt_members"`
	CountAccept  int       `json:"cnt_accepted" db:"cnt_accepted"`
	CountReject  int       `json:"cnt_rejected" db:"cnt_rejected"`
	CountMeeting int       `json:"cnt_meetings" db:"cnt_meetings"`
}

type StatsInfo struct {
	Data []ClubStats `json:"data"`
}
