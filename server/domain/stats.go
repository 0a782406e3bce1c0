package domain

type Stats struct {
	ActiveRooms    int    `json:"active_rooms"`
	ActiveSessions int    `json:"active_sessions"`
	Connections    int    `json:"connections"`
	TotalMessages  int64  `json:"total_messages"`
	Uptime         string `json:"uptime"`
}
