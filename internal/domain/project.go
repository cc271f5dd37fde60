package domain

import "time"

// Project is a registered chat the bot reports into
type Project struct {
	ID        int64
	ChatID    string
	Name      string
	CreatedAt time.Time
}
