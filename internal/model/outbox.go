package model

import "time"

const (
	OutboxPending int8 = 0
	OutboxSent    int8 = 1
	OutboxFailed  int8 = 2
)

// ModerationOutbox records a resolved submission for asynchronous
// publication. Rows are appended in the same transaction as the
// moderation writes and drained by the relayer.
type ModerationOutbox struct {
	ID           uint64  `gorm:"primaryKey"`
	EventType    string  `gorm:"size:16;not null"` // confirmed / rejected
	Section      Section `gorm:"size:16;not null"`
	SubmissionID string  `gorm:"size:36;not null"`
	PostID       string  `gorm:"size:36"` // empty on rejection
	AuthorID     string  `gorm:"size:36;not null"`
	Payload      string  `gorm:"type:text;not null"`
	Status       int8    `gorm:"not null;default:0;index"`
	Retry        int     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ModerationOutbox) TableName() string { return "moderation_outbox" }
