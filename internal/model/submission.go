package model

import "time"

// Submission is a pending post awaiting a moderation decision. It is
// never updated in place: resolution deletes the row, and confirmation
// creates a fresh Post in the same section.
type Submission struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	AuthorID    string    `gorm:"size:36;not null;index:idx_sub_author_time" json:"author_id"`
	Section     Section   `gorm:"size:16;not null;index:idx_sub_section_time" json:"section"`
	Excerpt     string    `gorm:"type:text;not null" json:"excerpt"`
	Citation    string    `gorm:"type:text;not null" json:"citation"`
	SubmittedAt time.Time `gorm:"autoCreateTime;index:idx_sub_section_time,priority:2;index:idx_sub_author_time,priority:2" json:"submitted_at"`
}
