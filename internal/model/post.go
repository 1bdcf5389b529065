package model

import "time"

// Post is a confirmed, published submission. SubmittedAt carries the
// original submission time forward so publish order inside a section
// stays faithful to submission order.
type Post struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	AuthorID    string    `gorm:"size:36;not null;index:idx_post_author_time" json:"author_id"`
	Section     Section   `gorm:"size:16;not null;index:idx_post_section_time" json:"section"`
	Excerpt     string    `gorm:"type:text;not null" json:"excerpt"`
	Citation    string    `gorm:"type:text;not null" json:"citation"`
	SubmittedAt time.Time `gorm:"not null;index:idx_post_section_time,priority:2;index:idx_post_author_time,priority:2" json:"submitted_at"`
	ConfirmedAt time.Time `gorm:"autoCreateTime" json:"confirmed_at"`
}
