package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationApproval  NotificationType = "approval"
	NotificationRejection NotificationType = "rejection"
)

// ErrContentMismatch means the stored type tag and the stored payload
// disagree. The row is corrupt; callers must not guess a shape.
var ErrContentMismatch = errors.New("notification content mismatch")

// Notification is a per-recipient mailbox entry. Type is the
// discriminant for the serialized Content payload; the two are only
// ever written together via EncodeContent.
type Notification struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	RecipientID string           `gorm:"size:36;not null;index:idx_notif_recipient_time" json:"recipient_id"`
	Type        NotificationType `gorm:"size:16;not null" json:"type"`
	Content     string           `gorm:"type:text;not null" json:"-"`
	Read        bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time        `gorm:"autoCreateTime;index:idx_notif_recipient_time,priority:2" json:"created_at"`
}

// NotificationContent is the tagged union carried by a notification.
// Exactly one variant exists per NotificationType.
type NotificationContent interface {
	Kind() NotificationType
}

type ApprovalContent struct {
	Type    NotificationType `json:"type"`
	URL     string           `json:"url"`
	Comment string           `json:"comment,omitempty"`
}

type RejectionContent struct {
	Type     NotificationType `json:"type"`
	Excerpt  string           `json:"excerpt"`
	Citation string           `json:"citation"`
	Comment  string           `json:"comment,omitempty"`
}

func NewApprovalContent(url, comment string) ApprovalContent {
	return ApprovalContent{Type: NotificationApproval, URL: url, Comment: comment}
}

func NewRejectionContent(excerpt, citation, comment string) RejectionContent {
	return RejectionContent{Type: NotificationRejection, Excerpt: excerpt, Citation: citation, Comment: comment}
}

func (ApprovalContent) Kind() NotificationType  { return NotificationApproval }
func (RejectionContent) Kind() NotificationType { return NotificationRejection }

// EncodeContent serializes content with its discriminant stamped into
// the payload, so the stored JSON is self-describing on top of the
// row-level type column.
func EncodeContent(c NotificationContent) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode notification content: %w", err)
	}
	return string(data), nil
}

// DecodeContent restores the variant selected by the stored type tag.
// Unknown tags, payloads that do not match the tag's shape, and
// payload/tag disagreement all fail with ErrContentMismatch.
func DecodeContent(typ NotificationType, data string) (NotificationContent, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.DisallowUnknownFields()

	switch typ {
	case NotificationApproval:
		var c ApprovalContent
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentMismatch, err)
		}
		if c.Type != NotificationApproval {
			return nil, fmt.Errorf("%w: tag %q inside %q payload", ErrContentMismatch, c.Type, typ)
		}
		return c, nil
	case NotificationRejection:
		var c RejectionContent
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentMismatch, err)
		}
		if c.Type != NotificationRejection {
			return nil, fmt.Errorf("%w: tag %q inside %q payload", ErrContentMismatch, c.Type, typ)
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrContentMismatch, typ)
}

// NotificationView is the API-facing shape with the content decoded.
type NotificationView struct {
	ID          string              `json:"id"`
	RecipientID string              `json:"recipient_id"`
	Type        NotificationType    `json:"type"`
	Content     NotificationContent `json:"content"`
	Read        bool                `json:"read"`
	CreatedAt   time.Time           `json:"created_at"`
}

// View decodes the stored payload; a tag/shape mismatch surfaces as
// ErrContentMismatch rather than a coerced struct.
func (n *Notification) View() (NotificationView, error) {
	content, err := DecodeContent(n.Type, n.Content)
	if err != nil {
		return NotificationView{}, err
	}
	return NotificationView{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        n.Type,
		Content:     content,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}, nil
}

// NotificationFilter selects which mailbox entries a listing returns.
type NotificationFilter string

const (
	NotificationsAll    NotificationFilter = "all"
	NotificationsRead   NotificationFilter = "read"
	NotificationsUnread NotificationFilter = "unread"
)

// ParseNotificationFilter defaults to unread, matching the mailbox's
// primary use.
func ParseNotificationFilter(s string) NotificationFilter {
	switch NotificationFilter(s) {
	case NotificationsAll:
		return NotificationsAll
	case NotificationsRead:
		return NotificationsRead
	default:
		return NotificationsUnread
	}
}
