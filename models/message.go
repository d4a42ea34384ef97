// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageStatus tracks how far the photographer got in handling a contact request.
// Transitions are free: any status may follow any other.
type MessageStatus string

const (
	MessageUnread     MessageStatus = "unread"
	MessageRead       MessageStatus = "read"
	MessageInProgress MessageStatus = "in_progress"
	MessageDone       MessageStatus = "done"
	MessageArchived   MessageStatus = "archived"
)

// MessageStatuses lists every allowed message status.
var MessageStatuses = []MessageStatus{
	MessageUnread,
	MessageRead,
	MessageInProgress,
	MessageDone,
	MessageArchived,
}

// Valid reports whether s is an allowed message status.
func (s MessageStatus) Valid() bool {
	for _, status := range MessageStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Message is a contact form submission.
type Message struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Phone, Service and Budget are optional on the form and stored as null when absent.
	Phone   *string  `json:"phone"`
	Service *Service `json:"service"`
	Budget  *Budget  `json:"budget"`

	Message string        `json:"message"`
	Status  MessageStatus `json:"status"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// MessageStats counts messages per status for the admin inbox.
type MessageStats struct {
	Total      int `json:"total"`
	Unread     int `json:"unread"`
	Read       int `json:"read"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Archived   int `json:"archived"`
}

// CountMessages folds messages into per-status counters.
func CountMessages(messages []Message) MessageStats {
	stats := MessageStats{Total: len(messages)}
	for _, m := range messages {
		switch m.Status {
		case MessageUnread:
			stats.Unread++
		case MessageRead:
			stats.Read++
		case MessageInProgress:
			stats.InProgress++
		case MessageDone:
			stats.Done++
		case MessageArchived:
			stats.Archived++
		}
	}
	return stats
}
