package models

import "time"

// User represents a dating profile
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Bio       *string   `json:"bio,omitempty"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like is a one-directional interest from one user to another
type Like struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	CreatedAt  time.Time `json:"created_at"`
	FromUser   *User     `json:"from_user,omitempty"`
	ToUser     *User     `json:"to_user,omitempty"`
}

// Match represents a mutual like between two users.
// UserAID always sorts before UserBID. The schedule fields are either all
// set or all nil.
type Match struct {
	ID                 string    `json:"id"`
	UserAID            string    `json:"user_a_id"`
	UserBID            string    `json:"user_b_id"`
	ScheduledDate      *string   `json:"scheduled_date,omitempty"`
	ScheduledTimeStart *string   `json:"scheduled_time_start,omitempty"`
	ScheduledTimeEnd   *string   `json:"scheduled_time_end,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UserA              *User     `json:"user_a,omitempty"`
	UserB              *User     `json:"user_b,omitempty"`
}

// HasParticipant reports whether userID is one of the two matched users
func (m *Match) HasParticipant(userID string) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// IsScheduled reports whether a meeting has been committed for the match
func (m *Match) IsScheduled() bool {
	return m.ScheduledDate != nil && m.ScheduledTimeStart != nil && m.ScheduledTimeEnd != nil
}

// TimeSlot is one contiguous availability window of a user for a match.
// Date is YYYY-MM-DD, StartTime and EndTime are HH:mm wall-clock values.
type TimeSlot struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	MatchID   string    `json:"match_id,omitempty"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}
