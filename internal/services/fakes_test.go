package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"mini-dating-backend/internal/models"
	"mini-dating-backend/internal/repository"
)

type fakeUsers struct {
	mu    sync.Mutex
	users []*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	return &fakeUsers{users: users}
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("email %s: %w", user.Email, repository.ErrDuplicate)
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, repository.ErrNotFound)
}

func (f *fakeUsers) List(_ context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.User, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		out = append(out, f.users[i])
	}
	return out, nil
}

func (f *fakeUsers) UpdateAvatarURL(_ context.Context, userID, avatarURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			u.AvatarURL = &avatarURL
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", userID, repository.ErrNotFound)
}

type fakeLikes struct {
	mu    sync.Mutex
	likes []*models.Like
}

func (f *fakeLikes) Create(_ context.Context, like *models.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.likes {
		if l.FromUserID == like.FromUserID && l.ToUserID == like.ToUserID {
			return fmt.Errorf("like: %w", repository.ErrDuplicate)
		}
	}
	f.likes = append(f.likes, like)
	return nil
}

func (f *fakeLikes) Exists(_ context.Context, fromUserID, toUserID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.likes {
		if l.FromUserID == fromUserID && l.ToUserID == toUserID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikes) ListGiven(_ context.Context, userID string) ([]*models.Like, error) {
	return f.filter(func(l *models.Like) bool { return l.FromUserID == userID }), nil
}

func (f *fakeLikes) ListReceived(_ context.Context, userID string) ([]*models.Like, error) {
	return f.filter(func(l *models.Like) bool { return l.ToUserID == userID }), nil
}

func (f *fakeLikes) filter(keep func(*models.Like) bool) []*models.Like {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Like{}
	for _, l := range f.likes {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

type scheduleCall struct {
	matchID, date, start, end string
}

type fakeMatches struct {
	mu          sync.Mutex
	matches     map[string]*models.Match
	scheduleErr error
	schedules   []scheduleCall
}

func newFakeMatches(matches ...*models.Match) *fakeMatches {
	f := &fakeMatches{matches: map[string]*models.Match{}}
	for _, m := range matches {
		f.matches[m.ID] = m
	}
	return f
}

func (f *fakeMatches) CreateIfNotExists(_ context.Context, match *models.Match) (*models.Match, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.matches {
		if m.UserAID == match.UserAID && m.UserBID == match.UserBID {
			return m, false, nil
		}
	}
	f.matches[match.ID] = match
	return match, true, nil
}

func (f *fakeMatches) GetByID(_ context.Context, id string) (*models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.matches[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, repository.ErrNotFound)
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMatches) ListByUserID(_ context.Context, userID string) ([]*models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Match{}
	for _, m := range f.matches {
		if m.HasParticipant(userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatches) UpdateSchedule(_ context.Context, matchID, date, startTime, endTime string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schedules = append(f.schedules, scheduleCall{matchID, date, startTime, endTime})
	if f.scheduleErr != nil {
		return f.scheduleErr
	}
	m, ok := f.matches[matchID]
	if !ok {
		return fmt.Errorf("match %s: %w", matchID, repository.ErrNotFound)
	}
	m.ScheduledDate, m.ScheduledTimeStart, m.ScheduledTimeEnd = &date, &startTime, &endTime
	return nil
}

type fakeSlots struct {
	mu      sync.Mutex
	slots   []models.TimeSlot
	readErr error
}

func (f *fakeSlots) Replace(_ context.Context, userID, matchID string, slots []models.TimeSlot) ([]models.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.slots[:0]
	for _, s := range f.slots {
		if s.UserID != userID || s.MatchID != matchID {
			kept = append(kept, s)
		}
	}
	f.slots = kept

	saved := make([]models.TimeSlot, len(slots))
	for i, s := range slots {
		s.ID = fmt.Sprintf("slot-%d", len(f.slots)+i)
		s.UserID = userID
		s.MatchID = matchID
		saved[i] = s
	}
	f.slots = append(f.slots, saved...)
	return saved, nil
}

func (f *fakeSlots) GetForMatch(_ context.Context, userID, matchID string) ([]models.TimeSlot, error) {
	return f.filter(func(s models.TimeSlot) bool { return s.UserID == userID && s.MatchID == matchID })
}

func (f *fakeSlots) GetAllForUser(_ context.Context, userID string) ([]models.TimeSlot, error) {
	return f.filter(func(s models.TimeSlot) bool { return s.UserID == userID })
}

func (f *fakeSlots) filter(keep func(models.TimeSlot) bool) ([]models.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := []models.TimeSlot{}
	for _, s := range f.slots {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

var errStorage = errors.New("storage unavailable")
