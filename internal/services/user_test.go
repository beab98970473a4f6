package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mini-dating-backend/internal/repository"
)

func strPtr(s string) *string { return &s }

func validRequest() CreateUserRequest {
	return CreateUserRequest{
		Name:   "Linh Nguyễn",
		Age:    27,
		Gender: "female",
		Bio:    strPtr("Coffee and climbing"),
		Email:  "linh@example.com",
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateUserRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateUserRequest) {}, false},
		{"apostrophe and hyphen", func(r *CreateUserRequest) { r.Name = "Anne-Marie O'Neil" }, false},
		{"name too short", func(r *CreateUserRequest) { r.Name = "A" }, true},
		{"name too long", func(r *CreateUserRequest) { r.Name = strings.Repeat("a", 51) }, true},
		{"name with digits", func(r *CreateUserRequest) { r.Name = "R2D2" }, true},
		{"age too low", func(r *CreateUserRequest) { r.Age = 17 }, true},
		{"age upper bound", func(r *CreateUserRequest) { r.Age = 100 }, false},
		{"age too high", func(r *CreateUserRequest) { r.Age = 101 }, true},
		{"unknown gender", func(r *CreateUserRequest) { r.Gender = "robot" }, true},
		{"bio too long", func(r *CreateUserRequest) { r.Bio = strPtr(strings.Repeat("x", 501)) }, true},
		{"no bio", func(r *CreateUserRequest) { r.Bio = nil }, false},
		{"bad email", func(r *CreateUserRequest) { r.Email = "not-an-email" }, true},
		{"display name email", func(r *CreateUserRequest) { r.Email = "Linh <linh@example.com>" }, true},
		{"long email", func(r *CreateUserRequest) { r.Email = strings.Repeat("a", 90) + "@example.com" }, true},
		{"avatar url", func(r *CreateUserRequest) { r.AvatarURL = strPtr("https://cdn.example.com/a.png") }, false},
		{"avatar not http", func(r *CreateUserRequest) { r.AvatarURL = strPtr("ftp://cdn.example.com/a.png") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateUserRequest_ValidateCollectsProblems(t *testing.T) {
	req := CreateUserRequest{Name: "A", Age: 5, Gender: "x", Email: "bad"}
	var vErr *ValidationError
	if !errors.As(req.Validate(), &vErr) {
		t.Fatal("expected ValidationError")
	}
	if len(vErr.Problems) != 4 {
		t.Errorf("expected 4 problems, got %v", vErr.Problems)
	}
}

func TestCreateUser(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	req := validRequest()
	req.Email = "Linh@Example.com"
	user, err := svc.CreateUser(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" || user.Email != "linh@example.com" {
		t.Errorf("unexpected user %+v", user)
	}

	found, err := svc.GetUserByEmail(ctx, "LINH@example.com")
	if err != nil || found.ID != user.ID {
		t.Fatalf("expected lookup by email to find the user, got %v %v", found, err)
	}

	if _, err := svc.CreateUser(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if _, err := svc.GetUser(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, _ := svc.ListUsers(ctx)
	if len(list) != 1 {
		t.Errorf("expected 1 user, got %d", len(list))
	}
}
