package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mini-dating-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

const avatarURLExpiry = 5 * time.Minute

var avatarExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// AvatarStorage describes the bucket avatars are uploaded to
type AvatarStorage struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// Endpoint points at an S3-compatible service. Path-style addressing is
	// used when it is set.
	Endpoint string
}

// AvatarService hands out pre-signed upload URLs for profile pictures and
// records the avatar once the upload has landed
type AvatarService struct {
	users   UserStore
	presign *s3.PresignClient
	storage AvatarStorage
	// head returns ErrAvatarNotUploaded when the object is absent
	head func(ctx context.Context, key string) error
}

// NewAvatarService creates a new avatar service
func NewAvatarService(ctx context.Context, users UserStore, storage AvatarStorage) (*AvatarService, error) {
	storage.Endpoint = strings.TrimRight(storage.Endpoint, "/")

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(storage.Region),
	}
	if storage.AccessKey != "" && storage.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(storage.AccessKey, storage.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(storage.Endpoint)
			o.UsePathStyle = true
		}
	})

	svc := &AvatarService{
		users:   users,
		presign: s3.NewPresignClient(client),
		storage: storage,
	}
	svc.head = func(ctx context.Context, key string) error {
		_, err := client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(storage.Bucket),
			Key:    aws.String(key),
		})
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return fmt.Errorf("object %s: %w", key, ErrAvatarNotUploaded)
		}
		return err
	}
	return svc, nil
}

// AvatarUpload is returned to the client, which PUTs the image to UploadURL
// and then confirms Key
type AvatarUpload struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	AvatarURL string `json:"avatar_url"`
	ExpiresIn int    `json:"expires_in"`
}

// PresignUpload creates a pre-signed PUT URL for a new avatar. The user's
// avatar_url is left alone until ConfirmUpload.
func (s *AvatarService) PresignUpload(ctx context.Context, userID, contentType string) (*AvatarUpload, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, &ValidationError{Problems: []string{"content_type must be image/jpeg, image/png or image/webp"}}
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s.%s", avatarKeyPrefix(userID), uuid.New().String(), ext)

	request, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.storage.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = avatarURLExpiry
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	return &AvatarUpload{
		UploadURL: request.URL,
		Key:       key,
		AvatarURL: s.objectURL(key),
		ExpiresIn: int(avatarURLExpiry.Seconds()),
	}, nil
}

// ConfirmUpload points the user's avatar_url at key once the object exists
// in the bucket. Only keys issued for the same user are accepted.
func (s *AvatarService) ConfirmUpload(ctx context.Context, userID, key string) (*models.User, error) {
	if !strings.HasPrefix(key, avatarKeyPrefix(userID)) || strings.Contains(key, "..") {
		return nil, &ValidationError{Problems: []string{"key was not issued for this user"}}
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.head(ctx, key); err != nil {
		if errors.Is(err, ErrAvatarNotUploaded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to check avatar object: %w", err)
	}

	if err := s.users.UpdateAvatarURL(ctx, userID, s.objectURL(key)); err != nil {
		return nil, fmt.Errorf("failed to update avatar url: %w", err)
	}
	return s.users.GetByID(ctx, userID)
}

func avatarKeyPrefix(userID string) string {
	return "avatars/" + userID + "/"
}

func (s *AvatarService) objectURL(key string) string {
	if s.storage.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.storage.Endpoint, s.storage.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.storage.Bucket, s.storage.Region, key)
}
