package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username  string
	Email     string
	FullName  string
	Password  string
	Avatar    *multipart.FileHeader
	CoverFile *multipart.FileHeader
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	GetChannelProfile(ctx context.Context, channelID, viewerID string) (*entity.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID string) ([]entity.VideoSummary, error)
	ConfirmPremium(ctx context.Context, userID, paymentID, orderID string) error
}

type userUseCase struct {
	userRepo         persistent.UserRepository
	videoRepo        persistent.VideoRepository
	subscriptionRepo persistent.SubscriptionRepository
	history          WatchHistoryStore
	payments         PaymentVerifier
	s3Client         *s3.Client
	logger           *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	videoRepo persistent.VideoRepository,
	subscriptionRepo persistent.SubscriptionRepository,
	history WatchHistoryStore,
	payments PaymentVerifier,
	s3Client *s3.Client,
	log *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:         userRepo,
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		history:          history,
		payments:         payments,
		s3Client:         s3Client,
		logger:           log,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(input.Username) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Password) == "" {
		return nil, fmt.Errorf("%w: all fields are required", entity.ErrValidation)
	}

	if exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: user with this email already exists", entity.ErrValidation)
	}
	if exists, err := uc.userRepo.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: username already taken", entity.ErrValidation)
	}

	var avatarURL, coverURL string
	if input.Avatar != nil {
		url, err := uc.uploadImage(input.Username, input.Avatar)
		if err != nil {
			return nil, err
		}
		avatarURL = url
	}
	if input.CoverFile != nil {
		url, err := uc.uploadImage(input.Username, input.CoverFile)
		if err != nil {
			return nil, err
		}
		coverURL = url
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:      strings.ToLower(strings.TrimSpace(input.Username)),
		Email:         strings.TrimSpace(input.Email),
		FullName:      strings.TrimSpace(input.FullName),
		Password:      string(hashed),
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetChannelProfile composes a user's public channel page. IsSubscribed
// is omitted entirely (nil) when a viewer looks at their own channel,
// false for anonymous viewers, and a real flag otherwise.
func (uc *userUseCase) GetChannelProfile(ctx context.Context, channelID, viewerID string) (*entity.ChannelProfile, error) {
	if channelID == "" {
		return nil, fmt.Errorf("%w: channel id is required", entity.ErrValidation)
	}

	channel, err := uc.userRepo.GetByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", channelID, err)
	}

	subscribersCount, err := uc.subscriptionRepo.CountForChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	subscribedToCount, err := uc.subscriptionRepo.CountForSubscriber(ctx, channelID)
	if err != nil {
		return nil, err
	}

	profile := &entity.ChannelProfile{
		UserSummary:       channel.Summary(),
		CoverImageURL:     channel.CoverImageURL,
		SubscribersCount:  subscribersCount,
		SubscribedToCount: subscribedToCount,
	}

	if viewerID != channelID {
		isSubscribed := false
		if viewerID != "" {
			if isSubscribed, err = uc.subscriptionRepo.Exists(ctx, viewerID, channelID); err != nil {
				return nil, err
			}
		}
		profile.IsSubscribed = &isSubscribed
	}

	return profile, nil
}

// GetWatchHistory resolves the user's watch sequence to video summaries,
// preserving order (oldest first, duplicates included).
func (uc *userUseCase) GetWatchHistory(ctx context.Context, userID string) ([]entity.VideoSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", entity.ErrValidation)
	}

	ids, err := uc.history.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	summaries, err := uc.videoRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entity.VideoSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	ordered := make([]entity.VideoSummary, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}

// ConfirmPremium flips the premium flag once the external payment
// collaborator confirms capture. Settlement itself is out of scope.
func (uc *userUseCase) ConfirmPremium(ctx context.Context, userID, paymentID, orderID string) error {
	if userID == "" || paymentID == "" || orderID == "" {
		return fmt.Errorf("%w: user, payment and order ids are required", entity.ErrValidation)
	}

	captured, err := uc.payments.IsCaptured(ctx, paymentID, orderID)
	if err != nil {
		return fmt.Errorf("payment verification failed: %w", err)
	}
	if !captured {
		return fmt.Errorf("%w: payment not yet captured", entity.ErrValidation)
	}

	return uc.userRepo.SetPremium(ctx, userID)
}

func (uc *userUseCase) uploadImage(username string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("avatars/%s/%s", username, uuid.New().String())
	url, err := uc.s3Client.UploadFile(key, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}
