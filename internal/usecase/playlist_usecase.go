package usecase

import (
	"context"
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
)

type PlaylistUseCase interface {
	Create(ctx context.Context, ownerID, name, firstVideoID string) (*entity.Playlist, error)
	Get(ctx context.Context, playlistID string) (*entity.PlaylistView, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	Rename(ctx context.Context, playlistID, actorID, name string) (*entity.Playlist, error)
	Delete(ctx context.Context, playlistID, actorID string) error
	ToggleVideo(ctx context.Context, playlistID, videoID, actorID string) (entity.ToggleState, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

func (uc *playlistUseCase) Create(ctx context.Context, ownerID, name, firstVideoID string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: playlist name is required", entity.ErrValidation)
	}
	if firstVideoID == "" {
		return nil, fmt.Errorf("%w: video id is required", entity.ErrValidation)
	}
	if _, err := uc.videoRepo.GetByID(ctx, firstVideoID); err != nil {
		return nil, fmt.Errorf("video %s: %w", firstVideoID, err)
	}

	playlist := &entity.Playlist{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(name),
	}
	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	if err := uc.playlistRepo.AddVideo(ctx, playlist.ID, firstVideoID); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUseCase) Get(ctx context.Context, playlistID string) (*entity.PlaylistView, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist id is required", entity.ErrValidation)
	}

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("playlist %s: %w", playlistID, err)
	}

	owner, err := uc.userRepo.GetByID(ctx, playlist.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("playlist owner %s: %w", playlist.OwnerID, err)
	}

	videos, err := uc.playlistRepo.ListVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	return &entity.PlaylistView{
		Playlist: *playlist,
		Owner:    owner.Summary(),
		Videos:   videos,
	}, nil
}

func (uc *playlistUseCase) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", entity.ErrValidation)
	}
	return uc.playlistRepo.ListByOwner(ctx, ownerID)
}

func (uc *playlistUseCase) Rename(ctx context.Context, playlistID, actorID, name string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: playlist name is required", entity.ErrValidation)
	}

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("playlist %s: %w", playlistID, err)
	}
	if !canMutate(actorID, playlist.OwnerID) {
		return nil, fmt.Errorf("%w: only the playlist owner can rename it", entity.ErrUnauthorized)
	}

	if err := uc.playlistRepo.Rename(ctx, playlistID, strings.TrimSpace(name)); err != nil {
		return nil, err
	}
	playlist.Name = strings.TrimSpace(name)
	return playlist, nil
}

func (uc *playlistUseCase) Delete(ctx context.Context, playlistID, actorID string) error {
	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("playlist %s: %w", playlistID, err)
	}
	if !canMutate(actorID, playlist.OwnerID) {
		return fmt.Errorf("%w: only the playlist owner can delete it", entity.ErrUnauthorized)
	}
	return uc.playlistRepo.Delete(ctx, playlistID)
}

// ToggleVideo adds or removes a membership edge, owner only. The same
// constraint-based toggle as likes and subscriptions.
func (uc *playlistUseCase) ToggleVideo(ctx context.Context, playlistID, videoID, actorID string) (entity.ToggleState, error) {
	if playlistID == "" {
		return "", fmt.Errorf("%w: playlist id is required", entity.ErrValidation)
	}
	if videoID == "" {
		return "", fmt.Errorf("%w: video id is required", entity.ErrValidation)
	}

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return "", fmt.Errorf("playlist %s: %w", playlistID, err)
	}
	if !canMutate(actorID, playlist.OwnerID) {
		return "", fmt.Errorf("%w: only the playlist owner can modify it", entity.ErrUnauthorized)
	}
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return "", fmt.Errorf("video %s: %w", videoID, err)
	}

	return toggleEdge(ctx,
		func(ctx context.Context) (string, error) {
			return uc.playlistRepo.FindMembership(ctx, playlistID, videoID)
		},
		func(ctx context.Context) error {
			return uc.playlistRepo.AddVideo(ctx, playlistID, videoID)
		},
		uc.playlistRepo.RemoveMembership,
	)
}
