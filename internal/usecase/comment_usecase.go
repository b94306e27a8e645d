package usecase

import (
	"context"
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
)

type CommentUseCase interface {
	Add(ctx context.Context, videoID, authorID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID, actorID string) error
	ListVideoComments(ctx context.Context, videoID, viewerID string, page, pageSize int) (Page[entity.CommentView], error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	likeRepo    persistent.LikeRepository
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	likeRepo persistent.LikeRepository,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
	}
}

func (uc *commentUseCase) Add(ctx context.Context, videoID, authorID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrValidation)
	}
	if videoID == "" {
		return nil, fmt.Errorf("%w: video id is required", entity.ErrValidation)
	}
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	comment := &entity.Comment{
		VideoID:  videoID,
		AuthorID: authorID,
		Content:  strings.TrimSpace(content),
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete enforces the two-party rule: the comment's author and the
// owning video's owner may both remove it; anyone else is rejected.
func (uc *commentUseCase) Delete(ctx context.Context, commentID, actorID string) error {
	if commentID == "" {
		return fmt.Errorf("%w: comment id is required", entity.ErrValidation)
	}

	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("comment %s: %w", commentID, err)
	}
	video, err := uc.videoRepo.GetByID(ctx, comment.VideoID)
	if err != nil {
		return fmt.Errorf("video %s: %w", comment.VideoID, err)
	}

	if !canDeleteComment(actorID, comment, video) {
		return fmt.Errorf("%w: only the comment author or the video owner can delete this comment", entity.ErrUnauthorized)
	}

	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}
	return uc.likeRepo.DeleteForTarget(ctx, entity.LikeTarget{Kind: entity.TargetComment, ID: commentID})
}

// ListVideoComments returns one stable-ordered page of a video's
// comments joined with like counts, viewer flags and author summaries.
func (uc *commentUseCase) ListVideoComments(ctx context.Context, videoID, viewerID string, page, pageSize int) (Page[entity.CommentView], error) {
	if videoID == "" {
		return Page[entity.CommentView]{}, fmt.Errorf("%w: video id is required", entity.ErrValidation)
	}

	p, size, limit, offset := normalizePage(page, pageSize)
	comments, total, err := uc.commentRepo.ListByVideo(ctx, videoID, limit, offset)
	if err != nil {
		return Page[entity.CommentView]{}, err
	}

	views := make([]entity.CommentView, 0, len(comments))
	for _, comment := range comments {
		target := entity.LikeTarget{Kind: entity.TargetComment, ID: comment.ID}

		likesCount, err := uc.likeRepo.CountForTarget(ctx, target)
		if err != nil {
			return Page[entity.CommentView]{}, err
		}

		isLiked := false
		if viewerID != "" {
			if isLiked, err = uc.likeRepo.Exists(ctx, viewerID, target); err != nil {
				return Page[entity.CommentView]{}, err
			}
		}

		author, err := uc.userRepo.GetByID(ctx, comment.AuthorID)
		if err != nil {
			return Page[entity.CommentView]{}, fmt.Errorf("comment author %s: %w", comment.AuthorID, err)
		}

		views = append(views, entity.CommentView{
			Comment:    *comment,
			Author:     author.Summary(),
			LikesCount: likesCount,
			IsLiked:    isLiked,
		})
	}

	return NewPage(views, p, size, total), nil
}

func (uc *commentUseCase) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Comment, error) {
	if authorID == "" {
		return nil, fmt.Errorf("%w: author id is required", entity.ErrValidation)
	}
	return uc.commentRepo.ListByAuthor(ctx, authorID)
}
