package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		FullName:      m.FullName,
		Password:      m.Password,
		AvatarURL:     m.AvatarURL,
		CoverImageURL: m.CoverImageURL,
		IsPremium:     m.IsPremium,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:            e.ID,
		Username:      e.Username,
		Email:         e.Email,
		FullName:      e.FullName,
		Password:      e.Password,
		AvatarURL:     e.AvatarURL,
		CoverImageURL: e.CoverImageURL,
		IsPremium:     e.IsPremium,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}
	return &entity.Video{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		Views:        m.Views,
		IsPublished:  m.IsPublished,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}
	return &model.VideoModel{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Title:        e.Title,
		Description:  e.Description,
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		Duration:     e.Duration,
		Views:        e.Views,
		IsPublished:  e.IsPublished,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToVideoSummary(m *model.VideoModel) entity.VideoSummary {
	summary := entity.VideoSummary{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		Views:        m.Views,
		CreatedAt:    m.CreatedAt,
	}
	if m.Owner.ID != "" {
		owner := ToUserEntity(&m.Owner).Summary()
		summary.Owner = &owner
	}
	return summary
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}
	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}
	return &entity.Like{
		ID:     m.ID,
		UserID: m.UserID,
		Target: entity.LikeTarget{
			Kind: entity.TargetKind(m.TargetKind),
			ID:   m.TargetID,
		},
		CreatedAt: m.CreatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}
	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}
	return &entity.Playlist{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
