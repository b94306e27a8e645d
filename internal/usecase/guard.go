package usecase

import "vidtube/internal/entity"

// canMutate is the single-owner authorization predicate. Predicates
// report false rather than erroring; callers turn false into
// entity.ErrUnauthorized.
func canMutate(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}

// canDeleteComment implements the two-party rule: a comment can be
// removed by its author or by the owner of the video it sits under.
func canDeleteComment(actorID string, comment *entity.Comment, video *entity.Video) bool {
	if actorID == "" || comment == nil || video == nil {
		return false
	}
	return actorID == comment.AuthorID || actorID == video.OwnerID
}
