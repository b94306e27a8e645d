package usecase

import (
	"testing"

	"vidtube/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	assert.True(t, canMutate("user-1", "user-1"))
	assert.False(t, canMutate("user-2", "user-1"))
	assert.False(t, canMutate("", ""))
}

func TestCanDeleteComment(t *testing.T) {
	comment := &entity.Comment{ID: "c1", VideoID: "v1", AuthorID: "author"}
	video := &entity.Video{ID: "v1", OwnerID: "owner"}

	assert.True(t, canDeleteComment("author", comment, video), "comment author may delete")
	assert.True(t, canDeleteComment("owner", comment, video), "video owner may delete")
	assert.False(t, canDeleteComment("stranger", comment, video))
	assert.False(t, canDeleteComment("", comment, video))
	assert.False(t, canDeleteComment("author", nil, video))
	assert.False(t, canDeleteComment("author", comment, nil))
}
