package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vidtube/internal/entity"

	"github.com/google/uuid"
)

// In-memory repository fakes. Edge fakes enforce the same uniqueness
// constraints the real store does, under a mutex, so the toggle tests
// exercise the actual race-resolution paths.

type fakeLikeRepo struct {
	mu     sync.Mutex
	byID   map[string]entity.Like
	byPair map[string]string // userID|kind|targetID -> like id

	createErr error
	findErr   error
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{
		byID:   make(map[string]entity.Like),
		byPair: make(map[string]string),
	}
}

func pairKey(userID string, target entity.LikeTarget) string {
	return fmt.Sprintf("%s|%s|%s", userID, target.Kind, target.ID)
}

func (f *fakeLikeRepo) Find(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byPair[pairKey(userID, target)]
	if !ok {
		return nil, entity.ErrNotFound
	}
	like := f.byID[id]
	return &like, nil
}

func (f *fakeLikeRepo) Create(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(userID, target)
	if _, exists := f.byPair[key]; exists {
		return nil, entity.ErrDuplicateEdge
	}
	like := entity.Like{
		ID:        uuid.New().String(),
		UserID:    userID,
		Target:    target,
		CreatedAt: time.Now(),
	}
	f.byID[like.ID] = like
	f.byPair[key] = like.ID
	return &like, nil
}

func (f *fakeLikeRepo) Delete(ctx context.Context, likeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	like, ok := f.byID[likeID]
	if !ok {
		return false, nil
	}
	delete(f.byID, likeID)
	delete(f.byPair, pairKey(like.UserID, like.Target))
	return true, nil
}

func (f *fakeLikeRepo) Exists(ctx context.Context, userID string, target entity.LikeTarget) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byPair[pairKey(userID, target)]
	return ok, nil
}

func (f *fakeLikeRepo) CountForTarget(ctx context.Context, target entity.LikeTarget) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, like := range f.byID {
		if like.Target == target {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) ListLikedVideos(ctx context.Context, userID string, limit, offset int) ([]entity.VideoSummary, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var likes []entity.Like
	for _, like := range f.byID {
		if like.UserID == userID && like.Target.Kind == entity.TargetVideo {
			likes = append(likes, like)
		}
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i].CreatedAt.After(likes[j].CreatedAt) })

	total := int64(len(likes))
	if offset >= len(likes) {
		return []entity.VideoSummary{}, total, nil
	}
	end := offset + limit
	if end > len(likes) {
		end = len(likes)
	}
	summaries := make([]entity.VideoSummary, 0, end-offset)
	for _, like := range likes[offset:end] {
		summaries = append(summaries, entity.VideoSummary{ID: like.Target.ID})
	}
	return summaries, total, nil
}

func (f *fakeLikeRepo) DeleteForTarget(ctx context.Context, target entity.LikeTarget) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, like := range f.byID {
		if like.Target == target {
			delete(f.byID, id)
			delete(f.byPair, pairKey(like.UserID, like.Target))
		}
	}
	return nil
}

type fakeSubscriptionRepo struct {
	mu     sync.Mutex
	byID   map[string]entity.Subscription
	byPair map[string]string // subscriberID|channelID -> id
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		byID:   make(map[string]entity.Subscription),
		byPair: make(map[string]string),
	}
}

func subKey(subscriberID, channelID string) string {
	return subscriberID + "|" + channelID
}

func (f *fakeSubscriptionRepo) Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byPair[subKey(subscriberID, channelID)]
	if !ok {
		return nil, entity.ErrNotFound
	}
	sub := f.byID[id]
	return &sub, nil
}

func (f *fakeSubscriptionRepo) Create(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := subKey(subscriberID, channelID)
	if _, exists := f.byPair[key]; exists {
		return nil, entity.ErrDuplicateEdge
	}
	sub := entity.Subscription{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	}
	f.byID[sub.ID] = sub
	f.byPair[key] = sub.ID
	return &sub, nil
}

func (f *fakeSubscriptionRepo) Delete(ctx context.Context, subscriptionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub, ok := f.byID[subscriptionID]
	if !ok {
		return false, nil
	}
	delete(f.byID, subscriptionID)
	delete(f.byPair, subKey(sub.SubscriberID, sub.ChannelID))
	return true, nil
}

func (f *fakeSubscriptionRepo) Exists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byPair[subKey(subscriberID, channelID)]
	return ok, nil
}

func (f *fakeSubscriptionRepo) CountForChannel(ctx context.Context, channelID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, sub := range f.byID {
		if sub.ChannelID == channelID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSubscriptionRepo) CountForSubscriber(ctx context.Context, subscriberID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, sub := range f.byID {
		if sub.SubscriberID == subscriberID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSubscriptionRepo) ListSubscribers(ctx context.Context, channelID string) ([]entity.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.UserSummary
	for _, sub := range f.byID {
		if sub.ChannelID == channelID {
			out = append(out, entity.UserSummary{ID: sub.SubscriberID})
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.UserSummary
	for _, sub := range f.byID {
		if sub.SubscriberID == subscriberID {
			out = append(out, entity.UserSummary{ID: sub.ChannelID})
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) SetPremium(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return entity.ErrNotFound
	}
	u.IsPremium = true
	f.users[userID] = u
	return nil
}

type fakeVideoRepo struct {
	mu     sync.Mutex
	videos map[string]entity.Video

	incrementErr error
}

func newFakeVideoRepo(videos ...entity.Video) *fakeVideoRepo {
	f := &fakeVideoRepo{videos: make(map[string]entity.Video)}
	for _, v := range videos {
		f.videos[v.ID] = v
	}
	return f
}

func (f *fakeVideoRepo) Create(ctx context.Context, video *entity.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	video.CreatedAt = time.Now()
	f.videos[video.ID] = *video
	return nil
}

func (f *fakeVideoRepo) GetByID(ctx context.Context, videoID string) (*entity.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.videos[videoID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &v, nil
}

func (f *fakeVideoRepo) Update(ctx context.Context, video *entity.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videos[video.ID] = *video
	return nil
}

func (f *fakeVideoRepo) Delete(ctx context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.videos, videoID)
	return nil
}

func (f *fakeVideoRepo) sorted() []entity.Video {
	var vs []entity.Video
	for _, v := range f.videos {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		if !vs[i].CreatedAt.Equal(vs[j].CreatedAt) {
			return vs[i].CreatedAt.After(vs[j].CreatedAt)
		}
		return vs[i].ID < vs[j].ID
	})
	return vs
}

func (f *fakeVideoRepo) List(ctx context.Context, limit, offset int) ([]entity.VideoSummary, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return paginateFakeVideos(f.sorted(), limit, offset)
}

func (f *fakeVideoRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]entity.VideoSummary, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var owned []entity.Video
	for _, v := range f.sorted() {
		if v.OwnerID == ownerID {
			owned = append(owned, v)
		}
	}
	return paginateFakeVideos(owned, limit, offset)
}

func paginateFakeVideos(vs []entity.Video, limit, offset int) ([]entity.VideoSummary, int64, error) {
	total := int64(len(vs))
	if offset >= len(vs) {
		return []entity.VideoSummary{}, total, nil
	}
	end := offset + limit
	if end > len(vs) {
		end = len(vs)
	}
	out := make([]entity.VideoSummary, 0, end-offset)
	for _, v := range vs[offset:end] {
		out = append(out, entity.VideoSummary{ID: v.ID, Title: v.Title, Views: v.Views, CreatedAt: v.CreatedAt})
	}
	return out, total, nil
}

func (f *fakeVideoRepo) ListByIDs(ctx context.Context, videoIDs []string) ([]entity.VideoSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.VideoSummary
	seen := make(map[string]bool)
	for _, id := range videoIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if v, ok := f.videos[id]; ok {
			out = append(out, entity.VideoSummary{ID: v.ID, Title: v.Title, Views: v.Views, CreatedAt: v.CreatedAt})
		}
	}
	return out, nil
}

func (f *fakeVideoRepo) IncrementViews(ctx context.Context, videoID string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.videos[videoID]
	if !ok {
		return entity.ErrNotFound
	}
	v.Views++
	f.videos[videoID] = v
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]entity.Comment
}

func newFakeCommentRepo(comments ...entity.Comment) *fakeCommentRepo {
	f := &fakeCommentRepo{comments: make(map[string]entity.Comment)}
	for _, c := range comments {
		f.comments[c.ID] = c
	}
	return f
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[commentID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, commentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, commentID)
	return nil
}

func (f *fakeCommentRepo) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*entity.Comment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cs []entity.Comment
	for _, c := range f.comments {
		if c.VideoID == videoID {
			cs = append(cs, c)
		}
	}
	sort.Slice(cs, func(i, j int) bool {
		if !cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].CreatedAt.After(cs[j].CreatedAt)
		}
		return cs[i].ID < cs[j].ID
	})

	total := int64(len(cs))
	if offset >= len(cs) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(cs) {
		end = len(cs)
	}
	out := make([]*entity.Comment, 0, end-offset)
	for i := range cs[offset:end] {
		c := cs[offset+i]
		out = append(out, &c)
	}
	return out, total, nil
}

func (f *fakeCommentRepo) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Comment
	for _, c := range f.comments {
		if c.AuthorID == authorID {
			comment := c
			out = append(out, &comment)
		}
	}
	return out, nil
}

type fakeTweetRepo struct {
	mu     sync.Mutex
	tweets map[string]entity.Tweet
}

func newFakeTweetRepo(tweets ...entity.Tweet) *fakeTweetRepo {
	f := &fakeTweetRepo{tweets: make(map[string]entity.Tweet)}
	for _, t := range tweets {
		f.tweets[t.ID] = t
	}
	return f
}

func (f *fakeTweetRepo) Create(ctx context.Context, tweet *entity.Tweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tweet.ID == "" {
		tweet.ID = uuid.New().String()
	}
	tweet.CreatedAt = time.Now()
	f.tweets[tweet.ID] = *tweet
	return nil
}

func (f *fakeTweetRepo) GetByID(ctx context.Context, tweetID string) (*entity.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tweets[tweetID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTweetRepo) UpdateContent(ctx context.Context, tweetID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tweets[tweetID]
	if !ok {
		return entity.ErrNotFound
	}
	t.Content = content
	f.tweets[tweetID] = t
	return nil
}

func (f *fakeTweetRepo) Delete(ctx context.Context, tweetID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tweets, tweetID)
	return nil
}

func (f *fakeTweetRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ts []entity.Tweet
	for _, t := range f.tweets {
		if t.OwnerID == ownerID {
			ts = append(ts, t)
		}
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].CreatedAt.After(ts[j].CreatedAt) })
	out := make([]*entity.Tweet, 0, len(ts))
	for i := range ts {
		out = append(out, &ts[i])
	}
	return out, nil
}

type fakePlaylistRepo struct {
	mu        sync.Mutex
	playlists map[string]entity.Playlist
	members   map[string]string // membershipID -> playlistID|videoID
	byPair    map[string]string // playlistID|videoID -> membershipID
	nextPos   map[string]int64
	order     map[string][]string // playlistID -> membership ids in order
}

func newFakePlaylistRepo(playlists ...entity.Playlist) *fakePlaylistRepo {
	f := &fakePlaylistRepo{
		playlists: make(map[string]entity.Playlist),
		members:   make(map[string]string),
		byPair:    make(map[string]string),
		nextPos:   make(map[string]int64),
		order:     make(map[string][]string),
	}
	for _, p := range playlists {
		f.playlists[p.ID] = p
	}
	return f
}

func (f *fakePlaylistRepo) Create(ctx context.Context, playlist *entity.Playlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if playlist.ID == "" {
		playlist.ID = uuid.New().String()
	}
	playlist.CreatedAt = time.Now()
	f.playlists[playlist.ID] = *playlist
	return nil
}

func (f *fakePlaylistRepo) GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.playlists[playlistID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &p, nil
}

func (f *fakePlaylistRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Playlist
	for _, p := range f.playlists {
		if p.OwnerID == ownerID {
			playlist := p
			out = append(out, &playlist)
		}
	}
	return out, nil
}

func (f *fakePlaylistRepo) Rename(ctx context.Context, playlistID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.playlists[playlistID]
	if !ok {
		return entity.ErrNotFound
	}
	p.Name = name
	f.playlists[playlistID] = p
	return nil
}

func (f *fakePlaylistRepo) Delete(ctx context.Context, playlistID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.playlists, playlistID)
	for _, id := range f.order[playlistID] {
		delete(f.byPair, f.members[id])
		delete(f.members, id)
	}
	delete(f.order, playlistID)
	return nil
}

func (f *fakePlaylistRepo) FindMembership(ctx context.Context, playlistID, videoID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byPair[playlistID+"|"+videoID]
	if !ok {
		return "", entity.ErrNotFound
	}
	return id, nil
}

func (f *fakePlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := playlistID + "|" + videoID
	if _, exists := f.byPair[key]; exists {
		return entity.ErrDuplicateEdge
	}
	id := uuid.New().String()
	f.members[id] = key
	f.byPair[key] = id
	f.order[playlistID] = append(f.order[playlistID], id)
	f.nextPos[playlistID]++
	return nil
}

func (f *fakePlaylistRepo) RemoveMembership(ctx context.Context, membershipID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key, ok := f.members[membershipID]
	if !ok {
		return false, nil
	}
	delete(f.members, membershipID)
	delete(f.byPair, key)
	return true, nil
}

func (f *fakePlaylistRepo) RemoveVideoEverywhere(ctx context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, key := range f.members {
		if len(key) > len(videoID) && key[len(key)-len(videoID):] == videoID {
			delete(f.members, id)
			delete(f.byPair, key)
		}
	}
	return nil
}

func (f *fakePlaylistRepo) ListVideos(ctx context.Context, playlistID string) ([]entity.VideoSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.VideoSummary
	for _, id := range f.order[playlistID] {
		key, ok := f.members[id]
		if !ok {
			continue
		}
		videoID := key[len(playlistID)+1:]
		out = append(out, entity.VideoSummary{ID: videoID})
	}
	return out, nil
}

type fakeHistory struct {
	mu        sync.Mutex
	sequences map[string][]string
	appendErr error
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{sequences: make(map[string][]string)}
}

func (f *fakeHistory) Append(ctx context.Context, userID, videoID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sequences[userID] = append(f.sequences[userID], videoID)
	return nil
}

func (f *fakeHistory) List(ctx context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sequences[userID]...), nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	tasks []map[string]interface{}
}

func (f *fakeNotifier) PublishNotificationTask(task map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

type fakePayments struct {
	captured bool
	err      error
}

func (f *fakePayments) IsCaptured(ctx context.Context, paymentID, orderID string) (bool, error) {
	return f.captured, f.err
}
