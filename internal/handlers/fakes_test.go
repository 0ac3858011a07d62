package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/views"
)

func authedRequest(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}

type inMemoryUserStore struct {
	users map[string]models.User
}

func newInMemoryUserStore() *inMemoryUserStore {
	return &inMemoryUserStore{users: make(map[string]models.User)}
}

func (s *inMemoryUserStore) Create(_ context.Context, user models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Handle == user.Handle {
			return repositories.ErrConflict
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *inMemoryUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func (s *inMemoryUserStore) FindByLogin(_ context.Context, identifier string) (models.User, error) {
	for _, user := range s.users {
		if user.Handle == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (s *inMemoryUserStore) UpdateAccount(_ context.Context, user models.User) error {
	existing, ok := s.users[user.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for id, other := range s.users {
		if id != user.ID && other.Email == user.Email {
			return repositories.ErrConflict
		}
	}
	existing.Email = user.Email
	existing.DisplayName = user.DisplayName
	existing.UpdatedAt = user.UpdatedAt
	s.users[user.ID] = existing
	return nil
}

func (s *inMemoryUserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	user, ok := s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.Password = passwordHash
	s.users[id] = user
	return nil
}

func (s *inMemoryUserStore) UpdateAvatar(_ context.Context, id, avatarURL string) error {
	user, ok := s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.AvatarURL = avatarURL
	s.users[id] = user
	return nil
}

func (s *inMemoryUserStore) UpdateCover(_ context.Context, id, coverURL string) error {
	user, ok := s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.CoverURL = coverURL
	s.users[id] = user
	return nil
}

type inMemoryVideoStore struct {
	videos map[string]models.Video
}

func newInMemoryVideoStore() *inMemoryVideoStore {
	return &inMemoryVideoStore{videos: make(map[string]models.Video)}
}

func (s *inMemoryVideoStore) Create(_ context.Context, video models.Video) error {
	s.videos[video.ID] = video
	return nil
}

func (s *inMemoryVideoStore) FindByID(_ context.Context, id string) (models.Video, error) {
	video, ok := s.videos[id]
	if !ok {
		return models.Video{}, repositories.ErrNotFound
	}
	return video, nil
}

func (s *inMemoryVideoStore) Update(_ context.Context, video models.Video) error {
	if _, ok := s.videos[video.ID]; !ok {
		return repositories.ErrNotFound
	}
	s.videos[video.ID] = video
	return nil
}

func (s *inMemoryVideoStore) Delete(_ context.Context, id string) error {
	if _, ok := s.videos[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.videos, id)
	return nil
}

func (s *inMemoryVideoStore) SetPublished(_ context.Context, id string, published bool) error {
	video, ok := s.videos[id]
	if !ok {
		return repositories.ErrNotFound
	}
	video.Published = published
	s.videos[id] = video
	return nil
}

func (s *inMemoryVideoStore) IncrementViews(_ context.Context, id string) error {
	video, ok := s.videos[id]
	if !ok {
		return repositories.ErrNotFound
	}
	video.Views++
	s.videos[id] = video
	return nil
}

type inMemoryCommentStore struct {
	comments map[string]models.Comment
}

func newInMemoryCommentStore() *inMemoryCommentStore {
	return &inMemoryCommentStore{comments: make(map[string]models.Comment)}
}

func (s *inMemoryCommentStore) Create(_ context.Context, comment models.Comment) error {
	s.comments[comment.ID] = comment
	return nil
}

func (s *inMemoryCommentStore) FindByID(_ context.Context, id string) (models.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return models.Comment{}, repositories.ErrNotFound
	}
	return comment, nil
}

func (s *inMemoryCommentStore) UpdateContent(_ context.Context, id, content string) error {
	comment, ok := s.comments[id]
	if !ok {
		return repositories.ErrNotFound
	}
	comment.Content = content
	s.comments[id] = comment
	return nil
}

func (s *inMemoryCommentStore) Delete(_ context.Context, id string) error {
	if _, ok := s.comments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

type inMemoryTweetStore struct {
	tweets map[string]models.Tweet
}

func newInMemoryTweetStore() *inMemoryTweetStore {
	return &inMemoryTweetStore{tweets: make(map[string]models.Tweet)}
}

func (s *inMemoryTweetStore) Create(_ context.Context, tweet models.Tweet) error {
	s.tweets[tweet.ID] = tweet
	return nil
}

func (s *inMemoryTweetStore) FindByID(_ context.Context, id string) (models.Tweet, error) {
	tweet, ok := s.tweets[id]
	if !ok {
		return models.Tweet{}, repositories.ErrNotFound
	}
	return tweet, nil
}

func (s *inMemoryTweetStore) UpdateContent(_ context.Context, id, content string) error {
	tweet, ok := s.tweets[id]
	if !ok {
		return repositories.ErrNotFound
	}
	tweet.Content = content
	s.tweets[id] = tweet
	return nil
}

func (s *inMemoryTweetStore) Delete(_ context.Context, id string) error {
	if _, ok := s.tweets[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.tweets, id)
	return nil
}

type inMemoryPlaylistStore struct {
	playlists map[string]models.Playlist
}

func newInMemoryPlaylistStore() *inMemoryPlaylistStore {
	return &inMemoryPlaylistStore{playlists: make(map[string]models.Playlist)}
}

func (s *inMemoryPlaylistStore) Create(_ context.Context, playlist models.Playlist) error {
	for _, existing := range s.playlists {
		if existing.OwnerID == playlist.OwnerID && existing.Name == playlist.Name {
			return repositories.ErrConflict
		}
	}
	s.playlists[playlist.ID] = playlist
	return nil
}

func (s *inMemoryPlaylistStore) FindByID(_ context.Context, id string) (models.Playlist, error) {
	playlist, ok := s.playlists[id]
	if !ok {
		return models.Playlist{}, repositories.ErrNotFound
	}
	return playlist, nil
}

func (s *inMemoryPlaylistStore) Update(_ context.Context, playlist models.Playlist) error {
	if _, ok := s.playlists[playlist.ID]; !ok {
		return repositories.ErrNotFound
	}
	for id, other := range s.playlists {
		if id != playlist.ID && other.OwnerID == playlist.OwnerID && other.Name == playlist.Name {
			return repositories.ErrConflict
		}
	}
	s.playlists[playlist.ID] = playlist
	return nil
}

func (s *inMemoryPlaylistStore) Delete(_ context.Context, id string) error {
	if _, ok := s.playlists[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.playlists, id)
	return nil
}

func (s *inMemoryPlaylistStore) AddVideo(_ context.Context, playlistID, videoID string) error {
	playlist, ok := s.playlists[playlistID]
	if !ok {
		return repositories.ErrNotFound
	}
	for _, existing := range playlist.VideoIDs {
		if existing == videoID {
			return repositories.ErrConflict
		}
	}
	playlist.VideoIDs = append(playlist.VideoIDs, videoID)
	s.playlists[playlistID] = playlist
	return nil
}

func (s *inMemoryPlaylistStore) RemoveVideo(_ context.Context, playlistID, videoID string) error {
	playlist, ok := s.playlists[playlistID]
	if !ok {
		return repositories.ErrNotFound
	}
	kept := playlist.VideoIDs[:0]
	for _, existing := range playlist.VideoIDs {
		if existing != videoID {
			kept = append(kept, existing)
		}
	}
	playlist.VideoIDs = kept
	s.playlists[playlistID] = playlist
	return nil
}

type inMemoryLikeStore struct {
	likes    map[string]struct{}
	countErr error
}

func newInMemoryLikeStore() *inMemoryLikeStore {
	return &inMemoryLikeStore{likes: make(map[string]struct{})}
}

func likeKey(userID string, target models.LikeTarget) string {
	return fmt.Sprintf("%s|%s|%s", userID, target.Type, target.ID)
}

func (s *inMemoryLikeStore) Toggle(_ context.Context, userID string, target models.LikeTarget) (bool, error) {
	key := likeKey(userID, target)
	if _, ok := s.likes[key]; ok {
		delete(s.likes, key)
		return false, nil
	}
	s.likes[key] = struct{}{}
	return true, nil
}

func (s *inMemoryLikeStore) Count(_ context.Context, target models.LikeTarget) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	suffix := fmt.Sprintf("|%s|%s", target.Type, target.ID)
	var count int64
	for key := range s.likes {
		if strings.HasSuffix(key, suffix) {
			count++
		}
	}
	return count, nil
}

type inMemorySubscriptionStore struct {
	pairs map[string]struct{}
}

func newInMemorySubscriptionStore() *inMemorySubscriptionStore {
	return &inMemorySubscriptionStore{pairs: make(map[string]struct{})}
}

func (s *inMemorySubscriptionStore) Toggle(_ context.Context, subscriberID, channelID string) (bool, error) {
	key := subscriberID + "|" + channelID
	if _, ok := s.pairs[key]; ok {
		delete(s.pairs, key)
		return false, nil
	}
	s.pairs[key] = struct{}{}
	return true, nil
}

type recordingHistoryStore struct {
	mu      sync.Mutex
	records []string
}

func (s *recordingHistoryStore) Record(_ context.Context, userID, videoID string) error {
	s.mu.Lock()
	s.records = append(s.records, userID+"|"+videoID)
	s.mu.Unlock()
	return nil
}

// fakeBlobStorage stores blobs in memory keyed by generated location.
type fakeBlobStorage struct {
	saved     map[string][]byte
	deleted   []string
	saveErr   error
	deleteErr error
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{saved: make(map[string][]byte)}
}

func (s *fakeBlobStorage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	location := fmt.Sprintf("https://cdn.test/%s", name)
	s.saved[location] = data
	return location, nil
}

func (s *fakeBlobStorage) Delete(_ context.Context, location string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, location)
	delete(s.saved, location)
	return nil
}

func (s *fakeBlobStorage) savedLocations() []string {
	out := make([]string, 0, len(s.saved))
	for location := range s.saved {
		out = append(out, location)
	}
	sort.Strings(out)
	return out
}

type recordingCleaner struct {
	enqueued []string
}

func (c *recordingCleaner) Enqueue(_ context.Context, location string) error {
	c.enqueued = append(c.enqueued, location)
	return nil
}

type fakeProber struct {
	duration float64
	err      error
	probed   []string
}

func (p *fakeProber) Duration(_ context.Context, path string) (float64, error) {
	p.probed = append(p.probed, path)
	if p.err != nil {
		return 0, p.err
	}
	return p.duration, nil
}

// fakeVideoViews captures the last feed params and serves canned views.
type fakeVideoViews struct {
	feed       []views.VideoView
	feedErr    error
	lastParams views.FeedParams
	byID       map[string]views.VideoView
}

func (v *fakeVideoViews) VideoFeed(_ context.Context, params views.FeedParams) ([]views.VideoView, error) {
	v.lastParams = params
	if v.feedErr != nil {
		return nil, v.feedErr
	}
	if v.feed == nil {
		return []views.VideoView{}, nil
	}
	return v.feed, nil
}

func (v *fakeVideoViews) VideoByID(_ context.Context, videoID string) (views.VideoView, error) {
	view, ok := v.byID[videoID]
	if !ok {
		return views.VideoView{}, repositories.ErrNotFound
	}
	return view, nil
}
