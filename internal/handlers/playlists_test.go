package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
)

func TestPlaylistHandlerCreate(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	handler := PlaylistHandler{Playlists: playlists}

	body := `{"name":"Watch Later","description":"things to watch"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/playlist", strings.NewReader(body))
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp struct {
		Data playlistResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Name != "Watch Later" {
		t.Fatalf("expected playlist name to round-trip, got %q", resp.Data.Name)
	}
	if resp.Data.VideoIDs == nil || len(resp.Data.VideoIDs) != 0 {
		t.Fatalf("expected an empty video list, got %v", resp.Data.VideoIDs)
	}

	stored, ok := playlists.playlists[resp.Data.ID]
	if !ok || stored.OwnerID != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("expected playlist stored for 11111111-1111-1111-1111-111111111111, got %+v", stored)
	}
}

func TestPlaylistHandlerCreateValidation(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"badJSON", `{`, http.StatusBadRequest},
		{"missingName", `{"description":"d"}`, http.StatusBadRequest},
		{"missingDescription", `{"name":"n"}`, http.StatusBadRequest},
		{"blankName", `{"name":"   ","description":"d"}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := PlaylistHandler{Playlists: newInMemoryPlaylistStore()}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/playlist", strings.NewReader(tc.body))
			req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestPlaylistHandlerCreateDuplicateName(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	playlists.playlists["dddddddd-0000-0000-0000-000000000001"] = models.Playlist{ID: "dddddddd-0000-0000-0000-000000000001", OwnerID: "11111111-1111-1111-1111-111111111111", Name: "Watch Later"}
	handler := PlaylistHandler{Playlists: playlists}

	body := `{"name":"Watch Later","description":"again"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/playlist", strings.NewReader(body))
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d got %d", http.StatusConflict, rec.Code)
	}
}

func TestPlaylistHandlerAddVideo(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	playlists.playlists["dddddddd-0000-0000-0000-000000000001"] = models.Playlist{ID: "dddddddd-0000-0000-0000-000000000001", OwnerID: "11111111-1111-1111-1111-111111111111", Name: "Mix"}
	videos := newInMemoryVideoStore()
	videos.videos["aaaaaaaa-0000-0000-0000-000000000001"] = models.Video{ID: "aaaaaaaa-0000-0000-0000-000000000001", OwnerID: "22222222-2222-2222-2222-222222222222"}
	handler := PlaylistHandler{Playlists: playlists, Videos: videos}

	addVideo := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/playlist/add/aaaaaaaa-0000-0000-0000-000000000001/dddddddd-0000-0000-0000-000000000001", nil)
		req.SetPathValue("videoId", "aaaaaaaa-0000-0000-0000-000000000001")
		req.SetPathValue("playlistId", "dddddddd-0000-0000-0000-000000000001")
		req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
		rec := httptest.NewRecorder()
		handler.AddVideo(rec, req)
		return rec
	}

	if rec := addVideo(); rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}
	if got := playlists.playlists["dddddddd-0000-0000-0000-000000000001"].VideoIDs; len(got) != 1 || got[0] != "aaaaaaaa-0000-0000-0000-000000000001" {
		t.Fatalf("expected video in playlist, got %v", got)
	}

	rec := addVideo()
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected duplicate add to fail with %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "video already exists in the playlist" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestPlaylistHandlerAddUnknownVideo(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	playlists.playlists["dddddddd-0000-0000-0000-000000000001"] = models.Playlist{ID: "dddddddd-0000-0000-0000-000000000001", OwnerID: "11111111-1111-1111-1111-111111111111", Name: "Mix"}
	handler := PlaylistHandler{Playlists: playlists, Videos: newInMemoryVideoStore()}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/playlist/add/ffffffff-0000-0000-0000-000000000009/dddddddd-0000-0000-0000-000000000001", nil)
	req.SetPathValue("videoId", "ffffffff-0000-0000-0000-000000000009")
	req.SetPathValue("playlistId", "dddddddd-0000-0000-0000-000000000001")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()

	handler.AddVideo(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d got %d", http.StatusNotFound, rec.Code)
	}
}

func TestPlaylistHandlerRemoveAbsentVideoSucceeds(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	playlists.playlists["dddddddd-0000-0000-0000-000000000001"] = models.Playlist{ID: "dddddddd-0000-0000-0000-000000000001", OwnerID: "11111111-1111-1111-1111-111111111111", Name: "Mix"}
	handler := PlaylistHandler{Playlists: playlists}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/playlist/remove/ffffffff-0000-0000-0000-000000000009/dddddddd-0000-0000-0000-000000000001", nil)
	req.SetPathValue("videoId", "ffffffff-0000-0000-0000-000000000009")
	req.SetPathValue("playlistId", "dddddddd-0000-0000-0000-000000000001")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()

	handler.RemoveVideo(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}
}

func TestPlaylistHandlerRejectsMalformedIDs(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	playlists.playlists["dddddddd-0000-0000-0000-000000000001"] = models.Playlist{ID: "dddddddd-0000-0000-0000-000000000001", OwnerID: "11111111-1111-1111-1111-111111111111", Name: "Mix"}
	handler := PlaylistHandler{Playlists: playlists, Videos: newInMemoryVideoStore()}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/playlist/not-a-uuid", nil)
	req.SetPathValue("playlistId", "not-a-uuid")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for malformed playlistId, got %d", http.StatusBadRequest, rec.Code)
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/playlist/add/not-a-uuid/dddddddd-0000-0000-0000-000000000001", nil)
	req.SetPathValue("videoId", "not-a-uuid")
	req.SetPathValue("playlistId", "dddddddd-0000-0000-0000-000000000001")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec = httptest.NewRecorder()
	handler.AddVideo(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for malformed videoId, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestPlaylistHandlerUpdateForbiddenForNonOwner(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	playlists.playlists["dddddddd-0000-0000-0000-000000000001"] = models.Playlist{ID: "dddddddd-0000-0000-0000-000000000001", OwnerID: "22222222-2222-2222-2222-222222222222", Name: "Theirs"}
	handler := PlaylistHandler{Playlists: playlists}

	body := `{"name":"Mine Now"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/playlist/dddddddd-0000-0000-0000-000000000001", strings.NewReader(body))
	req.SetPathValue("playlistId", "dddddddd-0000-0000-0000-000000000001")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d got %d", http.StatusForbidden, rec.Code)
	}
	if playlists.playlists["dddddddd-0000-0000-0000-000000000001"].Name != "Theirs" {
		t.Fatalf("expected playlist name unchanged")
	}
}

func TestPlaylistHandlerDelete(t *testing.T) {
	playlists := newInMemoryPlaylistStore()
	playlists.playlists["dddddddd-0000-0000-0000-000000000001"] = models.Playlist{ID: "dddddddd-0000-0000-0000-000000000001", OwnerID: "11111111-1111-1111-1111-111111111111", Name: "Mix"}
	handler := PlaylistHandler{Playlists: playlists}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/playlist/dddddddd-0000-0000-0000-000000000001", nil)
	req.SetPathValue("playlistId", "dddddddd-0000-0000-0000-000000000001")
	req = authedRequest(req, "11111111-1111-1111-1111-111111111111")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}
	if _, ok := playlists.playlists["dddddddd-0000-0000-0000-000000000001"]; ok {
		t.Fatalf("expected playlist to be removed")
	}
}
