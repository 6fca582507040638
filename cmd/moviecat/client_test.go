package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/moviecat/internal/catalog"
)

func TestClientStatus_Success(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/status").
		ExpectGET().
		RespondJSON(StatusResponse{Status: "ok", Version: "1.0.0", Statistics: true}).
		Build()

	status, err := NewClient(srv.URL).Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
	assert.True(t, status.Statistics)
}

func TestClientStatus_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusInternalServerError, "internal server error").
		Build()

	_, err := NewClient(srv.URL).Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClientStatus_ConnectionError(t *testing.T) {
	srv := newMockServer(t).Build()
	srv.Close()

	_, err := NewClient(srv.URL).Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientStatus_InvalidJSON(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not valid json"))
		}).
		Build()

	_, err := NewClient(srv.URL).Status()
	require.Error(t, err)
}

func TestClientMovie_EscapesID(t *testing.T) {
	srv := newMockServer(t).
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/movies/a%2Fb", r.URL.EscapedPath())
			respondJSON(t, w, MovieDetailResponse{Movie: catalog.Movie{ID: 1}})
		}).
		Build()

	_, err := NewClient(srv.URL).Movie("a/b")
	require.NoError(t, err)
}

func TestClientSearch_Query(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/movies/search").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "golden pear", r.URL.Query().Get("q"))
			respondJSON(t, w, SearchResponse{Query: "golden pear"})
		}).
		Build()

	resp, err := NewClient(srv.URL).Search("golden pear")
	require.NoError(t, err)
	assert.Equal(t, "golden pear", resp.Query)
}

func TestClientStatistics_Category(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/statistics").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "movies", r.URL.Query().Get("category"))
			_, _ = w.Write([]byte(`{"statistics":[{"id":1,"title":"Total Movies","value":150}],"source":"cached"}`))
		}).
		Build()

	resp, err := NewClient(srv.URL).Statistics("movies")
	require.NoError(t, err)
	require.Len(t, resp.Statistics, 1)
	assert.Equal(t, "1", resp.Statistics[0].ID.String())
	assert.Nil(t, resp.FetchedAt)
}

func TestClientClearStatistics(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/statistics/cache").
		ExpectDELETE().
		RespondStatus(http.StatusNoContent).
		Build()

	require.NoError(t, NewClient(srv.URL).ClearStatistics())
}

func TestClientAddMovie_Rejected(t *testing.T) {
	srv := newMockServer(t).
		ExpectPOST().
		RespondError(http.StatusInternalServerError, `{"error":"Failed to add movie"}`).
		Build()

	_, err := NewClient(srv.URL).AddMovie([]byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to add movie")
}
