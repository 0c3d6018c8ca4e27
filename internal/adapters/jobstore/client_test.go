package jobstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
	apperrors "github.com/suilance/suilance-ui-api/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientOptions{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(ClientOptions{})
	assert.Error(t, err)
}

func TestClient_List(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/jobs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","sui_id":"0xa","title":"Logo","status":"Posted","creator":"0xc","createdAt":1}]`))
	}))

	jobs, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Logo", jobs[0].Title)
	assert.Equal(t, model.JobStatusPosted, jobs[0].Status)
}

func TestClient_Create(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/jobs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var job model.Job
		require.NoError(t, json.NewDecoder(r.Body).Decode(&job))
		assert.Equal(t, "0xjob", job.SuiID)

		job.ID = "42"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(job)
	}))

	created, err := client.Create(context.Background(), model.Job{
		SuiID:  "0xjob",
		Title:  "Logo",
		Status: model.JobStatusPosted,
	})
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID)
}

func TestClient_Update_SendsOnlySetFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/jobs/42", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"status": "Funded", "escrowId": "0xesc"}, body)

		_ = json.NewEncoder(w).Encode(model.Job{ID: "42", Status: model.JobStatusFunded, EscrowID: "0xesc"})
	}))

	status := model.JobStatusFunded
	escrow := "0xesc"
	updated, err := client.Update(context.Background(), "42", model.JobUpdate{Status: &status, EscrowID: &escrow})
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusFunded, updated.Status)
}

func TestClient_Update_EmptyID(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())
	_, err := client.Update(context.Background(), "  ", model.JobUpdate{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestClient_UpstreamErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.Update(context.Background(), "99", model.JobUpdate{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestClient_Reputations(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/reputations", r.URL.Path)
			_, _ = w.Write([]byte(`[{"freelancer_wallet":"0xf","client_wallet":"0xc","rating":5,"issued_at":1}]`))
		case http.MethodPost:
			var rec model.ReputationRecord
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
			rec.ID = "7"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(rec)
		}
	}))

	reps := client.Reputations()

	recs, err := reps.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 5, recs[0].Rating)

	created, err := reps.Create(context.Background(), model.ReputationRecord{
		FreelancerWallet: "0xf",
		ClientWallet:     "0xc",
		Rating:           4,
	})
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID)
}
