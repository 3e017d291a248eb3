package artwork

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/artable/internal/pagination"
	"github.com/rshade/artable/internal/testutil"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(ClientConfig{BaseURL: baseURL, UserAgent: "artable-test/1.0"})
	require.NoError(t, err)
	return c
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		wantErr  bool
		endpoint string
	}{
		{name: "default", baseURL: "", endpoint: DefaultBaseURL + "/artworks"},
		{name: "trailing slash", baseURL: "http://localhost:8080/api/v1/", endpoint: "http://localhost:8080/api/v1/artworks"},
		{name: "bad scheme", baseURL: "ftp://example.com", wantErr: true},
		{name: "missing host", baseURL: "http://", wantErr: true},
		{name: "unparseable", baseURL: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(ClientConfig{BaseURL: tt.baseURL})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.endpoint, c.Endpoint())
		})
	}
}

func TestClient_PageURL(t *testing.T) {
	c := newTestClient(t, "https://api.example.org/api/v1")
	u := c.PageURL(3)
	assert.Contains(t, u, "page=3")
	assert.Contains(t, u, "limit=10")
	assert.Contains(t, u, "fields=id%2Ctitle%2Cplace_of_origin%2Cartist_display%2Cinscription%2Cdate_start%2Cdate_end")
}

func TestClient_FetchPage(t *testing.T) {
	mock := testutil.NewMockArtic(95)
	defer mock.Close()

	c := newTestClient(t, mock.URL())

	result, err := c.FetchPage(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, result.Records, 10)
	assert.Equal(t, 11, result.Records[0].ID)
	assert.Equal(t, "Artwork 11", result.Records[0].Title)
	assert.Equal(t, "France", result.Records[0].PlaceOfOrigin)
	assert.Empty(t, result.Records[0].Inscription, "null inscription decodes to empty")
	assert.Equal(t, 1811, result.Records[0].DateStart)
	assert.Equal(t, 95, result.Total)
	assert.Equal(t, 10, result.TotalPages())
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, result.IDs())

	assert.Equal(t, "2", mock.LastQuery["page"])
	assert.Equal(t, "10", mock.LastQuery["limit"])
	assert.Equal(t, FieldsParam(), mock.LastQuery["fields"])
	assert.Equal(t, "artable-test/1.0", mock.LastHeader.Get("User-Agent"))
	assert.Equal(t, "application/json", mock.LastHeader.Get("Accept"))
}

func TestClient_FetchPage_LastPartialPage(t *testing.T) {
	mock := testutil.NewMockArtic(95)
	defer mock.Close()

	result, err := newTestClient(t, mock.URL()).FetchPage(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, result.Records, 5)
}

func TestClient_FetchPage_InvalidPage(t *testing.T) {
	mock := testutil.NewMockArtic(10)
	defer mock.Close()

	_, err := newTestClient(t, mock.URL()).FetchPage(context.Background(), 0)
	require.ErrorIs(t, err, pagination.ErrInvalidPage)
	assert.Equal(t, 0, mock.Requests(), "no request for an invalid page")
}

func TestClient_FetchPage_Failures(t *testing.T) {
	tests := []struct {
		name       string
		resp       testutil.MockPageResponse
		wantClass  ErrorClass
		wantStatus int
	}{
		{
			name:       "server error",
			resp:       testutil.MockPageResponse{StatusCode: http.StatusInternalServerError, Body: `{"error":"boom"}`},
			wantClass:  ErrorClassStatus,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "forbidden deep page",
			resp:       testutil.MockPageResponse{StatusCode: http.StatusForbidden, Body: `{"detail":"limit exceeded"}`},
			wantClass:  ErrorClassStatus,
			wantStatus: http.StatusForbidden,
		},
		{
			name:      "malformed body",
			resp:       testutil.MockPageResponse{Body: `{"data": [`},
			wantClass:  ErrorClassParse,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockArtic(10)
			defer mock.Close()
			mock.SetResponse(1, tt.resp)

			_, err := newTestClient(t, mock.URL()).FetchPage(context.Background(), 1)
			require.Error(t, err)

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantClass, fetchErr.Class)
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
			assert.Equal(t, 1, fetchErr.Page)
			assert.Equal(t, OutcomeFailed, Classify(context.Background(), err))
		})
	}
}

func TestClient_FetchPage_NetworkFailure(t *testing.T) {
	mock := testutil.NewMockArtic(10)
	url := mock.URL()
	mock.Close()

	_, err := newTestClient(t, url).FetchPage(context.Background(), 1)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, ErrorClassNetwork, fetchErr.Class)
}

func TestClient_FetchPage_CancellationCause(t *testing.T) {
	mock := testutil.NewMockArtic(10)
	defer mock.Close()
	mock.SetDelay(1, 2*time.Second)

	c := newTestClient(t, mock.URL())

	t.Run("timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeoutCause(context.Background(), 50*time.Millisecond, ErrTimeout)
		defer cancel()

		_, err := c.FetchPage(ctx, 1)
		require.ErrorIs(t, err, ErrTimeout)
		assert.Equal(t, OutcomeTimeout, Classify(ctx, err))
	})

	t.Run("superseded", func(t *testing.T) {
		ctx, cancel := context.WithCancelCause(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel(ErrSuperseded)
		}()

		_, err := c.FetchPage(ctx, 1)
		require.ErrorIs(t, err, ErrSuperseded)
		assert.Equal(t, OutcomeCancelled, Classify(ctx, err))
	})
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Classify(context.Background(), nil))
	assert.Equal(t, OutcomeTimeout, Classify(context.Background(), context.DeadlineExceeded))
	assert.Equal(t, OutcomeCancelled, Classify(context.Background(), context.Canceled))
	assert.Equal(t, OutcomeFailed, Classify(context.Background(), errors.New("boom")))
	assert.Equal(t, OutcomeFailed, Classify(context.Background(), &FetchError{Class: ErrorClassNetwork, Err: errors.New("reset")}))
}

func TestFetchError_Error(t *testing.T) {
	inner := errors.New("bad gateway")
	err := &FetchError{Class: ErrorClassStatus, Page: 4, StatusCode: 502, Err: inner}
	assert.Equal(t, "artworks page 4: status error (status 502): bad gateway", err.Error())
	assert.ErrorIs(t, err, inner)

	netErr := &FetchError{Class: ErrorClassNetwork, Page: 1, Err: inner}
	assert.Equal(t, "artworks page 1: network error: bad gateway", netErr.Error())
}

func TestPageResult_TotalPages(t *testing.T) {
	var nilResult *PageResult
	assert.Equal(t, 0, nilResult.TotalPages())
	assert.Nil(t, nilResult.IDs())

	assert.Equal(t, 10, (&PageResult{Total: 95, Limit: 10}).TotalPages())
	assert.Equal(t, 10, (&PageResult{Total: 95}).TotalPages(), "zero limit falls back to the page size")
}
