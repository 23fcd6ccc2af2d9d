package board

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotBody = `{
  "board": {
    "id": "42",
    "name": "Campaigns Q2",
    "groups": [
      {
        "id": "g1",
        "title": "Rounds",
        "items": [
          {
            "id": "i1",
            "name": "Kickoff",
            "column_values": [
              {"id": "c_start", "text": "2026-03-11"},
              {"id": "c_uk", "text": "", "checked": true}
            ],
            "subitems": [
              {
                "id": "s1",
                "name": "bg",
                "column_values": [{"id": "c_class", "text": "background"}]
              }
            ]
          }
        ]
      }
    ]
  }
}`

func testServer(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get("Authorization"))
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, "tok", nil)
}

func TestGetSnapshot(t *testing.T) {
	c := testServer(t, map[string]string{"/v2/boards/42": snapshotBody})

	snap, err := c.GetSnapshot(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", snap.BoardID)
	assert.Equal(t, "Campaigns Q2", snap.Name)
	require.Len(t, snap.Groups, 1)

	group := snap.Groups[0]
	assert.Equal(t, "Rounds", group.Title)
	require.Len(t, group.Items, 1)

	item := group.Items[0]
	assert.Equal(t, "Kickoff", item.Name)
	require.Len(t, item.Cells, 2)
	assert.Equal(t, "2026-03-11", item.Cells[0].Text)
	assert.True(t, item.Cells[1].Checked)
	// Subitems must be non-nil when present, even if empty elsewhere.
	require.Len(t, item.Subitems, 1)
	assert.Equal(t, "background", item.Subitems[0].Cells[0].Text)
}

func TestGetItem_NotFound(t *testing.T) {
	c := testServer(t, nil)

	_, err := c.GetItem(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetGroup(t *testing.T) {
	c := testServer(t, map[string]string{
		"/v2/boards/42/groups/Offer Group": `{"group":{"id":"g2","title":"Offer Group","items":[]}}`,
	})

	group, err := c.GetGroup(context.Background(), "42", "Offer Group")
	require.NoError(t, err)
	assert.Equal(t, "Offer Group", group.Title)
}

func TestGetGroup_PlaceholderRejectedWithoutRequest(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(ts.Close)
	c := NewClient(ts.URL, "tok", nil)

	_, err := c.GetGroup(context.Background(), "42", GroupNamePlaceholder)
	assert.ErrorIs(t, err, ErrGroupNameUnset)
	assert.Zero(t, requests)
}

func TestGetAssetURL(t *testing.T) {
	c := testServer(t, map[string]string{
		"/v2/assets/a1": `{"asset":{"id":"a1","public_url":"https://cdn.example.com/a1.png"}}`,
	})

	url, err := c.GetAssetURL(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a1.png", url)
}

func TestGetAssetURL_MissingIsEmpty(t *testing.T) {
	c := testServer(t, nil)

	url, err := c.GetAssetURL(context.Background(), "gone")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestGetSnapshot_MalformedPayload(t *testing.T) {
	c := testServer(t, map[string]string{"/v2/boards/42": `{"unexpected":true}`})

	_, err := c.GetSnapshot(context.Background(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing board object")
}
