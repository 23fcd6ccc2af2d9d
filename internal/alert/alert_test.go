package alert

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoops/campaigner/pkg/types"
)

func testAlert() types.Alert {
	return types.Alert{
		Level:     types.AlertLevelError,
		RunID:     "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		BoardID:   "board-1",
		ItemID:    "item-1",
		Message:   "campaign import failed",
		Timestamp: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewDispatcher_UnknownType(t *testing.T) {
	_, err := NewDispatcher([]types.AlertConfig{{Type: "pager"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown alert type")
}

func TestWebhookSink(t *testing.T) {
	var received types.Alert
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL)
	require.NoError(t, sink.Send(context.Background(), testAlert()))
	assert.Equal(t, "item-1", received.ItemID)
	assert.Equal(t, types.AlertLevelError, received.Level)
}

func TestWebhookSink_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookSink(srv.URL).Send(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.jsonl")
	sink, err := NewFileSink(path)
	require.NoError(t, err)

	require.NoError(t, sink.Send(context.Background(), testAlert()))
	require.NoError(t, sink.Send(context.Background(), testAlert()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, len(splitLines(data)))
}

func TestFileSink_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.jsonl")
	sink, err := NewFileSink(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, sink.Send(ctx, testAlert()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}
	return lines
}

type mockSNS struct {
	published []*sns.PublishInput
}

func (m *mockSNS) Publish(_ context.Context, input *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.published = append(m.published, input)
	return &sns.PublishOutput{}, nil
}

func TestSNSSink(t *testing.T) {
	mock := &mockSNS{}
	sink, err := NewSNSSink("arn:aws:sns:eu-west-1:123:alerts", WithSNSClient(mock))
	require.NoError(t, err)

	require.NoError(t, sink.Send(context.Background(), testAlert()))
	require.Len(t, mock.published, 1)
	assert.Equal(t, "[error] campaign import item-1", aws.ToString(mock.published[0].Subject))

	var payload types.Alert
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(mock.published[0].Message)), &payload))
	assert.Equal(t, "campaign import failed", payload.Message)
}

type mockS3 struct {
	keys []string
}

func (m *mockS3) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.keys = append(m.keys, aws.ToString(input.Key))
	return &s3.PutObjectOutput{}, nil
}

func TestS3Sink(t *testing.T) {
	mock := &mockS3{}
	sink, err := NewS3Sink("alerts-bucket", "campaigner/", WithS3Client(mock))
	require.NoError(t, err)

	require.NoError(t, sink.Send(context.Background(), testAlert()))
	require.Len(t, mock.keys, 1)
	assert.Equal(t, "campaigner/2026-03-02/item-1/1772452800000-error.json", mock.keys[0])
}
