package slack

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSlackServer(t *testing.T, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
}

func TestClient_PostMessage_ReturnsTimestamp(t *testing.T) {
	srv := newMockSlackServer(t, `{"ok":true,"channel":"C1","ts":"1700000000.000100"}`)
	defer srv.Close()

	c := NewClientWithAPIURL("xoxb-test", "C1", srv.URL+"/")
	ts, err := c.PostMessage(context.Background(), []goslack.Block{section("hello")}, "", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "1700000000.000100", ts)
}

func TestClient_PostMessage_ThreadsUnderParent(t *testing.T) {
	var capturedBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		capturedBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"2"}`))
	}))
	defer srv.Close()

	c := NewClientWithAPIURL("xoxb-test", "C1", srv.URL+"/")
	_, err := c.PostMessage(context.Background(), []goslack.Block{section("reply")}, "1700000000.000001", time.Second)
	require.NoError(t, err)
	assert.True(t, strings.Contains(capturedBody, "thread_ts"))
}

func TestClient_PostMessage_APIError(t *testing.T) {
	srv := newMockSlackServer(t, `{"ok":false,"error":"channel_not_found"}`)
	defer srv.Close()

	c := NewClientWithAPIURL("xoxb-test", "C1", srv.URL+"/")
	_, err := c.PostMessage(context.Background(), []goslack.Block{section("hello")}, "", time.Second)
	assert.Error(t, err)
}

func TestClient_UpdateMessage_Success(t *testing.T) {
	srv := newMockSlackServer(t, `{"ok":true,"channel":"C1","ts":"2"}`)
	defer srv.Close()

	c := NewClientWithAPIURL("xoxb-test", "C1", srv.URL+"/")
	err := c.UpdateMessage(context.Background(), "2", []goslack.Block{section("updated")}, time.Second)
	require.NoError(t, err)
}

func TestClient_UpdateMessage_APIError(t *testing.T) {
	srv := newMockSlackServer(t, `{"ok":false,"error":"message_not_found"}`)
	defer srv.Close()

	c := NewClientWithAPIURL("xoxb-test", "C1", srv.URL+"/")
	err := c.UpdateMessage(context.Background(), "missing", []goslack.Block{section("updated")}, time.Second)
	assert.Error(t, err)
}
