package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/website/backend/internal/domain/install"
)

type frame struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Banner  *install.Banner `json:"banner"`
}

func newTestConn(t *testing.T, store *install.DirStore, query string) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(store, nil, nil)
	router.GET("/stream", handler.HandleConnection)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream"
	if query != "" {
		url += "?" + query
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// readUntil reads frames until one of the wanted type arrives.
func readUntil(t *testing.T, conn *websocket.Conn, wantType string) frame {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))
	for {
		var f frame
		require.NoError(t, conn.ReadJSON(&f), "waiting for %q frame", wantType)
		if f.Type == wantType {
			return f
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, msg map[string]interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

func TestInstallableShowsBannerOverSocket(t *testing.T) {
	store := install.NewDirStore(t.TempDir())
	conn := newTestConn(t, store, "client_id=client-1")

	f := readUntil(t, conn, "banner")
	assert.False(t, f.Banner.Visible, "no banner before the installability signal")

	send(t, conn, map[string]interface{}{"type": "installable", "platforms": []string{"web"}})

	f = readUntil(t, conn, "banner")
	assert.True(t, f.Banner.Visible)
	assert.Equal(t, []string{"web"}, f.Banner.Platforms)
}

func TestInstallRoundTripAccepted(t *testing.T) {
	store := install.NewDirStore(t.TempDir())
	conn := newTestConn(t, store, "client_id=client-1")

	send(t, conn, map[string]interface{}{"type": "installable", "platforms": []string{"web"}})
	f := readUntil(t, conn, "banner")
	require.True(t, f.Banner.Visible)

	send(t, conn, map[string]interface{}{"type": "install"})
	readUntil(t, conn, "prompt")

	send(t, conn, map[string]interface{}{"type": "install_result", "outcome": "accepted", "platform": "web"})

	f = readUntil(t, conn, "banner")
	assert.False(t, f.Banner.Visible)
}

func TestDismissPersistsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	store := install.NewDirStore(dir)

	conn := newTestConn(t, store, "client_id=client-1")
	send(t, conn, map[string]interface{}{"type": "installable"})
	f := readUntil(t, conn, "banner")
	require.True(t, f.Banner.Visible)

	send(t, conn, map[string]interface{}{"type": "dismiss"})
	f = readUntil(t, conn, "banner")
	assert.False(t, f.Banner.Visible)
	assert.True(t, store.Client("client-1").Dismissed())

	// A new session for the same client stays suppressed.
	conn2 := newTestConn(t, store, "client_id=client-1")
	send(t, conn2, map[string]interface{}{"type": "installable"})
	readUntil(t, conn2, "banner") // initial state
	f = readUntil(t, conn2, "banner")
	assert.False(t, f.Banner.Visible)
}

func TestStandaloneSessionIgnoresSignals(t *testing.T) {
	store := install.NewDirStore(t.TempDir())
	conn := newTestConn(t, store, "client_id=client-1&standalone=true")

	f := readUntil(t, conn, "banner")
	assert.True(t, f.Banner.Installed)
	assert.False(t, f.Banner.Visible)

	send(t, conn, map[string]interface{}{"type": "installable", "platforms": []string{"web"}})
	send(t, conn, map[string]interface{}{"type": "ping"})

	// The ping reply arrives without any banner push in between.
	deadline := time.Now().Add(3 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))
	var got frame
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "pong", got.Type)
}

func TestInstalledConfirmationOverSocket(t *testing.T) {
	store := install.NewDirStore(t.TempDir())
	conn := newTestConn(t, store, "client_id=client-1")

	send(t, conn, map[string]interface{}{"type": "installable", "platforms": []string{"web"}})
	f := readUntil(t, conn, "banner")
	require.True(t, f.Banner.Visible)

	send(t, conn, map[string]interface{}{"type": "appinstalled"})
	f = readUntil(t, conn, "banner")
	assert.True(t, f.Banner.Installed)
	assert.False(t, f.Banner.Visible)
}

func TestUnknownMessageType(t *testing.T) {
	store := install.NewDirStore(t.TempDir())
	conn := newTestConn(t, store, "")

	send(t, conn, map[string]interface{}{"type": "bogus"})

	f := readUntil(t, conn, "error")
	assert.Equal(t, "unknown message type", f.Message)
}
