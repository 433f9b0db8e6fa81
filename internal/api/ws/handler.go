package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lumenworks/website/backend/internal/domain/install"
	"github.com/lumenworks/website/backend/internal/infrastructure/logging"
	"github.com/lumenworks/website/backend/internal/infrastructure/monitoring"
	"github.com/lumenworks/website/backend/internal/shared/id"
	"github.com/lumenworks/website/backend/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin restrictions handled by CORS config upstream
	},
}

// Handler manages WebSocket connections
type Handler struct {
	store   *install.DirStore
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler
func NewHandler(store *install.DirStore, logger *logging.Logger, metrics *monitoring.Metrics) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Client identity persists the dismissal record across visits; the
	// page reports standalone display mode at connect time.
	clientID := c.Query("client_id")
	if !id.ValidClientID(clientID) {
		clientID = string(id.NewClientID())
	}
	standalone := c.Query("standalone") == "true"
	sessionID := uuid.New().String()

	controller := install.NewController(standalone, h.store.Client(clientID), h.logger)
	if h.metrics != nil {
		controller = controller.WithMetrics(h.metrics)
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	sess := &session{
		conn:    conn,
		closed:  make(chan struct{}),
		handler: h,
	}
	defer sess.close()

	h.logger.Debug("session connected",
		zap.String("session_id", sessionID),
		zap.String("client_id", clientID),
		zap.Bool("standalone", standalone),
	)

	sess.send(map[string]interface{}{
		"type":       "system",
		"message":    "connected",
		"client_id":  clientID,
		"session_id": sessionID,
	})
	sess.pushBanner(controller.Banner())

	// Get request context for propagation
	reqCtx := c.Request.Context()

	var installing sync.WaitGroup
	defer installing.Wait()

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("WebSocket read error", zap.Error(err))
			}
			break
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage("in", msg.Type)
		}

		switch msg.Type {
		case "installable":
			// A standalone session registered no listeners; ignore.
			if !controller.Active() {
				continue
			}
			prompt := sess.capture(msg.Platforms)
			sess.pushBanner(controller.HandleInstallable(prompt))

		case "appinstalled":
			sess.pushBanner(controller.HandleInstalled())

		case "install":
			// The prompt blocks until the user responds; run it off the
			// read loop so install_result can still arrive.
			installing.Add(1)
			go func() {
				defer installing.Done()
				sess.pushBanner(controller.RequestInstall(reqCtx))
			}()

		case "install_result":
			sess.resolve(install.Choice{
				Outcome:  install.Outcome(msg.Outcome),
				Platform: msg.Platform,
			})

		case "dismiss":
			sess.pushBanner(controller.Dismiss())

		case "ping":
			sess.send(map[string]interface{}{"type": "pong"})

		default:
			sess.sendError("unknown message type")
		}
	}

	// Unblock any in-flight prompt before waiting for it.
	sess.close()
}

// session holds per-connection write state and the pending prompt.
type session struct {
	conn    *websocket.Conn
	handler *Handler

	writeMu sync.Mutex

	mu        sync.Mutex
	pending   *deferredPrompt
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *session) send(data interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(data)
}

func (s *session) pushBanner(b install.Banner) {
	if s.handler.metrics != nil {
		s.handler.metrics.RecordWSMessage("out", "banner")
	}
	if err := s.send(map[string]interface{}{
		"type":   "banner",
		"banner": b,
	}); err != nil {
		s.handler.logger.Debug("banner push failed", zap.Error(err))
	}
}

func (s *session) sendError(msg string) {
	s.send(map[string]interface{}{
		"type":    "error",
		"message": msg,
	})
}

// capture creates the one-shot prompt handle for an installability
// signal. A newer signal replaces any unresolved older prompt.
func (s *session) capture(platforms []string) *deferredPrompt {
	p := &deferredPrompt{
		platforms: platforms,
		result:    make(chan install.Choice, 1),
		closed:    s.closed,
		trigger: func() error {
			if s.handler.metrics != nil {
				s.handler.metrics.RecordWSMessage("out", "prompt")
			}
			return s.send(map[string]interface{}{"type": "prompt"})
		},
	}

	s.mu.Lock()
	s.pending = p
	s.mu.Unlock()
	return p
}

func (s *session) resolve(choice install.Choice) {
	s.mu.Lock()
	p := s.pending
	s.mu.Unlock()

	if p != nil {
		p.resolve(choice)
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}
