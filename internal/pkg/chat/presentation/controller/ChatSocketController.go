package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	qport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/queue/port"
	"github.com/amrita3792/subidha-home-services-server/internal/infrastructure/realtime"
	"github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/task"
	"github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/usecase"
	repoAdapter "github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/persistence/repository/adapter"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
	"github.com/amrita3792/subidha-home-services-server/pkg/metrics"
)

// ChatSocketController handles the websocket endpoint for realtime chat traffic:
// room joins, typing relays and private message dispatch.
type ChatSocketController struct {
	router          *realtime.Router
	queue           qport.Client
	log             *logger.Logger
	resolveRoomUC   *usecase.ResolveRoomUseCase
	sendMessageUC   *usecase.SendMessageUseCase
	inflightTimeout time.Duration
}

func NewChatSocketController(db *mongo.Database, router *realtime.Router, queue qport.Client, log *logger.Logger) *ChatSocketController {
	repo := repoAdapter.NewMongoConversationRepository(db)
	return &ChatSocketController{
		router:          router,
		queue:           queue,
		log:             log,
		resolveRoomUC:   usecase.NewResolveRoomUseCase(repo),
		sendMessageUC:   usecase.NewSendMessageUseCase(repo),
		inflightTimeout: 5 * time.Second,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when auth is added.
		return true
	},
}

// inboundFrame covers every client event. The joinRoom event has two variants:
// a participant pair {uid1, uid2} resolving a private room, and a named
// session {sessionId} used as a user-scoped notification channel.
type inboundFrame struct {
	Event      string `json:"event"`
	UID1       string `json:"uid1,omitempty"`
	UID2       string `json:"uid2,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
	RoomID     string `json:"roomId,omitempty"`
	SenderID   string `json:"senderId,omitempty"`
	ReceiverID string `json:"receiverId,omitempty"`
	Message    string `json:"message,omitempty"`
}

type roomJoinedFrame struct {
	Event   string `json:"event"`
	Success bool   `json:"success"`
	RoomID  string `json:"roomId,omitempty"`
	Message string `json:"message,omitempty"`
}

type typingFrame struct {
	Event      string `json:"event"`
	RoomID     string `json:"roomId"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

type messageFrame struct {
	Event    string `json:"event"`
	RoomID   string `json:"roomId"`
	SenderID string `json:"senderId"`
	Message  string `json:"message"`
}

type errorFrame struct {
	Event   string `json:"event"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades HTTP connections to websocket and processes frames until the
// client disconnects. The deferred Detach releases every room slot the handle
// held, so membership always reflects live connections.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Query("uid")
		if uid == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; nothing else to do.
			return
		}

		conn := realtime.NewConnection(uid, ws)
		ctl.router.Attach(conn)
		metrics.SocketConnectionsActive.Inc()
		defer func() {
			ctl.router.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
			metrics.SocketConnectionsActive.Dec()
		}()

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				ctl.replyError(conn, "read_error", err.Error())
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			switch frame.Event {
			case "joinRoom":
				ctl.handleJoinRoom(c, conn, frame)
			case "typing", "notTyping":
				ctl.handleTyping(conn, frame)
			case "privateMessage":
				ctl.handlePrivateMessage(c, conn, frame)
			default:
				ctl.replyError(conn, "unsupported_event", "unknown event")
			}
		}
	}
}

// handleJoinRoom covers both joinRoom variants. The session variant joins an
// arbitrary named room with no capacity limit; the pair variant resolves the
// canonical room for the two uids and enforces the two-party cap.
func (ctl *ChatSocketController) handleJoinRoom(c *gin.Context, conn *realtime.Connection, frame inboundFrame) {
	if frame.SessionID != "" {
		ctl.router.JoinSession(frame.SessionID, conn)
		metrics.RoomJoinsTotal.WithLabelValues("session").Inc()
		ctl.reply(conn, roomJoinedFrame{Event: "roomJoined", Success: true, RoomID: frame.SessionID})
		return
	}

	if frame.UID1 == "" || frame.UID2 == "" {
		ctl.replyError(conn, "bad_request", "uid1 and uid2 are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	roomID, err := ctl.resolveRoomUC.Execute(ctx, frame.UID1, frame.UID2)
	if err != nil {
		ctl.handleUseCaseError(conn, err)
		return
	}

	if err := ctl.router.JoinRoom(roomID, conn); err != nil {
		if errors.Is(err, realtime.ErrRoomFull) {
			metrics.RoomJoinsTotal.WithLabelValues("rejected").Inc()
			ctl.reply(conn, roomJoinedFrame{Event: "roomJoined", Success: false, Message: "Room is full"})
			return
		}
		ctl.replyError(conn, "bad_request", err.Error())
		return
	}

	metrics.RoomJoinsTotal.WithLabelValues("joined").Inc()
	ctl.reply(conn, roomJoinedFrame{Event: "roomJoined", Success: true, RoomID: roomID})
}

// handleTyping relays typing/notTyping signals to the receiver's handle in the
// room. No persistence; when the receiver is not joined the signal is dropped.
func (ctl *ChatSocketController) handleTyping(conn *realtime.Connection, frame inboundFrame) {
	if frame.RoomID == "" || frame.SenderID == "" || frame.ReceiverID == "" {
		ctl.replyError(conn, "bad_request", "roomId, senderId and receiverId are required")
		return
	}

	out := typingFrame{
		Event:      frame.Event + "-" + frame.ReceiverID,
		RoomID:     frame.RoomID,
		SenderID:   frame.SenderID,
		ReceiverID: frame.ReceiverID,
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return
	}
	ctl.router.SendToUser(frame.RoomID, frame.ReceiverID, payload)
}

// handlePrivateMessage persists the message first and fans it out only on
// success: a receiver-tagged event to the other participant and a sender-tagged
// echo back to the origin. A receiver with no live handle in the room gets a
// tagged room broadcast as fallback plus an offline notification task.
func (ctl *ChatSocketController) handlePrivateMessage(c *gin.Context, conn *realtime.Connection, frame inboundFrame) {
	if frame.RoomID == "" || frame.SenderID == "" || frame.ReceiverID == "" {
		ctl.replyError(conn, "bad_request", "roomId, senderId and receiverId are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	msg, _, err := ctl.sendMessageUC.Execute(ctx, usecase.SendMessageInput{
		RoomID:     frame.RoomID,
		SenderID:   frame.SenderID,
		ReceiverID: frame.ReceiverID,
		Text:       frame.Message,
	})
	if err != nil {
		ctl.handleUseCaseError(conn, err)
		return
	}
	metrics.MessagesTotal.Inc()

	toReceiver, err := json.Marshal(messageFrame{
		Event:    "privateMessage-" + frame.ReceiverID,
		RoomID:   frame.RoomID,
		SenderID: msg.SenderID,
		Message:  msg.Text,
	})
	if err != nil {
		ctl.replyError(conn, "internal_error", "failed to encode message")
		return
	}

	if !ctl.router.SendToUser(frame.RoomID, frame.ReceiverID, toReceiver) {
		ctl.router.Broadcast(frame.RoomID, toReceiver)
		ctl.enqueueOfflineNotification(ctx, frame)
	}

	_ = conn.SendJSON(messageFrame{
		Event:    "myMessage-" + frame.SenderID,
		RoomID:   frame.RoomID,
		SenderID: msg.SenderID,
		Message:  msg.Text,
	})
}

func (ctl *ChatSocketController) enqueueOfflineNotification(ctx context.Context, frame inboundFrame) {
	if ctl.queue == nil {
		return
	}
	t, err := task.NewOfflineMessageTask(task.OfflineMessageTaskPayload{
		RoomID:     frame.RoomID,
		SenderID:   frame.SenderID,
		ReceiverID: frame.ReceiverID,
		Message:    frame.Message,
	})
	if err != nil {
		return
	}
	if _, err := ctl.queue.Enqueue(ctx, t, qport.EnqueueOption{Queue: "chat"}); err != nil {
		ctl.log.Warn("enqueue offline notification failed",
			zap.String("room_id", frame.RoomID), zap.Error(err))
		return
	}
	metrics.OfflineNotificationsTotal.Inc()
}

func (ctl *ChatSocketController) handleUseCaseError(conn *realtime.Connection, err error) {
	if errors.Is(err, usecase.ErrPersistence) {
		ctl.log.Error("chat persistence failure", zap.Error(err))
		ctl.replyError(conn, "internal_error", "unexpected persistence error")
		return
	}
	ctl.replyError(conn, "bad_request", err.Error())
}

func (ctl *ChatSocketController) reply(conn *realtime.Connection, frame any) {
	_ = conn.SendJSON(frame)
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, code string, message string) {
	ctl.reply(conn, errorFrame{Event: "error", Code: code, Message: message})
}
