package websocket

import (
	"encoding/json"
	"log"
	"net/http"

	"advicerater/middlewares"
	"advicerater/models"
	"advicerater/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var ratingUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Frame types sent to the client
const (
	FrameAnalyzing = "analyzing"
	FrameResult    = "result"
	FrameError     = "error"
)

// RatingFrame is one server message on the rating socket
type RatingFrame struct {
	Type    string                `json:"type"`
	Outcome *models.RatingOutcome `json:"outcome,omitempty"`
}

// RatingHandler rates advice over a WebSocket. Each request message gets an
// "analyzing" frame while the completion runs, then a result or error frame.
// Requests on one connection are handled one at a time.
func RatingHandler(advice *services.AdviceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)

		conn, err := ratingUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				return
			}

			var req models.RatingRequest
			if err := json.Unmarshal(data, &req); err != nil {
				frame := RatingFrame{Type: FrameError, Outcome: &models.RatingOutcome{Error: "Invalid request payload"}}
				if err := conn.WriteJSON(frame); err != nil {
					return
				}
				continue
			}

			// Validation failures never reach the service, so skip the busy marker.
			if err := services.Validate(sess, req); err == nil {
				if err := conn.WriteJSON(RatingFrame{Type: FrameAnalyzing}); err != nil {
					return
				}
			}

			outcome := advice.Outcome(c.Request.Context(), sess, req)
			frame := RatingFrame{Type: FrameResult, Outcome: &outcome}
			if outcome.Error != "" {
				frame.Type = FrameError
			}
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		}
	}
}
