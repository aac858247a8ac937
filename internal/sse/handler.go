package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// Handler streams hub events. Optional query parameters: types=a,b and player=name.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var eventTypes []string
		if filter := r.URL.Query().Get(QueryParamTypes); filter != "" {
			eventTypes = strings.Split(filter, ",")
		}
		player := r.URL.Query().Get(QueryParamPlayer)

		client := hub.Register(eventTypes, player)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"player", player,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes, "player": player},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(event) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
