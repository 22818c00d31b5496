package assist_web

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"tarediiran-industries.com/gap-assist/internal/feed"
)

func (server *AssistWebServer) render(writer http.ResponseWriter, name string, viewmodel any) {
	var body bytes.Buffer
	if err := server.renderer.Render(&body, name, viewmodel); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Render failed")
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.Write(body.Bytes())
}

func (server *AssistWebServer) writeFeed(writer http.ResponseWriter, query FeedQuery, message *gtfs.FeedMessage) {
	body, err := feed.Marshal(message, query.Format)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	if query.Format == feed.FormatJSON {
		writer.Header().Set("Content-Type", "application/json")
	} else {
		writer.Header().Set("Content-Type", "application/x-protobuf")
	}
	writer.Write(body)
}

func writeJSON(writer http.ResponseWriter, status int, value any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(value); err != nil {
		log.Warn().Err(err).Msg("Writing JSON response failed")
	}
}

func requestId(request *http.Request) string {
	return middleware.GetReqID(request.Context())
}
