package assist_web

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

func (server *AssistWebServer) handleDisplayPage(writer http.ResponseWriter, request *http.Request) {
	query := ParseDisplayQuery(request, server.sim.Localizer())

	snapshot := server.sim.Snapshot(query.Language)
	viewmodel := BuildDisplayPageVM(snapshot, query.Language, server.sim.Localizer(), server.pollInterval)

	server.render(writer, "layout.html", viewmodel)
}

func (server *AssistWebServer) handleDisplayPartial(writer http.ResponseWriter, request *http.Request) {
	query := ParseDisplayQuery(request, server.sim.Localizer())

	snapshot := server.sim.Snapshot(query.Language)
	viewmodel := BuildDisplayPanelVM(snapshot, query.Language)

	server.render(writer, "display_partial.html", viewmodel)
}

func (server *AssistWebServer) handleSnapshot(writer http.ResponseWriter, request *http.Request) {
	query := ParseDisplayQuery(request, server.sim.Localizer())
	writeJSON(writer, http.StatusOK, server.sim.Snapshot(query.Language))
}

func (server *AssistWebServer) handleStations(writer http.ResponseWriter, request *http.Request) {
	writeJSON(writer, http.StatusOK, BuildStationVMs(server.sim.Route()))
}

func (server *AssistWebServer) handleJourneyStart(writer http.ResponseWriter, request *http.Request) {
	if err := server.executor.Call(request.Context(), server.sim.Start); err != nil {
		http.Error(writer, err.Error(), http.StatusServiceUnavailable)
		return
	}

	log.Info().Str("request_id", requestId(request)).Msg("Journey started by operator")

	query := ParseDisplayQuery(request, server.sim.Localizer())
	writeJSON(writer, http.StatusOK, server.sim.Snapshot(query.Language))
}

func (server *AssistWebServer) handleJourneyStop(writer http.ResponseWriter, request *http.Request) {
	var stopped bool
	if err := server.executor.Call(request.Context(), func() { stopped = server.sim.Stop() }); err != nil {
		http.Error(writer, err.Error(), http.StatusServiceUnavailable)
		return
	}

	log.Info().Str("request_id", requestId(request)).Bool("stopped", stopped).Msg("Journey stop requested by operator")

	query := ParseDisplayQuery(request, server.sim.Localizer())
	writeJSON(writer, http.StatusOK, StopResultVM{
		Stopped:  stopped,
		Snapshot: server.sim.Snapshot(query.Language),
	})
}

func (server *AssistWebServer) handleVehiclePositions(writer http.ResponseWriter, request *http.Request) {
	message := server.feed.VehiclePositions(server.sim.State(), server.now())
	server.writeFeed(writer, ParseFeedQuery(request), message)
}

func (server *AssistWebServer) handleAlerts(writer http.ResponseWriter, request *http.Request) {
	message := server.feed.Alerts(server.sim.State(), server.now())
	server.writeFeed(writer, ParseFeedQuery(request), message)
}

func (server *AssistWebServer) handleHealth(writer http.ResponseWriter, request *http.Request) {
	state := server.sim.State()
	writeJSON(writer, http.StatusOK, HealthVM{
		Status:    "ok",
		Route:     server.sim.Route().Name,
		Phase:     string(state.Phase),
		CueActive: server.sim.CueActive(),
		Timestamp: server.now().UTC().Format(time.RFC3339),
	})
}
