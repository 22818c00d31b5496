package common

import (
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Metrics struct {
	JourneyTicksTotal      prometheus.Counter
	JourneyEventsTotal     *prometheus.CounterVec
	JourneyElapsedSeconds  prometheus.Gauge
	JourneyProgressPercent prometheus.Gauge
	NearStationIndex       prometheus.Gauge
	HazardActive           prometheus.Gauge
	CueTogglesTotal        *prometheus.CounterVec
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		JourneyTicksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "assist_journey_ticks_total",
				Help: "Journey clock ticks processed",
			},
		),
		JourneyEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assist_journey_events_total",
				Help: "Journey lifecycle events by type",
			},
			[]string{"event"},
		),
		JourneyElapsedSeconds: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "assist_journey_elapsed_seconds",
				Help: "Elapsed seconds of the current journey",
			},
		),
		JourneyProgressPercent: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "assist_journey_progress_percent",
				Help: "Progress of the current journey in percent",
			},
		),
		NearStationIndex: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "assist_near_station_index",
				Help: "Index of the station the train is near, -1 while traveling",
			},
		),
		HazardActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "assist_hazard_active",
				Help: "1 while the hazard warning is shown",
			},
		),
		CueTogglesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assist_cue_toggles_total",
				Help: "Proximity cue visual flips per station",
			},
			[]string{"station"},
		),
	}

	metrics.NearStationIndex.Set(-1)

	registry.MustRegister(
		metrics.JourneyTicksTotal,
		metrics.JourneyEventsTotal,
		metrics.JourneyElapsedSeconds,
		metrics.JourneyProgressPercent,
		metrics.NearStationIndex,
		metrics.HazardActive,
		metrics.CueTogglesTotal,
	)

	return metrics
}

type TelemetryServer struct {
	addr     string
	mux      *http.ServeMux
	registry *prometheus.Registry

	server   *http.Server
	listener net.Listener
}

func NewTelemetryServer(addr string) *TelemetryServer {
	telemetry := &TelemetryServer{
		addr:     addr,
		registry: prometheus.NewRegistry(),
		mux:      http.NewServeMux(),
	}

	telemetry.mux.Handle(
		"/metrics",
		promhttp.HandlerFor(telemetry.registry, promhttp.HandlerOpts{}),
	)

	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "assist_build_info",
			Help: "Build metadata",
		},
		[]string{"version", "git_commit"},
	)

	telemetry.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo,
	)

	buildInfo.WithLabelValues(Version, GitCommit).Set(1)

	telemetry.mux.HandleFunc("/debug/pprof/", pprof.Index)
	telemetry.mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	telemetry.mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	telemetry.mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	telemetry.mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return telemetry
}

func (telemetry *TelemetryServer) GetRegistry() *prometheus.Registry {
	return telemetry.registry
}

func (telemetry *TelemetryServer) Handler() http.Handler {
	return telemetry.mux
}

func (telemetry *TelemetryServer) Start() error {
	telemetry.server = &http.Server{
		Addr:              telemetry.addr,
		Handler:           telemetry.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	listener, err := net.Listen("tcp", telemetry.addr)
	if err != nil {
		return err
	}

	telemetry.listener = listener

	go telemetry.server.Serve(telemetry.listener)

	log.Info().Str("addr", listener.Addr().String()).Msg("Telemetry server started")
	return nil
}

func (telemetry *TelemetryServer) Stop() error {
	if telemetry.server == nil {
		return nil
	}

	return telemetry.server.Close()
}
