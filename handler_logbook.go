package logbook

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/azolika/LogbookTestApp/converter"
	"github.com/azolika/LogbookTestApp/formatter"
	"github.com/azolika/LogbookTestApp/utils"
)

const (
	pipelineEvents = "events"
	pipelineTrips  = "trips"
)

func (s *Service) handleVehicles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vehicles, err := s.Vehicles(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	_ = json.NewEncoder(w).Encode(vehicles)
}

// handleRun serves one pipeline in one output format.
func (s *Service) handleRun(pipeline, format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := ParseLogbookQuery(r.URL.Query(), utils.TodayIn(s.appLoc))
		if err != nil {
			writeQueryError(w, err)
			return
		}

		var res RunResult
		if pipeline == pipelineEvents {
			res, err = s.RunEvents(r.Context(), q)
		} else {
			res, err = s.RunTrips(r.Context(), q)
		}
		if err != nil {
			var qerr *QueryError
			if errors.As(err, &qerr) {
				writeQueryError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write(buildErrorPayload(err.Error()))
			return
		}

		writeRun(w, pipeline, format, res)
	}
}

func writeQueryError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(buildErrorPayload(err.Error()))
}

func writeRun(w http.ResponseWriter, pipeline, format string, res RunResult) {
	latCol, lonCol := converter.ColLatitude, converter.ColLongitude
	title := "Logbook events"
	if pipeline == pipelineTrips {
		latCol, lonCol = converter.ColTripEndLat, converter.ColTripEndLon
		title = "Logbook trips"
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(buildRunJSON(res, latCol, lonCol))
	case "csv":
		out, err := formatter.BuildCSV(res.Table)
		if err != nil {
			writeRenderError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="logbook-`+pipeline+`.csv"`)
		_, _ = w.Write(out)
	case "xlsx":
		out, err := formatter.BuildXLSX(res.Table)
		if err != nil {
			writeRenderError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="logbook-`+pipeline+`.xlsx"`)
		_, _ = w.Write(out)
	case "pdf":
		out, err := formatter.BuildPDF(res.Table, title)
		if err != nil {
			writeRenderError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="logbook-`+pipeline+`.pdf"`)
		_, _ = w.Write(out)
	}
}

func writeRenderError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buildErrorPayload(err.Error()))
}
