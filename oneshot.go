package logbook

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/azolika/LogbookTestApp/converter"
	"github.com/azolika/LogbookTestApp/formatter"
	"github.com/azolika/LogbookTestApp/utils"
)

// OneshotRequest is one CLI-driven pipeline run.
type OneshotRequest struct {
	Pipeline        string
	VehicleID       string
	FromDate        string
	ToDate          string
	StationaryUnder int
	Timezone        string
	Format          string
}

// OneshotResult carries the rendered output plus the underlying run for the
// summary footer.
type OneshotResult struct {
	Rendered []byte
	Table    converter.Table
	Summary  *converter.EventsSummary
}

// RunOneshot validates a CLI request through the same query path the HTTP
// handlers use, runs the pipeline and renders the table in the requested
// format.
func RunOneshot(ctx context.Context, svc *Service, req OneshotRequest) (OneshotResult, error) {
	values := url.Values{}
	values.Set("vehicle_id", req.VehicleID)
	values.Set("from_date", req.FromDate)
	values.Set("to_date", req.ToDate)
	values.Set("stationary_under", strconv.Itoa(req.StationaryUnder))
	values.Set("tz", req.Timezone)

	q, err := ParseLogbookQuery(values, utils.TodayIn(svc.appLoc))
	if err != nil {
		return OneshotResult{}, err
	}

	var res RunResult
	switch req.Pipeline {
	case pipelineEvents:
		res, err = svc.RunEvents(ctx, q)
	case pipelineTrips:
		res, err = svc.RunTrips(ctx, q)
	default:
		return OneshotResult{}, fmt.Errorf("unknown pipeline %q", req.Pipeline)
	}
	if err != nil {
		return OneshotResult{}, err
	}

	out := OneshotResult{Table: res.Table, Summary: res.Summary}

	latCol, lonCol := converter.ColLatitude, converter.ColLongitude
	title := "Logbook events"
	if req.Pipeline == pipelineTrips {
		latCol, lonCol = converter.ColTripEndLat, converter.ColTripEndLon
		title = "Logbook trips"
	}

	switch req.Format {
	case "json":
		out.Rendered = buildRunJSON(res, latCol, lonCol)
	case "csv":
		out.Rendered, err = formatter.BuildCSV(res.Table)
	case "xlsx":
		out.Rendered, err = formatter.BuildXLSX(res.Table)
	case "pdf":
		out.Rendered, err = formatter.BuildPDF(res.Table, title)
	default:
		return OneshotResult{}, fmt.Errorf("unknown format %q", req.Format)
	}
	if err != nil {
		return OneshotResult{}, err
	}
	return out, nil
}
