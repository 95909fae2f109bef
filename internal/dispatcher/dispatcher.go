// Package dispatcher wires a decoded wire.Input to the right algorithm
// engine package (sortengine, tspconstruct, tspimprove), building the
// pathctx.Context the algorithm needs and funneling its output through a
// stepsink.Sink back to the client.
package dispatcher

import (
	"fmt"

	"github.com/leo848/pathviz/geometry"
	"github.com/leo848/pathviz/internal/logging"
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/sortengine"
	"github.com/leo848/pathviz/tspconstruct"
	"github.com/leo848/pathviz/tspimprove"
	"github.com/leo848/pathviz/weightmatrix"
)

// Dispatcher handles decoded inbound frames for a single client connection.
type Dispatcher struct {
	log *logging.Logger
}

// New builds a Dispatcher that logs through log.
func New(log *logging.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Handle decodes one inbound frame and carries out whatever it requests,
// streaming results back through resp. A returned error means the frame
// could not be decoded or the action could not be carried out; in both
// cases an Error record has already been sent to the client and the
// connection is expected to continue serving further frames.
func (d *Dispatcher) Handle(resp stepsink.Responder, clientID string, raw []byte) error {
	in, err := wire.DecodeInput(raw)
	if err != nil {
		d.log.Error(clientID, err)
		_ = sendOutput(resp, wire.ErrorOutput(wire.NewSerdeError(string(raw), err)))
		return err
	}

	switch in.Type {
	case wire.InputLog:
		return sendOutput(resp, wire.LogOutput(in.Message))

	case wire.InputLatency:
		return sendOutput(resp, wire.LatencyOutput(in.Latency))

	case wire.InputAction:
		if err := d.dispatchAction(resp, in); err != nil {
			d.log.Error(clientID, err)
			_ = sendOutput(resp, wire.ErrorOutput(wire.NewAlgorithmError(err.Error())))
			return err
		}
		d.log.Dispatch(clientID, in.Action.Type)
		return nil

	default:
		err := fmt.Errorf("dispatcher: unknown input type %q", in.Type)
		d.log.Error(clientID, err)
		_ = sendOutput(resp, wire.ErrorOutput(wire.NewAlgorithmError(err.Error())))
		return err
	}
}

func (d *Dispatcher) dispatchAction(resp stepsink.Responder, in wire.Input) error {
	sink := stepsink.New(resp, in.Latency)
	opts := pathctx.NewOptions(in.Pool)
	action := in.Action

	switch action.Type {
	case wire.ActionSortNumbers:
		_, err := sortengine.Run(sortengine.Algorithm(action.Algorithm), sink, action.Numbers)
		return err

	case wire.ActionCreateDistPath:
		points, metric, err := decodePoints(action.Values, action.Metric)
		if err != nil {
			return err
		}
		ctx, err := pathctx.NewPointContext(points, metric, opts)
		if err != nil {
			return err
		}
		_, err = tspconstruct.Run(tspconstruct.Method(action.Method.Type), ctx, sink)
		return err

	case wire.ActionImproveDistPath:
		points, metric, err := decodePoints(action.Values, action.Metric)
		if err != nil {
			return err
		}
		startPoints, _, err := decodePoints(action.Path, action.Metric)
		if err != nil {
			return err
		}
		preferStep := action.PreferStep != nil && *action.PreferStep
		ctx, err := pathctx.NewPointImproveContext(points, startPoints, metric, preferStep, opts)
		if err != nil {
			return err
		}
		_, err = tspimprove.Run(tspimprove.Method(action.Method.Type), ctx, sink)
		return err

	case wire.ActionCreatePath:
		matrix, err := weightmatrix.FromRows(action.Matrix)
		if err != nil {
			return err
		}
		ctx := pathctx.NewMatrixContext(matrix, opts)
		_, err = tspconstruct.Run(tspconstruct.Method(action.Method.Type), ctx, sink)
		return err

	case wire.ActionImprovePath:
		matrix, err := weightmatrix.FromRows(action.Matrix)
		if err != nil {
			return err
		}
		preferStep := action.PreferStep != nil && *action.PreferStep
		ctx := pathctx.NewMatrixImproveContext(matrix, weightmatrix.IndexPath(action.IndexPath), preferStep, opts)
		_, err = tspimprove.Run(tspimprove.Method(action.Method.Type), ctx, sink)
		return err

	case wire.ActionWordToVec:
		return fmt.Errorf("dispatcher: wordToVec is not supported")

	default:
		return fmt.Errorf("dispatcher: unknown action type %q", action.Type)
	}
}

// decodePoints turns wire rows into geometry.Points under the requested
// metric, defaulting to Euclidean when Metric is absent.
func decodePoints(rows [][]float32, metricBody *wire.MetricBody) ([]geometry.Point, geometry.Metric, error) {
	metric := geometry.DefaultMetric
	if metricBody != nil {
		metric = decodeMetric(*metricBody)
	}
	points := make([]geometry.Point, len(rows))
	for i, row := range rows {
		p, err := geometry.NewPoint(row)
		if err != nil {
			return nil, metric, err
		}
		points[i] = p
	}
	return points, metric, nil
}

func decodeMetric(body wire.MetricBody) geometry.Metric {
	norm := geometry.Euclidean
	switch body.Norm {
	case "manhattan":
		norm = geometry.Manhattan
	case "max":
		norm = geometry.Max
	}
	return geometry.Metric{Norm: norm, Invert: body.Invert}
}

func sendOutput(resp stepsink.Responder, out wire.Output) error {
	data, err := wire.Encode(out)
	if err != nil {
		return err
	}
	return resp.Send(data)
}
