package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matching"
)

// Operation names used in metrics and logs.
const (
	OpAddNode         = "add_node"
	OpRemoveNode      = "remove_node"
	OpAddEdge         = "add_edge"
	OpRemoveEdge      = "remove_edge"
	OpClear           = "clear"
	OpFindMatching    = "find_matching"
	OpResetHighlights = "reset_highlights"
)

// AddNodeRequest is the body of POST /api/nodes.
type AddNodeRequest struct {
	ID        string `json:"id" validate:"required,max=256"`
	Partition string `json:"partition" validate:"required,oneof=A B a b"`
}

// AddEdgeRequest is the body of POST /api/edges.
type AddEdgeRequest struct {
	U string `json:"u" validate:"required,max=256"`
	V string `json:"v" validate:"required,max=256"`
}

// MatchingRequest is the optional body of POST /api/matching.
type MatchingRequest struct {
	Strategy string `json:"strategy" validate:"omitempty,oneof=kuhn maximum greedy"`
	DryRun   bool   `json:"dry_run"`
}

// GraphResponse is returned by GET /api/graph.
type GraphResponse struct {
	Nodes []core.Node      `json:"nodes"`
	Edges []core.Edge      `json:"edges"`
	Stats *core.GraphStats `json:"stats"`
}

// MatchingResponse is returned by POST /api/matching.
type MatchingResponse struct {
	RunID    string          `json:"run_id"`
	Strategy string          `json:"strategy"`
	DryRun   bool            `json:"dry_run"`
	Pairs    []matching.Pair `json:"pairs"`
	Stats    matching.Stats  `json:"stats"`
}

// decode reads a JSON body into dst and validates it. allowEmpty accepts a missing body.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) *AppError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			return badRequest("invalid request body: " + err.Error())
		}
	}
	if err := s.validate.Struct(dst); err != nil {
		return fromValidation(err)
	}

	return nil
}

// pathParam returns the decoded value of a route parameter. chi matches on RawPath
// when the request has one, so "/" inside an id arrives as "%2F" and must be
// unescaped here; without RawPath the value is already decoded.
func pathParam(r *http.Request, name string) (string, *AppError) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", badRequest("invalid path parameter " + name + ": " + err.Error())
	}

	return decoded, nil
}

// getGraph handles GET /api/graph.
func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	snap := s.graph.Snapshot()
	a, b := snap.PartitionCounts()
	s.respondJSON(w, http.StatusOK, GraphResponse{
		Nodes: snap.Nodes,
		Edges: snap.Edges,
		Stats: &core.GraphStats{
			NodeCount:    len(snap.Nodes),
			EdgeCount:    len(snap.Edges),
			CountA:       a,
			CountB:       b,
			MatchedEdges: len(snap.Matched()),
		},
	})
}

// clearGraph handles DELETE /api/graph.
func (s *Server) clearGraph(w http.ResponseWriter, r *http.Request) {
	s.graph.Clear()
	s.record(OpClear, nil)
	w.WriteHeader(http.StatusNoContent)
}

// addNode handles POST /api/nodes.
func (s *Server) addNode(w http.ResponseWriter, r *http.Request) {
	var req AddNodeRequest
	if app := s.decode(w, r, &req, false); app != nil {
		s.respondError(w, r, app)
		return
	}
	p, err := core.ParsePartition(req.Partition)
	if err == nil {
		err = s.graph.AddNode(req.ID, p)
	}
	s.record(OpAddNode, err)
	if err != nil {
		s.respondError(w, r, fromError(err))
		return
	}

	s.respondJSON(w, http.StatusCreated, core.Node{ID: req.ID, Partition: p})
}

// removeNode handles DELETE /api/nodes/{id}. Removing an absent node succeeds.
func (s *Server) removeNode(w http.ResponseWriter, r *http.Request) {
	id, app := pathParam(r, "id")
	if app != nil {
		s.respondError(w, r, app)
		return
	}
	s.graph.RemoveNode(id)
	s.record(OpRemoveNode, nil)
	w.WriteHeader(http.StatusNoContent)
}

// addEdge handles POST /api/edges.
func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	var req AddEdgeRequest
	if app := s.decode(w, r, &req, false); app != nil {
		s.respondError(w, r, app)
		return
	}
	err := s.graph.AddEdge(req.U, req.V)
	s.record(OpAddEdge, err)
	if err != nil {
		s.respondError(w, r, fromError(err))
		return
	}

	// Re-adding keeps the first orientation, so answer with what is stored.
	e, ok := s.graph.EdgeOf(req.U, req.V)
	if !ok {
		e = core.Edge{U: req.U, V: req.V}
	}
	s.respondJSON(w, http.StatusCreated, e)
}

// removeEdge handles DELETE /api/edges/{u}/{v}. Removing an absent edge succeeds.
func (s *Server) removeEdge(w http.ResponseWriter, r *http.Request) {
	u, app := pathParam(r, "u")
	if app != nil {
		s.respondError(w, r, app)
		return
	}
	v, app := pathParam(r, "v")
	if app != nil {
		s.respondError(w, r, app)
		return
	}
	s.graph.RemoveEdge(u, v)
	s.record(OpRemoveEdge, nil)
	w.WriteHeader(http.StatusNoContent)
}

// findMatching handles POST /api/matching. A dry run computes on a clone and leaves
// highlights untouched.
func (s *Server) findMatching(w http.ResponseWriter, r *http.Request) {
	var req MatchingRequest
	if app := s.decode(w, r, &req, true); app != nil {
		s.respondError(w, r, app)
		return
	}
	strategy, err := matching.ParseStrategy(req.Strategy)
	if err != nil {
		s.respondError(w, r, badRequest(err.Error()))
		return
	}

	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID), zap.Stringer("strategy", strategy))
	opts := []matching.Option{matching.WithLogger(logger), matching.WithStrategy(strategy)}

	start := time.Now()
	var res *matching.Result
	if req.DryRun {
		res, err = matching.Compute(s.graph.Clone(), strategy, opts...)
	} else {
		res, err = matching.Apply(s.graph, opts...)
	}
	elapsed := time.Since(start)

	if !req.DryRun {
		s.record(OpFindMatching, err)
	}
	if err != nil {
		s.respondError(w, r, fromError(err))
		return
	}
	if s.metrics != nil && !req.DryRun {
		s.metrics.RecordMatching(strategy.String(), res.Stats.Size, elapsed)
	}
	logger.Info("matching run",
		zap.Bool("dry_run", req.DryRun),
		zap.Int("size", res.Stats.Size),
		zap.Int("augmentations", res.Stats.Augmentations),
		zap.Duration("elapsed", elapsed),
	)

	s.respondJSON(w, http.StatusOK, MatchingResponse{
		RunID:    runID,
		Strategy: strategy.String(),
		DryRun:   req.DryRun,
		Pairs:    res.Pairs,
		Stats:    res.Stats,
	})
}

// resetMatching handles DELETE /api/matching.
func (s *Server) resetMatching(w http.ResponseWriter, r *http.Request) {
	s.graph.ResetHighlights()
	s.record(OpResetHighlights, nil)
	w.WriteHeader(http.StatusNoContent)
}

// health handles GET /healthz: 200 while the store is consistent, 503 otherwise.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.graph.CheckInvariants(); err != nil {
		s.logger.Error("graph invariants violated", zap.Error(err))
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
