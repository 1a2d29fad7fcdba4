// Package httpapi exposes the knight board over HTTP: clicks arrive as
// POST requests and the board is read back as JSON.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/grid"
	"github.com/katalvlaran/knightpath/knight"
	"github.com/katalvlaran/knightpath/path"
	"github.com/katalvlaran/knightpath/traversal"
)

// Server binds a controller and the in-memory board it draws on.
type Server struct {
	Controller *traversal.Controller
	Board      *board.State
	Finder     *path.Finder
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger
}

// BoardResponse is the body of GET /board.
type BoardResponse struct {
	Size        int         `json:"size"`
	Token       grid.Cell   `json:"token"`
	Animating   bool        `json:"animating"`
	Highlighted []grid.Cell `json:"highlighted"`
	Framed      []grid.Cell `json:"framed"`
}

// PathResponse describes a planned or computed path.
type PathResponse struct {
	From  grid.Cell   `json:"from"`
	To    grid.Cell   `json:"to"`
	Path  []grid.Cell `json:"path"`
	Moves int         `json:"moves"`
	Label string      `json:"label"`
}

// MovesResponse is the body of GET /moves/{cell}.
type MovesResponse struct {
	Cell  grid.Cell   `json:"cell"`
	Moves []grid.Cell `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler for s.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Finder == nil {
		s.Finder = path.NewFinder(s.Controller.Grid())
	}
	if s.Gatherer == nil {
		s.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/board", s.getBoard)
	r.Post("/cells/{cell}/click", s.click)
	r.Get("/path", s.getPath)
	r.Get("/moves/{cell}", s.getMoves)
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	snap := s.Board.Snapshot()
	writeJSON(w, http.StatusOK, BoardResponse{
		Size:        s.Controller.Grid().Size(),
		Token:       snap.Token,
		Animating:   s.Controller.Busy(),
		Highlighted: snap.Highlighted,
		Framed:      snap.Framed,
	})
}

// click handles POST /cells/{cell}/click.
// 202 with the planned path, 409 while animating, 400 for a bad cell.
func (s *Server) click(w http.ResponseWriter, r *http.Request) {
	cell, err := parseCell(chi.URLParam(r, "cell"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := s.Controller.RequestTraversal(cell)
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, s.pathResponse(t.From(), t.To(), t.Path()))
	case errors.Is(err, traversal.ErrBusyTraversalIgnored):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, grid.ErrInvalidCell):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, path.ErrNoPathFound):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		s.Logger.Error("click failed", "cell", cell, "error", err)
		writeError(w, http.StatusInternalServerError, err)
	}
}

// getPath handles GET /path?from=&to=. from defaults to the token cell.
func (s *Server) getPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := s.Controller.Position()
	if v := q.Get("from"); v != "" {
		c, err := parseCell(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		from = c
	}
	to, err := parseCell(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := s.Finder.ShortestPath(from, to)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, s.pathResponse(from, to, p))
	case errors.Is(err, grid.ErrInvalidCell):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, path.ErrNoPathFound):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) getMoves(w http.ResponseWriter, r *http.Request) {
	cell, err := parseCell(chi.URLParam(r, "cell"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	g := s.Controller.Grid()
	if err := g.Validate(cell); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, MovesResponse{Cell: cell, Moves: knight.MovesFrom(g, cell)})
}

func (s *Server) pathResponse(from, to grid.Cell, p path.Path) PathResponse {
	return PathResponse{
		From:  from,
		To:    to,
		Path:  p,
		Moves: p.Moves(),
		Label: p.Format(s.Controller.Grid()),
	}
}

func parseCell(v string) (grid.Cell, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("httpapi: cell must be an integer")
	}
	return grid.Cell(n), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
