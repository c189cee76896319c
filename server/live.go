package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/tbreitburd/Sudoku-Solver/puzzle"
)

/*

Live solve stream

The live endpoint upgrades to a websocket, reads one solve
request from the client, and streams every search step (trial
assignment and retraction) as the backtracker makes it, followed
by a single terminal result or error event.  The stream exists to
watch a solve, not to drive one: the client sends nothing after
the request.

*/

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the solver has no cross-origin state to protect
	CheckOrigin: func(r *http.Request) bool { return true },
}

// A LiveEvent is one frame of the live solve stream.  Kind is
// "assign" or "retract" for search steps, "result" for the
// terminal success frame, or "error" for the terminal failure
// frame.
type LiveEvent struct {
	Kind     string         `json:"kind"`
	Cell     *puzzle.Cell   `json:"cell,omitempty"`
	Value    int            `json:"value,omitempty"`
	Solution string         `json:"solution,omitempty"`
	Response *SolveResponse `json:"response,omitempty"`
	Error    *puzzle.Error  `json:"error,omitempty"`
}

// wsTracer forwards search steps onto the websocket.  A write
// failure (client gone) is remembered and further steps are
// dropped; the search itself keeps running to completion.
type wsTracer struct {
	conn   *websocket.Conn
	failed bool
}

func (t *wsTracer) send(ev LiveEvent) {
	if t.failed {
		return
	}
	if err := t.conn.WriteJSON(ev); err != nil {
		t.failed = true
	}
}

func (t *wsTracer) Assign(cell puzzle.Cell, value int) {
	t.send(LiveEvent{Kind: "assign", Cell: &cell, Value: value})
}

func (t *wsTracer) Retract(cell puzzle.Cell, value int) {
	t.send(LiveEvent{Kind: "retract", Cell: &cell, Value: value})
}

// handleLive runs one observed solve per connection.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	var req SolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.logger.Warn("live request decode failed", "err", err)
		return
	}
	tr := &wsTracer{conn: conn}
	order, g, derr := s.decodeSolveRequest(&req)
	if derr != nil {
		derr.Message = derr.Error()
		tr.send(LiveEvent{Kind: "error", Error: derr})
		return
	}

	text := g.Format()
	res, err := puzzle.SolveObserved(g, order, req.PropagateOnly, tr)
	s.recordSolve(r, text, order, req.PropagateOnly, res, err)
	if err != nil {
		perr, ok := err.(puzzle.Error)
		if !ok {
			perr = puzzle.Error{
				Scope:     puzzle.SolverScope,
				Condition: puzzle.GeneralCondition,
				Values:    puzzle.ErrorData{err.Error()},
			}
		}
		perr.Message = perr.Error()
		tr.send(LiveEvent{Kind: "error", Error: &perr})
		return
	}
	s.logger.Info("live solve finished",
		"order", order, "propagated", res.Propagated, "searched", res.Searched,
		"elapsed", res.Elapsed)
	tr.send(LiveEvent{Kind: "result", Solution: res.Grid.Format(), Response: &SolveResponse{
		Solution:    res.Grid.Format(),
		Complete:    res.Complete,
		Propagated:  res.Propagated,
		Searched:    res.Searched,
		Diagnostics: res.Diagnostics,
		ElapsedMS:   res.Elapsed.Milliseconds(),
	}})
}
