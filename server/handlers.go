package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"flagfall/agent"
	"flagfall/bootstrap"
	"flagfall/game"
	"flagfall/searcher"
)

// Handler owns the HTTP surface of the game service. The human commands
// Blue; the configured opponent commands Red.
type Handler struct {
	cfg     *bootstrap.Config
	manager *Manager
}

func NewHandler(cfg *bootstrap.Config, manager *Manager) *Handler {
	return &Handler{cfg: cfg, manager: manager}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/game/new", h.handleNewGame)
	r.Get("/game/{id}", h.handleGetGame)
	r.Post("/game/{id}/move", h.handlePlayerMove)
	r.Post("/game/{id}/ai-move", h.handleOpponentMove)
	r.Get("/game/{id}/moves", h.handleCellMoves)
	r.Delete("/game/{id}", h.handleDeleteGame)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	board := game.NewBoard()
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	if err := board.Setup(rng, req.Arrangement); err != nil {
		writeError(w, http.StatusBadRequest, "invalid arrangement: "+err.Error())
		return
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = h.cfg.AIDifficulty
	}

	session := h.manager.Create(board, h.buildOpponent(difficulty))
	log.Info().Str("game_id", session.ID).Str("difficulty", difficulty).
		Msg("new game created")
	writeJSON(w, http.StatusOK, toGameResponse(session))
}

func (h *Handler) buildOpponent(difficulty string) agent.Agent {
	if difficulty == "advanced" {
		return agent.NewSearch(
			searcher.WithDuration(time.Duration(h.cfg.SearchBudgetMS)*time.Millisecond),
			searcher.WithSamples(h.cfg.Determinizations),
		)
	}
	return agent.NewBasic(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
}

func (h *Handler) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toGameResponse(session))
}

func (h *Handler) handlePlayerMove(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	board := session.Board
	if board.Over() {
		writeError(w, http.StatusBadRequest, "game is over")
		return
	}
	if board.CurrentPlayer() != game.Blue {
		writeError(w, http.StatusBadRequest, "not player's turn")
		return
	}
	if !board.Apply(req.move()) {
		writeError(w, http.StatusBadRequest, "invalid move")
		return
	}

	h.manager.Touch(session.ID)
	writeJSON(w, http.StatusOK, toGameResponse(session))
}

func (h *Handler) handleOpponentMove(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	board := session.Board
	if board.Over() {
		writeError(w, http.StatusBadRequest, "game is over")
		return
	}
	if board.CurrentPlayer() != game.Red {
		writeError(w, http.StatusBadRequest, "not opponent's turn")
		return
	}

	mv, found := session.Opponent.ChooseMove(r.Context(), board, game.Red)
	if !found {
		writeError(w, http.StatusInternalServerError, "opponent found no move")
		return
	}
	if !board.Apply(mv) {
		log.Error().Str("game_id", session.ID).Stringer("move", mv).
			Msgf("agent %s produced an illegal move", session.Opponent.Name())
		writeError(w, http.StatusInternalServerError, "opponent move rejected")
		return
	}

	h.manager.Touch(session.ID)
	writeJSON(w, http.StatusOK, toGameResponse(session))
}

func (h *Handler) handleCellMoves(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	row, errRow := strconv.Atoi(r.URL.Query().Get("row"))
	col, errCol := strconv.Atoi(r.URL.Query().Get("col"))
	if errRow != nil || errCol != nil {
		writeError(w, http.StatusBadRequest, "row and col query parameters required")
		return
	}

	moves := []moveDTO{}
	for _, mv := range session.Board.LegalMovesFrom(game.Position{Row: row, Col: col}) {
		moves = append(moves, toMoveDTO(mv))
	}
	writeJSON(w, http.StatusOK, map[string][]moveDTO{"valid_moves": moves})
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.manager.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	log.Info().Str("game_id", id).Msg("game deleted")
	writeJSON(w, http.StatusOK, map[string]string{"message": "game deleted"})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	session, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return session, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
