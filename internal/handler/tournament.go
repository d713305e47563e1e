package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/logger"
	"github.com/osse101/TCGTourney_Go/internal/narration"
	"github.com/osse101/TCGTourney_Go/internal/session"
)

type TournamentHandler struct {
	service session.Service
}

func NewTournamentHandler(service session.Service) *TournamentHandler {
	return &TournamentHandler{service: service}
}

// CardRequest is a custom card as submitted by a client. Blank names fall
// back to catalog defaults, so only the type is required here.
type CardRequest struct {
	Name       string  `json:"name" validate:"max=64"`
	Type       string  `json:"type" validate:"required,max=32"`
	HP         float64 `json:"hp" validate:"gt=0"`
	AttackName string  `json:"attack_name" validate:"max=64"`
	Damage     float64 `json:"damage" validate:"gte=0"`
	EnergyCost float64 `json:"energy_cost" validate:"gte=0"`
}

func (c CardRequest) toCard() domain.Card {
	return domain.Card{
		Name:       c.Name,
		Type:       domain.CardType(c.Type),
		HP:         c.HP,
		AttackName: c.AttackName,
		Damage:     c.Damage,
		EnergyCost: c.EnergyCost,
	}
}

type CreateTournamentRequest struct {
	Seed            string          `json:"seed" validate:"max=128"`
	CompetitorCount int             `json:"competitor_count" validate:"gte=1,lte=1024"`
	EntryFee        decimal.Decimal `json:"entry_fee" validate:"gte=0"`
	RakePercent     decimal.Decimal `json:"rake_percent" validate:"gte=0,lte=100"`
	CustomCards     []CardRequest   `json:"custom_cards" validate:"max=64,dive"`
}

type RestartRequest struct {
	Seed string `json:"seed" validate:"max=128"`
}

// TournamentResponse is a session view plus its narration so far
type TournamentResponse struct {
	*session.View
	Log []string `json:"log"`
}

type RoundResponse struct {
	Result domain.RoundResult `json:"result"`
	Log    []string           `json:"log"`
}

type AutoPlayResponse struct {
	Rounds []domain.RoundResult `json:"rounds"`
	Log    []string             `json:"log"`
}

type CardResponse struct {
	Card domain.Card `json:"card"`
	Log  []string    `json:"log"`
}

// HandleCreate starts a new tournament session
// @Summary Create tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param request body CreateTournamentRequest true "Tournament parameters"
// @Success 201 {object} TournamentResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/tournaments [post]
func (h *TournamentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTournamentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create tournament"); err != nil {
		return
	}

	cards := make([]domain.Card, 0, len(req.CustomCards))
	for _, c := range req.CustomCards {
		cards = append(cards, c.toCard())
	}

	view, err := h.service.Create(r.Context(), session.CreateParams{
		Seed:            req.Seed,
		CompetitorCount: req.CompetitorCount,
		EntryFee:        req.EntryFee,
		RakePercent:     req.RakePercent,
		CustomCards:     cards,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgCreateTournamentFailed, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, tournamentResponse(view))
}

func (h *TournamentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetTournamentID(r, w)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgGetTournamentFailed, "id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tournamentResponse(view))
}

// HandleAddCard appends a custom card to the session catalog. It joins the
// draw pool at the next restart.
func (h *TournamentHandler) HandleAddCard(w http.ResponseWriter, r *http.Request) {
	id, ok := GetTournamentID(r, w)
	if !ok {
		return
	}

	var req CardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add card"); err != nil {
		return
	}

	card, err := h.service.AddCard(r.Context(), id, req.toCard())
	if err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgAddCardFailed, "id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CardResponse{
		Card: card,
		Log:  []string{narration.CardAdded(card)},
	})
}

// HandleRunRound plays one round
// @Summary Run one round
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} RoundResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tournaments/{id}/rounds [post]
func (h *TournamentHandler) HandleRunRound(w http.ResponseWriter, r *http.Request) {
	id, ok := GetTournamentID(r, w)
	if !ok {
		return
	}

	result, err := h.service.RunRound(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgRunRoundFailed, "id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, RoundResponse{Result: *result, Log: roundLines(*result)})
}

func (h *TournamentHandler) HandleAutoPlay(w http.ResponseWriter, r *http.Request) {
	id, ok := GetTournamentID(r, w)
	if !ok {
		return
	}

	results, err := h.service.AutoPlay(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgAutoPlayFailed, "id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	var lines []string
	for _, res := range results {
		lines = append(lines, roundLines(res)...)
	}
	respondJSON(w, http.StatusOK, AutoPlayResponse{Rounds: results, Log: lines})
}

// HandleRestart deals a fresh tournament on the same session. The body is
// optional; without a seed the previous one is reused.
func (h *TournamentHandler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	id, ok := GetTournamentID(r, w)
	if !ok {
		return
	}

	var req RestartRequest
	if err := DecodeOptionalRequest(r, w, &req, "Restart tournament"); err != nil {
		return
	}

	view, err := h.service.Restart(r.Context(), id, req.Seed)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgRestartFailed, "id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tournamentResponse(view))
}

// HandleJournal returns the full narration as plain text
// @Summary Tournament journal
// @Tags tournaments
// @Produce plain
// @Param id path string true "Tournament ID"
// @Success 200 {string} string
// @Router /api/v1/tournaments/{id}/journal [get]
func (h *TournamentHandler) HandleJournal(w http.ResponseWriter, r *http.Request) {
	id, ok := GetTournamentID(r, w)
	if !ok {
		return
	}

	journal, err := h.service.Journal(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgJournalFailed, "id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	respondText(w, http.StatusOK, journal)
}

func (h *TournamentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetTournamentID(r, w)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgDeleteFailed, "id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTournamentDeleted})
}

// HandleBaseCatalog lists the cards every new session starts with
func (h *TournamentHandler) HandleBaseCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.service.BaseCards(r.Context())})
}

func tournamentResponse(view *session.View) TournamentResponse {
	return TournamentResponse{View: view, Log: narration.Lines(view.Tournament)}
}

// roundLines narrates a round and, when it finished the tournament, the settlement
func roundLines(r domain.RoundResult) []string {
	lines := narration.Round(r)
	if r.Payout != nil {
		lines = append(lines, narration.Settlement(*r.Payout)...)
	}
	return lines
}
