package handler

import (
	"net/http"

	"github.com/driftbyte/fluxforge/internal/forge"
	"github.com/driftbyte/fluxforge/internal/logger"
)

// SpinRequest identifies the session performing a spin
type SpinRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
}

// SpinResponse is the API payload for a completed spin
type SpinResponse struct {
	Message string            `json:"message"`
	Result  *forge.SpinResult `json:"result"`
}

// HandleSpin rolls a new fragment for the session, debiting the spin cost.
// A session that has never spun before is created on first use.
func HandleSpin(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SpinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
			return
		}

		result, err := svc.Spin(r.Context(), req.SessionID)
		if err != nil {
			respondServiceError(w, r, "Spin", err)
			return
		}

		log.Info("Spin completed",
			"session_id", req.SessionID,
			"fragment_id", result.Fragment.ID,
			"rarity", result.Fragment.Rarity,
			"cost", result.Cost,
			"flux_remaining", result.FluxRemaining)

		respondJSON(w, http.StatusOK, SpinResponse{
			Message: "Spin complete",
			Result:  result,
		})
	}
}

// HandleGetState returns the full game state for a session
func HandleGetState(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, "session_id")
		if !ok {
			return
		}

		state, err := svc.GetState(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: state})
	}
}

// HandleListFragments returns the session's fragment collection
func HandleListFragments(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, "session_id")
		if !ok {
			return
		}

		fragments, err := svc.ListFragments(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, "List fragments", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: fragments})
	}
}
