package handler

import (
	"fmt"
	"net/http"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/economy"
	"github.com/driftbyte/fluxforge/internal/forge"
	"github.com/driftbyte/fluxforge/internal/logger"
)

// FragmentActionRequest identifies a fragment owned by a session
type FragmentActionRequest struct {
	SessionID  string `json:"session_id" validate:"required,max=128"`
	FragmentID string `json:"fragment_id" validate:"required,uuid4"`
}

// UpgradeDeviceRequest asks for one level on an upgrade track
type UpgradeDeviceRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
	Track     string `json:"track" validate:"required,track"`
}

// ShatterResponse is the API payload for a shattered fragment
type ShatterResponse struct {
	Message       string `json:"message"`
	FluxGained    int    `json:"flux_gained"`
	FluxRemaining int    `json:"flux_remaining"`
}

// SellResponse is the API payload for a marketplace sale
type SellResponse struct {
	Message       string `json:"message"`
	FluxGained    int    `json:"flux_gained"`
	FluxRemaining int    `json:"flux_remaining"`
	UnitPrice     int    `json:"unit_price"`
}

// UpgradeDeviceResponse is the API payload for a device upgrade
type UpgradeDeviceResponse struct {
	Message       string `json:"message"`
	Track         string `json:"track"`
	NewLevel      int    `json:"new_level"`
	FluxSpent     int    `json:"flux_spent"`
	FluxRemaining int    `json:"flux_remaining"`
}

// HandleShatter destroys a fragment and credits flux by rarity
func HandleShatter(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FragmentActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Shatter fragment"); err != nil {
			return
		}

		result, err := svc.Shatter(r.Context(), req.SessionID, req.FragmentID)
		if err != nil {
			respondServiceError(w, r, "Shatter fragment", err)
			return
		}

		log.Info("Fragment shattered",
			"session_id", req.SessionID,
			"fragment_id", req.FragmentID,
			"flux_gained", result.FluxGained)

		respondJSON(w, http.StatusOK, ShatterResponse{
			Message:       fmt.Sprintf("Shattered for %d flux", result.FluxGained),
			FluxGained:    result.FluxGained,
			FluxRemaining: result.FluxRemaining,
		})
	}
}

// HandleSell sells a fragment on the marketplace at the current listing price
func HandleSell(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FragmentActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell fragment"); err != nil {
			return
		}

		result, err := svc.Sell(r.Context(), req.SessionID, req.FragmentID)
		if err != nil {
			respondServiceError(w, r, "Sell fragment", err)
			return
		}

		log.Info("Fragment sold",
			"session_id", req.SessionID,
			"fragment_id", req.FragmentID,
			"unit_price", result.UnitPrice,
			"flux_gained", result.FluxGained)

		respondJSON(w, http.StatusOK, SellResponse{
			Message:       fmt.Sprintf("Sold for %d flux", result.FluxGained),
			FluxGained:    result.FluxGained,
			FluxRemaining: result.FluxRemaining,
			UnitPrice:     result.UnitPrice,
		})
	}
}

// HandleUpgradeDevice buys one level on an upgrade track
func HandleUpgradeDevice(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpgradeDeviceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upgrade device"); err != nil {
			return
		}

		result, err := svc.UpgradeDevice(r.Context(), req.SessionID, domain.UpgradeTrack(req.Track))
		if err != nil {
			respondServiceError(w, r, "Upgrade device", err)
			return
		}

		log.Info("Device upgraded",
			"session_id", req.SessionID,
			"track", result.Track,
			"new_level", result.NewLevel,
			"flux_spent", result.FluxSpent)

		respondJSON(w, http.StatusOK, UpgradeDeviceResponse{
			Message:       fmt.Sprintf("Upgraded %s to level %d", result.Track, result.NewLevel),
			Track:         string(result.Track),
			NewLevel:      result.NewLevel,
			FluxSpent:     result.FluxSpent,
			FluxRemaining: result.FluxRemaining,
		})
	}
}

// HandleGetDeviceStats returns the derived device stats for a session
func HandleGetDeviceStats(forgeSvc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, "session_id")
		if !ok {
			return
		}

		state, err := forgeSvc.GetState(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, "Get device stats", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: economy.GetDeviceStats(state)})
	}
}

// HandleGetPrices returns all marketplace listings with their current prices
func HandleGetPrices(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.GetPrices(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get prices", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: listings})
	}
}
