package handler

import (
	"net/http"

	"github.com/driftbyte/fluxforge/internal/logger"
	"github.com/driftbyte/fluxforge/internal/mutation"
)

// MutationRequest identifies a base fragment and the components to fuse into it
type MutationRequest struct {
	SessionID    string   `json:"session_id" validate:"required,max=128"`
	BaseID       string   `json:"base_id" validate:"required,uuid4"`
	ComponentIDs []string `json:"component_ids" validate:"required,min=1,dive,uuid4"`
}

// MutationResponse is the API payload for a mutation attempt
type MutationResponse struct {
	Message string           `json:"message"`
	Result  *mutation.Result `json:"result"`
}

// HandlePreviewMutation reports cost and success rate without committing anything
func HandlePreviewMutation(svc mutation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MutationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Preview mutation"); err != nil {
			return
		}

		preview, err := svc.PreviewMutation(r.Context(), req.SessionID, req.BaseID, req.ComponentIDs)
		if err != nil {
			respondServiceError(w, r, "Preview mutation", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: preview})
	}
}

// HandleMutate performs a mutation. The cost is paid and the inputs are
// consumed whether or not the attempt succeeds.
func HandleMutate(svc mutation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MutationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Mutate"); err != nil {
			return
		}

		result, err := svc.Mutate(r.Context(), req.SessionID, req.BaseID, req.ComponentIDs)
		if err != nil {
			respondServiceError(w, r, "Mutate", err)
			return
		}

		log.Info("Mutation attempted",
			"session_id", req.SessionID,
			"base_id", req.BaseID,
			"components", len(req.ComponentIDs),
			"success", result.Success,
			"evolved", result.Evolved,
			"cost", result.Cost)

		message := "Mutation failed. The inputs were consumed."
		if result.Success {
			message = "Mutation succeeded"
			if result.Evolved {
				message = "Mutation succeeded and the fragment evolved!"
			}
		}

		respondJSON(w, http.StatusOK, MutationResponse{
			Message: message,
			Result:  result,
		})
	}
}
