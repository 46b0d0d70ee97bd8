package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/fragrewards/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body into req and validates
// it. An empty body decodes as the zero value so optional-body endpoints work.
//
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// playerContext returns the player id route parameter and a request context
// carrying it for log correlation
func playerContext(r *http.Request) (string, *http.Request) {
	playerID := chi.URLParam(r, ParamPlayerID)
	return playerID, r.WithContext(logger.WithPlayerID(r.Context(), playerID))
}
