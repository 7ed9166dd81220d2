package utils

import (
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondError maps a service error to its HTTP shape. Unknown errors come
// back as a generic 500 with the cause kept in the log only.
func RespondError(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)
	if appErr.Status == http.StatusInternalServerError {
		zap.L().Error("internal error", zap.Error(err))
	}
	RespondWithError(w, appErr.Status, appErr.Message)
}
