package handlers

import (
	"log/slog"
	"net/http"

	"github.com/swaggo/swag"

	"github.com/information-sharing-networks/solana-gateway/internal/logger"

	// registers the OpenAPI document with swag
	_ "github.com/information-sharing-networks/solana-gateway/internal/docs"
)

// HandleSwaggerDoc serves the OpenAPI document registered by the docs package
func HandleSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		logger.ContextRequestLogger(r.Context()).Error("failed to read swagger doc",
			slog.String("error", err.Error()))
		http.Error(w, "Failed to read API documentation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
