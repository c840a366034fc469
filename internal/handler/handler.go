// Package handler wires HTTP requests to the service layer.
package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mader-project/mader/internal/models"
	"github.com/mader-project/mader/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Root answers the unauthenticated health greeting.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.Message{Message: "Hello World!"})
}
