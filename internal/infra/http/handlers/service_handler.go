package handlers

import (
	"net/http"

	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

func (h *ServiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entity.ServiceCatalog())
}
