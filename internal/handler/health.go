package handler

import (
	"net/http"
	"time"

	"github.com/MKhiriev/slipway/internal/utils"
)

type healthResponse struct {
	Status     string `json:"status"`
	Uptime     string `json:"uptime"`
	InstanceID string `json:"instance_id"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:     "ok",
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		InstanceID: h.instanceID,
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
