// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-wallet/internal/app"
	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/models"
)

func (h *Handler) createVital(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var input models.VitalInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err, app.MsgCreateFailed)
		return
	}

	vital, err := h.services.VitalService.CreateVital(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, r, err, app.MsgCreateFailed)
		return
	}

	utils.WriteJSON(w, vital, http.StatusCreated)
}

func (h *Handler) listVitals(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	vitals, err := h.services.VitalService.ListVitals(r.Context(), models.VitalFilter{
		UserID:   userID,
		Type:     query.Get("type"),
		DateFrom: query.Get("from"),
		DateTo:   query.Get("to"),
	})
	if err != nil {
		writeServiceError(w, r, err, app.MsgListFailed)
		return
	}

	utils.WriteJSON(w, nonNil(vitals), http.StatusOK)
}
