// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-wallet/internal/app"
	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/models"
)

func (h *Handler) grantShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "reportID")
	if err != nil {
		writeServiceError(w, r, err, app.MsgShareFailed)
		return
	}

	var request models.ShareRequest
	if err := decodeJSON(r, &request); err != nil {
		writeServiceError(w, r, err, app.MsgShareFailed)
		return
	}

	shares, err := h.services.ShareService.GrantShare(r.Context(), userID, reportID, request.Email)
	if err != nil {
		writeServiceError(w, r, err, app.MsgShareFailed)
		return
	}

	utils.WriteJSON(w, nonNil(shares), http.StatusCreated)
}

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "reportID")
	if err != nil {
		writeServiceError(w, r, err, app.MsgListSharesFailed)
		return
	}

	shares, err := h.services.ShareService.ListShares(r.Context(), userID, reportID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgListSharesFailed)
		return
	}

	utils.WriteJSON(w, nonNil(shares), http.StatusOK)
}

func (h *Handler) revokeShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "reportID")
	if err != nil {
		writeServiceError(w, r, err, app.MsgRevokeFailed)
		return
	}
	shareID, err := pathID(r, "shareID")
	if err != nil {
		writeServiceError(w, r, err, app.MsgRevokeFailed)
		return
	}

	if err := h.services.ShareService.RevokeShare(r.Context(), userID, reportID, shareID); err != nil {
		writeServiceError(w, r, err, app.MsgRevokeFailed)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
