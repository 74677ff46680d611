// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-health-wallet/internal/app"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated, app.MsgRegistrationFailed)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser, http.StatusOK, app.MsgLoginFailed)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchFailed)
		return
	}

	utils.WriteJSON(w, models.MeResponse{User: user.Public()}, http.StatusOK)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int, fallback string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, fallback)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user.Public()}, status)
}
