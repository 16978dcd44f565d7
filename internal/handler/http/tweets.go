// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/utils"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.services.TweetService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTweetResponses(tweets), http.StatusOK)
}

func (h *Handler) searchTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.services.TweetService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTweetResponses(tweets), http.StatusOK)
}

func (h *Handler) getTweet(w http.ResponseWriter, r *http.Request) {
	tweet, err := h.services.TweetService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTweetResponse(tweet), http.StatusOK)
}

func (h *Handler) createTweet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.TweetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tweet, err := h.services.TweetService.Create(r.Context(), userID, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTweetResponse(tweet), http.StatusCreated)
}

func (h *Handler) updateTweet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.TweetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tweet, err := h.services.TweetService.Update(r.Context(), chi.URLParam(r, "id"), userID, req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTweetResponse(tweet), http.StatusOK)
}

func (h *Handler) deleteTweet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	resp, err := h.services.TweetService.Delete(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
