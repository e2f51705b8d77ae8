package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lif-platforms/mailservice/internal/mail/service"
	"github.com/lif-platforms/mailservice/pkg/httpx"
	"github.com/lif-platforms/mailservice/pkg/mailapi"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

// WaitlistHandler handles Ringer waitlist signups and the admin listing.
type WaitlistHandler struct {
	WaitlistService *service.WaitlistService
}

// HandleJoin handles POST /waitlist/ringer
//
//	@Summary		Join Ringer Waitlist
//	@Description	Records a waitlist signup. Duplicate signups are accepted silently.
//	@Tags			Waitlist
//	@Accept			json
//	@Produce		json
//	@Param			request	body		mailapi.WaitlistJoinRequest	true	"Signup email"
//	@Success		200		{object}	mailapi.StatusResponse
//	@Failure		400		{object}	mailapi.ErrorResponse
//	@Failure		500		{object}	mailapi.ErrorResponse
//	@Router			/waitlist/ringer [post].
func (h *WaitlistHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req mailapi.WaitlistJoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON in request body",
		})
		return
	}

	if err := h.WaitlistService.Join(ctx, req.Email); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "A valid email address is required",
			})
			return
		}

		log.Error("waitlist signup failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to record signup",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mailapi.StatusResponse{Status: "OK"})
}

// HandleList handles GET /admin/get_waitlist
//
//	@Summary		View Waitlist
//	@Description	Lists all collected waitlist emails.
//	@Tags			Waitlist
//	@Produce		json
//	@Param			X-Auth-Identity	header		string	true	"Caller session identity"
//	@Param			X-Auth-Token	header		string	true	"Caller session token"
//	@Success		200				{object}	mailapi.GetWaitlistResponse
//	@Failure		401				{object}	mailapi.ErrorResponse
//	@Failure		403				{object}	mailapi.ErrorResponse
//	@Failure		500				{object}	mailapi.ErrorResponse
//	@Router			/admin/get_waitlist [get].
func (h *WaitlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.WaitlistService.List(ctx)
	if err != nil {
		log.Error("failed to list waitlist", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list waitlist",
		})
		return
	}

	emails := make([]string, len(entries))
	for i, e := range entries {
		emails[i] = e.Email
	}

	httpx.WriteJSON(w, http.StatusOK, mailapi.GetWaitlistResponse{Emails: emails})
}
