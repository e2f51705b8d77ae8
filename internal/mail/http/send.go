package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lif-platforms/mailservice/internal/mail/service"
	"github.com/lif-platforms/mailservice/pkg/httpx"
	"github.com/lif-platforms/mailservice/pkg/mailapi"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

// RelayHandler handles outbound email relay for credentialed services.
type RelayHandler struct {
	RelayService *service.RelayService
}

// HandleSend handles POST /send_email
//
//	@Summary		Send Email
//	@Description	Relays a transactional email through the provider. Authenticate with HTTP Basic auth carrying an issued client_id and client_secret; the credential must hold the mailservice.send_email grant.
//	@Tags			Relay
//	@Accept			json
//	@Produce		json
//	@Security		BasicAuth
//	@Param			request	body		mailapi.SendEmailRequest	true	"Message"
//	@Success		200		{object}	mailapi.StatusResponse
//	@Failure		400		{object}	mailapi.ErrorResponse
//	@Failure		401		{object}	mailapi.ErrorResponse
//	@Failure		403		{object}	mailapi.ErrorResponse
//	@Failure		500		{object}	mailapi.ErrorResponse
//	@Router			/send_email [post].
func (h *RelayHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID, clientSecret, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="mailservice"`)
		httpx.WriteJSON(w, http.StatusUnauthorized, mailapi.ErrorResponse{
			Error:            "invalid_client",
			ErrorDescription: "Client credentials required",
		})
		return
	}

	var req mailapi.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON in request body",
		})
		return
	}
	if strings.TrimSpace(req.Recipient) == "" || strings.TrimSpace(req.Subject) == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Recipient and subject are required",
		})
		return
	}

	err := h.RelayService.Send(ctx, clientID, clientSecret, req.Recipient, req.Subject, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSecret):
			httpx.WriteJSON(w, http.StatusUnauthorized, mailapi.ErrorResponse{
				Error:            "invalid_client",
				ErrorDescription: "Unknown client id or wrong client secret",
			})
		case errors.Is(err, service.ErrSendNotPermitted):
			httpx.WriteJSON(w, http.StatusForbidden, mailapi.ErrorResponse{
				Error:            "no_permission",
				ErrorDescription: "Credential is not permitted to send email",
			})
		default:
			log.Error("relay failed", "error", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to send email",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mailapi.StatusResponse{Status: "OK"})
}
