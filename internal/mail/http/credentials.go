package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lif-platforms/mailservice/internal/mail/service"
	"github.com/lif-platforms/mailservice/pkg/httpx"
	"github.com/lif-platforms/mailservice/pkg/mailapi"
	"github.com/lif-platforms/mailservice/pkg/slogx"
)

// CredentialsHandler handles credential issuance and removal.
type CredentialsHandler struct {
	CredentialService *service.CredentialService
}

// HandleCreate handles POST /admin/create_credentials
//
//	@Summary		Create API Credentials
//	@Description	Issues a new client credential. The client_secret in the response is shown exactly once and never retrievable again.
//	@Tags			Credentials
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			X-Auth-Identity	header		string								true	"Caller session identity"
//	@Param			X-Auth-Token	header		string								true	"Caller session token"
//	@Param			name			formData	string								true	"Human-readable credential label"
//	@Success		201				{object}	mailapi.CreateCredentialsResponse	"name, client_id, client_secret"
//	@Failure		400				{object}	mailapi.ErrorResponse
//	@Failure		401				{object}	mailapi.ErrorResponse
//	@Failure		403				{object}	mailapi.ErrorResponse
//	@Failure		500				{object}	mailapi.ErrorResponse
//	@Router			/admin/create_credentials [post].
func (h *CredentialsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Malformed form body",
		})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Credential name is required",
		})
		return
	}

	clientID, secret, err := h.CredentialService.CreateCredential(ctx, name)
	if err != nil {
		log.Error("failed to create credential", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to create credentials",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, mailapi.CreateCredentialsResponse{
		Name:         name,
		ClientID:     clientID,
		ClientSecret: secret,
	})
}

// HandleRemove handles DELETE /admin/remove_credentials/{client_id}
//
//	@Summary		Remove API Credentials
//	@Description	Deletes a credential and all of its permission grants.
//	@Tags			Credentials
//	@Produce		json
//	@Param			X-Auth-Identity	header		string	true	"Caller session identity"
//	@Param			X-Auth-Token	header		string	true	"Caller session token"
//	@Param			client_id		path		string	true	"Client ID"
//	@Success		200				{string}	string	"ok"
//	@Failure		401				{object}	mailapi.ErrorResponse
//	@Failure		403				{object}	mailapi.ErrorResponse
//	@Failure		404				{object}	mailapi.ErrorResponse
//	@Failure		500				{object}	mailapi.ErrorResponse
//	@Router			/admin/remove_credentials/{client_id} [delete].
func (h *CredentialsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID := r.PathValue("client_id")

	if err := h.CredentialService.RemoveCredential(ctx, clientID); err != nil {
		if errors.Is(err, service.ErrCredentialNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, mailapi.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No credential with that client id",
			})
			return
		}

		log.Error("failed to remove credential", "error", err, "client_id", clientID)
		httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to remove credentials",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, "ok")
}
