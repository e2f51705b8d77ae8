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

// PermissionsHandler handles permission grant, revoke and listing.
type PermissionsHandler struct {
	PermissionService *service.PermissionService
}

// HandleModify handles POST and DELETE /admin/modify_permissions/{client_id}.
// POST grants the submitted nodes, DELETE revokes them.
//
//	@Summary		Modify Permissions
//	@Description	Grants (POST) or revokes (DELETE) permission nodes on a credential. Both are idempotent per node.
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			X-Auth-Identity	header		string		true	"Caller session identity"
//	@Param			X-Auth-Token	header		string		true	"Caller session token"
//	@Param			client_id		path		string		true	"Client ID"
//	@Param			nodes			body		[]string	true	"Permission nodes"
//	@Success		200				{string}	string		"ok"
//	@Failure		400				{object}	mailapi.ErrorResponse
//	@Failure		401				{object}	mailapi.ErrorResponse
//	@Failure		403				{object}	mailapi.ErrorResponse
//	@Failure		404				{object}	mailapi.ErrorResponse
//	@Failure		500				{object}	mailapi.ErrorResponse
//	@Router			/admin/modify_permissions/{client_id} [post].
func (h *PermissionsHandler) HandleModify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID := r.PathValue("client_id")

	var nodes []string
	if err := json.NewDecoder(r.Body).Decode(&nodes); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Request body must be a JSON array of permission nodes",
		})
		return
	}
	if len(nodes) == 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, mailapi.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "At least one permission node is required",
		})
		return
	}

	var err error
	if r.Method == http.MethodDelete {
		err = h.PermissionService.Revoke(ctx, clientID, nodes)
	} else {
		err = h.PermissionService.Grant(ctx, clientID, nodes)
	}

	if err != nil {
		if errors.Is(err, service.ErrCredentialNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, mailapi.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No credential with that client id",
			})
			return
		}

		log.Error("failed to modify permissions", "error", err, "client_id", clientID)
		httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to modify permissions",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, "ok")
}

// HandleGet handles GET /admin/get_permissions/{client_id}
//
//	@Summary		View Permissions
//	@Description	Lists the permission nodes granted to a credential.
//	@Tags			Permissions
//	@Produce		json
//	@Param			X-Auth-Identity	header		string	true	"Caller session identity"
//	@Param			X-Auth-Token	header		string	true	"Caller session token"
//	@Param			client_id		path		string	true	"Client ID"
//	@Success		200				{object}	mailapi.GetPermissionsResponse
//	@Failure		401				{object}	mailapi.ErrorResponse
//	@Failure		403				{object}	mailapi.ErrorResponse
//	@Failure		404				{object}	mailapi.ErrorResponse
//	@Failure		500				{object}	mailapi.ErrorResponse
//	@Router			/admin/get_permissions/{client_id} [get].
func (h *PermissionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID := r.PathValue("client_id")

	cred, nodes, err := h.PermissionService.List(ctx, clientID)
	if err != nil {
		if errors.Is(err, service.ErrCredentialNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, mailapi.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No credential with that client id",
			})
			return
		}

		log.Error("failed to list permissions", "error", err, "client_id", clientID)
		httpx.WriteJSON(w, http.StatusInternalServerError, mailapi.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list permissions",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, mailapi.GetPermissionsResponse{
		Name:        cred.Name,
		ClientID:    cred.ClientID,
		Permissions: nodes,
	})
}
