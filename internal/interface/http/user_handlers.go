package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domuser "example.com/flowpos/internal/domain/user"
	useruc "example.com/flowpos/internal/usecase/user"
)

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleCode string `json:"role_code" validate:"required"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	RoleCode *string `json:"role_code"`
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	filter := domuser.ListFilter{}
	if rc := r.URL.Query().Get("role_code"); rc != "" {
		role, err := domuser.ParseRoleCode(rc)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		filter.RoleCode = &role
	}

	users, err := a.userSvc.ListUsers(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(users))
	for _, u := range users {
		resp = append(resp, mapUser(u))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	u, err := a.userSvc.GetUser(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapUser(u))
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	role, err := domuser.ParseRoleCode(req.RoleCode)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err)
		return
	}

	created, err := a.userSvc.CreateUser(r.Context(), useruc.CreateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleCode: role,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapUser(created))
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateUserRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	in := useruc.UpdateUserInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.RoleCode != nil {
		role, err := domuser.ParseRoleCode(*req.RoleCode)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, err)
			return
		}
		in.RoleCode = &role
	}

	updated, err := a.userSvc.UpdateUser(r.Context(), in)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapUser(updated))
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.userSvc.DeleteUser(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
