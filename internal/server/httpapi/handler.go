package httpapi

import (
	"net/http"
	"time"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	UserName string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type loginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type listMutationRequest struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Status models.ListStatus `json:"status"`
}

type idRequest struct {
	ID string `json:"id"`
}

type listIDRequest struct {
	ListID string `json:"listId"`
}

type addItemRequest struct {
	ListID string            `json:"listId"`
	Desc   string            `json:"desc"`
	Status models.ItemStatus `json:"status"`
}

type editItemRequest struct {
	ID   string `json:"id"`
	Desc string `json:"desc"`
}

type listCollectionResponse struct {
	List []*models.List `json:"list"`
}

type itemCollectionResponse struct {
	Items []*models.Item `json:"items"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.UserName, req.Password, req.Confirm)
	if err != nil {
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "username", user.UserName)
	writeMessage(w, http.StatusCreated, "Account created successfully")
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := s.users.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.sessionValidity),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.Info(r.Context(), "logged in", "username", req.UserName)
	writeMessage(w, http.StatusOK, "Logged in successfully")
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(common.SessionCookieName); err == nil {
		if err := s.users.Logout(r.Context(), cookie.Value); err != nil {
			s.logger.Error(r.Context(), "logout failed", "error", err.Error())
			writeError(w, err)
			return
		}
	}

	// expire the cookie client-side as well
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeMessage(w, http.StatusOK, "Logged out Successfully")
}

func (s *HTTPServer) handleGetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.lists.GetLists(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if lists == nil {
		lists = []*models.List{}
	}
	writeJSON(w, http.StatusOK, listCollectionResponse{List: lists})
}

func (s *HTTPServer) handleAddList(w http.ResponseWriter, r *http.Request) {
	var req listMutationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.lists.CreateList(r.Context(), userIDFromContext(r.Context()), req.Title, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "List Added successfully")
}

func (s *HTTPServer) handleEditList(w http.ResponseWriter, r *http.Request) {
	var req listMutationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.lists.EditList(r.Context(), userIDFromContext(r.Context()), req.ID, req.Title, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "List Updated successfully")
}

func (s *HTTPServer) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.lists.DeleteList(r.Context(), userIDFromContext(r.Context()), req.ID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "List Deleted successfully")
}

func (s *HTTPServer) handleGetItems(w http.ResponseWriter, r *http.Request) {
	var req listIDRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	items, err := s.items.GetItems(r.Context(), userIDFromContext(r.Context()), req.ListID)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*models.Item{}
	}
	writeJSON(w, http.StatusOK, itemCollectionResponse{Items: items})
}

func (s *HTTPServer) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.items.AddItem(r.Context(), userIDFromContext(r.Context()), req.ListID, req.Desc, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "Item added successfully")
}

func (s *HTTPServer) handleEditItem(w http.ResponseWriter, r *http.Request) {
	var req editItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.items.EditItem(r.Context(), userIDFromContext(r.Context()), req.ID, req.Desc); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Item updated successfully")
}

func (s *HTTPServer) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.items.DeleteItem(r.Context(), userIDFromContext(r.Context()), req.ID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Item deleted successfully")
}
