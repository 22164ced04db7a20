package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"menuboard/menu-svc/internal/domain"
	"menuboard/menu-svc/internal/repository"
	"menuboard/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxImageSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Menu service.MenuServiceInterface
}

func NewHandler(menuSvc service.MenuServiceInterface) *Handler {
	return &Handler{Menu: menuSvc}
}

type createRestaurantRequest struct {
	domain.RestaurantInput
	Username string `json:"username"`
	Password string `json:"password"`
}

type dishRequest struct {
	domain.DishInput
	SectionID string `json:"sectionId"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.delistRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/sections", h.addSection).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/sections/{sectionId}", h.updateSection).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/sections/{sectionId}", h.deleteSection).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.addDish).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.deleteDish).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}/image", h.uploadDishImage).Methods("POST")

	r.HandleFunc("/api/session", h.getSession).Methods("GET")
	r.HandleFunc("/api/session", h.logout).Methods("DELETE")
	r.HandleFunc("/api/session/login", h.login).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req createRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Menu.Create(r.Context(), req.RestaurantInput, req.Username, req.Password)
	if err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	rest, err := h.Menu.Get(id)
	if err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menu.List(r.URL.Query().Get("q")))
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Menu.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) delistRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delist(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menu.Menu(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Menu.QRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) addSection(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	var input domain.SectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Menu.AddSection(r.Context(), restaurantID, input)
	if err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusCreated, domain.Section{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		RestaurantID: restaurantID,
	})
}

func (h *Handler) updateSection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var section domain.Section
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	section.ID = vars["sectionId"]
	section.RestaurantID = vars["restaurantId"]
	if err := h.Menu.UpdateSection(r.Context(), section); err != nil {
		writeError(w, err, "Section not found")
		return
	}
	writeJSON(w, http.StatusOK, section)
}

func (h *Handler) deleteSection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Menu.DeleteSection(r.Context(), vars["sectionId"], vars["restaurantId"]); err != nil {
		writeError(w, err, "Section not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addDish(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Menu.AddDish(r.Context(), restaurantID, req.SectionID, req.DishInput)
	if err != nil {
		writeError(w, err, "Restaurant not found")
		return
	}
	sectionID := req.SectionID
	if sectionID == "" {
		sectionID = domain.DefaultSectionID
	}
	writeJSON(w, http.StatusCreated, domain.Dish{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		RestaurantID: restaurantID,
		SectionID:    sectionID,
	})
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = vars["dishId"]
	dish.RestaurantID = vars["restaurantId"]
	if err := h.Menu.UpdateDish(r.Context(), dish); err != nil {
		writeError(w, err, "Dish not found")
		return
	}
	if dish.SectionID == "" {
		dish.SectionID = domain.DefaultSectionID
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Menu.DeleteDish(r.Context(), vars["dishId"], vars["restaurantId"]); err != nil {
		writeError(w, err, "Dish not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadDishImage stores the uploaded file inline on the dish as a data URI.
func (h *Handler) uploadDishImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	if len(data) > maxImageSize {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	imageURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	if err := h.Menu.SetDishImage(r.Context(), vars["restaurantId"], vars["dishId"], imageURL); err != nil {
		writeError(w, err, "Dish not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Menu.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session := h.Menu.CurrentOwner()
	if session == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Logout(r.Context()); err != nil {
		writeError(w, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		log.Printf("[menu-svc] request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
