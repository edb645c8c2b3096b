package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger   *slog.Logger
	search   *service.SearchService
	auth     *service.AuthService
	insights *service.InsightsService
	banks    *service.BankService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, search *service.SearchService, auth *service.AuthService, insights *service.InsightsService, banks *service.BankService) *APIHandlers {
	return &APIHandlers{
		logger:   logger,
		search:   search,
		auth:     auth,
		insights: insights,
		banks:    banks,
	}
}

func (h *APIHandlers) handleSearchBlood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var payload searchRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.BloodType == "" {
		writeError(w, http.StatusBadRequest, "blood_type is required")
		return
	}
	switch payload.SortBy {
	case "", service.SortByDistance, service.SortByETA:
	default:
		writeError(w, http.StatusBadRequest, "sort_by must be distance or eta")
		return
	}

	results, err := h.search.SearchBlood(r.Context(), service.SearchParams{
		BloodType: payload.BloodType,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		SortBy:    payload.SortBy,
	})
	if err != nil {
		h.logger.Error("blood search failed", "error", err, "bloodType", payload.BloodType)
		writeError(w, http.StatusInternalServerError, "failed to search blood banks")
		return
	}

	response := searchResponse{Results: []searchResultResponse{}}
	for _, result := range results {
		response.Results = append(response.Results, searchResultResponse{
			ID:             result.ID,
			Name:           result.Name,
			Address:        result.Address,
			DistanceKm:     result.DistanceKm,
			ETAMinutes:     result.ETAMinutes,
			UnitsAvailable: result.RequestedUnits,
			Inventory:      result.Inventory,
			Latitude:       result.Latitude,
			Longitude:      result.Longitude,
			ContactNumber:  result.ContactNumber,
			GoogleMapsURL:  result.GoogleMapsURL,
		})
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *APIHandlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var payload registerRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Register(r.Context(), service.RegisterInput{
		Email:    payload.Email,
		Password: payload.Password,
		FullName: payload.FullName,
		Role:     payload.Role,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	case errors.Is(err, service.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		h.logger.Error("registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	respondJSON(w, http.StatusOK, registerResponse{
		Msg:  "User created",
		Role: user.Role,
	})
}

func (h *APIHandlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var payload loginRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	default:
		h.logger.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		Role:        session.Role,
		FullName:    session.FullName,
	})
}

func (h *APIHandlers) handleIronAbsorption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	respondJSON(w, http.StatusOK, toInsightResponse(h.insights.IronAbsorptionTips()))
}

func (h *APIHandlers) handleDonorRecovery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	respondJSON(w, http.StatusOK, toInsightResponse(h.insights.DonorRecoveryTips()))
}

func (h *APIHandlers) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var payload compatibilityRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	compat, err := h.insights.Compatibility(payload.BloodType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid blood type entered.")
		return
	}

	respondJSON(w, http.StatusOK, compatibilityResponse{
		BloodType:      compat.BloodType,
		CanGiveTo:      compat.CanGiveTo,
		CanReceiveFrom: compat.CanReceiveFrom,
	})
}

func (h *APIHandlers) handleFirstAid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	guides := h.insights.FirstAidGuides()
	response := make([]firstAidGuideResponse, 0, len(guides))
	for _, guide := range guides {
		response = append(response, firstAidGuideResponse{
			Condition: guide.Condition,
			Steps:     guide.Steps,
		})
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *APIHandlers) handleBloodBanks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listBloodBanks(w, r)
	case http.MethodPost:
		h.upsertBloodBank(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *APIHandlers) listBloodBanks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.banks.ListBanks(r.Context(), service.ListBanksParams{
		Page:     parseInt(query.Get("page"), 1),
		PageSize: parseInt(query.Get("page_size"), 50),
		Search:   query.Get("search"),
	})
	if err != nil {
		h.logger.Error("failed to list blood banks", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list blood banks")
		return
	}

	response := listBanksResponse{
		Items: []bankResponse{},
		Pagination: paginationResponse{
			Page:       page.Pagination.Page,
			PageSize:   page.Pagination.PageSize,
			TotalItems: page.Pagination.TotalItems,
			TotalPages: page.Pagination.TotalPages,
		},
	}
	for _, bank := range page.Items {
		response.Items = append(response.Items, toBankResponse(bank))
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *APIHandlers) upsertBloodBank(w http.ResponseWriter, r *http.Request) {
	var payload bankRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Name == "" || payload.Address == "" {
		writeError(w, http.StatusBadRequest, "name and address are required")
		return
	}

	id, err := h.banks.UpsertBank(r.Context(), service.BankInput{
		ID:            payload.ID,
		Name:          payload.Name,
		Address:       payload.Address,
		Latitude:      payload.Latitude,
		Longitude:     payload.Longitude,
		ContactNumber: payload.ContactNumber,
		Active:        payload.IsActive,
		Inventory:     payload.Inventory,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidBloodType):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		h.logger.Error("failed to upsert blood bank", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to persist blood bank")
		return
	}

	respondJSON(w, http.StatusCreated, statusResponse{Status: "ok", ID: id})
}

func (h *APIHandlers) handleDonors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var payload donorRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.FullName == "" {
		writeError(w, http.StatusBadRequest, "full_name is required")
		return
	}

	id, err := h.banks.RegisterDonor(r.Context(), service.DonorInput{
		FullName:  payload.FullName,
		BloodType: payload.BloodType,
		Contact:   payload.Contact,
		Address:   payload.Address,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidBloodType):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		h.logger.Error("failed to register donor", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to register donor")
		return
	}

	respondJSON(w, http.StatusCreated, statusResponse{Status: "ok", ID: id})
}

// --- Request & Response DTOs ---

type searchRequest struct {
	BloodType string  `json:"blood_type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	SortBy    string  `json:"sort_by"`
}

type searchResponse struct {
	Results []searchResultResponse `json:"results"`
}

type searchResultResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	DistanceKm     float64        `json:"distance_km"`
	ETAMinutes     int            `json:"eta_minutes"`
	UnitsAvailable int            `json:"units_available"`
	Inventory      map[string]int `json:"inventory"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	ContactNumber  string         `json:"contact_number"`
	GoogleMapsURL  string         `json:"google_maps_url"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type registerResponse struct {
	Msg  string `json:"msg"`
	Role string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	FullName    string `json:"full_name"`
}

type insightResponse struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
	Source  string   `json:"source,omitempty"`
}

type compatibilityRequest struct {
	BloodType string `json:"blood_type"`
}

type compatibilityResponse struct {
	BloodType      string   `json:"blood_type"`
	CanGiveTo      []string `json:"can_give_to"`
	CanReceiveFrom []string `json:"can_receive_from"`
}

type firstAidGuideResponse struct {
	Condition string   `json:"condition"`
	Steps     []string `json:"steps"`
}

type bankRequest struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	ContactNumber string         `json:"contact_number"`
	IsActive      *bool          `json:"is_active"`
	Inventory     map[string]int `json:"inventory"`
}

type bankResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	ContactNumber string         `json:"contact_number"`
	IsActive      bool           `json:"is_active"`
	Inventory     map[string]int `json:"inventory"`
}

type listBanksResponse struct {
	Items      []bankResponse     `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}

type paginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type donorRequest struct {
	FullName  string `json:"full_name"`
	BloodType string `json:"blood_type"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
}

type statusResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// --- Helpers ---

func toInsightResponse(insight domain.Insight) insightResponse {
	return insightResponse{
		Title:   insight.Title,
		Content: insight.Content,
		Source:  insight.Source,
	}
}

func toBankResponse(bank domain.BloodBank) bankResponse {
	inventory := make(map[string]int, len(bank.Inventory))
	for _, level := range bank.Inventory {
		inventory[level.BloodType] = level.Units
	}
	return bankResponse{
		ID:            bank.ID,
		Name:          bank.Name,
		Address:       bank.Address,
		Latitude:      bank.Latitude,
		Longitude:     bank.Longitude,
		ContactNumber: bank.ContactNumber,
		IsActive:      bank.Active,
		Inventory:     inventory,
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"detail": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
