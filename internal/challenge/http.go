// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package challenge

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/vuminhdang/pagemark/internal/platform/request"
	"github.com/vuminhdang/pagemark/internal/platform/respond"
	"github.com/vuminhdang/pagemark/internal/platform/validate"
	"github.com/vuminhdang/pagemark/pkg/pagination"
)

// dateLayout is the wire format for challenge date windows.
const dateLayout = "2006-01-02"

// Handler implements challenge HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the challenge endpoints. All routes
// require an authenticated user; the gate is applied by the composition root.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createChallenge)
	router.Get("/", handler.listChallenges)
	router.Post("/join", handler.joinChallenge)
	router.Get("/my", handler.myChallenges)

	return router
}

type createChallengeRequest struct {
	Title     string `json:"title"`
	GoalBooks int    `json:"goal_books"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type joinChallengeRequest struct {
	ChallengeID string `json:"challenge_id"`
}

/*
CreateChallenge opens a new reading challenge.

POST /api/v1/challenges

Response:
  - 201: Challenge: Created challenge
  - 400: ErrInvalidJSON: Bad input, malformed dates, or inverted date window
*/
func (handler *Handler) createChallenge(writer http.ResponseWriter, request *http.Request) {
	var input createChallengeRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	startDate, startErr := time.Parse(dateLayout, input.StartDate)
	endDate, endErr := time.Parse(dateLayout, input.EndDate)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, MaxTitleLength).
		Min(FieldGoalBooks, input.GoalBooks, 1).
		Custom(FieldStartDate, startErr != nil, "must be a date in YYYY-MM-DD format").
		Custom(FieldEndDate, endErr != nil, "must be a date in YYYY-MM-DD format")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	challenge, err := handler.service.Create(request.Context(), CreateInput{
		Title:     input.Title,
		GoalBooks: input.GoalBooks,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, challenge)
}

/*
ListChallenges returns a page of all challenges.

GET /api/v1/challenges?page=&limit=

Response:
  - 200: []Challenge with pagination metadata
*/
func (handler *Handler) listChallenges(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	challenges, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, challenges, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
JoinChallenge enrolls the caller in a challenge.

POST /api/v1/challenges/join

Response:
  - 201: Entry: New membership entry
  - 404: ErrNotFound: Unknown challenge ID
  - 409: ErrConflict: Caller already joined this challenge
*/
func (handler *Handler) joinChallenge(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input joinChallengeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldChallengeID, input.ChallengeID).
		UUID(FieldChallengeID, input.ChallengeID)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Join(request.Context(), userID, input.ChallengeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
MyChallenges returns the caller's challenge entries.

GET /api/v1/challenges/my?page=&limit=

Response:
  - 200: []Entry with pagination metadata, most recent joins first
*/
func (handler *Handler) myChallenges(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	entries, total, err := handler.service.MyEntries(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
