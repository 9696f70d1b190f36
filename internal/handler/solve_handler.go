package handler

import (
	"errors"
	"net/http"

	"arriddle/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SolveInput identifies the keypoint a user claims to have solved.
type SolveInput struct {
	KeypointID uint `json:"keypoint_id" binding:"required,gt=0" example:"1"`
}

type SolveResponse struct {
	UserID        uint   `json:"user_id" example:"1"`
	KeypointID    uint   `json:"keypoint_id" example:"1"`
	GameID        string `json:"game_id" example:"a8Tz41qK"`
	PointsAwarded int    `json:"points_awarded" example:"10"`
}

// endregion

// SolveHandler serves the solve routes.
type SolveHandler struct {
	solves    repository.SolveRepository
	users     repository.UserRepository
	keypoints repository.KeypointRepository
	policy    repository.ReplayPolicy
}

// NewSolveHandler creates a solve handler. The replay policy decides how a
// repeated solve of the same keypoint by the same user is treated.
func NewSolveHandler(
	solves repository.SolveRepository,
	users repository.UserRepository,
	keypoints repository.KeypointRepository,
	policy repository.ReplayPolicy,
) *SolveHandler {
	return &SolveHandler{solves: solves, users: users, keypoints: keypoints, policy: policy}
}

// Record godoc
// @Summary      Record that a user solved a keypoint
// @Description  Awards the keypoint's points to the user. A repeated solve
// @Description  is a no-op awarding nothing (policy "ignore") or a 409
// @Description  (policy "reject").
// @Tags         solves
// @Accept       json
// @Produce      json
// @Param        id     path string     true "Game ID"
// @Param        userID path int        true "User ID"
// @Param        input  body SolveInput true "Solved keypoint"
// @Success      201 {object} SolveResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "User or keypoint not found in this game"
// @Failure      409 {object} ErrorResponse "Keypoint already solved"
// @Router       /games/{id}/users/{userID}/solves [post]
func (h *SolveHandler) Record(c *gin.Context) {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var input SolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solve, awarded, err := h.solves.Record(c.Request.Context(), c.Param("id"), userID, input.KeypointID, h.policy)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User or keypoint not found in this game"})
		case errors.Is(err, repository.ErrAlreadySolved):
			c.JSON(http.StatusConflict, gin.H{"error": "Keypoint already solved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record solve"})
		}
		return
	}

	status := http.StatusCreated
	if awarded == 0 {
		// Replayed solve under the "ignore" policy.
		status = http.StatusOK
	}
	c.JSON(status, SolveResponse{
		UserID:        solve.UserID,
		KeypointID:    solve.KeypointID,
		GameID:        solve.GameID,
		PointsAwarded: awarded,
	})
}

// ListByUser godoc
// @Summary      Get the keypoints a user has solved
// @Tags         solves
// @Produce      json
// @Param        id     path string true "Game ID"
// @Param        userID path int    true "User ID"
// @Success      200 {array}  KeypointResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /games/{id}/users/{userID}/solves [get]
func (h *SolveHandler) ListByUser(c *gin.Context) {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	response := make([]KeypointResponse, 0, len(user.Solved))
	for _, keypoint := range user.Solved {
		response = append(response, newKeypointResponse(*keypoint))
	}
	c.JSON(http.StatusOK, response)
}

// ListSolvers godoc
// @Summary      Get the users who solved a keypoint
// @Tags         solves
// @Produce      json
// @Param        id         path string true "Game ID"
// @Param        keypointID path int    true "Keypoint ID"
// @Success      200 {array}  UserResponse
// @Failure      404 {object} ErrorResponse "Keypoint not found"
// @Router       /games/{id}/keypoints/{keypointID}/solvers [get]
func (h *SolveHandler) ListSolvers(c *gin.Context) {
	keypointID, err := parseUintParam(c, "keypointID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid keypoint id"})
		return
	}

	keypoint, err := h.keypoints.FindByID(c.Request.Context(), c.Param("id"), keypointID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Keypoint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve keypoint"})
		return
	}

	response := make([]UserResponse, 0, len(keypoint.Solvers))
	for _, user := range keypoint.Solvers {
		response = append(response, newUserResponse(*user))
	}
	c.JSON(http.StatusOK, response)
}
