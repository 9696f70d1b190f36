package handler

import (
	"errors"
	"net/http"

	"arriddle/backend/internal/models"
	"arriddle/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// UserInput defines the payload for adding a player to a game.
type UserInput struct {
	Name   string `json:"name" binding:"required,min=1" example:"alice"`
	Points int    `json:"points"`
}

// UserUpdateInput defines the payload for a partial user update.
type UserUpdateInput struct {
	Name   *string `json:"name" binding:"omitempty,min=1"`
	Points *int    `json:"points"`
}

type UserResponse struct {
	ID              uint   `json:"id" example:"1"`
	Name            string `json:"name" example:"alice"`
	Points          int    `json:"points" example:"30"`
	GameID          string `json:"game_id" example:"a8Tz41qK"`
	KeypointsSolved []uint `json:"keypoints_solved"`
}

func newUserResponse(user models.User) UserResponse {
	solved := make([]uint, 0, len(user.Solved))
	for _, keypoint := range user.Solved {
		solved = append(solved, keypoint.ID)
	}

	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Points:          user.Points,
		GameID:          user.GameID,
		KeypointsSolved: solved,
	}
}

// endregion

// UserHandler serves the /games/{id}/users routes.
type UserHandler struct {
	users repository.UserRepository
}

// NewUserHandler creates a user handler on top of the given repository.
func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Create godoc
// @Summary      Add a player to a game
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path string    true "Game ID"
// @Param        input body UserInput true "User Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      409  {object}  ErrorResponse "User name already taken in this game"
// @Router       /games/{id}/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:   input.Name,
		Points: input.Points,
		GameID: c.Param("id"),
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		case errors.Is(err, repository.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "User name already taken in this game"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// List godoc
// @Summary      Get the players of a game
// @Tags         users
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {array}  UserResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListByGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, newUserResponse(user))
	}
	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary      Get a single player of a game
// @Description  The user must belong to the game in the path; a user id
// @Description  from another game yields 404.
// @Tags         users
// @Produce      json
// @Param        id     path string true "Game ID"
// @Param        userID path int    true "User ID"
// @Success      200 {object} UserResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /games/{id}/users/{userID} [get]
func (h *UserHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// Update godoc
// @Summary      Partially update a player
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id     path string          true "Game ID"
// @Param        userID path int             true "User ID"
// @Param        input  body UserUpdateInput true "Fields to change"
// @Success      200 {object} UserResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      409 {object} ErrorResponse "User name already taken in this game"
// @Router       /games/{id}/users/{userID} [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var input UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	patch := models.UserPatch{
		Name:   input.Name,
		Points: input.Points,
	}
	patch.Apply(user)

	if err := h.users.Save(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "User name already taken in this game"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// Delete godoc
// @Summary      Remove a player from a game
// @Tags         users
// @Produce      json
// @Param        id     path string true "Game ID"
// @Param        userID path int    true "User ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /games/{id}/users/{userID} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := parseUintParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	err = h.users.Delete(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
