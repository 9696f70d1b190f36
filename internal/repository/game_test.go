package repository

import (
	"context"
	"testing"

	"arriddle/backend/internal/models"
	"arriddle/backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GameRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo GameRepository
}

func (s *GameRepositoryTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.repo = NewGameRepository(s.db)
}

func (s *GameRepositoryTestSuite) TestCreateAssignsToken() {
	ctx := context.Background()

	duration := 7200
	maxPlayers := 12
	game := &models.Game{
		Name:        "Partie 1",
		Visibility:  true,
		Duration:    &duration,
		TimeStart:   1591019348,
		NbPlayerMax: &maxPlayers,
	}
	s.Require().NoError(s.repo.Create(ctx, game))
	s.Len(game.ID, token.GameIDLength)

	found, err := s.repo.FindByID(ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, found.ID)
	s.Equal("Partie 1", found.Name)
	s.Equal(int64(1591019348), found.TimeStart)
	s.Require().NotNil(found.Duration)
	s.Equal(7200, *found.Duration)
	s.Require().NotNil(found.NbPlayerMax)
	s.Equal(12, *found.NbPlayerMax)
}

func (s *GameRepositoryTestSuite) TestCreateDuplicateName() {
	ctx := context.Background()

	createTestGame(s.T(), s.db, "Partie 1")

	dup := &models.Game{Name: "Partie 1", TimeStart: 1}
	err := s.repo.Create(ctx, dup)
	s.ErrorIs(err, ErrConflict)
}

func (s *GameRepositoryTestSuite) TestCreateRetriesOnIDCollision() {
	ctx := context.Background()

	existing := createTestGame(s.T(), s.db, "Partie 1")

	// First draw collides with the existing game, the retry succeeds.
	draws := []string{existing.ID, token.NewGameID()}
	repo := &gameRepo{db: s.db, newID: func() string {
		id := draws[0]
		draws = draws[1:]
		return id
	}}

	game := &models.Game{Name: "Partie 2", TimeStart: 1}
	s.Require().NoError(repo.Create(ctx, game))
	s.NotEqual(existing.ID, game.ID)
	s.Len(game.ID, token.GameIDLength)
}

func (s *GameRepositoryTestSuite) TestCreateGivesUpWhenIDSpaceExhausted() {
	ctx := context.Background()

	existing := createTestGame(s.T(), s.db, "Partie 1")

	repo := &gameRepo{db: s.db, newID: func() string { return existing.ID }}

	game := &models.Game{Name: "Partie 2", TimeStart: 1}
	err := repo.Create(ctx, game)
	s.Require().Error(err)
	s.NotErrorIs(err, ErrConflict)
}

func (s *GameRepositoryTestSuite) TestFindByIDMissing() {
	_, err := s.repo.FindByID(context.Background(), "notexist")
	s.ErrorIs(err, ErrNotFound)
}

func (s *GameRepositoryTestSuite) TestList() {
	createTestGame(s.T(), s.db, "Partie 1")
	createTestGame(s.T(), s.db, "Partie 2")

	games, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *GameRepositoryTestSuite) TestPatchChangesOnlyGivenFields() {
	ctx := context.Background()

	game := createTestGame(s.T(), s.db, "Partie 1")

	duration := 999
	patch := models.GamePatch{Duration: &duration}
	patch.Apply(game)
	s.Require().NoError(s.repo.Save(ctx, game))

	found, err := s.repo.FindByID(ctx, game.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.Duration)
	s.Equal(999, *found.Duration)
	s.Equal("Partie 1", found.Name)
	s.True(found.Visibility)
	s.Equal(int64(1591019348), found.TimeStart)
	s.Nil(found.NbPlayerMax)
}

func (s *GameRepositoryTestSuite) TestDeleteCascadesToChildren() {
	ctx := context.Background()

	game := createTestGame(s.T(), s.db, "Partie 1")
	keypoint := createTestKeypoint(s.T(), s.db, game.ID, "Centrale Lille", 10)
	user := createTestUser(s.T(), s.db, game.ID, "alice")

	_, _, err := NewSolveRepository(s.db).Record(ctx, game.ID, user.ID, keypoint.ID, ReplayIgnore)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, game.ID))

	_, err = s.repo.FindByID(ctx, game.ID)
	s.ErrorIs(err, ErrNotFound)

	var keypoints, users, solves int64
	s.db.Model(&models.Keypoint{}).Where("game_id = ?", game.ID).Count(&keypoints)
	s.db.Model(&models.User{}).Where("game_id = ?", game.ID).Count(&users)
	s.db.Model(&models.Solve{}).Where("game_id = ?", game.ID).Count(&solves)
	assert.Zero(s.T(), keypoints)
	assert.Zero(s.T(), users)
	assert.Zero(s.T(), solves)
}

func (s *GameRepositoryTestSuite) TestDeleteMissing() {
	err := s.repo.Delete(context.Background(), "notexist")
	s.ErrorIs(err, ErrNotFound)
}

func TestGameRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GameRepositoryTestSuite))
}
