package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/crickstack/scorecard-api/internal/domain/match"
	"github.com/crickstack/scorecard-api/internal/domain/player"
	"github.com/crickstack/scorecard-api/internal/domain/scorecard"
	matchmock "github.com/crickstack/scorecard-api/internal/mocks/domain/match"
	playermock "github.com/crickstack/scorecard-api/internal/mocks/domain/player"
	scorecardmock "github.com/crickstack/scorecard-api/internal/mocks/domain/scorecard"
	"github.com/crickstack/scorecard-api/internal/platform/id"
	"github.com/crickstack/scorecard-api/internal/platform/logging"
)

func newMockedService(t *testing.T) (*ScorecardService, *matchmock.Repository, *playermock.Repository, *scorecardmock.Repository) {
	t.Helper()

	matchRepo := matchmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	scorecardRepo := scorecardmock.NewRepository(t)
	service := NewScorecardService(
		matchRepo,
		scorecardRepo,
		NewMatchCorrelator(matchRepo),
		NewPlayerResolver(playerRepo),
		id.NewRandomGenerator(),
		logging.NewNop(),
	)
	return service, matchRepo, playerRepo, scorecardRepo
}

func TestImportScorecard_CompensatesWhenMatchUpdateFails(t *testing.T) {
	t.Parallel()

	service, matchRepo, playerRepo, scorecardRepo := newMockedService(t)

	target := match.Match{
		ID:     "m-1",
		Team1:  match.TeamRef{Name: "India", ShortName: "IND"},
		Team2:  match.TeamRef{Name: "New Zealand", ShortName: "NZ"},
		Status: match.StatusUpcoming,
	}
	updateErr := errors.New("connection reset")

	matchRepo.On("GetByID", mock.Anything, "m-1").Return(target, true, nil)
	scorecardRepo.On("GetByMatchID", mock.Anything, "m-1").Return(scorecard.Scorecard{}, false, nil)
	playerRepo.On("ListActive", mock.Anything, mock.Anything).Return([]player.Player{}, nil)
	scorecardRepo.On("Create", mock.Anything, mock.AnythingOfType("scorecard.Scorecard")).Return(nil)
	matchRepo.On("ApplyImport", mock.Anything, "m-1", mock.AnythingOfType("match.ImportUpdate")).Return(updateErr)
	scorecardRepo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	result, err := service.ImportScorecard(context.Background(), importCSV, "m-1", "admin-1")
	if err == nil {
		t.Fatal("match update failure must surface as an error")
	}
	if !errors.Is(err, updateErr) {
		t.Fatalf("error must wrap the update failure, got: %v", err)
	}
	if result.Success {
		t.Fatal("result must not claim success")
	}
	if result.ScorecardID != "" {
		t.Fatalf("no scorecard id may leak out, got=%q", result.ScorecardID)
	}
	if len(result.Errors) == 0 {
		t.Fatal("failure must be reported on the result")
	}
}

func TestImportScorecard_CompensationFailureIsReportedToo(t *testing.T) {
	t.Parallel()

	service, matchRepo, playerRepo, scorecardRepo := newMockedService(t)

	target := match.Match{
		ID:    "m-1",
		Team1: match.TeamRef{Name: "India", ShortName: "IND"},
		Team2: match.TeamRef{Name: "New Zealand", ShortName: "NZ"},
	}
	updateErr := errors.New("connection reset")
	deleteErr := errors.New("delete timed out")

	matchRepo.On("GetByID", mock.Anything, "m-1").Return(target, true, nil)
	scorecardRepo.On("GetByMatchID", mock.Anything, "m-1").Return(scorecard.Scorecard{}, false, nil)
	playerRepo.On("ListActive", mock.Anything, mock.Anything).Return([]player.Player{}, nil)
	scorecardRepo.On("Create", mock.Anything, mock.AnythingOfType("scorecard.Scorecard")).Return(nil)
	matchRepo.On("ApplyImport", mock.Anything, "m-1", mock.AnythingOfType("match.ImportUpdate")).Return(updateErr)
	scorecardRepo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(deleteErr)

	// The Delete expectation doubles as the assertion that compensation ran.
	_, err := service.ImportScorecard(context.Background(), importCSV, "m-1", "admin-1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, updateErr) {
		t.Fatalf("error must still carry the update failure, got: %v", err)
	}
}

func TestImportScorecard_DuplicateCreateIsNotASystemError(t *testing.T) {
	t.Parallel()

	service, matchRepo, playerRepo, scorecardRepo := newMockedService(t)

	target := match.Match{
		ID:    "m-1",
		Team1: match.TeamRef{Name: "India", ShortName: "IND"},
		Team2: match.TeamRef{Name: "New Zealand", ShortName: "NZ"},
	}

	matchRepo.On("GetByID", mock.Anything, "m-1").Return(target, true, nil)
	// The pre-check sees nothing, then a concurrent import wins the insert.
	scorecardRepo.On("GetByMatchID", mock.Anything, "m-1").Return(scorecard.Scorecard{}, false, nil)
	playerRepo.On("ListActive", mock.Anything, mock.Anything).Return([]player.Player{}, nil)
	scorecardRepo.On("Create", mock.Anything, mock.AnythingOfType("scorecard.Scorecard")).Return(scorecard.ErrDuplicateMatch)

	result, err := service.ImportScorecard(context.Background(), importCSV, "m-1", "admin-1")
	if err != nil {
		t.Fatalf("losing the insert race is not a system error: %v", err)
	}
	if result.Success {
		t.Fatal("result must not claim success")
	}
	if len(result.Errors) != 1 || result.Errors[0] != msgScorecardExists {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestGetScorecardByMatchID_NotFound(t *testing.T) {
	t.Parallel()

	service, _, _, scorecardRepo := newMockedService(t)

	scorecardRepo.On("GetByMatchID", mock.Anything, "m-404").Return(scorecard.Scorecard{}, false, nil)

	_, err := service.GetScorecardByMatchID(context.Background(), "m-404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDeleteScorecard_ClearsMatchRefFirst(t *testing.T) {
	t.Parallel()

	service, matchRepo, _, scorecardRepo := newMockedService(t)

	stored := scorecard.Scorecard{ID: "sc-1", MatchID: "m-1"}
	scorecardRepo.On("GetByID", mock.Anything, "sc-1").Return(stored, true, nil)
	matchRepo.On("ClearScorecardRef", mock.Anything, "m-1").Return(nil)
	scorecardRepo.On("Delete", mock.Anything, "sc-1").Return(nil)

	if err := service.DeleteScorecard(context.Background(), "sc-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
