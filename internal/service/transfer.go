package service

import (
	"awty-football/internal/api"
	"awty-football/internal/config"
	"awty-football/internal/constants"
	"awty-football/internal/csvio"
	"awty-football/internal/domain"
	"awty-football/internal/repository"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// TransferService moves games in and out of the store as CSV and pushes the
// export to the configured spreadsheet.
type TransferService struct {
	players *repository.PlayerRepository
	games   *repository.GameRepository
	google  *api.GoogleClient
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewTransferService(players *repository.PlayerRepository, games *repository.GameRepository, google *api.GoogleClient, cfg *config.Config, logger zerolog.Logger) *TransferService {
	return &TransferService{players: players, games: games, google: google, cfg: cfg, logger: logger}
}

func (s *TransferService) ExportRows(ctx context.Context) ([][]string, error) {
	players, games, err := loadAll(ctx, s.players, s.games)
	if err != nil {
		return nil, err
	}
	return csvio.Rows(players, games), nil
}

func (s *TransferService) ExportCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.ExportRows(ctx)
	if err != nil {
		return err
	}
	return csvio.Write(w, rows)
}

// Import validates the whole file before writing anything, then inserts all
// games in one transaction. It returns the number of games created.
func (s *TransferService) Import(ctx context.Context, r io.Reader) (int, error) {
	players, existing, err := loadAll(ctx, s.players, s.games)
	if err != nil {
		return 0, err
	}

	games, err := csvio.Parse(r, players)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rejected game import")
		return 0, err
	}
	if len(games) == 0 {
		return 0, domain.NewValidationError("csv", "no games found")
	}

	taken := make(map[int]bool, len(existing))
	for _, g := range existing {
		if g.GameNumber != nil {
			taken[*g.GameNumber] = true
		}
	}
	for _, g := range games {
		if taken[*g.GameNumber] {
			return 0, domain.NewValidationError("game_number", "game %d already exists", *g.GameNumber)
		}
		if err := domain.ValidateGoals(g.Goals); err != nil {
			return 0, fmt.Errorf("game %d: %w", *g.GameNumber, err)
		}
		if err := domain.ValidateTeamChanges(g.TeamChanges); err != nil {
			return 0, fmt.Errorf("game %d: %w", *g.GameNumber, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.games.InsertBatch(ctx, games); err != nil {
		s.logger.Error().Err(err).Int("games", len(games)).Msg("failed to import games")
		return 0, err
	}
	s.logger.Info().Int("games", len(games)).Msg("games imported")
	return len(games), nil
}

// SyncSheets overwrites the configured spreadsheet range with the export.
func (s *TransferService) SyncSheets(ctx context.Context) (*api.UpdateValuesResponse, error) {
	if !s.cfg.SheetsEnabled() {
		return nil, fmt.Errorf("google sheets sync is not configured: %w", domain.ErrUnavailable)
	}

	rows, err := s.ExportRows(ctx)
	if err != nil {
		return nil, err
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.google.UpdateValues(apiCtx, s.cfg.SheetsSpreadsheetID, s.cfg.SheetsRange, rows)
	if err != nil {
		s.logger.Error().Err(err).Str("spreadsheet_id", s.cfg.SheetsSpreadsheetID).Msg("sheets sync failed")
		return nil, fmt.Errorf("failed to sync sheets: %w", err)
	}

	s.logger.Info().
		Str("spreadsheet_id", s.cfg.SheetsSpreadsheetID).
		Int("rows", len(rows)).
		Int("updated_cells", resp.UpdatedCells).
		Msg("sheets synced")
	return resp, nil
}
