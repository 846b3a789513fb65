package server

import (
	awtyv1 "awty-football/gen/proto/awty/v1"
	"awty-football/internal/domain"
	"awty-football/internal/service"
	"awty-football/internal/stats"
	"context"
	"errors"

	"connectrpc.com/connect"
)

type StatsServer struct {
	statsSvc *service.StatsService
}

func NewStatsServer(statsSvc *service.StatsService) *StatsServer {
	return &StatsServer{statsSvc: statsSvc}
}

func (s *StatsServer) GetStandings(ctx context.Context, req *connect.Request[awtyv1.GetStandingsRequest]) (*connect.Response[awtyv1.GetStandingsResponse], error) {
	state, err := stats.ParseSort(req.Msg.Sort, req.Msg.Direction)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if req.Msg.Toggle != "" {
		toggled, err := stats.ParseSort(req.Msg.Toggle, "")
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		state = state.Toggle(toggled.Column)
	}

	rows, err := s.statsSvc.Standings(ctx, state)
	if err != nil {
		return nil, connectError(err)
	}

	resp := &awtyv1.GetStandingsResponse{
		Sort: &awtyv1.SortState{
			Column:    string(state.Column),
			Direction: string(state.Direction),
		},
		Rows: make([]*awtyv1.PlayerStanding, 0, len(rows)),
	}
	for _, row := range rows {
		form := make([]string, len(row.Form))
		for i, r := range row.Form {
			form[i] = string(r)
		}
		resp.Rows = append(resp.Rows, &awtyv1.PlayerStanding{
			Player:           toProtoPlayer(row.Player),
			GamesPlayed:      int32(row.GamesPlayed),
			Wins:             int32(row.Wins),
			Losses:           int32(row.Losses),
			Ties:             int32(row.Ties),
			Points:           int32(row.Points),
			PointsPerGame:    row.PointsPerGame,
			Goals:            int32(row.Goals),
			Assists:          int32(row.Assists),
			GoalInvolvements: int32(row.GoalInvolvements),
			Form:             form,
			FormWins:         int32(row.FormWins),
		})
	}
	return connect.NewResponse(resp), nil
}

func (s *StatsServer) GetPartnerships(ctx context.Context, req *connect.Request[awtyv1.GetPartnershipsRequest]) (*connect.Response[awtyv1.GetPartnershipsResponse], error) {
	pairs, err := s.statsSvc.Partnerships(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	resp := &awtyv1.GetPartnershipsResponse{
		Pairs: make([]*awtyv1.Partnership, 0, len(pairs)),
	}
	for _, p := range pairs {
		resp.Pairs = append(resp.Pairs, &awtyv1.Partnership{
			PlayerA:       toProtoPlayer(p.PlayerA),
			PlayerB:       toProtoPlayer(p.PlayerB),
			Contributions: int32(p.Contributions),
		})
	}
	return connect.NewResponse(resp), nil
}

func toProtoPlayer(p domain.Player) *awtyv1.Player {
	return &awtyv1.Player{
		Id:         p.ID,
		Name:       p.Name,
		PictureUrl: p.PictureURL,
	}
}

func connectError(err error) *connect.Error {
	switch {
	case domain.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, domain.ErrUnauthorized):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, domain.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, domain.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, domain.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, domain.ErrUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
