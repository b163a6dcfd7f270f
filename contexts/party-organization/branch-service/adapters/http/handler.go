package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"tribune/contexts/party-organization/branch-service/application"
	"tribune/contexts/party-organization/branch-service/ports"
	httptransport "tribune/contexts/party-organization/branch-service/transport/http"
)

// Handler maps HTTP DTOs to the branch application service.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateBranchHandler(ctx context.Context, req httptransport.CreateBranchRequest) (httptransport.BranchResponse, error) {
	branch, err := h.Service.CreateBranch(ctx, ports.CreateBranchInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		return httptransport.BranchResponse{}, err
	}
	return httptransport.BranchResponse{
		Status: "success",
		Data:   branchPayload(branch),
	}, nil
}

func (h Handler) UpdateBranchHandler(ctx context.Context, branchID string, req httptransport.UpdateBranchRequest) (httptransport.BranchResponse, error) {
	branch, err := h.Service.UpdateBranch(ctx, branchID, ports.UpdateBranchInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		return httptransport.BranchResponse{}, err
	}
	return httptransport.BranchResponse{
		Status: "success",
		Data:   branchPayload(branch),
	}, nil
}

func (h Handler) GetBranchHandler(ctx context.Context, branchID string) (httptransport.BranchResponse, error) {
	branch, err := h.Service.GetBranch(ctx, branchID)
	if err != nil {
		return httptransport.BranchResponse{}, err
	}
	return httptransport.BranchResponse{
		Status: "success",
		Data:   branchPayload(branch),
	}, nil
}

func (h Handler) DeleteBranchHandler(ctx context.Context, branchID string) (httptransport.StatusResponse, error) {
	if err := h.Service.DeleteBranch(ctx, branchID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) ListBranchesHandler(ctx context.Context, city string) (httptransport.ListBranchesResponse, error) {
	branches, err := h.Service.ListBranches(ctx, city)
	if err != nil {
		return httptransport.ListBranchesResponse{}, err
	}
	resp := httptransport.ListBranchesResponse{Status: "success"}
	resp.Data.Items = make([]httptransport.BranchPayload, 0, len(branches))
	for _, branch := range branches {
		resp.Data.Items = append(resp.Data.Items, branchPayload(branch))
	}
	return resp, nil
}

func branchPayload(branch ports.Branch) httptransport.BranchPayload {
	return httptransport.BranchPayload{
		BranchID:  branch.BranchID,
		Name:      branch.Name,
		City:      branch.City,
		Address:   branch.Address,
		Phone:     branch.Phone,
		Email:     branch.Email,
		CreatedAt: branch.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: branch.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
