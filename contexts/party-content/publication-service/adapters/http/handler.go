package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tribune/contexts/party-content/publication-service/application"
	"tribune/contexts/party-content/publication-service/ports"
	httptransport "tribune/contexts/party-content/publication-service/transport/http"
)

// Handler maps HTTP DTOs to the publication application service.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreatePublicationHandler(ctx context.Context, authorID string, req httptransport.CreatePublicationRequest) (httptransport.PublicationResponse, error) {
	publication, err := h.Service.CreatePublication(ctx, ports.CreatePublicationInput{
		Kind:     strings.TrimSpace(req.Kind),
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		AuthorID: authorID,
	})
	if err != nil {
		return httptransport.PublicationResponse{}, err
	}
	return httptransport.PublicationResponse{
		Status: "success",
		Data:   publicationPayload(publication),
	}, nil
}

func (h Handler) UpdatePublicationHandler(ctx context.Context, publicationID string, req httptransport.UpdatePublicationRequest) (httptransport.PublicationResponse, error) {
	publication, err := h.Service.UpdatePublication(ctx, publicationID, ports.UpdatePublicationInput{
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return httptransport.PublicationResponse{}, err
	}
	return httptransport.PublicationResponse{
		Status: "success",
		Data:   publicationPayload(publication),
	}, nil
}

func (h Handler) GetPublicationHandler(ctx context.Context, publicationID string) (httptransport.PublicationResponse, error) {
	publication, err := h.Service.GetPublication(ctx, publicationID)
	if err != nil {
		return httptransport.PublicationResponse{}, err
	}
	return httptransport.PublicationResponse{
		Status: "success",
		Data:   publicationPayload(publication),
	}, nil
}

func (h Handler) DeletePublicationHandler(ctx context.Context, publicationID string) (httptransport.StatusResponse, error) {
	if err := h.Service.DeletePublication(ctx, publicationID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) ListPublicationsHandler(ctx context.Context, kind string) (httptransport.ListPublicationsResponse, error) {
	publications, err := h.Service.ListPublications(ctx, kind)
	if err != nil {
		return httptransport.ListPublicationsResponse{}, err
	}
	resp := httptransport.ListPublicationsResponse{Status: "success"}
	resp.Data.Items = make([]httptransport.PublicationPayload, 0, len(publications))
	for _, publication := range publications {
		resp.Data.Items = append(resp.Data.Items, publicationPayload(publication))
	}
	return resp, nil
}

func publicationPayload(publication ports.Publication) httptransport.PublicationPayload {
	return httptransport.PublicationPayload{
		PublicationID: publication.PublicationID,
		Kind:          publication.Kind,
		Title:         publication.Title,
		Body:          publication.Body,
		ImageURL:      publication.ImageURL,
		AuthorID:      publication.AuthorID,
		CreatedAt:     publication.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     publication.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
