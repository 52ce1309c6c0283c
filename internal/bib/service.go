// Package bib exposes WorldCat bibliographic lookups and holdings updates.
package bib

import (
	"context"
	"log/slog"

	"worldcat/internal/platform/worldcat"
)

type WorldCatClient interface {
	GetBib(ctx context.Context, oclcNumber any) ([]byte, error)
	GetCurrentOCLCNumbers(ctx context.Context, oclcNumbers any) (*worldcat.CurrentNumbersResponse, error)
	SetHoldings(ctx context.Context, oclcNumber any) (*worldcat.HoldingResponse, error)
}

type Service struct {
	client WorldCatClient
	log    *slog.Logger
}

func NewService(client WorldCatClient, log *slog.Logger) *Service {
	return &Service{client: client, log: log}
}

func (s *Service) GetBib(ctx context.Context, oclcNumber string) ([]byte, error) {
	rec, err := s.client.GetBib(ctx, oclcNumber)
	if err != nil {
		s.log.Warn("bib lookup failed", "oclc_number", oclcNumber, "error", err)
		return nil, err
	}
	return rec, nil
}

func (s *Service) CurrentNumbers(ctx context.Context, oclcNumbers string) ([]worldcat.ControlNumber, error) {
	res, err := s.client.GetCurrentOCLCNumbers(ctx, oclcNumbers)
	if err != nil {
		s.log.Warn("current oclc numbers lookup failed", "oclc_numbers", oclcNumbers, "error", err)
		return nil, err
	}
	return res.ControlNumbers, nil
}

func (s *Service) SetHolding(ctx context.Context, oclcNumber string) (*worldcat.HoldingResponse, error) {
	res, err := s.client.SetHoldings(ctx, oclcNumber)
	if err != nil {
		s.log.Warn("set holding failed", "oclc_number", oclcNumber, "error", err)
		return nil, err
	}
	s.log.Info("holding set", "oclc_number", res.ControlNumber, "institution", res.InstitutionSymbol)
	return res, nil
}
