package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/JuliPapp/Redimfinal-sub000/internal/content"
	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

type AnalysesService struct {
	analyses repository.AnalysesRepositoryI
	checkins repository.CheckinsRepositoryI
	corpus   *content.Corpus
}

func NewAnalysesService(analyses repository.AnalysesRepositoryI, checkins repository.CheckinsRepositoryI, corpus *content.Corpus) *AnalysesService {
	if analyses == nil || checkins == nil {
		log.Fatal("provided nil repository to analyses service")
	}
	if corpus == nil {
		corpus = content.Default
	}
	return &AnalysesService{
		analyses: analyses,
		checkins: checkins,
		corpus:   corpus,
	}
}

func (as *AnalysesService) Create(ctx context.Context, uid uuid.UUID, req *CreateAnalysisRequest) (*AnalysisResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := as.checkins.GetByID(ctx, req.CheckInID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCheckInNotFound) {
			return nil, err
		}
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	if c.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	known, unknown := content.ParseRoots(req.IdentifiedRoots)
	// unknown ids are kept verbatim so they can be displayed later
	roots := make([]string, 0, len(known)+len(unknown))
	for _, r := range known {
		roots = append(roots, string(r))
	}
	roots = append(roots, unknown...)
	a := entity.RootAnalysis{
		UserID:          uid,
		CheckInID:       c.ID,
		IdentifiedRoots: roots,
	}
	if err := as.analyses.Create(ctx, &a); err != nil {
		if errors.Is(err, errorvalues.ErrCheckInNotFound) {
			return nil, err
		}
		return nil, errors.New("analyses repository error: " + err.Error())
	}
	return as.render(&a), nil
}

func (as *AnalysesService) List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.RootAnalysis, error) {
	analyses, err := as.analyses.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("analyses repository error: " + err.Error())
	}
	return analyses, nil
}

func (as *AnalysesService) Plan(ctx context.Context, uid, analysisID uuid.UUID) (*AnalysisResult, error) {
	a, err := as.analyses.GetByID(ctx, analysisID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAnalysisNotFound) {
			return nil, err
		}
		return nil, errors.New("analyses repository error: " + err.Error())
	}
	if a.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return as.render(a), nil
}

func (as *AnalysesService) render(a *entity.RootAnalysis) *AnalysisResult {
	known, unknown := content.ParseRoots(a.IdentifiedRoots)
	categories := content.CategoriesFor(known)
	labels := make(map[string]string, len(a.IdentifiedRoots))
	for _, id := range a.IdentifiedRoots {
		labels[id] = content.Label(id)
	}
	return &AnalysisResult{
		Analysis:     a,
		Categories:   categories,
		UnknownRoots: unknown,
		Labels:       labels,
		Plan:         as.corpus.Match(known, categories),
	}
}
