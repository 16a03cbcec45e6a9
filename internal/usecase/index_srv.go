package usecase

import (
	"context"
	"fmt"

	"book-catalog/internal/data/repository"
	"book-catalog/internal/dto/request"
	"book-catalog/internal/dto/response"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

type IndexService interface {
	GetIndex(ctx context.Context, req *request.PaginatedRequest) (*response.IndexResponse, error)
}

type indexService struct {
	repo        *repository.Repository
	itemPerPage int
	log         *zap.Logger
}

func NewIndexService(repo *repository.Repository, itemPerPage int, log *zap.Logger) IndexService {
	return &indexService{
		repo:        repo,
		itemPerPage: itemPerPage,
		log:         log.With(zap.String("service", "index")),
	}
}

func (s *indexService) GetIndex(ctx context.Context, req *request.PaginatedRequest) (*response.IndexResponse, error) {
	total, err := s.repo.Book.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count books: %w", err)
	}

	// Validate the page before running the heavier queries
	paginator := utils.NewPaginator(total, s.itemPerPage)
	page, err := paginator.Page(req.Page, false)
	if err != nil {
		s.log.Warn("Invalid ranking page",
			zap.String("page", req.Page),
			zap.Int64("total", total),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}

	newest, err := s.repo.Book.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("get newest books: %w", err)
	}

	ranking, err := s.repo.Book.FindRanking(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("get ranking: %w", err)
	}

	rankingPage, err := s.repo.Book.FindRanking(ctx, paginator.Limit(), paginator.Offset(page))
	if err != nil {
		return nil, fmt.Errorf("get ranking page %d: %w", page, err)
	}

	s.log.Info("Index retrieved",
		zap.Int64("total", total),
		zap.Int("page", page),
		zap.Int("page_count", len(rankingPage)),
	)

	return &response.IndexResponse{
		ObjectList:  response.BooksToResponse(newest),
		RankingList: response.RankedBooksToResponse(ranking),
		PageObj:     response.NewPaginatedResponse(response.RankedBooksToResponse(rankingPage), paginator, page),
	}, nil
}
