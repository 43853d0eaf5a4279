package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rackline/consign-backend/internal/inventory"
	"github.com/rackline/consign-backend/internal/model"
	"github.com/rackline/consign-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// NewItemParams carries a seller submission. New items always start pending.
type NewItemParams struct {
	Title       string
	Description string
	Category    string
	Brand       string
	Condition   string
	Size        string
	Color       string
	Material    string
	Gender      string
	Price       float64
	SellerID    string
	SellerName  string
	SellerEmail string
	ImageURLs   []string
}

type Facets struct {
	Categories []string
	Brands     []string
	Conditions []string
}

type ItemService interface {
	Create(ctx context.Context, p NewItemParams) (*model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	Search(ctx context.Context, criteria inventory.Criteria, sortKey inventory.SortKey) ([]model.Item, error)
	Grouped(ctx context.Context, criteria inventory.Criteria, sortKey inventory.SortKey) ([]inventory.Group, error)
	Facets(ctx context.Context) (*Facets, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, p NewItemParams) (*model.Item, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || len(p.Title) > 120 {
		return nil, errors.New("invalid title")
	}
	if p.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	if p.SellerID == "" {
		return nil, errors.New("seller is required")
	}
	for _, u := range p.ImageURLs {
		if strings.HasPrefix(strings.TrimSpace(u), "data:") {
			return nil, errors.New("image must be a URL, not data URI")
		}
	}

	item := &model.Item{
		ID:          uuid.NewString(),
		Title:       p.Title,
		Description: strings.TrimSpace(p.Description),
		Category:    strings.TrimSpace(p.Category),
		Brand:       strings.TrimSpace(p.Brand),
		Condition:   strings.TrimSpace(p.Condition),
		Size:        strings.TrimSpace(p.Size),
		Color:       strings.TrimSpace(p.Color),
		Material:    strings.TrimSpace(p.Material),
		Gender:      strings.TrimSpace(p.Gender),
		Price:       p.Price,
		SellerID:    p.SellerID,
		SellerName:  strings.TrimSpace(p.SellerName),
		SellerEmail: strings.TrimSpace(p.SellerEmail),
		Status:      model.StatusPending,
	}
	for i, u := range p.ImageURLs {
		item.Images = append(item.Images, model.ItemImage{
			ItemID:   item.ID,
			ImageURL: strings.TrimSpace(u),
			Position: i,
		})
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) Search(ctx context.Context, criteria inventory.Criteria, sortKey inventory.SortKey) ([]model.Item, error) {
	snapshot, err := s.repo.Snapshot(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return inventory.FilterAndSort(snapshot, criteria, sortKey), nil
}

func (s *itemService) Grouped(ctx context.Context, criteria inventory.Criteria, sortKey inventory.SortKey) ([]inventory.Group, error) {
	items, err := s.Search(ctx, criteria, sortKey)
	if err != nil {
		return nil, err
	}
	return inventory.GroupBySimilarity(items)
}

func (s *itemService) Facets(ctx context.Context) (*Facets, error) {
	categories, brands, conditions, err := s.repo.Facets(ctx)
	if err != nil {
		return nil, err
	}
	return &Facets{Categories: categories, Brands: brands, Conditions: conditions}, nil
}
