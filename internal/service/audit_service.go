package service

import (
	"context"
	"log/slog"

	"github.com/rackline/consign-backend/internal/actorctx"
	"github.com/rackline/consign-backend/internal/model"
	"github.com/rackline/consign-backend/internal/repository"
)

type AuditService interface {
	Record(ctx context.Context, action string, item *model.Item, detail string)
	List(ctx context.Context, itemID string, limit int) ([]model.AuditEntry, error)
}

type auditService struct {
	repo repository.AuditRepository
	log  *slog.Logger
}

func NewAuditService(repo repository.AuditRepository, log *slog.Logger) AuditService {
	if log == nil {
		log = slog.Default()
	}
	return &auditService{repo: repo, log: log}
}

// Record is best-effort; failures are logged but never break the main flow.
func (s *auditService) Record(ctx context.Context, action string, item *model.Item, detail string) {
	if action == "" || item == nil {
		return
	}
	entry := &model.AuditEntry{
		ItemID:    item.ID,
		ItemTitle: item.Title,
		Action:    action,
		Detail:    detail,
		Actor:     actorctx.Actor(ctx),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error("can't persist audit entry",
			slog.String("action", action),
			slog.String("item_id", item.ID),
			slog.Any("error", err))
	}
	s.log.Info("inventory mutation",
		slog.String("action", action),
		slog.String("item_id", item.ID),
		slog.String("item_title", item.Title),
		slog.String("detail", detail),
		slog.String("actor", entry.Actor),
		slog.String("rid", actorctx.RID(ctx)))
}

func (s *auditService) List(ctx context.Context, itemID string, limit int) ([]model.AuditEntry, error) {
	if itemID != "" {
		return s.repo.ListByItem(ctx, itemID, limit)
	}
	return s.repo.ListRecent(ctx, limit)
}
