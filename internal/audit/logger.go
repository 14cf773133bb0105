// internal/audit/logger.go
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/questdeckhq/questdeck/internal/model"
)

// Logger defines the interface for auditing administrative operations on
// organizations and curation grants. Curation auditing is best-effort: a
// failed audit write never fails the operation it describes.
type Logger interface {
	// LogOrganizationCreate records a new organization.
	LogOrganizationCreate(ctx context.Context, org *model.Organization, actor uuid.UUID)

	// LogPolicyChange records a visibility policy transition.
	LogPolicyChange(ctx context.Context, orgID uuid.UUID, from, to model.VisibilityPolicy, actor uuid.UUID)

	// LogOrganizationDeactivate records a soft-deactivation.
	LogOrganizationDeactivate(ctx context.Context, orgID uuid.UUID, actor uuid.UUID)

	// LogGrant records a curation grant.
	LogGrant(ctx context.Context, orgID, questID uuid.UUID, actor uuid.UUID)

	// LogRevoke records a curation grant revocation.
	LogRevoke(ctx context.Context, orgID, questID uuid.UUID, actor uuid.UUID)
}

// SlogLogger writes audit events to the structured application log.
type SlogLogger struct {
	log *slog.Logger
}

func NewSlogLogger(log *slog.Logger) *SlogLogger {
	return &SlogLogger{log: log}
}

func (l *SlogLogger) LogOrganizationCreate(ctx context.Context, org *model.Organization, actor uuid.UUID) {
	l.log.InfoContext(ctx, "organization created",
		"org_id", org.ID,
		"slug", org.Slug,
		"policy", org.Policy,
		"actor", actor,
	)
}

func (l *SlogLogger) LogPolicyChange(ctx context.Context, orgID uuid.UUID, from, to model.VisibilityPolicy, actor uuid.UUID) {
	l.log.InfoContext(ctx, "organization policy changed",
		"org_id", orgID,
		"from", from,
		"to", to,
		"actor", actor,
	)
}

func (l *SlogLogger) LogOrganizationDeactivate(ctx context.Context, orgID uuid.UUID, actor uuid.UUID) {
	l.log.InfoContext(ctx, "organization deactivated",
		"org_id", orgID,
		"actor", actor,
	)
}

func (l *SlogLogger) LogGrant(ctx context.Context, orgID, questID uuid.UUID, actor uuid.UUID) {
	l.log.InfoContext(ctx, "curation grant created",
		"org_id", orgID,
		"quest_id", questID,
		"actor", actor,
	)
}

func (l *SlogLogger) LogRevoke(ctx context.Context, orgID, questID uuid.UUID, actor uuid.UUID) {
	l.log.InfoContext(ctx, "curation grant revoked",
		"org_id", orgID,
		"quest_id", questID,
		"actor", actor,
	)
}
