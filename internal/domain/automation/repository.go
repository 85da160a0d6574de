// Package automation provides the playbook facade: seeded templates,
// playbook instances created from them, and run history.
package automation

import (
	"context"
	"time"

	"opscore/internal/core/apperror"
	"opscore/internal/core/clone"
	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
	"opscore/pkg/logger"
)

// Repository is the automation facade over the shared store.
type Repository struct {
	store *state.Store
}

// NewRepository creates the automation repository.
func NewRepository(store *state.Store) *Repository {
	return &Repository{store: store}
}

// ListTemplates returns all playbook templates.
func (r *Repository) ListTemplates(ctx context.Context) []entity.PlaybookTemplate {
	var out []entity.PlaybookTemplate
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Automation.Templates)
	})
	return out
}

// ListPlaybooks returns all playbooks.
func (r *Repository) ListPlaybooks(ctx context.Context) []entity.Playbook {
	var out []entity.Playbook
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Automation.Playbooks)
	})
	return out
}

// ListRuns returns all playbook runs.
func (r *Repository) ListRuns(ctx context.Context) []entity.PlaybookRun {
	var out []entity.PlaybookRun
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Automation.Runs)
	})
	return out
}

// CreatePlaybookFromTemplate instantiates a playbook from a template.
func (r *Repository) CreatePlaybookFromTemplate(ctx context.Context, templateID, name string) (entity.Playbook, error) {
	var out entity.Playbook
	err := r.store.Update(func(snap *state.Snapshot) error {
		for _, tpl := range snap.Automation.Templates {
			if tpl.ID == templateID {
				if name == "" {
					name = tpl.Name
				}
				out = entity.Playbook{
					ID:         id.New("pb"),
					TemplateID: tpl.ID,
					Name:       name,
					Enabled:    true,
				}
				snap.Automation.Playbooks = append(snap.Automation.Playbooks, out)
				return nil
			}
		}
		return apperror.NewNotFound("Template", templateID)
	})
	if err != nil {
		return entity.Playbook{}, err
	}
	return clone.Of(out), nil
}

// RunPlaybook appends a run record and touches the playbook's LastRunAt.
// Runs always succeed; there is no executor behind them.
func (r *Repository) RunPlaybook(ctx context.Context, playbookID string) (entity.PlaybookRun, error) {
	var out entity.PlaybookRun
	err := r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.Automation.Playbooks {
			pb := &snap.Automation.Playbooks[i]
			if pb.ID == playbookID {
				now := time.Now().UTC()
				pb.LastRunAt = &now
				out = entity.PlaybookRun{
					ID:         id.New("run"),
					PlaybookID: pb.ID,
					Status:     "succeeded",
					StartedAt:  now,
				}
				snap.Automation.Runs = append(snap.Automation.Runs, out)
				return nil
			}
		}
		return apperror.NewNotFound("Playbook", playbookID)
	})
	if err != nil {
		return entity.PlaybookRun{}, err
	}

	logger.Info(ctx, "playbook run recorded", "playbook_id", playbookID, "run_id", out.ID)
	return clone.Of(out), nil
}

// SetPlaybookEnabled toggles a playbook.
func (r *Repository) SetPlaybookEnabled(ctx context.Context, playbookID string, enabled bool) (entity.Playbook, error) {
	var out entity.Playbook
	err := r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.Automation.Playbooks {
			if snap.Automation.Playbooks[i].ID == playbookID {
				snap.Automation.Playbooks[i].Enabled = enabled
				out = snap.Automation.Playbooks[i]
				return nil
			}
		}
		return apperror.NewNotFound("Playbook", playbookID)
	})
	if err != nil {
		return entity.Playbook{}, err
	}
	return clone.Of(out), nil
}
