// Package passport provides the product passport facade: traceability
// records with an append-only event trail.
package passport

import (
	"context"
	"time"

	"opscore/internal/core/apperror"
	"opscore/internal/core/clone"
	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
)

// Repository is the passport facade over the shared store.
type Repository struct {
	store *state.Store
}

// NewRepository creates the passport repository.
func NewRepository(store *state.Store) *Repository {
	return &Repository{store: store}
}

// ListPassports returns all product passports.
func (r *Repository) ListPassports(ctx context.Context) []entity.ProductPassport {
	var out []entity.ProductPassport
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Passports.Passports)
	})
	return out
}

// CreatePassport opens a passport with a generated id and an initial
// "issued" event.
func (r *Repository) CreatePassport(ctx context.Context, pp entity.ProductPassport) entity.ProductPassport {
	now := time.Now().UTC()
	pp.ID = id.New("pp")
	pp.IssuedAt = now
	pp.Events = append(clone.Slice(pp.Events), entity.PassportEvent{At: now, Kind: "issued"})
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.Passports.Passports = append(snap.Passports.Passports, clone.Of(pp))
		return nil
	})
	return clone.Of(pp)
}

// AppendEvent adds a lifecycle event to an existing passport.
func (r *Repository) AppendEvent(ctx context.Context, passportID, kind, note string) (entity.ProductPassport, error) {
	var out entity.ProductPassport
	err := r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.Passports.Passports {
			pp := &snap.Passports.Passports[i]
			if pp.ID == passportID {
				pp.Events = append(pp.Events, entity.PassportEvent{
					At:   time.Now().UTC(),
					Kind: kind,
					Note: note,
				})
				out = *pp
				return nil
			}
		}
		return apperror.NewNotFound("Passport", passportID)
	})
	if err != nil {
		return entity.ProductPassport{}, err
	}
	return clone.Of(out), nil
}
