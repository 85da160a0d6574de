// Package workforce provides the employee and shift facade.
package workforce

import (
	"context"

	"opscore/internal/core/apperror"
	"opscore/internal/core/clone"
	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
)

// Repository is the workforce facade over the shared store.
type Repository struct {
	store *state.Store
}

// NewRepository creates the workforce repository.
func NewRepository(store *state.Store) *Repository {
	return &Repository{store: store}
}

// ListEmployees returns all employees.
func (r *Repository) ListEmployees(ctx context.Context) []entity.Employee {
	var out []entity.Employee
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Workforce.Employees)
	})
	return out
}

// ListShifts returns all shift assignments.
func (r *Repository) ListShifts(ctx context.Context) []entity.Shift {
	var out []entity.Shift
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Workforce.Shifts)
	})
	return out
}

// UpsertEmployee replaces the employee with a matching id, or assigns a new
// id and appends.
func (r *Repository) UpsertEmployee(ctx context.Context, emp entity.Employee) entity.Employee {
	_ = r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.Workforce.Employees {
			if snap.Workforce.Employees[i].ID == emp.ID {
				snap.Workforce.Employees[i] = emp
				return nil
			}
		}
		emp.ID = id.New("emp")
		snap.Workforce.Employees = append(snap.Workforce.Employees, emp)
		return nil
	})
	return emp
}

// AssignShift appends a shift for an existing employee.
func (r *Repository) AssignShift(ctx context.Context, shift entity.Shift) (entity.Shift, error) {
	shift.ID = id.New("shf")
	err := r.store.Update(func(snap *state.Snapshot) error {
		for _, emp := range snap.Workforce.Employees {
			if emp.ID == shift.EmployeeID {
				snap.Workforce.Shifts = append(snap.Workforce.Shifts, shift)
				return nil
			}
		}
		return apperror.NewNotFound("Employee", shift.EmployeeID)
	})
	if err != nil {
		return entity.Shift{}, err
	}
	return shift, nil
}
