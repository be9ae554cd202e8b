package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dediamond1/mechanic/ent"
	"github.com/dediamond1/mechanic/ent/appointment"
	"github.com/dediamond1/mechanic/ent/employee"
	"github.com/dediamond1/mechanic/internal/domain"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
	"github.com/dediamond1/mechanic/internal/pkg/logger"
)

// EmployeeService owns staff records. Emails are unique and the role
// defaults to plain employee when the input leaves it blank.
type EmployeeService struct {
	client *ent.Client
}

func NewEmployeeService(client *ent.Client) *EmployeeService {
	return &EmployeeService{client: client}
}

type EmployeeFilter struct {
	Role    string
	Search  string
	Page    int
	PerPage int
}

func (s *EmployeeService) Create(ctx context.Context, in domain.EmployeeInput) (*ent.Employee, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.client.Employee.Query().Where(employee.EmailEQ(in.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking employee email: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict(apperrors.CodeEmployeeEmailExists,
			"an employee with this email already exists").WithParam("email", in.Email)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating employee id: %w", err)
	}

	create := s.client.Employee.Create().
		SetID(id.String()).
		SetName(in.Name).
		SetEmail(in.Email)
	if in.Role != "" {
		create.SetRole(employee.Role(in.Role))
	}
	if in.Phone != "" {
		create.SetPhone(in.Phone)
	}

	e, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeEmployeeEmailExists,
				"an employee with this email already exists").WithParam("email", in.Email)
		}
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	logger.L().Info("employee created", zap.String("employee_id", e.ID), zap.String("role", string(e.Role)))
	return e, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*ent.Employee, error) {
	e, err := s.client.Employee.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFoundf(id)
		}
		return nil, fmt.Errorf("fetching employee %s: %w", id, err)
	}
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context, f EmployeeFilter) ([]*ent.Employee, int, error) {
	q := s.client.Employee.Query()
	if f.Role != "" {
		q = q.Where(employee.RoleEQ(employee.Role(f.Role)))
	}
	if f.Search != "" {
		q = q.Where(employee.Or(
			employee.NameContainsFold(f.Search),
			employee.EmailContainsFold(f.Search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting employees: %w", err)
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	items, err := q.
		Order(ent.Asc(employee.FieldName)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing employees: %w", err)
	}
	return items, total, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, in domain.EmployeeInput) (*ent.Employee, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	taken, err := s.client.Employee.Query().
		Where(employee.EmailEQ(in.Email), employee.IDNEQ(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking employee email: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeEmployeeEmailExists,
			"an employee with this email already exists").WithParam("email", in.Email)
	}

	update := s.client.Employee.UpdateOneID(id).
		SetName(in.Name).
		SetEmail(in.Email)
	if in.Role != "" {
		update.SetRole(employee.Role(in.Role))
	}
	if in.Phone != "" {
		update.SetPhone(in.Phone)
	} else {
		update.ClearPhone()
	}

	e, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFoundf(id)
		}
		return nil, fmt.Errorf("updating employee %s: %w", id, err)
	}
	return e, nil
}

// Delete refuses to remove an employee who still has appointments on
// the calendar.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if PolicyFor("employee.appointments") == PolicyRestrict {
		n, err := s.client.Appointment.Query().
			Where(appointment.HasEmployeeWith(employee.IDEQ(id))).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("counting employee appointments: %w", err)
		}
		if n > 0 {
			return apperrors.Conflict(apperrors.CodeEmployeeHasAppointments,
				"employee has appointments and cannot be deleted").
				WithParam("appointment_count", n)
		}
	}

	if err := s.client.Employee.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrEmployeeNotFoundf(id)
		}
		return fmt.Errorf("deleting employee %s: %w", id, err)
	}
	logger.L().Info("employee deleted", zap.String("employee_id", id))
	return nil
}
