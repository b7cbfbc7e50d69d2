package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/pkg/idx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

type ClassService struct {
	Store     store.Store
	Allocator *JoinCodeAllocator
	Now       func() time.Time
}

// CreateClass creates a class owned by teacherID under a fresh join code.
func (s *ClassService) CreateClass(ctx context.Context, teacherID, name string) (domain.Class, error) {
	name, err := validateText(name, 100, ErrInvalidClassName)
	if err != nil {
		return domain.Class{}, err
	}

	now := clock(s.Now)
	class := domain.Class{
		Name:      name,
		TeacherID: teacherID,
		CreatedAt: now,
	}

	// A unique violation may be on the id as well as the join code, so each
	// attempt gets a fresh id.
	code, err := s.Allocator.AllocateAndCreate(ctx, func(ctx context.Context, code string) error {
		class.ID = idx.NewAt(now).String()
		class.JoinCode = code
		return s.Store.Classes().CreateClass(ctx, class)
	})
	if err != nil {
		return domain.Class{}, err
	}
	class.JoinCode = code

	slogx.FromContext(ctx).Info("class created", "class_id", class.ID, "teacher_id", teacherID)
	return class, nil
}

// JoinClass enrols studentID in the class that owns code.
func (s *ClassService) JoinClass(ctx context.Context, studentID, code string) (domain.Class, error) {
	code, err := NormalizeJoinCode(code)
	if err != nil {
		return domain.Class{}, err
	}

	class, err := s.Store.Classes().GetClassByJoinCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Class{}, ErrUnknownJoinCode
	}
	if err != nil {
		return domain.Class{}, err
	}

	err = s.Store.Classes().AddEnrollment(ctx, domain.Enrollment{
		ClassID:   class.ID,
		StudentID: studentID,
		JoinedAt:  clock(s.Now),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Class{}, ErrAlreadyEnrolled
	}
	if err != nil {
		return domain.Class{}, fmt.Errorf("enrol: %w", err)
	}

	slogx.FromContext(ctx).Info("student joined class", "class_id", class.ID, "student_id", studentID)
	return class, nil
}

// GetClass returns the class if who may see it: its teacher, an enrolled
// student, or an admin.
func (s *ClassService) GetClass(ctx context.Context, who domain.Identity, classID string) (domain.Class, error) {
	class, err := s.Store.Classes().GetClassByID(ctx, classID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Class{}, ErrClassNotFound
	}
	if err != nil {
		return domain.Class{}, err
	}

	if err := s.checkMember(ctx, who, class); err != nil {
		return domain.Class{}, err
	}
	return class, nil
}

// ListClasses returns every class. Admin only; the route enforces that.
func (s *ClassService) ListClasses(ctx context.Context) ([]domain.Class, error) {
	return s.Store.Classes().ListClasses(ctx)
}

// Leaderboard ranks the class's students by points.
func (s *ClassService) Leaderboard(ctx context.Context, who domain.Identity, classID string) ([]domain.LeaderboardEntry, error) {
	if _, err := s.GetClass(ctx, who, classID); err != nil {
		return nil, err
	}
	return s.Store.Classes().Leaderboard(ctx, classID)
}

func (s *ClassService) checkMember(ctx context.Context, who domain.Identity, class domain.Class) error {
	switch who.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleTeacher:
		if class.TeacherID == who.SubjectID {
			return nil
		}
	case domain.RoleStudent:
		ok, err := s.Store.Classes().IsEnrolled(ctx, class.ID, who.SubjectID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return ErrNotClassMember
}
