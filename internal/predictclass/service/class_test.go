package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/domain"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
)

func newClassService(s store.Store) *service.ClassService {
	return &service.ClassService{
		Store:     s,
		Allocator: &service.JoinCodeAllocator{Classes: s.Classes()},
	}
}

func TestCreateAndJoinClass(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newClassService(s)

	teacher := register(t, s, "tess", domain.RoleTeacher)
	student := register(t, s, "sam", domain.RoleStudent)
	outsider := register(t, s, "olly", domain.RoleStudent)

	class, err := svc.CreateClass(ctx, teacher.ID, "  Year 9 Science ")
	require.NoError(t, err)
	require.Equal(t, "Year 9 Science", class.Name)
	require.Regexp(t, joinCodeRE, class.JoinCode)

	_, err = svc.CreateClass(ctx, teacher.ID, "  ")
	require.ErrorIs(t, err, service.ErrInvalidClassName)

	joined, err := svc.JoinClass(ctx, student.ID, " "+class.JoinCode+" ")
	require.NoError(t, err)
	require.Equal(t, class.ID, joined.ID)

	_, err = svc.JoinClass(ctx, student.ID, class.JoinCode)
	require.ErrorIs(t, err, service.ErrAlreadyEnrolled)

	_, err = svc.JoinClass(ctx, student.ID, "ZZZZZ!")
	require.ErrorIs(t, err, service.ErrInvalidJoinCode)

	unknown := "AAAAAA"
	if class.JoinCode == unknown {
		unknown = "BBBBBB"
	}
	_, err = svc.JoinClass(ctx, student.ID, unknown)
	require.ErrorIs(t, err, service.ErrUnknownJoinCode)

	t.Run("visibility", func(t *testing.T) {
		for _, who := range []domain.Identity{
			{SubjectID: teacher.ID, Role: domain.RoleTeacher},
			{SubjectID: student.ID, Role: domain.RoleStudent},
			{SubjectID: "anyone", Role: domain.RoleAdmin},
		} {
			_, err := svc.GetClass(ctx, who, class.ID)
			require.NoError(t, err, "%+v", who)
		}

		_, err := svc.GetClass(ctx, domain.Identity{SubjectID: outsider.ID, Role: domain.RoleStudent}, class.ID)
		require.ErrorIs(t, err, service.ErrNotClassMember)

		_, err = svc.GetClass(ctx, domain.Identity{SubjectID: "other-teacher", Role: domain.RoleTeacher}, class.ID)
		require.ErrorIs(t, err, service.ErrNotClassMember)

		_, err = svc.GetClass(ctx, domain.Identity{SubjectID: teacher.ID, Role: domain.RoleTeacher}, "missing")
		require.ErrorIs(t, err, service.ErrClassNotFound)
	})

	all, err := svc.ListClasses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCreateClassRetriesTakenCode(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	teacher := register(t, s, "tess", domain.RoleTeacher)

	gen, calls := sequence("AAAAAA", "AAAAAA", "BBBBBB")
	svc := &service.ClassService{
		Store:     s,
		Allocator: &service.JoinCodeAllocator{Classes: s.Classes(), Generate: gen},
	}

	first, err := svc.CreateClass(ctx, teacher.ID, "First")
	require.NoError(t, err)
	require.Equal(t, "AAAAAA", first.JoinCode)

	second, err := svc.CreateClass(ctx, teacher.ID, "Second")
	require.NoError(t, err)
	require.Equal(t, "BBBBBB", second.JoinCode)
	require.Equal(t, 3, *calls)
}

// lockedSequence is sequence for callers on more than one goroutine.
func lockedSequence(codes ...string) (func() (string, error), func() int) {
	var mu sync.Mutex
	gen, calls := sequence(codes...)
	return func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return gen()
		}, func() int {
			mu.Lock()
			defer mu.Unlock()
			return *calls
		}
}

func TestCreateClassConcurrentSameCode(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	teacher := register(t, s, "tess", domain.RoleTeacher)

	gen, draws := lockedSequence("AAAAAA", "AAAAAA", "BBBBBB")
	svc := &service.ClassService{
		Store:     s,
		Allocator: &service.JoinCodeAllocator{Classes: s.Classes(), Generate: gen},
	}

	var (
		wg    sync.WaitGroup
		codes [2]string
		errs  [2]error
	)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := svc.CreateClass(ctx, teacher.ID, "Class")
			codes[i], errs[i] = c.JoinCode, err
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.ElementsMatch(t, []string{"AAAAAA", "BBBBBB"}, codes[:])
	require.Equal(t, 3, draws())
}

// clashingClasses fails the first insert as a duplicate and records the
// ids it was asked to insert.
type clashingClasses struct {
	store.Classes
	ids []string
}

func (c *clashingClasses) CreateClass(ctx context.Context, class domain.Class) error {
	c.ids = append(c.ids, class.ID)
	if len(c.ids) == 1 {
		return store.ErrAlreadyExists
	}
	return c.Classes.CreateClass(ctx, class)
}

type clashingStore struct {
	store.Store
	classes *clashingClasses
}

func (s clashingStore) Classes() store.Classes { return s.classes }

func TestCreateClassFreshIDPerAttempt(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	teacher := register(t, s, "tess", domain.RoleTeacher)

	classes := &clashingClasses{Classes: s.Classes()}
	gen, _ := sequence("AAAAAA", "BBBBBB")
	svc := &service.ClassService{
		Store:     clashingStore{Store: s, classes: classes},
		Allocator: &service.JoinCodeAllocator{Classes: s.Classes(), Generate: gen},
	}

	class, err := svc.CreateClass(ctx, teacher.ID, "Retry")
	require.NoError(t, err)
	require.Equal(t, "BBBBBB", class.JoinCode)
	require.Len(t, classes.ids, 2)
	require.NotEqual(t, classes.ids[0], classes.ids[1])
	require.Equal(t, classes.ids[1], class.ID)

	got, err := s.Classes().GetClassByID(ctx, class.ID)
	require.NoError(t, err)
	require.Equal(t, "BBBBBB", got.JoinCode)
}
