package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/bookbarn/app/internal/domain/cart"
)

// fakeCartRepository keeps one line per (email, book) pair, mirroring the
// unique key the real table enforces.
type fakeCartRepository struct {
	nextID int64
	lines  map[string]map[int64]*domcart.Line // email -> bookID -> line
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{lines: make(map[string]map[int64]*domcart.Line)}
}

func (f *fakeCartRepository) AddOrUpdate(ctx context.Context, line domcart.Line) (*domcart.Line, error) {
	if f.lines[line.Email] == nil {
		f.lines[line.Email] = make(map[int64]*domcart.Line)
	}
	if existing, ok := f.lines[line.Email][line.BookID]; ok {
		existing.Count = line.Count
		existing.Price = line.Price
		existing.Title = line.Title
		copied := *existing
		return &copied, nil
	}
	f.nextID++
	line.ID = f.nextID
	f.lines[line.Email][line.BookID] = &line
	copied := line
	return &copied, nil
}

func (f *fakeCartRepository) SetCount(ctx context.Context, email string, lineID int64, count int64) error {
	for _, line := range f.lines[email] {
		if line.ID == lineID {
			line.Count = count
			return nil
		}
	}
	return domcart.ErrLineNotFound
}

func (f *fakeCartRepository) Remove(ctx context.Context, email string, lineID int64) error {
	for bookID, line := range f.lines[email] {
		if line.ID == lineID {
			delete(f.lines[email], bookID)
			return nil
		}
	}
	return domcart.ErrLineNotFound
}

func (f *fakeCartRepository) ListFor(ctx context.Context, email string) ([]domcart.Line, error) {
	var result []domcart.Line
	for _, line := range f.lines[email] {
		result = append(result, *line)
	}
	return result, nil
}

func (f *fakeCartRepository) ClearFor(ctx context.Context, email string) error {
	delete(f.lines, email)
	return nil
}

func TestAdd_NewLine(t *testing.T) {
	svc := NewService(newFakeCartRepository())

	line, err := svc.Add(context.Background(), domcart.Line{
		Email: "a@b.com", BookID: 10, Title: "Calculus", Price: 500, Count: 2,
	})

	require.NoError(t, err)
	require.NotZero(t, line.ID)
	require.Equal(t, int64(2), line.Count)
}

func TestAdd_ExistingBook_OverwritesCount(t *testing.T) {
	repo := newFakeCartRepository()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 10, Count: 2})
	require.NoError(t, err)

	// A later add for the same book wins outright; counts are not summed.
	line, err := svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 10, Count: 5})
	require.NoError(t, err)
	require.Equal(t, int64(5), line.Count)

	lines, err := svc.List(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Len(t, lines, 1, "no duplicate line per (owner, book) pair")
	require.Equal(t, int64(5), lines[0].Count)
}

func TestAdd_DefaultsCountToOne(t *testing.T) {
	svc := NewService(newFakeCartRepository())

	line, err := svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 10})

	require.NoError(t, err)
	require.Equal(t, int64(1), line.Count)
}

func TestSetCount_RejectsNonPositive(t *testing.T) {
	repo := newFakeCartRepository()
	svc := NewService(repo)

	added, err := svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 10, Count: 2})
	require.NoError(t, err)

	for _, count := range []int64{0, -1} {
		err := svc.SetCount(context.Background(), "a@b.com", added.ID, count)
		require.ErrorIs(t, err, domcart.ErrInvalidQuantity)
	}

	lines, _ := svc.List(context.Background(), "a@b.com")
	require.Equal(t, int64(2), lines[0].Count, "rejected writes must not change the line")
}

func TestSetCount_UnknownLine(t *testing.T) {
	svc := NewService(newFakeCartRepository())

	err := svc.SetCount(context.Background(), "a@b.com", 999, 3)

	require.ErrorIs(t, err, domcart.ErrLineNotFound)
}

func TestRemove_TwiceSurfacesNotFound(t *testing.T) {
	repo := newFakeCartRepository()
	svc := NewService(repo)

	added, err := svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 10, Count: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "a@b.com", added.ID))
	require.ErrorIs(t, svc.Remove(context.Background(), "a@b.com", added.ID), domcart.ErrLineNotFound)
}

func TestClear_AlwaysLeavesEmptyCart(t *testing.T) {
	repo := newFakeCartRepository()
	svc := NewService(repo)

	// Clearing an already empty cart succeeds.
	require.NoError(t, svc.Clear(context.Background(), "a@b.com"))

	_, err := svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 10, Count: 1})
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 11, Count: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), "a@b.com"))

	lines, err := svc.List(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestOwnersIsolated(t *testing.T) {
	svc := NewService(newFakeCartRepository())

	_, err := svc.Add(context.Background(), domcart.Line{Email: "a@b.com", BookID: 10, Count: 1})
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), domcart.Line{Email: "c@d.com", BookID: 10, Count: 4})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), "a@b.com"))

	other, err := svc.List(context.Background(), "c@d.com")
	require.NoError(t, err)
	require.Len(t, other, 1)
	require.Equal(t, int64(4), other[0].Count)
}
