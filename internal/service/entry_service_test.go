package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/mock"
	"github.com/MKhiriev/go-med-reminder/internal/store"
	"github.com/MKhiriev/go-med-reminder/internal/validators"
	"github.com/MKhiriev/go-med-reminder/models"
)

const owner = "ann@example.com"

func newTestEntrySvc(t *testing.T, ctrl *gomock.Controller) (*entryService, *mock.MockMedicineRepository, *mock.MockReminderScheduler) {
	t.Helper()
	repo := mock.NewMockMedicineRepository(ctrl)
	reminders := mock.NewMockReminderScheduler(ctrl)
	return NewEntryService(repo, reminders, logger.Nop()).(*entryService), repo, reminders
}

func fillDraft(s EntryService) {
	s.SetName("Paracetamol")
	s.SetDose("500mg")
	s.SetFrequency("3x a day")
	s.SetTimeOfDay("09:15")
}

// ── Draft ────────────────────────────────────────────────────────────────────

func TestEntryService_NewDraftDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestEntrySvc(t, ctrl)

	assert.Equal(t, models.Draft{TimeOfDay: "08:00"}, s.Draft())
	assert.Zero(t, s.EditingID())
}

func TestEntryService_Setters(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestEntrySvc(t, ctrl)

	fillDraft(s)
	assert.Equal(t, models.Draft{Name: "Paracetamol", Dose: "500mg", Frequency: "3x a day", TimeOfDay: "09:15"}, s.Draft())
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestEntryService_Save_CreateInsertsThenSchedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, reminders := newTestEntrySvc(t, ctrl)
	ctx := context.Background()
	fillDraft(s)

	fireAt := time.Date(2026, 1, 1, 9, 15, 0, 0, time.UTC)
	gomock.InOrder(
		repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, m models.Medicine) (int64, error) {
				assert.Zero(t, m.ID)
				assert.Equal(t, owner, m.OwnerEmail)
				assert.Equal(t, "Paracetamol", m.Name)
				return 11, nil
			},
		),
		reminders.EXPECT().Schedule(ctx, "medicine-11", "Time to take: Paracetamol", models.TimeOfDay("09:15")).Return(fireAt, nil),
	)

	res, err := s.Save(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Medicine.ID)
	assert.Equal(t, fireAt, res.FireAt)
	assert.NoError(t, res.ReminderErr)

	// reset for the next entry
	assert.Equal(t, models.NewDraft(), s.Draft())
	assert.Zero(t, s.EditingID())
}

func TestEntryService_Save_EditUpdatesKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, reminders := newTestEntrySvc(t, ctrl)
	ctx := context.Background()

	stored := models.Medicine{ID: 5, Name: "Zinc", Dose: "1", Frequency: "daily", TimeOfDay: "20:00", OwnerEmail: owner}
	repo.EXPECT().GetByID(ctx, int64(5)).Return(stored, nil)

	require.NoError(t, s.LoadIfEditing(ctx, 5))
	assert.Equal(t, int64(5), s.EditingID())
	assert.Equal(t, "Zinc", s.Draft().Name)

	s.SetDose("2")

	gomock.InOrder(
		repo.EXPECT().Update(ctx, models.Medicine{ID: 5, Name: "Zinc", Dose: "2", Frequency: "daily", TimeOfDay: "20:00", OwnerEmail: owner}).Return(nil),
		reminders.EXPECT().Schedule(ctx, "medicine-5", "Time to take: Zinc", models.TimeOfDay("20:00")).Return(time.Now(), nil),
	)

	res, err := s.Save(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Medicine.ID)
	assert.Zero(t, s.EditingID())
}

func TestEntryService_Save_StoresPaddedTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, reminders := newTestEntrySvc(t, ctrl)
	ctx := context.Background()
	fillDraft(s)
	s.SetTimeOfDay("8:30")

	repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.Medicine) (int64, error) {
			assert.Equal(t, models.TimeOfDay("08:30"), m.TimeOfDay)
			return 3, nil
		},
	)
	reminders.EXPECT().Schedule(ctx, "medicine-3", gomock.Any(), models.TimeOfDay("08:30")).Return(time.Now(), nil)

	res, err := s.Save(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, models.TimeOfDay("08:30"), res.Medicine.TimeOfDay)
}

func TestEntryService_Save_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s EntryService)
		wantErr error
	}{
		{name: "blank name", mutate: func(s EntryService) { s.SetName("  ") }, wantErr: validators.ErrEmptyName},
		{name: "empty dose", mutate: func(s EntryService) { s.SetDose("") }, wantErr: validators.ErrEmptyDose},
		{name: "empty frequency", mutate: func(s EntryService) { s.SetFrequency("") }, wantErr: validators.ErrEmptyFrequency},
		{name: "empty time", mutate: func(s EntryService) { s.SetTimeOfDay("") }, wantErr: validators.ErrEmptyTimeOfDay},
		{name: "malformed time", mutate: func(s EntryService) { s.SetTimeOfDay("9pm") }, wantErr: validators.ErrInvalidTimeOfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, _, _ := newTestEntrySvc(t, ctrl)
			fillDraft(s)
			tt.mutate(s)
			before := s.Draft()

			// no store or scheduler calls expected
			_, err := s.Save(context.Background(), owner)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, s.Draft())
		})
	}
}

func TestEntryService_Save_StorageErrorSkipsScheduling(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, _ := newTestEntrySvc(t, ctrl)
	fillDraft(s)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))

	_, err := s.Save(context.Background(), owner)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "Paracetamol", s.Draft().Name)
}

func TestEntryService_Save_UpdateMissingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, _ := newTestEntrySvc(t, ctrl)
	s.editingID = 9
	fillDraft(s)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(store.ErrMedicineNotFound)

	_, err := s.Save(context.Background(), owner)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, store.ErrMedicineNotFound)
}

func TestEntryService_Save_PermissionDeniedStillSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, reminders := newTestEntrySvc(t, ctrl)
	fillDraft(s)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	reminders.EXPECT().Schedule(gomock.Any(), "medicine-3", gomock.Any(), gomock.Any()).
		Return(time.Time{}, ErrSchedulingPermission)

	res, err := s.Save(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Medicine.ID)
	assert.ErrorIs(t, res.ReminderErr, ErrSchedulingPermission)
	assert.True(t, res.FireAt.IsZero())
	assert.Equal(t, models.NewDraft(), s.Draft())
}

func TestEntryService_Save_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestEntrySvc(t, ctrl)
	fillDraft(s)

	_, err := s.Save(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── LoadIfEditing ────────────────────────────────────────────────────────────

func TestEntryService_LoadIfEditing_NonPositiveIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestEntrySvc(t, ctrl)

	require.NoError(t, s.LoadIfEditing(context.Background(), 0))
	require.NoError(t, s.LoadIfEditing(context.Background(), -1))
	assert.Equal(t, models.NewDraft(), s.Draft())
}

func TestEntryService_LoadIfEditing_OnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, _ := newTestEntrySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(4)).
		Return(models.Medicine{ID: 4, Name: "Iron", Dose: "1", Frequency: "daily", TimeOfDay: "07:00"}, nil).
		Times(1)

	require.NoError(t, s.LoadIfEditing(ctx, 4))
	s.SetName("Iron (edited)")

	// repeated and different ids leave the loaded draft alone
	require.NoError(t, s.LoadIfEditing(ctx, 4))
	require.NoError(t, s.LoadIfEditing(ctx, 8))
	assert.Equal(t, "Iron (edited)", s.Draft().Name)
	assert.Equal(t, int64(4), s.EditingID())
}

func TestEntryService_LoadIfEditing_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, repo, _ := newTestEntrySvc(t, ctrl)

	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(models.Medicine{}, store.ErrMedicineNotFound)

	err := s.LoadIfEditing(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrMedicineNotFound)
	assert.Zero(t, s.EditingID())
}

func TestEntryService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _, _ := newTestEntrySvc(t, ctrl)
	s.editingID = 3
	fillDraft(s)

	s.Reset()
	assert.Equal(t, models.NewDraft(), s.Draft())
	assert.Zero(t, s.EditingID())
}
