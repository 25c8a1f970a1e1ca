package availability

import (
	"testing"

	"clinicportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs both resolver strategies with the same fixture data. Its
// GetAvailability deliberately computes the difference with its own naive
// loop so the equivalence test compares two independent implementations.
type fakeStore struct {
	options  []models.AppointmentOption
	bookings []models.Booking
}

func (s *fakeStore) GetAll() ([]models.AppointmentOption, error) {
	out := make([]models.AppointmentOption, len(s.options))
	copy(out, s.options)
	return out, nil
}

func (s *fakeStore) GetAvailability(date string) ([]models.AppointmentOption, error) {
	var out []models.AppointmentOption
	for _, option := range s.options {
		var remaining []string
		for _, slot := range option.Slots {
			taken := false
			for _, b := range s.bookings {
				if b.AppointmentDate == date && b.Treatment == option.Name && b.Slot == slot {
					taken = true
				}
			}
			if !taken {
				remaining = append(remaining, slot)
			}
		}
		option.Slots = remaining
		out = append(out, option)
	}
	return out, nil
}

func (s *fakeStore) GetByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) GetByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) GetByKey(date, email, treatment string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.AppointmentDate == date && b.Email == email && b.Treatment == treatment {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) Create(booking *models.Booking) error {
	s.bookings = append(s.bookings, *booking)
	return nil
}

func cleaningCatalog() []models.AppointmentOption {
	return []models.AppointmentOption{
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
	}
}

func TestRemainingSlotsSubtractsBookedSlots(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", AppointmentDate: "2024-01-05", Slot: "10am", Email: "a@x.com"},
	}

	got := RemainingSlots(cleaningCatalog(), bookings)

	require.Len(t, got, 1)
	assert.Equal(t, "Cleaning", got[0].Name)
	assert.Equal(t, []string{"9am", "11am"}, got[0].Slots)
}

func TestRemainingSlotsNoBookings(t *testing.T) {
	got := RemainingSlots(cleaningCatalog(), nil)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"9am", "10am", "11am"}, got[0].Slots)
}

func TestRemainingSlotsEmptyCatalog(t *testing.T) {
	got := RemainingSlots(nil, []models.Booking{
		{Treatment: "Cleaning", AppointmentDate: "2024-01-05", Slot: "10am"},
	})

	assert.Empty(t, got)
}

func TestRemainingSlotsKeepsFullyBookedOptions(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
		{Treatment: "Cleaning", Slot: "10am"},
		{Treatment: "Cleaning", Slot: "11am"},
	}

	got := RemainingSlots(cleaningCatalog(), bookings)

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Slots)
}

func TestRemainingSlotsIgnoresSpuriousSlot(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "3pm"},
		{Treatment: "Whitening", Slot: "9am"},
	}

	got := RemainingSlots(cleaningCatalog(), bookings)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"9am", "10am", "11am"}, got[0].Slots)
}

func TestRemainingSlotsPreservesOrder(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Whitening", Slots: []string{"1pm", "2pm"}},
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
		{Name: "Root Canal", Slots: []string{"8am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "10am"},
	}

	got := RemainingSlots(catalog, bookings)

	require.Len(t, got, 3)
	assert.Equal(t, "Whitening", got[0].Name)
	assert.Equal(t, "Cleaning", got[1].Name)
	assert.Equal(t, "Root Canal", got[2].Name)
	assert.Equal(t, []string{"9am", "11am"}, got[1].Slots)
}

func TestRemainingSlotsIdempotent(t *testing.T) {
	catalog := cleaningCatalog()
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
	}

	first := RemainingSlots(catalog, bookings)
	second := RemainingSlots(catalog, bookings)

	assert.Equal(t, first, second)
}

func TestResolverStrategiesAgree(t *testing.T) {
	store := &fakeStore{
		options: []models.AppointmentOption{
			{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
			{Name: "Whitening", Slots: []string{"1pm", "2pm", "3pm"}},
			{Name: "Root Canal", Slots: []string{"8am"}},
		},
		bookings: []models.Booking{
			{Treatment: "Cleaning", AppointmentDate: "2024-01-05", Slot: "10am", Email: "a@x.com"},
			{Treatment: "Whitening", AppointmentDate: "2024-01-05", Slot: "1pm", Email: "b@x.com"},
			{Treatment: "Whitening", AppointmentDate: "2024-01-05", Slot: "3pm", Email: "c@x.com"},
			{Treatment: "Whitening", AppointmentDate: "2024-01-06", Slot: "2pm", Email: "a@x.com"},
			{Treatment: "Facial", AppointmentDate: "2024-01-05", Slot: "9am", Email: "d@x.com"},
		},
	}

	twoQuery := &TwoQueryResolver{CatalogRepo: store, BookingRepo: store}
	aggregate := &AggregateResolver{CatalogRepo: store}

	for _, date := range []string{"2024-01-05", "2024-01-06", "2024-02-01"} {
		v1, err := twoQuery.Resolve(date)
		require.NoError(t, err)
		v2, err := aggregate.Resolve(date)
		require.NoError(t, err)

		require.Len(t, v2, len(v1), "date %s", date)
		for i := range v1 {
			assert.Equal(t, v1[i].Name, v2[i].Name, "date %s", date)
			assert.ElementsMatch(t, v1[i].Slots, v2[i].Slots, "date %s option %s", date, v1[i].Name)
		}
	}
}

func TestTwoQueryResolverUnknownDate(t *testing.T) {
	store := &fakeStore{
		options: cleaningCatalog(),
		bookings: []models.Booking{
			{Treatment: "Cleaning", AppointmentDate: "2024-01-05", Slot: "10am"},
		},
	}
	resolver := &TwoQueryResolver{CatalogRepo: store, BookingRepo: store}

	got, err := resolver.Resolve("1999-12-31")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"9am", "10am", "11am"}, got[0].Slots)
}
