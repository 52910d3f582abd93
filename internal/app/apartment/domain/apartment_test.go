package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewApartment(t *testing.T) {
	a, err := NewApartment("apt-1", "  Skyline Residences ", "MG Road, Bengaluru", 240, now)
	require.NoError(t, err)

	assert.Equal(t, "Skyline Residences", a.Name())
	assert.Equal(t, int64(1), a.Version())
	require.Len(t, a.DomainEvents(), 1)
	assert.Equal(t, "apartment.created", a.DomainEvents()[0].EventType())
}

func TestNewApartment_Validation(t *testing.T) {
	tests := []struct {
		name       string
		aptName    string
		address    string
		totalFlats int64
		wantErr    error
	}{
		{"empty name", "", "MG Road", 10, ErrEmptyName},
		{"blank name", "   ", "MG Road", 10, ErrEmptyName},
		{"empty address", "Green Valley", " ", 10, ErrEmptyAddress},
		{"negative flats", "Green Valley", "Whitefield", -1, ErrInvalidTotalFlats},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApartment("apt-1", tt.aptName, tt.address, tt.totalFlats, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdate_TracksOnlyChangedFields(t *testing.T) {
	a := ReconstructApartment("apt-1", "Palm Heights", "HSR Layout", 120, 3, now, now)

	require.NoError(t, a.Update("Palm Heights", "HSR Layout, Sector 2", 120, now.Add(time.Hour)))

	assert.True(t, a.Changes().Dirty(FieldAddress))
	assert.False(t, a.Changes().Dirty(FieldName))
	assert.Equal(t, now.Add(time.Hour), a.UpdatedAt())
	require.Len(t, a.DomainEvents(), 1)
	assert.Equal(t, "apartment.updated", a.DomainEvents()[0].EventType())
}

func TestUpdate_NoChanges(t *testing.T) {
	a := ReconstructApartment("apt-1", "Palm Heights", "HSR Layout", 120, 3, now, now)

	require.NoError(t, a.Update("Palm Heights", "HSR Layout", 120, now))

	assert.False(t, a.Changes().HasChanges())
	assert.Empty(t, a.DomainEvents())
}

func TestUpdate_RejectsEmptyName(t *testing.T) {
	a := ReconstructApartment("apt-1", "Palm Heights", "HSR Layout", 120, 3, now, now)

	assert.ErrorIs(t, a.Update("", "HSR Layout", 120, now), ErrEmptyName)
	assert.Equal(t, "Palm Heights", a.Name())
}

func TestMarkDeleted(t *testing.T) {
	a := ReconstructApartment("apt-1", "Palm Heights", "HSR Layout", 120, 3, now, now)
	a.MarkDeleted([]string{"shop-1"}, now)

	require.Len(t, a.DomainEvents(), 1)
	evt := a.DomainEvents()[0].(*ApartmentDeletedEvent)
	assert.Equal(t, []string{"shop-1"}, evt.ShopIDs)
}
